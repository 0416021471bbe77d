package employer

import (
	"time"

	"github.com/google/uuid"
)

type Employer struct {
	ID                 uuid.UUID
	CompanyName        string
	Email              string
	PasswordHash       string
	RepresentativeName string
	EmailNotify        bool
	IsVerified         bool
	MapLat             *float64
	MapLng             *float64
	JoinedAt           time.Time
}

// CompanyProfile holds the employer's public company details. Logo and
// certificate are stored as references; file bytes live outside this system.
type CompanyProfile struct {
	EmployerID             uuid.UUID
	Description            string
	LogoRef                string
	Website                string
	Facebook               string
	LinkedIn               string
	PhoneNumber            string
	Address                string
	CompanySize            string
	FoundedDate            *time.Time
	CertificateRef         string
	CertificateSubmittedAt *time.Time
}

var CompanySizes = []string{"1-10", "11-50", "51-200", "201-500", "500+"}

// Complete reports whether the profile satisfies the posting prerequisites:
// logo, company size, founded date, phone number and address.
func (p CompanyProfile) Complete() (missing []string) {
	if p.LogoRef == "" {
		missing = append(missing, "upload your company logo")
	}
	if p.CompanySize == "" {
		missing = append(missing, "select your company size")
	}
	if p.FoundedDate == nil {
		missing = append(missing, "enter your company's founded date")
	}
	if p.PhoneNumber == "" {
		missing = append(missing, "provide a valid phone number")
	}
	if p.Address == "" {
		missing = append(missing, "fill in your company address")
	}
	return missing
}

// Premium is the employer's subscription record. The entitlement is active
// only while subscribed, paid, and inside the subscription window.
type Premium struct {
	EmployerID      uuid.UUID
	IsSubscribed    bool
	PaymentOk       bool
	SubscribedAt    *time.Time
	SubscriptionEnd *time.Time
}

func (p Premium) Active(now time.Time) bool {
	return p.IsSubscribed && p.PaymentOk && p.SubscriptionEnd != nil && !p.SubscriptionEnd.Before(now)
}
