package dto

import (
	"time"

	"github.com/google/uuid"

	"workwise/internal/domain/employer"
)

type EmployerResponse struct {
	ID                 uuid.UUID `json:"id"`
	CompanyName        string    `json:"company_name"`
	Email              string    `json:"email"`
	RepresentativeName string    `json:"representative_name"`
	EmailNotify        bool      `json:"email_notify"`
	IsVerified         bool      `json:"is_verified"`
	MapLat             *float64  `json:"map_lat,omitempty"`
	MapLng             *float64  `json:"map_lng,omitempty"`
	JoinedAt           time.Time `json:"joined_at"`

	Profile CompanyProfileResponse `json:"profile"`
}

type CompanyProfileResponse struct {
	Description    string     `json:"description"`
	LogoRef        string     `json:"logo_ref"`
	Website        string     `json:"website"`
	Facebook       string     `json:"facebook"`
	LinkedIn       string     `json:"linkedin"`
	PhoneNumber    string     `json:"phone_number"`
	Address        string     `json:"address"`
	CompanySize    string     `json:"company_size"`
	FoundedDate    *time.Time `json:"founded_date,omitempty"`
	CertificateRef string     `json:"certificate_ref,omitempty"`
}

func FromEmployer(e employer.Employer, p employer.CompanyProfile) EmployerResponse {
	return EmployerResponse{
		ID:                 e.ID,
		CompanyName:        e.CompanyName,
		Email:              e.Email,
		RepresentativeName: e.RepresentativeName,
		EmailNotify:        e.EmailNotify,
		IsVerified:         e.IsVerified,
		MapLat:             e.MapLat,
		MapLng:             e.MapLng,
		JoinedAt:           e.JoinedAt,
		Profile: CompanyProfileResponse{
			Description:    p.Description,
			LogoRef:        p.LogoRef,
			Website:        p.Website,
			Facebook:       p.Facebook,
			LinkedIn:       p.LinkedIn,
			PhoneNumber:    p.PhoneNumber,
			Address:        p.Address,
			CompanySize:    p.CompanySize,
			FoundedDate:    p.FoundedDate,
			CertificateRef: p.CertificateRef,
		},
	}
}
