package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"workwise/internal/domain/employer"
	"workwise/internal/repository"
)

// Subscription terms. Payment bookkeeping is external; this records the
// entitlement window only.
const (
	PremiumTermMonths = 1
	PremiumPrice      = 2000
)

type PremiumStatus struct {
	Active          bool       `json:"active"`
	Price           int        `json:"price"`
	SubscribedAt    *time.Time `json:"subscribed_at,omitempty"`
	SubscriptionEnd *time.Time `json:"subscription_end,omitempty"`
}

type PremiumUsecase interface {
	Subscribe(ctx context.Context, employerID uuid.UUID) (PremiumStatus, error)
	Status(ctx context.Context, employerID uuid.UUID) (PremiumStatus, error)
}

type Premium struct {
	employers repository.EmployerRepository
	now       func() time.Time
}

func NewPremiumUsecase(employers repository.EmployerRepository) *Premium {
	return &Premium{employers: employers, now: time.Now}
}

func (u *Premium) Subscribe(ctx context.Context, employerID uuid.UUID) (PremiumStatus, error) {
	now := u.now()
	end := now.AddDate(0, PremiumTermMonths, 0)

	p := employer.Premium{
		EmployerID:      employerID,
		IsSubscribed:    true,
		PaymentOk:       true,
		SubscribedAt:    &now,
		SubscriptionEnd: &end,
	}
	if err := u.employers.UpsertPremium(ctx, p); err != nil {
		return PremiumStatus{}, ErrInternal
	}
	return statusOf(p, now), nil
}

func (u *Premium) Status(ctx context.Context, employerID uuid.UUID) (PremiumStatus, error) {
	p, err := u.employers.GetPremium(ctx, employerID)
	if err != nil {
		return PremiumStatus{}, ErrInternal
	}
	return statusOf(p, u.now()), nil
}

func statusOf(p employer.Premium, now time.Time) PremiumStatus {
	return PremiumStatus{
		Active:          p.Active(now),
		Price:           PremiumPrice,
		SubscribedAt:    p.SubscribedAt,
		SubscriptionEnd: p.SubscriptionEnd,
	}
}
