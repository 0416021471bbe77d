package usecase

import (
	"context"
	"errors"
	"log"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"workwise/internal/domain/candidate"
	"workwise/internal/domain/employer"
	"workwise/internal/pkg/jwt"
	"workwise/internal/repository"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type RegisterEmployerInput struct {
	CompanyName        string
	RepresentativeName string
	Email              string
	Password           string
}

type RegisterCandidateInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// TokenPair is what every login/register/refresh hands back.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type AuthUsecase interface {
	RegisterEmployer(ctx context.Context, in RegisterEmployerInput) (TokenPair, error)
	RegisterCandidate(ctx context.Context, in RegisterCandidateInput) (TokenPair, error)
	LoginEmployer(ctx context.Context, email, password string) (TokenPair, error)
	LoginCandidate(ctx context.Context, email, password string) (TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
}

type Auth struct {
	employers  repository.EmployerRepository
	candidates repository.CandidateRepository
	tokens     jwt.Service
	logger     *log.Logger
	now        func() time.Time

	newUUID func() uuid.UUID
}

func NewAuthUsecase(employers repository.EmployerRepository, candidates repository.CandidateRepository, tokens jwt.Service, logger *log.Logger) *Auth {
	return &Auth{
		employers:  employers,
		candidates: candidates,
		tokens:     tokens,
		logger:     logger,
		now:        time.Now,
		newUUID:    uuid.New,
	}
}

func (u *Auth) RegisterEmployer(ctx context.Context, in RegisterEmployerInput) (TokenPair, error) {
	email := normalizeEmail(in.Email)
	fields := map[string]string{}
	if strings.TrimSpace(in.CompanyName) == "" {
		fields["company_name"] = "this field is required"
	}
	if strings.TrimSpace(in.RepresentativeName) == "" {
		fields["representative_name"] = "this field is required"
	}
	validateCredentials(email, in.Password, fields)
	if len(fields) > 0 {
		return TokenPair{}, &ValidationError{Fields: fields}
	}

	taken, err := u.employers.ExistsByEmail(ctx, email)
	if err != nil {
		return TokenPair{}, ErrInternal
	}
	if taken {
		return TokenPair{}, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return TokenPair{}, ErrInternal
	}

	e := employer.Employer{
		ID:                 u.newUUID(),
		CompanyName:        strings.TrimSpace(in.CompanyName),
		RepresentativeName: strings.TrimSpace(in.RepresentativeName),
		Email:              email,
		PasswordHash:       string(hash),
		EmailNotify:        true,
		JoinedAt:           u.now(),
	}
	if err := u.employers.Create(ctx, e); err != nil {
		if u.logger != nil {
			u.logger.Printf("register employer: insert failed: %v", err)
		}
		return TokenPair{}, ErrInternal
	}

	return u.issue(e.ID, jwt.ActorEmployer, e.Email)
}

func (u *Auth) RegisterCandidate(ctx context.Context, in RegisterCandidateInput) (TokenPair, error) {
	email := normalizeEmail(in.Email)
	fields := map[string]string{}
	if strings.TrimSpace(in.FirstName) == "" {
		fields["first_name"] = "this field is required"
	}
	if strings.TrimSpace(in.LastName) == "" {
		fields["last_name"] = "this field is required"
	}
	validateCredentials(email, in.Password, fields)
	if len(fields) > 0 {
		return TokenPair{}, &ValidationError{Fields: fields}
	}

	taken, err := u.candidates.ExistsByEmail(ctx, email)
	if err != nil {
		return TokenPair{}, ErrInternal
	}
	if taken {
		return TokenPair{}, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return TokenPair{}, ErrInternal
	}

	c := candidate.Candidate{
		ID:           u.newUUID(),
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Email:        email,
		PasswordHash: string(hash),
		JoinedAt:     u.now(),
	}
	if err := u.candidates.Create(ctx, c); err != nil {
		if u.logger != nil {
			u.logger.Printf("register candidate: insert failed: %v", err)
		}
		return TokenPair{}, ErrInternal
	}

	return u.issue(c.ID, jwt.ActorCandidate, c.Email)
}

func (u *Auth) LoginEmployer(ctx context.Context, email, password string) (TokenPair, error) {
	e, err := u.employers.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrEmployerNotFound) {
			return TokenPair{}, ErrInvalidCredentials
		}
		return TokenPair{}, ErrInternal
	}
	if bcrypt.CompareHashAndPassword([]byte(e.PasswordHash), []byte(password)) != nil {
		return TokenPair{}, ErrInvalidCredentials
	}
	return u.issue(e.ID, jwt.ActorEmployer, e.Email)
}

func (u *Auth) LoginCandidate(ctx context.Context, email, password string) (TokenPair, error) {
	c, err := u.candidates.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return TokenPair{}, ErrInvalidCredentials
		}
		return TokenPair{}, ErrInternal
	}
	if bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) != nil {
		return TokenPair{}, ErrInvalidCredentials
	}
	return u.issue(c.ID, jwt.ActorCandidate, c.Email)
}

// Refresh exchanges a valid refresh token for a fresh pair. The actor must
// still exist; a deleted account cannot keep minting tokens.
func (u *Auth) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, err := u.tokens.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return TokenPair{}, ErrRefreshTokenExpired
		}
		return TokenPair{}, ErrInvalidRefreshToken
	}
	if !u.tokens.IsRefreshToken(claims) {
		return TokenPair{}, ErrInvalidRefreshToken
	}

	switch claims.ActorType {
	case jwt.ActorEmployer:
		e, err := u.employers.GetByID(ctx, claims.ActorID)
		if err != nil {
			return TokenPair{}, ErrInvalidRefreshToken
		}
		return u.issue(e.ID, jwt.ActorEmployer, e.Email)
	case jwt.ActorCandidate:
		c, err := u.candidates.GetByID(ctx, claims.ActorID)
		if err != nil {
			return TokenPair{}, ErrInvalidRefreshToken
		}
		return u.issue(c.ID, jwt.ActorCandidate, c.Email)
	default:
		return TokenPair{}, ErrInvalidRefreshToken
	}
}

func (u *Auth) issue(actorID uuid.UUID, actorType, email string) (TokenPair, error) {
	access, err := u.tokens.GenerateAccessToken(actorID, actorType, email)
	if err != nil {
		return TokenPair{}, ErrInternal
	}
	refresh, err := u.tokens.GenerateRefreshToken(actorID, actorType)
	if err != nil {
		return TokenPair{}, ErrInternal
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func validateCredentials(email, password string, fields map[string]string) {
	if _, err := mail.ParseAddress(email); err != nil {
		fields["email"] = "must be a valid email address"
	}
	if !ValidPassword(password) {
		fields["password"] = "password must be 6-16 characters with at least one digit and one special character"
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
