package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"workwise/internal/domain/candidate"
	"workwise/internal/domain/employer"
	"workwise/internal/pkg/jwt"
)

func newAuthForTest(employers *mockEmployerRepo, candidates *mockCandidateRepo) *Auth {
	tokens := jwt.NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
	return NewAuthUsecase(employers, candidates, tokens, nil)
}

func TestRegisterEmployer_PasswordPolicy(t *testing.T) {
	uc := newAuthForTest(&mockEmployerRepo{}, &mockCandidateRepo{})

	for _, pw := range []string{"short", "alldigits12345678", "nodigits!", "nospecial1", "waytoolongpassword1!"} {
		_, err := uc.RegisterEmployer(context.Background(), RegisterEmployerInput{
			CompanyName:        "Acme",
			RepresentativeName: "Sam",
			Email:              "sam@acme.example",
			Password:           pw,
		})
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("password %q: expected ValidationError, got %v", pw, err)
		}
		if _, ok := vErr.Fields["password"]; !ok {
			t.Fatalf("password %q: expected password field error, got %v", pw, vErr.Fields)
		}
	}
}

func TestRegisterEmployer_EmailTaken(t *testing.T) {
	uc := newAuthForTest(&mockEmployerRepo{emailTaken: true}, &mockCandidateRepo{})

	_, err := uc.RegisterEmployer(context.Background(), RegisterEmployerInput{
		CompanyName:        "Acme",
		RepresentativeName: "Sam",
		Email:              "sam@acme.example",
		Password:           "secret1!",
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRegisterAndLoginCandidate(t *testing.T) {
	candidates := &mockCandidateRepo{}
	uc := newAuthForTest(&mockEmployerRepo{}, candidates)

	pair, err := uc.RegisterCandidate(context.Background(), RegisterCandidateInput{
		FirstName: "Jo",
		LastName:  "Doe",
		Email:     "Jo@Example.com",
		Password:  "secret1!",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected tokens on register")
	}
	if candidates.candidate.Email != "jo@example.com" {
		t.Fatalf("expected normalized email, got %q", candidates.candidate.Email)
	}

	if _, err := uc.LoginCandidate(context.Background(), "jo@example.com", "secret1!"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if _, err := uc.LoginCandidate(context.Background(), "jo@example.com", "wrong1!"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginEmployer_UnknownEmail(t *testing.T) {
	uc := newAuthForTest(&mockEmployerRepo{}, &mockCandidateRepo{})

	_, err := uc.LoginEmployer(context.Background(), "nobody@acme.example", "secret1!")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret1!"), bcrypt.DefaultCost)
	emp := employer.Employer{ID: uuid.New(), Email: "sam@acme.example", PasswordHash: string(hash)}
	uc := newAuthForTest(&mockEmployerRepo{employer: emp}, &mockCandidateRepo{})

	pair, err := uc.LoginEmployer(context.Background(), emp.Email, "secret1!")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if _, err := uc.Refresh(context.Background(), pair.AccessToken); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken for access token, got %v", err)
	}
}

func TestRefresh_RotatesPair(t *testing.T) {
	cand := candidate.Candidate{ID: uuid.New(), Email: "jo@example.com"}
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret1!"), bcrypt.DefaultCost)
	cand.PasswordHash = string(hash)
	uc := newAuthForTest(&mockEmployerRepo{}, &mockCandidateRepo{candidate: cand})

	pair, err := uc.LoginCandidate(context.Background(), cand.Email, "secret1!")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	next, err := uc.Refresh(context.Background(), pair.RefreshToken)
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if next.AccessToken == "" || next.RefreshToken == "" {
		t.Fatalf("expected a full pair from refresh")
	}
}

func TestRefresh_DeletedActorRejected(t *testing.T) {
	cand := candidate.Candidate{ID: uuid.New(), Email: "jo@example.com"}
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret1!"), bcrypt.DefaultCost)
	cand.PasswordHash = string(hash)

	candidates := &mockCandidateRepo{candidate: cand}
	uc := newAuthForTest(&mockEmployerRepo{}, candidates)

	pair, err := uc.LoginCandidate(context.Background(), cand.Email, "secret1!")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	candidates.candidate = candidate.Candidate{}
	if _, err := uc.Refresh(context.Background(), pair.RefreshToken); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken after deletion, got %v", err)
	}
}
