package usecase

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrInternal        = errors.New("internal error")
	ErrPremiumRequired = errors.New("premium subscription required")
	ErrNotVerified     = errors.New("employer not verified")
	ErrCVRequired      = errors.New("cv required")
	ErrAlreadyApplied  = errors.New("already applied")

	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)

// ValidationError carries per-field messages for form-shaped input, so the
// caller can render them next to the offending fields.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for f, msg := range e.Fields {
		parts = append(parts, f+": "+msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ProfileIncompleteError lists what the employer must complete before
// posting a job.
type ProfileIncompleteError struct {
	Missing []string
}

func (e *ProfileIncompleteError) Error() string {
	return fmt.Sprintf("please %s before you can post a job", strings.Join(e.Missing, ", "))
}
