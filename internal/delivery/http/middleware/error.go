package middleware

import (
	"errors"
	"log"

	"workwise/internal/pkg/response"
	"workwise/internal/search"
	"workwise/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AppError struct {
	StatusCode int
	Message    string
	Data       interface{}
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, message string, data interface{}, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Data: data, Cause: cause}
}

type ErrorMiddleware struct{}

func NewErrorMiddleware() *ErrorMiddleware {
	return &ErrorMiddleware{}
}

func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("panic recovered: %v", r)
				err = response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, msg, data := normalizeError(err)
		return response.Error(c, status, msg, data)
	}
}

// normalizeError flattens whatever the handlers returned into the response
// envelope. Service-layer errors map to their HTTP statuses here so handlers
// can just bubble them up.
func normalizeError(err error) (int, string, interface{}) {
	if err == nil {
		return fiber.StatusInternalServerError, response.MessageInternalServerError, nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		status := appErr.StatusCode
		if status <= 0 {
			status = fiber.StatusInternalServerError
		}
		if status >= 500 {
			return fiber.StatusInternalServerError, response.MessageInternalServerError, nil
		}
		msg := appErr.Message
		if msg == "" {
			msg = response.DefaultMessageForStatus(status)
		}
		return status, msg, appErr.Data
	}

	var verr *usecase.ValidationError
	if errors.As(err, &verr) {
		return fiber.StatusUnprocessableEntity, "Validation failed", verr.Fields
	}

	var perr *usecase.ProfileIncompleteError
	if errors.As(err, &perr) {
		return fiber.StatusForbidden, perr.Error(), map[string]interface{}{"missing": perr.Missing}
	}

	if status, msg, ok := serviceErrorStatus(err); ok {
		return status, msg, nil
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status := fiberErr.Code
		if status <= 0 {
			status = fiber.StatusInternalServerError
		}
		if status >= 500 {
			return fiber.StatusInternalServerError, response.MessageInternalServerError, nil
		}
		msg := fiberErr.Message
		if msg == "" {
			msg = response.DefaultMessageForStatus(status)
		}
		return status, msg, nil
	}

	return fiber.StatusInternalServerError, response.MessageInternalServerError, nil
}

func serviceErrorStatus(err error) (int, string, bool) {
	switch {
	case errors.Is(err, search.ErrIncompleteCriteria):
		return fiber.StatusBadRequest, "Please fill in all filter fields.", true
	case errors.Is(err, usecase.ErrInvalidInput):
		return fiber.StatusBadRequest, response.MessageBadRequest, true
	case errors.Is(err, usecase.ErrUnauthorized):
		return fiber.StatusUnauthorized, response.MessageUnauthorized, true
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return fiber.StatusUnauthorized, "Invalid email or password", true
	case errors.Is(err, usecase.ErrInvalidRefreshToken):
		return fiber.StatusUnauthorized, "Invalid refresh token", true
	case errors.Is(err, usecase.ErrRefreshTokenExpired):
		return fiber.StatusUnauthorized, "Refresh token expired", true
	case errors.Is(err, usecase.ErrForbidden):
		return fiber.StatusForbidden, response.MessageForbidden, true
	case errors.Is(err, usecase.ErrPremiumRequired):
		return fiber.StatusForbidden, "Premium subscription required", true
	case errors.Is(err, usecase.ErrNotVerified):
		return fiber.StatusForbidden, "Your account must be verified before posting jobs", true
	case errors.Is(err, usecase.ErrCVRequired):
		return fiber.StatusBadRequest, "Please upload your CV before applying", true
	case errors.Is(err, usecase.ErrNotFound):
		return fiber.StatusNotFound, response.MessageNotFound, true
	case errors.Is(err, usecase.ErrAlreadyApplied):
		return fiber.StatusConflict, "You have already applied to this job", true
	case errors.Is(err, usecase.ErrEmailTaken):
		return fiber.StatusConflict, "Email already registered", true
	default:
		return 0, "", false
	}
}
