package middleware

import (
	"errors"
	"strings"

	"workwise/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
)

// Locals keys set by the auth middleware. ActorID is a uuid.UUID, the
// others are strings.
const (
	CtxActorIDKey   = "actor_id"
	CtxActorTypeKey = "actor_type"
	CtxEmailKey     = "email"
)

type AuthMiddleware struct {
	jwt jwt.Service
}

func NewAuthMiddleware(jwtSvc jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc}
}

func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := bearerTokenFromHeader(c.Get("Authorization"))
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}

		claims, err := m.jwt.ValidateToken(token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return NewAppError(fiber.StatusUnauthorized, "Token expired", nil, err)
			}
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
		}

		if claims.TokenType != jwt.TokenTypeAccess || m.jwt.IsRefreshToken(claims) {
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, nil)
		}

		c.Locals(CtxActorIDKey, claims.ActorID)
		c.Locals(CtxActorTypeKey, claims.ActorType)
		c.Locals(CtxEmailKey, claims.Email)

		return c.Next()
	}
}

// RequireEmployer guards routes only an employer session may use. Runs
// after Middleware.
func (m *AuthMiddleware) RequireEmployer() fiber.Handler {
	return requireActor(jwt.ActorEmployer)
}

func (m *AuthMiddleware) RequireCandidate() fiber.Handler {
	return requireActor(jwt.ActorCandidate)
}

func requireActor(actorType string) fiber.Handler {
	return func(c fiber.Ctx) error {
		if c.Locals(CtxActorTypeKey) != actorType {
			return NewAppError(fiber.StatusForbidden, "Forbidden", nil, nil)
		}
		return c.Next()
	}
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}

	return token, true
}
