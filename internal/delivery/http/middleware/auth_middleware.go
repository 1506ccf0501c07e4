package middleware

import (
	"errors"
	"strings"

	"career-advisor/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const (
	CtxUserIDKey = "user_id"

	userIDParam = "user_id"
)

type OwnerMiddleware struct {
	jwt jwt.Service
}

func NewOwnerMiddleware(jwtSvc jwt.Service) *OwnerMiddleware {
	return &OwnerMiddleware{jwt: jwtSvc}
}

func (m *OwnerMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		pathID, err := uuid.Parse(c.Params(userIDParam))
		if err != nil {
			return NewAppError(fiber.StatusBadRequest, "Invalid user_id", nil, err)
		}

		if m == nil || m.jwt == nil {
			c.Locals(CtxUserIDKey, pathID)
			return c.Next()
		}

		// Browsers cannot set headers on a websocket upgrade, hence the query fallback.
		token, ok := bearerTokenFromHeader(c.Get("Authorization"))
		if !ok {
			token = strings.TrimSpace(c.Query("access_token"))
		}
		if token == "" {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}

		claims, err := m.jwt.ValidateToken(token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return NewAppError(fiber.StatusUnauthorized, "Token expired", nil, err)
			}
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
		}

		if claims.UserID != pathID {
			return NewAppError(fiber.StatusNotFound, "Not found", nil, nil)
		}

		c.Locals(CtxUserIDKey, claims.UserID)
		return c.Next()
	}
}

func UserIDFromCtx(c fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(CtxUserIDKey).(uuid.UUID)
	return id, ok && id != uuid.Nil
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
