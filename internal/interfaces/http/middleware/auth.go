package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/ramabhadrarao/opencart-api/internal/application/usecases"
	"github.com/ramabhadrarao/opencart-api/internal/domain/entities"
	"github.com/ramabhadrarao/opencart-api/internal/infrastructure/auth"
)

const (
	principalKey = "principal"
	sessionIDKey = "tracking_session_id"
)

// RequireCustomer only admits authenticated customers.
func RequireCustomer(authUC *usecases.AuthUseCase) fiber.Handler {
	return requireType(authUC, entities.UserTypeCustomer)
}

// RequireAdmin only admits authenticated admin users.
func RequireAdmin(authUC *usecases.AuthUseCase) fiber.Handler {
	return requireType(authUC, entities.UserTypeAdmin)
}

// RequireAuth admits either principal type.
func RequireAuth(authUC *usecases.AuthUseCase) fiber.Handler {
	return requireType(authUC, usecases.TypeAny)
}

// OptionalAuth resolves a bearer token when one is presented but never
// rejects; guests pass through with no principal. Used on cart routes.
func OptionalAuth(authUC *usecases.AuthUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token := bearerToken(c); token != "" {
			if p, err := authUC.Resolve(c.UserContext(), token, usecases.TypeAny); err == nil {
				c.Locals(principalKey, p)
			}
		}
		return c.Next()
	}
}

func requireType(authUC *usecases.AuthUseCase, required string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return Unauthenticated(c)
		}
		p, err := authUC.Resolve(c.UserContext(), token, required)
		if err != nil {
			return Unauthenticated(c)
		}
		c.Locals(principalKey, p)
		return c.Next()
	}
}

func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}

// Unauthenticated rejects with the bearer challenge. The body never
// distinguishes why the credentials failed.
func Unauthenticated(c *fiber.Ctx) error {
	c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "Could not validate credentials",
	})
}

// Forbidden rejects an authenticated principal acting outside its scope.
func Forbidden(c *fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
		"error": "Not enough permissions",
	})
}

// PrincipalFromCtx returns the principal the auth middleware resolved
// for this request, or nil for guests.
func PrincipalFromCtx(c *fiber.Ctx) *auth.Principal {
	if p, ok := c.Locals(principalKey).(*auth.Principal); ok {
		return p
	}
	return nil
}

// SessionIDFromCtx returns the tracking session identifier assigned to
// this request.
func SessionIDFromCtx(c *fiber.Ctx) string {
	if id, ok := c.Locals(sessionIDKey).(string); ok {
		return id
	}
	return ""
}
