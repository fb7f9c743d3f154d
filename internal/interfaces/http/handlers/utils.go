package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/ramabhadrarao/opencart-api/internal/infrastructure/auth"
	"github.com/ramabhadrarao/opencart-api/internal/interfaces/http/middleware"
	"gorm.io/gorm"
)

// parsePagination lê skip/limit no estilo da API original (defaults 0/100).
func parsePagination(c *fiber.Ctx) (int, int) {
	skip := c.QueryInt("skip", 0)
	if skip < 0 {
		skip = 0
	}
	limit := c.QueryInt("limit", 100)
	if limit < 1 || limit > 500 {
		limit = 100
	}
	return skip, limit
}

// respondError maps domain errors onto HTTP responses.
func respondError(c *fiber.Ctx, err error, notFoundMessage string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": notFoundMessage})
	case errors.Is(err, auth.ErrForbidden):
		return middleware.Forbidden(c)
	case errors.Is(err, auth.ErrUnauthenticated):
		return middleware.Unauthenticated(c)
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}

// listResponse is the standard paginated envelope.
func listResponse(items interface{}, total int64, skip, limit int) fiber.Map {
	return fiber.Map{
		"items": items,
		"total": total,
		"skip":  skip,
		"limit": limit,
	}
}
