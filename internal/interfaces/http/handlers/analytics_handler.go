package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ramabhadrarao/opencart-api/internal/application/usecases"
)

type AnalyticsHandler struct {
	analyticsUseCase *usecases.AnalyticsUseCase
}

func NewAnalyticsHandler(analyticsUseCase *usecases.AnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUseCase: analyticsUseCase,
	}
}

// GetActivities lista atividades recentes com filtros opcionais.
func (h *AnalyticsHandler) GetActivities(c *fiber.Ctx) error {
	skip, limit := parsePagination(c)

	activities, total, err := h.analyticsUseCase.GetActivities(
		c.UserContext(), skip, limit, c.Query("event_type"), c.Query("session_id"))
	if err != nil {
		return respondError(c, err, "Activities not found")
	}
	return c.JSON(listResponse(activities, total, skip, limit))
}

func (h *AnalyticsHandler) GetSessions(c *fiber.Ctx) error {
	skip, limit := parsePagination(c)

	sessions, total, err := h.analyticsUseCase.GetSessions(c.UserContext(), skip, limit)
	if err != nil {
		return respondError(c, err, "Sessions not found")
	}
	return c.JSON(listResponse(sessions, total, skip, limit))
}

func (h *AnalyticsHandler) GetOnlineCount(c *fiber.Ctx) error {
	count, err := h.analyticsUseCase.CountOnline(c.UserContext())
	if err != nil {
		return respondError(c, err, "Sessions not found")
	}
	return c.JSON(fiber.Map{"online_now": count})
}

func (h *AnalyticsHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.analyticsUseCase.GetSummary(c.UserContext())
	if err != nil {
		return respondError(c, err, "Summary not available")
	}
	return c.JSON(summary)
}
