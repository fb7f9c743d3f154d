package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ramabhadrarao/opencart-api/internal/application/usecases"
)

type LocationHandler struct {
	locationUseCase *usecases.LocationUseCase
}

func NewLocationHandler(locationUseCase *usecases.LocationUseCase) *LocationHandler {
	return &LocationHandler{
		locationUseCase: locationUseCase,
	}
}

func (h *LocationHandler) GetCountries(c *fiber.Ctx) error {
	skip, limit := parsePagination(c)

	var status *bool
	if raw := c.Query("status"); raw != "" {
		v := raw == "true" || raw == "1"
		status = &v
	}

	countries, total, err := h.locationUseCase.GetCountries(c.UserContext(), skip, limit, status)
	if err != nil {
		return respondError(c, err, "Countries not found")
	}
	return c.JSON(listResponse(countries, total, skip, limit))
}

func (h *LocationHandler) GetCountry(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid country id"})
	}

	country, err := h.locationUseCase.FindCountryByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "Country not found")
	}
	return c.JSON(country)
}

func (h *LocationHandler) GetZones(c *fiber.Ctx) error {
	skip, limit := parsePagination(c)

	var countryID *int
	if raw := c.Query("country_id"); raw != "" {
		v := c.QueryInt("country_id", 0)
		countryID = &v
	}

	zones, total, err := h.locationUseCase.GetZones(c.UserContext(), skip, limit, countryID)
	if err != nil {
		return respondError(c, err, "Zones not found")
	}
	return c.JSON(listResponse(zones, total, skip, limit))
}

func (h *LocationHandler) GetZone(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid zone id"})
	}

	zone, err := h.locationUseCase.FindZoneByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "Zone not found")
	}
	return c.JSON(zone)
}
