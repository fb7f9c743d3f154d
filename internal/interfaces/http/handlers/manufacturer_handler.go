package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ramabhadrarao/opencart-api/internal/application/usecases"
	"github.com/ramabhadrarao/opencart-api/internal/domain/entities"
)

type ManufacturerHandler struct {
	manufacturerUseCase *usecases.ManufacturerUseCase
}

func NewManufacturerHandler(manufacturerUseCase *usecases.ManufacturerUseCase) *ManufacturerHandler {
	return &ManufacturerHandler{
		manufacturerUseCase: manufacturerUseCase,
	}
}

func (h *ManufacturerHandler) GetManufacturers(c *fiber.Ctx) error {
	skip, limit := parsePagination(c)

	manufacturers, total, err := h.manufacturerUseCase.GetManufacturers(c.UserContext(), skip, limit)
	if err != nil {
		return respondError(c, err, "Manufacturers not found")
	}
	return c.JSON(listResponse(manufacturers, total, skip, limit))
}

func (h *ManufacturerHandler) GetManufacturer(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid manufacturer id"})
	}

	m, err := h.manufacturerUseCase.FindManufacturerByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "Manufacturer not found")
	}
	return c.JSON(m)
}

func (h *ManufacturerHandler) CreateManufacturer(c *fiber.Ctx) error {
	var m entities.Manufacturer
	if err := c.BodyParser(&m); err != nil || m.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid manufacturer payload"})
	}

	if err := h.manufacturerUseCase.CreateManufacturer(c.UserContext(), &m); err != nil {
		return respondError(c, err, "Manufacturer not found")
	}
	return c.Status(fiber.StatusCreated).JSON(m)
}

func (h *ManufacturerHandler) UpdateManufacturer(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid manufacturer id"})
	}

	if _, err := h.manufacturerUseCase.FindManufacturerByID(c.UserContext(), id); err != nil {
		return respondError(c, err, "Manufacturer not found")
	}

	var m entities.Manufacturer
	if err := c.BodyParser(&m); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid manufacturer payload"})
	}
	m.ManufacturerID = id

	if err := h.manufacturerUseCase.UpdateManufacturer(c.UserContext(), &m); err != nil {
		return respondError(c, err, "Manufacturer not found")
	}
	return c.JSON(m)
}

func (h *ManufacturerHandler) DeleteManufacturer(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid manufacturer id"})
	}

	if _, err := h.manufacturerUseCase.FindManufacturerByID(c.UserContext(), id); err != nil {
		return respondError(c, err, "Manufacturer not found")
	}
	if err := h.manufacturerUseCase.DeleteManufacturer(c.UserContext(), id); err != nil {
		return respondError(c, err, "Manufacturer not found")
	}
	return c.JSON(fiber.Map{"message": "Manufacturer deleted"})
}
