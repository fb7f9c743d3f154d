package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ramabhadrarao/opencart-api/internal/application/usecases"
	"github.com/ramabhadrarao/opencart-api/internal/domain/entities"
	"github.com/ramabhadrarao/opencart-api/internal/interfaces/http/middleware"
)

type AddressHandler struct {
	addressUseCase *usecases.AddressUseCase
}

func NewAddressHandler(addressUseCase *usecases.AddressUseCase) *AddressHandler {
	return &AddressHandler{
		addressUseCase: addressUseCase,
	}
}

func (h *AddressHandler) GetAddresses(c *fiber.Ctx) error {
	p := middleware.PrincipalFromCtx(c)
	if p == nil {
		return middleware.Unauthenticated(c)
	}

	addresses, err := h.addressUseCase.GetAddresses(c.UserContext(), p.ID)
	if err != nil {
		return respondError(c, err, "Addresses not found")
	}
	return c.JSON(addresses)
}

func (h *AddressHandler) GetAddress(c *fiber.Ctx) error {
	p := middleware.PrincipalFromCtx(c)
	if p == nil {
		return middleware.Unauthenticated(c)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid address id"})
	}

	address, err := h.addressUseCase.FindAddressForCustomer(c.UserContext(), p.ID, id)
	if err != nil {
		return respondError(c, err, "Address not found")
	}
	return c.JSON(address)
}

func (h *AddressHandler) CreateAddress(c *fiber.Ctx) error {
	p := middleware.PrincipalFromCtx(c)
	if p == nil {
		return middleware.Unauthenticated(c)
	}

	var address entities.Address
	if err := c.BodyParser(&address); err != nil || address.Address1 == "" || address.City == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid address payload"})
	}
	address.AddressID = 0
	address.CustomerID = p.ID

	if err := h.addressUseCase.CreateAddress(c.UserContext(), &address); err != nil {
		return respondError(c, err, "Address not found")
	}
	return c.Status(fiber.StatusCreated).JSON(address)
}

func (h *AddressHandler) UpdateAddress(c *fiber.Ctx) error {
	p := middleware.PrincipalFromCtx(c)
	if p == nil {
		return middleware.Unauthenticated(c)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid address id"})
	}

	var address entities.Address
	if err := c.BodyParser(&address); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid address payload"})
	}
	address.AddressID = id

	if err := h.addressUseCase.UpdateAddress(c.UserContext(), p.ID, &address); err != nil {
		return respondError(c, err, "Address not found")
	}
	return c.JSON(address)
}

func (h *AddressHandler) DeleteAddress(c *fiber.Ctx) error {
	p := middleware.PrincipalFromCtx(c)
	if p == nil {
		return middleware.Unauthenticated(c)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid address id"})
	}

	if err := h.addressUseCase.DeleteAddress(c.UserContext(), p.ID, id); err != nil {
		return respondError(c, err, "Address not found")
	}
	return c.JSON(fiber.Map{"message": "Address deleted"})
}
