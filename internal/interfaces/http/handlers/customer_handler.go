package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ramabhadrarao/opencart-api/internal/application/usecases"
)

type CustomerHandler struct {
	customerUseCase *usecases.CustomerUseCase
}

func NewCustomerHandler(customerUseCase *usecases.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{
		customerUseCase: customerUseCase,
	}
}

// GetCustomers é restrito a admins (aplicado na rota).
func (h *CustomerHandler) GetCustomers(c *fiber.Ctx) error {
	skip, limit := parsePagination(c)

	customers, total, err := h.customerUseCase.GetCustomers(c.UserContext(), skip, limit, c.Query("search"))
	if err != nil {
		return respondError(c, err, "Customers not found")
	}
	return c.JSON(listResponse(customers, total, skip, limit))
}

func (h *CustomerHandler) GetCustomer(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid customer id"})
	}

	customer, err := h.customerUseCase.FindCustomerByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "Customer not found")
	}
	return c.JSON(customer)
}
