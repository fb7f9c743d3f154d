package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ramabhadrarao/opencart-api/internal/application/usecases"
	"github.com/ramabhadrarao/opencart-api/internal/domain/entities"
	"github.com/ramabhadrarao/opencart-api/internal/interfaces/http/middleware"
)

type CartHandler struct {
	cartUseCase *usecases.CartUseCase
}

func NewCartHandler(cartUseCase *usecases.CartUseCase) *CartHandler {
	return &CartHandler{
		cartUseCase: cartUseCase,
	}
}

// cartOwner resolve o dono do carrinho: cliente autenticado ou sessão
// anônima do cookie de tracking.
func cartOwner(c *fiber.Ctx) (int, string) {
	customerID := 0
	if p := middleware.PrincipalFromCtx(c); p != nil && p.Type == entities.UserTypeCustomer {
		customerID = p.ID
	}
	return customerID, middleware.SessionIDFromCtx(c)
}

func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	customerID, sessionID := cartOwner(c)

	summary, err := h.cartUseCase.GetCart(c.UserContext(), customerID, sessionID)
	if err != nil {
		return respondError(c, err, "Cart not found")
	}
	return c.JSON(summary)
}

type addCartItemRequest struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var req addCartItemRequest
	if err := c.BodyParser(&req); err != nil || req.ProductID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "product_id is required"})
	}

	customerID, sessionID := cartOwner(c)
	item, err := h.cartUseCase.AddItem(c.UserContext(), customerID, sessionID, req.ProductID, req.Quantity)
	if err != nil {
		return respondError(c, err, "Product not found")
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) UpdateItem(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid cart item id"})
	}

	var req updateCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid cart payload"})
	}

	customerID, sessionID := cartOwner(c)
	if err := h.cartUseCase.UpdateItem(c.UserContext(), customerID, sessionID, id, req.Quantity); err != nil {
		return respondError(c, err, "Cart item not found")
	}
	return c.JSON(fiber.Map{"message": "Cart updated"})
}

func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid cart item id"})
	}

	customerID, sessionID := cartOwner(c)
	if err := h.cartUseCase.RemoveItem(c.UserContext(), customerID, sessionID, id); err != nil {
		return respondError(c, err, "Cart item not found")
	}
	return c.JSON(fiber.Map{"message": "Item removed"})
}

func (h *CartHandler) ClearCart(c *fiber.Ctx) error {
	customerID, sessionID := cartOwner(c)
	if err := h.cartUseCase.ClearCart(c.UserContext(), customerID, sessionID); err != nil {
		return respondError(c, err, "Cart not found")
	}
	return c.JSON(fiber.Map{"message": "Cart cleared"})
}
