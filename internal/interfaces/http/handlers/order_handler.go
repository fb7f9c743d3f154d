package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ramabhadrarao/opencart-api/internal/application/usecases"
	"github.com/ramabhadrarao/opencart-api/internal/interfaces/http/middleware"
)

type OrderHandler struct {
	orderUseCase *usecases.OrderUseCase
}

func NewOrderHandler(orderUseCase *usecases.OrderUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
	}
}

// GetOrders lista pedidos: admins veem todos, clientes apenas os seus.
func (h *OrderHandler) GetOrders(c *fiber.Ctx) error {
	p := middleware.PrincipalFromCtx(c)
	if p == nil {
		return middleware.Unauthenticated(c)
	}

	skip, limit := parsePagination(c)
	var statusID *int
	if raw := c.Query("status_id"); raw != "" {
		v := c.QueryInt("status_id", 0)
		statusID = &v
	}

	orders, total, err := h.orderUseCase.GetOrdersForPrincipal(c.UserContext(), p, skip, limit, statusID)
	if err != nil {
		return respondError(c, err, "Orders not found")
	}
	return c.JSON(listResponse(orders, total, skip, limit))
}

func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	p := middleware.PrincipalFromCtx(c)
	if p == nil {
		return middleware.Unauthenticated(c)
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid order id"})
	}

	order, err := h.orderUseCase.FindOrderForPrincipal(c.UserContext(), p, id)
	if err != nil {
		return respondError(c, err, "Order not found")
	}
	return c.JSON(order)
}

type orderStatusRequest struct {
	OrderStatusID int `json:"order_status_id"`
}

// UpdateOrderStatus é restrito a admins (aplicado na rota).
func (h *OrderHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid order id"})
	}

	var req orderStatusRequest
	if err := c.BodyParser(&req); err != nil || req.OrderStatusID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "order_status_id is required"})
	}

	p := middleware.PrincipalFromCtx(c)
	if p == nil {
		return middleware.Unauthenticated(c)
	}
	if _, err := h.orderUseCase.FindOrderForPrincipal(c.UserContext(), p, id); err != nil {
		return respondError(c, err, "Order not found")
	}

	if err := h.orderUseCase.UpdateOrderStatus(c.UserContext(), id, req.OrderStatusID); err != nil {
		return respondError(c, err, "Order not found")
	}
	return c.JSON(fiber.Map{"message": "Order status updated"})
}
