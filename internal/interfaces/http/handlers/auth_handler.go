package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ramabhadrarao/opencart-api/internal/application/usecases"
	"github.com/ramabhadrarao/opencart-api/internal/interfaces/http/middleware"
)

type AuthHandler struct {
	authUseCase *usecases.AuthUseCase
}

func NewAuthHandler(authUseCase *usecases.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type customerLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type adminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginCustomer autentica um cliente da loja e devolve um bearer token.
func (h *AuthHandler) LoginCustomer(c *fiber.Ctx) error {
	var req customerLoginRequest
	if err := c.BodyParser(&req); err != nil || req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email and password are required"})
	}

	token, err := h.authUseCase.LoginCustomer(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return middleware.Unauthenticated(c)
	}

	return c.JSON(fiber.Map{
		"access_token": token,
		"token_type":   "bearer",
	})
}

// LoginAdmin autentica um usuário do painel e devolve um bearer token.
func (h *AuthHandler) LoginAdmin(c *fiber.Ctx) error {
	var req adminLoginRequest
	if err := c.BodyParser(&req); err != nil || req.Username == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "username and password are required"})
	}

	token, err := h.authUseCase.LoginAdmin(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return middleware.Unauthenticated(c)
	}

	return c.JSON(fiber.Map{
		"access_token": token,
		"token_type":   "bearer",
	})
}

// CustomerMe returns the authenticated customer's profile.
func (h *AuthHandler) CustomerMe(c *fiber.Ctx) error {
	p := middleware.PrincipalFromCtx(c)
	if p == nil || p.Customer == nil {
		return middleware.Unauthenticated(c)
	}
	return c.JSON(fiber.Map{
		"id":        p.Customer.CustomerID,
		"firstname": p.Customer.Firstname,
		"lastname":  p.Customer.Lastname,
		"email":     p.Customer.Email,
		"telephone": p.Customer.Telephone,
		"status":    p.Customer.Status,
	})
}

// AdminMe returns the authenticated admin's profile.
func (h *AuthHandler) AdminMe(c *fiber.Ctx) error {
	p := middleware.PrincipalFromCtx(c)
	if p == nil || p.Admin == nil {
		return middleware.Unauthenticated(c)
	}
	return c.JSON(fiber.Map{
		"id":        p.Admin.UserID,
		"username":  p.Admin.Username,
		"firstname": p.Admin.Firstname,
		"lastname":  p.Admin.Lastname,
		"email":     p.Admin.Email,
		"status":    p.Admin.Status,
	})
}

type changePasswordRequest struct {
	NewPassword string `json:"new_password"`
}

// ChangePassword re-issues the customer's legacy-scheme hash and salt.
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	p := middleware.PrincipalFromCtx(c)
	if p == nil || p.Customer == nil {
		return middleware.Unauthenticated(c)
	}

	var req changePasswordRequest
	if err := c.BodyParser(&req); err != nil || len(req.NewPassword) < 4 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "new_password must have at least 4 characters"})
	}

	if err := h.authUseCase.ChangePassword(c.UserContext(), p.ID, req.NewPassword); err != nil {
		return respondError(c, err, "Customer not found")
	}
	return c.JSON(fiber.Map{"message": "password updated"})
}
