package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/ramabhadrarao/opencart-api/internal/application/usecases"
	"github.com/ramabhadrarao/opencart-api/internal/domain/entities"
	"github.com/ramabhadrarao/opencart-api/internal/domain/repositories"
)

type ProductHandler struct {
	productUseCase *usecases.ProductUseCase
}

func NewProductHandler(productUseCase *usecases.ProductUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
	}
}

// GetProducts lista produtos com filtros opcionais de busca, categoria,
// faixa de preço e status.
func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	skip, limit := parsePagination(c)

	filter := repositories.ProductFilter{
		Search:     c.Query("search"),
		CategoryID: c.QueryInt("category_id", 0),
	}
	if raw := c.Query("min_price"); raw != "" {
		v := c.QueryFloat("min_price")
		filter.MinPrice = &v
	}
	if raw := c.Query("max_price"); raw != "" {
		v := c.QueryFloat("max_price")
		filter.MaxPrice = &v
	}
	if raw := c.Query("status"); raw != "" {
		v := raw == "true" || raw == "1"
		filter.Status = &v
	}

	products, total, err := h.productUseCase.GetProducts(c.UserContext(), skip, limit, filter)
	if err != nil {
		return respondError(c, err, "Products not found")
	}
	return c.JSON(listResponse(products, total, skip, limit))
}

func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product id"})
	}

	product, err := h.productUseCase.FindProductByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "Product not found")
	}
	return c.JSON(product)
}

func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var product entities.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product payload"})
	}

	now := time.Now().UTC()
	product.DateAdded = now
	product.DateModified = now

	if err := h.productUseCase.CreateProduct(c.UserContext(), &product); err != nil {
		return respondError(c, err, "Product not found")
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product id"})
	}

	existing, err := h.productUseCase.FindProductByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "Product not found")
	}

	var product entities.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product payload"})
	}
	product.ProductID = id
	product.DateAdded = existing.DateAdded
	product.DateModified = time.Now().UTC()

	if err := h.productUseCase.UpdateProduct(c.UserContext(), &product); err != nil {
		return respondError(c, err, "Product not found")
	}
	return c.JSON(product)
}

func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product id"})
	}

	if _, err := h.productUseCase.FindProductByID(c.UserContext(), id); err != nil {
		return respondError(c, err, "Product not found")
	}
	if err := h.productUseCase.DeleteProduct(c.UserContext(), id); err != nil {
		return respondError(c, err, "Product not found")
	}
	return c.JSON(fiber.Map{"message": "Product deleted"})
}
