package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/ramabhadrarao/opencart-api/internal/application/usecases"
	"github.com/ramabhadrarao/opencart-api/internal/domain/entities"
)

type CategoryHandler struct {
	categoryUseCase *usecases.CategoryUseCase
}

func NewCategoryHandler(categoryUseCase *usecases.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{
		categoryUseCase: categoryUseCase,
	}
}

func (h *CategoryHandler) GetCategories(c *fiber.Ctx) error {
	skip, limit := parsePagination(c)

	var parentID *int
	if raw := c.Query("parent_id"); raw != "" {
		v := c.QueryInt("parent_id", 0)
		parentID = &v
	}
	var status *bool
	if raw := c.Query("status"); raw != "" {
		v := raw == "true" || raw == "1"
		status = &v
	}

	categories, total, err := h.categoryUseCase.GetCategories(c.UserContext(), skip, limit, parentID, status)
	if err != nil {
		return respondError(c, err, "Categories not found")
	}
	return c.JSON(listResponse(categories, total, skip, limit))
}

func (h *CategoryHandler) GetCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid category id"})
	}

	category, err := h.categoryUseCase.FindCategoryByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "Category not found")
	}
	return c.JSON(category)
}

func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	var category entities.Category
	if err := c.BodyParser(&category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid category payload"})
	}

	now := time.Now().UTC()
	category.DateAdded = now
	category.DateModified = now

	if err := h.categoryUseCase.CreateCategory(c.UserContext(), &category); err != nil {
		return respondError(c, err, "Category not found")
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

func (h *CategoryHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid category id"})
	}

	existing, err := h.categoryUseCase.FindCategoryByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "Category not found")
	}

	var category entities.Category
	if err := c.BodyParser(&category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid category payload"})
	}
	category.CategoryID = id
	category.DateAdded = existing.DateAdded
	category.DateModified = time.Now().UTC()

	if err := h.categoryUseCase.UpdateCategory(c.UserContext(), &category); err != nil {
		return respondError(c, err, "Category not found")
	}
	return c.JSON(category)
}

func (h *CategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid category id"})
	}

	if _, err := h.categoryUseCase.FindCategoryByID(c.UserContext(), id); err != nil {
		return respondError(c, err, "Category not found")
	}
	if err := h.categoryUseCase.DeleteCategory(c.UserContext(), id); err != nil {
		return respondError(c, err, "Category not found")
	}
	return c.JSON(fiber.Map{"message": "Category deleted"})
}
