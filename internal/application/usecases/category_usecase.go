package usecases

import (
	"context"

	"github.com/ramabhadrarao/opencart-api/internal/domain/entities"
	"github.com/ramabhadrarao/opencart-api/internal/domain/repositories"
)

type CategoryUseCase struct {
	categoryRepo repositories.ICategoryRepository
}

func NewCategoryUseCase(categoryRepo repositories.ICategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

func (uc *CategoryUseCase) GetCategories(ctx context.Context, skip, limit int, parentID *int, status *bool) ([]entities.Category, int64, error) {
	return uc.categoryRepo.GetCategories(ctx, skip, limit, parentID, status)
}

func (uc *CategoryUseCase) FindCategoryByID(ctx context.Context, id int) (*entities.Category, error) {
	return uc.categoryRepo.FindCategoryByID(ctx, id)
}

func (uc *CategoryUseCase) CreateCategory(ctx context.Context, category *entities.Category) error {
	return uc.categoryRepo.CreateCategory(ctx, category)
}

func (uc *CategoryUseCase) UpdateCategory(ctx context.Context, category *entities.Category) error {
	return uc.categoryRepo.UpdateCategory(ctx, category)
}

func (uc *CategoryUseCase) DeleteCategory(ctx context.Context, id int) error {
	return uc.categoryRepo.DeleteCategory(ctx, id)
}
