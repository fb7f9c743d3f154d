package repositories

import (
	"context"

	"github.com/ramabhadrarao/opencart-api/internal/domain/entities"
	"gorm.io/gorm"
)

type ICategoryRepository interface {
	GetCategories(ctx context.Context, skip, limit int, parentID *int, status *bool) ([]entities.Category, int64, error)
	FindCategoryByID(ctx context.Context, id int) (*entities.Category, error)
	CreateCategory(ctx context.Context, category *entities.Category) error
	UpdateCategory(ctx context.Context, category *entities.Category) error
	DeleteCategory(ctx context.Context, id int) error
}

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) GetCategories(ctx context.Context, skip, limit int, parentID *int, status *bool) ([]entities.Category, int64, error) {
	var categories []entities.Category
	var total int64

	query := r.db.WithContext(ctx).Model(&entities.Category{})
	if parentID != nil {
		query = query.Where("parent_id = ?", *parentID)
	}
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Descriptions").
		Order("sort_order, category_id").
		Offset(skip).Limit(limit).
		Find(&categories).Error
	return categories, total, err
}

func (r *CategoryRepository) FindCategoryByID(ctx context.Context, id int) (*entities.Category, error) {
	var category entities.Category
	err := r.db.WithContext(ctx).
		Preload("Descriptions").
		Where("category_id = ?", id).
		First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) CreateCategory(ctx context.Context, category *entities.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *CategoryRepository) UpdateCategory(ctx context.Context, category *entities.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *CategoryRepository) DeleteCategory(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Where("category_id = ?", id).Delete(&entities.Category{}).Error
}
