package repositories

import (
	"context"

	"github.com/ramabhadrarao/opencart-api/internal/domain/entities"
	"gorm.io/gorm"
)

type IManufacturerRepository interface {
	GetManufacturers(ctx context.Context, skip, limit int) ([]entities.Manufacturer, int64, error)
	FindManufacturerByID(ctx context.Context, id int) (*entities.Manufacturer, error)
	CreateManufacturer(ctx context.Context, m *entities.Manufacturer) error
	UpdateManufacturer(ctx context.Context, m *entities.Manufacturer) error
	DeleteManufacturer(ctx context.Context, id int) error
}

type ManufacturerRepository struct {
	db *gorm.DB
}

func NewManufacturerRepository(db *gorm.DB) *ManufacturerRepository {
	return &ManufacturerRepository{db: db}
}

func (r *ManufacturerRepository) GetManufacturers(ctx context.Context, skip, limit int) ([]entities.Manufacturer, int64, error) {
	var manufacturers []entities.Manufacturer
	var total int64

	if err := r.db.WithContext(ctx).Model(&entities.Manufacturer{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Order("sort_order, manufacturer_id").
		Offset(skip).Limit(limit).
		Find(&manufacturers).Error
	return manufacturers, total, err
}

func (r *ManufacturerRepository) FindManufacturerByID(ctx context.Context, id int) (*entities.Manufacturer, error) {
	var m entities.Manufacturer
	if err := r.db.WithContext(ctx).Where("manufacturer_id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *ManufacturerRepository) CreateManufacturer(ctx context.Context, m *entities.Manufacturer) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *ManufacturerRepository) UpdateManufacturer(ctx context.Context, m *entities.Manufacturer) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *ManufacturerRepository) DeleteManufacturer(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Where("manufacturer_id = ?", id).Delete(&entities.Manufacturer{}).Error
}
