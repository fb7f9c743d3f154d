package repositories

import (
	"context"

	"github.com/ramabhadrarao/opencart-api/internal/domain/entities"
	"gorm.io/gorm"
)

type ILocationRepository interface {
	GetCountries(ctx context.Context, skip, limit int, status *bool) ([]entities.Country, int64, error)
	FindCountryByID(ctx context.Context, id int) (*entities.Country, error)
	GetZones(ctx context.Context, skip, limit int, countryID *int) ([]entities.Zone, int64, error)
	FindZoneByID(ctx context.Context, id int) (*entities.Zone, error)
}

type LocationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

func (r *LocationRepository) GetCountries(ctx context.Context, skip, limit int, status *bool) ([]entities.Country, int64, error) {
	var countries []entities.Country
	var total int64

	query := r.db.WithContext(ctx).Model(&entities.Country{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("name").Offset(skip).Limit(limit).Find(&countries).Error
	return countries, total, err
}

func (r *LocationRepository) FindCountryByID(ctx context.Context, id int) (*entities.Country, error) {
	var country entities.Country
	if err := r.db.WithContext(ctx).Where("country_id = ?", id).First(&country).Error; err != nil {
		return nil, err
	}
	return &country, nil
}

func (r *LocationRepository) GetZones(ctx context.Context, skip, limit int, countryID *int) ([]entities.Zone, int64, error) {
	var zones []entities.Zone
	var total int64

	query := r.db.WithContext(ctx).Model(&entities.Zone{})
	if countryID != nil {
		query = query.Where("country_id = ?", *countryID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("name").Offset(skip).Limit(limit).Find(&zones).Error
	return zones, total, err
}

func (r *LocationRepository) FindZoneByID(ctx context.Context, id int) (*entities.Zone, error) {
	var zone entities.Zone
	if err := r.db.WithContext(ctx).Where("zone_id = ?", id).First(&zone).Error; err != nil {
		return nil, err
	}
	return &zone, nil
}
