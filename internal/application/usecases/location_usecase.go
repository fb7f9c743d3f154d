package usecases

import (
	"context"

	"github.com/ramabhadrarao/opencart-api/internal/domain/entities"
	"github.com/ramabhadrarao/opencart-api/internal/domain/repositories"
)

type LocationUseCase struct {
	locationRepo repositories.ILocationRepository
}

func NewLocationUseCase(locationRepo repositories.ILocationRepository) *LocationUseCase {
	return &LocationUseCase{
		locationRepo: locationRepo,
	}
}

func (uc *LocationUseCase) GetCountries(ctx context.Context, skip, limit int, status *bool) ([]entities.Country, int64, error) {
	return uc.locationRepo.GetCountries(ctx, skip, limit, status)
}

func (uc *LocationUseCase) FindCountryByID(ctx context.Context, id int) (*entities.Country, error) {
	return uc.locationRepo.FindCountryByID(ctx, id)
}

func (uc *LocationUseCase) GetZones(ctx context.Context, skip, limit int, countryID *int) ([]entities.Zone, int64, error) {
	return uc.locationRepo.GetZones(ctx, skip, limit, countryID)
}

func (uc *LocationUseCase) FindZoneByID(ctx context.Context, id int) (*entities.Zone, error) {
	return uc.locationRepo.FindZoneByID(ctx, id)
}
