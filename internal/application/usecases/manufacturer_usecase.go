package usecases

import (
	"context"

	"github.com/ramabhadrarao/opencart-api/internal/domain/entities"
	"github.com/ramabhadrarao/opencart-api/internal/domain/repositories"
)

type ManufacturerUseCase struct {
	manufacturerRepo repositories.IManufacturerRepository
}

func NewManufacturerUseCase(manufacturerRepo repositories.IManufacturerRepository) *ManufacturerUseCase {
	return &ManufacturerUseCase{
		manufacturerRepo: manufacturerRepo,
	}
}

func (uc *ManufacturerUseCase) GetManufacturers(ctx context.Context, skip, limit int) ([]entities.Manufacturer, int64, error) {
	return uc.manufacturerRepo.GetManufacturers(ctx, skip, limit)
}

func (uc *ManufacturerUseCase) FindManufacturerByID(ctx context.Context, id int) (*entities.Manufacturer, error) {
	return uc.manufacturerRepo.FindManufacturerByID(ctx, id)
}

func (uc *ManufacturerUseCase) CreateManufacturer(ctx context.Context, m *entities.Manufacturer) error {
	return uc.manufacturerRepo.CreateManufacturer(ctx, m)
}

func (uc *ManufacturerUseCase) UpdateManufacturer(ctx context.Context, m *entities.Manufacturer) error {
	return uc.manufacturerRepo.UpdateManufacturer(ctx, m)
}

func (uc *ManufacturerUseCase) DeleteManufacturer(ctx context.Context, id int) error {
	return uc.manufacturerRepo.DeleteManufacturer(ctx, id)
}
