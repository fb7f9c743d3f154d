package usecases

import (
	"context"

	"github.com/ramabhadrarao/opencart-api/internal/domain/entities"
	"github.com/ramabhadrarao/opencart-api/internal/domain/repositories"
	"github.com/ramabhadrarao/opencart-api/internal/infrastructure/auth"
)

type AddressUseCase struct {
	addressRepo repositories.IAddressRepository
}

func NewAddressUseCase(addressRepo repositories.IAddressRepository) *AddressUseCase {
	return &AddressUseCase{
		addressRepo: addressRepo,
	}
}

func (uc *AddressUseCase) GetAddresses(ctx context.Context, customerID int) ([]entities.Address, error) {
	return uc.addressRepo.GetAddressesByCustomer(ctx, customerID)
}

// FindAddressForCustomer enforces ownership: addresses belong to one
// customer and are invisible to every other.
func (uc *AddressUseCase) FindAddressForCustomer(ctx context.Context, customerID, addressID int) (*entities.Address, error) {
	address, err := uc.addressRepo.FindAddressByID(ctx, addressID)
	if err != nil {
		return nil, err
	}
	if address.CustomerID != customerID {
		return nil, auth.ErrForbidden
	}
	return address, nil
}

func (uc *AddressUseCase) CreateAddress(ctx context.Context, address *entities.Address) error {
	return uc.addressRepo.CreateAddress(ctx, address)
}

func (uc *AddressUseCase) UpdateAddress(ctx context.Context, customerID int, address *entities.Address) error {
	existing, err := uc.FindAddressForCustomer(ctx, customerID, address.AddressID)
	if err != nil {
		return err
	}
	address.CustomerID = existing.CustomerID
	return uc.addressRepo.UpdateAddress(ctx, address)
}

func (uc *AddressUseCase) DeleteAddress(ctx context.Context, customerID, addressID int) error {
	if _, err := uc.FindAddressForCustomer(ctx, customerID, addressID); err != nil {
		return err
	}
	return uc.addressRepo.DeleteAddress(ctx, addressID)
}
