package repositories

import (
	"context"

	"github.com/ramabhadrarao/opencart-api/internal/domain/entities"
	"gorm.io/gorm"
)

type IAddressRepository interface {
	GetAddressesByCustomer(ctx context.Context, customerID int) ([]entities.Address, error)
	FindAddressByID(ctx context.Context, id int) (*entities.Address, error)
	CreateAddress(ctx context.Context, address *entities.Address) error
	UpdateAddress(ctx context.Context, address *entities.Address) error
	DeleteAddress(ctx context.Context, id int) error
}

type AddressRepository struct {
	db *gorm.DB
}

func NewAddressRepository(db *gorm.DB) *AddressRepository {
	return &AddressRepository{db: db}
}

func (r *AddressRepository) GetAddressesByCustomer(ctx context.Context, customerID int) ([]entities.Address, error) {
	var addresses []entities.Address
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("address_id").
		Find(&addresses).Error
	return addresses, err
}

func (r *AddressRepository) FindAddressByID(ctx context.Context, id int) (*entities.Address, error) {
	var address entities.Address
	if err := r.db.WithContext(ctx).Where("address_id = ?", id).First(&address).Error; err != nil {
		return nil, err
	}
	return &address, nil
}

func (r *AddressRepository) CreateAddress(ctx context.Context, address *entities.Address) error {
	return r.db.WithContext(ctx).Create(address).Error
}

func (r *AddressRepository) UpdateAddress(ctx context.Context, address *entities.Address) error {
	return r.db.WithContext(ctx).Save(address).Error
}

func (r *AddressRepository) DeleteAddress(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Where("address_id = ?", id).Delete(&entities.Address{}).Error
}
