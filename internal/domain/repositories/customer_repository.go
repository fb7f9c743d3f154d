package repositories

import (
	"context"

	"github.com/ramabhadrarao/opencart-api/internal/domain/entities"
	"gorm.io/gorm"
)

type ICustomerRepository interface {
	GetCustomers(ctx context.Context, skip, limit int, search string) ([]entities.Customer, int64, error)
	FindCustomerByID(ctx context.Context, id int) (*entities.Customer, error)
	FindCustomerByEmail(ctx context.Context, email string) (*entities.Customer, error)
	UpdatePassword(ctx context.Context, id int, hash, salt string) error
}

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) GetCustomers(ctx context.Context, skip, limit int, search string) ([]entities.Customer, int64, error) {
	var customers []entities.Customer
	var total int64

	query := r.db.WithContext(ctx).Model(&entities.Customer{})
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("firstname LIKE ? OR lastname LIKE ? OR email LIKE ?", pattern, pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("customer_id").Offset(skip).Limit(limit).Find(&customers).Error
	return customers, total, err
}

func (r *CustomerRepository) FindCustomerByID(ctx context.Context, id int) (*entities.Customer, error) {
	var customer entities.Customer
	if err := r.db.WithContext(ctx).Where("customer_id = ?", id).First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *CustomerRepository) FindCustomerByEmail(ctx context.Context, email string) (*entities.Customer, error) {
	var customer entities.Customer
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

// UpdatePassword serves the profile-update flow; password and salt are
// the only customer columns this API writes.
func (r *CustomerRepository) UpdatePassword(ctx context.Context, id int, hash, salt string) error {
	return r.db.WithContext(ctx).Model(&entities.Customer{}).
		Where("customer_id = ?", id).
		Updates(map[string]interface{}{"password": hash, "salt": salt}).Error
}
