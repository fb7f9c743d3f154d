package repositories

import (
	"context"
	"time"

	"github.com/ramabhadrarao/opencart-api/internal/domain/entities"
	"gorm.io/gorm"
)

type IOrderRepository interface {
	GetOrders(ctx context.Context, skip, limit int, customerID *int, statusID *int) ([]entities.Order, int64, error)
	FindOrderByID(ctx context.Context, id int) (*entities.Order, error)
	UpdateOrderStatus(ctx context.Context, id, statusID int) error
}

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) GetOrders(ctx context.Context, skip, limit int, customerID *int, statusID *int) ([]entities.Order, int64, error) {
	var orders []entities.Order
	var total int64

	query := r.db.WithContext(ctx).Model(&entities.Order{})
	if customerID != nil {
		query = query.Where("customer_id = ?", *customerID)
	}
	if statusID != nil {
		query = query.Where("order_status_id = ?", *statusID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("order_id DESC").Offset(skip).Limit(limit).Find(&orders).Error
	return orders, total, err
}

func (r *OrderRepository) FindOrderByID(ctx context.Context, id int) (*entities.Order, error) {
	var order entities.Order
	err := r.db.WithContext(ctx).
		Preload("Products").
		Where("order_id = ?", id).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) UpdateOrderStatus(ctx context.Context, id, statusID int) error {
	return r.db.WithContext(ctx).Model(&entities.Order{}).
		Where("order_id = ?", id).
		Updates(map[string]interface{}{
			"order_status_id": statusID,
			"date_modified":   time.Now().UTC(),
		}).Error
}
