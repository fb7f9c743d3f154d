package repositories

import (
	"context"

	"github.com/ramabhadrarao/opencart-api/internal/domain/entities"
	"gorm.io/gorm"
)

type ICartRepository interface {
	GetCartItems(ctx context.Context, customerID int, sessionID string) ([]entities.CartItem, error)
	FindCartItemByID(ctx context.Context, cartID int) (*entities.CartItem, error)
	AddCartItem(ctx context.Context, item *entities.CartItem) error
	UpdateCartItemQuantity(ctx context.Context, cartID, quantity int) error
	RemoveCartItem(ctx context.Context, cartID int) error
	ClearCart(ctx context.Context, customerID int, sessionID string) error
}

type CartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{db: db}
}

// ownerClause seleciona o carrinho pelo dono: customer_id quando o
// cliente está logado, senão o session_id anônimo.
func ownerClause(query *gorm.DB, customerID int, sessionID string) *gorm.DB {
	if customerID > 0 {
		return query.Where("customer_id = ?", customerID)
	}
	return query.Where("customer_id = 0 AND session_id = ?", sessionID)
}

func (r *CartRepository) GetCartItems(ctx context.Context, customerID int, sessionID string) ([]entities.CartItem, error) {
	var items []entities.CartItem
	query := ownerClause(r.db.WithContext(ctx), customerID, sessionID)
	err := query.Order("cart_id").Find(&items).Error
	return items, err
}

func (r *CartRepository) FindCartItemByID(ctx context.Context, cartID int) (*entities.CartItem, error) {
	var item entities.CartItem
	if err := r.db.WithContext(ctx).Where("cart_id = ?", cartID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartRepository) AddCartItem(ctx context.Context, item *entities.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *CartRepository) UpdateCartItemQuantity(ctx context.Context, cartID, quantity int) error {
	return r.db.WithContext(ctx).Model(&entities.CartItem{}).
		Where("cart_id = ?", cartID).
		Update("quantity", quantity).Error
}

func (r *CartRepository) RemoveCartItem(ctx context.Context, cartID int) error {
	return r.db.WithContext(ctx).Where("cart_id = ?", cartID).Delete(&entities.CartItem{}).Error
}

func (r *CartRepository) ClearCart(ctx context.Context, customerID int, sessionID string) error {
	query := ownerClause(r.db.WithContext(ctx), customerID, sessionID)
	return query.Delete(&entities.CartItem{}).Error
}
