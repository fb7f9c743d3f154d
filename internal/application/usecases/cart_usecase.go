package usecases

import (
	"context"
	"time"

	"github.com/ramabhadrarao/opencart-api/internal/domain/entities"
	"github.com/ramabhadrarao/opencart-api/internal/domain/repositories"
	"github.com/ramabhadrarao/opencart-api/internal/infrastructure/auth"
)

// CartSummary is the cart plus product details and totals.
type CartSummary struct {
	Items      []CartLine `json:"items"`
	TotalItems int        `json:"total_items"`
	TotalPrice float64    `json:"total_price"`
}

type CartLine struct {
	CartID    int     `json:"cart_id"`
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	Model     string  `json:"model"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

type CartUseCase struct {
	cartRepo    repositories.ICartRepository
	productRepo repositories.IProductRepository
}

func NewCartUseCase(cartRepo repositories.ICartRepository, productRepo repositories.IProductRepository) *CartUseCase {
	return &CartUseCase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// GetCart resolves the cart for a customer (when authenticated) or an
// anonymous tracking session.
func (uc *CartUseCase) GetCart(ctx context.Context, customerID int, sessionID string) (*CartSummary, error) {
	items, err := uc.cartRepo.GetCartItems(ctx, customerID, sessionID)
	if err != nil {
		return nil, err
	}

	summary := &CartSummary{Items: []CartLine{}}
	for _, item := range items {
		line := CartLine{
			CartID:    item.CartID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
		if product, err := uc.productRepo.FindProductByID(ctx, item.ProductID); err == nil {
			line.Model = product.Model
			line.UnitPrice = product.Price
			line.LineTotal = product.Price * float64(item.Quantity)
			if len(product.Descriptions) > 0 {
				line.Name = product.Descriptions[0].Name
			}
		}
		summary.Items = append(summary.Items, line)
		summary.TotalItems += item.Quantity
		summary.TotalPrice += line.LineTotal
	}
	return summary, nil
}

func (uc *CartUseCase) AddItem(ctx context.Context, customerID int, sessionID string, productID, quantity int) (*entities.CartItem, error) {
	// The product must exist and be purchasable
	if _, err := uc.productRepo.FindProductByID(ctx, productID); err != nil {
		return nil, err
	}
	if quantity < 1 {
		quantity = 1
	}

	item := &entities.CartItem{
		CustomerID: customerID,
		SessionID:  sessionID,
		ProductID:  productID,
		Option:     "{}",
		Quantity:   quantity,
		DateAdded:  time.Now().UTC(),
	}
	if err := uc.cartRepo.AddCartItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (uc *CartUseCase) UpdateItem(ctx context.Context, customerID int, sessionID string, cartID, quantity int) error {
	if err := uc.checkOwnership(ctx, customerID, sessionID, cartID); err != nil {
		return err
	}
	if quantity < 1 {
		return uc.cartRepo.RemoveCartItem(ctx, cartID)
	}
	return uc.cartRepo.UpdateCartItemQuantity(ctx, cartID, quantity)
}

func (uc *CartUseCase) RemoveItem(ctx context.Context, customerID int, sessionID string, cartID int) error {
	if err := uc.checkOwnership(ctx, customerID, sessionID, cartID); err != nil {
		return err
	}
	return uc.cartRepo.RemoveCartItem(ctx, cartID)
}

func (uc *CartUseCase) ClearCart(ctx context.Context, customerID int, sessionID string) error {
	return uc.cartRepo.ClearCart(ctx, customerID, sessionID)
}

func (uc *CartUseCase) checkOwnership(ctx context.Context, customerID int, sessionID string, cartID int) error {
	item, err := uc.cartRepo.FindCartItemByID(ctx, cartID)
	if err != nil {
		return err
	}
	if customerID > 0 {
		if item.CustomerID != customerID {
			return auth.ErrForbidden
		}
		return nil
	}
	if item.CustomerID != 0 || item.SessionID != sessionID {
		return auth.ErrForbidden
	}
	return nil
}
