package usecases

import (
	"context"

	"github.com/ramabhadrarao/opencart-api/internal/domain/entities"
	"github.com/ramabhadrarao/opencart-api/internal/domain/repositories"
	"github.com/ramabhadrarao/opencart-api/internal/infrastructure/auth"
)

type OrderUseCase struct {
	orderRepo repositories.IOrderRepository
}

func NewOrderUseCase(orderRepo repositories.IOrderRepository) *OrderUseCase {
	return &OrderUseCase{
		orderRepo: orderRepo,
	}
}

// GetOrdersForPrincipal lists orders visible to the caller: admins see
// everything, customers only their own.
func (uc *OrderUseCase) GetOrdersForPrincipal(ctx context.Context, p *auth.Principal, skip, limit int, statusID *int) ([]entities.Order, int64, error) {
	var customerID *int
	if p.Type == entities.UserTypeCustomer {
		customerID = &p.ID
	}
	return uc.orderRepo.GetOrders(ctx, skip, limit, customerID, statusID)
}

// FindOrderForPrincipal loads one order with an ownership check: a
// customer asking for another customer's order gets ErrForbidden, which
// is surfaced distinctly from an authentication failure.
func (uc *OrderUseCase) FindOrderForPrincipal(ctx context.Context, p *auth.Principal, orderID int) (*entities.Order, error) {
	order, err := uc.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if p.Type == entities.UserTypeCustomer && order.CustomerID != p.ID {
		return nil, auth.ErrForbidden
	}
	return order, nil
}

func (uc *OrderUseCase) UpdateOrderStatus(ctx context.Context, orderID, statusID int) error {
	return uc.orderRepo.UpdateOrderStatus(ctx, orderID, statusID)
}
