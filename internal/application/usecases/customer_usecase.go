package usecases

import (
	"context"

	"github.com/ramabhadrarao/opencart-api/internal/domain/entities"
	"github.com/ramabhadrarao/opencart-api/internal/domain/repositories"
)

type CustomerUseCase struct {
	customerRepo repositories.ICustomerRepository
}

func NewCustomerUseCase(customerRepo repositories.ICustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{
		customerRepo: customerRepo,
	}
}

func (uc *CustomerUseCase) GetCustomers(ctx context.Context, skip, limit int, search string) ([]entities.Customer, int64, error) {
	return uc.customerRepo.GetCustomers(ctx, skip, limit, search)
}

func (uc *CustomerUseCase) FindCustomerByID(ctx context.Context, id int) (*entities.Customer, error) {
	return uc.customerRepo.FindCustomerByID(ctx, id)
}
