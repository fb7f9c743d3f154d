package usecases

import (
	"context"

	"github.com/ramabhadrarao/opencart-api/internal/domain/entities"
	"github.com/ramabhadrarao/opencart-api/internal/domain/repositories"
)

type ProductUseCase struct {
	productRepo repositories.IProductRepository
}

func NewProductUseCase(productRepo repositories.IProductRepository) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
	}
}

func (uc *ProductUseCase) GetProducts(ctx context.Context, skip, limit int, filter repositories.ProductFilter) ([]entities.Product, int64, error) {
	return uc.productRepo.GetProducts(ctx, skip, limit, filter)
}

func (uc *ProductUseCase) FindProductByID(ctx context.Context, id int) (*entities.Product, error) {
	return uc.productRepo.FindProductByID(ctx, id)
}

func (uc *ProductUseCase) CreateProduct(ctx context.Context, product *entities.Product) error {
	return uc.productRepo.CreateProduct(ctx, product)
}

func (uc *ProductUseCase) UpdateProduct(ctx context.Context, product *entities.Product) error {
	return uc.productRepo.UpdateProduct(ctx, product)
}

func (uc *ProductUseCase) DeleteProduct(ctx context.Context, id int) error {
	return uc.productRepo.DeleteProduct(ctx, id)
}
