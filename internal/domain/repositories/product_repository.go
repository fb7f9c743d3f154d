package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/ramabhadrarao/opencart-api/internal/domain/entities"
	"gorm.io/gorm"
)

// ProductFilter agrupa os filtros opcionais da listagem de produtos.
type ProductFilter struct {
	Search     string
	CategoryID int
	MinPrice   *float64
	MaxPrice   *float64
	Status     *bool
}

type IProductRepository interface {
	GetProducts(ctx context.Context, skip, limit int, filter ProductFilter) ([]entities.Product, int64, error)
	FindProductByID(ctx context.Context, id int) (*entities.Product, error)
	CreateProduct(ctx context.Context, product *entities.Product) error
	UpdateProduct(ctx context.Context, product *entities.Product) error
	DeleteProduct(ctx context.Context, id int) error
}

type ProductRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{
		db:    db,
		cache: cache.New(5*time.Minute, 10*time.Minute),
	}
}

func (r *ProductRepository) GetProducts(ctx context.Context, skip, limit int, filter ProductFilter) ([]entities.Product, int64, error) {
	cacheKey := fmt.Sprintf("products:%d:%d:%s:%d:%v:%v:%v",
		skip, limit, filter.Search, filter.CategoryID, filter.MinPrice, filter.MaxPrice, filter.Status)

	if cached, found := r.cache.Get(cacheKey); found {
		entry := cached.(productPage)
		return entry.items, entry.total, nil
	}

	var products []entities.Product
	var total int64

	query := r.db.WithContext(ctx).Model(&entities.Product{}).
		Joins("JOIN oc_product_description pd ON pd.product_id = oc_product.product_id")

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("pd.name LIKE ? OR oc_product.model LIKE ? OR oc_product.sku LIKE ?", pattern, pattern, pattern)
	}
	if filter.CategoryID > 0 {
		query = query.Joins("JOIN oc_product_to_category ptc ON ptc.product_id = oc_product.product_id").
			Where("ptc.category_id = ?", filter.CategoryID)
	}
	if filter.MinPrice != nil {
		query = query.Where("oc_product.price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("oc_product.price <= ?", *filter.MaxPrice)
	}
	if filter.Status != nil {
		query = query.Where("oc_product.status = ?", *filter.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Descriptions").
		Order("oc_product.product_id").
		Offset(skip).Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}

	r.cache.Set(cacheKey, productPage{items: products, total: total}, cache.DefaultExpiration)
	return products, total, nil
}

func (r *ProductRepository) FindProductByID(ctx context.Context, id int) (*entities.Product, error) {
	var product entities.Product
	err := r.db.WithContext(ctx).
		Preload("Descriptions").
		Preload("Images").
		Where("product_id = ?", id).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) CreateProduct(ctx context.Context, product *entities.Product) error {
	r.cache.Flush()
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *ProductRepository) UpdateProduct(ctx context.Context, product *entities.Product) error {
	r.cache.Flush()
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *ProductRepository) DeleteProduct(ctx context.Context, id int) error {
	r.cache.Flush()
	return r.db.WithContext(ctx).Where("product_id = ?", id).Delete(&entities.Product{}).Error
}

type productPage struct {
	items []entities.Product
	total int64
}
