package repositories

import (
	"context"

	"github.com/ramabhadrarao/opencart-api/internal/domain/entities"
	"gorm.io/gorm"
)

type IAdminRepository interface {
	FindAdminByID(ctx context.Context, id int) (*entities.AdminUser, error)
	FindAdminByUsername(ctx context.Context, username string) (*entities.AdminUser, error)
}

type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) FindAdminByID(ctx context.Context, id int) (*entities.AdminUser, error) {
	var admin entities.AdminUser
	if err := r.db.WithContext(ctx).Where("user_id = ?", id).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepository) FindAdminByUsername(ctx context.Context, username string) (*entities.AdminUser, error) {
	var admin entities.AdminUser
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}
