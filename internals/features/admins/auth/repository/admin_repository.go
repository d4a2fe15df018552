package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"schoolsite_backend/internals/features/admins/auth/model"
	"schoolsite_backend/internals/helpers/repository"
)

type AdminRepository struct {
	DB *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{DB: db}
}

// FindByUsername → repository.ErrRecordNotFound kalau tidak ada.
func (r *AdminRepository) FindByUsername(ctx context.Context, username string) (*model.AdminModel, error) {
	var admin model.AdminModel
	err := r.DB.WithContext(ctx).Where("admin_username = ?", username).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepository) Exists(ctx context.Context, username string) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.AdminModel{}).Where("admin_username = ?", username).Count(&n).Error
	return n > 0, err
}
