package repository

import (
	"gorm.io/gorm"

	"schoolsite_backend/internals/features/school/galleries/model"
	"schoolsite_backend/internals/helpers/repository"
)

func NewGalleryRepository(db *gorm.DB) *repository.GormRepository[model.GalleryModel] {
	return repository.NewGormRepository[model.GalleryModel](db, "gallery_id", "gallery_created_at")
}
