package repository

import (
	"gorm.io/gorm"

	"schoolsite_backend/internals/features/school/notices/model"
	"schoolsite_backend/internals/helpers/repository"
)

func NewNoticeRepository(db *gorm.DB) *repository.GormRepository[model.NoticeModel] {
	return repository.NewGormRepository[model.NoticeModel](db, "notice_id", "notice_created_at")
}
