package repository

import (
	"gorm.io/gorm"

	"schoolsite_backend/internals/features/school/teachers/model"
	"schoolsite_backend/internals/helpers/repository"
)

func NewTeacherRepository(db *gorm.DB) *repository.GormRepository[model.TeacherModel] {
	return repository.NewGormRepository[model.TeacherModel](db, "teacher_id", "teacher_created_at")
}
