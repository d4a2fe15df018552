package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"schoolsite_backend/internals/features/school/routines/model"
	"schoolsite_backend/internals/helpers/repository"
)

type RoutineRepository struct {
	DB *gorm.DB
}

func NewRoutineRepository(db *gorm.DB) *RoutineRepository {
	return &RoutineRepository{DB: db}
}

func orderedRows(db *gorm.DB) *gorm.DB {
	return db.Order("routine_row_position ASC")
}

// Replace menghapus semua routine kelas ini lalu insert yang baru dalam satu transaksi.
func (r *RoutineRepository) Replace(ctx context.Context, routine *model.RoutineModel) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		old := tx.Model(&model.RoutineModel{}).
			Select("routine_id").
			Where("routine_class_name = ?", routine.RoutineClassName)
		if err := tx.Where("routine_row_routine_id IN (?)", old).Delete(&model.RoutineRowModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("routine_class_name = ?", routine.RoutineClassName).Delete(&model.RoutineModel{}).Error; err != nil {
			return err
		}
		return tx.Create(routine).Error
	})
}

// List: terbaru dulu, baris sesuai urutan.
func (r *RoutineRepository) List(ctx context.Context) ([]model.RoutineModel, error) {
	var items []model.RoutineModel
	err := r.DB.WithContext(ctx).
		Preload("Rows", orderedRows).
		Order("routine_created_at DESC").
		Order("routine_id DESC").
		Find(&items).Error
	return items, err
}

func (r *RoutineRepository) FindByClass(ctx context.Context, className string) (*model.RoutineModel, error) {
	var m model.RoutineModel
	err := r.DB.WithContext(ctx).
		Preload("Rows", orderedRows).
		Where("routine_class_name = ?", className).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// DeleteByClass mengembalikan jumlah routine yang terhapus (0 bukan error).
func (r *RoutineRepository) DeleteByClass(ctx context.Context, className string) (int64, error) {
	var deleted int64
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		old := tx.Model(&model.RoutineModel{}).
			Select("routine_id").
			Where("routine_class_name = ?", className)
		if err := tx.Where("routine_row_routine_id IN (?)", old).Delete(&model.RoutineRowModel{}).Error; err != nil {
			return err
		}
		res := tx.Where("routine_class_name = ?", className).Delete(&model.RoutineModel{})
		deleted = res.RowsAffected
		return res.Error
	})
	return deleted, err
}
