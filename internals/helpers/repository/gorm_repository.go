package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrRecordNotFound dikembalikan FindByID/Delete saat id tidak ada.
var ErrRecordNotFound = errors.New("record not found")

// GormRepository adalah CRUD generik untuk model dengan primary key uuid.
type GormRepository[M any] struct {
	DB            *gorm.DB
	IDColumn      string
	CreatedColumn string
}

func NewGormRepository[M any](db *gorm.DB, idColumn, createdColumn string) *GormRepository[M] {
	return &GormRepository[M]{DB: db, IDColumn: idColumn, CreatedColumn: createdColumn}
}

func (r *GormRepository[M]) Create(ctx context.Context, m *M) error {
	return r.DB.WithContext(ctx).Create(m).Error
}

func (r *GormRepository[M]) FindByID(ctx context.Context, id uuid.UUID) (*M, error) {
	var m M
	err := r.DB.WithContext(ctx).Where(r.IDColumn+" = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *GormRepository[M]) Update(ctx context.Context, m *M) error {
	return r.DB.WithContext(ctx).Save(m).Error
}

func (r *GormRepository[M]) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.DB.WithContext(ctx).Where(r.IDColumn+" = ?", id).Delete(new(M))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// List: terbaru dulu.
func (r *GormRepository[M]) List(ctx context.Context) ([]M, error) {
	var items []M
	err := r.DB.WithContext(ctx).
		Order(r.CreatedColumn + " DESC").
		Order(r.IDColumn + " DESC").
		Find(&items).Error
	return items, err
}
