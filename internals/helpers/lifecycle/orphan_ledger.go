package lifecycle

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrphanRecorder dipakai Manager saat cleanup object gagal.
type OrphanRecorder interface {
	RecordOrphan(ctx context.Context, o *OrphanedObjectModel) error
}

// OrphanLedger adalah OrphanRecorder plus operasi yang dibutuhkan reaper.
type OrphanLedger interface {
	OrphanRecorder
	ListPending(ctx context.Context, limit, maxAttempts int) ([]OrphanedObjectModel, error)
	MarkResolved(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, cause string) error
}

type GormOrphanLedger struct {
	DB *gorm.DB
}

func NewGormOrphanLedger(db *gorm.DB) *GormOrphanLedger {
	return &GormOrphanLedger{DB: db}
}

func (l *GormOrphanLedger) RecordOrphan(ctx context.Context, o *OrphanedObjectModel) error {
	return l.DB.WithContext(ctx).Create(o).Error
}

func (l *GormOrphanLedger) ListPending(ctx context.Context, limit, maxAttempts int) ([]OrphanedObjectModel, error) {
	var rows []OrphanedObjectModel
	q := l.DB.WithContext(ctx).
		Where("orphaned_object_resolved_at IS NULL").
		Order("orphaned_object_created_at ASC").
		Limit(limit)
	if maxAttempts > 0 {
		q = q.Where("orphaned_object_attempts < ?", maxAttempts)
	}
	err := q.Find(&rows).Error
	return rows, err
}

func (l *GormOrphanLedger) MarkResolved(ctx context.Context, id uuid.UUID) error {
	now := time.Now()
	return l.DB.WithContext(ctx).
		Model(&OrphanedObjectModel{}).
		Where("orphaned_object_id = ?", id).
		Updates(map[string]any{
			"orphaned_object_resolved_at": now,
			"orphaned_object_attempts":    gorm.Expr("orphaned_object_attempts + 1"),
		}).Error
}

func (l *GormOrphanLedger) MarkFailed(ctx context.Context, id uuid.UUID, cause string) error {
	return l.DB.WithContext(ctx).
		Model(&OrphanedObjectModel{}).
		Where("orphaned_object_id = ?", id).
		Updates(map[string]any{
			"orphaned_object_last_error": cause,
			"orphaned_object_attempts":   gorm.Expr("orphaned_object_attempts + 1"),
		}).Error
}
