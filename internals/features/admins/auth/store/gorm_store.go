package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schoolsite_backend/internals/features/admins/auth/model"
	"schoolsite_backend/internals/features/admins/auth/service"
)

// GormStore menyimpan sesi di tabel admin_sessions.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) Get(ctx context.Context, tokenHash string) (*model.AdminSessionModel, error) {
	var sess model.AdminSessionModel
	err := s.DB.WithContext(ctx).
		Where("admin_session_token_hash = ?", tokenHash).
		First(&sess).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, service.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sess, nil
}

// Set = upsert; yang berubah hanya last_activity_at.
func (s *GormStore) Set(ctx context.Context, sess *model.AdminSessionModel) error {
	return s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "admin_session_token_hash"}},
			DoUpdates: clause.AssignmentColumns([]string{"admin_session_last_activity_at"}),
		}).
		Create(sess).Error
}

// Touch hanya UPDATE; baris yang sudah dihapus tidak dibuat lagi.
func (s *GormStore) Touch(ctx context.Context, sess *model.AdminSessionModel) error {
	res := s.DB.WithContext(ctx).
		Model(&model.AdminSessionModel{}).
		Where("admin_session_token_hash = ?", sess.AdminSessionTokenHash).
		Update("admin_session_last_activity_at", sess.AdminSessionLastActivityAt)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return service.ErrSessionNotFound
	}
	return nil
}

func (s *GormStore) Destroy(ctx context.Context, tokenHash string) error {
	return s.DB.WithContext(ctx).
		Where("admin_session_token_hash = ?", tokenHash).
		Delete(&model.AdminSessionModel{}).Error
}

func (s *GormStore) DeleteIdleBefore(ctx context.Context, before time.Time) (int64, error) {
	res := s.DB.WithContext(ctx).
		Where("admin_session_last_activity_at < ?", before).
		Delete(&model.AdminSessionModel{})
	return res.RowsAffected, res.Error
}
