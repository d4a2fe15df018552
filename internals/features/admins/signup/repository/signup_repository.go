package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	authModel "schoolsite_backend/internals/features/admins/auth/model"
	"schoolsite_backend/internals/features/admins/signup/model"
	"schoolsite_backend/internals/helpers/apperror"
	"schoolsite_backend/internals/helpers/repository"
)

type SignupRepository struct {
	DB *gorm.DB
}

func NewSignupRepository(db *gorm.DB) *SignupRepository {
	return &SignupRepository{DB: db}
}

func (r *SignupRepository) FindByUsername(ctx context.Context, username string) (*model.SignupRequestModel, error) {
	var req model.SignupRequestModel
	err := r.DB.WithContext(ctx).
		Where("signup_request_username = ?", username).
		First(&req).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// Create: unique violation (request paralel dengan username sama) → ErrDuplicate.
func (r *SignupRepository) Create(ctx context.Context, req *model.SignupRequestModel) error {
	err := r.DB.WithContext(ctx).Create(req).Error
	if apperror.IsUniqueViolation(err) {
		return apperror.Wrap(apperror.ErrDuplicate, "", err)
	}
	return err
}

// Decide memindahkan pending → status dalam satu transaksi.
// Update bersyarat (status masih pending) menjamin hanya satu pemenang;
// yang kalah mendapat applied=false plus status terakhir.
// Untuk accepted, baris admins dibuat di transaksi yang sama dari hash yang tersimpan.
// Kalau username sudah jadi admin, request ditutup sebagai rejected dan ErrDuplicate dikembalikan.
func (r *SignupRepository) Decide(ctx context.Context, username, status string) (applied bool, current string, err error) {
	adminTaken := false
	err = r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		res := tx.Model(&model.SignupRequestModel{}).
			Where("signup_request_username = ? AND signup_request_status = ?", username, model.StatusPending).
			Updates(map[string]any{
				"signup_request_status":     status,
				"signup_request_decided_at": now,
			})
		if res.Error != nil {
			return res.Error
		}

		var req model.SignupRequestModel
		if err := tx.Where("signup_request_username = ?", username).First(&req).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repository.ErrRecordNotFound
			}
			return err
		}
		current = req.SignupRequestStatus

		if res.RowsAffected == 0 {
			return nil
		}
		applied = true

		if status == model.StatusAccepted {
			admin := authModel.AdminModel{
				AdminUsername:     req.SignupRequestUsername,
				AdminPasswordHash: req.SignupRequestPasswordHash,
			}
			// DO NOTHING: unique violation akan membatalkan seluruh transaksi
			ins := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "admin_username"}},
				DoNothing: true,
			}).Create(&admin)
			if ins.Error != nil {
				return ins.Error
			}
			if ins.RowsAffected == 0 {
				if err := tx.Model(&model.SignupRequestModel{}).
					Where("signup_request_username = ?", username).
					Update("signup_request_status", model.StatusRejected).Error; err != nil {
					return err
				}
				current = model.StatusRejected
				adminTaken = true
			}
		}
		return nil
	})
	if err != nil {
		return false, "", err
	}
	if adminTaken {
		return true, current, apperror.Duplicate(model.AdminTakenMessage)
	}
	return applied, current, nil
}
