package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// AdminTakenMessage: approve untuk username yang sudah menjadi admin; request ditutup sebagai rejected.
const AdminTakenMessage = "An admin with this username already exists; the request was rejected."

// SignupRequestModel: password disimpan sebagai hash bcrypt sejak request dibuat.
type SignupRequestModel struct {
	SignupRequestID           uuid.UUID  `gorm:"column:signup_request_id;type:uuid;primaryKey" json:"signup_request_id"`
	SignupRequestUsername     string     `gorm:"column:signup_request_username;type:varchar(100);uniqueIndex;not null" json:"signup_request_username"`
	SignupRequestPasswordHash string     `gorm:"column:signup_request_password_hash;type:text;not null" json:"-"`
	SignupRequestStatus       string     `gorm:"column:signup_request_status;type:varchar(10);not null;default:pending" json:"signup_request_status"`
	SignupRequestDecidedAt    *time.Time `gorm:"column:signup_request_decided_at" json:"signup_request_decided_at,omitempty"`
	SignupRequestCreatedAt    time.Time  `gorm:"column:signup_request_created_at;autoCreateTime" json:"signup_request_created_at"`
	SignupRequestUpdatedAt    time.Time  `gorm:"column:signup_request_updated_at;autoUpdateTime" json:"signup_request_updated_at"`
}

func (SignupRequestModel) TableName() string {
	return "signup_requests"
}

func (m *SignupRequestModel) BeforeCreate(tx *gorm.DB) error {
	if m.SignupRequestID == uuid.Nil {
		m.SignupRequestID = uuid.New()
	}
	return nil
}
