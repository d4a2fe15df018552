package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdminModel struct {
	AdminID           uuid.UUID `gorm:"column:admin_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"admin_id"`
	AdminUsername     string    `gorm:"column:admin_username;type:varchar(100);uniqueIndex;not null" json:"admin_username"`
	AdminPasswordHash string    `gorm:"column:admin_password_hash;type:text;not null" json:"-"`
	AdminCreatedAt    time.Time `gorm:"column:admin_created_at;autoCreateTime" json:"admin_created_at"`
}

func (AdminModel) TableName() string {
	return "admins"
}

func (m *AdminModel) BeforeCreate(tx *gorm.DB) error {
	if m.AdminID == uuid.Nil {
		m.AdminID = uuid.New()
	}
	return nil
}
