package model

import "time"

// AdminSessionModel: token mentah tidak pernah disimpan, hanya sha256-nya.
type AdminSessionModel struct {
	AdminSessionTokenHash      string    `gorm:"column:admin_session_token_hash;type:char(64);primaryKey" json:"-"`
	AdminSessionUsername       string    `gorm:"column:admin_session_username;type:varchar(100);not null;index" json:"admin_session_username"`
	AdminSessionLastActivityAt time.Time `gorm:"column:admin_session_last_activity_at;not null;index" json:"admin_session_last_activity_at"`
	AdminSessionCreatedAt      time.Time `gorm:"column:admin_session_created_at;autoCreateTime" json:"admin_session_created_at"`
}

func (AdminSessionModel) TableName() string {
	return "admin_sessions"
}
