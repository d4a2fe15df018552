// internals/features/school/notices/model/notice_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NoticeModel struct {
	NoticeID       uuid.UUID `gorm:"column:notice_id;type:uuid;primaryKey" json:"notice_id"`
	NoticeTitle    string    `gorm:"column:notice_title;type:varchar(200);not null" json:"notice_title"`
	NoticeCategory string    `gorm:"column:notice_category;type:varchar(80);not null" json:"notice_category"`
	NoticeFileURL  string    `gorm:"column:notice_file_url;type:text;not null" json:"notice_file_url"`

	NoticeCreatedAt time.Time `gorm:"column:notice_created_at;type:timestamptz;not null;autoCreateTime" json:"notice_created_at"`
	NoticeUpdatedAt time.Time `gorm:"column:notice_updated_at;type:timestamptz;not null;autoUpdateTime" json:"notice_updated_at"`
}

func (NoticeModel) TableName() string { return "notices" }

func (m *NoticeModel) BeforeCreate(tx *gorm.DB) error {
	if m.NoticeID == uuid.Nil {
		m.NoticeID = uuid.New()
	}
	return nil
}

func (m *NoticeModel) RecordID() uuid.UUID         { return m.NoticeID }
func (m *NoticeModel) AttachmentURL() string       { return m.NoticeFileURL }
func (m *NoticeModel) SetAttachmentURL(url string) { m.NoticeFileURL = url }

func (m *NoticeModel) MissingFields() []string {
	var out []string
	if strings.TrimSpace(m.NoticeTitle) == "" {
		out = append(out, "title")
	}
	if strings.TrimSpace(m.NoticeCategory) == "" {
		out = append(out, "category")
	}
	return out
}
