package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GalleryModel struct {
	GalleryID      uuid.UUID `gorm:"column:gallery_id;type:uuid;primaryKey" json:"gallery_id"`
	GalleryTitle   string    `gorm:"column:gallery_title;type:varchar(200);not null" json:"gallery_title"`
	GalleryFileURL string    `gorm:"column:gallery_file_url;type:text;not null" json:"gallery_file_url"`

	GalleryCreatedAt time.Time `gorm:"column:gallery_created_at;type:timestamptz;not null;autoCreateTime" json:"gallery_created_at"`
	GalleryUpdatedAt time.Time `gorm:"column:gallery_updated_at;type:timestamptz;not null;autoUpdateTime" json:"gallery_updated_at"`
}

func (GalleryModel) TableName() string { return "galleries" }

func (m *GalleryModel) BeforeCreate(tx *gorm.DB) error {
	if m.GalleryID == uuid.Nil {
		m.GalleryID = uuid.New()
	}
	return nil
}

func (m *GalleryModel) RecordID() uuid.UUID         { return m.GalleryID }
func (m *GalleryModel) AttachmentURL() string       { return m.GalleryFileURL }
func (m *GalleryModel) SetAttachmentURL(url string) { m.GalleryFileURL = url }

func (m *GalleryModel) MissingFields() []string {
	if strings.TrimSpace(m.GalleryTitle) == "" {
		return []string{"title"}
	}
	return nil
}
