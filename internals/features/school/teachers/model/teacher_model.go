// internals/features/school/teachers/model/teacher_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeacherModel struct {
	TeacherID       uuid.UUID `gorm:"column:teacher_id;type:uuid;primaryKey" json:"teacher_id"`
	TeacherName     string    `gorm:"column:teacher_name;type:varchar(120);not null" json:"teacher_name"`
	TeacherSubject  string    `gorm:"column:teacher_subject;type:varchar(120);not null" json:"teacher_subject"`
	TeacherEmail    string    `gorm:"column:teacher_email;type:varchar(160);not null" json:"teacher_email"`
	TeacherPhone    string    `gorm:"column:teacher_phone;type:varchar(40);not null" json:"teacher_phone"`
	TeacherPhotoURL string    `gorm:"column:teacher_photo_url;type:text;not null" json:"teacher_photo_url"`

	TeacherCreatedAt time.Time `gorm:"column:teacher_created_at;type:timestamptz;not null;autoCreateTime" json:"teacher_created_at"`
	TeacherUpdatedAt time.Time `gorm:"column:teacher_updated_at;type:timestamptz;not null;autoUpdateTime" json:"teacher_updated_at"`
}

func (TeacherModel) TableName() string { return "teachers" }

func (m *TeacherModel) BeforeCreate(tx *gorm.DB) error {
	if m.TeacherID == uuid.Nil {
		m.TeacherID = uuid.New()
	}
	return nil
}

func (m *TeacherModel) RecordID() uuid.UUID         { return m.TeacherID }
func (m *TeacherModel) AttachmentURL() string       { return m.TeacherPhotoURL }
func (m *TeacherModel) SetAttachmentURL(url string) { m.TeacherPhotoURL = url }

func (m *TeacherModel) MissingFields() []string {
	var out []string
	for _, f := range []struct{ name, val string }{
		{"name", m.TeacherName},
		{"subject", m.TeacherSubject},
		{"email", m.TeacherEmail},
		{"phone", m.TeacherPhone},
	} {
		if strings.TrimSpace(f.val) == "" {
			out = append(out, f.name)
		}
	}
	return out
}
