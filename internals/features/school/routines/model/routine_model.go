// internals/features/school/routines/model/routine_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// RoutineModel: satu jadwal per kelas; baris disimpan di routine_rows berurutan (position).
type RoutineModel struct {
	RoutineID        uuid.UUID `gorm:"column:routine_id;type:uuid;primaryKey" json:"routine_id"`
	RoutineClassName string    `gorm:"column:routine_class_name;type:varchar(80);uniqueIndex;not null" json:"routine_class_name"`

	Rows []RoutineRowModel `gorm:"foreignKey:RoutineRowRoutineID;references:RoutineID;constraint:OnDelete:CASCADE" json:"rows"`

	RoutineCreatedAt time.Time `gorm:"column:routine_created_at;type:timestamptz;not null;autoCreateTime" json:"routine_created_at"`
	RoutineUpdatedAt time.Time `gorm:"column:routine_updated_at;type:timestamptz;not null;autoUpdateTime" json:"routine_updated_at"`
}

func (RoutineModel) TableName() string { return "routines" }

func (m *RoutineModel) BeforeCreate(tx *gorm.DB) error {
	if m.RoutineID == uuid.Nil {
		m.RoutineID = uuid.New()
	}
	return nil
}

type RoutineRowModel struct {
	RoutineRowID        uuid.UUID      `gorm:"column:routine_row_id;type:uuid;primaryKey" json:"routine_row_id"`
	RoutineRowRoutineID uuid.UUID      `gorm:"column:routine_row_routine_id;type:uuid;not null;index" json:"-"`
	RoutineRowPosition  int            `gorm:"column:routine_row_position;not null" json:"routine_row_position"`
	RoutineRowTime      string         `gorm:"column:routine_row_time;type:varchar(60);not null" json:"routine_row_time"`
	RoutineRowSubjects  pq.StringArray `gorm:"column:routine_row_subjects;type:text[];not null" json:"routine_row_subjects"`
}

func (RoutineRowModel) TableName() string { return "routine_rows" }

func (m *RoutineRowModel) BeforeCreate(tx *gorm.DB) error {
	if m.RoutineRowID == uuid.Nil {
		m.RoutineRowID = uuid.New()
	}
	return nil
}
