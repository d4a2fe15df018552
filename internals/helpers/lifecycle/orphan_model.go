package lifecycle

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrphanedObjectModel mencatat object storage yang gagal dibersihkan, untuk rekonsiliasi.
type OrphanedObjectModel struct {
	OrphanedObjectID         uuid.UUID         `gorm:"column:orphaned_object_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"orphaned_object_id"`
	OrphanedObjectURL        string            `gorm:"column:orphaned_object_url;type:text;not null" json:"orphaned_object_url"`
	OrphanedObjectReason     string            `gorm:"column:orphaned_object_reason;type:text;not null" json:"orphaned_object_reason"`
	OrphanedObjectContext    datatypes.JSONMap `gorm:"column:orphaned_object_context;type:jsonb" json:"orphaned_object_context,omitempty"`
	OrphanedObjectAttempts   int               `gorm:"column:orphaned_object_attempts;not null;default:0" json:"orphaned_object_attempts"`
	OrphanedObjectLastError  string            `gorm:"column:orphaned_object_last_error;type:text" json:"orphaned_object_last_error,omitempty"`
	OrphanedObjectResolvedAt *time.Time        `gorm:"column:orphaned_object_resolved_at" json:"orphaned_object_resolved_at,omitempty"`
	OrphanedObjectCreatedAt  time.Time         `gorm:"column:orphaned_object_created_at;autoCreateTime" json:"orphaned_object_created_at"`
}

func (OrphanedObjectModel) TableName() string {
	return "orphaned_objects"
}
