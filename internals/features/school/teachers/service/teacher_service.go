package service

import (
	"go.uber.org/zap"

	"schoolsite_backend/internals/features/school/teachers/model"
	"schoolsite_backend/internals/helpers/lifecycle"
	helperOSS "schoolsite_backend/internals/helpers/oss"
)

type TeacherService = lifecycle.Manager[model.TeacherModel, *model.TeacherModel]

// Foto guru wajib saat create dan selalu di-recompress ke webp.
var TeacherKind = lifecycle.Kind{
	Name:               "teacher",
	Label:              "Teacher",
	Dir:                "teachers",
	AttachmentField:    "photo",
	AttachmentRequired: true,
	Image:              true,
}

func NewTeacherService(repo lifecycle.Repository[model.TeacherModel], blobs helperOSS.BlobService, orphans lifecycle.OrphanRecorder, log *zap.Logger) *TeacherService {
	return lifecycle.NewManager[model.TeacherModel](TeacherKind, repo, blobs, orphans, log)
}
