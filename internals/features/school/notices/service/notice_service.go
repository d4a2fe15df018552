package service

import (
	"go.uber.org/zap"

	"schoolsite_backend/internals/features/school/notices/model"
	"schoolsite_backend/internals/helpers/lifecycle"
	helperOSS "schoolsite_backend/internals/helpers/oss"
)

type NoticeService = lifecycle.Manager[model.NoticeModel, *model.NoticeModel]

// PDF disimpan apa adanya (tanpa konversi).
var NoticeKind = lifecycle.Kind{
	Name:               "notice",
	Label:              "Notice",
	Dir:                "notices",
	AttachmentField:    "pdf_file",
	AttachmentRequired: true,
}

func NewNoticeService(repo lifecycle.Repository[model.NoticeModel], blobs helperOSS.BlobService, orphans lifecycle.OrphanRecorder, log *zap.Logger) *NoticeService {
	return lifecycle.NewManager[model.NoticeModel](NoticeKind, repo, blobs, orphans, log)
}
