package service

import (
	"go.uber.org/zap"

	"schoolsite_backend/internals/features/school/galleries/model"
	"schoolsite_backend/internals/helpers/lifecycle"
	helperOSS "schoolsite_backend/internals/helpers/oss"
)

type GalleryService = lifecycle.Manager[model.GalleryModel, *model.GalleryModel]

var GalleryKind = lifecycle.Kind{
	Name:               "gallery",
	Label:              "Gallery image",
	Dir:                "gallery",
	AttachmentField:    "photo",
	AttachmentRequired: true,
	Image:              true,
}

func NewGalleryService(repo lifecycle.Repository[model.GalleryModel], blobs helperOSS.BlobService, orphans lifecycle.OrphanRecorder, log *zap.Logger) *GalleryService {
	return lifecycle.NewManager[model.GalleryModel](GalleryKind, repo, blobs, orphans, log)
}
