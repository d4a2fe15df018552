package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"schoolsite_backend/internals/features/school/galleries/dto"
	"schoolsite_backend/internals/features/school/galleries/model"
	"schoolsite_backend/internals/features/school/galleries/service"
	helper "schoolsite_backend/internals/helpers"
	helperOSS "schoolsite_backend/internals/helpers/oss"
)

type GalleryController struct {
	Gallery       *service.GalleryService
	Validator     *validator.Validate
	MaxUploadSize int64
	Log           *zap.Logger
}

func NewGalleryController(gallery *service.GalleryService, v *validator.Validate, maxUpload int64, log *zap.Logger) *GalleryController {
	return &GalleryController{Gallery: gallery, Validator: v, MaxUploadSize: maxUpload, Log: log}
}

// POST /admin/add-gallery (multipart, field "photo")
func (gc *GalleryController) Create(c *fiber.Ctx) error {
	if !helperOSS.IsMultipart(c) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Expected multipart/form-data")
	}
	req := dto.CreateGalleryFromForm(c)
	if err := gc.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	rec := req.ToModel()
	file, err := helperOSS.GetFormFile(c, gc.MaxUploadSize, "photo")
	if err != nil {
		// field yang kosong dilaporkan lebih dulu daripada masalah file
		if verr := gc.Gallery.CheckRequired(rec, true); verr != nil {
			return helper.FromAppError(c, verr)
		}
		return helper.JsonError(c, fiber.StatusBadRequest, helperOSS.UploadErrorMessage(err))
	}

	item, err := gc.Gallery.Create(c.UserContext(), rec, file)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonCreated(c, "Image uploaded successfully!", item)
}

// POST|DELETE /admin/delete-gallery/:id
func (gc *GalleryController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid gallery id")
	}
	if err := gc.Gallery.Delete(c.UserContext(), id); err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonDeleted(c, "Image deleted successfully!", nil)
}

// GET /api/gallery, /admin/gallery
func (gc *GalleryController) List(c *fiber.Ctx) error {
	items, err := gc.Gallery.List(c.UserContext())
	if err != nil {
		return helper.FromAppError(c, err)
	}
	if items == nil {
		items = []model.GalleryModel{}
	}
	return helper.JsonList(c, "ok", items)
}
