package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"schoolsite_backend/internals/features/school/notices/dto"
	"schoolsite_backend/internals/features/school/notices/model"
	"schoolsite_backend/internals/features/school/notices/service"
	helper "schoolsite_backend/internals/helpers"
	helperOSS "schoolsite_backend/internals/helpers/oss"
)

type NoticeController struct {
	Notices       *service.NoticeService
	Validator     *validator.Validate
	MaxUploadSize int64
	Log           *zap.Logger
}

func NewNoticeController(notices *service.NoticeService, v *validator.Validate, maxUpload int64, log *zap.Logger) *NoticeController {
	return &NoticeController{Notices: notices, Validator: v, MaxUploadSize: maxUpload, Log: log}
}

// POST /admin/add-notice (multipart, field "pdf_file")
func (nc *NoticeController) Create(c *fiber.Ctx) error {
	if !helperOSS.IsMultipart(c) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Expected multipart/form-data")
	}
	req := dto.CreateNoticeFromForm(c)
	if err := nc.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	rec := req.ToModel()
	file, err := helperOSS.GetFormFile(c, nc.MaxUploadSize, "pdf_file")
	if err != nil {
		// field yang kosong dilaporkan lebih dulu daripada masalah file
		if verr := nc.Notices.CheckRequired(rec, true); verr != nil {
			return helper.FromAppError(c, verr)
		}
		return helper.JsonError(c, fiber.StatusBadRequest, helperOSS.UploadErrorMessage(err))
	}

	notice, err := nc.Notices.Create(c.UserContext(), rec, file)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonCreated(c, "Notice added successfully!", notice)
}

// DELETE /admin/delete-notice/:id
func (nc *NoticeController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notice id")
	}
	if err := nc.Notices.Delete(c.UserContext(), id); err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonDeleted(c, "Notice deleted successfully!", nil)
}

// GET /api/notices
func (nc *NoticeController) List(c *fiber.Ctx) error {
	items, err := nc.Notices.List(c.UserContext())
	if err != nil {
		return helper.FromAppError(c, err)
	}
	if items == nil {
		items = []model.NoticeModel{}
	}
	return helper.JsonList(c, "ok", items)
}
