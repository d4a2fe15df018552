// file: internals/features/school/teachers/controller/teacher_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"schoolsite_backend/internals/features/school/teachers/dto"
	"schoolsite_backend/internals/features/school/teachers/model"
	"schoolsite_backend/internals/features/school/teachers/service"
	helper "schoolsite_backend/internals/helpers"
	helperOSS "schoolsite_backend/internals/helpers/oss"
)

type TeacherController struct {
	Teachers      *service.TeacherService
	Validator     *validator.Validate
	MaxUploadSize int64
	Log           *zap.Logger
}

func NewTeacherController(teachers *service.TeacherService, v *validator.Validate, maxUpload int64, log *zap.Logger) *TeacherController {
	return &TeacherController{Teachers: teachers, Validator: v, MaxUploadSize: maxUpload, Log: log}
}

// POST /admin/add-teacher (multipart, field "photo")
func (tc *TeacherController) Create(c *fiber.Ctx) error {
	var req dto.CreateTeacherRequest
	if helperOSS.IsMultipart(c) {
		req = dto.CreateTeacherFromForm(c)
	} else if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := tc.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	rec := req.ToModel()
	file, err := helperOSS.GetFormFile(c, tc.MaxUploadSize, "photo")
	if err != nil {
		// field yang kosong dilaporkan lebih dulu daripada masalah file
		if verr := tc.Teachers.CheckRequired(rec, true); verr != nil {
			return helper.FromAppError(c, verr)
		}
		return helper.JsonError(c, fiber.StatusBadRequest, helperOSS.UploadErrorMessage(err))
	}

	teacher, err := tc.Teachers.Create(c.UserContext(), rec, file)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonCreated(c, "Teacher added successfully!", teacher)
}

// PUT /admin/update-teacher/:id (JSON atau multipart; photo opsional)
func (tc *TeacherController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher id")
	}

	var (
		req  dto.UpdateTeacherRequest
		file *helperOSS.FilePart
	)
	if helperOSS.IsMultipart(c) {
		req = dto.UpdateTeacherFromForm(c)
		if file, err = helperOSS.GetFormFile(c, tc.MaxUploadSize, "photo"); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, helperOSS.UploadErrorMessage(err))
		}
	} else if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := tc.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	teacher, err := tc.Teachers.Update(c.UserContext(), id, func(m *model.TeacherModel) { req.Apply(m) }, file)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonUpdated(c, "Teacher updated successfully!", teacher)
}

// DELETE|POST /admin/delete-teacher/:id
func (tc *TeacherController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher id")
	}
	if err := tc.Teachers.Delete(c.UserContext(), id); err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonDeleted(c, "Teacher deleted successfully!", nil)
}

// GET /api/teachers, /admin/teachers
func (tc *TeacherController) List(c *fiber.Ctx) error {
	items, err := tc.Teachers.List(c.UserContext())
	if err != nil {
		return helper.FromAppError(c, err)
	}
	if items == nil {
		items = []model.TeacherModel{}
	}
	return helper.JsonList(c, "ok", items)
}

// GET /admin/teachers/:id (form edit)
func (tc *TeacherController) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher id")
	}
	teacher, err := tc.Teachers.Get(c.UserContext(), id)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonOK(c, "ok", teacher)
}
