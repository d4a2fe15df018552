// internals/features/school/teachers/dto/teacher_dto.go
package dto

import (
	"github.com/gofiber/fiber/v2"

	"schoolsite_backend/internals/features/school/teachers/model"
	helper "schoolsite_backend/internals/helpers"
)

/* ===================== REQUESTS ===================== */

// Field wajib dicek manager (supaya "photo" ikut masuk daftar); validator hanya format.
type CreateTeacherRequest struct {
	Name    string `json:"name" form:"name" validate:"max=120"`
	Subject string `json:"subject" form:"subject" validate:"max=120"`
	Email   string `json:"email" form:"email" validate:"omitempty,email,max=160"`
	Phone   string `json:"phone" form:"phone" validate:"max=40"`
}

func CreateTeacherFromForm(c *fiber.Ctx) CreateTeacherRequest {
	return CreateTeacherRequest{
		Name:    helper.FormValue(c, "name", "teacher_name"),
		Subject: helper.FormValue(c, "subject", "teacher_subject"),
		Email:   helper.FormValue(c, "email", "teacher_email"),
		Phone:   helper.FormValue(c, "phone", "teacher_phone"),
	}
}

// ToModel menyimpan nilai persis seperti yang dikirim; cek kosong ada di model.
func (r CreateTeacherRequest) ToModel() *model.TeacherModel {
	return &model.TeacherModel{
		TeacherName:    r.Name,
		TeacherSubject: r.Subject,
		TeacherEmail:   r.Email,
		TeacherPhone:   r.Phone,
	}
}

// Update: semua optional (partial update); nil = tidak diubah
type UpdateTeacherRequest struct {
	Name    *string `json:"name" validate:"omitempty,max=120"`
	Subject *string `json:"subject" validate:"omitempty,max=120"`
	Email   *string `json:"email" validate:"omitempty,email,max=160"`
	Phone   *string `json:"phone" validate:"omitempty,max=40"`
}

func UpdateTeacherFromForm(c *fiber.Ctx) UpdateTeacherRequest {
	return UpdateTeacherRequest{
		Name:    helper.OptionalFormValue(c, "name", "teacher_name"),
		Subject: helper.OptionalFormValue(c, "subject", "teacher_subject"),
		Email:   helper.OptionalFormValue(c, "email", "teacher_email"),
		Phone:   helper.OptionalFormValue(c, "phone", "teacher_phone"),
	}
}

func (r UpdateTeacherRequest) Apply(m *model.TeacherModel) {
	if r.Name != nil {
		m.TeacherName = *r.Name
	}
	if r.Subject != nil {
		m.TeacherSubject = *r.Subject
	}
	if r.Email != nil {
		m.TeacherEmail = *r.Email
	}
	if r.Phone != nil {
		m.TeacherPhone = *r.Phone
	}
}
