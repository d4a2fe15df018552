package dto

import (
	"github.com/gofiber/fiber/v2"

	"schoolsite_backend/internals/features/school/notices/model"
	helper "schoolsite_backend/internals/helpers"
)

type CreateNoticeRequest struct {
	Title    string `json:"title" form:"title" validate:"max=200"`
	Category string `json:"category" form:"category" validate:"max=80"`
}

func CreateNoticeFromForm(c *fiber.Ctx) CreateNoticeRequest {
	return CreateNoticeRequest{
		Title:    helper.FormValue(c, "title", "notice_title"),
		Category: helper.FormValue(c, "category", "notice_category"),
	}
}

func (r CreateNoticeRequest) ToModel() *model.NoticeModel {
	return &model.NoticeModel{
		NoticeTitle:    r.Title,
		NoticeCategory: r.Category,
	}
}
