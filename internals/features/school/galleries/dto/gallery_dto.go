package dto

import (
	"github.com/gofiber/fiber/v2"

	"schoolsite_backend/internals/features/school/galleries/model"
	helper "schoolsite_backend/internals/helpers"
)

type CreateGalleryRequest struct {
	Title string `json:"title" form:"title" validate:"max=200"`
}

func CreateGalleryFromForm(c *fiber.Ctx) CreateGalleryRequest {
	return CreateGalleryRequest{Title: helper.FormValue(c, "title", "gallery_title")}
}

func (r CreateGalleryRequest) ToModel() *model.GalleryModel {
	return &model.GalleryModel{GalleryTitle: r.Title}
}
