package route

import (
	"github.com/gofiber/fiber/v2"

	"schoolsite_backend/internals/features/school/galleries/controller"
)

func GalleryAdminRoutes(admin fiber.Router, ctrl *controller.GalleryController) {
	admin.Post("/add-gallery", ctrl.Create)
	admin.Post("/delete-gallery/:id", ctrl.Delete)
	admin.Delete("/delete-gallery/:id", ctrl.Delete)
	admin.Get("/gallery", ctrl.List)
}

func GalleryPublicRoutes(api fiber.Router, ctrl *controller.GalleryController) {
	api.Get("/gallery", ctrl.List)
}
