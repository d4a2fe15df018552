package route

import (
	"github.com/gofiber/fiber/v2"

	"schoolsite_backend/internals/features/school/notices/controller"
)

func NoticeAdminRoutes(admin fiber.Router, ctrl *controller.NoticeController) {
	admin.Post("/add-notice", ctrl.Create)
	admin.Delete("/delete-notice/:id", ctrl.Delete)
}

func NoticePublicRoutes(api fiber.Router, ctrl *controller.NoticeController) {
	api.Get("/notices", ctrl.List)
}
