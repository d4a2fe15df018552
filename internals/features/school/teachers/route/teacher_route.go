package route

import (
	"github.com/gofiber/fiber/v2"

	"schoolsite_backend/internals/features/school/teachers/controller"
)

// TeacherAdminRoutes dipasang di group /admin yang sudah lewat RequireAdminSession.
func TeacherAdminRoutes(admin fiber.Router, ctrl *controller.TeacherController) {
	admin.Post("/add-teacher", ctrl.Create)
	admin.Put("/update-teacher/:id", ctrl.Update)
	admin.Delete("/delete-teacher/:id", ctrl.Delete)
	admin.Post("/delete-teacher/:id", ctrl.Delete)
	admin.Get("/teachers", ctrl.List)
	admin.Get("/teachers/:id", ctrl.Get)
}

func TeacherPublicRoutes(api fiber.Router, ctrl *controller.TeacherController) {
	api.Get("/teachers", ctrl.List)
}
