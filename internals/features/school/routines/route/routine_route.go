package route

import (
	"github.com/gofiber/fiber/v2"

	"schoolsite_backend/internals/features/school/routines/controller"
)

// RoutinePublicRoutes: baca jadwal tanpa login.
func RoutinePublicRoutes(api fiber.Router, ctrl *controller.RoutineController) {
	api.Get("/routine", ctrl.List)
	api.Get("/routine/class/:className", ctrl.GetByClass)
}

// RoutineAdminRoutes: tulis/hapus, dipasang dengan middleware sesi.
func RoutineAdminRoutes(api fiber.Router, ctrl *controller.RoutineController, requireSession fiber.Handler) {
	api.Post("/routine", requireSession, ctrl.Save)
	api.Delete("/routine/class/:className", requireSession, ctrl.DeleteByClass)
}
