package route

import (
	"github.com/gofiber/fiber/v2"

	"schoolsite_backend/internals/features/admins/auth/controller"
	"schoolsite_backend/internals/middlewares"
)

// AuthRoutes di /admin. Login & logout publik; /me memakai requireSession langsung
// karena route ini didaftarkan sebelum group privat dibuat.
func AuthRoutes(admin fiber.Router, ctrl *controller.AuthController, requireSession fiber.Handler) {
	admin.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	admin.Get("/logout", ctrl.Logout)
	admin.Get("/me", requireSession, ctrl.Me)
}
