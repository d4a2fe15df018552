package route

import (
	"github.com/gofiber/fiber/v2"

	"schoolsite_backend/internals/features/admins/signup/controller"
	"schoolsite_backend/internals/middlewares"
)

// SignupRoutes di /api/admin; semuanya publik, approve/reject dijaga token link.
func SignupRoutes(api fiber.Router, ctrl *controller.SignupController) {
	api.Post("/signup-request", middlewares.SignupRateLimiter(), ctrl.RequestSignup)
	api.Get("/approve", ctrl.Approve)
	api.Get("/reject", ctrl.Reject)
	api.Get("/check-status/:username", ctrl.CheckStatus)
}
