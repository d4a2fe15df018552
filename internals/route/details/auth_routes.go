package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	authController "schoolsite_backend/internals/features/admins/auth/controller"
	authRepository "schoolsite_backend/internals/features/admins/auth/repository"
	authRoute "schoolsite_backend/internals/features/admins/auth/route"
	authService "schoolsite_backend/internals/features/admins/auth/service"
	signupController "schoolsite_backend/internals/features/admins/signup/controller"
	signupRepository "schoolsite_backend/internals/features/admins/signup/repository"
	signupRoute "schoolsite_backend/internals/features/admins/signup/route"
	signupService "schoolsite_backend/internals/features/admins/signup/service"

	authHelper "schoolsite_backend/internals/helpers/auth"
	"schoolsite_backend/internals/helpers/notify"
)

type AuthDeps struct {
	DB        *gorm.DB
	Log       *zap.Logger
	Validator *validator.Validate
	Sessions  *authService.SessionAuthority
	Cookie    *authHelper.CookieCodec
	Links     *authHelper.ActionLinkSigner
	Notifier  notify.Sender
	BaseURL   string
	Operator  string
}

// AdminAuthRoutes: login/logout publik, /me butuh sesi.
func AdminAuthRoutes(admin fiber.Router, requireSession fiber.Handler, d AuthDeps) {
	ctrl := authController.NewAuthController(d.Sessions, d.Cookie, d.Log.Named("auth"))
	authRoute.AuthRoutes(admin, ctrl, requireSession)
}

// SignupRoutes dipasang di /api/admin.
func SignupRoutes(api fiber.Router, d AuthDeps) {
	svc := signupService.NewSignupService(
		signupRepository.NewSignupRepository(d.DB),
		authRepository.NewAdminRepository(d.DB),
		d.Notifier,
		d.Links,
		d.BaseURL,
		d.Operator,
		d.Log,
	)
	ctrl := signupController.NewSignupController(svc, d.Validator, d.Log.Named("signup"))
	signupRoute.SignupRoutes(api, ctrl)
}
