// internals/middlewares/auth/session_middleware.go
package auth

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"schoolsite_backend/internals/features/admins/auth/service"
	helper "schoolsite_backend/internals/helpers"
	authHelper "schoolsite_backend/internals/helpers/auth"
)

const (
	LocalsAdminUsername = "admin_username"
	LoginPage           = "/admin/login.html"
)

type Authorizer interface {
	Authorize(ctx context.Context, token string) (*service.AdminIdentity, error)
}

// RequireAdminSession: cookie hilang / sesi tidak valid → hapus cookie lalu 303 ke halaman login.
// Tidak pernah membalas body error; browser admin selalu diarahkan ulang.
func RequireAdminSession(authz Authorizer, codec *authHelper.CookieCodec, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := codec.Read(c)
		if token == "" {
			return redirectToLogin(c, codec)
		}

		identity, err := authz.Authorize(c.UserContext(), token)
		if err != nil {
			log.Debug("session#authorize rejected",
				zap.String("reqid", helper.ReqID(c)),
				zap.String("path", c.Path()),
				zap.Error(err))
			return redirectToLogin(c, codec)
		}

		c.Locals(LocalsAdminUsername, identity.Username)
		return c.Next()
	}
}

// AdminUsername dari Locals; "" kalau route tidak lewat RequireAdminSession.
func AdminUsername(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocalsAdminUsername).(string); ok {
		return v
	}
	return ""
}

func redirectToLogin(c *fiber.Ctx, codec *authHelper.CookieCodec) error {
	codec.Clear(c)
	return c.Redirect(LoginPage, fiber.StatusSeeOther)
}
