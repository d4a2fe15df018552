package controller

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"schoolsite_backend/internals/features/admins/auth/dto"
	"schoolsite_backend/internals/features/admins/auth/service"
	helper "schoolsite_backend/internals/helpers"
	"schoolsite_backend/internals/helpers/apperror"
	authHelper "schoolsite_backend/internals/helpers/auth"
	authMiddleware "schoolsite_backend/internals/middlewares/auth"
)

type Authority interface {
	VerifySharedSecret(ctx context.Context, sharedSecret string) error
	Login(ctx context.Context, username, password, sharedSecret string) (string, error)
	Logout(ctx context.Context, token string) error
}

type AuthController struct {
	Auth   Authority
	Cookie *authHelper.CookieCodec
	Log    *zap.Logger
}

func NewAuthController(auth Authority, cookie *authHelper.CookieCodec, log *zap.Logger) *AuthController {
	return &AuthController{Auth: auth, Cookie: cookie, Log: log}
}

// POST /admin/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	// shared password salah/kosong dilaporkan lebih dulu daripada field yang kosong
	if err := ac.Auth.VerifySharedSecret(c.UserContext(), req.Secret()); err != nil {
		return helper.FromAppError(c, err)
	}
	if missing := req.Missing(); len(missing) > 0 {
		return helper.FromAppError(c, apperror.MissingFields(missing...))
	}

	token, err := ac.Auth.Login(c.UserContext(), req.Username, req.Password, req.Secret())
	if err != nil {
		return helper.FromAppError(c, err)
	}
	if err := ac.Cookie.Write(c, token); err != nil {
		ac.Log.Error("session#cookie encode failed", zap.String("reqid", helper.ReqID(c)), zap.Error(err))
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.JsonOK(c, "Login successful!", fiber.Map{"redirect": "/admin/home.html"})
}

// GET /admin/logout: selalu redirect, walau sesi sudah tidak ada
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	if err := ac.Auth.Logout(c.UserContext(), ac.Cookie.Read(c)); err != nil {
		ac.Log.Warn("session#logout failed", zap.String("reqid", helper.ReqID(c)), zap.Error(err))
	}
	ac.Cookie.Clear(c)
	return c.Redirect(authMiddleware.LoginPage, fiber.StatusSeeOther)
}

// GET /admin/me
func (ac *AuthController) Me(c *fiber.Ctx) error {
	return helper.JsonOK(c, "ok", service.AdminIdentity{Username: authMiddleware.AdminUsername(c)})
}
