package controller

import (
	"context"
	"errors"
	"fmt"
	"html"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"schoolsite_backend/internals/features/admins/signup/dto"
	"schoolsite_backend/internals/features/admins/signup/service"
	helper "schoolsite_backend/internals/helpers"
	"schoolsite_backend/internals/helpers/apperror"
)

type Workflow interface {
	RequestSignup(ctx context.Context, username, password string) (*service.SignupResult, error)
	Approve(ctx context.Context, username string) (*service.Decision, error)
	Reject(ctx context.Context, username string) (*service.Decision, error)
	CheckStatus(ctx context.Context, username string) (string, error)
	VerifyLink(username, action, token string) error
}

type SignupController struct {
	Signup    Workflow
	Validator *validator.Validate
	Log       *zap.Logger
}

func NewSignupController(signup Workflow, v *validator.Validate, log *zap.Logger) *SignupController {
	return &SignupController{Signup: signup, Validator: v, Log: log}
}

// POST /api/admin/signup-request
func (sc *SignupController) RequestSignup(c *fiber.Ctx) error {
	var req dto.SignupRequestPayload
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := sc.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	res, err := sc.Signup.RequestSignup(c.UserContext(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, apperror.ErrDuplicate) && res != nil {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"success":    false,
				"message":    apperror.MessageOf(err),
				"error_code": "CONFLICT",
				"status":     res.Status,
			})
		}
		return helper.FromAppError(c, err)
	}

	msg := "Signup request sent. Waiting for admin approval."
	if !res.Notified {
		msg = "Signup request saved, but the administrator could not be notified. Please contact them directly."
	}
	return helper.JsonCreated(c, msg, dto.SignupResponse{
		Username: res.Username,
		Status:   res.Status,
		Notified: res.Notified,
	})
}

// GET /api/admin/approve?username=..&token=..
func (sc *SignupController) Approve(c *fiber.Ctx) error {
	return sc.decide(c, service.ActionApprove, sc.Signup.Approve)
}

// GET /api/admin/reject?username=..&token=..
func (sc *SignupController) Reject(c *fiber.Ctx) error {
	return sc.decide(c, service.ActionReject, sc.Signup.Reject)
}

// GET /api/admin/check-status/:username
func (sc *SignupController) CheckStatus(c *fiber.Ctx) error {
	status, err := sc.Signup.CheckStatus(c.UserContext(), c.Params("username"))
	switch {
	case errors.Is(err, apperror.ErrNotFound):
		return c.JSON(dto.StatusResponse{Status: "not_found"})
	case err != nil:
		sc.Log.Error("signup#status failed", zap.String("reqid", helper.ReqID(c)), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.StatusResponse{Status: "error"})
	}
	return c.JSON(dto.StatusResponse{Status: status})
}

// Link dibuka operator dari email/telegram, jadi jawabannya HTML pendek, bukan JSON.
func (sc *SignupController) decide(c *fiber.Ctx, action string, fn func(context.Context, string) (*service.Decision, error)) error {
	username := c.Query("username")
	if username == "" {
		return htmlPage(c, fiber.StatusBadRequest, "Missing username.")
	}
	if err := sc.Signup.VerifyLink(username, action, c.Query("token")); err != nil {
		return htmlPage(c, fiber.StatusForbidden, apperror.MessageOf(err))
	}

	d, err := fn(c.UserContext(), username)
	switch {
	case errors.Is(err, apperror.ErrNotFound):
		return htmlPage(c, fiber.StatusNotFound, apperror.MessageOf(err))
	case errors.Is(err, apperror.ErrDuplicate):
		return htmlPage(c, fiber.StatusConflict, apperror.MessageOf(err))
	case err != nil:
		return htmlPage(c, fiber.StatusInternalServerError, fmt.Sprintf("Error trying to %s request.", action))
	}

	if d.Changed {
		return htmlPage(c, fiber.StatusOK, fmt.Sprintf("%s (<b>%s</b>)", d.Message, html.EscapeString(d.Username)))
	}
	return htmlPage(c, fiber.StatusOK, d.Message)
}

func htmlPage(c *fiber.Ctx, status int, body string) error {
	c.Type("html", "utf-8")
	return c.Status(status).SendString("<!doctype html><html><body><p>" + body + "</p></body></html>")
}
