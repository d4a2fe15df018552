package controller_test

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"schoolsite_backend/internals/features/admins/signup/controller"
	"schoolsite_backend/internals/features/admins/signup/service"
	helper "schoolsite_backend/internals/helpers"
	"schoolsite_backend/internals/helpers/apperror"
)

type fakeWorkflow struct {
	status    map[string]string
	linkError error
}

func (f *fakeWorkflow) RequestSignup(_ context.Context, username, _ string) (*service.SignupResult, error) {
	if s, ok := f.status[username]; ok {
		return &service.SignupResult{Username: username, Status: s}, apperror.Duplicate("Your signup status is: " + s)
	}
	f.status[username] = "pending"
	return &service.SignupResult{Username: username, Status: "pending", Notified: false}, nil
}

func (f *fakeWorkflow) Approve(_ context.Context, username string) (*service.Decision, error) {
	s, ok := f.status[username]
	if !ok {
		return nil, apperror.NotFound("No pending request found.")
	}
	if s != "pending" {
		return &service.Decision{Username: username, Status: s, Message: "Already approved."}, nil
	}
	f.status[username] = "accepted"
	return &service.Decision{Username: username, Status: "accepted", Changed: true, Message: "Request approved."}, nil
}

func (f *fakeWorkflow) Reject(ctx context.Context, username string) (*service.Decision, error) {
	return f.Approve(ctx, username)
}

func (f *fakeWorkflow) CheckStatus(_ context.Context, username string) (string, error) {
	s, ok := f.status[username]
	if !ok {
		return "", apperror.NotFound("not_found")
	}
	return s, nil
}

func (f *fakeWorkflow) VerifyLink(_, _, _ string) error { return f.linkError }

func newApp(wf *fakeWorkflow) *fiber.App {
	ctrl := controller.NewSignupController(wf, helper.NewValidator(), zap.NewNop())
	app := fiber.New()
	app.Post("/api/admin/signup-request", ctrl.RequestSignup)
	app.Get("/api/admin/approve", ctrl.Approve)
	app.Get("/api/admin/check-status/:username", ctrl.CheckStatus)
	return app
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(b)
}

func TestSignupFlow_HTTP(t *testing.T) {
	app := newApp(&fakeWorkflow{status: map[string]string{}})

	code, body := do(t, app, fiber.MethodPost, "/api/admin/signup-request", `{"username":"kim","password":"pw"}`)
	assert.Equal(t, fiber.StatusCreated, code)
	assert.Contains(t, body, `"notified":false`)

	code, body = do(t, app, fiber.MethodPost, "/api/admin/signup-request", `{"username":"kim","password":"pw"}`)
	assert.Equal(t, fiber.StatusConflict, code)
	assert.Contains(t, body, "Your signup status is: pending")
	assert.Contains(t, body, `"status":"pending"`)

	code, body = do(t, app, fiber.MethodGet, "/api/admin/check-status/kim", "")
	assert.Equal(t, fiber.StatusOK, code)
	assert.JSONEq(t, `{"status":"pending"}`, body)

	code, body = do(t, app, fiber.MethodGet, "/api/admin/approve?username=kim", "")
	assert.Equal(t, fiber.StatusOK, code)
	assert.Contains(t, body, "Request approved.")

	code, body = do(t, app, fiber.MethodGet, "/api/admin/approve?username=kim", "")
	assert.Equal(t, fiber.StatusOK, code)
	assert.Contains(t, body, "Already approved.")
}

func TestSignup_MissingFields(t *testing.T) {
	app := newApp(&fakeWorkflow{status: map[string]string{}})
	code, body := do(t, app, fiber.MethodPost, "/api/admin/signup-request", `{"username":"kim"}`)
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Contains(t, body, "MissingRequiredField: password")
}

func TestCheckStatus_NotFound(t *testing.T) {
	app := newApp(&fakeWorkflow{status: map[string]string{}})
	code, body := do(t, app, fiber.MethodGet, "/api/admin/check-status/zed", "")
	assert.Equal(t, fiber.StatusOK, code)
	assert.JSONEq(t, `{"status":"not_found"}`, body)
}

func TestApprove_BadLinkAndUnknown(t *testing.T) {
	wf := &fakeWorkflow{status: map[string]string{}}
	app := newApp(wf)

	code, body := do(t, app, fiber.MethodGet, "/api/admin/approve?username=nobody", "")
	assert.Equal(t, fiber.StatusNotFound, code)
	assert.Contains(t, body, "No pending request found.")

	wf.linkError = apperror.New(apperror.ErrUnauthenticated, "This link is invalid or has expired.")
	code, body = do(t, app, fiber.MethodGet, "/api/admin/approve?username=nobody&token=x", "")
	assert.Equal(t, fiber.StatusForbidden, code)
	assert.Contains(t, body, "invalid or has expired")
}
