package helper

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolsite_backend/internals/helpers/apperror"
)

type sampleReq struct {
	Name  string `json:"name" validate:"required"`
	Email string `form:"email" validate:"required,email"`
}

func decode(t *testing.T, body io.Reader) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func TestValidationErrorUsesRequestFieldNames(t *testing.T) {
	app := fiber.New()
	v := NewValidator()
	app.Get("/", func(c *fiber.Ctx) error {
		return ValidationError(c, v.Struct(sampleReq{Email: "nope"}))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := decode(t, resp.Body)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "MissingRequiredField: name", body["message"])
	errs := body["errors"].(map[string]any)
	assert.Contains(t, errs, "email")
}

func TestFromAppErrorHidesInternalCause(t *testing.T) {
	cases := []struct {
		err    error
		status int
		msg    string
	}{
		{apperror.Persistence("create", io.ErrUnexpectedEOF), 500, "Failed to save data"},
		{apperror.Storage("upload", io.ErrClosedPipe), 500, "Failed to process uploaded file"},
		{apperror.NotFound("Teacher not found"), 404, "Teacher not found"},
		{apperror.Duplicate("Your signup status is: pending"), 409, "Your signup status is: pending"},
		{apperror.ErrInvalidCredentials, 401, "Invalid username or password"},
		{apperror.MissingFields("photo"), 400, "MissingRequiredField: photo"},
	}

	for _, tc := range cases {
		app := fiber.New()
		app.Get("/", func(c *fiber.Ctx) error { return FromAppError(c, tc.err) })

		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		assert.Equal(t, tc.status, resp.StatusCode)
		body := decode(t, resp.Body)
		assert.Equal(t, tc.msg, body["message"])
		assert.Equal(t, false, body["success"])
	}
}
