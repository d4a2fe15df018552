package routes

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"schoolsite_backend/internals/configs"
	"schoolsite_backend/internals/features/admins/auth/model"
	authService "schoolsite_backend/internals/features/admins/auth/service"
	"schoolsite_backend/internals/features/admins/auth/store"
	helper "schoolsite_backend/internals/helpers"
	authHelper "schoolsite_backend/internals/helpers/auth"
	"schoolsite_backend/internals/helpers/notify"
	helperOSS "schoolsite_backend/internals/helpers/oss"
	"schoolsite_backend/internals/helpers/repository"
)

type singleAdmin struct{ hash string }

func (s singleAdmin) FindByUsername(_ context.Context, u string) (*model.AdminModel, error) {
	if u != "admin" {
		return nil, repository.ErrRecordNotFound
	}
	return &model.AdminModel{AdminUsername: u, AdminPasswordHash: s.hash}, nil
}

func writePages(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte("<html>"+n+"</html>"), 0o644))
	}
}

func newTestApp(t *testing.T, ping func(context.Context) error) *fiber.App {
	t.Helper()
	adminDir := t.TempDir()
	publicDir := t.TempDir()
	writePages(t, adminDir, "login.html", "signup.html", "home.html")
	writePages(t, publicDir, "robots.txt")

	hash, err := authHelper.HashPassword("pw")
	require.NoError(t, err)

	cfg := &configs.Config{
		Env:           "test",
		SharedSecret:  "shared",
		AdminPagesDir: adminDir,
		PublicDir:     publicDir,
		Storage:       configs.StorageConfig{Driver: "memory", MaxUploadSize: 1 << 20},
	}
	log := zap.NewNop()
	d := &Deps{
		Config:    cfg,
		Log:       log,
		Validator: helper.NewValidator(),
		Sessions:  authService.NewSessionAuthority(singleAdmin{hash: hash}, store.NewMemoryStore(), "shared", 5*time.Minute, log),
		Cookie:    authHelper.NewCookieCodec("admin_sid", "", "", "shared", false),
		Links:     authHelper.NewActionLinkSigner("", time.Hour),
		Notifier:  &notify.LogSender{Log: log},
		Blobs:     helperOSS.NewStorageService(helperOSS.NewMemoryStore(), "t", helperOSS.DefaultWebPOptions(), 1<<20),
		Ping:      ping,
	}

	app := fiber.New()
	SetupRoutes(app, d)
	return app
}

func send(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, string) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	b, _ := io.ReadAll(resp.Body)
	return resp, string(b)
}

func TestRootRedirectsToLogin(t *testing.T) {
	app := newTestApp(t, nil)
	resp, _ := send(t, app, httptest.NewRequest(fiber.MethodGet, "/", nil))
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/admin/login.html", resp.Header.Get("Location"))
}

func TestPublicAdminPagesAreNotCached(t *testing.T) {
	app := newTestApp(t, nil)
	resp, body := send(t, app, httptest.NewRequest(fiber.MethodGet, "/admin/login.html", nil))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "login.html")
	assert.Equal(t, "no-store, no-cache, must-revalidate, private", resp.Header.Get("Cache-Control"))
	assert.Equal(t, "no-cache", resp.Header.Get("Pragma"))
}

func TestGatedEndpointsRedirectWithoutSession(t *testing.T) {
	app := newTestApp(t, nil)

	for _, tc := range []struct{ method, path string }{
		{fiber.MethodGet, "/admin/home.html"},
		{fiber.MethodGet, "/admin/manage-teachers.html"},
		{fiber.MethodPost, "/admin/add-teacher"},
		{fiber.MethodDelete, "/admin/delete-notice/00000000-0000-0000-0000-000000000000"},
		{fiber.MethodPost, "/admin/delete-gallery/00000000-0000-0000-0000-000000000000"},
		{fiber.MethodGet, "/admin/teachers"},
		{fiber.MethodGet, "/admin/me"},
		{fiber.MethodPost, "/api/routine"},
		{fiber.MethodDelete, "/api/routine/class/7"},
	} {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			resp, _ := send(t, app, httptest.NewRequest(tc.method, tc.path, nil))
			assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
			assert.Equal(t, "/admin/login.html", resp.Header.Get("Location"))
		})
	}
}

func TestLoginThenGatedPage(t *testing.T) {
	app := newTestApp(t, nil)

	req := httptest.NewRequest(fiber.MethodPost, "/admin/login", strings.NewReader(`{"username":"admin","password":"pw","sharedSecret":"shared"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, _ := send(t, app, req)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var cookie *http.Cookie
	for _, ck := range resp.Cookies() {
		if ck.Name == "admin_sid" {
			cookie = ck
		}
	}
	require.NotNil(t, cookie)

	page := httptest.NewRequest(fiber.MethodGet, "/admin/home.html", nil)
	page.AddCookie(cookie)
	resp, body := send(t, app, page)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "home.html")
	assert.Equal(t, "no-store, no-cache, must-revalidate, private", resp.Header.Get("Cache-Control"))
}

func TestUnknownRouteIsJSON404(t *testing.T) {
	app := newTestApp(t, nil)
	resp, body := send(t, app, httptest.NewRequest(fiber.MethodGet, "/nope", nil))
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"success":false,"message":"Not Found"}`, body)
}

func TestSitePages(t *testing.T) {
	app := newTestApp(t, nil)

	resp, _ := send(t, app, httptest.NewRequest(fiber.MethodGet, "/robots.txt", nil))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = send(t, app, httptest.NewRequest(fiber.MethodGet, "/sitemap.xml", nil))
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	resp, body := send(t, newTestApp(t, func(context.Context) error { return nil }), httptest.NewRequest(fiber.MethodGet, "/health", nil))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"database":"Connected"`)

	resp, body = send(t, newTestApp(t, func(context.Context) error { return errors.New("down") }), httptest.NewRequest(fiber.MethodGet, "/health", nil))
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	assert.Contains(t, body, `"status":"DOWN"`)
}
