// file: internals/route/index.go
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"schoolsite_backend/internals/middlewares"
	authMiddleware "schoolsite_backend/internals/middlewares/auth"
	routeDetails "schoolsite_backend/internals/route/details"
)

// SetupRoutes merakit semua route. Urutan penting: route /admin publik didaftarkan
// sebelum group privat, karena middleware group berlaku untuk semua route sesudahnya.
func SetupRoutes(app *fiber.App, d *Deps) {
	startTime := time.Now()
	cfg := d.Config
	log := d.Log

	requireSession := authMiddleware.RequireAdminSession(d.Sessions, d.Cookie, log.Named("session"))

	// ===================== BASE / PUBLIC SITE =====================
	BaseRoutes(app, d, startTime)
	routeDetails.SitePages(app, cfg.PublicDir)
	if cfg.Storage.Driver == "local" {
		app.Static(cfg.Storage.LocalBaseURL, cfg.Storage.LocalDir, fiber.Static{MaxAge: 3600})
	}

	authDeps := routeDetails.AuthDeps{
		DB:        d.DB,
		Log:       log,
		Validator: d.Validator,
		Sessions:  d.Sessions,
		Cookie:    d.Cookie,
		Links:     d.Links,
		Notifier:  d.Notifier,
		BaseURL:   cfg.BaseURL,
		Operator:  cfg.Notify.OperatorAddress,
	}

	// ===================== ADMIN (cookie session) =====================
	log.Info("setting up ADMIN group")
	admin := app.Group("/admin", middlewares.NoCache())
	routeDetails.AdminPublicPages(admin, cfg.AdminPagesDir)
	routeDetails.AdminAuthRoutes(admin, requireSession, authDeps)

	private := admin.Group("", requireSession)
	routeDetails.AdminGatedPages(private, cfg.AdminPagesDir)

	// ===================== API =====================
	log.Info("setting up API group")
	api := app.Group("/api")
	routeDetails.SignupRoutes(api.Group("/admin"), authDeps)

	routeDetails.SchoolRoutes(private, api, requireSession, routeDetails.SchoolDeps{
		DB:            d.DB,
		Log:           log,
		Validator:     d.Validator,
		Blobs:         d.Blobs,
		Orphans:       d.Orphans,
		MaxUploadSize: cfg.Storage.MaxUploadSize,
	})

	NotFound(app)
}
