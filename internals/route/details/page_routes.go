package details

import (
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	helper "schoolsite_backend/internals/helpers"
)

var (
	publicAdminPages = []string{"login.html", "signup.html"}
	gatedAdminPages  = []string{
		"home.html",
		"manage-teachers.html",
		"manage-notices.html",
		"manage-gallery.html",
		"school-timing.html",
	}
)

func sendPage(dir, name string) fiber.Handler {
	path := filepath.Join(dir, name)
	return func(c *fiber.Ctx) error {
		if _, err := os.Stat(path); err != nil {
			return helper.JsonError(c, fiber.StatusNotFound, "Not Found")
		}
		return c.SendFile(path)
	}
}

// AdminPublicPages: login & signup tanpa sesi.
func AdminPublicPages(admin fiber.Router, dir string) {
	for _, p := range publicAdminPages {
		admin.Get("/"+p, sendPage(dir, p))
	}
}

// AdminGatedPages dipasang di group yang sudah lewat RequireAdminSession.
func AdminGatedPages(private fiber.Router, dir string) {
	for _, p := range gatedAdminPages {
		private.Get("/"+p, sendPage(dir, p))
	}
}

// SitePages: halaman publik situs sekolah.
func SitePages(app *fiber.App, dir string) {
	app.Get("/teachers", sendPage(dir, "teacher-list.html"))
	app.Get("/robots.txt", sendPage(dir, "robots.txt"))
	app.Get("/sitemap.xml", sendPage(dir, "sitemap.xml"))
}
