package middlewares

import "github.com/gofiber/fiber/v2"

// NoCache: halaman admin tidak boleh disimpan browser/proxy (tombol back setelah logout).
func NoCache() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderCacheControl, "no-store, no-cache, must-revalidate, private")
		c.Set(fiber.HeaderPragma, "no-cache")
		c.Set(fiber.HeaderExpires, "-1")
		return c.Next()
	}
}
