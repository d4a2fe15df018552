package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// FormValue mengambil nilai dari key pertama yang terisi (form lama memakai nama pendek).
// Nilai dikembalikan apa adanya; spasi hanya dipakai untuk cek kosong.
func FormValue(c *fiber.Ctx, keys ...string) string {
	for _, k := range keys {
		if v := c.FormValue(k); strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// OptionalFormValue membedakan field yang tidak dikirim (nil) dengan yang dikosongkan ("").
func OptionalFormValue(c *fiber.Ctx, keys ...string) *string {
	form, err := c.MultipartForm()
	if err == nil && form != nil {
		for _, k := range keys {
			if vals, ok := form.Value[k]; ok && len(vals) > 0 {
				v := vals[0]
				return &v
			}
		}
		return nil
	}
	for _, k := range keys {
		if raw := c.Request().PostArgs().Peek(k); raw != nil {
			v := string(raw)
			return &v
		}
	}
	return nil
}
