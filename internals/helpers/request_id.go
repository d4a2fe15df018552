package helper

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

type reqIDKey struct{}

// WithRequestID menempelkan request id ke context supaya service bisa ikut log.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, reqIDKey{}, id)
}

func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(reqIDKey{}).(string); ok {
		return v
	}
	return ""
}

// ReqID mengambil request id dari Locals (diisi middleware request-id).
func ReqID(c *fiber.Ctx) string {
	if v, ok := c.Locals("reqid").(string); ok {
		return v
	}
	return ""
}
