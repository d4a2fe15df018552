package helper

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ValidationError mengubah validator.ValidationErrors jadi 400 dengan detail field.
func ValidationError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}

	fields := make(map[string][]string, len(ve))
	missing := make([]string, 0, len(ve))
	for _, fe := range ve {
		name := fe.Field()
		fields[name] = append(fields[name], fe.Tag())
		if fe.Tag() == "required" {
			missing = append(missing, name)
		}
	}

	msg := "validation failed"
	if len(missing) > 0 {
		msg = "MissingRequiredField: " + strings.Join(missing, ", ")
	}
	return JsonValidationError(c, msg, fields)
}

// NewValidator memakai nama dari tag json/form supaya pesan error cocok dengan field request.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})
	return v
}
