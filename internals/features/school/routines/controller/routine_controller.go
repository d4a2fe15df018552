package controller

import (
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"schoolsite_backend/internals/features/school/routines/dto"
	"schoolsite_backend/internals/features/school/routines/service"
	helper "schoolsite_backend/internals/helpers"
)

type RoutineController struct {
	Routines *service.RoutineService
	Log      *zap.Logger
}

func NewRoutineController(routines *service.RoutineService, log *zap.Logger) *RoutineController {
	return &RoutineController{Routines: routines, Log: log}
}

// POST /api/routine
func (rc *RoutineController) Save(c *fiber.Ctx) error {
	var req dto.SaveRoutineRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	routine, err := rc.Routines.Save(c.UserContext(), req.Name(), req.ToRows())
	if err != nil {
		return helper.FromAppError(c, err)
	}
	msg := fmt.Sprintf("Routine for Class %s saved successfully! Previous routine deleted.", routine.RoutineClassName)
	return helper.JsonCreated(c, msg, dto.FromModel(routine))
}

// GET /api/routine
func (rc *RoutineController) List(c *fiber.Ctx) error {
	items, err := rc.Routines.List(c.UserContext())
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonList(c, "ok", dto.FromModels(items))
}

// GET /api/routine/class/:className
func (rc *RoutineController) GetByClass(c *fiber.Ctx) error {
	routine, err := rc.Routines.GetByClass(c.UserContext(), classParam(c))
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.FromModel(routine))
}

// DELETE /api/routine/class/:className
func (rc *RoutineController) DeleteByClass(c *fiber.Ctx) error {
	className := classParam(c)
	n, err := rc.Routines.DeleteByClass(c.UserContext(), className)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonDeleted(c, service.DeletedMessage(n, className), fiber.Map{"deleted": n})
}

// nama kelas bisa mengandung spasi ("Class 7 A")
func classParam(c *fiber.Ctx) string {
	raw := c.Params("className")
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}
