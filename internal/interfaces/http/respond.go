package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Hospitalario-api/internal/application/dto"
	"github.com/jhoicas/Hospitalario-api/internal/domain"
)

// ok responde con el envoltorio {success:true, data, message?}.
func ok(c *fiber.Ctx, status int, data any, message string) error {
	return c.Status(status).JSON(dto.OK(data, message))
}

// fail responde con el envoltorio {success:false, error}.
func fail(c *fiber.Ctx, status int, errMsg string) error {
	return c.Status(status).JSON(dto.Fail(errMsg))
}

// failFromErr traduce errores de dominio al estado HTTP del contrato:
// 400 validación y reglas de negocio, 404 no encontrado, 401/403 auth,
// 409 conflicto, 504 timeout del LLM y 500 para el resto. Los mensajes de
// regla de negocio van al cliente; los errores internos se quedan genéricos.
func failFromErr(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrNoCapacity),
		errors.Is(err, domain.ErrInvalidBed),
		errors.Is(err, domain.ErrBedUnavailable),
		errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrAlreadyProcessed):
		return fail(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return fail(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		return fail(c, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		return fail(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrDuplicate),
		errors.Is(err, domain.ErrEmailAlreadyExists):
		return fail(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return fail(c, fiber.StatusGatewayTimeout, "la asistencia de IA excedió el tiempo de espera")
	default:
		return fail(c, fiber.StatusInternalServerError, "error interno")
	}
}

// pageParams lee limit/offset de la query con topes sanos.
func pageParams(c *fiber.Ctx) (limit, offset int) {
	limit = c.QueryInt("limit", 20)
	offset = c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
