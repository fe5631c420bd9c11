package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Hospitalario-api/internal/application/usecase"
)

// DepartmentHandler maneja departamentos (protegido).
type DepartmentHandler struct {
	uc *usecase.DepartmentUseCase
}

// NewDepartmentHandler construye el handler.
func NewDepartmentHandler(uc *usecase.DepartmentUseCase) *DepartmentHandler {
	return &DepartmentHandler{uc: uc}
}

type createDepartmentRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Create godoc
// @Summary      Crear departamento
// @Tags         departments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      201  {object}  dto.APIResponse
// @Failure      400  {object}  dto.APIResponse
// @Router       /api/departments [post]
func (h *DepartmentHandler) Create(c *fiber.Ctx) error {
	var in createDepartmentRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	d, err := h.uc.Create(in.Name, in.Description)
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, fiber.StatusCreated, d, "departamento creado")
}

// List godoc
// @Summary      Listar departamentos
// @Tags         departments
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse
// @Router       /api/departments [get]
func (h *DepartmentHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, fiber.StatusOK, list, "")
}
