package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Hospitalario-api/internal/application/dto"
	"github.com/jhoicas/Hospitalario-api/internal/application/usecase"
	"github.com/jhoicas/Hospitalario-api/internal/domain/entity"
)

// LabHandler maneja órdenes de laboratorio y resultados (protegido).
type LabHandler struct {
	uc *usecase.LabUseCase
}

// NewLabHandler construye el handler.
func NewLabHandler(uc *usecase.LabUseCase) *LabHandler {
	return &LabHandler{uc: uc}
}

// Create godoc
// @Summary      Crear orden de laboratorio
// @Tags         lab
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLabOrderRequest  true  "Orden y pruebas"
// @Success      201   {object}  dto.APIResponse
// @Failure      400   {object}  dto.APIResponse
// @Failure      404   {object}  dto.APIResponse
// @Router       /api/lab-orders [post]
func (h *LabHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLabOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	order, err := h.uc.CreateOrder(GetUserID(c), in)
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, fiber.StatusCreated, toLabOrderDTO(order), "orden de laboratorio creada")
}

// ListByPatient godoc
// @Summary      Listar órdenes de laboratorio de un paciente
// @Tags         lab
// @Security     Bearer
// @Produce      json
// @Param        patient_id  query  string  true   "ID del paciente"
// @Param        limit       query  int     false  "Límite"   default(20)
// @Param        offset      query  int     false  "Offset"   default(0)
// @Success      200         {object}  dto.APIResponse
// @Router       /api/lab-orders [get]
func (h *LabHandler) ListByPatient(c *fiber.Ctx) error {
	patientID := c.Query("patient_id")
	if patientID == "" {
		return fail(c, fiber.StatusBadRequest, "patient_id es requerido")
	}
	limit, offset := pageParams(c)
	list, err := h.uc.ListByPatient(patientID, limit, offset)
	if err != nil {
		return failFromErr(c, err)
	}
	out := make([]dto.LabOrderDTO, 0, len(list))
	for _, o := range list {
		out = append(out, toLabOrderDTO(o))
	}
	return ok(c, fiber.StatusOK, out, "")
}

// SetResult godoc
// @Summary      Registrar resultado de una prueba
// @Tags         lab
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        testId  path  string  true  "ID de la prueba"
// @Param        body    body  dto.SetLabResultRequest  true  "Resultado"
// @Success      200     {object}  dto.APIResponse
// @Failure      404     {object}  dto.APIResponse
// @Router       /api/lab-orders/tests/{testId}/result [post]
func (h *LabHandler) SetResult(c *fiber.Ctx) error {
	var in dto.SetLabResultRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if in.Result == "" {
		return fail(c, fiber.StatusBadRequest, "result es requerido")
	}
	if err := h.uc.SetResult(c.Params("testId"), in.Result); err != nil {
		return failFromErr(c, err)
	}
	return ok(c, fiber.StatusOK, nil, "resultado registrado")
}

func toLabOrderDTO(o *entity.LabOrder) dto.LabOrderDTO {
	tests := make([]dto.LabOrderTestDTO, 0, len(o.Tests))
	for _, t := range o.Tests {
		tests = append(tests, dto.LabOrderTestDTO{
			ID:       t.ID,
			TestName: t.TestName,
			TestCode: t.TestCode,
			Result:   t.Result,
			Status:   t.Status,
		})
	}
	return dto.LabOrderDTO{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		PatientID:   o.PatientID,
		VisitID:     o.VisitID,
		OrderedBy:   o.OrderedBy,
		Status:      o.Status,
		Priority:    o.Priority,
		Notes:       o.Notes,
		Tests:       tests,
		CreatedAt:   o.CreatedAt,
	}
}
