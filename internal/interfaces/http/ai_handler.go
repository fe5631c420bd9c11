package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Hospitalario-api/internal/application/dto"
	"github.com/jhoicas/Hospitalario-api/internal/application/usecase"
)

// AIHandler maneja la asistencia clínica por IA (protegido).
// Las respuestas son borradores: la decisión clínica es siempre del médico.
type AIHandler struct {
	uc *usecase.AIUseCase
}

// NewAIHandler construye el handler.
func NewAIHandler(uc *usecase.AIUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// DiagnosisDraft godoc
// @Summary      Sugerir borrador de diagnóstico
// @Tags         ai
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DiagnosisDraftRequest  true  "Síntomas, notas e historia"
// @Success      200   {object}  dto.APIResponse
// @Failure      400   {object}  dto.APIResponse
// @Failure      504   {object}  dto.APIResponse
// @Router       /api/ai/diagnosis-draft [post]
func (h *AIHandler) DiagnosisDraft(c *fiber.Ctx) error {
	var in dto.DiagnosisDraftRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.SuggestDiagnosisDraft(c.Context(), in)
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, fiber.StatusOK, out, "borrador generado; requiere revisión médica")
}

// StructureTranscript godoc
// @Summary      Estructurar transcripción de dictado en nota SOAP
// @Tags         ai
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StructureTranscriptRequest  true  "Transcripción libre"
// @Success      200   {object}  dto.APIResponse
// @Failure      400   {object}  dto.APIResponse
// @Failure      504   {object}  dto.APIResponse
// @Router       /api/ai/structure-transcript [post]
func (h *AIHandler) StructureTranscript(c *fiber.Ctx) error {
	var in dto.StructureTranscriptRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.StructureTranscript(c.Context(), in)
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, fiber.StatusOK, out, "")
}
