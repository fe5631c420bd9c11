package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Hospitalario-api/internal/application/usecase"
)

// DashboardHandler maneja los agregados del panel administrativo (protegido).
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen del panel: ocupación, solicitudes pendientes y stock bajo
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary()
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, fiber.StatusOK, out, "")
}
