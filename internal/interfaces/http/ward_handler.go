package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Hospitalario-api/internal/application/dto"
	"github.com/jhoicas/Hospitalario-api/internal/application/usecase"
	"github.com/jhoicas/Hospitalario-api/internal/domain/entity"
)

// WardHandler maneja pabellones, camas e insumos por pabellón (protegido).
type WardHandler struct {
	uc *usecase.WardUseCase
}

// NewWardHandler construye el handler.
func NewWardHandler(uc *usecase.WardUseCase) *WardHandler {
	return &WardHandler{uc: uc}
}

// Create godoc
// @Summary      Crear pabellón con sus camas
// @Tags         wards
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWardRequest  true  "Datos del pabellón"
// @Success      201   {object}  dto.APIResponse
// @Failure      400   {object}  dto.APIResponse
// @Router       /api/wards [post]
func (h *WardHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWardRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	ward, err := h.uc.Create(in)
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, fiber.StatusCreated, toWardDTO(ward), "pabellón creado")
}

// List godoc
// @Summary      Listar pabellones
// @Tags         wards
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.APIResponse
// @Router       /api/wards [get]
func (h *WardHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	list, err := h.uc.List(limit, offset)
	if err != nil {
		return failFromErr(c, err)
	}
	out := make([]dto.WardDTO, 0, len(list))
	for _, w := range list {
		out = append(out, toWardDTO(w))
	}
	return ok(c, fiber.StatusOK, out, "")
}

// ListBeds godoc
// @Summary      Listar camas de un pabellón
// @Tags         wards
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del pabellón"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/wards/{id}/beds [get]
func (h *WardHandler) ListBeds(c *fiber.Ctx) error {
	beds, err := h.uc.ListBeds(c.Params("id"))
	if err != nil {
		return failFromErr(c, err)
	}
	out := make([]dto.BedDTO, 0, len(beds))
	for _, b := range beds {
		out = append(out, dto.BedDTO{
			ID:               b.ID,
			WardID:           b.WardID,
			BedNumber:        b.BedNumber,
			BedType:          b.BedType,
			Status:           b.Status,
			CurrentPatientID: b.CurrentPatientID,
		})
	}
	return ok(c, fiber.StatusOK, out, "")
}

// ListSupplies godoc
// @Summary      Listar insumos de un pabellón
// @Tags         wards
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del pabellón"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/wards/{id}/supplies [get]
func (h *WardHandler) ListSupplies(c *fiber.Ctx) error {
	supplies, err := h.uc.ListSupplies(c.Params("id"))
	if err != nil {
		return failFromErr(c, err)
	}
	out := make([]dto.WardSupplyDTO, 0, len(supplies))
	for _, s := range supplies {
		out = append(out, dto.WardSupplyDTO{
			ID:                s.ID,
			WardID:            s.WardID,
			SupplyName:        s.SupplyName,
			CurrentStock:      s.CurrentStock,
			MinimumStockLevel: s.MinimumStockLevel,
			Unit:              s.Unit,
		})
	}
	return ok(c, fiber.StatusOK, out, "")
}

func toWardDTO(w *entity.Ward) dto.WardDTO {
	return dto.WardDTO{
		ID:            w.ID,
		Name:          w.Name,
		WardType:      w.WardType,
		TotalBeds:     w.TotalBeds,
		AvailableBeds: w.AvailableBeds,
		HeadNurseID:   w.HeadNurseID,
		IsActive:      w.IsActive,
	}
}
