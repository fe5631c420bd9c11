package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Hospitalario-api/internal/application/dto"
	"github.com/jhoicas/Hospitalario-api/internal/application/pharmacy"
	"github.com/jhoicas/Hospitalario-api/internal/application/usecase"
	"github.com/jhoicas/Hospitalario-api/internal/domain/entity"
)

// PharmacyHandler maneja solicitudes de insumos, traslados y consultas de stock (protegido).
type PharmacyHandler struct {
	createUC  *pharmacy.CreateSupplyRequestUseCase
	approveUC *pharmacy.ApproveSupplyRequestUseCase
	queryUC   *usecase.PharmacyQueryUseCase
}

// NewPharmacyHandler construye el handler.
func NewPharmacyHandler(
	createUC *pharmacy.CreateSupplyRequestUseCase,
	approveUC *pharmacy.ApproveSupplyRequestUseCase,
	queryUC *usecase.PharmacyQueryUseCase,
) *PharmacyHandler {
	return &PharmacyHandler{createUC: createUC, approveUC: approveUC, queryUC: queryUC}
}

// CreateRequest godoc
// @Summary      Crear solicitud de insumos para un pabellón
// @Tags         pharmacy
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSupplyRequestRequest  true  "Insumo y cantidad"
// @Success      201   {object}  dto.APIResponse
// @Failure      400   {object}  dto.APIResponse
// @Failure      404   {object}  dto.APIResponse
// @Router       /api/supply-requests [post]
func (h *PharmacyHandler) CreateRequest(c *fiber.Ctx) error {
	var in dto.CreateSupplyRequestRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	req, err := h.createUC.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, fiber.StatusCreated, toSupplyRequestDTO(req), "solicitud de insumos creada")
}

// ListRequests godoc
// @Summary      Listar solicitudes de insumos
// @Tags         pharmacy
// @Security     Bearer
// @Produce      json
// @Param        ward_id  query  string  false  "Filtro por pabellón"
// @Param        status   query  string  false  "Filtro por estado (pending, approved)"
// @Param        limit    query  int     false  "Límite"   default(20)
// @Param        offset   query  int     false  "Offset"   default(0)
// @Success      200      {object}  dto.APIResponse
// @Router       /api/supply-requests [get]
func (h *PharmacyHandler) ListRequests(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	list, err := h.queryUC.ListRequests(c.Query("ward_id"), c.Query("status"), limit, offset)
	if err != nil {
		return failFromErr(c, err)
	}
	out := make([]dto.SupplyRequestDTO, 0, len(list))
	for _, r := range list {
		out = append(out, toSupplyRequestDTO(r))
	}
	return ok(c, fiber.StatusOK, out, "")
}

// ApproveRequest godoc
// @Summary      Aprobar solicitud y ejecutar el traslado farmacia -> pabellón
// @Tags         pharmacy
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ApproveSupplyRequestRequest  true  "Solicitud y cantidad aprobada"
// @Success      200   {object}  dto.APIResponse
// @Failure      400   {object}  dto.APIResponse
// @Failure      404   {object}  dto.APIResponse
// @Router       /api/pharmacist/approve-request [post]
func (h *PharmacyHandler) ApproveRequest(c *fiber.Ctx) error {
	var in dto.ApproveSupplyRequestRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.approveUC.Approve(c.Context(), GetUserID(c), in)
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, fiber.StatusOK, out, "traslado ejecutado")
}

// ListStock godoc
// @Summary      Listar stock central de farmacia
// @Tags         pharmacy
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.APIResponse
// @Router       /api/pharmacy/stock [get]
func (h *PharmacyHandler) ListStock(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	list, err := h.queryUC.ListStock(limit, offset)
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, fiber.StatusOK, toPharmacyStockDTOs(list), "")
}

// ListLowStock godoc
// @Summary      Listar insumos de farmacia en o bajo el nivel mínimo
// @Tags         pharmacy
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.APIResponse
// @Router       /api/pharmacy/stock/low [get]
func (h *PharmacyHandler) ListLowStock(c *fiber.Ctx) error {
	list, err := h.queryUC.ListLowStock()
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, fiber.StatusOK, toPharmacyStockDTOs(list), "")
}

// ListTransactions godoc
// @Summary      Listar el rastro de auditoría de farmacia
// @Tags         pharmacy
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.APIResponse
// @Router       /api/pharmacy/transactions [get]
func (h *PharmacyHandler) ListTransactions(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	list, err := h.queryUC.ListTransactions(limit, offset)
	if err != nil {
		return failFromErr(c, err)
	}
	out := make([]dto.PharmacyTransactionDTO, 0, len(list))
	for _, t := range list {
		out = append(out, dto.PharmacyTransactionDTO{
			ID:               t.ID,
			TransactionType:  t.TransactionType,
			PharmacySupplyID: t.PharmacySupplyID,
			WardSupplyID:     t.WardSupplyID,
			SupplyRequestID:  t.SupplyRequestID,
			WardID:           t.WardID,
			Quantity:         t.Quantity,
			PreviousStock:    t.PreviousStock,
			NewStock:         t.NewStock,
			PerformedBy:      t.PerformedBy,
			Notes:            t.Notes,
			CreatedAt:        t.CreatedAt,
		})
	}
	return ok(c, fiber.StatusOK, out, "")
}

func toSupplyRequestDTO(r *entity.SupplyRequest) dto.SupplyRequestDTO {
	return dto.SupplyRequestDTO{
		ID:                r.ID,
		WardID:            r.WardID,
		SupplyID:          r.SupplyID,
		PharmacySupplyID:  r.PharmacySupplyID,
		SupplyName:        r.SupplyName,
		QuantityRequested: r.QuantityRequested,
		Status:            r.Status,
		RequestedBy:       r.RequestedBy,
		ApprovedBy:        r.ApprovedBy,
		DeliveredQuantity: r.DeliveredQuantity,
		DeliveredDate:     r.DeliveredDate,
		CreatedAt:         r.CreatedAt,
	}
}

func toPharmacyStockDTOs(list []*entity.PharmacyStock) []dto.PharmacyStockDTO {
	out := make([]dto.PharmacyStockDTO, 0, len(list))
	for _, s := range list {
		out = append(out, dto.PharmacyStockDTO{
			ID:                s.ID,
			SupplyName:        s.SupplyName,
			Category:          s.Category,
			CurrentStock:      s.CurrentStock,
			MinimumStockLevel: s.MinimumStockLevel,
			Unit:              s.Unit,
			Low:               s.IsLow(),
		})
	}
	return out
}
