package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Hospitalario-api/internal/application/admission"
	"github.com/jhoicas/Hospitalario-api/internal/application/dto"
	"github.com/jhoicas/Hospitalario-api/internal/domain/entity"
)

// AdmissionHandler maneja el ciclo de vida de las admisiones (protegido).
type AdmissionHandler struct {
	requestUC   *admission.RequestAdmissionUseCase
	approveUC   *admission.ApproveAdmissionUseCase
	dischargeUC *admission.DischargeAdmissionUseCase
	queryUC     *admission.QueryUseCase
	pdfUC       *admission.SummaryPDFUseCase
}

// NewAdmissionHandler construye el handler.
func NewAdmissionHandler(
	requestUC *admission.RequestAdmissionUseCase,
	approveUC *admission.ApproveAdmissionUseCase,
	dischargeUC *admission.DischargeAdmissionUseCase,
	queryUC *admission.QueryUseCase,
	pdfUC *admission.SummaryPDFUseCase,
) *AdmissionHandler {
	return &AdmissionHandler{
		requestUC:   requestUC,
		approveUC:   approveUC,
		dischargeUC: dischargeUC,
		queryUC:     queryUC,
		pdfUC:       pdfUC,
	}
}

// Request godoc
// @Summary      Solicitar admisión hospitalaria
// @Tags         admissions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RequestAdmissionRequest  true  "Datos de la solicitud"
// @Success      201   {object}  dto.APIResponse
// @Failure      400   {object}  dto.APIResponse
// @Failure      404   {object}  dto.APIResponse
// @Router       /api/admissions/request [post]
func (h *AdmissionHandler) Request(c *fiber.Ctx) error {
	var in dto.RequestAdmissionRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	adm, ward, err := h.requestUC.Request(c.Context(), GetUserID(c), in)
	if err != nil {
		return failFromErr(c, err)
	}
	out := dto.RequestAdmissionResponse{
		AdmissionID:     adm.ID,
		AdmissionNumber: adm.AdmissionNumber,
		WardAssigned:    ward.Name,
		WardID:          ward.ID,
		Status:          adm.Status,
	}
	return ok(c, fiber.StatusCreated, out, "solicitud de admisión creada")
}

// Approve godoc
// @Summary      Aprobar admisión y asignar cama
// @Tags         admissions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la admisión"
// @Param        body  body  dto.ApproveAdmissionRequest  true  "Cama explícita u opciones"
// @Success      200   {object}  dto.APIResponse
// @Failure      400   {object}  dto.APIResponse
// @Failure      404   {object}  dto.APIResponse
// @Router       /api/admissions/{id}/approve [post]
func (h *AdmissionHandler) Approve(c *fiber.Ctx) error {
	var in dto.ApproveAdmissionRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.approveUC.Approve(c.Context(), c.Params("id"), GetUserID(c), in)
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, fiber.StatusOK, out, "admisión aprobada")
}

// Discharge godoc
// @Summary      Dar de alta al paciente
// @Tags         admissions
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la admisión"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIResponse
// @Failure      409  {object}  dto.APIResponse
// @Router       /api/admissions/{id}/discharge [post]
func (h *AdmissionHandler) Discharge(c *fiber.Ctx) error {
	if err := h.dischargeUC.Discharge(c.Context(), c.Params("id"), GetUserID(c)); err != nil {
		return failFromErr(c, err)
	}
	return ok(c, fiber.StatusOK, nil, "paciente dado de alta")
}

// List godoc
// @Summary      Listar admisiones
// @Tags         admissions
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Filtro por estado (active, approved, discharged)"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.APIResponse
// @Router       /api/admissions [get]
func (h *AdmissionHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	list, err := h.queryUC.List(c.Query("status"), limit, offset)
	if err != nil {
		return failFromErr(c, err)
	}
	out := make([]dto.AdmissionDTO, 0, len(list))
	for _, a := range list {
		out = append(out, toAdmissionDTO(a))
	}
	return ok(c, fiber.StatusOK, out, "")
}

// GetByID godoc
// @Summary      Obtener admisión por ID
// @Tags         admissions
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la admisión"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/admissions/{id} [get]
func (h *AdmissionHandler) GetByID(c *fiber.Ctx) error {
	adm, err := h.queryUC.GetByID(c.Params("id"))
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, fiber.StatusOK, toAdmissionDTO(adm), "")
}

// SummaryPDF godoc
// @Summary      Descargar resumen de admisión en PDF
// @Tags         admissions
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la admisión"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/admissions/{id}/summary.pdf [get]
func (h *AdmissionHandler) SummaryPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdfUC.DownloadSummaryPDF(c.Context(), c.Params("id"))
	if err != nil {
		return failFromErr(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

func toAdmissionDTO(a *entity.Admission) dto.AdmissionDTO {
	return dto.AdmissionDTO{
		ID:                a.ID,
		AdmissionNumber:   a.AdmissionNumber,
		PatientID:         a.PatientID,
		VisitID:           a.VisitID,
		WardID:            a.WardID,
		BedID:             a.BedID,
		AttendingDoctorID: a.AttendingDoctorID,
		AssignedDoctorID:  a.AssignedDoctorID,
		RequestedBy:       a.RequestedBy,
		ApprovedBy:        a.ApprovedBy,
		Status:            a.Status,
		AdmissionReason:   a.AdmissionReason,
		Diagnosis:         a.Diagnosis,
		TreatmentPlan:     a.TreatmentPlan,
		Urgency:           a.Urgency,
		DischargedAt:      a.DischargedAt,
		CreatedAt:         a.CreatedAt,
	}
}
