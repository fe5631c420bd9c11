package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Hospitalario-api/internal/application/dto"
	"github.com/jhoicas/Hospitalario-api/internal/application/usecase"
	"github.com/jhoicas/Hospitalario-api/internal/domain/entity"
)

// PatientHandler maneja pacientes y visitas (protegido).
type PatientHandler struct {
	uc *usecase.PatientUseCase
}

// NewPatientHandler construye el handler.
func NewPatientHandler(uc *usecase.PatientUseCase) *PatientHandler {
	return &PatientHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar paciente
// @Tags         patients
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePatientRequest  true  "Datos del paciente"
// @Success      201   {object}  dto.APIResponse
// @Failure      400   {object}  dto.APIResponse
// @Router       /api/patients [post]
func (h *PatientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePatientRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	p, err := h.uc.Create(in)
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, fiber.StatusCreated, toPatientDTO(p), "paciente registrado")
}

// GetByID godoc
// @Summary      Obtener paciente por ID
// @Tags         patients
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del paciente"
// @Success      200  {object}  dto.APIResponse
// @Failure      404  {object}  dto.APIResponse
// @Router       /api/patients/{id} [get]
func (h *PatientHandler) GetByID(c *fiber.Ctx) error {
	p, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return failFromErr(c, err)
	}
	return ok(c, fiber.StatusOK, toPatientDTO(p), "")
}

// List godoc
// @Summary      Listar pacientes
// @Tags         patients
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.APIResponse
// @Router       /api/patients [get]
func (h *PatientHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	list, err := h.uc.List(limit, offset)
	if err != nil {
		return failFromErr(c, err)
	}
	out := make([]dto.PatientDTO, 0, len(list))
	for _, p := range list {
		out = append(out, toPatientDTO(p))
	}
	return ok(c, fiber.StatusOK, out, "")
}

// CreateVisit godoc
// @Summary      Registrar visita (cola de consulta)
// @Tags         patients
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateVisitRequest  true  "Datos de la visita"
// @Success      201   {object}  dto.APIResponse
// @Failure      400   {object}  dto.APIResponse
// @Failure      404   {object}  dto.APIResponse
// @Router       /api/visits [post]
func (h *PatientHandler) CreateVisit(c *fiber.Ctx) error {
	var in dto.CreateVisitRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if in.AttendingDoctorID == "" {
		in.AttendingDoctorID = GetUserID(c)
	}
	v, err := h.uc.CreateVisit(in)
	if err != nil {
		return failFromErr(c, err)
	}
	out := dto.VisitDTO{
		ID:                v.ID,
		PatientID:         v.PatientID,
		AttendingDoctorID: v.AttendingDoctorID,
		Reason:            v.Reason,
		Status:            v.Status,
		CreatedAt:         v.CreatedAt,
	}
	return ok(c, fiber.StatusCreated, out, "visita registrada")
}

func toPatientDTO(p *entity.Patient) dto.PatientDTO {
	return dto.PatientDTO{
		ID:                 p.ID,
		RegistrationNumber: p.RegistrationNumber,
		FirstName:          p.FirstName,
		LastName:           p.LastName,
		DateOfBirth:        p.DateOfBirth,
		Gender:             p.Gender,
		Phone:              p.Phone,
		Address:            p.Address,
		BloodType:          p.BloodType,
		Allergies:          p.Allergies,
		CreatedAt:          p.CreatedAt,
	}
}
