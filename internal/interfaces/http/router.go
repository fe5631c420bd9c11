package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Hospitalario-api/internal/application/admission"
	"github.com/jhoicas/Hospitalario-api/internal/application/auth"
	"github.com/jhoicas/Hospitalario-api/internal/application/notify"
	"github.com/jhoicas/Hospitalario-api/internal/application/pharmacy"
	"github.com/jhoicas/Hospitalario-api/internal/application/usecase"
	"github.com/jhoicas/Hospitalario-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	RequestAdmission *admission.RequestAdmissionUseCase
	ApproveAdmission *admission.ApproveAdmissionUseCase
	DischargeUC      *admission.DischargeAdmissionUseCase
	AdmissionQueries *admission.QueryUseCase
	SummaryPDF       *admission.SummaryPDFUseCase
	CreateSupplyReq  *pharmacy.CreateSupplyRequestUseCase
	ApproveSupplyReq *pharmacy.ApproveSupplyRequestUseCase
	PharmacyQueries  *usecase.PharmacyQueryUseCase
	PatientUC        *usecase.PatientUseCase
	WardUC           *usecase.WardUseCase
	LabUC            *usecase.LabUseCase
	DashboardUC      *usecase.DashboardUseCase
	DepartmentUC     *usecase.DepartmentUseCase
	AIUC             *usecase.AIUseCase
	Notifications    *notify.Service
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Admisiones (protegido; aprobar/alta restringido a enfermería y admin)
	admissions := protected.Group("/admissions")
	admissionHandler := NewAdmissionHandler(
		deps.RequestAdmission, deps.ApproveAdmission, deps.DischargeUC,
		deps.AdmissionQueries, deps.SummaryPDF,
	)
	admissions.Post("/request", RequireRole(entity.RoleDoctor, entity.RoleAdmin), admissionHandler.Request)
	admissions.Post("/:id/approve", RequireRole(entity.RoleNurse, entity.RoleAdmin), admissionHandler.Approve)
	admissions.Post("/:id/discharge", RequireRole(entity.RoleNurse, entity.RoleDoctor, entity.RoleAdmin), admissionHandler.Discharge)
	admissions.Get("/", admissionHandler.List)
	admissions.Get("/:id", admissionHandler.GetByID)
	admissions.Get("/:id/summary.pdf", admissionHandler.SummaryPDF)

	// Pacientes y visitas (protegido)
	patients := protected.Group("/patients")
	patientHandler := NewPatientHandler(deps.PatientUC)
	patients.Post("/", patientHandler.Create)
	patients.Get("/", patientHandler.List)
	patients.Get("/:id", patientHandler.GetByID)
	protected.Post("/visits", patientHandler.CreateVisit)

	// Pabellones, camas e insumos por pabellón (protegido; crear es de admin)
	wards := protected.Group("/wards")
	wardHandler := NewWardHandler(deps.WardUC)
	wards.Post("/", RequireRole(entity.RoleAdmin), wardHandler.Create)
	wards.Get("/", wardHandler.List)
	wards.Get("/:id/beds", wardHandler.ListBeds)
	wards.Get("/:id/supplies", wardHandler.ListSupplies)

	// Farmacia (protegido; aprobar traslados es de farmacéutico)
	pharmacyHandler := NewPharmacyHandler(deps.CreateSupplyReq, deps.ApproveSupplyReq, deps.PharmacyQueries)
	supplyRequests := protected.Group("/supply-requests")
	supplyRequests.Post("/", RequireRole(entity.RoleNurse, entity.RoleAdmin), pharmacyHandler.CreateRequest)
	supplyRequests.Get("/", pharmacyHandler.ListRequests)
	protected.Post("/pharmacist/approve-request",
		RequireRole(entity.RolePharmacist, entity.RoleAdmin), pharmacyHandler.ApproveRequest)
	pharmacyGroup := protected.Group("/pharmacy")
	pharmacyGroup.Get("/stock", pharmacyHandler.ListStock)
	pharmacyGroup.Get("/stock/low", pharmacyHandler.ListLowStock)
	pharmacyGroup.Get("/transactions", pharmacyHandler.ListTransactions)

	// Laboratorio (protegido; resultados los registra el laboratorio)
	labOrders := protected.Group("/lab-orders")
	labHandler := NewLabHandler(deps.LabUC)
	labOrders.Post("/", RequireRole(entity.RoleDoctor, entity.RoleAdmin), labHandler.Create)
	labOrders.Get("/", labHandler.ListByPatient)
	labOrders.Post("/tests/:testId/result", RequireRole(entity.RoleLab, entity.RoleAdmin), labHandler.SetResult)

	// Notificaciones (protegido)
	notifications := protected.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.Notifications)
	notifications.Get("/", notificationHandler.List)
	notifications.Post("/:id/read", notificationHandler.MarkRead)

	// Departamentos (protegido)
	departments := protected.Group("/departments")
	departmentHandler := NewDepartmentHandler(deps.DepartmentUC)
	departments.Post("/", RequireRole(entity.RoleAdmin), departmentHandler.Create)
	departments.Get("/", departmentHandler.List)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", dashboardHandler.Summary)

	// Asistencia IA (protegido)
	aiGroup := protected.Group("/ai")
	aiHandler := NewAIHandler(deps.AIUC)
	aiGroup.Post("/diagnosis-draft", RequireRole(entity.RoleDoctor, entity.RoleAdmin), aiHandler.DiagnosisDraft)
	aiGroup.Post("/structure-transcript", RequireRole(entity.RoleDoctor, entity.RoleAdmin), aiHandler.StructureTranscript)
}
