package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Hospitalario-api/internal/application/admission"
	"github.com/jhoicas/Hospitalario-api/internal/application/auth"
	"github.com/jhoicas/Hospitalario-api/internal/application/notify"
	"github.com/jhoicas/Hospitalario-api/internal/application/pharmacy"
	"github.com/jhoicas/Hospitalario-api/internal/application/usecase"
	infraai "github.com/jhoicas/Hospitalario-api/internal/infrastructure/ai"
	infrapdf "github.com/jhoicas/Hospitalario-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Hospitalario-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Hospitalario-api/internal/interfaces/http"
	"github.com/jhoicas/Hospitalario-api/pkg/config"
	"github.com/jhoicas/Hospitalario-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios sobre el pool; el TxRunner crea variantes atadas a tx.
	userRepo := postgres.NewUserRepository(pool)
	patientRepo := postgres.NewPatientRepository(pool)
	visitRepo := postgres.NewVisitRepository(pool)
	wardRepo := postgres.NewWardRepository(pool)
	bedRepo := postgres.NewBedRepository(pool)
	admissionRepo := postgres.NewAdmissionRepository(pool)
	stockRepo := postgres.NewPharmacyStockRepository(pool)
	wardSupplyRepo := postgres.NewWardSupplyRepository(pool)
	supplyRequestRepo := postgres.NewSupplyRequestRepository(pool)
	pharmacyTxRepo := postgres.NewPharmacyTransactionRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	labOrderRepo := postgres.NewLabOrderRepository(pool)
	departmentRepo := postgres.NewDepartmentRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	notifications := notify.NewService(notificationRepo, log)

	requestAdmissionUC := admission.NewRequestAdmissionUseCase(
		patientRepo, userRepo, visitRepo, wardRepo, admissionRepo, notifications, log,
	)
	approveAdmissionUC := admission.NewApproveAdmissionUseCase(
		txRunner, admissionRepo, wardRepo, bedRepo, notifications, log,
	)
	dischargeUC := admission.NewDischargeAdmissionUseCase(txRunner, admissionRepo, notifications)
	admissionQueries := admission.NewQueryUseCase(admissionRepo)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)
	summaryPDFUC := admission.NewSummaryPDFUseCase(
		admissionRepo, patientRepo, wardRepo, bedRepo, pdfGenerator,
	)

	createSupplyReqUC := pharmacy.NewCreateSupplyRequestUseCase(
		supplyRequestRepo, wardSupplyRepo, stockRepo, log,
	)
	approveSupplyReqUC := pharmacy.NewApproveSupplyRequestUseCase(
		txRunner, supplyRequestRepo, wardSupplyRepo, stockRepo, notifications,
	)
	pharmacyQueries := usecase.NewPharmacyQueryUseCase(
		stockRepo, supplyRequestRepo, pharmacyTxRepo,
	)

	patientUC := usecase.NewPatientUseCase(patientRepo, visitRepo, userRepo)
	wardUC := usecase.NewWardUseCase(wardRepo, bedRepo, wardSupplyRepo)
	labUC := usecase.NewLabUseCase(labOrderRepo, patientRepo)
	dashboardUC := usecase.NewDashboardUseCase(dashboardRepo)
	departmentUC := usecase.NewDepartmentUseCase(departmentRepo)

	anthropicSvc := infraai.NewAnthropicService(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
	aiUC := usecase.NewAIUseCase(anthropicSvc, time.Duration(cfg.AI.RequestTimeout)*time.Second)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		RequestAdmission: requestAdmissionUC,
		ApproveAdmission: approveAdmissionUC,
		DischargeUC:      dischargeUC,
		AdmissionQueries: admissionQueries,
		SummaryPDF:       summaryPDFUC,
		CreateSupplyReq:  createSupplyReqUC,
		ApproveSupplyReq: approveSupplyReqUC,
		PharmacyQueries:  pharmacyQueries,
		PatientUC:        patientUC,
		WardUC:           wardUC,
		LabUC:            labUC,
		DashboardUC:      dashboardUC,
		DepartmentUC:     departmentUC,
		AIUC:             aiUC,
		Notifications:    notifications,
		JWTSecret:        cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
