package pharmacy_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Hospitalario-api/internal/application/dto"
	"github.com/jhoicas/Hospitalario-api/internal/application/pharmacy"
	"github.com/jhoicas/Hospitalario-api/internal/domain"
	"github.com/jhoicas/Hospitalario-api/internal/domain/entity"
	"github.com/jhoicas/Hospitalario-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Entorno de prueba
// ──────────────────────────────────────────────────────────────────────────────

type pharmacyEnv struct {
	requests *memRequests
	stock    *memPharmacyStock
	supplies *memWardSupplies
	audit    *memAudit
	tx       *memTxRunner
	notifier *recordingNotifier
	log      *logger.Logger
}

func newPharmacyEnv(t *testing.T) *pharmacyEnv {
	t.Helper()
	env := &pharmacyEnv{
		requests: newMemRequests(),
		stock:    newMemPharmacyStock(),
		supplies: newMemWardSupplies(),
		audit:    &memAudit{},
		notifier: &recordingNotifier{},
		log:      logger.New(logger.Config{Env: "production", Level: "error"}),
	}
	env.tx = &memTxRunner{
		requests: env.requests,
		stock:    env.stock,
		supplies: env.supplies,
		audit:    env.audit,
	}
	return env
}

func (env *pharmacyEnv) approveUC() *pharmacy.ApproveSupplyRequestUseCase {
	return pharmacy.NewApproveSupplyRequestUseCase(
		env.tx, env.requests, env.supplies, env.stock, env.notifier,
	)
}

// seedTransferFixture deja una solicitud pending vinculada a farmacia:
// 100 unidades en farmacia, 5 en el pabellón.
func (env *pharmacyEnv) seedTransferFixture(t *testing.T) {
	t.Helper()
	require.NoError(t, env.stock.Create(&entity.PharmacyStock{
		ID:                "pharm-1",
		SupplyName:        "Suero Fisiológico",
		Category:          "medication",
		CurrentStock:      decimal.NewFromInt(100),
		MinimumStockLevel: decimal.NewFromInt(20),
		Unit:              "ml",
	}))
	require.NoError(t, env.supplies.Create(&entity.WardSupply{
		ID:           "supply-1",
		WardID:       "ward-1",
		SupplyName:   "Suero Fisiológico",
		CurrentStock: decimal.NewFromInt(5),
		Unit:         "ml",
	}))
	pharmID := "pharm-1"
	require.NoError(t, env.requests.Create(&entity.SupplyRequest{
		ID:                "req-1",
		WardID:            "ward-1",
		SupplyID:          "supply-1",
		PharmacySupplyID:  &pharmID,
		SupplyName:        "Suero Fisiológico",
		QuantityRequested: decimal.NewFromInt(30),
		Status:            entity.SupplyRequestStatusPending,
		RequestedBy:       "nurse-1",
	}))
}

func approveInput(qty int64) dto.ApproveSupplyRequestRequest {
	return dto.ApproveSupplyRequestRequest{
		RequestID:        "req-1",
		ApprovedQuantity: decimal.NewFromInt(qty),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Traslado feliz: la cantidad se conserva y la auditoría cuadra
// ──────────────────────────────────────────────────────────────────────────────

func TestApprove_TrasladoConservaLaCantidad(t *testing.T) {
	env := newPharmacyEnv(t)
	env.seedTransferFixture(t)

	details, err := env.approveUC().Approve(context.Background(), "pharmacist-1", approveInput(30))
	require.NoError(t, err)

	assert.Equal(t, "Suero Fisiológico", details.SupplyName)
	assert.True(t, details.ApprovedQuantity.Equal(decimal.NewFromInt(30)))
	assert.True(t, details.PharmacyStockRemaining.Equal(decimal.NewFromInt(70)))
	assert.Equal(t, "ward-1", details.WardID)

	// Lo que sale de farmacia entra al pabellón, ni más ni menos.
	stock, _ := env.stock.GetByID("pharm-1")
	supply, _ := env.supplies.GetByID("supply-1")
	assert.True(t, stock.CurrentStock.Equal(decimal.NewFromInt(70)))
	assert.True(t, supply.CurrentStock.Equal(decimal.NewFromInt(35)))

	req, _ := env.requests.GetByID("req-1")
	assert.Equal(t, entity.SupplyRequestStatusApproved, req.Status)
	require.NotNil(t, req.DeliveredQuantity)
	assert.True(t, req.DeliveredQuantity.Equal(decimal.NewFromInt(30)))
	require.NotNil(t, req.ApprovedBy)
	assert.Equal(t, "pharmacist-1", *req.ApprovedBy)

	require.Len(t, env.audit.rows, 1)
	audit := env.audit.rows[0]
	assert.Equal(t, entity.TransactionTypeTransferToWard, audit.TransactionType)
	assert.True(t, audit.PreviousStock.Equal(decimal.NewFromInt(100)))
	assert.True(t, audit.NewStock.Equal(decimal.NewFromInt(70)))
	assert.Equal(t, "pharmacist-1", audit.PerformedBy)
	require.NotNil(t, audit.SupplyRequestID)
	assert.Equal(t, "req-1", *audit.SupplyRequestID)

	require.Len(t, env.notifier.sent, 1)
	assert.Equal(t, "nurse-1", env.notifier.sent[0].UserID)
	assert.Equal(t, entity.NotificationTypeSupplyDelivery, env.notifier.sent[0].Type)
}

// El farmacéutico puede entregar una cantidad distinta a la solicitada.
func TestApprove_CantidadParcial(t *testing.T) {
	env := newPharmacyEnv(t)
	env.seedTransferFixture(t)

	details, err := env.approveUC().Approve(context.Background(), "pharmacist-1", approveInput(10))
	require.NoError(t, err)
	assert.True(t, details.PharmacyStockRemaining.Equal(decimal.NewFromInt(90)))

	req, _ := env.requests.GetByID("req-1")
	assert.True(t, req.DeliveredQuantity.Equal(decimal.NewFromInt(10)))
	assert.True(t, req.QuantityRequested.Equal(decimal.NewFromInt(30)), "lo pedido no se reescribe")
}

// ──────────────────────────────────────────────────────────────────────────────
// Fallas: nada queda a medias
// ──────────────────────────────────────────────────────────────────────────────

func TestApprove_StockInsuficienteNoMueveNada(t *testing.T) {
	env := newPharmacyEnv(t)
	env.seedTransferFixture(t)

	_, err := env.approveUC().Approve(context.Background(), "pharmacist-1", approveInput(500))
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "disponibles 100")

	stock, _ := env.stock.GetByID("pharm-1")
	supply, _ := env.supplies.GetByID("supply-1")
	req, _ := env.requests.GetByID("req-1")
	assert.True(t, stock.CurrentStock.Equal(decimal.NewFromInt(100)), "farmacia intacta")
	assert.True(t, supply.CurrentStock.Equal(decimal.NewFromInt(5)), "pabellón intacto")
	assert.Equal(t, entity.SupplyRequestStatusPending, req.Status, "la solicitud sigue pending")
	assert.Empty(t, env.audit.rows, "sin movimiento no hay auditoría")
	assert.Empty(t, env.notifier.sent)
}

func TestApprove_SolicitudYaProcesada(t *testing.T) {
	env := newPharmacyEnv(t)
	env.seedTransferFixture(t)

	_, err := env.approveUC().Approve(context.Background(), "pharmacist-1", approveInput(30))
	require.NoError(t, err)

	// Re-aprobar jamás vuelve a mover stock.
	_, err = env.approveUC().Approve(context.Background(), "pharmacist-2", approveInput(30))
	require.ErrorIs(t, err, domain.ErrAlreadyProcessed)

	stock, _ := env.stock.GetByID("pharm-1")
	assert.True(t, stock.CurrentStock.Equal(decimal.NewFromInt(70)), "solo el primer traslado movió stock")
	assert.Len(t, env.audit.rows, 1)
}

func TestApprove_SinVinculoAFarmacia(t *testing.T) {
	env := newPharmacyEnv(t)
	env.seedTransferFixture(t)
	env.requests.items["req-1"].PharmacySupplyID = nil

	_, err := env.approveUC().Approve(context.Background(), "pharmacist-1", approveInput(10))
	require.ErrorIs(t, err, domain.ErrInsufficientStock, "sin vínculo el stock efectivo es 0")
	assert.Contains(t, err.Error(), "disponibles 0")
}

func TestApprove_SolicitudInexistente(t *testing.T) {
	env := newPharmacyEnv(t)

	_, err := env.approveUC().Approve(context.Background(), "pharmacist-1", approveInput(10))
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestApprove_CantidadNoPositiva(t *testing.T) {
	env := newPharmacyEnv(t)
	env.seedTransferFixture(t)

	in := approveInput(0)
	_, err := env.approveUC().Approve(context.Background(), "pharmacist-1", in)
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	in.ApprovedQuantity = decimal.NewFromInt(-5)
	_, err = env.approveUC().Approve(context.Background(), "pharmacist-1", in)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}
