package pharmacy_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Hospitalario-api/internal/application/dto"
	"github.com/jhoicas/Hospitalario-api/internal/application/pharmacy"
	"github.com/jhoicas/Hospitalario-api/internal/domain"
	"github.com/jhoicas/Hospitalario-api/internal/domain/entity"
)

func (env *pharmacyEnv) createUC() *pharmacy.CreateSupplyRequestUseCase {
	return pharmacy.NewCreateSupplyRequestUseCase(env.requests, env.supplies, env.stock, env.log)
}

func (env *pharmacyEnv) seedWardSupply(t *testing.T, id, wardID, name string) {
	t.Helper()
	require.NoError(t, env.supplies.Create(&entity.WardSupply{
		ID:           id,
		WardID:       wardID,
		SupplyName:   name,
		CurrentStock: decimal.NewFromInt(2),
		Unit:         "unidad",
	}))
}

func createInput() dto.CreateSupplyRequestRequest {
	return dto.CreateSupplyRequestRequest{
		WardID:   "ward-1",
		SupplyID: "supply-1",
		Quantity: decimal.NewFromInt(20),
		Notes:    "reposición semanal",
	}
}

// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_ResuelveVinculoPorNombreNormalizado(t *testing.T) {
	env := newPharmacyEnv(t)
	env.seedWardSupply(t, "supply-1", "ward-1", "Suero Fisiológico")
	// En farmacia el mismo insumo está escrito sin tildes.
	require.NoError(t, env.stock.Create(&entity.PharmacyStock{
		ID:           "pharm-1",
		SupplyName:   "SUERO FISIOLOGICO",
		CurrentStock: decimal.NewFromInt(100),
	}))

	req, err := env.createUC().Create(context.Background(), "nurse-1", createInput())
	require.NoError(t, err)

	assert.Equal(t, entity.SupplyRequestStatusPending, req.Status)
	assert.Equal(t, "nurse-1", req.RequestedBy)
	assert.Equal(t, "Suero Fisiológico", req.SupplyName)
	require.NotNil(t, req.PharmacySupplyID, "el pliegue de nombre debe resolver el vínculo")
	assert.Equal(t, "pharm-1", *req.PharmacySupplyID)

	stored, _ := env.requests.GetByID(req.ID)
	require.NotNil(t, stored)
}

func TestCreate_SinCoincidenciaElVinculoQuedaNulo(t *testing.T) {
	env := newPharmacyEnv(t)
	env.seedWardSupply(t, "supply-1", "ward-1", "Gasas Estériles")

	req, err := env.createUC().Create(context.Background(), "nurse-1", createInput())
	require.NoError(t, err)
	assert.Nil(t, req.PharmacySupplyID, "el vínculo es best-effort, no bloquea")
}

func TestCreate_FalloDeBusquedaNoBloquea(t *testing.T) {
	env := newPharmacyEnv(t)
	env.seedWardSupply(t, "supply-1", "ward-1", "Gasas Estériles")
	env.stock.findErr = errors.New("farmacia fuera de línea")

	req, err := env.createUC().Create(context.Background(), "nurse-1", createInput())
	require.NoError(t, err)
	assert.Nil(t, req.PharmacySupplyID)
}

func TestCreate_InsumoDeOtroPabellon(t *testing.T) {
	env := newPharmacyEnv(t)
	env.seedWardSupply(t, "supply-1", "ward-otro", "Gasas Estériles")

	_, err := env.createUC().Create(context.Background(), "nurse-1", createInput())
	require.ErrorIs(t, err, domain.ErrInvalidInput, "el insumo debe pertenecer al pabellón que pide")
}

func TestCreate_InsumoInexistente(t *testing.T) {
	env := newPharmacyEnv(t)

	_, err := env.createUC().Create(context.Background(), "nurse-1", createInput())
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_CantidadNoPositiva(t *testing.T) {
	env := newPharmacyEnv(t)
	env.seedWardSupply(t, "supply-1", "ward-1", "Gasas Estériles")

	in := createInput()
	in.Quantity = decimal.Zero
	_, err := env.createUC().Create(context.Background(), "nurse-1", in)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}
