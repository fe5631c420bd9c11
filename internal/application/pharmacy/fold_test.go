package pharmacy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Hospitalario-api/internal/application/pharmacy"
)

func TestFoldSupplyName_TildesYMayusculas(t *testing.T) {
	casos := []struct {
		nombre   string
		esperado string
	}{
		{"Suero Fisiológico", "suero fisiologico"},
		{"suero fisiologico", "suero fisiologico"},
		{"PARACETAMOL 500mg", "paracetamol 500mg"},
		{"  Gasas   Estériles  ", "gasas esteriles"},
		{"Ibuprofeno\t400mg", "ibuprofeno 400mg"},
		{"", ""},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, pharmacy.FoldSupplyName(c.nombre), "nombre %q", c.nombre)
	}
}

func TestFoldSupplyName_VariantesResuelvenIgual(t *testing.T) {
	// La propiedad que sostiene el vínculo solicitud -> farmacia: las formas
	// con y sin tildes del mismo insumo pliegan al mismo valor.
	assert.Equal(t,
		pharmacy.FoldSupplyName("Suero Fisiológico"),
		pharmacy.FoldSupplyName("SUERO FISIOLOGICO"),
	)
	assert.Equal(t,
		pharmacy.FoldSupplyName("Solución Salina"),
		pharmacy.FoldSupplyName("solucion   salina"),
	)
}
