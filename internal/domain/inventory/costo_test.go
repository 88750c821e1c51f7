package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ventaplus/ventaplus-api/internal/domain/inventory"
)

func TestCostoPromedioPonderado(t *testing.T) {
	casos := []struct {
		nombre       string
		stockActual  string
		costoActual  string
		cantEntrada  string
		costoEntrada string
		esperado     string
	}{
		{"mezcla de lotes", "10", "5.00", "10", "7.00", "6"},
		{"stock cero toma el costo de entrada", "0", "0", "50", "3.40", "3.4"},
		{"entrada pequeña mueve poco el promedio", "100", "2.00", "1", "3.01", "2.01"},
		{"mismo costo no cambia el promedio", "30", "4.50", "70", "4.50", "4.5"},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			got := inventory.CostoPromedioPonderado(
				decimal.RequireFromString(c.stockActual),
				decimal.RequireFromString(c.costoActual),
				decimal.RequireFromString(c.cantEntrada),
				decimal.RequireFromString(c.costoEntrada),
			)
			assert.True(t, got.Equal(decimal.RequireFromString(c.esperado)),
				"esperado %s, fue %s", c.esperado, got)
		})
	}
}

func TestCostoPromedioPonderado_DenominadorCero(t *testing.T) {
	got := inventory.CostoPromedioPonderado(
		decimal.Zero, decimal.RequireFromString("5.00"),
		decimal.Zero, decimal.RequireFromString("7.00"),
	)
	assert.True(t, got.IsZero(), "sin unidades el promedio es 0, no división por cero")
}
