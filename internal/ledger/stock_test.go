package ledger

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathanEDR/gestorappb/internal/model"
)

func nuevoProducto(stock int) *model.Producto {
	return &model.Producto{
		ID:               uuid.New(),
		Nombre:           "Pan frances",
		Precio:           decimal.NewFromInt(25),
		Cantidad:         stock,
		CantidadRestante: stock,
	}
}

func TestCheckDisponible(t *testing.T) {
	p := nuevoProducto(10)

	assert.NoError(t, CheckDisponible(p, 1))
	assert.NoError(t, CheckDisponible(p, 10))

	err := CheckDisponible(p, 11)
	require.Error(t, err)
	assert.Equal(t, KindInsufficientStock, KindOf(err))

	err = CheckDisponible(p, 0)
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))
}

func TestIncreaseSoldActualizaContadores(t *testing.T) {
	p := nuevoProducto(10)

	require.NoError(t, IncreaseSold(p, 4))
	assert.Equal(t, 4, p.CantidadVendida)
	assert.Equal(t, 6, p.CantidadRestante)

	// Selling the rest empties the remaining stock.
	require.NoError(t, IncreaseSold(p, 6))
	assert.Equal(t, 10, p.CantidadVendida)
	assert.Equal(t, 0, p.CantidadRestante)

	err := IncreaseSold(p, 1)
	require.Error(t, err)
	assert.Equal(t, KindInsufficientStock, KindOf(err))
	assert.Equal(t, 10, p.CantidadVendida)
}

func TestDecreaseSoldRestauraStock(t *testing.T) {
	p := nuevoProducto(10)
	require.NoError(t, IncreaseSold(p, 7))

	DecreaseSold(p, 3)
	assert.Equal(t, 4, p.CantidadVendida)
	assert.Equal(t, 6, p.CantidadRestante)
}

func TestDecreaseSoldClampeaEnCero(t *testing.T) {
	p := nuevoProducto(10)
	require.NoError(t, IncreaseSold(p, 2))

	DecreaseSold(p, 5)
	assert.Equal(t, 0, p.CantidadVendida)
	assert.Equal(t, 10, p.CantidadRestante)
}
