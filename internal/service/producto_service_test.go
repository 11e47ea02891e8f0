package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathanEDR/gestorappb/internal/dto"
	"github.com/jonathanEDR/gestorappb/internal/ledger"
)

func TestCrearProducto(t *testing.T) {
	e := newEntorno()

	resp, err := e.productos.Crear(context.Background(), testUserID, dto.CrearProductoRequest{
		Nombre:   "Pan frances",
		Precio:   decimal.NewFromInt(25),
		Cantidad: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, 10, resp.Cantidad)
	assert.Equal(t, 0, resp.CantidadVendida)
	assert.Equal(t, 10, resp.CantidadRestante)
}

func TestCrearProductoNombreDuplicado(t *testing.T) {
	e := newEntorno()
	e.seedProducto("Pan frances", 25, 10)

	_, err := e.productos.Crear(context.Background(), testUserID, dto.CrearProductoRequest{
		Nombre:   "Pan frances",
		Precio:   decimal.NewFromInt(30),
		Cantidad: 5,
	})
	require.Error(t, err)
	assert.Equal(t, ledger.KindValidation, ledger.KindOf(err))
}

func TestActualizarProductoRestock(t *testing.T) {
	e := newEntorno()
	colab := e.seedColaborador("Maria")
	p := e.seedProducto("Pan frances", 25, 10)

	_, err := e.ventas.Registrar(context.Background(), testUserID, ventaRequest(colab.ID, linea(p.ID, 4)))
	require.NoError(t, err)

	nueva := 20
	resp, err := e.productos.Actualizar(context.Background(), testUserID, p.ID, dto.ActualizarProductoRequest{
		Cantidad: &nueva,
	})
	require.NoError(t, err)
	assert.Equal(t, 20, resp.Cantidad)
	assert.Equal(t, 4, resp.CantidadVendida)
	assert.Equal(t, 16, resp.CantidadRestante)
}

func TestActualizarProductoCantidadMenorQueVendida(t *testing.T) {
	e := newEntorno()
	colab := e.seedColaborador("Maria")
	p := e.seedProducto("Pan frances", 25, 10)

	_, err := e.ventas.Registrar(context.Background(), testUserID, ventaRequest(colab.ID, linea(p.ID, 4)))
	require.NoError(t, err)

	nueva := 3
	_, err = e.productos.Actualizar(context.Background(), testUserID, p.ID, dto.ActualizarProductoRequest{
		Cantidad: &nueva,
	})
	require.Error(t, err)
	assert.Equal(t, ledger.KindValidation, ledger.KindOf(err))
	assert.Equal(t, 10, e.producto(p.ID).Cantidad)
}

func TestActualizarProductoRenombradoDuplicado(t *testing.T) {
	e := newEntorno()
	e.seedProducto("Pan frances", 25, 10)
	torta := e.seedProducto("Torta", 80, 5)

	nombre := "Pan frances"
	_, err := e.productos.Actualizar(context.Background(), testUserID, torta.ID, dto.ActualizarProductoRequest{
		Nombre: &nombre,
	})
	require.Error(t, err)
	assert.Equal(t, ledger.KindValidation, ledger.KindOf(err))
}

func TestActualizarProductoPrecioNegativo(t *testing.T) {
	e := newEntorno()
	p := e.seedProducto("Pan frances", 25, 10)

	precio := decimal.NewFromInt(-1)
	_, err := e.productos.Actualizar(context.Background(), testUserID, p.ID, dto.ActualizarProductoRequest{
		Precio: &precio,
	})
	require.Error(t, err)
	assert.Equal(t, ledger.KindValidation, ledger.KindOf(err))
}

func TestObtenerProductoDeOtroUsuario(t *testing.T) {
	e := newEntorno()
	p := e.seedProducto("Pan frances", 25, 10)

	_, err := e.productos.Obtener(context.Background(), "otro-usuario", p.ID)
	require.Error(t, err)
	assert.Equal(t, ledger.KindNotFound, ledger.KindOf(err))
}

func TestEliminarProductoInexistente(t *testing.T) {
	e := newEntorno()
	err := e.productos.Eliminar(context.Background(), testUserID, uuid.New())
	require.Error(t, err)
	assert.Equal(t, ledger.KindNotFound, ledger.KindOf(err))
}
