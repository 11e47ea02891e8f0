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
	"github.com/jonathanEDR/gestorappb/internal/model"
)

func devolucionRequest(ventaID string, items ...dto.DevolucionItemRequest) dto.CrearDevolucionRequest {
	return dto.CrearDevolucionRequest{VentaID: ventaID, Items: items}
}

func itemDevolucion(productoID uuid.UUID, cantidad int) dto.DevolucionItemRequest {
	return dto.DevolucionItemRequest{
		ProductoID: productoID.String(),
		Cantidad:   cantidad,
		Motivo:     "producto dañado",
	}
}

func TestCrearDevolucionActualizaVentaYStock(t *testing.T) {
	e := newEntorno()
	venta, p := registrarVentaBase(t, e)

	out, err := e.devoluciones.Crear(context.Background(), testUserID,
		devolucionRequest(venta.ID, itemDevolucion(p.ID, 1)))
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Pan frances", out[0].Producto)
	assert.True(t, out[0].MontoDevolucion.Equal(decimal.NewFromInt(25)))

	v := e.venta(venta.ID)
	assert.True(t, v.MontoTotal.Equal(decimal.NewFromInt(75)))
	assert.Equal(t, 1, v.CantidadDevuelta)
	assert.Equal(t, 3, e.producto(p.ID).CantidadVendida)
	assert.Equal(t, 7, e.producto(p.ID).CantidadRestante)
}

func TestDevolucionExcedeVendida(t *testing.T) {
	e := newEntorno()
	venta, p := registrarVentaBase(t, e)

	_, err := e.devoluciones.Crear(context.Background(), testUserID,
		devolucionRequest(venta.ID, itemDevolucion(p.ID, 5)))
	require.Error(t, err)
	assert.Equal(t, ledger.KindReturnExceedsSold, ledger.KindOf(err))
	assert.Equal(t, 4, e.producto(p.ID).CantidadVendida)
}

func TestDevolucionesAcumuladasExcedenVendida(t *testing.T) {
	e := newEntorno()
	venta, p := registrarVentaBase(t, e)

	_, err := e.devoluciones.Crear(context.Background(), testUserID,
		devolucionRequest(venta.ID, itemDevolucion(p.ID, 2)))
	require.NoError(t, err)

	// Only 2 of the 4 sold units remain returnable.
	_, err = e.devoluciones.Crear(context.Background(), testUserID,
		devolucionRequest(venta.ID, itemDevolucion(p.ID, 3)))
	require.Error(t, err)
	assert.Equal(t, ledger.KindReturnExceedsSold, ledger.KindOf(err))
	assert.Equal(t, 2, e.venta(venta.ID).CantidadDevuelta)
}

func TestDevolucionExcedeDeudaPendiente(t *testing.T) {
	e := newEntorno()
	venta, p := registrarVentaBase(t, e)

	_, err := e.cobros.Crear(context.Background(), testUserID, cobroRequest(venta.ID, 90))
	require.NoError(t, err)

	// Returning one unit would credit 25 against a debt of 10, leaving the
	// venta reporting more paid than billed. The whole devolucion is rejected
	// and nothing moves.
	_, err = e.devoluciones.Crear(context.Background(), testUserID,
		devolucionRequest(venta.ID, itemDevolucion(p.ID, 1)))
	require.Error(t, err)
	assert.Equal(t, ledger.KindReturnExceedsDebt, ledger.KindOf(err))

	v := e.venta(venta.ID)
	assert.True(t, v.MontoTotal.Equal(decimal.NewFromInt(100)))
	assert.True(t, v.CantidadPagada.Equal(decimal.NewFromInt(90)))
	assert.True(t, v.CantidadPagada.LessThanOrEqual(v.MontoTotal))
	assert.Equal(t, 0, v.CantidadDevuelta)
	assert.Equal(t, 4, e.producto(p.ID).CantidadVendida)
	assert.Empty(t, e.devolucionRepo.devoluciones)
}

func TestDevolucionProductoAjenoALaVenta(t *testing.T) {
	e := newEntorno()
	venta, _ := registrarVentaBase(t, e)
	otro := e.seedProducto("Torta", 80, 5)

	_, err := e.devoluciones.Crear(context.Background(), testUserID,
		devolucionRequest(venta.ID, itemDevolucion(otro.ID, 1)))
	require.Error(t, err)
	assert.Equal(t, ledger.KindValidation, ledger.KindOf(err))
}

func TestDevolucionMontoPersonalizado(t *testing.T) {
	e := newEntorno()
	venta, p := registrarVentaBase(t, e)

	monto := decimal.NewFromInt(10)
	item := itemDevolucion(p.ID, 1)
	item.Monto = &monto

	out, err := e.devoluciones.Crear(context.Background(), testUserID,
		devolucionRequest(venta.ID, item))
	require.NoError(t, err)
	assert.True(t, out[0].MontoDevolucion.Equal(monto))
	assert.True(t, e.venta(venta.ID).MontoTotal.Equal(decimal.NewFromInt(90)))
}

func TestDevolucionVentaInexistente(t *testing.T) {
	e := newEntorno()
	p := e.seedProducto("Pan frances", 25, 10)

	_, err := e.devoluciones.Crear(context.Background(), testUserID,
		devolucionRequest(uuid.NewString(), itemDevolucion(p.ID, 1)))
	require.Error(t, err)
	assert.Equal(t, ledger.KindNotFound, ledger.KindOf(err))
}

func TestEliminarDevolucionRestauraContadores(t *testing.T) {
	e := newEntorno()
	venta, p := registrarVentaBase(t, e)

	out, err := e.devoluciones.Crear(context.Background(), testUserID,
		devolucionRequest(venta.ID, itemDevolucion(p.ID, 1)))
	require.NoError(t, err)

	require.NoError(t, e.devoluciones.Eliminar(context.Background(), testUserID, uuid.MustParse(out[0].ID)))

	v := e.venta(venta.ID)
	assert.True(t, v.MontoTotal.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, 0, v.CantidadDevuelta)
	assert.Equal(t, model.EstadoPendiente, v.EstadoPago)
	assert.Equal(t, 4, e.producto(p.ID).CantidadVendida)
	assert.Empty(t, e.devolucionRepo.devoluciones)
}

func TestEliminarDevolucionSinStockParaRevender(t *testing.T) {
	e := newEntorno()
	colab := e.seedColaborador("Maria")
	p := e.seedProducto("Pan frances", 25, 4)

	venta, err := e.ventas.Registrar(context.Background(), testUserID, ventaRequest(colab.ID, linea(p.ID, 4)))
	require.NoError(t, err)

	out, err := e.devoluciones.Crear(context.Background(), testUserID,
		devolucionRequest(venta.ID, itemDevolucion(p.ID, 2)))
	require.NoError(t, err)

	// The freed units get sold to someone else before the reversal.
	_, err = e.ventas.Registrar(context.Background(), testUserID, ventaRequest(colab.ID, linea(p.ID, 2)))
	require.NoError(t, err)

	err = e.devoluciones.Eliminar(context.Background(), testUserID, uuid.MustParse(out[0].ID))
	require.Error(t, err)
	assert.Equal(t, ledger.KindInsufficientStock, ledger.KindOf(err))
	assert.Len(t, e.devolucionRepo.devoluciones, 1)
}
