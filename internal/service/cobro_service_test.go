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

// registrarVentaBase seeds a collaborator and a product and records a venta
// of 4 units at 25 (total 100).
func registrarVentaBase(t *testing.T, e *entorno) (*dto.VentaResponse, *model.Producto) {
	t.Helper()
	colab := e.seedColaborador("Maria")
	p := e.seedProducto("Pan frances", 25, 10)
	resp, err := e.ventas.Registrar(context.Background(), testUserID, ventaRequest(colab.ID, linea(p.ID, 4)))
	require.NoError(t, err)
	return resp, p
}

func cobroRequest(ventaID string, monto int64) dto.CrearCobroRequest {
	return dto.CrearCobroRequest{VentaID: ventaID, MontoPagado: decimal.NewFromInt(monto)}
}

func TestCrearCobroParcial(t *testing.T) {
	e := newEntorno()
	venta, _ := registrarVentaBase(t, e)

	cobro, err := e.cobros.Crear(context.Background(), testUserID, cobroRequest(venta.ID, 60))
	require.NoError(t, err)
	assert.Equal(t, model.CobroParcial, cobro.EstadoPago)

	v := e.venta(venta.ID)
	assert.Equal(t, model.EstadoParcial, v.EstadoPago)
	assert.True(t, v.CantidadPagada.Equal(decimal.NewFromInt(60)))
}

func TestCrearCobroTotal(t *testing.T) {
	e := newEntorno()
	venta, _ := registrarVentaBase(t, e)

	cobro, err := e.cobros.Crear(context.Background(), testUserID, cobroRequest(venta.ID, 100))
	require.NoError(t, err)
	assert.Equal(t, model.CobroTotal, cobro.EstadoPago)
	assert.Equal(t, model.EstadoPagado, e.venta(venta.ID).EstadoPago)
}

func TestCobroExcedePendiente(t *testing.T) {
	e := newEntorno()
	venta, _ := registrarVentaBase(t, e)

	_, err := e.cobros.Crear(context.Background(), testUserID, cobroRequest(venta.ID, 60))
	require.NoError(t, err)

	_, err = e.cobros.Crear(context.Background(), testUserID, cobroRequest(venta.ID, 50))
	require.Error(t, err)
	assert.Equal(t, ledger.KindPaymentExceedsDebt, ledger.KindOf(err))

	// The failed cobro left the venta untouched.
	assert.True(t, e.venta(venta.ID).CantidadPagada.Equal(decimal.NewFromInt(60)))
	assert.Len(t, e.cobroRepo.cobros, 1)
}

func TestCobroSobreVentaPagada(t *testing.T) {
	e := newEntorno()
	venta, _ := registrarVentaBase(t, e)

	_, err := e.cobros.Crear(context.Background(), testUserID, cobroRequest(venta.ID, 100))
	require.NoError(t, err)

	_, err = e.cobros.Crear(context.Background(), testUserID, cobroRequest(venta.ID, 1))
	require.Error(t, err)
	assert.Equal(t, ledger.KindPaymentExceedsDebt, ledger.KindOf(err))
}

func TestCobroMontoInvalido(t *testing.T) {
	e := newEntorno()
	venta, _ := registrarVentaBase(t, e)

	_, err := e.cobros.Crear(context.Background(), testUserID, cobroRequest(venta.ID, 0))
	require.Error(t, err)
	assert.Equal(t, ledger.KindValidation, ledger.KindOf(err))
}

func TestCobroDesgloseNoCoincide(t *testing.T) {
	e := newEntorno()
	venta, _ := registrarVentaBase(t, e)

	req := cobroRequest(venta.ID, 60)
	req.Yape = decimal.NewFromInt(30)
	req.Efectivo = decimal.NewFromInt(20)

	_, err := e.cobros.Crear(context.Background(), testUserID, req)
	require.Error(t, err)
	assert.Equal(t, ledger.KindValidation, ledger.KindOf(err))
}

func TestCobroDesgloseValido(t *testing.T) {
	e := newEntorno()
	venta, _ := registrarVentaBase(t, e)

	req := cobroRequest(venta.ID, 60)
	req.Yape = decimal.NewFromInt(40)
	req.Efectivo = decimal.NewFromInt(20)

	cobro, err := e.cobros.Crear(context.Background(), testUserID, req)
	require.NoError(t, err)
	assert.True(t, cobro.Yape.Equal(decimal.NewFromInt(40)))
}

func TestCobroVentaInexistente(t *testing.T) {
	e := newEntorno()
	_, err := e.cobros.Crear(context.Background(), testUserID, cobroRequest(uuid.NewString(), 10))
	require.Error(t, err)
	assert.Equal(t, ledger.KindNotFound, ledger.KindOf(err))
}

func TestEliminarCobroRevierteDeuda(t *testing.T) {
	e := newEntorno()
	venta, _ := registrarVentaBase(t, e)

	cobro, err := e.cobros.Crear(context.Background(), testUserID, cobroRequest(venta.ID, 100))
	require.NoError(t, err)
	assert.Equal(t, model.EstadoPagado, e.venta(venta.ID).EstadoPago)

	require.NoError(t, e.cobros.Eliminar(context.Background(), testUserID, uuid.MustParse(cobro.ID)))
	v := e.venta(venta.ID)
	assert.Equal(t, model.EstadoPendiente, v.EstadoPago)
	assert.True(t, v.CantidadPagada.IsZero())
	assert.Empty(t, e.cobroRepo.cobros)
}

func TestDeuda(t *testing.T) {
	e := newEntorno()
	venta, _ := registrarVentaBase(t, e)

	_, err := e.cobros.Crear(context.Background(), testUserID, cobroRequest(venta.ID, 60))
	require.NoError(t, err)

	deuda, err := e.cobros.Deuda(context.Background(), testUserID, uuid.MustParse(venta.ID))
	require.NoError(t, err)
	assert.True(t, deuda.MontoTotal.Equal(decimal.NewFromInt(100)))
	assert.True(t, deuda.TotalPagado.Equal(decimal.NewFromInt(60)))
	assert.True(t, deuda.DeudaPendiente.Equal(decimal.NewFromInt(40)))
	assert.Equal(t, model.EstadoParcial, deuda.EstadoPago)
}

// Full lifecycle across services: sale, partial payment, return, then the
// payment that settles the reduced debt.
func TestFlujoVentaCobroDevolucion(t *testing.T) {
	e := newEntorno()
	venta, p := registrarVentaBase(t, e)

	_, err := e.cobros.Crear(context.Background(), testUserID, cobroRequest(venta.ID, 60))
	require.NoError(t, err)

	_, err = e.devoluciones.Crear(context.Background(), testUserID, dto.CrearDevolucionRequest{
		VentaID: venta.ID,
		Items: []dto.DevolucionItemRequest{
			{ProductoID: p.ID.String(), Cantidad: 1, Motivo: "producto dañado"},
		},
	})
	require.NoError(t, err)

	v := e.venta(venta.ID)
	assert.True(t, v.MontoTotal.Equal(decimal.NewFromInt(75)))
	assert.Equal(t, model.EstadoParcial, v.EstadoPago)
	assert.Equal(t, 3, e.producto(p.ID).CantidadVendida)
	assert.Equal(t, 7, e.producto(p.ID).CantidadRestante)

	// Pending debt is now 15; paying 20 must be rejected.
	_, err = e.cobros.Crear(context.Background(), testUserID, cobroRequest(venta.ID, 20))
	require.Error(t, err)
	assert.Equal(t, ledger.KindPaymentExceedsDebt, ledger.KindOf(err))

	_, err = e.cobros.Crear(context.Background(), testUserID, cobroRequest(venta.ID, 15))
	require.NoError(t, err)
	assert.Equal(t, model.EstadoPagado, e.venta(venta.ID).EstadoPago)
}
