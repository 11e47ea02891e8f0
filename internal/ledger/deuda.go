package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/jonathanEDR/gestorappb/internal/model"
)

// RecomputeEstado derives a venta's payment status from its totals.
// Pagado iff pagado >= total; Parcial iff 0 < pagado < total; else Pendiente.
func RecomputeEstado(montoTotal, cantidadPagada decimal.Decimal) string {
	switch {
	case cantidadPagada.GreaterThanOrEqual(montoTotal) && montoTotal.IsPositive():
		return model.EstadoPagado
	case cantidadPagada.IsPositive():
		return model.EstadoParcial
	default:
		return model.EstadoPendiente
	}
}

// Pendiente returns the venta's outstanding debt (total - pagado).
func Pendiente(v *model.Venta) decimal.Decimal {
	return v.MontoTotal.Sub(v.CantidadPagada)
}

// ApplyPayment adds monto to the venta's paid accumulator. A payment may
// never push the paid amount above the total.
func ApplyPayment(v *model.Venta, monto decimal.Decimal) error {
	if !monto.IsPositive() {
		return Validation("El monto pagado debe ser mayor a cero")
	}
	pendiente := Pendiente(v)
	if monto.GreaterThan(pendiente) {
		return PaymentExceedsDebt(monto.StringFixed(2), pendiente.StringFixed(2))
	}
	v.CantidadPagada = v.CantidadPagada.Add(monto)
	v.EstadoPago = RecomputeEstado(v.MontoTotal, v.CantidadPagada)
	return nil
}

// ReversePayment subtracts monto from the paid accumulator, clamping at zero.
func ReversePayment(v *model.Venta, monto decimal.Decimal) {
	v.CantidadPagada = v.CantidadPagada.Sub(monto)
	if v.CantidadPagada.IsNegative() {
		v.CantidadPagada = decimal.Zero
	}
	v.EstadoPago = RecomputeEstado(v.MontoTotal, v.CantidadPagada)
}

// ApplyReturn reduces the venta's MontoTotal by the return credit and bumps
// the returned-units accumulator. The credit may not exceed the pending debt:
// the new total must stay at or above what was already paid, so the paid
// accumulator never overshoots the total. Settling that case means deleting
// cobros first, then recording the return.
func ApplyReturn(v *model.Venta, cantidad int, monto decimal.Decimal) error {
	pendiente := Pendiente(v)
	if monto.GreaterThan(pendiente) {
		return ReturnExceedsDebt(monto.StringFixed(2), pendiente.StringFixed(2))
	}
	v.MontoTotal = v.MontoTotal.Sub(monto)
	v.CantidadDevuelta += cantidad
	v.EstadoPago = RecomputeEstado(v.MontoTotal, v.CantidadPagada)
	return nil
}

// ReverseReturn restores the venta's MontoTotal and returned-units counter.
func ReverseReturn(v *model.Venta, cantidad int, monto decimal.Decimal) {
	v.MontoTotal = v.MontoTotal.Add(monto)
	v.CantidadDevuelta -= cantidad
	if v.CantidadDevuelta < 0 {
		v.CantidadDevuelta = 0
	}
	v.EstadoPago = RecomputeEstado(v.MontoTotal, v.CantidadPagada)
}
