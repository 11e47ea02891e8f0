// Package ledger contains the reconciliation rules that keep product stock,
// sale debt and payment/return accumulators mutually consistent. Services
// orchestrate repositories and transactions; the arithmetic and the guards
// live here so they can be tested without a database.
package ledger

import (
	"errors"
	"fmt"
)

// Kind is the machine-checkable classification of a business-rule violation.
// Handlers translate kinds into HTTP status codes; clients can branch on the
// kind without parsing the human-readable message.
type Kind string

const (
	KindNotFound             Kind = "not_found"
	KindValidation           Kind = "validation_error"
	KindInsufficientStock    Kind = "insufficient_stock"
	KindPaymentExceedsDebt   Kind = "payment_exceeds_debt"
	KindReturnExceedsSold    Kind = "return_exceeds_sold"
	KindReturnExceedsDebt    Kind = "return_exceeds_debt"
	KindSaleHasReturns       Kind = "sale_has_returns"
	KindCollaboratorHasSales Kind = "collaborator_has_sales"
	KindConflict             Kind = "conflict"
	KindInternal             Kind = "internal_error"
)

// Error carries a kind plus a Spanish user-facing message.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func NotFound(entity string) *Error {
	return &Error{Kind: KindNotFound, Msg: entity + " no encontrado"}
}

func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Msg: msg}
}

func Validationf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

func InsufficientStock(producto string, disponible int) *Error {
	return &Error{
		Kind: KindInsufficientStock,
		Msg:  fmt.Sprintf("Stock insuficiente para el producto %s. Solo hay %d unidades disponibles", producto, disponible),
	}
}

func PaymentExceedsDebt(monto, pendiente string) *Error {
	return &Error{
		Kind: KindPaymentExceedsDebt,
		Msg:  fmt.Sprintf("El pago (%s) excede la deuda pendiente (%s)", monto, pendiente),
	}
}

func ReturnExceedsSold(producto string, disponible int) *Error {
	return &Error{
		Kind: KindReturnExceedsSold,
		Msg:  fmt.Sprintf("No se puede devolver esa cantidad de %s. Cantidad disponible: %d", producto, disponible),
	}
}

func ReturnExceedsDebt(monto, pendiente string) *Error {
	return &Error{
		Kind: KindReturnExceedsDebt,
		Msg:  fmt.Sprintf("La devolucion (%s) excede la deuda pendiente (%s). Elimine primero los cobros de la venta", monto, pendiente),
	}
}

func SaleHasReturns(n int) *Error {
	return &Error{
		Kind: KindSaleHasReturns,
		Msg:  fmt.Sprintf("No se puede eliminar la venta porque tiene %d devoluciones asociadas. Elimine primero las devoluciones", n),
	}
}

func CollaboratorHasSales(nombre string) *Error {
	return &Error{
		Kind: KindCollaboratorHasSales,
		Msg:  fmt.Sprintf("No se puede eliminar el colaborador %s porque tiene registros asociados", nombre),
	}
}

func Conflict() *Error {
	return &Error{Kind: KindConflict, Msg: "La operacion entro en conflicto con otra actualizacion. Intente nuevamente"}
}

func Internal() *Error {
	return &Error{Kind: KindInternal, Msg: "Error interno del servidor"}
}

// KindOf extracts the kind from any error; non-ledger errors are internal.
func KindOf(err error) Kind {
	var le *Error
	if errors.As(err, &le) {
		return le.Kind
	}
	return KindInternal
}
