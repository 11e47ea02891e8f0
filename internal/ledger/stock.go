package ledger

import (
	"github.com/rs/zerolog/log"

	"github.com/jonathanEDR/gestorappb/internal/model"
)

// CheckDisponible fails when qty exceeds the product's remaining stock.
// Callers must run this for every line item BEFORE mutating anything so a
// multi-item sale is rejected whole, never partially applied.
func CheckDisponible(p *model.Producto, qty int) error {
	if qty < 1 {
		return Validation("La cantidad debe ser al menos 1")
	}
	if qty > p.CantidadRestante {
		return InsufficientStock(p.Nombre, p.CantidadRestante)
	}
	return nil
}

// IncreaseSold moves qty units from restante to vendida and recomputes the
// remaining counter. The caller persists the product within its transaction.
func IncreaseSold(p *model.Producto, qty int) error {
	if err := CheckDisponible(p, qty); err != nil {
		return err
	}
	p.CantidadVendida += qty
	p.CantidadRestante = p.Cantidad - p.CantidadVendida
	return nil
}

// DecreaseSold moves qty units back from vendida to restante. Reversal paths
// (sale deletion, return creation) may run against already-inconsistent data,
// so under-runs clamp to zero and log instead of erroring; this keeps
// reversal idempotent-safe.
func DecreaseSold(p *model.Producto, qty int) {
	p.CantidadVendida -= qty
	if p.CantidadVendida < 0 {
		log.Warn().
			Str("producto_id", p.ID.String()).
			Int("cantidad_vendida", p.CantidadVendida).
			Msg("cantidad vendida negativa al revertir; se ajusta a 0")
		p.CantidadVendida = 0
	}
	p.CantidadRestante = p.Cantidad - p.CantidadVendida
	if p.CantidadRestante > p.Cantidad {
		p.CantidadRestante = p.Cantidad
	}
}
