package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Estado of a single cobro: whether this payment alone cleared the sale's
// remaining debt at the time it was made. Distinct from Venta.EstadoPago.
const (
	CobroParcial = "parcial"
	CobroTotal   = "total"
)

// Cobro is a payment applied against a venta's outstanding debt.
// Yape/Efectivo/GastosImprevistos break MontoPagado down by method; the
// breakdown is additive and informational only.
type Cobro struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID        string    `gorm:"index;not null"`
	ColaboradorID uuid.UUID `gorm:"type:uuid;not null;index"`
	VentaID       uuid.UUID `gorm:"type:uuid;not null;index"`

	MontoPagado decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	EstadoPago  string          `gorm:"type:varchar(10);not null"`

	Yape              decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Efectivo          decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	GastosImprevistos decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`

	FechaPago time.Time `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Colaborador *Colaborador `gorm:"foreignKey:ColaboradorID"`
	Venta       *Venta       `gorm:"foreignKey:VentaID"`
}
