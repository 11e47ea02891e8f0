package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Producto carries the three stock counters of the inventory ledger.
// Invariant: CantidadRestante = Cantidad - CantidadVendida, both >= 0.
// Cantidad is everything ever stocked; CantidadVendida is net of returns.
type Producto struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID string    `gorm:"index;not null"`
	Nombre string    `gorm:"index;not null"`
	Precio decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Cantidad         int `gorm:"not null;default:0"`
	CantidadVendida  int `gorm:"not null;default:0"`
	CantidadRestante int `gorm:"not null;default:0"`

	FechaProducto time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
