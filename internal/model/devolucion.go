package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Devolucion is a return of previously sold units. Creating one moves stock
// from vendida back to restante and reduces the venta's MontoTotal by
// MontoDevolucion; deleting one reverses both effects exactly.
type Devolucion struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID     string    `gorm:"index;not null"`
	VentaID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductoID uuid.UUID `gorm:"type:uuid;not null;index"`

	CantidadDevuelta int             `gorm:"not null"`
	MontoDevolucion  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Motivo           string          `gorm:"not null"`

	FechaDevolucion time.Time `gorm:"index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Venta    *Venta    `gorm:"foreignKey:VentaID"`
	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (Devolucion) TableName() string { return "devoluciones" }
