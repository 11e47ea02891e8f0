package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EstadoPago of a venta. Derived exclusively from MontoTotal vs CantidadPagada;
// never written directly by callers.
const (
	EstadoPendiente = "Pendiente"
	EstadoParcial   = "Parcial"
	EstadoPagado    = "Pagado"
)

// Venta is a sale with one or more line items. MontoTotal shrinks when a
// devolucion is recorded (direct reduction, not a separate accumulator);
// CantidadPagada grows with cobros. Invariant: CantidadPagada <= MontoTotal.
type Venta struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID        string    `gorm:"index;not null"`
	ColaboradorID uuid.UUID `gorm:"type:uuid;not null;index"`

	Subtotal       decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	MontoTotal     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	CantidadPagada decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	EstadoPago     string          `gorm:"type:varchar(10);not null"`

	// CantidadDevuelta accumulates units returned across all devoluciones.
	CantidadDevuelta int `gorm:"not null;default:0"`

	FechaVenta time.Time `gorm:"index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Colaborador *Colaborador   `gorm:"foreignKey:ColaboradorID"`
	Detalles    []DetalleVenta `gorm:"foreignKey:VentaID"`
}

// DetalleVenta is one line item of a venta.
type DetalleVenta struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VentaID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductoID uuid.UUID `gorm:"type:uuid;not null;index"`

	Cantidad       int             `gorm:"not null"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (DetalleVenta) TableName() string { return "detalles_venta" }
