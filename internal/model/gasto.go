package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Tipos de gasto.
const (
	GastoManoDeObra   = "Mano de obra"
	GastoMateriaPrima = "Materia prima"
	GastoOtros        = "Otros"
)

// Gasto is a plain expense record; it does not participate in the
// stock/debt reconciliation.
type Gasto struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID string    `gorm:"index;not null"`

	TipoDeGasto string `gorm:"not null"`
	Area        string `gorm:"column:gasto;not null"` // Producción | Ventas | Administración | Financiero
	Descripcion string `gorm:"not null"`

	CostoUnidad decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Cantidad    int             `gorm:"not null"`
	MontoTotal  decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	FechaGasto time.Time `gorm:"index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
