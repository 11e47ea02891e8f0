package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GestionPersonal is one payroll-adjustment entry for a collaborator.
// Owed amount of an entry = Monto + Faltante - Adelanto; the payroll ledger
// (owed - paid, never reported negative) is computed over these entries and
// the PagoRealizado settlements.
type GestionPersonal struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID        string    `gorm:"index;not null"`
	ColaboradorID uuid.UUID `gorm:"type:uuid;not null;index"`

	FechaDeGestion time.Time `gorm:"index;not null"`
	Descripcion    string    `gorm:"not null"`

	Monto         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Faltante      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Adelanto      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	PagoDiario    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	DiasLaborados int             `gorm:"not null;default:30"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Colaborador *Colaborador `gorm:"foreignKey:ColaboradorID"`
}

func (GestionPersonal) TableName() string { return "gestion_personal" }
