package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Departamentos validos para un colaborador.
const (
	DepartamentoProduccion     = "Producción"
	DepartamentoVentas         = "Ventas"
	DepartamentoAdministracion = "Administración"
	DepartamentoFinanciero     = "Financiero"
)

// Colaborador is a worker/sales agent. Referenced by ventas, cobros and the
// payroll records; deletion is guarded while any reference exists.
type Colaborador struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID   string    `gorm:"index;not null"`
	Nombre   string    `gorm:"index;not null"`
	Telefono *string
	Email    *string
	Departamento  string          `gorm:"not null"`
	Sueldo        decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	FechaRegistro time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Colaborador) TableName() string { return "colaboradores" }
