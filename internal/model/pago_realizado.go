package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Metodos de pago de planilla.
const (
	MetodoEfectivo      = "efectivo"
	MetodoTransferencia = "transferencia"
	MetodoDeposito      = "deposito"
	MetodoCheque        = "cheque"
)

// PagoRealizado is a payroll settlement covering a set of gestion entries.
type PagoRealizado struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID        string    `gorm:"index;not null"`
	ColaboradorID uuid.UUID `gorm:"type:uuid;not null;index"`

	FechaPago  time.Time       `gorm:"index;not null"`
	MontoTotal decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	MetodoPago string          `gorm:"type:varchar(20);not null;default:'efectivo'"`

	// Periodo defaults to the calendar month of FechaPago when not supplied.
	PeriodoInicio *time.Time
	PeriodoFin    *time.Time

	Observaciones string `gorm:"default:''"`
	Estado        string `gorm:"type:varchar(10);not null;default:'pagado'"` // pagado | parcial | pendiente

	CreatedAt time.Time
	UpdatedAt time.Time

	Colaborador *Colaborador      `gorm:"foreignKey:ColaboradorID"`
	Registros   []GestionPersonal `gorm:"many2many:pago_realizado_registros"`
}

func (PagoRealizado) TableName() string { return "pagos_realizados" }
