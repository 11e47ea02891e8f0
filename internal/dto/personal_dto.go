package dto

import "github.com/shopspring/decimal"

// ─── Gestión personal ────────────────────────────────────────────────────────

type CrearGestionRequest struct {
	ColaboradorID  string          `json:"colaborador_id"   validate:"required,uuid"`
	FechaDeGestion string          `json:"fecha_de_gestion" validate:"required,datetime=2006-01-02"`
	Descripcion    string          `json:"descripcion"      validate:"required"`
	Monto          decimal.Decimal `json:"monto"            validate:"required"`
	Faltante       decimal.Decimal `json:"faltante"         validate:"min=0"`
	Adelanto       decimal.Decimal `json:"adelanto"         validate:"min=0"`
	PagoDiario     decimal.Decimal `json:"pagodiario"       validate:"min=0"`
	DiasLaborados  int             `json:"dias_laborados"   validate:"omitempty,min=1"`
}

type GestionResponse struct {
	ID             string          `json:"id"`
	ColaboradorID  string          `json:"colaborador_id"`
	Colaborador    string          `json:"colaborador"`
	Departamento   string          `json:"departamento"`
	FechaDeGestion string          `json:"fecha_de_gestion"`
	Descripcion    string          `json:"descripcion"`
	Monto          decimal.Decimal `json:"monto"`
	Faltante       decimal.Decimal `json:"faltante"`
	Adelanto       decimal.Decimal `json:"adelanto"`
	PagoDiario     decimal.Decimal `json:"pagodiario"`
	DiasLaborados  int             `json:"dias_laborados"`
}

// ─── Pagos realizados ────────────────────────────────────────────────────────

type CrearPagoRealizadoRequest struct {
	ColaboradorID string          `json:"colaborador_id" validate:"required,uuid"`
	MontoTotal    decimal.Decimal `json:"monto_total"    validate:"required"`
	MetodoPago    string          `json:"metodo_pago"    validate:"omitempty,oneof=efectivo transferencia deposito cheque"`
	FechaPago     *string         `json:"fecha_pago"     validate:"omitempty,datetime=2006-01-02"`
	PeriodoInicio *string         `json:"periodo_inicio" validate:"omitempty,datetime=2006-01-02"`
	PeriodoFin    *string         `json:"periodo_fin"    validate:"omitempty,datetime=2006-01-02"`
	// Registros are gestion entry ids covered by this settlement.
	Registros     []string `json:"registros"     validate:"omitempty,dive,uuid"`
	Observaciones string   `json:"observaciones"`
	Estado        string   `json:"estado" validate:"omitempty,oneof=pagado parcial pendiente"`
}

type ActualizarPagoRealizadoRequest struct {
	MontoTotal    *decimal.Decimal `json:"monto_total"`
	MetodoPago    *string          `json:"metodo_pago" validate:"omitempty,oneof=efectivo transferencia deposito cheque"`
	Estado        *string          `json:"estado"      validate:"omitempty,oneof=pagado parcial pendiente"`
	Observaciones *string          `json:"observaciones"`
}

type PagoRealizadoResponse struct {
	ID            string          `json:"id"`
	ColaboradorID string          `json:"colaborador_id"`
	Colaborador   string          `json:"colaborador"`
	MontoTotal    decimal.Decimal `json:"monto_total"`
	MetodoPago    string          `json:"metodo_pago"`
	FechaPago     string          `json:"fecha_pago"`
	PeriodoInicio string          `json:"periodo_inicio,omitempty"`
	PeriodoFin    string          `json:"periodo_fin,omitempty"`
	Observaciones string          `json:"observaciones,omitempty"`
	Estado        string          `json:"estado"`
}

// ResumenPlanillaResponse is the payroll ledger for one collaborator:
// generado (owed) minus pagado, floored at zero.
type ResumenPlanillaResponse struct {
	ColaboradorID  string          `json:"colaborador_id"`
	Colaborador    string          `json:"colaborador"`
	TotalGenerado  decimal.Decimal `json:"total_generado"`
	TotalPagado    decimal.Decimal `json:"total_pagado"`
	PendientePago  decimal.Decimal `json:"pendiente_pago"`
}
