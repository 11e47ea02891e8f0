package dto

import "github.com/shopspring/decimal"

type CrearCobroRequest struct {
	VentaID     string          `json:"venta_id"     validate:"required,uuid"`
	MontoPagado decimal.Decimal `json:"monto_pagado" validate:"required"`

	// Desglose por metodo; additive, informational only.
	Yape              decimal.Decimal `json:"yape"               validate:"min=0"`
	Efectivo          decimal.Decimal `json:"efectivo"           validate:"min=0"`
	GastosImprevistos decimal.Decimal `json:"gastos_imprevistos" validate:"min=0"`

	// FechaPago opcional YYYY-MM-DD; default hoy.
	FechaPago *string `json:"fecha_pago" validate:"omitempty,datetime=2006-01-02"`
}

type CobroFilter struct {
	Page  int `form:"page,default=1"   validate:"min=1"`
	Limit int `form:"limit,default=15" validate:"min=1,max=200"`
}

type CobroResponse struct {
	ID          string          `json:"id"`
	VentaID     string          `json:"venta_id"`
	Colaborador string          `json:"colaborador"`
	MontoPagado decimal.Decimal `json:"monto_pagado"`
	EstadoPago  string          `json:"estado_pago"`

	Yape              decimal.Decimal `json:"yape"`
	Efectivo          decimal.Decimal `json:"efectivo"`
	GastosImprevistos decimal.Decimal `json:"gastos_imprevistos"`

	FechaPago string         `json:"fecha_pago"`
	Venta     *VentaResponse `json:"venta,omitempty"`
}

type CobroListResponse struct {
	Data  []CobroResponse `json:"data"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

// DeudaResponse summarizes a venta's outstanding debt.
type DeudaResponse struct {
	VentaID        string          `json:"venta_id"`
	MontoTotal     decimal.Decimal `json:"monto_total"`
	TotalPagado    decimal.Decimal `json:"total_pagado"`
	DeudaPendiente decimal.Decimal `json:"deuda_pendiente"`
	EstadoPago     string          `json:"estado_pago"`
}
