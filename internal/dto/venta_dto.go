package dto

import "github.com/shopspring/decimal"

// ─── Requests ────────────────────────────────────────────────────────────────

type DetalleVentaRequest struct {
	ProductoID string `json:"producto_id" validate:"required,uuid"`
	Cantidad   int    `json:"cantidad"    validate:"required,min=1"`
}

type RegistrarVentaRequest struct {
	ColaboradorID string                `json:"colaborador_id" validate:"required,uuid"`
	Detalles      []DetalleVentaRequest `json:"detalles"       validate:"required,min=1,dive"`
	// CantidadPagada optionally records an up-front payment; it determines the
	// initial estado de pago.
	CantidadPagada decimal.Decimal `json:"cantidad_pagada" validate:"min=0"`
	// FechaVenta opcional YYYY-MM-DD; default hoy.
	FechaVenta *string `json:"fecha_venta" validate:"omitempty,datetime=2006-01-02"`
}

// VentaFilter is bound from the query string of GET /v1/ventas and
// /v1/ventas/filtradas. Rango wins over explicit dates when both are sent.
type VentaFilter struct {
	Rango     string `form:"rango"      validate:"omitempty,oneof=day week month year historical"`
	StartDate string `form:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"end_date"   validate:"omitempty,datetime=2006-01-02"`
	Estado    string `form:"estado"     validate:"omitempty,oneof=Pendiente Parcial Pagado"`
	Page      int    `form:"page,default=1"   validate:"min=1"`
	Limit     int    `form:"limit,default=20" validate:"min=1,max=200"`
}

// ─── Responses ───────────────────────────────────────────────────────────────

type DetalleVentaResponse struct {
	ProductoID     string          `json:"producto_id"`
	Producto       string          `json:"producto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

type VentaResponse struct {
	ID               string                 `json:"id"`
	ColaboradorID    string                 `json:"colaborador_id"`
	Colaborador      string                 `json:"colaborador"`
	Detalles         []DetalleVentaResponse `json:"detalles"`
	MontoTotal       decimal.Decimal        `json:"monto_total"`
	CantidadPagada   decimal.Decimal        `json:"cantidad_pagada"`
	DeudaPendiente   decimal.Decimal        `json:"deuda_pendiente"`
	CantidadDevuelta int                    `json:"cantidad_devuelta"`
	EstadoPago       string                 `json:"estado_pago"`
	FechaVenta       string                 `json:"fecha_venta"`
}

type VentaListResponse struct {
	Data  []VentaResponse `json:"data"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

// ResumenVentasResponse maps collaborator name to accumulated sale totals.
type ResumenVentasResponse struct {
	Resumen map[string]decimal.Decimal `json:"resumen"`
}
