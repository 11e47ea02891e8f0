package dto

import "github.com/shopspring/decimal"

type DevolucionItemRequest struct {
	ProductoID string `json:"producto_id" validate:"required,uuid"`
	Cantidad   int    `json:"cantidad"    validate:"required,min=1"`
	// Monto opcional: si no se envia se calcula cantidad * precio unitario
	// del detalle de venta.
	Monto  *decimal.Decimal `json:"monto"`
	Motivo string           `json:"motivo" validate:"required"`
}

type CrearDevolucionRequest struct {
	VentaID string                  `json:"venta_id" validate:"required,uuid"`
	Items   []DevolucionItemRequest `json:"items"    validate:"required,min=1,dive"`
	// Fecha opcional YYYY-MM-DD; default hoy.
	Fecha *string `json:"fecha" validate:"omitempty,datetime=2006-01-02"`
}

type DevolucionFilter struct {
	Page  int `form:"page,default=1"   validate:"min=1"`
	Limit int `form:"limit,default=10" validate:"min=1,max=200"`
}

type DevolucionResponse struct {
	ID              string          `json:"id"`
	VentaID         string          `json:"venta_id"`
	ProductoID      string          `json:"producto_id"`
	Producto        string          `json:"producto"`
	Colaborador     string          `json:"colaborador,omitempty"`
	Cantidad        int             `json:"cantidad"`
	MontoDevolucion decimal.Decimal `json:"monto_devolucion"`
	Motivo          string          `json:"motivo"`
	FechaDevolucion string          `json:"fecha_devolucion"`
}

type DevolucionListResponse struct {
	Data  []DevolucionResponse `json:"data"`
	Total int64                `json:"total"`
	Page  int                  `json:"page"`
	Limit int                  `json:"limit"`
}
