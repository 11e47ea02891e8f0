package dto

import "github.com/shopspring/decimal"

type CrearProductoRequest struct {
	Nombre   string          `json:"nombre"   validate:"required"`
	Precio   decimal.Decimal `json:"precio"   validate:"min=0"`
	Cantidad int             `json:"cantidad" validate:"required,min=1"`
	// Fecha opcional YYYY-MM-DD; default hoy.
	Fecha *string `json:"fecha" validate:"omitempty,datetime=2006-01-02"`
}

// ActualizarProductoRequest permits renaming, repricing and restocking.
// Cantidad is the new TOTAL ever stocked; it may never drop below the units
// already sold.
type ActualizarProductoRequest struct {
	Nombre   *string          `json:"nombre"`
	Precio   *decimal.Decimal `json:"precio"   validate:"omitempty"`
	Cantidad *int             `json:"cantidad" validate:"omitempty,min=0"`
}

type ProductoFilter struct {
	Nombre string `form:"nombre"`
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=20" validate:"min=1,max=200"`
}

type ProductoResponse struct {
	ID               string          `json:"id"`
	Nombre           string          `json:"nombre"`
	Precio           decimal.Decimal `json:"precio"`
	Cantidad         int             `json:"cantidad"`
	CantidadVendida  int             `json:"cantidad_vendida"`
	CantidadRestante int             `json:"cantidad_restante"`
	FechaProducto    string          `json:"fecha_producto"`
}

type ProductoListResponse struct {
	Data  []ProductoResponse `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}
