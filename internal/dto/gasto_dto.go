package dto

import "github.com/shopspring/decimal"

type CrearGastoRequest struct {
	TipoDeGasto string          `json:"tipo_de_gasto" validate:"required,oneof='Mano de obra' 'Materia prima' Otros"`
	Area        string          `json:"gasto"         validate:"required,oneof=Producción Ventas Administración Financiero"`
	Descripcion string          `json:"descripcion"   validate:"required"`
	CostoUnidad decimal.Decimal `json:"costo_unidad"  validate:"required"`
	Cantidad    int             `json:"cantidad"      validate:"required,min=1"`
	Fecha       *string         `json:"fecha"         validate:"omitempty,datetime=2006-01-02"`
}

type GastoResponse struct {
	ID          string          `json:"id"`
	TipoDeGasto string          `json:"tipo_de_gasto"`
	Area        string          `json:"gasto"`
	Descripcion string          `json:"descripcion"`
	CostoUnidad decimal.Decimal `json:"costo_unidad"`
	Cantidad    int             `json:"cantidad"`
	MontoTotal  decimal.Decimal `json:"monto_total"`
	FechaGasto  string          `json:"fecha_gasto"`
}
