package dto

import "github.com/shopspring/decimal"

type CrearColaboradorRequest struct {
	Nombre       string          `json:"nombre"       validate:"required"`
	Telefono     *string         `json:"telefono"`
	Email        *string         `json:"email"        validate:"omitempty,email"`
	Departamento string          `json:"departamento" validate:"required,oneof=Producción Ventas Administración Financiero"`
	Sueldo       decimal.Decimal `json:"sueldo"       validate:"min=0"`
}

type ActualizarColaboradorRequest struct {
	Nombre       *string          `json:"nombre"`
	Telefono     *string          `json:"telefono"`
	Email        *string          `json:"email"        validate:"omitempty,email"`
	Departamento *string          `json:"departamento" validate:"omitempty,oneof=Producción Ventas Administración Financiero"`
	Sueldo       *decimal.Decimal `json:"sueldo"`
}

type ColaboradorResponse struct {
	ID           string          `json:"id"`
	Nombre       string          `json:"nombre"`
	Telefono     *string         `json:"telefono,omitempty"`
	Email        *string         `json:"email,omitempty"`
	Departamento string          `json:"departamento"`
	Sueldo       decimal.Decimal `json:"sueldo"`
	FechaRegistro string         `json:"fecha_registro"`
}
