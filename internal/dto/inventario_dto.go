package dto

import "github.com/shopspring/decimal"

type CrearItemRequest struct {
	Nombre      string           `json:"nombre"   validate:"required"`
	Cantidad    decimal.Decimal  `json:"cantidad" validate:"required"`
	Unidad      string           `json:"unidad"   validate:"required"`
	StockMinimo *decimal.Decimal `json:"stock_minimo"`
}

// CrearItemCompletoRequest is the extended creation variant; absent numeric
// fields default to zero.
type CrearItemCompletoRequest struct {
	Nombre         string           `json:"nombre"   validate:"required"`
	Descripcion    string           `json:"descripcion"`
	Cantidad       decimal.Decimal  `json:"cantidad" validate:"required"`
	Unidad         string           `json:"unidad"   validate:"required"`
	PrecioUnitario *decimal.Decimal `json:"precio_unitario"`
	StockMinimo    *decimal.Decimal `json:"stock_minimo"`
}

type RegistrarMovimientoRequest struct {
	Tipo     string          `json:"tipo"     validate:"required"`
	Cantidad decimal.Decimal `json:"cantidad" validate:"required"`
	Notas    string          `json:"notas"`
}

type ItemInventarioResponse struct {
	ID             string          `json:"id"`
	Nombre         string          `json:"nombre"`
	Descripcion    string          `json:"descripcion"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	Unidad         string          `json:"unidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	StockMinimo    decimal.Decimal `json:"stock_minimo"`
}

type MovimientoResponse struct {
	ID            string          `json:"id"`
	InventarioID  string          `json:"inventario_id"`
	Tipo          string          `json:"tipo"`
	Cantidad      decimal.Decimal `json:"cantidad"`
	UsuarioID     string          `json:"usuario_id"`
	Notas         string          `json:"notas"`
	NuevaCantidad decimal.Decimal `json:"nueva_cantidad"`
	CreatedAt     string          `json:"created_at"`
}
