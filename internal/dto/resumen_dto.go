package dto

// ResumenResponse is the admin dashboard snapshot: table layout, recent
// orders, upcoming reservations, and items at or below their stock minimum.
type ResumenResponse struct {
	Mesas          []MesaResponse           `json:"mesas"`
	Pedidos        []PedidoResponse         `json:"pedidos"`
	Reservas       []ReservaResponse        `json:"reservas"`
	InventarioBajo []ItemInventarioResponse `json:"inventario_bajo"`
}
