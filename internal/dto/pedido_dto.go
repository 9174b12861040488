package dto

// PedidoFilter captures the optional query-string filters of GET /api/pedidos.
type PedidoFilter struct {
	Tipo   string `form:"tipo"`
	Estado string `form:"estado"`
}

type CambiarEstadoPedidoRequest struct {
	Estado string `json:"estado" validate:"required"`
}

// ActualizarPedidoRequest is a partial update: only present fields are
// considered, and an unrecognized estado value is ignored rather than applied.
type ActualizarPedidoRequest struct {
	Estado *string `json:"estado"`
	MesaID *string `json:"mesa_id"`
}

type PedidoResponse struct {
	ID          string  `json:"id"`
	Tipo        string  `json:"tipo"`
	Estado      string  `json:"estado"`
	MesaID      *string `json:"mesa_id"`
	FechaPedido string  `json:"fecha_pedido"`
}
