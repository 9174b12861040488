package model

import (
	"time"

	"github.com/google/uuid"
)

// Pedido is a customer order. Orders are never hard-deleted from this layer;
// terminal states are "cancelado" and "rechazado".
type Pedido struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Tipo        string     `gorm:"not null"` // "mesa" | "delivery" | "takeaway"
	Estado      string     `gorm:"type:varchar(20);not null;default:'pendiente'"`
	MesaID      *uuid.UUID `gorm:"type:uuid;index"`
	FechaPedido time.Time  `gorm:"not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Mesa *Mesa `gorm:"foreignKey:MesaID"`
}

func (Pedido) TableName() string { return "pedidos" }

// EstadosPedido is the closed set of order states.
var EstadosPedido = []string{"pendiente", "preparando", "enviado", "entregado", "cancelado", "rechazado"}

// EstadoPedidoValido reports whether estado belongs to the order state enum.
func EstadoPedidoValido(estado string) bool {
	for _, e := range EstadosPedido {
		if e == estado {
			return true
		}
	}
	return false
}
