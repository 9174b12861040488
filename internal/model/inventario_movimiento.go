package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InventarioMovimiento is one entry of the append-only stock ledger. Rows are
// immutable once created; they exist solely to audit Cantidad changes.
type InventarioMovimiento struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	InventarioID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Tipo         string          `gorm:"type:varchar(10);not null"` // "entrada" | "salida"
	Cantidad     decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	UsuarioID    uuid.UUID       `gorm:"type:uuid;not null"`
	Notas        string
	CreatedAt    time.Time

	Inventario *Inventario `gorm:"foreignKey:InventarioID"`
	Usuario    *Usuario    `gorm:"foreignKey:UsuarioID"`
}

func (InventarioMovimiento) TableName() string { return "inventario_movimientos" }
