package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Inventario is a stock item. Cantidad only changes through movements; a
// salida may never drive it below zero.
type Inventario struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre         string    `gorm:"index;not null"`
	Descripcion    string
	Cantidad       decimal.Decimal `gorm:"type:decimal(12,3);not null;default:0"`
	Unidad         string          `gorm:"not null"` // "kg" | "l" | "unidad" | ...
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	StockMinimo    decimal.Decimal `gorm:"type:decimal(12,3);not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Inventario) TableName() string { return "inventario" }
