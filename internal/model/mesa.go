package model

import (
	"time"

	"github.com/google/uuid"
)

// Mesa is a physical table in the dining room. Numero is the business key
// shown to staff; it must be unique across the restaurant.
type Mesa struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Numero     int       `gorm:"uniqueIndex;not null"`
	Capacidad  int       `gorm:"not null"`
	Tipo       string    `gorm:"not null"` // "interior" | "exterior" | "barra" | "vip"
	Disponible bool      `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName overrides GORM's default pluralization for Spanish names.
func (Mesa) TableName() string { return "mesas" }
