package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuItem is a dish or beverage offered on the menu.
type MenuItem struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RestauranteID int       `gorm:"not null;default:1"`
	Nombre        string    `gorm:"index;not null"`
	Descripcion   string
	Precio        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CategoriaID   *uuid.UUID      `gorm:"type:uuid;index"`
	ImagenURL     string
	Disponible    bool `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Categoria *Categoria `gorm:"foreignKey:CategoriaID"`
}

func (MenuItem) TableName() string { return "menu_items" }
