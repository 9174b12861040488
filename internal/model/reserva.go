package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Reserva is a table reservation. Deleting a reservation is always a soft
// transition to estado "cancelada"; the row is never removed.
type Reserva struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UsuarioID       uuid.UUID `gorm:"type:uuid;not null;index"`
	RestauranteID   int       `gorm:"not null;default:1"`
	Fecha           time.Time `gorm:"type:date;not null;index"`
	Hora            string    `gorm:"type:varchar(5);not null"` // "HH:MM"
	NumeroPersonas  int       `gorm:"not null"`
	NombreReserva   string    `gorm:"not null"`
	EmailReserva    *string
	TelefonoReserva *string
	NotasEspeciales *string
	ZonaMesa        *string
	MesaAsignada    *int
	Estado          string          `gorm:"type:varchar(20);not null;default:'pendiente'"`
	MetodoPago      *string
	TotalReserva    decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Usuario *Usuario `gorm:"foreignKey:UsuarioID"`
}

func (Reserva) TableName() string { return "reservas" }

// EstadosReserva is the closed set of reservation states.
var EstadosReserva = []string{"pendiente", "confirmada", "cancelada", "completada", "no_asistio"}

// EstadoReservaValido reports whether estado belongs to the reservation state enum.
func EstadoReservaValido(estado string) bool {
	for _, e := range EstadosReserva {
		if e == estado {
			return true
		}
	}
	return false
}
