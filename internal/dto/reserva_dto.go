package dto

import "github.com/shopspring/decimal"

// CrearReservaRequest is the self-service creation body: the requester becomes
// the owner and the reservation is born "confirmada".
type CrearReservaRequest struct {
	Fecha           string  `json:"fecha"           validate:"required"`
	Hora            string  `json:"hora"            validate:"required"`
	NumeroPersonas  int     `json:"numero_personas" validate:"required,gt=0"`
	NombreReserva   string  `json:"nombre_reserva"  validate:"required"`
	EmailReserva    *string `json:"email_reserva"`
	TelefonoReserva *string `json:"telefono_reserva"`
	ZonaMesa        string  `json:"zona_mesa"`
}

// CrearReservaAdminRequest is the admin-authored variant with the broader
// field set; estado defaults to "pendiente".
type CrearReservaAdminRequest struct {
	UsuarioID       *string          `json:"usuario_id"`
	RestauranteID   *int             `json:"restaurante_id"`
	Fecha           string           `json:"fecha"           validate:"required"`
	Hora            string           `json:"hora"            validate:"required"`
	NumeroPersonas  int              `json:"numero_personas" validate:"required,gt=0"`
	NombreReserva   string           `json:"nombre_reserva"`
	EmailReserva    *string          `json:"email_reserva"`
	TelefonoReserva *string          `json:"telefono_reserva"`
	NotasEspeciales *string          `json:"notas_especiales"`
	Estado          string           `json:"estado"          validate:"omitempty,oneof=pendiente confirmada cancelada completada no_asistio"`
	MetodoPago      *string          `json:"metodo_pago"`
	TotalReserva    *decimal.Decimal `json:"total_reserva"`
	ZonaMesa        *string          `json:"zona_mesa"`
}

type CambiarEstadoReservaRequest struct {
	Estado string `json:"estado" validate:"required"`
}

// ActualizarReservaRequest is the allow-listed partial update; fecha and hora
// are reparsed when present.
type ActualizarReservaRequest struct {
	Estado          *string          `json:"estado"`
	MesaAsignada    *int             `json:"mesa_asignada"`
	ZonaMesa        *string          `json:"zona_mesa"`
	NotasEspeciales *string          `json:"notas_especiales"`
	NombreReserva   *string          `json:"nombre_reserva"`
	EmailReserva    *string          `json:"email_reserva"`
	TelefonoReserva *string          `json:"telefono_reserva"`
	NumeroPersonas  *int             `json:"numero_personas"`
	TotalReserva    *decimal.Decimal `json:"total_reserva"`
	MetodoPago      *string          `json:"metodo_pago"`
	Fecha           *string          `json:"fecha"`
	Hora            *string          `json:"hora"`
}

type AsignarMesaRequest struct {
	MesaAsignada int     `json:"mesa_asignada" validate:"required,gt=0"`
	ZonaMesa     *string `json:"zona_mesa"`
}

type ReservaResponse struct {
	ID              string          `json:"id"`
	UsuarioID       string          `json:"usuario_id"`
	RestauranteID   int             `json:"restaurante_id"`
	Fecha           string          `json:"fecha"`
	Hora            string          `json:"hora"`
	NumeroPersonas  int             `json:"numero_personas"`
	NombreReserva   string          `json:"nombre_reserva"`
	EmailReserva    *string         `json:"email_reserva"`
	TelefonoReserva *string         `json:"telefono_reserva"`
	NotasEspeciales *string         `json:"notas_especiales"`
	ZonaMesa        *string         `json:"zona_mesa"`
	MesaAsignada    *int            `json:"mesa_asignada"`
	Estado          string          `json:"estado"`
	MetodoPago      *string         `json:"metodo_pago"`
	TotalReserva    decimal.Decimal `json:"total_reserva"`
	CreatedAt       string          `json:"created_at"`
}
