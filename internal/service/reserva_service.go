package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jsaerys/boodfood/internal/apierror"
	"github.com/jsaerys/boodfood/internal/dto"
	"github.com/jsaerys/boodfood/internal/model"
	"github.com/jsaerys/boodfood/internal/notifier"
	"github.com/jsaerys/boodfood/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Textual formats of the reservation date and time fields.
const (
	formatoFecha = "2006-01-02"
	formatoHora  = "15:04"
)

type ReservaService interface {
	// Crear is the self-service variant: the requester becomes the owner and
	// the reservation is created directly in estado "confirmada".
	Crear(ctx context.Context, usuarioID uuid.UUID, req dto.CrearReservaRequest) (*dto.ReservaResponse, error)
	// CrearAdmin accepts the broader field set; estado defaults to "pendiente".
	CrearAdmin(ctx context.Context, actorID uuid.UUID, req dto.CrearReservaAdminRequest) (*dto.ReservaResponse, error)
	Listar(ctx context.Context) ([]dto.ReservaResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.ReservaResponse, error)
	CambiarEstado(ctx context.Context, id uuid.UUID, estado string) (*dto.ReservaResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarReservaRequest) (*dto.ReservaResponse, error)
	AsignarMesa(ctx context.Context, id uuid.UUID, req dto.AsignarMesaRequest) (*dto.ReservaResponse, error)
	// Eliminar is a soft delete: the row transitions to "cancelada".
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type reservaService struct {
	repo     repository.ReservaRepository
	notifier notifier.Notifier
}

func NewReservaService(repo repository.ReservaRepository, n notifier.Notifier) ReservaService {
	return &reservaService{repo: repo, notifier: n}
}

func parseFecha(s string) (time.Time, error) {
	f, err := time.Parse(formatoFecha, s)
	if err != nil {
		return time.Time{}, apierror.Validation(fmt.Sprintf("Fecha inválida %q, formato esperado YYYY-MM-DD", s))
	}
	return f, nil
}

func parseHora(s string) (string, error) {
	if _, err := time.Parse(formatoHora, s); err != nil {
		return "", apierror.Validation(fmt.Sprintf("Hora inválida %q, formato esperado HH:MM", s))
	}
	return s, nil
}

func (s *reservaService) Crear(ctx context.Context, usuarioID uuid.UUID, req dto.CrearReservaRequest) (*dto.ReservaResponse, error) {
	fecha, err := parseFecha(req.Fecha)
	if err != nil {
		return nil, err
	}
	hora, err := parseHora(req.Hora)
	if err != nil {
		return nil, err
	}

	zona := req.ZonaMesa
	if zona == "" {
		zona = "interior"
	}
	reserva := &model.Reserva{
		UsuarioID:       usuarioID,
		RestauranteID:   1,
		Fecha:           fecha,
		Hora:            hora,
		NumeroPersonas:  req.NumeroPersonas,
		NombreReserva:   req.NombreReserva,
		EmailReserva:    req.EmailReserva,
		TelefonoReserva: req.TelefonoReserva,
		ZonaMesa:        &zona,
		Estado:          "confirmada",
	}
	if err := s.repo.Create(ctx, reserva); err != nil {
		return nil, apierror.Internal(err)
	}

	resp := reservaToResponse(reserva)
	s.notifier.Publish(ctx, "nueva_reserva", resp)
	return resp, nil
}

func (s *reservaService) CrearAdmin(ctx context.Context, actorID uuid.UUID, req dto.CrearReservaAdminRequest) (*dto.ReservaResponse, error) {
	fecha, err := parseFecha(req.Fecha)
	if err != nil {
		return nil, err
	}
	hora, err := parseHora(req.Hora)
	if err != nil {
		return nil, err
	}

	usuarioID := actorID
	if req.UsuarioID != nil {
		parsed, err := uuid.Parse(*req.UsuarioID)
		if err != nil {
			return nil, apierror.Validation("usuario_id inválido")
		}
		usuarioID = parsed
	}
	restauranteID := 1
	if req.RestauranteID != nil {
		restauranteID = *req.RestauranteID
	}
	estado := req.Estado
	if estado == "" {
		estado = "pendiente"
	}
	total := decimal.Zero
	if req.TotalReserva != nil {
		total = *req.TotalReserva
	}

	reserva := &model.Reserva{
		UsuarioID:       usuarioID,
		RestauranteID:   restauranteID,
		Fecha:           fecha,
		Hora:            hora,
		NumeroPersonas:  req.NumeroPersonas,
		NombreReserva:   req.NombreReserva,
		EmailReserva:    req.EmailReserva,
		TelefonoReserva: req.TelefonoReserva,
		NotasEspeciales: req.NotasEspeciales,
		ZonaMesa:        req.ZonaMesa,
		Estado:          estado,
		MetodoPago:      req.MetodoPago,
		TotalReserva:    total,
	}
	if err := s.repo.Create(ctx, reserva); err != nil {
		return nil, apierror.Internal(err)
	}
	return reservaToResponse(reserva), nil
}

func (s *reservaService) Listar(ctx context.Context) ([]dto.ReservaResponse, error) {
	reservas, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	resp := make([]dto.ReservaResponse, len(reservas))
	for i, r := range reservas {
		resp[i] = *reservaToResponse(&r)
	}
	return resp, nil
}

func (s *reservaService) Obtener(ctx context.Context, id uuid.UUID) (*dto.ReservaResponse, error) {
	reserva, err := s.findReserva(ctx, id)
	if err != nil {
		return nil, err
	}
	return reservaToResponse(reserva), nil
}

func (s *reservaService) CambiarEstado(ctx context.Context, id uuid.UUID, estado string) (*dto.ReservaResponse, error) {
	if !model.EstadoReservaValido(estado) {
		return nil, apierror.Validation(fmt.Sprintf("Estado inválido: %s", estado))
	}
	reserva, err := s.findReserva(ctx, id)
	if err != nil {
		return nil, err
	}
	reserva.Estado = estado
	if err := s.repo.Update(ctx, reserva); err != nil {
		return nil, apierror.Internal(err)
	}

	s.notifier.Publish(ctx, "estado_reserva_actualizado", map[string]any{
		"reserva_id": reserva.ID.String(),
		"estado":     estado,
	})
	return reservaToResponse(reserva), nil
}

// Actualizar applies the allow-listed subset present in the body. An estado
// outside the enum is skipped rather than rejected, matching the partial
// order update.
func (s *reservaService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarReservaRequest) (*dto.ReservaResponse, error) {
	reserva, err := s.findReserva(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Estado != nil && model.EstadoReservaValido(*req.Estado) {
		reserva.Estado = *req.Estado
	}
	if req.MesaAsignada != nil {
		reserva.MesaAsignada = req.MesaAsignada
	}
	if req.ZonaMesa != nil {
		reserva.ZonaMesa = req.ZonaMesa
	}
	if req.NotasEspeciales != nil {
		reserva.NotasEspeciales = req.NotasEspeciales
	}
	if req.NombreReserva != nil {
		reserva.NombreReserva = *req.NombreReserva
	}
	if req.EmailReserva != nil {
		reserva.EmailReserva = req.EmailReserva
	}
	if req.TelefonoReserva != nil {
		reserva.TelefonoReserva = req.TelefonoReserva
	}
	if req.NumeroPersonas != nil {
		reserva.NumeroPersonas = *req.NumeroPersonas
	}
	if req.TotalReserva != nil {
		reserva.TotalReserva = *req.TotalReserva
	}
	if req.MetodoPago != nil {
		reserva.MetodoPago = req.MetodoPago
	}
	if req.Fecha != nil {
		fecha, err := parseFecha(*req.Fecha)
		if err != nil {
			return nil, err
		}
		reserva.Fecha = fecha
	}
	if req.Hora != nil {
		hora, err := parseHora(*req.Hora)
		if err != nil {
			return nil, err
		}
		reserva.Hora = hora
	}

	if err := s.repo.Update(ctx, reserva); err != nil {
		return nil, apierror.Internal(err)
	}

	resp := reservaToResponse(reserva)
	s.notifier.Publish(ctx, "reserva_actualizada", resp)
	return resp, nil
}

func (s *reservaService) AsignarMesa(ctx context.Context, id uuid.UUID, req dto.AsignarMesaRequest) (*dto.ReservaResponse, error) {
	reserva, err := s.findReserva(ctx, id)
	if err != nil {
		return nil, err
	}

	mesa := req.MesaAsignada
	reserva.MesaAsignada = &mesa
	if req.ZonaMesa != nil {
		reserva.ZonaMesa = req.ZonaMesa
	}
	if err := s.repo.Update(ctx, reserva); err != nil {
		return nil, apierror.Internal(err)
	}

	s.notifier.Publish(ctx, "mesa_asignada", map[string]any{
		"reserva_id": reserva.ID.String(),
		"mesa":       reserva.MesaAsignada,
		"zona":       reserva.ZonaMesa,
	})
	return reservaToResponse(reserva), nil
}

func (s *reservaService) Eliminar(ctx context.Context, id uuid.UUID) error {
	reserva, err := s.findReserva(ctx, id)
	if err != nil {
		return err
	}
	reserva.Estado = "cancelada"
	if err := s.repo.Update(ctx, reserva); err != nil {
		return apierror.Internal(err)
	}

	s.notifier.Publish(ctx, "reserva_eliminada", map[string]any{
		"reserva_id": reserva.ID.String(),
	})
	return nil
}

func (s *reservaService) findReserva(ctx context.Context, id uuid.UUID) (*model.Reserva, error) {
	reserva, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Reserva no encontrada")
		}
		return nil, apierror.Internal(err)
	}
	return reserva, nil
}

func reservaToResponse(r *model.Reserva) *dto.ReservaResponse {
	return &dto.ReservaResponse{
		ID:              r.ID.String(),
		UsuarioID:       r.UsuarioID.String(),
		RestauranteID:   r.RestauranteID,
		Fecha:           r.Fecha.Format(formatoFecha),
		Hora:            r.Hora,
		NumeroPersonas:  r.NumeroPersonas,
		NombreReserva:   r.NombreReserva,
		EmailReserva:    r.EmailReserva,
		TelefonoReserva: r.TelefonoReserva,
		NotasEspeciales: r.NotasEspeciales,
		ZonaMesa:        r.ZonaMesa,
		MesaAsignada:    r.MesaAsignada,
		Estado:          r.Estado,
		MetodoPago:      r.MetodoPago,
		TotalReserva:    r.TotalReserva,
		CreatedAt:       r.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
