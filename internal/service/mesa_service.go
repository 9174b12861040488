package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jsaerys/boodfood/internal/apierror"
	"github.com/jsaerys/boodfood/internal/dto"
	"github.com/jsaerys/boodfood/internal/model"
	"github.com/jsaerys/boodfood/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MesaService interface {
	Listar(ctx context.Context) ([]dto.MesaResponse, error)
	Crear(ctx context.Context, req dto.CrearMesaRequest) (*dto.MesaResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type mesaService struct {
	repo repository.MesaRepository
}

func NewMesaService(repo repository.MesaRepository) MesaService {
	return &mesaService{repo: repo}
}

func (s *mesaService) Listar(ctx context.Context) ([]dto.MesaResponse, error) {
	mesas, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	resp := make([]dto.MesaResponse, len(mesas))
	for i, m := range mesas {
		resp[i] = *mesaToResponse(&m)
	}
	return resp, nil
}

func (s *mesaService) Crear(ctx context.Context, req dto.CrearMesaRequest) (*dto.MesaResponse, error) {
	if _, err := s.repo.FindByNumero(ctx, req.Numero); err == nil {
		return nil, apierror.Conflict(fmt.Sprintf("Ya existe una mesa con el número %d", req.Numero))
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.Internal(err)
	}

	mesa := &model.Mesa{
		Numero:     req.Numero,
		Capacidad:  req.Capacidad,
		Tipo:       req.Tipo,
		Disponible: true,
	}
	if err := s.repo.Create(ctx, mesa); err != nil {
		return nil, apierror.Internal(err)
	}
	return mesaToResponse(mesa), nil
}

func (s *mesaService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Mesa no encontrada")
		}
		return apierror.Internal(err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apierror.Internal(err)
	}
	return nil
}

func mesaToResponse(m *model.Mesa) *dto.MesaResponse {
	return &dto.MesaResponse{
		ID:         m.ID.String(),
		Numero:     m.Numero,
		Capacidad:  m.Capacidad,
		Tipo:       m.Tipo,
		Disponible: m.Disponible,
	}
}
