package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jsaerys/boodfood/internal/apierror"
	"github.com/jsaerys/boodfood/internal/dto"
	"github.com/jsaerys/boodfood/internal/model"
	"github.com/jsaerys/boodfood/internal/notifier"
	"github.com/jsaerys/boodfood/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PedidoService interface {
	Listar(ctx context.Context, filter dto.PedidoFilter) ([]dto.PedidoResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.PedidoResponse, error)
	CambiarEstado(ctx context.Context, id uuid.UUID, estado string) error
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarPedidoRequest) (*dto.PedidoResponse, error)
}

type pedidoService struct {
	repo     repository.PedidoRepository
	notifier notifier.Notifier
}

func NewPedidoService(repo repository.PedidoRepository, n notifier.Notifier) PedidoService {
	return &pedidoService{repo: repo, notifier: n}
}

func (s *pedidoService) Listar(ctx context.Context, filter dto.PedidoFilter) ([]dto.PedidoResponse, error) {
	pedidos, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	resp := make([]dto.PedidoResponse, len(pedidos))
	for i, p := range pedidos {
		resp[i] = *pedidoToResponse(&p)
	}
	return resp, nil
}

func (s *pedidoService) Obtener(ctx context.Context, id uuid.UUID) (*dto.PedidoResponse, error) {
	pedido, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Pedido no encontrado")
		}
		return nil, apierror.Internal(err)
	}
	return pedidoToResponse(pedido), nil
}

func (s *pedidoService) CambiarEstado(ctx context.Context, id uuid.UUID, estado string) error {
	if !model.EstadoPedidoValido(estado) {
		return apierror.Validation(fmt.Sprintf("Estado inválido: %s", estado))
	}
	pedido, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Pedido no encontrado")
		}
		return apierror.Internal(err)
	}
	pedido.Estado = estado
	if err := s.repo.Update(ctx, pedido); err != nil {
		return apierror.Internal(err)
	}

	s.notifier.Publish(ctx, "estado_pedido_actualizado", map[string]any{
		"pedido_id": pedido.ID.String(),
		"estado":    estado,
	})
	return nil
}

// Actualizar applies a partial update. An estado outside the enum is skipped,
// not rejected: only recognized, valid fields take effect.
func (s *pedidoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarPedidoRequest) (*dto.PedidoResponse, error) {
	pedido, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Pedido no encontrado")
		}
		return nil, apierror.Internal(err)
	}

	if req.Estado != nil && model.EstadoPedidoValido(*req.Estado) {
		pedido.Estado = *req.Estado
	}
	if req.MesaID != nil {
		if *req.MesaID == "" {
			pedido.MesaID = nil
		} else {
			mesaID, err := uuid.Parse(*req.MesaID)
			if err != nil {
				return nil, apierror.Validation("mesa_id inválido")
			}
			pedido.MesaID = &mesaID
		}
	}

	if err := s.repo.Update(ctx, pedido); err != nil {
		return nil, apierror.Internal(err)
	}
	return pedidoToResponse(pedido), nil
}

func pedidoToResponse(p *model.Pedido) *dto.PedidoResponse {
	var mesaID *string
	if p.MesaID != nil {
		s := p.MesaID.String()
		mesaID = &s
	}
	return &dto.PedidoResponse{
		ID:          p.ID.String(),
		Tipo:        p.Tipo,
		Estado:      p.Estado,
		MesaID:      mesaID,
		FechaPedido: p.FechaPedido.Format("2006-01-02T15:04:05Z"),
	}
}
