package service

import (
	"context"
	"time"

	"github.com/jsaerys/boodfood/internal/apierror"
	"github.com/jsaerys/boodfood/internal/dto"
	"github.com/jsaerys/boodfood/internal/repository"
)

const (
	resumenPedidos  = 20
	resumenReservas = 10
)

// ResumenService assembles the admin dashboard snapshot from the other
// repositories. Read only.
type ResumenService interface {
	Obtener(ctx context.Context) (*dto.ResumenResponse, error)
}

type resumenService struct {
	mesas      repository.MesaRepository
	pedidos    repository.PedidoRepository
	reservas   repository.ReservaRepository
	inventario repository.InventarioRepository
	now        func() time.Time
}

func NewResumenService(
	mesas repository.MesaRepository,
	pedidos repository.PedidoRepository,
	reservas repository.ReservaRepository,
	inventario repository.InventarioRepository,
) ResumenService {
	return &resumenService{
		mesas:      mesas,
		pedidos:    pedidos,
		reservas:   reservas,
		inventario: inventario,
		now:        time.Now,
	}
}

func (s *resumenService) Obtener(ctx context.Context) (*dto.ResumenResponse, error) {
	mesas, err := s.mesas.List(ctx)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	pedidos, err := s.pedidos.ListRecientes(ctx, resumenPedidos)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	hoy := s.now().Truncate(24 * time.Hour)
	reservas, err := s.reservas.ListProximas(ctx, hoy, resumenReservas)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	bajos, err := s.inventario.ListBajoStock(ctx)
	if err != nil {
		return nil, apierror.Internal(err)
	}

	resp := &dto.ResumenResponse{
		Mesas:          make([]dto.MesaResponse, len(mesas)),
		Pedidos:        make([]dto.PedidoResponse, len(pedidos)),
		Reservas:       make([]dto.ReservaResponse, len(reservas)),
		InventarioBajo: make([]dto.ItemInventarioResponse, len(bajos)),
	}
	for i := range mesas {
		resp.Mesas[i] = *mesaToResponse(&mesas[i])
	}
	for i := range pedidos {
		resp.Pedidos[i] = *pedidoToResponse(&pedidos[i])
	}
	for i := range reservas {
		resp.Reservas[i] = *reservaToResponse(&reservas[i])
	}
	for i := range bajos {
		resp.InventarioBajo[i] = *itemToResponse(&bajos[i])
	}
	return resp, nil
}
