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
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type InventarioService interface {
	Listar(ctx context.Context) ([]dto.ItemInventarioResponse, error)
	Crear(ctx context.Context, req dto.CrearItemRequest) (*dto.ItemInventarioResponse, error)
	CrearCompleto(ctx context.Context, req dto.CrearItemCompletoRequest) (*dto.ItemInventarioResponse, error)
	// RegistrarMovimiento appends one immutable ledger row and adjusts the
	// item quantity in the same transaction. A salida that exceeds current
	// stock is rejected with no mutation at all.
	RegistrarMovimiento(ctx context.Context, actorID, itemID uuid.UUID, req dto.RegistrarMovimientoRequest) (*dto.MovimientoResponse, error)
}

type inventarioService struct {
	repo    repository.InventarioRepository
	movRepo repository.InventarioMovimientoRepository
}

func NewInventarioService(repo repository.InventarioRepository, movRepo repository.InventarioMovimientoRepository) InventarioService {
	return &inventarioService{repo: repo, movRepo: movRepo}
}

func (s *inventarioService) Listar(ctx context.Context) ([]dto.ItemInventarioResponse, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	resp := make([]dto.ItemInventarioResponse, len(items))
	for i, it := range items {
		resp[i] = *itemToResponse(&it)
	}
	return resp, nil
}

func (s *inventarioService) Crear(ctx context.Context, req dto.CrearItemRequest) (*dto.ItemInventarioResponse, error) {
	stockMinimo := decimal.Zero
	if req.StockMinimo != nil {
		stockMinimo = *req.StockMinimo
	}
	item := &model.Inventario{
		Nombre:      req.Nombre,
		Cantidad:    req.Cantidad,
		Unidad:      req.Unidad,
		StockMinimo: stockMinimo,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, apierror.Internal(err)
	}
	return itemToResponse(item), nil
}

func (s *inventarioService) CrearCompleto(ctx context.Context, req dto.CrearItemCompletoRequest) (*dto.ItemInventarioResponse, error) {
	precio := decimal.Zero
	if req.PrecioUnitario != nil {
		precio = *req.PrecioUnitario
	}
	stockMinimo := decimal.Zero
	if req.StockMinimo != nil {
		stockMinimo = *req.StockMinimo
	}
	item := &model.Inventario{
		Nombre:         req.Nombre,
		Descripcion:    req.Descripcion,
		Cantidad:       req.Cantidad,
		Unidad:         req.Unidad,
		PrecioUnitario: precio,
		StockMinimo:    stockMinimo,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, apierror.Internal(err)
	}
	return itemToResponse(item), nil
}

func (s *inventarioService) RegistrarMovimiento(ctx context.Context, actorID, itemID uuid.UUID, req dto.RegistrarMovimientoRequest) (*dto.MovimientoResponse, error) {
	if req.Tipo != "entrada" && req.Tipo != "salida" {
		return nil, apierror.Validation(fmt.Sprintf("Tipo de movimiento inválido: %s", req.Tipo))
	}
	if !req.Cantidad.IsPositive() {
		return nil, apierror.Validation("La cantidad debe ser mayor a cero")
	}

	// Existence check before opening the transaction, so an unknown id is a
	// clean 404 rather than a rolled-back tx.
	if _, err := s.repo.FindByID(ctx, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Item de inventario no encontrado")
		}
		return nil, apierror.Internal(err)
	}

	var mov model.InventarioMovimiento
	var nuevaCantidad decimal.Decimal

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		// The row lock serializes concurrent movements against the same item
		// for the whole read-modify-write span.
		item, err := s.repo.FindByIDForUpdateTx(tx, itemID)
		if err != nil {
			return apierror.Internal(err)
		}

		switch req.Tipo {
		case "entrada":
			nuevaCantidad = item.Cantidad.Add(req.Cantidad)
		case "salida":
			if item.Cantidad.LessThan(req.Cantidad) {
				return apierror.Validation("Stock insuficiente para esta salida")
			}
			nuevaCantidad = item.Cantidad.Sub(req.Cantidad)
		}

		mov = model.InventarioMovimiento{
			InventarioID: itemID,
			Tipo:         req.Tipo,
			Cantidad:     req.Cantidad,
			UsuarioID:    actorID,
			Notas:        req.Notas,
		}
		if err := s.movRepo.CreateTx(tx, &mov); err != nil {
			return apierror.Internal(err)
		}
		if err := s.repo.UpdateCantidadTx(tx, itemID, nuevaCantidad); err != nil {
			return apierror.Internal(err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return &dto.MovimientoResponse{
		ID:            mov.ID.String(),
		InventarioID:  itemID.String(),
		Tipo:          mov.Tipo,
		Cantidad:      mov.Cantidad,
		UsuarioID:     actorID.String(),
		Notas:         mov.Notas,
		NuevaCantidad: nuevaCantidad,
		CreatedAt:     mov.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}, nil
}

func itemToResponse(it *model.Inventario) *dto.ItemInventarioResponse {
	return &dto.ItemInventarioResponse{
		ID:             it.ID.String(),
		Nombre:         it.Nombre,
		Descripcion:    it.Descripcion,
		Cantidad:       it.Cantidad,
		Unidad:         it.Unidad,
		PrecioUnitario: it.PrecioUnitario,
		StockMinimo:    it.StockMinimo,
	}
}
