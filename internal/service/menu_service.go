package service

import (
	"context"
	"errors"

	"github.com/jsaerys/boodfood/internal/apierror"
	"github.com/jsaerys/boodfood/internal/dto"
	"github.com/jsaerys/boodfood/internal/model"
	"github.com/jsaerys/boodfood/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MenuService interface {
	ListarItems(ctx context.Context) ([]dto.MenuItemResponse, error)
	Crear(ctx context.Context, req dto.CrearMenuItemRequest) (*dto.MenuItemResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarMenuItemRequest) (*dto.MenuItemResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type menuService struct {
	repo repository.MenuRepository
}

func NewMenuService(repo repository.MenuRepository) MenuService {
	return &menuService{repo: repo}
}

func (s *menuService) ListarItems(ctx context.Context) ([]dto.MenuItemResponse, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	resp := make([]dto.MenuItemResponse, len(items))
	for i, it := range items {
		resp[i] = *menuItemToResponse(&it)
	}
	return resp, nil
}

func (s *menuService) Crear(ctx context.Context, req dto.CrearMenuItemRequest) (*dto.MenuItemResponse, error) {
	restauranteID := 1
	if req.RestauranteID != nil {
		restauranteID = *req.RestauranteID
	}
	disponible := true
	if req.Disponible != nil {
		disponible = *req.Disponible
	}
	var categoriaID *uuid.UUID
	if req.CategoriaID != nil && *req.CategoriaID != "" {
		parsed, err := uuid.Parse(*req.CategoriaID)
		if err != nil {
			return nil, apierror.Validation("categoria_id inválido")
		}
		categoriaID = &parsed
	}

	item := &model.MenuItem{
		RestauranteID: restauranteID,
		Nombre:        req.Nombre,
		Descripcion:   req.Descripcion,
		Precio:        *req.Precio,
		CategoriaID:   categoriaID,
		ImagenURL:     req.ImagenURL,
		Disponible:    disponible,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, apierror.Internal(err)
	}
	return menuItemToResponse(item), nil
}

func (s *menuService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarMenuItemRequest) (*dto.MenuItemResponse, error) {
	item, err := s.findItem(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Nombre != nil {
		item.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		item.Descripcion = *req.Descripcion
	}
	if req.Precio != nil {
		item.Precio = *req.Precio
	}
	if req.CategoriaID != nil {
		if *req.CategoriaID == "" {
			item.CategoriaID = nil
		} else {
			parsed, err := uuid.Parse(*req.CategoriaID)
			if err != nil {
				return nil, apierror.Validation("categoria_id inválido")
			}
			item.CategoriaID = &parsed
		}
	}
	if req.ImagenURL != nil {
		item.ImagenURL = *req.ImagenURL
	}
	if req.Disponible != nil {
		item.Disponible = *req.Disponible
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, apierror.Internal(err)
	}
	return menuItemToResponse(item), nil
}

func (s *menuService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.findItem(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apierror.Internal(err)
	}
	return nil
}

func (s *menuService) findItem(ctx context.Context, id uuid.UUID) (*model.MenuItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Item de menú no encontrado")
		}
		return nil, apierror.Internal(err)
	}
	return item, nil
}

func menuItemToResponse(it *model.MenuItem) *dto.MenuItemResponse {
	var categoriaID *string
	if it.CategoriaID != nil {
		s := it.CategoriaID.String()
		categoriaID = &s
	}
	return &dto.MenuItemResponse{
		ID:            it.ID.String(),
		RestauranteID: it.RestauranteID,
		Nombre:        it.Nombre,
		Descripcion:   it.Descripcion,
		Precio:        it.Precio,
		CategoriaID:   categoriaID,
		ImagenURL:     it.ImagenURL,
		Disponible:    it.Disponible,
	}
}
