package service

import (
	"context"

	"github.com/jsaerys/boodfood/internal/apierror"
	"github.com/jsaerys/boodfood/internal/dto"
	"github.com/jsaerys/boodfood/internal/repository"
)

type CategoriaService interface {
	Listar(ctx context.Context) ([]dto.CategoriaResponse, error)
}

type categoriaService struct {
	repo repository.CategoriaRepository
}

func NewCategoriaService(repo repository.CategoriaRepository) CategoriaService {
	return &categoriaService{repo: repo}
}

func (s *categoriaService) Listar(ctx context.Context) ([]dto.CategoriaResponse, error) {
	categorias, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	resp := make([]dto.CategoriaResponse, len(categorias))
	for i, c := range categorias {
		resp[i] = dto.CategoriaResponse{
			ID:          c.ID.String(),
			Nombre:      c.Nombre,
			Descripcion: c.Descripcion,
		}
	}
	return resp, nil
}
