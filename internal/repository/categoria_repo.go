package repository

import (
	"context"

	"github.com/jsaerys/boodfood/internal/model"

	"gorm.io/gorm"
)

// CategoriaRepository only reads: categories are managed outside this surface.
type CategoriaRepository interface {
	List(ctx context.Context) ([]model.Categoria, error)
}

type categoriaRepo struct{ db *gorm.DB }

func NewCategoriaRepository(db *gorm.DB) CategoriaRepository { return &categoriaRepo{db: db} }

func (r *categoriaRepo) List(ctx context.Context) ([]model.Categoria, error) {
	var categorias []model.Categoria
	err := r.db.WithContext(ctx).Order("nombre ASC").Find(&categorias).Error
	return categorias, err
}
