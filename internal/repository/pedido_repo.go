package repository

import (
	"context"

	"github.com/jsaerys/boodfood/internal/dto"
	"github.com/jsaerys/boodfood/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PedidoRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Pedido, error)
	// List returns orders newest-first, optionally filtered by tipo and estado.
	List(ctx context.Context, filter dto.PedidoFilter) ([]model.Pedido, error)
	ListRecientes(ctx context.Context, limit int) ([]model.Pedido, error)
	Update(ctx context.Context, p *model.Pedido) error
}

type pedidoRepo struct{ db *gorm.DB }

func NewPedidoRepository(db *gorm.DB) PedidoRepository { return &pedidoRepo{db: db} }

func (r *pedidoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Pedido, error) {
	var p model.Pedido
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *pedidoRepo) List(ctx context.Context, filter dto.PedidoFilter) ([]model.Pedido, error) {
	q := r.db.WithContext(ctx).Model(&model.Pedido{}).Order("fecha_pedido DESC")
	if filter.Tipo != "" {
		q = q.Where("tipo = ?", filter.Tipo)
	}
	if filter.Estado != "" {
		q = q.Where("estado = ?", filter.Estado)
	}
	var pedidos []model.Pedido
	err := q.Find(&pedidos).Error
	return pedidos, err
}

func (r *pedidoRepo) ListRecientes(ctx context.Context, limit int) ([]model.Pedido, error) {
	var pedidos []model.Pedido
	err := r.db.WithContext(ctx).Order("fecha_pedido DESC").Limit(limit).Find(&pedidos).Error
	return pedidos, err
}

func (r *pedidoRepo) Update(ctx context.Context, p *model.Pedido) error {
	return r.db.WithContext(ctx).Save(p).Error
}
