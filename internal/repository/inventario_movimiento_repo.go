package repository

import (
	"context"

	"github.com/jsaerys/boodfood/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InventarioMovimientoRepository is append-only by contract: the ledger has no
// Update or Delete.
type InventarioMovimientoRepository interface {
	CreateTx(tx *gorm.DB, m *model.InventarioMovimiento) error
	ListByItem(ctx context.Context, inventarioID uuid.UUID) ([]model.InventarioMovimiento, error)
}

type inventarioMovimientoRepo struct{ db *gorm.DB }

func NewInventarioMovimientoRepository(db *gorm.DB) InventarioMovimientoRepository {
	return &inventarioMovimientoRepo{db: db}
}

func (r *inventarioMovimientoRepo) CreateTx(tx *gorm.DB, m *model.InventarioMovimiento) error {
	return tx.Create(m).Error
}

func (r *inventarioMovimientoRepo) ListByItem(ctx context.Context, inventarioID uuid.UUID) ([]model.InventarioMovimiento, error) {
	var movimientos []model.InventarioMovimiento
	err := r.db.WithContext(ctx).
		Where("inventario_id = ?", inventarioID).
		Order("created_at DESC").
		Find(&movimientos).Error
	return movimientos, err
}
