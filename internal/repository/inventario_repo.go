package repository

import (
	"context"

	"github.com/jsaerys/boodfood/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InventarioRepository interface {
	Create(ctx context.Context, item *model.Inventario) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Inventario, error)
	List(ctx context.Context) ([]model.Inventario, error)
	// ListBajoStock returns items whose quantity is at or below stock_minimo.
	ListBajoStock(ctx context.Context) ([]model.Inventario, error)

	// FindByIDForUpdateTx takes a row lock on the item so that concurrent
	// movements against the same item serialize on the read-modify-write span.
	FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.Inventario, error)
	UpdateCantidadTx(tx *gorm.DB, id uuid.UUID, cantidad decimal.Decimal) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type inventarioRepo struct{ db *gorm.DB }

func NewInventarioRepository(db *gorm.DB) InventarioRepository { return &inventarioRepo{db: db} }

func (r *inventarioRepo) Create(ctx context.Context, item *model.Inventario) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *inventarioRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Inventario, error) {
	var item model.Inventario
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	return &item, err
}

func (r *inventarioRepo) List(ctx context.Context) ([]model.Inventario, error) {
	var items []model.Inventario
	err := r.db.WithContext(ctx).Order("nombre ASC").Find(&items).Error
	return items, err
}

func (r *inventarioRepo) ListBajoStock(ctx context.Context) ([]model.Inventario, error) {
	var items []model.Inventario
	err := r.db.WithContext(ctx).Where("cantidad <= stock_minimo").Find(&items).Error
	return items, err
}

func (r *inventarioRepo) FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.Inventario, error) {
	var item model.Inventario
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&item, "id = ?", id).Error
	return &item, err
}

func (r *inventarioRepo) UpdateCantidadTx(tx *gorm.DB, id uuid.UUID, cantidad decimal.Decimal) error {
	return tx.Model(&model.Inventario{}).Where("id = ?", id).Update("cantidad", cantidad).Error
}

func (r *inventarioRepo) DB() *gorm.DB { return r.db }
