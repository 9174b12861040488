package repository

import (
	"context"

	"github.com/jsaerys/boodfood/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MesaRepository interface {
	Create(ctx context.Context, m *model.Mesa) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Mesa, error)
	FindByNumero(ctx context.Context, numero int) (*model.Mesa, error)
	List(ctx context.Context) ([]model.Mesa, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type mesaRepo struct{ db *gorm.DB }

func NewMesaRepository(db *gorm.DB) MesaRepository { return &mesaRepo{db: db} }

func (r *mesaRepo) Create(ctx context.Context, m *model.Mesa) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *mesaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Mesa, error) {
	var m model.Mesa
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	return &m, err
}

func (r *mesaRepo) FindByNumero(ctx context.Context, numero int) (*model.Mesa, error) {
	var m model.Mesa
	err := r.db.WithContext(ctx).Where("numero = ?", numero).First(&m).Error
	return &m, err
}

func (r *mesaRepo) List(ctx context.Context) ([]model.Mesa, error) {
	var mesas []model.Mesa
	err := r.db.WithContext(ctx).Order("numero ASC").Find(&mesas).Error
	return mesas, err
}

func (r *mesaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Mesa{}, "id = ?", id).Error
}
