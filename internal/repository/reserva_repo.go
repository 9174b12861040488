package repository

import (
	"context"
	"time"

	"github.com/jsaerys/boodfood/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReservaRepository interface {
	Create(ctx context.Context, res *model.Reserva) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Reserva, error)
	// List returns reservations newest-created-first.
	List(ctx context.Context) ([]model.Reserva, error)
	// ListProximas returns reservations from the given date on, soonest first.
	ListProximas(ctx context.Context, desde time.Time, limit int) ([]model.Reserva, error)
	Update(ctx context.Context, res *model.Reserva) error
}

type reservaRepo struct{ db *gorm.DB }

func NewReservaRepository(db *gorm.DB) ReservaRepository { return &reservaRepo{db: db} }

func (r *reservaRepo) Create(ctx context.Context, res *model.Reserva) error {
	return r.db.WithContext(ctx).Create(res).Error
}

func (r *reservaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Reserva, error) {
	var res model.Reserva
	err := r.db.WithContext(ctx).First(&res, "id = ?", id).Error
	return &res, err
}

func (r *reservaRepo) List(ctx context.Context) ([]model.Reserva, error) {
	var reservas []model.Reserva
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&reservas).Error
	return reservas, err
}

func (r *reservaRepo) ListProximas(ctx context.Context, desde time.Time, limit int) ([]model.Reserva, error) {
	var reservas []model.Reserva
	err := r.db.WithContext(ctx).
		Where("fecha >= ?", desde.Format("2006-01-02")).
		Order("fecha ASC, hora ASC").
		Limit(limit).
		Find(&reservas).Error
	return reservas, err
}

func (r *reservaRepo) Update(ctx context.Context, res *model.Reserva) error {
	return r.db.WithContext(ctx).Save(res).Error
}
