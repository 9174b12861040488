package service_test

import (
	"context"
	"sync"
	"time"

	"github.com/jsaerys/boodfood/internal/dto"
	"github.com/jsaerys/boodfood/internal/model"
	"github.com/jsaerys/boodfood/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── Recording notifier ───────────────────────────────────────────────────────

type publicado struct {
	Evento  string
	Payload any
}

type spyNotifier struct {
	mu     sync.Mutex
	events []publicado
}

func (n *spyNotifier) Publish(_ context.Context, event string, payload any) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, publicado{Evento: event, Payload: payload})
}

func (n *spyNotifier) published() []publicado {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]publicado(nil), n.events...)
}

// ── Mesa repository stub ─────────────────────────────────────────────────────

type stubMesaRepo struct {
	mesas map[uuid.UUID]*model.Mesa
}

func newStubMesaRepo() *stubMesaRepo {
	return &stubMesaRepo{mesas: make(map[uuid.UUID]*model.Mesa)}
}

func (r *stubMesaRepo) Create(_ context.Context, m *model.Mesa) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.mesas[m.ID] = m
	return nil
}

func (r *stubMesaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Mesa, error) {
	m, ok := r.mesas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m, nil
}

func (r *stubMesaRepo) FindByNumero(_ context.Context, numero int) (*model.Mesa, error) {
	for _, m := range r.mesas {
		if m.Numero == numero {
			return m, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubMesaRepo) List(_ context.Context) ([]model.Mesa, error) {
	result := make([]model.Mesa, 0, len(r.mesas))
	for _, m := range r.mesas {
		result = append(result, *m)
	}
	return result, nil
}

func (r *stubMesaRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.mesas, id)
	return nil
}

var _ repository.MesaRepository = (*stubMesaRepo)(nil)

// ── Usuario repository stub ──────────────────────────────────────────────────

type stubUsuarioRepo struct {
	usuarios map[uuid.UUID]*model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{usuarios: make(map[uuid.UUID]*model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUsuarioRepo) FindByEmail(_ context.Context, email string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUsuarioRepo) List(_ context.Context) ([]model.Usuario, error) {
	result := make([]model.Usuario, 0, len(r.usuarios))
	for _, u := range r.usuarios {
		result = append(result, *u)
	}
	return result, nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.usuarios, id)
	return nil
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

// ── Pedido repository stub ───────────────────────────────────────────────────

type stubPedidoRepo struct {
	pedidos map[uuid.UUID]*model.Pedido
}

func newStubPedidoRepo() *stubPedidoRepo {
	return &stubPedidoRepo{pedidos: make(map[uuid.UUID]*model.Pedido)}
}

func (r *stubPedidoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Pedido, error) {
	p, ok := r.pedidos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubPedidoRepo) List(_ context.Context, filter dto.PedidoFilter) ([]model.Pedido, error) {
	var result []model.Pedido
	for _, p := range r.pedidos {
		if filter.Tipo != "" && p.Tipo != filter.Tipo {
			continue
		}
		if filter.Estado != "" && p.Estado != filter.Estado {
			continue
		}
		result = append(result, *p)
	}
	return result, nil
}

func (r *stubPedidoRepo) ListRecientes(_ context.Context, limit int) ([]model.Pedido, error) {
	var result []model.Pedido
	for _, p := range r.pedidos {
		if len(result) == limit {
			break
		}
		result = append(result, *p)
	}
	return result, nil
}

func (r *stubPedidoRepo) Update(_ context.Context, p *model.Pedido) error {
	r.pedidos[p.ID] = p
	return nil
}

var _ repository.PedidoRepository = (*stubPedidoRepo)(nil)

// ── Reserva repository stub ──────────────────────────────────────────────────

type stubReservaRepo struct {
	reservas map[uuid.UUID]*model.Reserva
}

func newStubReservaRepo() *stubReservaRepo {
	return &stubReservaRepo{reservas: make(map[uuid.UUID]*model.Reserva)}
}

func (r *stubReservaRepo) Create(_ context.Context, res *model.Reserva) error {
	if res.ID == uuid.Nil {
		res.ID = uuid.New()
	}
	r.reservas[res.ID] = res
	return nil
}

func (r *stubReservaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Reserva, error) {
	res, ok := r.reservas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return res, nil
}

func (r *stubReservaRepo) List(_ context.Context) ([]model.Reserva, error) {
	result := make([]model.Reserva, 0, len(r.reservas))
	for _, res := range r.reservas {
		result = append(result, *res)
	}
	return result, nil
}

func (r *stubReservaRepo) ListProximas(_ context.Context, desde time.Time, limit int) ([]model.Reserva, error) {
	var result []model.Reserva
	for _, res := range r.reservas {
		if res.Fecha.Before(desde) || len(result) == limit {
			continue
		}
		result = append(result, *res)
	}
	return result, nil
}

func (r *stubReservaRepo) Update(_ context.Context, res *model.Reserva) error {
	r.reservas[res.ID] = res
	return nil
}

var _ repository.ReservaRepository = (*stubReservaRepo)(nil)

// ── Inventario repository stub ───────────────────────────────────────────────

type stubInventarioRepo struct {
	items map[uuid.UUID]*model.Inventario
}

func newStubInventarioRepo() *stubInventarioRepo {
	return &stubInventarioRepo{items: make(map[uuid.UUID]*model.Inventario)}
}

func (r *stubInventarioRepo) Create(_ context.Context, item *model.Inventario) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	r.items[item.ID] = item
	return nil
}

func (r *stubInventarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Inventario, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (r *stubInventarioRepo) List(_ context.Context) ([]model.Inventario, error) {
	result := make([]model.Inventario, 0, len(r.items))
	for _, it := range r.items {
		result = append(result, *it)
	}
	return result, nil
}

func (r *stubInventarioRepo) ListBajoStock(_ context.Context) ([]model.Inventario, error) {
	var result []model.Inventario
	for _, it := range r.items {
		if it.Cantidad.LessThanOrEqual(it.StockMinimo) {
			result = append(result, *it)
		}
	}
	return result, nil
}

func (r *stubInventarioRepo) FindByIDForUpdateTx(_ *gorm.DB, id uuid.UUID) (*model.Inventario, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (r *stubInventarioRepo) UpdateCantidadTx(_ *gorm.DB, id uuid.UUID, cantidad decimal.Decimal) error {
	item, ok := r.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	item.Cantidad = cantidad
	return nil
}

// DB returns nil: runTx invokes the callback directly without a real
// transaction, which is what unit tests want.
func (r *stubInventarioRepo) DB() *gorm.DB { return nil }

var _ repository.InventarioRepository = (*stubInventarioRepo)(nil)

// ── Inventario movimiento repository stub ────────────────────────────────────

type stubMovimientoRepo struct {
	movimientos []model.InventarioMovimiento
	failCreate  error
}

func (r *stubMovimientoRepo) CreateTx(_ *gorm.DB, m *model.InventarioMovimiento) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.movimientos = append(r.movimientos, *m)
	return nil
}

func (r *stubMovimientoRepo) ListByItem(_ context.Context, inventarioID uuid.UUID) ([]model.InventarioMovimiento, error) {
	var result []model.InventarioMovimiento
	for _, m := range r.movimientos {
		if m.InventarioID == inventarioID {
			result = append(result, m)
		}
	}
	return result, nil
}

var _ repository.InventarioMovimientoRepository = (*stubMovimientoRepo)(nil)
