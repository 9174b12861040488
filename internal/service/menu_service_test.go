package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/jsaerys/boodfood/internal/apierror"
	"github.com/jsaerys/boodfood/internal/dto"
	"github.com/jsaerys/boodfood/internal/model"
	"github.com/jsaerys/boodfood/internal/repository"
	"github.com/jsaerys/boodfood/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubMenuRepo struct {
	items map[uuid.UUID]*model.MenuItem
}

func newStubMenuRepo() *stubMenuRepo {
	return &stubMenuRepo{items: make(map[uuid.UUID]*model.MenuItem)}
}

func (r *stubMenuRepo) Create(_ context.Context, item *model.MenuItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	r.items[item.ID] = item
	return nil
}

func (r *stubMenuRepo) FindByID(_ context.Context, id uuid.UUID) (*model.MenuItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (r *stubMenuRepo) List(_ context.Context) ([]model.MenuItem, error) {
	result := make([]model.MenuItem, 0, len(r.items))
	for _, it := range r.items {
		result = append(result, *it)
	}
	return result, nil
}

func (r *stubMenuRepo) Update(_ context.Context, item *model.MenuItem) error {
	r.items[item.ID] = item
	return nil
}

func (r *stubMenuRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

var _ repository.MenuRepository = (*stubMenuRepo)(nil)

func TestCrearMenuItemDefaults(t *testing.T) {
	repo := newStubMenuRepo()
	svc := service.NewMenuService(repo)

	precio := decimal.NewFromFloat(1250.50)
	resp, err := svc.Crear(context.Background(), dto.CrearMenuItemRequest{
		Nombre: "Milanesa napolitana", Precio: &precio,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.RestauranteID)
	assert.True(t, resp.Disponible)
	assert.Nil(t, resp.CategoriaID)
	assert.Equal(t, "1250.5", resp.Precio.String())
}

func TestCrearMenuItemCategoriaInvalida(t *testing.T) {
	repo := newStubMenuRepo()
	svc := service.NewMenuService(repo)

	precio := decimal.NewFromInt(100)
	mala := "no-uuid"
	_, err := svc.Crear(context.Background(), dto.CrearMenuItemRequest{
		Nombre: "Plato", Precio: &precio, CategoriaID: &mala,
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apierror.Status(err))
}

func TestActualizarMenuItemParcial(t *testing.T) {
	repo := newStubMenuRepo()
	svc := service.NewMenuService(repo)

	precio := decimal.NewFromInt(900)
	creado, err := svc.Crear(context.Background(), dto.CrearMenuItemRequest{
		Nombre: "Empanada", Precio: &precio, Descripcion: "de carne",
	})
	require.NoError(t, err)

	nuevoPrecio := decimal.NewFromInt(1100)
	noDisponible := false
	resp, err := svc.Actualizar(context.Background(), uuid.MustParse(creado.ID), dto.ActualizarMenuItemRequest{
		Precio: &nuevoPrecio, Disponible: &noDisponible,
	})
	require.NoError(t, err)
	assert.Equal(t, "1100", resp.Precio.String())
	assert.False(t, resp.Disponible)
	assert.Equal(t, "de carne", resp.Descripcion, "campos ausentes no cambian")
}

func TestEliminarMenuItemInexistente(t *testing.T) {
	repo := newStubMenuRepo()
	svc := service.NewMenuService(repo)

	err := svc.Eliminar(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apierror.Status(err))
}
