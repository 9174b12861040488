package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/jsaerys/boodfood/internal/apierror"
	"github.com/jsaerys/boodfood/internal/dto"
	"github.com/jsaerys/boodfood/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrearMesa(t *testing.T) {
	repo := newStubMesaRepo()
	svc := service.NewMesaService(repo)

	resp, err := svc.Crear(context.Background(), dto.CrearMesaRequest{
		Numero: 5, Capacidad: 4, Tipo: "regular",
	})

	require.NoError(t, err)
	assert.Equal(t, 5, resp.Numero)
	assert.True(t, resp.Disponible, "una mesa nueva nace disponible")
}

func TestCrearMesaNumeroDuplicado(t *testing.T) {
	repo := newStubMesaRepo()
	svc := service.NewMesaService(repo)

	_, err := svc.Crear(context.Background(), dto.CrearMesaRequest{Numero: 5, Capacidad: 4, Tipo: "regular"})
	require.NoError(t, err)

	_, err = svc.Crear(context.Background(), dto.CrearMesaRequest{Numero: 5, Capacidad: 2, Tipo: "vip"})
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apierror.Status(err))
	assert.Contains(t, apierror.Message(err), "Ya existe una mesa")
}

func TestEliminarMesaInexistente(t *testing.T) {
	repo := newStubMesaRepo()
	svc := service.NewMesaService(repo)

	err := svc.Eliminar(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apierror.Status(err))
}

func TestEliminarMesa(t *testing.T) {
	repo := newStubMesaRepo()
	svc := service.NewMesaService(repo)

	resp, err := svc.Crear(context.Background(), dto.CrearMesaRequest{Numero: 1, Capacidad: 2, Tipo: "regular"})
	require.NoError(t, err)

	require.NoError(t, svc.Eliminar(context.Background(), uuid.MustParse(resp.ID)))

	lista, err := svc.Listar(context.Background())
	require.NoError(t, err)
	assert.Empty(t, lista)
}
