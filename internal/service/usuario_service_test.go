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
	"golang.org/x/crypto/bcrypt"
)

func TestCrearUsuario(t *testing.T) {
	repo := newStubUsuarioRepo()
	svc := service.NewUsuarioService(repo)

	resp, err := svc.Crear(context.Background(), dto.CrearUsuarioRequest{
		Nombre: "Ana", Apellido: "García", Email: "ana@example.com", Rol: "mesero",
	})

	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", resp.Email)
	assert.Equal(t, "mesero", resp.Rol)

	// The stored hash must verify against the fixed temporary password.
	stored, err := repo.FindByEmail(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password123")))
}

func TestCrearUsuarioRolPorDefecto(t *testing.T) {
	repo := newStubUsuarioRepo()
	svc := service.NewUsuarioService(repo)

	resp, err := svc.Crear(context.Background(), dto.CrearUsuarioRequest{
		Nombre: "Beto", Email: "beto@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "cliente", resp.Rol)
}

func TestCrearUsuarioEmailDuplicado(t *testing.T) {
	repo := newStubUsuarioRepo()
	svc := service.NewUsuarioService(repo)

	_, err := svc.Crear(context.Background(), dto.CrearUsuarioRequest{Nombre: "Ana", Email: "ana@example.com"})
	require.NoError(t, err)

	_, err = svc.Crear(context.Background(), dto.CrearUsuarioRequest{Nombre: "Otra Ana", Email: "ana@example.com"})
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apierror.Status(err))
}

func TestEliminarPropiaCuenta(t *testing.T) {
	repo := newStubUsuarioRepo()
	svc := service.NewUsuarioService(repo)

	resp, err := svc.Crear(context.Background(), dto.CrearUsuarioRequest{
		Nombre: "Admin", Email: "admin@example.com", Rol: "admin",
	})
	require.NoError(t, err)
	id := uuid.MustParse(resp.ID)

	err = svc.Eliminar(context.Background(), id, id)
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, apierror.Status(err))

	// The account must still exist.
	_, err = repo.FindByID(context.Background(), id)
	assert.NoError(t, err)
}

func TestEliminarOtroUsuario(t *testing.T) {
	repo := newStubUsuarioRepo()
	svc := service.NewUsuarioService(repo)

	admin, err := svc.Crear(context.Background(), dto.CrearUsuarioRequest{Nombre: "Admin", Email: "admin@example.com", Rol: "admin"})
	require.NoError(t, err)
	otro, err := svc.Crear(context.Background(), dto.CrearUsuarioRequest{Nombre: "Otro", Email: "otro@example.com"})
	require.NoError(t, err)

	err = svc.Eliminar(context.Background(), uuid.MustParse(admin.ID), uuid.MustParse(otro.ID))
	require.NoError(t, err)

	lista, err := svc.Listar(context.Background())
	require.NoError(t, err)
	assert.Len(t, lista, 1)
}

func TestCambiarRol(t *testing.T) {
	repo := newStubUsuarioRepo()
	svc := service.NewUsuarioService(repo)

	resp, err := svc.Crear(context.Background(), dto.CrearUsuarioRequest{Nombre: "Ana", Email: "ana@example.com"})
	require.NoError(t, err)

	actualizado, err := svc.CambiarRol(context.Background(), uuid.MustParse(resp.ID), "cocinero")
	require.NoError(t, err)
	assert.Equal(t, "cocinero", actualizado.Rol)
}

func TestCambiarRolUsuarioInexistente(t *testing.T) {
	repo := newStubUsuarioRepo()
	svc := service.NewUsuarioService(repo)

	_, err := svc.CambiarRol(context.Background(), uuid.New(), "admin")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apierror.Status(err))
}
