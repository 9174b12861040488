package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/jsaerys/boodfood/internal/apierror"
	"github.com/jsaerys/boodfood/internal/config"
	"github.com/jsaerys/boodfood/internal/dto"
	"github.com/jsaerys/boodfood/internal/model"
	"github.com/jsaerys/boodfood/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func authFixture(t *testing.T) (*stubUsuarioRepo, service.AuthService, *model.Usuario) {
	t.Helper()
	repo := newStubUsuarioRepo()
	cfg := &config.Config{JWTSecret: "secreto-de-prueba", JWTExpirationHours: 8}
	svc := service.NewAuthService(repo, cfg)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	u := &model.Usuario{
		ID:           uuid.New(),
		Nombre:       "Admin",
		Email:        "admin@example.com",
		PasswordHash: string(hash),
		Rol:          "admin",
	}
	repo.usuarios[u.ID] = u
	return repo, svc, u
}

func TestLogin(t *testing.T) {
	_, svc, u := authFixture(t)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "admin@example.com", Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 8*3600, resp.ExpiresIn)
	assert.Equal(t, u.Email, resp.User.Email)

	// The token must carry the admin claims the gate checks.
	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(resp.AccessToken, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secreto-de-prueba"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, u.ID.String(), claims["user_id"])
	assert.Equal(t, "admin", claims["rol"])
}

func TestLoginPasswordIncorrecta(t *testing.T) {
	_, svc, _ := authFixture(t)

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "admin@example.com", Password: "otra",
	})
	assert.ErrorContains(t, err, "credenciales inválidas")
	assert.Equal(t, http.StatusUnauthorized, apierror.Status(err))
}

func TestLoginUsuarioInexistente(t *testing.T) {
	_, svc, _ := authFixture(t)

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "nadie@example.com", Password: "password123",
	})
	assert.ErrorContains(t, err, "credenciales inválidas")
	assert.Equal(t, http.StatusUnauthorized, apierror.Status(err))
}
