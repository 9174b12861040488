package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jsaerys/boodfood/internal/apierror"
	"github.com/jsaerys/boodfood/internal/dto"
	"github.com/jsaerys/boodfood/internal/model"
	"github.com/jsaerys/boodfood/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// tempPassword is assigned to every admin-created account; the user is
// expected to change it on first login.
const tempPassword = "password123"

type UsuarioService interface {
	Crear(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error)
	CambiarRol(ctx context.Context, id uuid.UUID, rol string) (*dto.UsuarioResponse, error)
	// Eliminar rejects the operation when id equals actorID: an admin can
	// never delete their own account.
	Eliminar(ctx context.Context, actorID, id uuid.UUID) error
	Listar(ctx context.Context) ([]dto.UsuarioResponse, error)
}

type usuarioService struct {
	repo repository.UsuarioRepository
}

func NewUsuarioService(repo repository.UsuarioRepository) UsuarioService {
	return &usuarioService{repo: repo}
}

func (s *usuarioService) Crear(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error) {
	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		return nil, apierror.Conflict(fmt.Sprintf("El email %s ya está registrado", req.Email))
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.Internal(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), 12)
	if err != nil {
		return nil, apierror.Internal(err)
	}

	rol := req.Rol
	if rol == "" {
		rol = "cliente"
	}
	user := &model.Usuario{
		Nombre:       req.Nombre,
		Apellido:     req.Apellido,
		Email:        req.Email,
		PasswordHash: string(hash),
		Rol:          rol,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, apierror.Internal(err)
	}
	return usuarioToResponse(user), nil
}

func (s *usuarioService) CambiarRol(ctx context.Context, id uuid.UUID, rol string) (*dto.UsuarioResponse, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Usuario no encontrado")
		}
		return nil, apierror.Internal(err)
	}
	user.Rol = rol
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, apierror.Internal(err)
	}
	return usuarioToResponse(user), nil
}

func (s *usuarioService) Eliminar(ctx context.Context, actorID, id uuid.UUID) error {
	if actorID == id {
		return apierror.Forbidden("No puedes eliminar tu propia cuenta")
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Usuario no encontrado")
		}
		return apierror.Internal(err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apierror.Internal(err)
	}
	return nil
}

func (s *usuarioService) Listar(ctx context.Context) ([]dto.UsuarioResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	resp := make([]dto.UsuarioResponse, len(users))
	for i, u := range users {
		resp[i] = *usuarioToResponse(&u)
	}
	return resp, nil
}

func usuarioToResponse(u *model.Usuario) *dto.UsuarioResponse {
	return &dto.UsuarioResponse{
		ID:       u.ID.String(),
		Nombre:   u.Nombre,
		Apellido: u.Apellido,
		Email:    u.Email,
		Rol:      u.Rol,
	}
}
