package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusPorKind(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, Status(Validation("campo requerido")))
	assert.Equal(t, http.StatusUnauthorized, Status(Unauthorized("credenciales inválidas")))
	assert.Equal(t, http.StatusForbidden, Status(Forbidden("no puedes")))
	assert.Equal(t, http.StatusNotFound, Status(NotFound("no existe")))
	assert.Equal(t, http.StatusConflict, Status(Conflict("duplicado")))
	assert.Equal(t, http.StatusInternalServerError, Status(Internal(errors.New("pq: boom"))))
}

func TestStatusErrorNoTipado(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, Status(errors.New("cualquier cosa")))
}

func TestMessageNoFiltraInternos(t *testing.T) {
	err := Internal(errors.New("pq: duplicate key value violates unique constraint"))
	assert.Equal(t, "Error interno del servidor", Message(err))
	// The cause stays reachable for logging.
	assert.Contains(t, err.Error(), "duplicate key")
}

func TestMessageErroresDeCliente(t *testing.T) {
	assert.Equal(t, "no existe", Message(NotFound("no existe")))
	assert.Equal(t, "duplicado", Message(Conflict("duplicado")))
	assert.Equal(t, "credenciales inválidas", Message(Unauthorized("credenciales inválidas")))
}

func TestMessageErrorEnvuelto(t *testing.T) {
	wrapped := fmt.Errorf("contexto extra: %w", NotFound("Reserva no encontrada"))
	assert.Equal(t, http.StatusNotFound, Status(wrapped))
	assert.Equal(t, "Reserva no encontrada", Message(wrapped))
}
