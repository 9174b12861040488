package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/jsaerys/boodfood/internal/model"
	"github.com/jsaerys/boodfood/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResumen(t *testing.T) {
	mesas := newStubMesaRepo()
	pedidos := newStubPedidoRepo()
	reservas := newStubReservaRepo()
	inventario := newStubInventarioRepo()

	mesas.mesas[uuid.New()] = &model.Mesa{ID: uuid.New(), Numero: 1, Capacidad: 4, Tipo: "regular", Disponible: true}
	seedPedido(pedidos, "mesa", "pendiente")
	reservas.reservas[uuid.New()] = &model.Reserva{
		ID:             uuid.New(),
		UsuarioID:      uuid.New(),
		Fecha:          time.Now().AddDate(0, 0, 2),
		Hora:           "21:00",
		NumeroPersonas: 2,
		Estado:         "confirmada",
	}
	seedItem(inventario, "Bajo", 1, 5)
	seedItem(inventario, "OK", 50, 5)

	svc := service.NewResumenService(mesas, pedidos, reservas, inventario)
	resp, err := svc.Obtener(context.Background())
	require.NoError(t, err)

	assert.Len(t, resp.Mesas, 1)
	assert.Len(t, resp.Pedidos, 1)
	assert.Len(t, resp.Reservas, 1)
	assert.Len(t, resp.InventarioBajo, 1)
}
