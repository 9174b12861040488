package ws

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubConteoDeClientes(t *testing.T) {
	h := NewHub()
	go h.Run()

	assert.Equal(t, 0, h.ClientCount())

	c := &client{hub: h, send: make(chan []byte, 1)}
	h.register <- c
	require.Eventually(t, func() bool { return h.ClientCount() == 1 },
		time.Second, 5*time.Millisecond)

	h.Broadcast <- []byte(`{"evento":"nueva_reserva"}`)
	select {
	case msg := <-c.send:
		assert.JSONEq(t, `{"evento":"nueva_reserva"}`, string(msg))
	case <-time.After(time.Second):
		t.Fatal("el cliente no recibió el broadcast")
	}

	h.unregister <- c
	require.Eventually(t, func() bool { return h.ClientCount() == 0 },
		time.Second, 5*time.Millisecond)
}

func TestHubDesconectaConsumidorLento(t *testing.T) {
	h := NewHub()
	go h.Run()

	// A full send buffer marks the client as a slow consumer; the next
	// broadcast drops it instead of blocking the hub.
	c := &client{hub: h, send: make(chan []byte)}
	h.register <- c
	require.Eventually(t, func() bool { return h.ClientCount() == 1 },
		time.Second, 5*time.Millisecond)

	h.Broadcast <- []byte("x")
	require.Eventually(t, func() bool { return h.ClientCount() == 0 },
		time.Second, 5*time.Millisecond)
}
