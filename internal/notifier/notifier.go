// Package notifier is the best-effort side channel for state-change events.
// Handlers and services call Publish unconditionally; a publish that cannot
// reach the channel is logged and dropped, never surfaced to the caller.
package notifier

import (
	"context"
	"encoding/json"

	"github.com/jsaerys/boodfood/internal/metrics"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Notifier broadcasts a named event with a small payload to whoever listens.
type Notifier interface {
	Publish(ctx context.Context, event string, payload any)
}

// Evento is the wire envelope published on the channel.
type Evento struct {
	Evento  string `json:"evento"`
	Payload any    `json:"payload"`
}

// ── Noop ─────────────────────────────────────────────────────────────────────

// Noop discards every event. It is the default wiring for tests and for
// deployments without a real-time channel.
type Noop struct{}

func (Noop) Publish(context.Context, string, any) {}

// ── Redis ────────────────────────────────────────────────────────────────────

// Redis publishes events on a Redis pub/sub channel. The websocket bridge
// subscribes to the same channel and fans messages out to connected clients.
type Redis struct {
	rdb     *redis.Client
	channel string
}

func NewRedis(rdb *redis.Client, channel string) *Redis {
	return &Redis{rdb: rdb, channel: channel}
}

func (n *Redis) Publish(ctx context.Context, event string, payload any) {
	data, err := json.Marshal(Evento{Evento: event, Payload: payload})
	if err != nil {
		metrics.EventosPublicados.WithLabelValues(event, "error").Inc()
		log.Warn().Str("evento", event).Err(err).Msg("evento no serializable, descartado")
		return
	}
	if err := n.rdb.Publish(ctx, n.channel, data).Err(); err != nil {
		metrics.EventosPublicados.WithLabelValues(event, "error").Inc()
		log.Warn().Str("evento", event).Err(err).Msg("publicacion de evento fallida, descartado")
		return
	}
	metrics.EventosPublicados.WithLabelValues(event, "ok").Inc()
}
