package ws

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Bridge subscribes to the Redis event channel and forwards every message to
// the hub's broadcast. It blocks until ctx is cancelled, so run it in its own
// goroutine. Subscription failures only affect listeners; publishers and the
// HTTP surface keep working.
func Bridge(ctx context.Context, rdb *redis.Client, channel string, hub *Hub) {
	sub := rdb.Subscribe(ctx, channel)
	defer sub.Close()

	ch := sub.Channel()
	log.Info().Str("channel", channel).Msg("ws: puente de eventos iniciado")

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				log.Warn().Str("channel", channel).Msg("ws: suscripcion cerrada")
				return
			}
			hub.Broadcast <- []byte(msg.Payload)
		}
	}
}
