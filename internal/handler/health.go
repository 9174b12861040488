package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/jsaerys/boodfood/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health reports postgres and redis reachability plus the number of live
// WebSocket clients. A degraded event channel still answers 503 even though
// publishing is best-effort, so that operators notice the realtime feed is
// down.
func Health(db *gorm.DB, rdb *redis.Client, hub *ws.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		estadoDB := "ok"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			estadoDB = "error"
		}

		estadoRedis := "ok"
		if rdb == nil || rdb.Ping(ctx).Err() != nil {
			estadoRedis = "error"
		}

		clientesWS := 0
		if hub != nil {
			clientesWS = hub.ClientCount()
		}

		code := http.StatusOK
		if estadoDB != "ok" || estadoRedis != "ok" {
			code = http.StatusServiceUnavailable
		}

		c.JSON(code, gin.H{
			"ok":         code == http.StatusOK,
			"db":         estadoDB,
			"redis":      estadoRedis,
			"ws_clients": clientesWS,
		})
	}
}
