package router

import (
	"time"

	"github.com/jsaerys/boodfood/internal/config"
	"github.com/jsaerys/boodfood/internal/handler"
	"github.com/jsaerys/boodfood/internal/metrics"
	"github.com/jsaerys/boodfood/internal/middleware"
	"github.com/jsaerys/boodfood/internal/notifier"
	"github.com/jsaerys/boodfood/internal/repository"
	"github.com/jsaerys/boodfood/internal/service"
	"github.com/jsaerys/boodfood/internal/upload"
	"github.com/jsaerys/boodfood/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, hub *ws.Hub) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP
	r.Use(metrics.Middleware())

	// ── Infrastructure ───────────────────────────────────────────────────────
	var notif notifier.Notifier = notifier.Noop{}
	if rdb != nil {
		notif = notifier.NewRedis(rdb, cfg.EventChannel)
	}
	uploader := upload.NewLocalUploader(cfg.UploadDir, cfg.UploadBaseURL)

	// ── Repositories ─────────────────────────────────────────────────────────
	mesaRepo := repository.NewMesaRepository(db)
	usuarioRepo := repository.NewUsuarioRepository(db)
	pedidoRepo := repository.NewPedidoRepository(db)
	reservaRepo := repository.NewReservaRepository(db)
	inventarioRepo := repository.NewInventarioRepository(db)
	movimientoRepo := repository.NewInventarioMovimientoRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	categoriaRepo := repository.NewCategoriaRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	mesaSvc := service.NewMesaService(mesaRepo)
	usuarioSvc := service.NewUsuarioService(usuarioRepo)
	pedidoSvc := service.NewPedidoService(pedidoRepo, notif)
	reservaSvc := service.NewReservaService(reservaRepo, notif)
	inventarioSvc := service.NewInventarioService(inventarioRepo, movimientoRepo)
	menuSvc := service.NewMenuService(menuRepo)
	categoriaSvc := service.NewCategoriaService(categoriaRepo)
	resumenSvc := service.NewResumenService(mesaRepo, pedidoRepo, reservaRepo, inventarioRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	mesasH := handler.NewMesasHandler(mesaSvc)
	usuariosH := handler.NewUsuariosHandler(usuarioSvc)
	pedidosH := handler.NewPedidosHandler(pedidoSvc)
	reservasH := handler.NewReservasHandler(reservaSvc)
	inventarioH := handler.NewInventarioHandler(inventarioSvc)
	menuH := handler.NewMenuHandler(menuSvc, categoriaSvc, uploader)
	adminH := handler.NewAdminHandler(resumenSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb, hub))
	r.GET("/metrics", metrics.Handler())
	r.POST("/auth/login", middleware.LoginRateLimiter(), authH.Login)
	r.GET("/ws", func(c *gin.Context) { hub.Upgrade(c.Writer, c.Request) })
	r.Static("/static/uploads/menu", cfg.UploadDir)

	// Everything under /api requires an admin session
	api := r.Group("/api", middleware.AdminGate(cfg.JWTSecret))
	{
		api.GET("/mesas", mesasH.Listar)
		api.POST("/mesas", mesasH.Crear)
		api.DELETE("/mesas/:id", mesasH.Eliminar)

		api.POST("/usuarios/crear", usuariosH.Crear)
		api.GET("/usuarios/lista", usuariosH.Listar)
		api.PUT("/usuarios/:id/rol", usuariosH.CambiarRol)
		api.DELETE("/usuarios/:id/delete", usuariosH.Eliminar)

		api.GET("/pedidos", pedidosH.Listar)
		api.GET("/pedidos/:id", pedidosH.Obtener)
		api.POST("/pedidos/:id/estado", pedidosH.CambiarEstado)
		api.PUT("/pedido/:id/actualizar", pedidosH.Actualizar)

		api.GET("/reservas", reservasH.Listar)
		api.POST("/reservas", reservasH.Crear)
		api.POST("/reservas/crear", reservasH.CrearAdmin)
		api.GET("/reservas/:id", reservasH.Obtener)
		api.PUT("/reservas/:id/estado", reservasH.CambiarEstado)
		api.PUT("/reserva/:id/actualizar", reservasH.Actualizar)
		api.PUT("/reservas/:id/asignar-mesa", reservasH.AsignarMesa)
		api.DELETE("/reservas/:id", reservasH.Eliminar)

		api.GET("/inventario", inventarioH.Listar)
		api.POST("/inventario", inventarioH.Crear)
		api.POST("/inventario/crear", inventarioH.CrearCompleto)
		api.GET("/inventario/lista", inventarioH.Listar)
		api.POST("/inventario/:id/movimiento", inventarioH.RegistrarMovimiento)

		api.GET("/menu/items", menuH.ListarItems)
		api.POST("/menu/crear", menuH.Crear)
		api.PUT("/menu/:id/actualizar", menuH.Actualizar)
		api.DELETE("/menu/:id", menuH.Eliminar)
		api.POST("/menu/subir-imagen", menuH.SubirImagen)
		api.GET("/categorias/lista", menuH.ListarCategorias)

		api.GET("/admin/resumen", adminH.Resumen)
	}

	return r
}
