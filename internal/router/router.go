package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/jonathanEDR/gestorappb/internal/chat"
	"github.com/jonathanEDR/gestorappb/internal/config"
	"github.com/jonathanEDR/gestorappb/internal/handler"
	"github.com/jonathanEDR/gestorappb/internal/middleware"
	"github.com/jonathanEDR/gestorappb/internal/repository"
	"github.com/jonathanEDR/gestorappb/internal/service"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
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

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	colaboradorRepo := repository.NewColaboradorRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	cobroRepo := repository.NewCobroRepository(db)
	devolucionRepo := repository.NewDevolucionRepository(db)
	personalRepo := repository.NewPersonalRepository(db)
	gastoRepo := repository.NewGastoRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	productoSvc := service.NewProductoService(productoRepo)
	colaboradorSvc := service.NewColaboradorService(colaboradorRepo, ventaRepo, cobroRepo, personalRepo)
	ventaSvc := service.NewVentaService(ventaRepo, productoRepo, colaboradorRepo, devolucionRepo)
	cobroSvc := service.NewCobroService(cobroRepo, ventaRepo)
	devolucionSvc := service.NewDevolucionService(devolucionRepo, ventaRepo, productoRepo)
	personalSvc := service.NewPersonalService(personalRepo, colaboradorRepo)
	gastoSvc := service.NewGastoService(gastoRepo)

	chatStore := chat.NewRedisStore(rdb, time.Duration(cfg.ChatSessionTTL)*time.Minute)
	chatSvc := chat.NewService(chatStore, productoSvc, colaboradorSvc, ventaSvc, cobroSvc, productoRepo, colaboradorRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	colaboradoresH := handler.NewColaboradoresHandler(colaboradorSvc)
	ventasH := handler.NewVentasHandler(ventaSvc)
	cobrosH := handler.NewCobrosHandler(cobroSvc)
	devolucionesH := handler.NewDevolucionesHandler(devolucionSvc)
	personalH := handler.NewPersonalHandler(personalSvc)
	gastosH := handler.NewGastosHandler(gastoSvc)
	chatH := handler.NewChatHandler(chatSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health)

	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/register", middleware.LoginRateLimiter(), authH.Register)
	}

	v1 := r.Group("/v1", middleware.JWTAuth(cfg.JWTSecret))
	{
		productos := v1.Group("/productos")
		{
			productos.POST("", productosH.Crear)
			productos.GET("", productosH.Listar)
			productos.GET("/:id", productosH.Obtener)
			productos.PUT("/:id", productosH.Actualizar)
			productos.DELETE("/:id", productosH.Eliminar)
		}

		colaboradores := v1.Group("/colaboradores")
		{
			colaboradores.POST("", colaboradoresH.Crear)
			colaboradores.GET("", colaboradoresH.Listar)
			colaboradores.PUT("/:id", colaboradoresH.Actualizar)
			colaboradores.DELETE("/:id", colaboradoresH.Eliminar)
		}

		ventas := v1.Group("/ventas")
		{
			ventas.POST("", ventasH.Registrar)
			ventas.GET("", ventasH.Listar)
			ventas.GET("/filtradas", ventasH.Listar)
			ventas.GET("/reportes/resumen", ventasH.Resumen)
			ventas.GET("/:id", ventasH.Obtener)
			ventas.DELETE("/:id", ventasH.Eliminar)
			ventas.DELETE("/colaborador/:colaboradorId", ventasH.EliminarPorColaborador)
		}

		cobros := v1.Group("/cobros")
		{
			cobros.POST("", cobrosH.Crear)
			cobros.GET("", cobrosH.Listar)
			cobros.GET("/deuda/:ventaId", cobrosH.Deuda)
			cobros.GET("/:id", cobrosH.Obtener)
			cobros.DELETE("/:id", cobrosH.Eliminar)
		}

		devoluciones := v1.Group("/devoluciones")
		{
			devoluciones.POST("", devolucionesH.Crear)
			devoluciones.GET("", devolucionesH.Listar)
			devoluciones.GET("/:id", devolucionesH.Obtener)
			devoluciones.DELETE("/:id", devolucionesH.Eliminar)
		}

		gestion := v1.Group("/gestion-personal")
		{
			gestion.POST("", personalH.CrearGestion)
			gestion.GET("", personalH.ListarGestion)
			gestion.GET("/resumen/:colaboradorId", personalH.ResumenPlanilla)
			gestion.DELETE("/:id", personalH.EliminarGestion)
		}

		pagos := v1.Group("/pagos-realizados")
		{
			pagos.POST("", personalH.CrearPago)
			pagos.GET("", personalH.ListarPagos)
			pagos.GET("/colaborador/:colaboradorId", personalH.ListarPagosPorColaborador)
			pagos.PUT("/:id", personalH.ActualizarPago)
			pagos.DELETE("/:id", personalH.EliminarPago)
		}

		gastos := v1.Group("/gastos")
		{
			gastos.POST("", gastosH.Crear)
			gastos.GET("", gastosH.Listar)
			gastos.DELETE("/:id", gastosH.Eliminar)
		}

		v1.POST("/chat", chatH.Mensaje)
	}

	return r
}
