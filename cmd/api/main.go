package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/ventaplus/ventaplus-api/internal/application/auth"
	"github.com/ventaplus/ventaplus-api/internal/application/cash"
	"github.com/ventaplus/ventaplus-api/internal/application/expenses"
	"github.com/ventaplus/ventaplus-api/internal/application/purchases"
	"github.com/ventaplus/ventaplus-api/internal/application/reports"
	"github.com/ventaplus/ventaplus-api/internal/application/sales"
	"github.com/ventaplus/ventaplus-api/internal/application/usecase"
	infraai "github.com/ventaplus/ventaplus-api/internal/infrastructure/ai"
	infracache "github.com/ventaplus/ventaplus-api/internal/infrastructure/cache"
	infrapdf "github.com/ventaplus/ventaplus-api/internal/infrastructure/pdf"
	"github.com/ventaplus/ventaplus-api/internal/infrastructure/postgres"
	httpRouter "github.com/ventaplus/ventaplus-api/internal/interfaces/http"
	"github.com/ventaplus/ventaplus-api/pkg/config"
	"github.com/ventaplus/ventaplus-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	proveedorRepo := postgres.NewProveedorRepository(pool)
	categoriaRepo := postgres.NewCategoriaRepository(pool)
	ventaRepo := postgres.NewVentaRepository(pool)
	compraRepo := postgres.NewCompraRepository(pool)
	gastoRepo := postgres.NewGastoRepository(pool)
	cajaRepo := postgres.NewCajaRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Caché de dashboard opcional: sin REDIS_ADDR la API funciona completa.
	var dashboardCache reports.Cache
	if cfg.Redis.Addr != "" {
		redisCache := infracache.NewRedisCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := redisCache.Ping(ctx); err != nil {
			log.Warn().Err(err).Msg("Redis no disponible, dashboard sin caché")
		} else {
			dashboardCache = redisCache
			defer redisCache.Close()
		}
	}

	authUC := auth.NewUseCase(usuarioRepo, auth.TokenConfig{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		ExpMinutes: cfg.JWT.Expiration,
	})
	cajaUC := cash.NewUseCase(txRunner, cajaRepo)
	reciboGen := infrapdf.NewMarotoReciboGenerator(cfg.App.Name)
	createVentaUC := sales.NewCreateVentaUseCase(txRunner, cajaUC)
	ventasUC := sales.NewVentasUseCase(ventaRepo, reciboGen)
	compraUC := purchases.NewUseCase(txRunner, compraRepo)
	gastoUC := expenses.NewUseCase(txRunner, cajaUC, gastoRepo)
	productoUC := usecase.NewProductoUseCase(productoRepo)
	clienteUC := usecase.NewClienteUseCase(clienteRepo)
	proveedorUC := usecase.NewProveedorUseCase(proveedorRepo)
	categoriaUC := usecase.NewCategoriaUseCase(categoriaRepo)
	dashboardUC := reports.NewDashboardUseCase(reportRepo, dashboardCache)
	financialUC := reports.NewFinancialUseCase(reportRepo)

	ollamaSvc := infraai.NewOllamaService(cfg.AI.OllamaURL, cfg.AI.OllamaModel)
	aiUC := usecase.NewAIUseCase(ollamaSvc)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 60,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: func() string { return uuid.NewString() },
	}))
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "VentaPlus API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductoUC:  productoUC,
		ClienteUC:   clienteUC,
		ProveedorUC: proveedorUC,
		CategoriaUC: categoriaUC,
		CreateVenta: createVentaUC,
		VentasUC:    ventasUC,
		CompraUC:    compraUC,
		GastoUC:     gastoUC,
		CajaUC:      cajaUC,
		DashboardUC: dashboardUC,
		FinancialUC: financialUC,
		AIUC:        aiUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
