package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/autoparts-api/internal/application/analytics"
	"github.com/jhoicas/autoparts-api/internal/application/auth"
	"github.com/jhoicas/autoparts-api/internal/application/finance"
	"github.com/jhoicas/autoparts-api/internal/application/hr"
	"github.com/jhoicas/autoparts-api/internal/application/inventory"
	"github.com/jhoicas/autoparts-api/internal/application/logistics"
	"github.com/jhoicas/autoparts-api/internal/application/sales"
	"github.com/jhoicas/autoparts-api/internal/domain/access"
	"github.com/jhoicas/autoparts-api/internal/infrastructure/events"
	infrapdf "github.com/jhoicas/autoparts-api/internal/infrastructure/pdf"
	"github.com/jhoicas/autoparts-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/autoparts-api/internal/infrastructure/redis"
	"github.com/jhoicas/autoparts-api/internal/infrastructure/telemetry"
	httpRouter "github.com/jhoicas/autoparts-api/internal/interfaces/http"
	"github.com/jhoicas/autoparts-api/pkg/config"
	"github.com/jhoicas/autoparts-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
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

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, log); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}

	// Trazas: solo si hay collector Jaeger configurado; sin él otel queda en no-op.
	if cfg.Telemetry.JaegerEndpoint != "" {
		tp, err := telemetry.InitTracer(ctx, cfg.App.Name, cfg.Telemetry.JaegerEndpoint)
		if err != nil {
			log.Fatal().Err(err).Msg("inicializar trazas")
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tp.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("cerrar trazas")
			}
		}()
	}

	// Números de documento: contador diario en Redis si está configurado, si no secuencias PostgreSQL.
	var numbers sales.NumberGenerator = postgres.NewSequenceNumberer(pool)
	if cfg.Redis.Enabled() {
		rdb, err := infraredis.NewClient(cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer rdb.Close()
		numbers = infraredis.NewNumberer(rdb)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("numeración de documentos en Redis")
	}

	var publisher sales.EventPublisher = events.NewLogPublisher(log)
	if cfg.Kafka.Enabled() {
		publisher = events.NewKafkaPublisher(cfg.Kafka, log)
		log.Info().Strs("brokers", cfg.Kafka.Brokers).Str("topic", cfg.Kafka.Topic).Msg("eventos de dominio en Kafka")
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Error().Err(err).Msg("cerrar publicador de eventos")
		}
	}()

	userRepo := postgres.NewUserRepository(pool)
	vehicleRepo := postgres.NewVehicleRepository(pool)
	containerRepo := postgres.NewContainerRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	propertyRepo := postgres.NewPropertyRepository(pool)
	txnRepo := postgres.NewTransactionRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	orderUC := sales.NewOrderUseCase(
		txRunner, orderRepo, numbers, publisher,
		telemetry.SalesMetrics{}, infrapdf.NewOrderRenderer(cfg.App.Name), log,
	)
	reportUC := analytics.NewReportUseCase(analytics.Repos{
		Analytics:  analyticsRepo,
		Orders:     orderRepo,
		Inventory:  inventoryRepo,
		Containers: containerRepo,
		Vehicles:   vehicleRepo,
		Expenses:   expenseRepo,
	}, cfg.Business.ReportCurrency)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigin,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Auto Parts API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	if cfg.Telemetry.MetricsEnabled {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		VehicleUC:     logistics.NewVehicleUseCase(vehicleRepo, containerRepo, inventoryRepo),
		ContainerUC:   logistics.NewContainerUseCase(containerRepo, vehicleRepo, inventoryRepo),
		InventoryUC:   inventory.NewItemUseCase(inventoryRepo, vehicleRepo),
		StockReportUC: inventory.NewStockReportUseCase(inventoryRepo, cfg.Business.LowStockThreshold),
		CustomerUC:    sales.NewCustomerUseCase(customerRepo, orderRepo),
		OrderUC:       orderUC,
		EmployeeUC:    hr.NewEmployeeUseCase(employeeRepo, expenseRepo),
		PropertyUC:    finance.NewPropertyUseCase(propertyRepo, txnRepo),
		TransactionUC: finance.NewTransactionUseCase(txnRepo, numbers, log),
		ReportUC:      reportUC,
		Policy:        access.Default(),
		JWTSecret:     cfg.JWT.Secret,
		Log:           log,
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
