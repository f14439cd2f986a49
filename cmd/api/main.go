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

	"github.com/jcastellr/almacen-api/internal/application/auth"
	"github.com/jcastellr/almacen-api/internal/application/notify"
	"github.com/jcastellr/almacen-api/internal/application/order"
	"github.com/jcastellr/almacen-api/internal/application/purchase"
	"github.com/jcastellr/almacen-api/internal/application/report"
	"github.com/jcastellr/almacen-api/internal/application/stock"
	"github.com/jcastellr/almacen-api/internal/infrastructure/mail"
	infrapdf "github.com/jcastellr/almacen-api/internal/infrastructure/pdf"
	"github.com/jcastellr/almacen-api/internal/infrastructure/postgres"
	infraredis "github.com/jcastellr/almacen-api/internal/infrastructure/redis"
	httpRouter "github.com/jcastellr/almacen-api/internal/interfaces/http"
	"github.com/jcastellr/almacen-api/pkg/config"
	"github.com/jcastellr/almacen-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios sobre el pool (las mutaciones de libros corren sobre el TxRunner)
	itemRepo := postgres.NewItemRepository(pool)
	runningRepo := postgres.NewRunningStockRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	staffRepo := postgres.NewStaffRepository(pool)
	departmentRepo := postgres.NewDepartmentRepository(pool)
	jobRepo := postgres.NewJobRepository(pool)
	recipientRepo := postgres.NewRecipientRepository(pool)
	poRepo := postgres.NewPurchaseOrderRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Cola de alertas de re-orden: worker en background con reintentos SMTP
	sender := mail.NewSMTPSender(cfg.SMTP)
	dispatcher := notify.NewDispatcher(sender, cfg.Stock.NotifyMaxRetries, log)
	defer dispatcher.Stop()
	alerter := notify.NewReorderAlerter(recipientRepo, dispatcher, log)

	// Limitador de intentos de login sobre Redis
	limiter := infraredis.NewAttemptLimiter(cfg.Redis)
	defer limiter.Close()
	if err := limiter.Ping(ctx); err != nil {
		log.Warn().Err(err).Msg("Redis no disponible; el limitador de login fallará abierto")
	}

	reconciler := stock.NewReconciler(log)
	intakeUC := stock.NewIntakeUseCase(txRunner, itemRepo, reconciler, log)
	consumptionUC := stock.NewConsumptionUseCase(txRunner, itemRepo, reconciler, log)
	adjustmentUC := stock.NewAdjustmentUseCase(txRunner, itemRepo, reconciler, log)
	orderUC := order.NewUseCase(txRunner, itemRepo, runningRepo, orderRepo, consumptionUC, alerter, log)
	purchaseUC := purchase.NewUseCase(poRepo, itemRepo, intakeUC, log)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := report.NewUseCase(reportRepo, pdfGenerator, log)

	authUC := auth.NewUseCase(staffRepo, limiter, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)
	staffUC := auth.NewStaffUseCase(staffRepo, departmentRepo, jobRepo, log)
	orgUC := auth.NewOrgUseCase(departmentRepo, jobRepo, recipientRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Almacén API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		IntakeUC:     intakeUC,
		AdjustmentUC: adjustmentUC,
		OrderUC:      orderUC,
		AuthUC:       authUC,
		StaffUC:      staffUC,
		OrgUC:        orgUC,
		PurchaseUC:   purchaseUC,
		ReportUC:     reportUC,
		JWTSecret:    cfg.JWT.Secret,
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
