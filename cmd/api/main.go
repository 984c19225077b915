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

	"github.com/tu-usuario/store-api/internal/application/auth"
	"github.com/tu-usuario/store-api/internal/application/usecase"
	infrapdf "github.com/tu-usuario/store-api/internal/infrastructure/pdf"
	"github.com/tu-usuario/store-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/store-api/internal/interfaces/http"
	"github.com/tu-usuario/store-api/pkg/config"
	"github.com/tu-usuario/store-api/pkg/logger"
	"github.com/tu-usuario/store-api/pkg/validate"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	}).Component("api")
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

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	shipperRepo := postgres.NewShipperRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	validator := validate.New()
	receipts := infrapdf.NewMarotoReceiptGenerator(cfg.App.Name)

	authUC := auth.NewUseCase(userRepo, validator)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, productRepo, validator)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo, productRepo, validator)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, supplierRepo, validator)
	shipperUC := usecase.NewShipperUseCase(shipperRepo, orderRepo, validator)
	orderUC := usecase.NewOrderUseCase(orderRepo, shipperRepo, productRepo, txRunner, receipts, validator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Store API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		UserRepo:   userRepo,
		AuthUC:     authUC,
		CategoryUC: categoryUC,
		SupplierUC: supplierUC,
		ProductUC:  productUC,
		ShipperUC:  shipperUC,
		OrderUC:    orderUC,
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
