package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/bakeapp-api/internal/application/auth"
	"github.com/jhoicas/bakeapp-api/internal/application/billing"
	"github.com/jhoicas/bakeapp-api/internal/application/usecase"
	"github.com/jhoicas/bakeapp-api/internal/domain/repository"
	"github.com/jhoicas/bakeapp-api/internal/infrastructure/mail"
	infrapdf "github.com/jhoicas/bakeapp-api/internal/infrastructure/pdf"
	"github.com/jhoicas/bakeapp-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/bakeapp-api/internal/interfaces/http"
	"github.com/jhoicas/bakeapp-api/pkg/config"
	"github.com/jhoicas/bakeapp-api/pkg/logger"
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

	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	profiles := repository.ProfileStores{
		Customer: customerRepo,
		Employee: employeeRepo,
		Supplier: supplierRepo,
	}

	// Mailer de bienvenida: nil si no hay SMTP configurado
	var mailer auth.Mailer
	if cfg.SMTP.Enabled() {
		mailer = mail.NewSMTPMailer(cfg.SMTP)
	} else {
		log.Warn().Msg("SMTP no configurado, correo de bienvenida deshabilitado")
	}

	authUC := auth.NewAuthUseCase(txRunner, userRepo, profiles, mailer, log, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo, profiles, authUC)
	productUC := usecase.NewProductUseCase(productRepo, supplierRepo)
	orderUC := usecase.NewOrderUseCase(txRunner, orderRepo, customerRepo, employeeRepo, productRepo)
	invoiceUC := billing.NewInvoiceUseCase(txRunner, invoiceRepo, customerRepo, employeeRepo, orderRepo)

	// PDF: representación gráfica de la factura
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	pdfUC := billing.NewPDFUseCase(invoiceRepo, customerRepo, employeeRepo, orderRepo, productRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs. El json lo genera
	// swag; si no está, el middleware entraría en pánico al arrancar.
	if _, err := os.Stat("./docs/swagger.json"); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "BakeApp API",
		}))
	} else {
		log.Warn().Msg("docs/swagger.json no encontrado, Swagger UI deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		UserUC:    userUC,
		ProductUC: productUC,
		OrderUC:   orderUC,
		InvoiceUC: invoiceUC,
		PDFUC:     pdfUC,
		JWTSecret: cfg.JWT.Secret,
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
