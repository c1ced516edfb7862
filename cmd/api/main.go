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
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"

	appanalytics "github.com/dvergara/Tributario-api/internal/application/analytics"
	"github.com/dvergara/Tributario-api/internal/application/cobranza"
	"github.com/dvergara/Tributario-api/internal/application/obligaciones"
	"github.com/dvergara/Tributario-api/internal/domain/entity"
	infrapdf "github.com/dvergara/Tributario-api/internal/infrastructure/pdf"
	"github.com/dvergara/Tributario-api/internal/infrastructure/postgres"
	httpRouter "github.com/dvergara/Tributario-api/internal/interfaces/http"
	"github.com/dvergara/Tributario-api/pkg/config"
	"github.com/dvergara/Tributario-api/pkg/logger"
	"github.com/dvergara/Tributario-api/pkg/metrics"
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

	m := metrics.New()
	feeDefaults := feeScheduleFromConfig(cfg.Fees)

	taxpayerRepo := postgres.NewTaxpayerRepository(pool)
	invoiceRepo := postgres.NewServiceInvoiceRepository(pool)
	feeRepo := postgres.NewFeeScheduleRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	taxpayerUC := obligaciones.NewTaxpayerUseCase(taxpayerRepo)
	declarationUC := obligaciones.NewDeclarationUseCase(txRunner, taxpayerRepo, feeRepo, feeDefaults, m)
	advanceUC := obligaciones.NewAdvanceUseCase(txRunner, feeRepo, feeDefaults, m)
	invoiceUC := cobranza.NewInvoiceUseCase(invoiceRepo, taxpayerRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo, feeRepo, feeDefaults)

	// PDF: representación gráfica del recibo de abono
	receiptGenerator := infrapdf.NewMarotoReceiptGenerator(cfg.App.Name)
	receiptPDFUC := cobranza.NewReceiptPDFUseCase(advanceUC, receiptGenerator, m)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Tributario API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		TaxpayerUC:    taxpayerUC,
		DeclarationUC: declarationUC,
		AdvanceUC:     advanceUC,
		InvoiceUC:     invoiceUC,
		ReceiptPDFUC:  receiptPDFUC,
		DashboardUC:   dashboardUC,
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

// feeScheduleFromConfig arma el tarifario por defecto desde la configuración.
// La tabla fee_schedule puede sobreescribir cada entrada.
func feeScheduleFromConfig(fees config.FeesConfig) entity.FeeSchedule {
	return entity.FeeSchedule{
		ByCategory: map[string]decimal.Decimal{
			entity.CategoryMensualSuscripcion:   fees.MensualSuscripcion,
			entity.CategoryMensualInterno:       fees.MensualInterno,
			entity.CategorySemestralSuscripcion: fees.SemestralSuscripcion,
			entity.CategorySemestralInterno:     fees.SemestralInterno,
			entity.CategoryRentaNegocioPopular:  fees.RentaNegocioPopular,
			entity.CategoryDevolucionIVATercera: fees.DevolucionIVATercera,
		},
		AnnualIncomeTax: fees.RentaAnual,
		Services: map[string]decimal.Decimal{
			entity.ServiceRentaAnual:    fees.RentaAnual,
			entity.ServiceDevolucionIVA: fees.DevolucionIVATercera,
		},
	}
}
