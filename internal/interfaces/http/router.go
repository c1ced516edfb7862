package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dvergara/Tributario-api/internal/application/analytics"
	"github.com/dvergara/Tributario-api/internal/application/cobranza"
	"github.com/dvergara/Tributario-api/internal/application/obligaciones"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	TaxpayerUC    *obligaciones.TaxpayerUseCase
	DeclarationUC *obligaciones.DeclarationUseCase
	AdvanceUC     *obligaciones.AdvanceUseCase
	InvoiceUC     *cobranza.InvoiceUseCase
	ReceiptPDFUC  *cobranza.ReceiptPDFUseCase
	DashboardUC   *analytics.DashboardUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Padrón de clientes
	taxpayers := api.Group("/taxpayers")
	taxpayerHandler := NewTaxpayerHandler(deps.TaxpayerUC)
	taxpayers.Post("/", taxpayerHandler.Create)
	taxpayers.Get("/", taxpayerHandler.List)
	taxpayers.Get("/:id", taxpayerHandler.GetByID)
	taxpayers.Put("/:id", taxpayerHandler.Update)

	// Obligaciones y ciclo de vida de declaraciones
	declarationHandler := NewDeclarationHandler(deps.DeclarationUC)
	taxpayers.Get("/:id/obligations", declarationHandler.GetObligations)
	taxpayers.Post("/:id/declarations/:period/file", declarationHandler.MarkFiled)
	taxpayers.Post("/:id/declarations/:period/pay", declarationHandler.MarkPaid)
	taxpayers.Post("/:id/declarations/:period/revert", declarationHandler.RevertPayment)

	// Abonos masivos y recibos
	advanceHandler := NewAdvanceHandler(deps.AdvanceUC, deps.ReceiptPDFUC)
	taxpayers.Post("/:id/advances", advanceHandler.Allocate)
	taxpayers.Get("/:id/advances/:txid", advanceHandler.GetReceipt)
	taxpayers.Get("/:id/advances/:txid/pdf", advanceHandler.DownloadReceiptPDF)

	// Cobranza interna (facturas de servicios)
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	taxpayers.Post("/:id/invoices", invoiceHandler.Create)
	taxpayers.Get("/:id/invoices", invoiceHandler.List)
	invoices := api.Group("/invoices")
	invoices.Post("/:id/pay", invoiceHandler.MarkPaid)
	invoices.Post("/:id/cancel", invoiceHandler.Cancel)

	// Panel operativo
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard", dashboardHandler.Summary)
	api.Get("/fees", dashboardHandler.FeeSchedule)
}
