package cobranza

import (
	"context"

	"github.com/dvergara/Tributario-api/internal/application/dto"
)

// ReceiptSource reconstruye el recibo de un abono ya aplicado. Lo implementa
// el caso de uso de abonos; cobranza solo lo consume para renderizar.
type ReceiptSource interface {
	GetReceipt(ctx context.Context, taxpayerID, transactionID string) (*dto.ReceiptResponse, error)
}

// ReceiptPDFGenerator genera la representación gráfica (PDF) de un recibo de
// abono listo para entregar al cliente.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, receipt *dto.ReceiptResponse) ([]byte, error)
}
