package cobranza

import (
	"context"
	"fmt"

	"github.com/dvergara/Tributario-api/pkg/metrics"
)

// ReceiptPDFUseCase genera la representación gráfica (PDF) de un recibo de
// abono para entregar al cliente.
type ReceiptPDFUseCase struct {
	receipts  ReceiptSource
	generator ReceiptPDFGenerator
	metrics   *metrics.Metrics
}

// NewReceiptPDFUseCase construye el caso de uso.
func NewReceiptPDFUseCase(receipts ReceiptSource, generator ReceiptPDFGenerator, m *metrics.Metrics) *ReceiptPDFUseCase {
	return &ReceiptPDFUseCase{receipts: receipts, generator: generator, metrics: m}
}

// DownloadReceiptPDF reconstruye el recibo de la transacción y lo renderiza.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - domain.ErrNotFound        si la transacción no existe para ese cliente.
func (uc *ReceiptPDFUseCase) DownloadReceiptPDF(
	ctx context.Context,
	taxpayerID, transactionID string,
) (pdfBytes []byte, filename string, err error) {
	receipt, err := uc.receipts.GetReceipt(ctx, taxpayerID, transactionID)
	if err != nil {
		return nil, "", err
	}

	pdfBytes, err = uc.generator.GenerateReceiptPDF(ctx, receipt)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	uc.metrics.RecibosPDFGenerados.Inc()

	filename = fmt.Sprintf("recibo_%s.pdf", receipt.TransactionID)
	return pdfBytes, filename, nil
}
