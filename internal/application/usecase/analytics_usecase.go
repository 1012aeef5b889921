package usecase

import (
	"context"

	"github.com/koajpc/backoffice-api/internal/domain/inventory"
	"github.com/koajpc/backoffice-api/internal/infrastructure/alegra"
	"github.com/koajpc/backoffice-api/pkg/logger"
)

// Límites de la consulta paginada a Alegra. Páginas grandes disparan 503
// del lado de Alegra.
const (
	inventoryMaxItems = 3000
	inventoryPageSize = 200
)

// AnalyticsUseCase arma los reportes de inventario y ventas a partir de los
// datos del proveedor externo.
type AnalyticsUseCase struct {
	inventoryProv InventoryProvider
	salesProv     SalesProvider
	log           *logger.Logger
}

// NewAnalyticsUseCase construye el caso de uso de analítica.
func NewAnalyticsUseCase(inv InventoryProvider, sales SalesProvider, log *logger.Logger) *AnalyticsUseCase {
	return &AnalyticsUseCase{inventoryProv: inv, salesProv: sales, log: log}
}

// InventoryAnalysisResult análisis completo más metadatos de la consulta.
type InventoryAnalysisResult struct {
	Analysis *inventory.CompleteAnalysis `json:"analysis"`
	Metadata alegra.InventoryMetadata    `json:"metadata"`
}

// InventoryAnalysis trae el inventario valorizado a la fecha y ejecuta el
// análisis completo sobre el snapshot. Umbral y tamaño del top no positivos
// usan los defaults del análisis.
func (uc *AnalyticsUseCase) InventoryAnalysis(ctx context.Context, toDate, query string, lowStockThreshold int64, topN int) (*InventoryAnalysisResult, error) {
	result, err := uc.inventoryProv.FullInventory(ctx, toDate, inventoryMaxItems, inventoryPageSize, query)
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Int("items", result.Metadata.TotalReturned).
		Int("filtrados", result.Metadata.TotalFiltered).
		Str("to_date", toDate).
		Msg("inventario obtenido, ejecutando análisis")

	analytics := inventory.NewAnalytics(result.Items)
	return &InventoryAnalysisResult{
		Analysis: analytics.CompleteAnalysisWith(lowStockThreshold, topN),
		Metadata: result.Metadata,
	}, nil
}

// SalesTotals totales de ventas agrupados por día o mes.
func (uc *AnalyticsUseCase) SalesTotals(ctx context.Context, fromDate, toDate, groupBy string, limit, start int) ([]alegra.SalesTotal, error) {
	if groupBy != "month" {
		groupBy = "day"
	}
	if limit <= 0 {
		limit = 10
	}
	return uc.salesProv.SalesTotals(ctx, fromDate, toDate, groupBy, limit, start)
}

// InvoicesResult facturas de un rango más metadatos.
type InvoicesResult struct {
	Invoices      []alegra.Invoice `json:"data"`
	TotalInvoices int              `json:"total_invoices"`
	DaysProcessed int              `json:"days_processed"`
}

// Invoices trae todas las facturas del rango, día por día.
func (uc *AnalyticsUseCase) Invoices(ctx context.Context, fromDate, toDate string) (*InvoicesResult, error) {
	invoices, days, err := uc.salesProv.InvoicesForRange(ctx, fromDate, toDate)
	if err != nil {
		return nil, err
	}
	return &InvoicesResult{
		Invoices:      invoices,
		TotalInvoices: len(invoices),
		DaysProcessed: days,
	}, nil
}
