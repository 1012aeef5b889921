package usecase

import (
	"context"

	"github.com/koajpc/backoffice-api/internal/infrastructure/alegra"
)

// SalesSummaryProvider resumen de ventas de un día por medio de pago. Lo
// implementa el cliente de Alegra; los tests usan un doble.
type SalesSummaryProvider interface {
	DailySalesSummary(ctx context.Context, date string) (*alegra.SalesSummary, error)
}

// InventoryProvider snapshot del inventario valorizado a una fecha.
type InventoryProvider interface {
	FullInventory(ctx context.Context, toDate string, maxItems, pageSize int, query string) (*alegra.InventoryResult, error)
}

// SalesProvider totales y facturas de ventas por rango de fechas.
type SalesProvider interface {
	SalesTotals(ctx context.Context, fromDate, toDate, groupBy string, limit, start int) ([]alegra.SalesTotal, error)
	InvoicesForRange(ctx context.Context, fromDate, toDate string) ([]alegra.Invoice, int, error)
}
