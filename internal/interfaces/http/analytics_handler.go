package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/koajpc/backoffice-api/internal/application/dto"
	"github.com/koajpc/backoffice-api/internal/application/usecase"
	"github.com/koajpc/backoffice-api/internal/infrastructure/alegra"
)

// AnalyticsHandler expone los reportes de inventario y ventas (solo admin).
type AnalyticsHandler struct {
	uc *usecase.AnalyticsUseCase
}

// NewAnalyticsHandler construye el handler de analítica.
func NewAnalyticsHandler(uc *usecase.AnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// InventoryAnalysis godoc
// @Summary      Análisis completo del inventario valorizado
// @Description  Trae el inventario desde Alegra (paginado) y devuelve resumen
//               ejecutivo, desgloses por departamento/categoría/talla, alertas
//               de stock y análisis ABC.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        to_date              query  string  false  "inventario valorizado a esta fecha (YYYY-MM-DD)"
// @Param        query                query  string  false  "filtro de búsqueda de Alegra"
// @Param        low_stock_threshold  query  int     false  "umbral de stock bajo (default 5)"
// @Param        top_n                query  int     false  "tamaño del top por valor (default 20)"
// @Success      200  {object}  usecase.InventoryAnalysisResult
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/analytics/inventory [get]
func (h *AnalyticsHandler) InventoryAnalysis(c *fiber.Ctx) error {
	threshold := int64(c.QueryInt("low_stock_threshold"))
	topN := c.QueryInt("top_n")

	result, err := h.uc.InventoryAnalysis(c.Context(), c.Query("to_date"), c.Query("query"), threshold, topN)
	if err != nil {
		return alegraError(c, err)
	}
	return c.JSON(result)
}

// SalesTotals godoc
// @Summary      Totales de ventas agrupados por día o mes
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        from      query  string  true   "inicio del rango (YYYY-MM-DD)"
// @Param        to        query  string  true   "fin del rango (YYYY-MM-DD)"
// @Param        group_by  query  string  false  "day | month (default day)"
// @Param        limit     query  int     false  "máximo de grupos (default 10)"
// @Param        start     query  int     false  "desplazamiento"
// @Success      200  {array}   alegra.SalesTotal
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/sales/totals [get]
func (h *AnalyticsHandler) SalesTotals(c *fiber.Ctx) error {
	from, to := c.Query("from"), c.Query("to")
	if from == "" || to == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from y to son requeridos (YYYY-MM-DD)"})
	}
	totals, err := h.uc.SalesTotals(c.Context(), from, to, c.Query("group_by"), c.QueryInt("limit"), c.QueryInt("start"))
	if err != nil {
		return alegraError(c, err)
	}
	return c.JSON(totals)
}

// Invoices godoc
// @Summary      Facturas de venta de un rango de fechas
// @Description  Recorre el rango día por día paginando contra Alegra.
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  true  "inicio del rango (YYYY-MM-DD)"
// @Param        to    query  string  true  "fin del rango (YYYY-MM-DD)"
// @Success      200  {object}  usecase.InvoicesResult
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/sales/invoices [get]
func (h *AnalyticsHandler) Invoices(c *fiber.Ctx) error {
	from, to := c.Query("from"), c.Query("to")
	if from == "" || to == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from y to son requeridos (YYYY-MM-DD)"})
	}
	result, err := h.uc.Invoices(c.Context(), from, to)
	if err != nil {
		return alegraError(c, err)
	}
	return c.JSON(result)
}

// alegraError mapea fallas del proveedor a 502 y el resto a 500.
func alegraError(c *fiber.Ctx, err error) error {
	if errors.Is(err, alegra.ErrUnavailable) {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "ALEGRA_DOWN", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
