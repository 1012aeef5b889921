package alegra

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/koajpc/backoffice-api/internal/domain/inventory"
	"github.com/koajpc/backoffice-api/pkg/config"
	"github.com/koajpc/backoffice-api/pkg/money"
)

// ErrUnavailable indica que Alegra no respondió o respondió con error de
// servidor. Los handlers lo traducen a una respuesta parcial 502.
var ErrUnavailable = errors.New("alegra no disponible")

// Client consume la API de Alegra con basic auth (email + token). Varios de
// estos endpoints no están documentados; se descubrieron inspeccionando el
// tráfico de la plataforma.
type Client struct {
	baseURL string
	user    string
	token   string
	http    *http.Client
}

// NewClient construye el cliente con las credenciales configuradas.
func NewClient(cfg config.AlegraConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		user:    cfg.User,
		token:   cfg.Token,
		http:    &http.Client{Timeout: timeout},
	}
}

// Ping verifica conectividad y credenciales con una consulta mínima.
func (c *Client) Ping(ctx context.Context) error {
	params := url.Values{}
	params.Set("limit", "1")
	var out json.RawMessage
	return c.get(ctx, "/items", params, &out)
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("crear request %s: %w", path, err)
	}
	req.SetBasicAuth(c.user, c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return fmt.Errorf("%w: %s devolvió %d", ErrUnavailable, path, resp.StatusCode)
	}
	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("alegra %s devolvió %d: %s", path, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decodificar respuesta de %s: %w", path, err)
	}
	return nil
}

// listOrData acepta las dos formas de respuesta de Alegra: una lista directa
// o un objeto {"data": [...]}.
type listOrData[T any] []T

func (l *listOrData[T]) UnmarshalJSON(b []byte) error {
	trimmed := strings.TrimSpace(string(b))
	if strings.HasPrefix(trimmed, "[") {
		return json.Unmarshal(b, (*[]T)(l))
	}
	var wrapper struct {
		Data []T `json:"data"`
	}
	if err := json.Unmarshal(b, &wrapper); err != nil {
		return err
	}
	*l = wrapper.Data
	return nil
}

// InventoryMetadata estadísticas del reporte de inventario.
type InventoryMetadata struct {
	Page                  int    `json:"page"`
	Limit                 int    `json:"limit"`
	Query                 string `json:"query"`
	ToDate                string `json:"to_date"`
	TotalReceived         int    `json:"total_received"`
	TotalFilteredAsterisk int    `json:"total_filtered_asterisk"`
	TotalFilteredDisabled int    `json:"total_filtered_disabled"`
	TotalFiltered         int    `json:"total_filtered"`
	TotalReturned         int    `json:"total_returned"`
	PagesFetched          int    `json:"pages_fetched,omitempty"`
}

// InventoryResult reporte de inventario ya filtrado.
type InventoryResult struct {
	Items    []inventory.CatalogItem `json:"data"`
	Metadata InventoryMetadata       `json:"metadata"`
}

// InventoryValueReport trae una página del reporte de valor de inventario,
// descartando ítems obsoletos (nombre con asterisco) y deshabilitados.
func (c *Client) InventoryValueReport(ctx context.Context, toDate string, page, limit int, query string) (*InventoryResult, error) {
	params := url.Values{}
	params.Set("toDate", toDate)
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(limit))
	params.Set("start", strconv.Itoa((page-1)*limit))
	params.Set("query", query)

	var raw listOrData[inventory.CatalogItem]
	if err := c.get(ctx, "/reports/inventory-value", params, &raw); err != nil {
		return nil, err
	}

	result := &InventoryResult{
		Metadata: InventoryMetadata{
			Page: page, Limit: limit, Query: query, ToDate: toDate,
			TotalReceived: len(raw),
		},
	}
	for _, item := range raw {
		if strings.HasPrefix(strings.TrimSpace(item.Name), "*") {
			result.Metadata.TotalFilteredAsterisk++
			continue
		}
		if item.Status != "" && item.Status != "active" {
			result.Metadata.TotalFilteredDisabled++
			continue
		}
		result.Items = append(result.Items, item)
	}
	result.Metadata.TotalFiltered = result.Metadata.TotalFilteredAsterisk + result.Metadata.TotalFilteredDisabled
	result.Metadata.TotalReturned = len(result.Items)
	return result, nil
}

// FullInventory pagina el reporte de inventario hasta maxItems. Las páginas
// se piden de a pageSize para no disparar 503 en Alegra.
func (c *Client) FullInventory(ctx context.Context, toDate string, maxItems, pageSize int, query string) (*InventoryResult, error) {
	combined := &InventoryResult{
		Metadata: InventoryMetadata{Page: 1, Limit: maxItems, Query: query, ToDate: toDate},
	}

	page := 1
	for combined.Metadata.TotalReceived < maxItems {
		limit := pageSize
		if remaining := maxItems - combined.Metadata.TotalReceived; remaining < limit {
			limit = remaining
		}

		pageResult, err := c.InventoryValueReport(ctx, toDate, page, limit, query)
		if err != nil {
			if page == 1 {
				return nil, err
			}
			// Páginas posteriores: devolver lo acumulado.
			break
		}

		combined.Items = append(combined.Items, pageResult.Items...)
		combined.Metadata.TotalReceived += pageResult.Metadata.TotalReceived
		combined.Metadata.TotalFilteredAsterisk += pageResult.Metadata.TotalFilteredAsterisk
		combined.Metadata.TotalFilteredDisabled += pageResult.Metadata.TotalFilteredDisabled

		if pageResult.Metadata.TotalReceived < limit {
			break
		}
		page++
	}

	combined.Metadata.TotalFiltered = combined.Metadata.TotalFilteredAsterisk + combined.Metadata.TotalFilteredDisabled
	combined.Metadata.TotalReturned = len(combined.Items)
	combined.Metadata.PagesFetched = page
	return combined, nil
}

// SalesTotal total de ventas de un día o mes.
type SalesTotal struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

// SalesTotals totales de ventas agrupados por día o mes en un rango.
func (c *Client) SalesTotals(ctx context.Context, fromDate, toDate, groupBy string, limit, start int) ([]SalesTotal, error) {
	params := url.Values{}
	params.Set("from", fromDate)
	params.Set("to", toDate)
	params.Set("groupBy", groupBy)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("start", strconv.Itoa(start))

	var totals listOrData[SalesTotal]
	if err := c.get(ctx, "/invoices/sales-totals", params, &totals); err != nil {
		return nil, err
	}
	return totals, nil
}

// Payment pago registrado en una factura.
type Payment struct {
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"`
}

// Invoice factura de venta de Alegra.
type Invoice struct {
	ID       json.Number     `json:"id"`
	Date     string          `json:"date"`
	Total    float64         `json:"total"`
	Payments []Payment       `json:"payments,omitempty"`
	Items    json.RawMessage `json:"items,omitempty"`
}

// InvoicesForDate trae todas las facturas de un día paginando de a 30, que
// es el máximo que entrega Alegra por llamada.
func (c *Client) InvoicesForDate(ctx context.Context, date string) ([]Invoice, error) {
	const pageLimit = 30

	var all []Invoice
	start := 0
	for {
		params := url.Values{}
		params.Set("date", date)
		params.Set("limit", strconv.Itoa(pageLimit))
		params.Set("start", strconv.Itoa(start))

		var batch listOrData[Invoice]
		if err := c.get(ctx, "/invoices", params, &batch); err != nil {
			return nil, err
		}
		if len(batch) == 0 {
			break
		}
		all = append(all, batch...)
		if len(batch) < pageLimit {
			break
		}
		start += pageLimit
	}
	return all, nil
}

// InvoicesForRange facturas de un rango de fechas, iterando día por día.
func (c *Client) InvoicesForRange(ctx context.Context, fromDate, toDate string) ([]Invoice, int, error) {
	from, err := time.Parse("2006-01-02", fromDate)
	if err != nil {
		return nil, 0, fmt.Errorf("fecha inicial inválida: %w", err)
	}
	to, err := time.Parse("2006-01-02", toDate)
	if err != nil {
		return nil, 0, fmt.Errorf("fecha final inválida: %w", err)
	}

	var all []Invoice
	days := 0
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		invoices, err := c.InvoicesForDate(ctx, d.Format("2006-01-02"))
		if err != nil {
			return nil, days, err
		}
		all = append(all, invoices...)
		days++
	}
	return all, days, nil
}

// MethodSummary acumulado de un medio de pago.
type MethodSummary struct {
	Label     string  `json:"label"`
	Value     float64 `json:"value"`
	Formatted string  `json:"formatted"`
}

// SalesSummary resumen de ventas de un día por medio de pago. Es la cifra
// contra la que se concilia el cierre de caja.
type SalesSummary struct {
	Date      string                   `json:"date"`
	Results   map[string]MethodSummary `json:"results"`
	TotalSale MethodSummary            `json:"total_sale"`
	Invoices  int                      `json:"invoices"`
}

// CashSales valor vendido en efectivo según el resumen.
func (s *SalesSummary) CashSales() float64 {
	return s.Results["cash"].Value
}

var methodLabels = map[string]string{
	"cash":        "Efectivo",
	"debit-card":  "Tarjeta débito",
	"credit-card": "Tarjeta crédito",
	"transfer":    "Transferencia",
	"other":       "Otros",
}

// normalizePaymentMethod reduce el medio de pago tal como lo devuelve Alegra
// ("Efectivo", "Tarjeta de crédito", "transfer", ...) a una clave estándar:
// credit-card, debit-card, transfer, cash u other.
func normalizePaymentMethod(pm string) string {
	if pm == "" {
		return "other"
	}
	low := strings.ToLower(pm)
	switch {
	case strings.Contains(low, "credit") || strings.Contains(low, "crédito"):
		return "credit-card"
	case strings.Contains(low, "debit") || strings.Contains(low, "débito"):
		return "debit-card"
	case strings.Contains(low, "transfer") || strings.Contains(low, "transferencia"):
		return "transfer"
	case strings.Contains(low, "cash") || strings.Contains(low, "efectivo"):
		return "cash"
	}
	return "other"
}

// DailySalesSummary arma el resumen de ventas del día sumando los pagos de
// cada factura por medio de pago.
func (c *Client) DailySalesSummary(ctx context.Context, date string) (*SalesSummary, error) {
	invoices, err := c.InvoicesForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	results := make(map[string]MethodSummary)
	var total float64

	for _, inv := range invoices {
		if len(inv.Payments) == 0 {
			// Factura sin pagos registrados: cuenta al total como efectivo,
			// que es como la registra el punto de venta.
			total += inv.Total
			acc := results["cash"]
			acc.Value += inv.Total
			results["cash"] = acc
			continue
		}
		for _, p := range inv.Payments {
			method := normalizePaymentMethod(p.PaymentMethod)
			total += p.Amount
			acc := results[method]
			acc.Value += p.Amount
			results[method] = acc
		}
	}

	for method, acc := range results {
		label, ok := methodLabels[method]
		if !ok {
			label = method
		}
		acc.Label = label
		acc.Formatted = money.FormatCOP(int64(acc.Value))
		results[method] = acc
	}

	return &SalesSummary{
		Date:    date,
		Results: results,
		TotalSale: MethodSummary{
			Label:     "Venta total",
			Value:     total,
			Formatted: money.FormatCOP(int64(total)),
		},
		Invoices: len(invoices),
	}, nil
}
