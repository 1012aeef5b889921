package alegra

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koajpc/backoffice-api/pkg/config"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient(config.AlegraConfig{
		User:           "tienda@koaj.test",
		Token:          "token123",
		BaseURL:        srv.URL,
		TimeoutSeconds: 5,
	})
	return c, srv
}

func TestInventoryValueReport_FiltraObsoletosYDeshabilitados(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, token, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "tienda@koaj.test", user)
		assert.Equal(t, "token123", token)
		assert.Equal(t, "/reports/inventory-value", r.URL.Path)
		assert.Equal(t, "2026-08-30", r.URL.Query().Get("toDate"))

		json.NewEncoder(w).Encode([]map[string]any{
			{"id": "1", "type": "variant", "name": "CAMISETA HOMBRE 39900 / 1051399004", "status": "active"},
			{"id": "2", "type": "variant", "name": "* CAMISETA VIEJA", "status": "active"},
			{"id": "3", "type": "variant", "name": "JOGGER MUJER", "status": "inactive"},
		})
	}))

	res, err := c.InventoryValueReport(context.Background(), "2026-08-30", 1, 200, "")
	require.NoError(t, err)

	assert.Equal(t, 3, res.Metadata.TotalReceived)
	assert.Equal(t, 1, res.Metadata.TotalFilteredAsterisk)
	assert.Equal(t, 1, res.Metadata.TotalFilteredDisabled)
	assert.Equal(t, 2, res.Metadata.TotalFiltered)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "1", res.Items[0].ID)
}

func TestInventoryValueReport_AceptaObjetoConData(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"id": "9", "type": "variant", "name": "POLO HOMBRE 45900 / 1051445903"},
			},
		})
	}))

	res, err := c.InventoryValueReport(context.Background(), "2026-08-30", 1, 200, "")
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "9", res.Items[0].ID)
}

func TestInvoicesForDate_Pagina(t *testing.T) {
	calls := 0
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		start, _ := strconv.Atoi(r.URL.Query().Get("start"))

		// Primera página llena (30), segunda con 2: ahí termina.
		n := 30
		if start >= 30 {
			n = 2
		}
		batch := make([]map[string]any, n)
		for i := range batch {
			batch[i] = map[string]any{"id": start + i, "total": 10000}
		}
		json.NewEncoder(w).Encode(batch)
	}))

	invoices, err := c.InvoicesForDate(context.Background(), "2026-08-29")
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
	assert.Len(t, invoices, 32)
}

func TestDailySalesSummary_AgrupaPorMedioDePago(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{
			{"id": 1, "total": 150000, "payments": []map[string]any{
				{"amount": 150000, "paymentMethod": "cash"},
			}},
			{"id": 2, "total": 89900, "payments": []map[string]any{
				{"amount": 89900, "paymentMethod": "debit-card"},
			}},
			{"id": 3, "total": 50000, "payments": []map[string]any{
				{"amount": 30000, "paymentMethod": "cash"},
				{"amount": 20000, "paymentMethod": "transfer"},
			}},
			// Sin pagos registrados: cuenta como efectivo.
			{"id": 4, "total": 12000},
		})
	}))

	summary, err := c.DailySalesSummary(context.Background(), "2026-08-29")
	require.NoError(t, err)

	assert.Equal(t, 4, summary.Invoices)
	assert.Equal(t, float64(192000), summary.CashSales())
	assert.Equal(t, "Efectivo", summary.Results["cash"].Label)
	assert.Equal(t, "$192.000", summary.Results["cash"].Formatted)
	assert.Equal(t, float64(89900), summary.Results["debit-card"].Value)
	assert.Equal(t, float64(301900), summary.TotalSale.Value)
	assert.Equal(t, "$301.900", summary.TotalSale.Formatted)
}

// Alegra devuelve los medios de pago con sus nombres en español; el resumen
// debe normalizarlos a las claves estándar antes de agrupar.
func TestDailySalesSummary_NormalizaEtiquetasEnEspanol(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{
			{"id": 1, "total": 150000, "payments": []map[string]any{
				{"amount": 150000, "paymentMethod": "Efectivo"},
			}},
			{"id": 2, "total": 89900, "payments": []map[string]any{
				{"amount": 89900, "paymentMethod": "Tarjeta de crédito"},
			}},
			{"id": 3, "total": 70000, "payments": []map[string]any{
				{"amount": 40000, "paymentMethod": "Transferencia Bancolombia"},
				{"amount": 30000, "paymentMethod": "Bono regalo"},
			}},
		})
	}))

	summary, err := c.DailySalesSummary(context.Background(), "2026-08-29")
	require.NoError(t, err)

	assert.Equal(t, float64(150000), summary.CashSales())
	assert.Equal(t, float64(89900), summary.Results["credit-card"].Value)
	assert.Equal(t, "Tarjeta crédito", summary.Results["credit-card"].Label)
	assert.Equal(t, float64(40000), summary.Results["transfer"].Value)
	assert.Equal(t, float64(30000), summary.Results["other"].Value)
	assert.Equal(t, "Otros", summary.Results["other"].Label)
	assert.Equal(t, float64(309900), summary.TotalSale.Value)
}

func TestNormalizePaymentMethod(t *testing.T) {
	cases := map[string]string{
		"Efectivo":           "cash",
		"cash":               "cash",
		"Tarjeta de crédito": "credit-card",
		"credit-card":        "credit-card",
		"Tarjeta débito":     "debit-card",
		"debit-card":         "debit-card",
		"Transferencia":      "transfer",
		"transfer":           "transfer",
		"Bono regalo":        "other",
		"":                   "other",
	}
	for raw, want := range cases {
		assert.Equal(t, want, normalizePaymentMethod(raw), "raw=%q", raw)
	}
}

func TestGet_ErrorDeServidorEsNoDisponible(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	_, err := c.DailySalesSummary(context.Background(), "2026-08-29")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestGet_ErrorDeClienteNoEsNoDisponible(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := c.DailySalesSummary(context.Background(), "2026-08-29")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnavailable)
}
