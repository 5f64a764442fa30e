package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-mis/internal/application/analytics"
	"github.com/jhoicas/restaurante-mis/internal/application/dto"
	"github.com/jhoicas/restaurante-mis/internal/application/inventory"
	"github.com/jhoicas/restaurante-mis/internal/application/usecase"
	"github.com/jhoicas/restaurante-mis/internal/infrastructure/memory"
	"github.com/jhoicas/restaurante-mis/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/restaurante-mis/internal/interfaces/http"
	"github.com/jhoicas/restaurante-mis/internal/interfaces/ws"
	pkgjwt "github.com/jhoicas/restaurante-mis/pkg/jwt"
	"github.com/jhoicas/restaurante-mis/pkg/logger"
)

func newTestApp() *fiber.App {
	stock := memory.NewStockRepository(memory.SampleStock())
	outlets := memory.NewOutletRepository(memory.SampleOutlets())
	hub := ws.NewHub(logger.Nop())

	app := fiber.New()
	app.Use(apphttp.RequestLogger(logger.Nop()))
	apphttp.Router(app, apphttp.RouterDeps{
		FeedbackUC:  usecase.NewFeedbackUseCase(memory.NewFeedbackLog(), hub, 0),
		DocumentUC:  usecase.NewDocumentUseCase(outlets, pdf.NewMarotoRenderer()),
		CheckUC:     usecase.NewCheckUseCase(),
		PromotionUC: usecase.NewPromotionUseCase(),
		StockUC:     inventory.NewStockUseCase(stock, outlets),
		InwardUC:    inventory.NewInwardUseCase(memory.NewTxRunner(stock)),
		DigestUC:    analytics.NewStockDigestUseCase(stock, outlets),
		Hub:         hub,
		JWTSecret:   testJWTSecret,
	})
	return app
}

func do(t *testing.T, app *fiber.App, method, path, auth, body string) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func TestRouter_Health(t *testing.T) {
	resp, body := do(t, newTestApp(), http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "ok")
}

func TestRouter_FeedbackCrearYListar(t *testing.T) {
	app := newTestApp()

	resp, _ := do(t, app, http.MethodPost, "/api/feedback", "",
		`{"rating":4,"customerName":"Ana","email":"ana@example.com","feedback":"Muy rica la pizza"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := do(t, app, http.MethodPost, "/api/feedback", "", `{"rating":0,"customerName":"","feedback":""}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var errBody dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errBody))
	assert.Equal(t, "VALIDATION", errBody.Code)
	assert.Len(t, errBody.Fields, 3)

	resp, _ = do(t, app, http.MethodGet, "/api/mis/feedback", tokenForRole(t, pkgjwt.RoleStaff), "")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, body = do(t, app, http.MethodGet, "/api/mis/feedback", tokenForRole(t, pkgjwt.RoleManager), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list dto.FeedbackListResponse
	require.NoError(t, json.Unmarshal(body, &list))
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "Ana", list.Items[0].CustomerName)
}

func TestRouter_QuotePublicoAceptaTexto(t *testing.T) {
	resp, body := do(t, newTestApp(), http.MethodPost, "/api/orders/quote", "",
		`{"lines":[{"item_name":"Pizza","quantity":"2","unit_price":"12.5"},{"item_name":"Gaseosa","quantity":"abc","unit_price":3}]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "25", out["grand_total"])
}

func TestRouter_DocumentSubmitFilasIncompletas(t *testing.T) {
	resp, body := do(t, newTestApp(), http.MethodPost, "/api/mis/documents/purchase/submit", tokenForRole(t, pkgjwt.RoleStaff),
		`{"outlet_id":"out-central","supplier":"La Sabana","lines":[{"item_name":"Tomate","quantity":0,"unit_price":1}]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, string(body), "INCOMPLETE_ROWS")
}

func TestRouter_DocumentPDF(t *testing.T) {
	resp, body := do(t, newTestApp(), http.MethodPost, "/api/mis/documents/order/pdf", tokenForRole(t, pkgjwt.RoleStaff),
		`{"outlet_id":"out-centro","lines":[{"item_name":"Pizza","quantity":1,"unit_price":12}]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
}

func TestRouter_DocumentTipoDesconocido(t *testing.T) {
	resp, _ := do(t, newTestApp(), http.MethodPost, "/api/mis/documents/invoice/quote", tokenForRole(t, pkgjwt.RoleStaff), `{"lines":[]}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRouter_InventoryStaffSoloSuOutlet(t *testing.T) {
	app := newTestApp()
	staff := tokenForRole(t, pkgjwt.RoleStaff)

	resp, body := do(t, app, http.MethodGet, "/api/mis/inventory", staff, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var dash dto.StockDashboardResponse
	require.NoError(t, json.Unmarshal(body, &dash))
	assert.Equal(t, testOutletID, dash.OutletID)
	assert.Equal(t, 3, dash.Total)

	resp, _ = do(t, app, http.MethodGet, "/api/mis/inventory?outlet_id=out-norte", staff, "")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = do(t, app, http.MethodGet, "/api/mis/inventory?outlet_id=out-fantasma", tokenForRole(t, pkgjwt.RoleAdmin), "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_CheckSubmitPendiente(t *testing.T) {
	resp, _ := do(t, newTestApp(), http.MethodPost, "/api/mis/checks/submit", tokenForRole(t, pkgjwt.RoleStaff),
		`{"items":[{"item_name":"Tomate","expected_quantity":10,"actual_quantity":null,"quality_grade":"good"}]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestRouter_ReceiveSoloManagers(t *testing.T) {
	app := newTestApp()
	body := `{"lines":[{"stock_record_id":"stk-001","ordered_quantity":10,"received_quantity":10,"unit_cost":1.2}]}`

	resp, _ := do(t, app, http.MethodPost, "/api/mis/inventory/inward/receive", tokenForRole(t, pkgjwt.RoleStaff), body)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, raw := do(t, app, http.MethodPost, "/api/mis/inventory/inward/receive", tokenForRole(t, pkgjwt.RoleAdmin), body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), `"status":"complete"`)
}

func TestRouter_LoyaltyPoints(t *testing.T) {
	resp, body := do(t, newTestApp(), http.MethodGet, "/api/menu/loyalty-points?amount=80&tier=platinum", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.LoyaltyResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, int64(240), out.Points)
}

func TestRouter_WebSocketSinUpgrade(t *testing.T) {
	resp, _ := do(t, newTestApp(), http.MethodGet, "/ws/feedback", "", "")
	assert.Equal(t, http.StatusUpgradeRequired, resp.StatusCode)
}
