package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/estetica-agenda/internal/alert"
	"github.com/BruksfildServices01/estetica-agenda/internal/audit"
	"github.com/BruksfildServices01/estetica-agenda/internal/config"
	"github.com/BruksfildServices01/estetica-agenda/internal/enrichment"
	"github.com/BruksfildServices01/estetica-agenda/internal/infra/slotstore/memory"
	"github.com/BruksfildServices01/estetica-agenda/internal/metrics"
	"github.com/BruksfildServices01/estetica-agenda/internal/storage"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type app struct {
	engine *gin.Engine
	audit  *audit.Dispatcher
	alerts *alert.Center
}

func newApp(t *testing.T, cfg *config.Config, quota int) *app {
	t.Helper()
	logger := zap.NewNop()
	m := metrics.New()
	alerts := alert.NewCenter(logger, 50)
	store := storage.New(memory.New(quota), logger, alerts, m)
	auditLog := audit.New(store)
	dispatcher := audit.NewDispatcher(auditLog, logger)
	t.Cleanup(dispatcher.Close)

	r := gin.New()
	RegisterRoutes(r, Infra{
		Logger:   logger,
		Store:    store,
		Alerts:   alerts,
		Metrics:  m,
		Gateway:  enrichment.NewFallback(m),
		AuditLog: auditLog,
		Audit:    dispatcher,
	}, cfg)

	return &app{engine: r, audit: dispatcher, alerts: alerts}
}

func defaultConfig() *config.Config {
	return &config.Config{
		Timezone:     "America/Sao_Paulo",
		CountryCode:  "55",
		BusinessName: "EstéticaAgenda Pro",
	}
}

func (a *app) do(t *testing.T, method, path string, body any, header ...string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

type list[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

type clientBody struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	CreatedAt int64  `json:"createdAt"`
}

type appointmentBody struct {
	ID         string  `json:"id"`
	ClientID   string  `json:"clientId"`
	Time       string  `json:"time"`
	Status     string  `json:"status"`
	Price      float64 `json:"price"`
	ClientName string  `json:"clientName"`
}

type errorBody struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func TestHealthAndMetrics(t *testing.T) {
	a := newApp(t, defaultConfig(), 0)

	w := a.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"storage":"memory"`)

	a.do(t, http.MethodGet, "/api/clients", nil)
	w = a.do(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `estetica_slot_reads_total{slot="estetica_clients_v1"}`)
}

func TestClientAndAppointmentFlow(t *testing.T) {
	a := newApp(t, defaultConfig(), 0)

	// create client
	w := a.do(t, http.MethodPost, "/api/clients", gin.H{"name": "Ana Silva", "phone": "(11) 99999-0000"})
	require.Equal(t, http.StatusCreated, w.Code)
	ana := decode[clientBody](t, w)
	require.NotEmpty(t, ana.ID)

	// validation error
	w = a.do(t, http.MethodPost, "/api/clients", gin.H{"name": "", "phone": "1"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "client_name_required", decode[errorBody](t, w).Code)

	// update preserves createdAt
	w = a.do(t, http.MethodPut, "/api/clients/"+ana.ID, gin.H{"name": "Ana S.", "phone": "11999990000"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, ana.CreatedAt, decode[clientBody](t, w).CreatedAt)

	w = a.do(t, http.MethodPut, "/api/clients/missing", gin.H{"name": "X", "phone": "1"})
	require.Equal(t, http.StatusNotFound, w.Code)

	// appointments, numbers as strings and as numbers
	w = a.do(t, http.MethodPost, "/api/appointments", gin.H{
		"clientId": ana.ID, "service": "Limpeza de Pele", "date": "2024-03-15", "time": "14:00",
		"price": "150", "deposit": "50", "duration": "abc",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	first := decode[appointmentBody](t, w)
	require.Equal(t, "Pendente", first.Status)

	w = a.do(t, http.MethodPost, "/api/appointments", gin.H{
		"clientId": ana.ID, "service": "Peeling", "date": "2024-03-15", "time": "09:00",
		"price": 80, "status": "Pago",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = a.do(t, http.MethodPost, "/api/appointments", gin.H{
		"clientId": ana.ID, "service": "Peeling", "date": "2024-03-15", "time": "09:00",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "missing_required_fields", decode[errorBody](t, w).Code)

	w = a.do(t, http.MethodPost, "/api/appointments", gin.H{
		"clientId": ana.ID, "service": "Peeling", "date": "2024-03-15", "time": "10:00", "price": "Inf",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "invalid_price", decode[errorBody](t, w).Code)

	w = a.do(t, http.MethodGet, "/api/appointments?date=2024-03-15", nil)
	require.Equal(t, http.StatusOK, w.Code)
	day := decode[list[appointmentBody]](t, w)
	require.Equal(t, 2, day.Total)
	require.Equal(t, "09:00", day.Data[0].Time)
	require.Equal(t, "Ana S.", day.Data[0].ClientName)

	// whatsapp
	w = a.do(t, http.MethodGet, "/api/appointments/"+first.ID+"/whatsapp?kind=confirmation", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "https://wa.me/5511999990000?text=")

	// delete the client: no cascade, placeholder name
	w = a.do(t, http.MethodDelete, "/api/clients/"+ana.ID, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = a.do(t, http.MethodGet, "/api/clients/"+ana.ID+"/history", nil)
	require.Equal(t, 2, decode[list[appointmentBody]](t, w).Total)

	w = a.do(t, http.MethodGet, "/api/appointments", nil)
	all := decode[list[appointmentBody]](t, w)
	require.Equal(t, 2, all.Total)
	require.Equal(t, "Cliente Desconhecido", all.Data[0].ClientName)

	// delete appointment, then unknown id is still 204
	w = a.do(t, http.MethodDelete, "/api/appointments/"+first.ID, nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	w = a.do(t, http.MethodDelete, "/api/appointments/"+first.ID, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = a.do(t, http.MethodPut, "/api/appointments/"+first.ID, gin.H{"price": "1"})
	require.Equal(t, http.StatusNotFound, w.Code)

	// audit trail
	a.audit.Close()
	w = a.do(t, http.MethodGet, "/api/audit-logs?entity=client", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"total":3`)
}

func TestEnrichWithoutCredential(t *testing.T) {
	a := newApp(t, defaultConfig(), 0)

	w := a.do(t, http.MethodPost, "/api/appointments/enrich", gin.H{"service": "Peeling", "notes": "pele oleosa"})
	require.Equal(t, http.StatusOK, w.Code)
	out := decode[map[string]string](t, w)
	require.Equal(t, enrichment.DraftMissingKey, out["summary"])
	require.Equal(t, enrichment.AftercareMissingKey, out["aftercare"])

	w = a.do(t, http.MethodPost, "/api/appointments/enrich", gin.H{"service": "Peeling"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestThemeAndDashboard(t *testing.T) {
	a := newApp(t, defaultConfig(), 0)

	w := a.do(t, http.MethodGet, "/api/theme", nil)
	require.JSONEq(t, `{"mode":"light"}`, w.Body.String())

	w = a.do(t, http.MethodPut, "/api/theme", gin.H{"mode": "dark"})
	require.Equal(t, http.StatusOK, w.Code)
	w = a.do(t, http.MethodGet, "/api/theme", nil)
	require.JSONEq(t, `{"mode":"dark"}`, w.Body.String())

	w = a.do(t, http.MethodPut, "/api/theme", gin.H{"mode": "blue"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = a.do(t, http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"totalCount":0`)
}

func TestWriteFailureSurfacesAlert(t *testing.T) {
	a := newApp(t, defaultConfig(), 40)

	w := a.do(t, http.MethodPost, "/api/clients", gin.H{"name": "Ana Silva", "phone": "11999990000"}, "X-Request-ID", "req-1")
	require.Equal(t, http.StatusInsufficientStorage, w.Code)
	require.Equal(t, "storage_write_failed", decode[errorBody](t, w).Code)
	require.NotEmpty(t, a.alerts.Recent())

	w = a.do(t, http.MethodGet, "/api/clients", nil)
	require.Equal(t, 0, decode[list[clientBody]](t, w).Total)

	w = a.do(t, http.MethodGet, "/api/alerts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), storage.WriteFailedMessage)
}

func TestWriteFailure_RetryWithSameRequestIDSucceeds(t *testing.T) {
	a := newApp(t, defaultConfig(), 1000)

	big := gin.H{"name": "Ana", "phone": "1", "notes": strings.Repeat("x", 1200)}
	w := a.do(t, http.MethodPost, "/api/clients", big, "X-Request-ID", "fixed")
	require.Equal(t, http.StatusInsufficientStorage, w.Code)

	w = a.do(t, http.MethodPost, "/api/clients", gin.H{"name": "Ana", "phone": "1"}, "X-Request-ID", "fixed")
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, "fixed", w.Header().Get("X-Request-ID"))

	w = a.do(t, http.MethodGet, "/api/clients", nil)
	clients := decode[list[clientBody]](t, w)
	require.Equal(t, 1, clients.Total)
	require.Equal(t, "Ana", clients.Data[0].Name)
}

func TestAuthEnabled(t *testing.T) {
	cfg := defaultConfig()
	cfg.JWTSecret = "s3cret"
	a := newApp(t, cfg, 0)

	w := a.do(t, http.MethodGet, "/api/clients", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = a.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "profissional",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("s3cret"))
	require.NoError(t, err)

	w = a.do(t, http.MethodGet, "/api/clients", nil, "Authorization", "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
}
