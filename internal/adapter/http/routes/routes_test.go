package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gestao_servicos/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func TestRegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	registerRoutes(r, Handlers{
		Service:  handlers.NewServiceHandler(nil, time.UTC),
		Payment:  handlers.NewServicePaymentHandler(nil),
		Settings: handlers.NewSettingsHandler(nil),
		Report:   handlers.NewReportHandler(nil, time.UTC),
	})

	got := map[string]bool{}
	for _, ri := range r.Routes() {
		got[ri.Method+" "+ri.Path] = true
	}

	expected := []string{
		"GET /swagger/*any",
		"GET /v1/ping",
		"POST /v1/services",
		"GET /v1/services",
		"GET /v1/services/:id",
		"PATCH /v1/services/:id",
		"DELETE /v1/services/:id",
		"POST /v1/services/:id/payments",
		"GET /v1/services/:id/payments",
		"GET /v1/services/:id/payments/:payment_id",
		"GET /v1/settings/tax-rate",
		"PUT /v1/settings/tax-rate",
		"GET /v1/reports/dashboard",
		"GET /v1/reports/calendar",
		"GET /v1/reports/export",
	}
	for _, e := range expected {
		if !got[e] {
			t.Fatalf("missing route %s", e)
		}
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
	if w.Code != http.StatusOK || w.Body.String() != `{"message":"pong"}` {
		t.Fatalf("unexpected ping response %d %s", w.Code, w.Body.String())
	}
}

func TestSwaggerRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	addSwaggerRoutes(r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var doc struct {
		BasePath string                     `json:"basePath"`
		Paths    map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("doc.json is not valid json: %v", err)
	}
	if doc.BasePath != "/v1" {
		t.Fatalf("unexpected basePath %q", doc.BasePath)
	}
	for _, p := range []string{
		"/ping",
		"/services",
		"/services/{id}",
		"/services/{id}/payments",
		"/services/{id}/payments/{payment_id}",
		"/settings/tax-rate",
		"/reports/dashboard",
		"/reports/calendar",
		"/reports/export",
	} {
		if _, ok := doc.Paths[p]; !ok {
			t.Fatalf("missing documented path %s", p)
		}
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected swagger ui, got %d", w.Code)
	}
}
