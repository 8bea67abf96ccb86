package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

func TestMetrics_Handler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	r := gin.New()
	r.Use(m.Handler())
	r.GET("/v1/services/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for _, path := range []string{"/v1/services/a", "/v1/services/b", "/nowhere"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}

	counts := map[string]float64{}
	for _, mf := range families {
		if mf.GetName() != "http_requests_total" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range metric.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			counts[labels["route"]+" "+labels["status"]] += metric.GetCounter().GetValue()
		}
	}

	if counts["/v1/services/:id 204"] != 2 {
		t.Fatalf("expected 2 requests on the route template, got %v", counts)
	}
	if counts[unmatchedRoute+" 404"] != 1 {
		t.Fatalf("expected 1 unmatched request, got %v", counts)
	}
}
