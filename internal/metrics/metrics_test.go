package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_Record(t *testing.T) {
	m := New()

	m.ObserveRequest("POST", "/price/predict", "200", 0.001)
	m.ObserveRequest("POST", "/price/predict", "200", 0.002)
	m.RecordFilter("bedrooms")
	m.RecordEstimate("chennai", true)
	m.RecordEstimate("atlantis", false)

	if got := testutil.ToFloat64(m.RequestCounter.WithLabelValues("POST", "/price/predict", "200")); got != 2 {
		t.Errorf("request counter = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.FilterCounter.WithLabelValues("bedrooms")); got != 1 {
		t.Errorf("filter counter = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.EstimateCounter.WithLabelValues("other")); got != 1 {
		t.Errorf("unknown city counter = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.EstimateCounter.WithLabelValues("chennai")); got != 1 {
		t.Errorf("chennai counter = %v, want 1", got)
	}
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.RecordEstimate("chennai", true)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `ai_service_price_estimates_total{city="chennai"} 1`) {
		t.Errorf("exposition missing estimate counter:\n%s", w.Body.String())
	}
}

func TestNew_IndependentRegistries(t *testing.T) {
	a, b := New(), New()
	a.PanicCounter.Inc()

	if got := testutil.ToFloat64(b.PanicCounter); got != 0 {
		t.Errorf("second registry panic counter = %v, want 0", got)
	}
}

func TestMetrics_Registry(t *testing.T) {
	m := New()
	m.RecordEstimate("chennai", true)
	m.RecordEstimate("bangalore", true)
	m.RecordEstimate("chennai", true)

	count, err := testutil.GatherAndCount(m.Registry(), "ai_service_price_estimates_total")
	if err != nil {
		t.Fatalf("GatherAndCount() error = %v", err)
	}
	if count != 2 {
		t.Errorf("estimate series = %d, want 2", count)
	}
}
