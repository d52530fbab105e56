package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hotel/config"
	"hotel/infras/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	cfg := &config.Config{}
	cfg.Metrics.Namespace = "hotel"

	m := metrics.New(cfg)

	m.Checkout.WithLabelValues(metrics.ResultBlocked).Inc()
	m.Checkout.WithLabelValues(metrics.ResultBlocked).Inc()
	m.ObserveRequest(http.MethodGet, "/v1/rooms", "200", 15*time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.Checkout.WithLabelValues(metrics.ResultBlocked)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.RequestsTotal.WithLabelValues(http.MethodGet, "/v1/rooms", "200")))
}

func TestMetrics_Handler(t *testing.T) {
	cfg := &config.Config{}
	cfg.Metrics.Namespace = "hotel"

	m := metrics.New(cfg)
	m.BillGeneration.WithLabelValues(metrics.ResultSuccess).Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "hotel_checkout_bill_generations_total"))
}
