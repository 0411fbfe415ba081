package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"cabdin/internal/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMetrics(t *testing.T) {
	e := echo.New()
	e.Use(PrometheusMetrics)
	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	})

	counter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/ping", "200")
	before := testutil.ToFloat64(counter)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
