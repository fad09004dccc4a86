package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	provider, err := NewProvider("customers_test")
	require.NoError(t, err)
	defer func() { assert.NoError(t, provider.Shutdown(context.Background())) }()

	router := gin.New()
	router.Use(HTTPMetricsMiddleware(provider.MeterProvider(), "customers_test"))
	router.GET("/v1/customers/:id", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for _, path := range []string{"/v1/customers/1", "/v1/customers/2", "/v1/customers/3"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	output := scrape(t, provider)

	assertMetricLine(t, output, `customers_test_http_requests_total`,
		`method="GET".*path="/v1/customers/:id".*status_code="200"`, `3`)
	assertMetricLine(t, output, `customers_test_http_requests_total`,
		`method="GET".*path="unknown".*status_code="404"`, `1`)
}

func TestRoutePattern(t *testing.T) {
	assert.Equal(t, "unknown", routePattern(""))
	assert.Equal(t, "/v1/customers/:id", routePattern("/v1/customers/:id"))
}
