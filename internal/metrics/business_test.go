package metrics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertMetricLine matches a sample line while tolerating the scope labels
// added by the exporter.
func assertMetricLine(t *testing.T, output, name, labels, value string) {
	t.Helper()
	assert.Regexp(t, name+`\{[^}]*`+labels+`[^}]*\} `+value, output)
}

func TestStatusFromError(t *testing.T) {
	assert.Equal(t, StatusSuccess, StatusFromError(nil))
	assert.Equal(t, StatusError, StatusFromError(errors.New("boom")))
}

func TestBusinessMetrics_Export(t *testing.T) {
	provider, err := NewProvider("customers_test")
	require.NoError(t, err)
	defer func() { assert.NoError(t, provider.Shutdown(context.Background())) }()

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "customers_test")
	require.NoError(t, err)

	ctx := context.Background()
	bm.RecordOperation(ctx, "customers", "customer_create", StatusSuccess)
	bm.RecordOperation(ctx, "customers", "customer_create", StatusSuccess)
	bm.RecordOperation(ctx, "customers", "customer_create", StatusError)
	bm.RecordOperation(ctx, "customers", "customer_delete", StatusSuccess)
	bm.RecordDuration(ctx, "customers", "customer_create", 40*time.Millisecond, StatusSuccess)
	bm.RecordDuration(ctx, "customers", "customer_create", 60*time.Millisecond, StatusSuccess)

	output := scrape(t, provider)

	assertMetricLine(t, output, `customers_test_operations_total`,
		`domain="customers".*operation="customer_create".*status="success"`, `2`)
	assertMetricLine(t, output, `customers_test_operations_total`,
		`domain="customers".*operation="customer_create".*status="error"`, `1`)
	assertMetricLine(t, output, `customers_test_operations_total`,
		`domain="customers".*operation="customer_delete".*status="success"`, `1`)
	assertMetricLine(t, output, `customers_test_operation_duration_seconds_count`,
		`domain="customers".*operation="customer_create".*status="success"`, `2`)
}

func TestNoOpBusinessMetrics(t *testing.T) {
	m := NewNoOpBusinessMetrics()

	assert.IsType(t, NoOpBusinessMetrics{}, m)
	assert.NotPanics(t, func() {
		m.RecordOperation(context.Background(), "customers", "customer_get", StatusSuccess)
		m.RecordDuration(context.Background(), "customers", "customer_get", time.Millisecond, StatusError)
	})
}
