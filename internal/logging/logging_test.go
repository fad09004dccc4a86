package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	return record
}

func TestSlogLogger_LogInformation(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLogger(NewJSONLogger(&buf, "info"), "customer_service")

	logger.LogInformation(context.Background(), "Method GetCustomer was hit...")

	record := decodeRecord(t, &buf)
	assert.Equal(t, "INFO", record["level"])
	assert.Equal(t, "Method GetCustomer was hit...", record["msg"])
	assert.Equal(t, "customer_service", record["component"])
	assert.NotContains(t, record, "error")
}

func TestSlogLogger_LogError(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLogger(NewJSONLogger(&buf, "info"), "customer_service")

	logger.LogError(context.Background(), errors.New("boom"), "Method GetCustomer failed")

	record := decodeRecord(t, &buf)
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "Method GetCustomer failed", record["msg"])
	assert.Equal(t, "boom", record["error"])
	assert.Equal(t, "customer_service", record["component"])
}

func TestSlogLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLogger(NewJSONLogger(&buf, "error"), "customer_service")

	logger.LogInformation(context.Background(), "Method ListCustomers was hit...")
	assert.Zero(t, buf.Len())

	logger.LogError(context.Background(), errors.New("boom"), "failed")
	assert.NotZero(t, buf.Len())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}
