package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/csob/pkg/logger"
)

//nolint:paralleltest
func TestHandler_AddsContextAttrs(t *testing.T) {
	buf := new(bytes.Buffer)

	l, err := logger.NewWithWriter(buf, "debug", "json")
	require.NoError(t, err)

	ctx := logger.WithRequestID(context.Background(), "req-1")
	ctx = logger.WithOrderNo(ctx, "12345")

	l.With("component", "test").InfoContext(ctx, "payment signed")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	require.Equal(t, "payment signed", record["msg"])
	require.Equal(t, "req-1", record["request_id"])
	require.Equal(t, "12345", record["order_no"])
	require.Equal(t, "test", record["component"])
	require.Equal(t, "req-1", logger.RequestIDFromCtx(ctx))
}

//nolint:paralleltest
func TestNew_InvalidLevel(t *testing.T) {
	_, err := logger.NewWithWriter(new(bytes.Buffer), "loud", "json")
	require.Error(t, err)
}
