package transport

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/samandr77/microservices/csob/pkg/logger"
)

// LoggingRoundTripper propagates the request ID to outgoing calls and logs them.
type LoggingRoundTripper struct {
	Transport http.RoundTripper
}

func NewLoggingRoundTripper(transport http.RoundTripper) *LoggingRoundTripper {
	if transport == nil {
		transport = http.DefaultTransport
	}

	return &LoggingRoundTripper{Transport: transport}
}

func (l *LoggingRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	ctx := r.Context()

	reqID := logger.RequestIDFromCtx(ctx)
	if reqID != "" {
		r.Header.Set("X-Request-Id", reqID)
	}

	slog.InfoContext(ctx, "outgoing request", "request", fmt.Sprintf("%s %s", r.Method, r.URL.Redacted()))

	resp, err := l.Transport.RoundTrip(r)
	if err != nil {
		return nil, fmt.Errorf("round trip: %w", err)
	}

	slog.InfoContext(ctx, "incoming response",
		"response", fmt.Sprintf("%s %s", r.Method, r.URL.Redacted()),
		"status", resp.StatusCode,
	)

	return resp, nil
}
