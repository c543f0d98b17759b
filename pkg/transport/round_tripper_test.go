package transport_test

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/csob/pkg/logger"
	"github.com/samandr77/microservices/csob/pkg/transport"
)

//nolint:paralleltest
func TestRoundTripper_RoundTrip(t *testing.T) {
	buf := new(bytes.Buffer)

	now := time.Now().Format(time.DateOnly)

	slog.SetDefault(slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "time" {
				return slog.Attr{Key: a.Key, Value: slog.StringValue(now)}
			}
			return a
		},
	})))

	var gotRequestID string

	mux := http.NewServeMux()
	mux.HandleFunc("/payment/init", func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get("X-Request-Id")
		_, _ = fmt.Fprintf(w, `{"payId": "abc"}`)
	})
	mux.HandleFunc("/payment/status", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := &http.Client{
		Timeout:   time.Second * 10,
		Transport: transport.NewLoggingRoundTripper(http.DefaultTransport),
	}

	req, err := http.NewRequestWithContext(
		logger.WithRequestID(context.Background(), "req-1"),
		http.MethodPost, server.URL+"/payment/init",
		strings.NewReader(`{"merchantId": "M1"}`),
	)
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, "req-1", gotRequestID)

	req, err = http.NewRequestWithContext(
		context.Background(),
		http.MethodGet, server.URL+"/payment/status",
		nil,
	)
	require.NoError(t, err)

	resp2, err := client.Do(req)
	require.NoError(t, err)

	defer resp2.Body.Close()

	require.Equal(t, buf.String(),
		fmt.Sprintf(`{"time":"%s","level":"INFO","msg":"outgoing request","request":"POST %s/payment/init"}
{"time":"%s","level":"INFO","msg":"incoming response","response":"POST %s/payment/init","status":200}
{"time":"%s","level":"INFO","msg":"outgoing request","request":"GET %s/payment/status"}
{"time":"%s","level":"INFO","msg":"incoming response","response":"GET %s/payment/status","status":404}
`, now, server.URL, now, server.URL, now, server.URL, now, server.URL))
}
