package api

import (
	"bytes"
	"crypto/subtle"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v4/request"

	"github.com/samandr77/microservices/csob/internal/entity"
	"github.com/samandr77/microservices/csob/pkg/logger"
)

var skipLogging = map[string]struct{}{
	"/api/health": {},
}

type Middleware struct {
	apiKeyEnabled bool
	apiKey        string
}

func NewMiddleware(apiKeyEnabled bool, apiKey string) *Middleware {
	return &Middleware{
		apiKeyEnabled: apiKeyEnabled,
		apiKey:        apiKey,
	}
}

func (m *Middleware) Log(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.Must(uuid.NewV4()).String()
		}

		ctx = logger.WithRequestID(ctx, requestID)
		w.Header().Set("X-Request-Id", requestID)

		if _, ok := skipLogging[r.URL.Path]; !ok {
			reqBody, err := io.ReadAll(r.Body)
			if err != nil {
				SendJSONErr(ctx, w, http.StatusInternalServerError, err, "read request body")
				return
			}

			r.Body.Close()
			r.Body = io.NopCloser(bytes.NewBuffer(reqBody))

			var headers strings.Builder

			for k, v := range r.Header {
				if k == "Authorization" || k == "Cookie" || k == "X-Api-Key" {
					continue
				}

				headers.WriteString(fmt.Sprintf("%s: %s,\n", k, v))
			}

			slog.InfoContext(ctx, "incoming request",
				"request", fmt.Sprintf("%s %s\n%s", r.Method, r.URL.Redacted(), reqBody),
				"headers", headers.String(),
			)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		defer func() {
			err := recover()
			if err != nil {
				slog.ErrorContext(ctx, "recovered from panic", "error", err, "stack", string(debug.Stack()))
				SendJSONErr(ctx, w, http.StatusInternalServerError, fmt.Errorf("panic: %v", err), "Internal error")
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// APIKeyAuth verifies incoming API key. The key is read from X-Api-Key or from
// a bearer Authorization header.
func (m *Middleware) APIKeyAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if !m.apiKeyEnabled {
			next.ServeHTTP(w, r)
			return
		}

		apiKey := r.Header.Get("X-Api-Key")
		if apiKey == "" {
			token, err := request.BearerExtractor{}.ExtractToken(r)
			if err != nil {
				SendJSONErr(ctx, w, http.StatusUnauthorized, fmt.Errorf("%w: %w", entity.ErrUnauthenticated, err),
					"API key is missing")
				return
			}

			apiKey = token
		}

		if subtle.ConstantTimeCompare([]byte(apiKey), []byte(m.apiKey)) != 1 {
			SendJSONErr(ctx, w, http.StatusUnauthorized, entity.ErrUnauthenticated, "Invalid API key")
			return
		}

		next.ServeHTTP(w, r)
	})
}
