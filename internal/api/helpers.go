package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
)

type ErrorResponse struct {
	Message     string `json:"message"`
	Description string `json:"description,omitempty"`
}

func SendJSONErr(ctx context.Context, w http.ResponseWriter, code int, originErr error, msgToSend string) {
	resp := ErrorResponse{Message: msgToSend}

	if originErr != nil {
		slog.ErrorContext(ctx, "api error", "error", originErr.Error())
		resp.Description = originErr.Error()
	} else {
		slog.ErrorContext(ctx, "api error", "error", msgToSend)
	}

	SendJSON(ctx, w, code, resp)
}

func SendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		slog.ErrorContext(ctx, "encode response", "error", err)
	}
}
