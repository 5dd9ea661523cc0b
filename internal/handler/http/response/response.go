package response

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// JSON writes payload as the response body with the given status.
func JSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.ErrorContext(r.Context(), "failed to encode response", slog.Any("error", err))
	}
}
