package middleware

import (
	"encoding/json"
	"net/http"
)

// writeError renders the same error envelope as the REST handlers, so
// clients see one shape whether a request failed in middleware or deeper.
func writeError(w http.ResponseWriter, status int, kind, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error":   message,
		"kind":    kind,
	})
}
