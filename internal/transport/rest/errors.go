package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/travelplan-backend/internal/domain"
)

type errorResponse struct {
	Success bool         `json:"success"`
	Error   string       `json:"error"`
	Kind    string       `json:"kind"`
	Fields  []fieldError `json:"fields,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, kind, message string) {
	writeJSON(w, status, errorResponse{Error: message, Kind: kind})
}

// statusOf maps an error kind to its HTTP status.
func statusOf(kind string) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindUnauthorized:
		return http.StatusUnauthorized
	case domain.KindConflict:
		return http.StatusConflict
	case domain.KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError renders err as the JSON error envelope. Server-side
// failures are logged; their details never reach the client.
func writeServiceError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	kind := domain.ErrorKind(err)
	status := statusOf(kind)

	resp := errorResponse{Kind: kind}
	switch kind {
	case domain.KindValidation:
		resp.Error = "validation failed"
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			for _, fe := range ve.Errors {
				resp.Fields = append(resp.Fields, fieldError{Field: fe.Field, Message: fe.Message})
			}
			if len(ve.Errors) == 1 {
				resp.Error = ve.Error()
			}
		}
	case domain.KindNotFound:
		resp.Error = "not found"
	case domain.KindUnauthorized:
		resp.Error = "unauthorized"
	case domain.KindConflict:
		resp.Error = "conflict"
	case domain.KindUnavailable:
		log.ErrorContext(r.Context(), "repository unavailable", slog.String("error", err.Error()))
		resp.Error = "repository unavailable"
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		resp.Error = "internal server error"
	}

	writeJSON(w, status, resp)
}
