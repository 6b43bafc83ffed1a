package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/heartmarshall/travelplan-backend/pkg/ctxutil"
)

// Logger returns middleware that logs each HTTP request with method, path,
// status code, duration, and context identifiers (request_id, owner_id).
// Requests to skipPaths are served but not logged.
func Logger(logger *slog.Logger, skipPaths ...string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if slices.Contains(skipPaths, r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Int("bytes", sw.bytes),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			}
			// Auth runs inside Logger, so the owner is read from the
			// request the inner handlers saw.
			if ownerID, ok := ctxutil.OwnerIDFromCtx(sw.ctxRequest(r).Context()); ok {
				attrs = append(attrs, slog.String("owner_id", ownerID.String()))
			}

			level := slog.LevelInfo
			switch {
			case sw.status >= 500:
				level = slog.LevelError
			case sw.status >= 400:
				level = slog.LevelWarn
			}
			logger.LogAttrs(r.Context(), level, "http.request", attrs...)
		})
	}
}

// statusWriter wraps http.ResponseWriter to capture the response status code.
type statusWriter struct {
	http.ResponseWriter
	status      int
	bytes       int
	wroteHeader bool
	inner       *http.Request
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.wroteHeader = true
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

func (w *statusWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }

// ctxRequest returns the innermost request recorded via captureRequest,
// or r when none was recorded.
func (w *statusWriter) ctxRequest(r *http.Request) *http.Request {
	if w.inner != nil {
		return w.inner
	}
	return r
}

// captureRequest records r on the nearest statusWriter so Logger can see
// identifiers added by middleware running inside it.
func captureRequest(w http.ResponseWriter, r *http.Request) {
	if sw, ok := w.(*statusWriter); ok {
		sw.inner = r
	}
}
