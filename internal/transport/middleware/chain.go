package middleware

import (
	"net/http"
	"slices"
)

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain composes mws so that the first one sees the request first. The API
// relies on that order: the rate limiter buckets requests by owner, so it is
// listed after Auth, which puts the owner id into the context.
// Nil entries are skipped, so a disabled limiter can be passed inline.
func Chain(mws ...Middleware) Middleware {
	return func(h http.Handler) http.Handler {
		for _, mw := range slices.Backward(mws) {
			if mw != nil {
				h = mw(h)
			}
		}
		return h
	}
}
