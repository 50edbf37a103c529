package middleware

import (
	"context"
	"net/http"
	"time"
)

// RequestTimeout bounds the request context by d. The handler owns the
// response; a request that runs out of time fails through the error it
// gets back from the store or the day lock.
func RequestTimeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
