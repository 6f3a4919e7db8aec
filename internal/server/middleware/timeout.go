package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/and161185/numclass/model"
)

// TimeoutMessage is returned when a request outlives its deadline without writing a response.
const TimeoutMessage = "Gateway Timeout"

// Timeout puts a deadline on the request context. A handler that is still silent when the
// deadline passes gets a JSON 504; one that already answered keeps its response.
func Timeout(d time.Duration) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			sw := newStatusWriter(w)
			next.ServeHTTP(sw, r.WithContext(ctx))

			if sw.wroteHeader || !errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusGatewayTimeout)
			writeErrorBody(w, TimeoutMessage)
		})
	}
}

func writeErrorBody(w http.ResponseWriter, msg string) {
	_ = json.NewEncoder(w).Encode(model.NewErrorResult(msg))
}
