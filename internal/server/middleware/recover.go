package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/and161185/numclass/internal/metrics"
	"go.uber.org/zap"
)

// InternalErrorMessage is the only detail a client sees about a server fault.
const InternalErrorMessage = "Internal Server Error"

// Recover turns a panic anywhere below it into a JSON 500 response.
func Recover(logger *zap.SugaredLogger, m *metrics.Metrics) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				m.PanicRecovered()
				logger.Errorw("panic recovered",
					"error", rec,
					"method", r.Method,
					"path", r.URL.Path,
					"request_id", RequestIDFromContext(r.Context()),
					"stack", string(debug.Stack()),
				)
				WriteInternalError(w)
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// WriteInternalError writes the generic 500 body.
func WriteInternalError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	writeErrorBody(w, InternalErrorMessage)
}
