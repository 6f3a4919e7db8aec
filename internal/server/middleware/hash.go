package middleware

import (
	"bytes"
	"net/http"

	"github.com/and161185/numclass/internal/utils"
)

// HashHeader carries the HMAC-SHA256 of the response body.
const HashHeader = "HashSHA256"

// SignResponseMiddleware buffers the response and signs it with key.
// An empty key disables signing.
func SignResponseMiddleware(key string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if key == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			capture := &responseCapture{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(capture, r)

			w.Header().Set(HashHeader, utils.CalculateHash(capture.body.Bytes(), key))
			w.WriteHeader(capture.status)
			_, _ = w.Write(capture.body.Bytes())
		})
	}
}

type responseCapture struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (r *responseCapture) WriteHeader(code int) { r.status = code }

func (r *responseCapture) Write(b []byte) (int, error) { return r.body.Write(b) }
