package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func serveTrusted(t *testing.T, cidr string, prepare func(r *http.Request)) int {
	t.Helper()
	mw, err := TrustedCIDR(cidr)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	prepare(req)
	rr := httptest.NewRecorder()
	mw(okHandler()).ServeHTTP(rr, req)
	return rr.Code
}

func TestTrustedCIDR_Empty_AllowsAll(t *testing.T) {
	code := serveTrusted(t, "", func(r *http.Request) {})
	require.Equal(t, http.StatusOK, code)
}

func TestTrustedCIDR_RealIPInside_OK(t *testing.T) {
	code := serveTrusted(t, "10.0.0.0/24", func(r *http.Request) {
		r.Header.Set("X-Real-IP", "10.0.0.42")
	})
	require.Equal(t, http.StatusOK, code)
}

func TestTrustedCIDR_RemoteAddrInside_OK(t *testing.T) {
	code := serveTrusted(t, "10.0.0.0/24", func(r *http.Request) {
		r.RemoteAddr = "10.0.0.7:53211"
	})
	require.Equal(t, http.StatusOK, code)
}

func TestTrustedCIDR_Outside_Forbidden(t *testing.T) {
	code := serveTrusted(t, "10.0.0.0/24", func(r *http.Request) {
		r.Header.Set("X-Real-IP", "192.168.1.10")
	})
	require.Equal(t, http.StatusForbidden, code)
}

func TestTrustedCIDR_InvalidCIDR(t *testing.T) {
	_, err := TrustedCIDR("wtf")
	require.Error(t, err)
}
