package healthcheck_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"gitlab.com/tachyons/spa-pages/internal/healthcheck"
)

func TestHealthCheckMiddleware(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("app"))
	})

	handler := healthcheck.NewMiddleware(inner, "/-/healthcheck")

	t.Run("status_path_returns_success", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/-/healthcheck", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		require.Equal(t, "success\n", rr.Body.String())
		require.Equal(t, "no-store", rr.Header().Get("Cache-Control"))
	})

	t.Run("other_paths_pass_through", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/index.html", nil))

		require.Equal(t, "app", rr.Body.String())
	})
}

func TestHealthCheckMiddlewareDisabled(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("app"))
	})

	handler := healthcheck.NewMiddleware(inner, "")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/-/healthcheck", nil))

	require.Equal(t, "app", rr.Body.String())
}
