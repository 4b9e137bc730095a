package rejectmethods

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewMiddleware(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK\n"))
	})

	middleware := NewMiddleware(inner)

	acceptedMethods := []string{"GET", "HEAD", "POST", "PUT", "PATCH", "DELETE", "CONNECT", "OPTIONS", "TRACE"}
	for _, method := range acceptedMethods {
		t.Run(method, func(t *testing.T) {
			rr := httptest.NewRecorder()
			middleware.ServeHTTP(rr, httptest.NewRequest(method, "/", nil))

			require.Equal(t, http.StatusOK, rr.Code)
		})
	}

	t.Run("UNKNOWN", func(t *testing.T) {
		rr := httptest.NewRecorder()
		middleware.ServeHTTP(rr, httptest.NewRequest("UNKNOWN", "/", nil))

		require.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	})
}
