package urilimiter_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"gitlab.com/tachyons/spa-pages/internal/urilimiter"
)

func TestNewMiddleware(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	tests := map[string]struct {
		limit          int
		target         string
		expectedStatus int
	}{
		"disabled_limit": {
			limit:          0,
			target:         "/index.html?with=some&very=long&query=string",
			expectedStatus: http.StatusNoContent,
		},
		"uri_below_limit": {
			limit:          25,
			target:         "/index.html",
			expectedStatus: http.StatusNoContent,
		},
		"uri_at_limit": {
			limit:          11,
			target:         "/index.html",
			expectedStatus: http.StatusNoContent,
		},
		"uri_above_limit": {
			limit:          10,
			target:         "/index.html",
			expectedStatus: http.StatusRequestURITooLong,
		},
		"query_string_counts": {
			limit:          15,
			target:         "/index.html?q=1234",
			expectedStatus: http.StatusRequestURITooLong,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			handler := urilimiter.NewMiddleware(inner, tc.limit)

			rr := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, tc.target, nil)
			r.RequestURI = tc.target
			handler.ServeHTTP(rr, r)

			require.Equal(t, tc.expectedStatus, rr.Code)
		})
	}
}
