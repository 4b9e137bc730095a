package httperrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateErrorHTML(t *testing.T) {
	tests := map[string]struct {
		content content
		substrs []string
	}{
		"not_found": {
			content: content404,
			substrs: []string{"404", "File not found"},
		},
		"method_not_allowed": {
			content: content405,
			substrs: []string{"405", "Method not allowed"},
		},
		"uri_too_long": {
			content: content414,
			substrs: []string{"414", "Request URI Too Long"},
		},
		"too_many_requests": {
			content: content429,
			substrs: []string{"429", "Too many requests"},
		},
		"internal_error": {
			content: content500,
			substrs: []string{"500", "Whoops, something went wrong"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			html := generateErrorHTML(tc.content)
			for _, s := range tc.substrs {
				require.Contains(t, html, s)
			}
		})
	}
}

func TestServeErrorPages(t *testing.T) {
	tests := map[string]struct {
		serve  func(http.ResponseWriter)
		status int
	}{
		"serve_404": {Serve404, http.StatusNotFound},
		"serve_405": {Serve405, http.StatusMethodNotAllowed},
		"serve_414": {Serve414, http.StatusRequestURITooLong},
		"serve_429": {Serve429, http.StatusTooManyRequests},
		"serve_500": {Serve500, http.StatusInternalServerError},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			tc.serve(rr)

			require.Equal(t, tc.status, rr.Code)
			require.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
			require.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
			require.NotEmpty(t, rr.Body.String())
		})
	}
}
