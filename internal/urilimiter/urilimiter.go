package urilimiter

import (
	"net/http"

	"gitlab.com/tachyons/spa-pages/internal/httperrors"
)

// NewMiddleware returns middleware which responds with 414 to requests
// with an URI exceeding limit
func NewMiddleware(handler http.Handler, limit int) http.Handler {
	if limit == 0 {
		return handler
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(r.RequestURI) > limit {
			httperrors.Serve414(w)

			return
		}

		handler.ServeHTTP(w, r)
	})
}
