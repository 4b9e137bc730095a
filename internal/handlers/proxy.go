package handlers

import (
	"net/http"

	ghandlers "github.com/gorilla/handlers"

	"gitlab.com/tachyons/spa-pages/internal/config"
)

// ProxyHeadersHandler rewrites RemoteAddr and the request scheme from
// X-Forwarded-* headers when the server is configured to trust a reverse
// proxy in front of it.
func ProxyHeadersHandler(config *config.Config, handler http.Handler) http.Handler {
	if config.General.ProxyHeaders {
		handler = ghandlers.ProxyHeaders(handler)
	}
	return handler
}
