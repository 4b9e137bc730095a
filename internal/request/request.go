package request

import (
	"net"
	"net/http"
)

// GetRemoteAddrWithoutPort returns the client IP of the request without
// the port. When the server runs behind a reverse proxy with
// -proxy-headers enabled, RemoteAddr has already been rewritten from the
// forwarding headers by the proxy headers middleware.
func GetRemoteAddrWithoutPort(r *http.Request) string {
	if remoteAddr, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return remoteAddr
	}

	return r.RemoteAddr
}

// GetHostWithoutPort returns the requested host without the port.
func GetHostWithoutPort(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.Host); err == nil {
		return host
	}

	return r.Host
}
