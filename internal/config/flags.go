package config

import (
	"time"

	"github.com/namsral/flag"
)

var (
	root        = flag.String("root", ".", "The directory to serve static files from")
	spaRoot     = flag.String("spa-root", "", "The directory holding the fallback index.html served for missing .html resources (defaults to the working directory)")
	port        = flag.Int("port", 0, "DEPRECATED, use -listen-http instead")
	showVersion = flag.Bool("version", false, "Show version")

	listenHTTP     = flag.String("listen-http", ":8000", "The address to listen on for HTTP requests")
	statusPath     = flag.String("status-path", "", "The URL path for a status page, e.g., /@status")
	metricsAddress = flag.String("metrics-address", "", "The address to listen on for metrics requests")
	maxURILength   = flag.Int("max-uri-length", 1024, "Limit the length of URI, 0 for unlimited.")

	disableCrossOriginRequests = flag.Bool("disable-cross-origin-requests", false, "Disable cross-origin requests")
	proxyHeaders               = flag.Bool("proxy-headers", false, "Trust X-Forwarded-* headers set by a reverse proxy in front of the server")

	rateLimitSourceIP      = flag.Float64("rate-limit-source-ip", 0.0, "Rate limit HTTP requests per second from a single IP, 0 means is disabled")
	rateLimitSourceIPBurst = flag.Int("rate-limit-source-ip-burst", 100, "Rate limit HTTP requests from a single IP, maximum burst allowed per second")

	logFormat  = flag.String("log-format", "text", "The log output format: 'text' or 'json'")
	logVerbose = flag.Bool("log-verbose", false, "Verbose logging")

	sentryDSN         = flag.String("sentry-dsn", "", "The address for sending sentry crash reporting to")
	sentryEnvironment = flag.String("sentry-environment", "", "The environment for sentry crash reporting")

	serverReadTimeout       = flag.Duration("server-read-timeout", 5*time.Second, "ReadTimeout is the maximum duration for reading the entire request, including the body. A zero or negative value means there will be no timeout.")
	serverReadHeaderTimeout = flag.Duration("server-read-header-timeout", time.Second, "ReadHeaderTimeout is the amount of time allowed to read request headers. A zero or negative value means there will be no timeout.")
	serverWriteTimeout      = flag.Duration("server-write-timeout", 0, "WriteTimeout is the maximum duration before timing out writes of the response. A zero or negative value means there will be no timeout.")
	serverShutdownTimeout   = flag.Duration("server-shutdown-timeout", 30*time.Second, "Server shutdown timeout (default: 30s)")
)

// initFlags will be called from LoadConfig
func initFlags() {
	// read from -config=/path/to/spa-pages-config
	flag.String(flag.DefaultConfigFlagname, "", "path to config file")

	flag.Parse()
}
