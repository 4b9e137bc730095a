package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/namsral/flag"
	log "github.com/sirupsen/logrus"
)

// Config stores all the config options relevant to spa-pages.
type Config struct {
	General   General
	RateLimit RateLimit
	Log       Log
	Sentry    Sentry
	Server    Server
}

// General groups settings that can not be categorized under other heads.
type General struct {
	// RootDir is the directory static files are served from.
	RootDir string

	// SPARoot is the directory holding the fallback index.html used for
	// missing .html resources. It defaults to the process working
	// directory and is tracked separately from RootDir: the two differ
	// unless the caller keeps them identical.
	SPARoot string

	ListenHTTP     string
	StatusPath     string
	MetricsAddress string
	MaxURILength   int

	DisableCrossOriginRequests bool
	ProxyHeaders               bool

	ShowVersion bool
}

// RateLimit groups settings for the per source IP request limiter.
type RateLimit struct {
	SourceIPLimitPerSecond float64
	SourceIPBurstSize      int
}

// Log groups settings related to configuring logging.
type Log struct {
	Format  string
	Verbose bool
}

// Sentry groups settings related to configuring Sentry.
type Sentry struct {
	DSN         string
	Environment string
}

// Server groups settings for the HTTP server itself.
type Server struct {
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	ShutdownTimeout   time.Duration
}

func warnDeprecatedArgs() {
	if *port != 0 {
		log.Warn("-port is deprecated and ignored, use -listen-http to set the listen address")
	}
}

func loadConfig() (*Config, error) {
	warnDeprecatedArgs()

	config := &Config{
		General: General{
			ListenHTTP:                 *listenHTTP,
			StatusPath:                 *statusPath,
			MetricsAddress:             *metricsAddress,
			MaxURILength:               *maxURILength,
			DisableCrossOriginRequests: *disableCrossOriginRequests,
			ProxyHeaders:               *proxyHeaders,
			ShowVersion:                *showVersion,
		},
		RateLimit: RateLimit{
			SourceIPLimitPerSecond: *rateLimitSourceIP,
			SourceIPBurstSize:      *rateLimitSourceIPBurst,
		},
		Log: Log{
			Format:  *logFormat,
			Verbose: *logVerbose,
		},
		Sentry: Sentry{
			DSN:         *sentryDSN,
			Environment: *sentryEnvironment,
		},
		Server: Server{
			ReadTimeout:       *serverReadTimeout,
			ReadHeaderTimeout: *serverReadHeaderTimeout,
			WriteTimeout:      *serverWriteTimeout,
			ShutdownTimeout:   *serverShutdownTimeout,
		},
	}

	rootDir, err := filepath.Abs(*root)
	if err != nil {
		return nil, err
	}
	config.General.RootDir = rootDir

	// The fallback root defaults to the working directory, not to
	// RootDir. Callers that want both to match must pass -spa-root
	// explicitly.
	spaRoot := *spaRoot
	if spaRoot == "" {
		if spaRoot, err = os.Getwd(); err != nil {
			return nil, err
		}
	}
	if config.General.SPARoot, err = filepath.Abs(spaRoot); err != nil {
		return nil, err
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// LogConfig writes the effective settings to the debug log.
func LogConfig(config *Config) {
	log.WithFields(log.Fields{
		"default-config-filename":       flag.DefaultConfigFlagname,
		"disable-cross-origin-requests": config.General.DisableCrossOriginRequests,
		"listen-http":                   config.General.ListenHTTP,
		"log-format":                    config.Log.Format,
		"log-verbose":                   config.Log.Verbose,
		"max-uri-length":                config.General.MaxURILength,
		"metrics-address":               config.General.MetricsAddress,
		"proxy-headers":                 config.General.ProxyHeaders,
		"rate-limit-source-ip":          config.RateLimit.SourceIPLimitPerSecond,
		"rate-limit-source-ip-burst":    config.RateLimit.SourceIPBurstSize,
		"root":                          config.General.RootDir,
		"spa-root":                      config.General.SPARoot,
		"status-path":                   config.General.StatusPath,
		"server-read-timeout":           config.Server.ReadTimeout,
		"server-read-header-timeout":    config.Server.ReadHeaderTimeout,
		"server-write-timeout":          config.Server.WriteTimeout,
		"server-shutdown-timeout":       config.Server.ShutdownTimeout,
	}).Debug("Start daemon with configuration")
}

// LoadConfig parses configuration settings passed as command line
// arguments or via config file, and populates a Config object with those
// values.
func LoadConfig() (*Config, error) {
	initFlags()

	return loadConfig()
}
