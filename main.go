package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"gitlab.com/gitlab-org/labkit/errortracking"

	"gitlab.com/tachyons/spa-pages/internal/config"
	"gitlab.com/tachyons/spa-pages/internal/logging"
	"gitlab.com/tachyons/spa-pages/metrics"
)

// VERSION stores the information about the semantic version of application
var VERSION = "dev"

// REVISION stores the information about the git revision of application
var REVISION = "HEAD"

func main() {
	log.SetOutput(os.Stderr)

	metrics.MustRegister()

	if err := appMain(); err != nil {
		fatal(err, "spa-pages failed")
	}
}

func appMain() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	printVersion(cfg.General.ShowVersion, VERSION)

	if err := logging.ConfigureLogging(cfg.Log.Format, cfg.Log.Verbose); err != nil {
		return err
	}

	if cfg.Sentry.DSN != "" {
		initErrorReporting(cfg.Sentry.DSN, cfg.Sentry.Environment)
	}

	loadMIMETypes()

	log.WithFields(log.Fields{
		"version":  VERSION,
		"revision": REVISION,
	}).Info("spa-pages daemon")
	config.LogConfig(cfg)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	a := &theApp{config: cfg}

	return a.Run(ctx)
}

func initErrorReporting(sentryDSN, sentryEnvironment string) {
	errortracking.Initialize(
		errortracking.WithSentryDSN(sentryDSN),
		errortracking.WithVersion(fmt.Sprintf("%s-%s", VERSION, REVISION)),
		errortracking.WithLoggerName("spa-pages"),
		errortracking.WithSentryEnvironment(sentryEnvironment))
}

func printVersion(showVersion bool, version string) {
	if showVersion {
		fmt.Fprintf(os.Stdout, "%s\n", version)
		os.Exit(0)
	}
}

func fatal(err error, msg string) {
	log.WithError(err).Fatal(msg)
}
