package main

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"gitlab.com/gitlab-org/labkit/correlation"
	"golang.org/x/sync/errgroup"

	"gitlab.com/tachyons/spa-pages/internal/config"
	"gitlab.com/tachyons/spa-pages/internal/handlers"
	"gitlab.com/tachyons/spa-pages/internal/healthcheck"
	"gitlab.com/tachyons/spa-pages/internal/logging"
	"gitlab.com/tachyons/spa-pages/internal/ratelimiter"
	"gitlab.com/tachyons/spa-pages/internal/rejectmethods"
	"gitlab.com/tachyons/spa-pages/internal/serving"
	"gitlab.com/tachyons/spa-pages/internal/urilimiter"
)

type theApp struct {
	config *config.Config
}

// buildHandler assembles the middleware chain around the file server.
// Proxy header rewriting and correlation IDs come first so that access
// logging and rate limiting see the real client; the healthcheck skips
// everything below it.
func (a *theApp) buildHandler() (http.Handler, error) {
	fileServer, err := serving.New(a.config)
	if err != nil {
		return nil, err
	}

	handler := http.Handler(fileServer)
	handler = handlers.CorsHandler(a.config, handler)

	if a.config.RateLimit.SourceIPLimitPerSecond > 0 {
		rl := ratelimiter.New(
			ratelimiter.WithSourceIPLimitPerSecond(a.config.RateLimit.SourceIPLimitPerSecond),
			ratelimiter.WithSourceIPBurstSize(a.config.RateLimit.SourceIPBurstSize),
		)
		handler = rl.SourceIPLimiter(handler)
	}

	handler = healthcheck.NewMiddleware(handler, a.config.General.StatusPath)
	handler = urilimiter.NewMiddleware(handler, a.config.General.MaxURILength)
	handler = rejectmethods.NewMiddleware(handler)

	handler, err = logging.AccessLogger(handler, a.config.Log.Format)
	if err != nil {
		return nil, err
	}

	handler = correlation.InjectCorrelationID(handler, correlation.WithSetResponseHeader())
	handler = handlers.ProxyHeadersHandler(a.config, handler)

	return handler, nil
}

func (a *theApp) Run(ctx context.Context) error {
	handler, err := a.buildHandler()
	if err != nil {
		return err
	}

	server := newServer(a.config.General.ListenHTTP, handler, &a.config.Server)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.WithFields(log.Fields{
			"listener": server.Addr,
			"root":     a.config.General.RootDir,
			"spa-root": a.config.General.SPARoot,
		}).Info("serving with SPA fallback and SSI enabled")

		return listenAndServe(server)
	})

	var metricsServer *http.Server
	if a.config.General.MetricsAddress != "" {
		metricsServer = newServer(a.config.General.MetricsAddress, promhttp.Handler(), &a.config.Server)

		g.Go(func() error {
			log.WithFields(log.Fields{
				"listener": metricsServer.Addr,
			}).Info("serving metrics")

			return listenAndServe(metricsServer)
		})
	}

	g.Go(func() error {
		<-ctx.Done()

		return shutdownServers(a.config.Server.ShutdownTimeout, server, metricsServer)
	})

	return g.Wait()
}
