package ratelimiter

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"gitlab.com/gitlab-org/labkit/correlation"
	"gitlab.com/gitlab-org/labkit/log"

	"gitlab.com/tachyons/spa-pages/internal/httperrors"
	"gitlab.com/tachyons/spa-pages/internal/request"
	"gitlab.com/tachyons/spa-pages/metrics"
)

// SourceIPLimiter returns middleware for rate-limiting clients based on their IP
func (rl *RateLimiter) SourceIPLimiter(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sourceIP := request.GetRemoteAddrWithoutPort(r)
		if !rl.SourceIPAllowed(sourceIP) {
			rl.logSourceIP(r, sourceIP)
			metrics.RateLimitBlockedCount.Inc()
			httperrors.Serve429(w)

			return
		}

		handler.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) logSourceIP(r *http.Request, sourceIP string) {
	log.WithFields(logrus.Fields{
		"handler":                       "source_ip_rate_limiter",
		"correlation_id":                correlation.ExtractFromContext(r.Context()),
		"req_host":                      r.Host,
		"req_path":                      r.URL.Path,
		"remote_addr":                   r.RemoteAddr,
		"source_ip":                     sourceIP,
		"rate_limiter_limit_per_second": rl.sourceIPLimitPerSecond,
		"rate_limiter_burst_size":       rl.sourceIPBurstSize,
	}).Debug("source IP hit rate limit")
}
