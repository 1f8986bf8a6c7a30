package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/riseflow-agreements/internal/auth"
	"github.com/heartmarshall/riseflow-agreements/internal/config"
	"github.com/heartmarshall/riseflow-agreements/internal/metrics"
	"github.com/heartmarshall/riseflow-agreements/internal/service/agreement"
	"github.com/heartmarshall/riseflow-agreements/internal/transport/middleware"
	"github.com/heartmarshall/riseflow-agreements/internal/transport/rest"
)

type dbPinger interface {
	Ping(ctx context.Context) error
}

type handlerDeps struct {
	agreements *agreement.Service
	tokens     *auth.JWTManager
	metrics    *metrics.Metrics
	limiter    *middleware.RateLimiter
	db         dbPinger
	storage    dbPinger // nil when object storage is disabled
}

// newHandler builds the mux and wraps it in the middleware chain. RequestID
// sits outside Recovery so a 500 still carries its request ID. Auth runs
// before Logger so request logs carry the caller; Metrics wraps the mux
// directly to see the matched route pattern.
func newHandler(logger *slog.Logger, cfg *config.Config, deps handlerDeps) http.Handler {
	mux := http.NewServeMux()

	health := rest.NewHealthHandler(deps.db, BuildVersion())
	if deps.storage != nil {
		health.WithComponent("storage", deps.storage)
	}
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)
	mux.Handle("GET /metrics", deps.metrics.Handler())

	rest.NewAgreementHandler(deps.agreements, logger).Register(mux, rest.Limits{
		Sign: deps.limiter.Limit(cfg.RateLimit.SignPerMinute),
		View: deps.limiter.Limit(cfg.RateLimit.ViewPerMinute),
	})

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.ClientInfo(cfg.Server.TrustProxy),
		middleware.CORS(cfg.CORS),
		middleware.Auth(deps.tokens),
		middleware.Logger(logger),
		middleware.Metrics(deps.metrics),
	)(mux)
}
