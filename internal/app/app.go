package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/riseflow-agreements/internal/adapter/objectstore"
	"github.com/heartmarshall/riseflow-agreements/internal/adapter/postgres"
	"github.com/heartmarshall/riseflow-agreements/internal/adapter/postgres/adminaudit"
	agreementrepo "github.com/heartmarshall/riseflow-agreements/internal/adapter/postgres/agreement"
	"github.com/heartmarshall/riseflow-agreements/internal/adapter/postgres/agreementlog"
	"github.com/heartmarshall/riseflow-agreements/internal/adapter/postgres/assignment"
	"github.com/heartmarshall/riseflow-agreements/internal/adapter/postgres/emaillog"
	notificationrepo "github.com/heartmarshall/riseflow-agreements/internal/adapter/postgres/notification"
	"github.com/heartmarshall/riseflow-agreements/internal/adapter/postgres/user"
	"github.com/heartmarshall/riseflow-agreements/internal/adapter/smtp"
	"github.com/heartmarshall/riseflow-agreements/internal/auth"
	"github.com/heartmarshall/riseflow-agreements/internal/config"
	"github.com/heartmarshall/riseflow-agreements/internal/domain"
	"github.com/heartmarshall/riseflow-agreements/internal/metrics"
	"github.com/heartmarshall/riseflow-agreements/internal/service/agreement"
	"github.com/heartmarshall/riseflow-agreements/internal/service/notification"
	"github.com/heartmarshall/riseflow-agreements/internal/transport/middleware"
)

// mailSender is satisfied by *smtp.Mailer. Kept as an interface so a
// disabled mailer stays a true nil.
type mailSender interface {
	Send(ctx context.Context, msg domain.EmailMessage) error
}

// Run is the application entry point. It loads configuration, connects
// to PostgreSQL and optional SMTP/object storage, serves HTTP until ctx is
// cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	setupCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(setupCtx, cfg.Database, ServiceName)
	if err != nil {
		return err
	}
	defer pool.Close()
	logger.Info("database connected")

	var mailer mailSender
	if cfg.SMTP.Enabled() {
		m, err := smtp.New(cfg.SMTP, logger)
		if err != nil {
			return fmt.Errorf("smtp: %w", err)
		}
		mailer = m
		logger.Info("email delivery enabled", slog.String("smtp_host", cfg.SMTP.Host))
	} else {
		logger.Warn("smtp host not set, email delivery disabled")
	}

	var (
		copies agreement.SignedCopyStore
		store  *objectstore.Store
	)
	if cfg.Storage.Enabled {
		store, err = objectstore.New(cfg.Storage)
		if err != nil {
			return err
		}
		if err := store.EnsureBucket(setupCtx); err != nil {
			return err
		}
		copies = store
		logger.Info("signed copy archive enabled", slog.String("bucket", cfg.Storage.Bucket))
	}

	promMetrics := metrics.New()
	txm := postgres.NewTxManager(pool)

	notifier := notification.NewService(logger,
		notification.Config{
			AgreementLink: cfg.Notify.AgreementLink(),
			Concurrency:   cfg.Notify.Concurrency,
		},
		notificationrepo.New(pool),
		emaillog.New(pool),
		mailer,
	)

	agreementSvc := agreement.NewService(logger,
		agreement.Config{DispatchTimeout: cfg.Notify.DispatchTimeout},
		agreementrepo.New(pool),
		assignment.New(pool),
		agreementlog.New(pool),
		adminaudit.New(pool),
		user.New(pool),
		txm,
		notifier,
		copies,
		promMetrics,
	)

	rl := middleware.NewRateLimiter(time.Minute)
	defer rl.Stop()

	var storagePinger dbPinger
	if store != nil {
		storagePinger = store
	}

	handler := newHandler(logger, cfg, handlerDeps{
		agreements: agreementSvc,
		tokens:     auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
		metrics:    promMetrics,
		limiter:    rl,
		db:         pool,
		storage:    storagePinger,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	}

	shCtx, shCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shCancel()

	if err := srv.Shutdown(shCtx); err != nil {
		logger.Error("http shutdown", slog.String("error", err.Error()))
	}

	// In-flight notification dispatches are bounded by notify.dispatch_timeout.
	agreementSvc.Wait()
	logger.Info("shutdown complete")

	return nil
}
