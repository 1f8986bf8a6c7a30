// Command mark-overdue flags Pending assignments whose deadline has passed
// as Overdue. It is intended to be invoked by an external cron job; the
// signing workflow never sets Overdue itself, and Overdue assignments can
// still be signed.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/riseflow-agreements/internal/adapter/postgres"
	"github.com/heartmarshall/riseflow-agreements/internal/adapter/postgres/assignment"
	"github.com/heartmarshall/riseflow-agreements/internal/app"
	"github.com/heartmarshall/riseflow-agreements/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log).With(slog.String("component", "mark-overdue"))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database, app.ServiceName+"/mark-overdue")
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	now := time.Now().UTC()

	marked, err := assignment.New(pool).MarkOverdue(ctx, now)
	if err != nil {
		logger.Error("mark overdue failed",
			slog.String("error", err.Error()),
			slog.Time("now", now),
		)
		pool.Close()
		os.Exit(1)
	}

	logger.Info("mark overdue completed",
		slog.Int64("marked", marked),
		slog.Time("now", now),
	)
}
