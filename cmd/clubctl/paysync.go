package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/dmitrymomot/clubledger/pkg/logger"
	"github.com/dmitrymomot/clubledger/pkg/paystatus"
	"github.com/dmitrymomot/clubledger/pkg/store"
)

func runPaysync(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("paysync", flag.ContinueOnError)
	schedule := fs.String("schedule", a.cfg.PaysyncSchedule, "cron spec; empty runs once and exits")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *schedule == "" {
		_, err := syncPayStatuses(ctx, a)
		return err
	}
	return schedulePaysync(ctx, a, *schedule)
}

// syncPayStatuses re-derives every client's payment status and saves the
// clients whose stored status differs. Clients changed concurrently are
// skipped and picked up by the next run.
func syncPayStatuses(ctx context.Context, a *app) (int, error) {
	start := time.Now()
	clients, err := a.store.Clients.List(ctx)
	if err != nil {
		return 0, err
	}
	tasks, err := a.store.Tasks.List(ctx)
	if err != nil {
		return 0, err
	}

	saved := 0
	for _, c := range paystatus.ReconcileAll(clients, tasks, a.now()) {
		if _, err := a.store.Clients.Put(ctx, c); err != nil {
			if errors.Is(err, store.ErrRevisionConflict) {
				a.log.WarnContext(ctx, "client changed during sync, skipped",
					logger.ClientID(c.ID),
					logger.Error(err),
				)
				continue
			}
			return saved, fmt.Errorf("save client %s: %w", c.ID, err)
		}
		a.log.DebugContext(ctx, "payment status updated",
			logger.ClientID(c.ID),
			slog.String("pay_status", string(c.PayStatus)),
		)
		saved++
	}

	a.log.InfoContext(ctx, "payment statuses reconciled",
		logger.Count(saved),
		slog.Int("clients", len(clients)),
		logger.Duration(time.Since(start)),
	)
	return saved, nil
}

// schedulePaysync runs the sync on spec until ctx is canceled. Overlapping
// runs are skipped.
func schedulePaysync(ctx context.Context, a *app, spec string) error {
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithLogger(cronLogger{log: a.log}),
		cron.WithChain(cron.SkipIfStillRunning(cronLogger{log: a.log})),
	)
	if _, err := c.AddFunc(spec, func() {
		runCtx := logger.WithRunID(ctx, uuid.NewString())
		if _, err := syncPayStatuses(runCtx, a); err != nil {
			a.log.ErrorContext(runCtx, "payment status sync failed", logger.Error(err))
		}
	}); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", spec, err)
	}

	a.log.InfoContext(ctx, "paysync scheduled", slog.String("schedule", spec))
	c.Start()
	<-ctx.Done()
	<-c.Stop().Done()
	a.log.InfoContext(context.WithoutCancel(ctx), "paysync stopped")
	return nil
}

// cronLogger adapts slog to the cron.Logger interface.
type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug(msg, append([]any{logger.Component("cron")}, keysAndValues...)...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error(msg, append([]any{logger.Component("cron"), logger.Error(err)}, keysAndValues...)...)
}
