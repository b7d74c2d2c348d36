// Command clubctl runs the club ledger maintenance jobs against a store:
// analytics snapshots, payment status reconciliation, payment completion,
// client import and duplicate search.
//
// Usage:
//
//	clubctl <command> [flags]
//
// Run "clubctl help" for the list of commands.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrymomot/clubledger/pkg/config"
	"github.com/dmitrymomot/clubledger/pkg/logger"
	"github.com/dmitrymomot/clubledger/pkg/store"
)

// app is the state shared by all commands.
type app struct {
	cfg   Config
	log   *slog.Logger
	store *store.Store
	out   io.Writer
	now   func() time.Time
}

type command struct {
	name    string
	summary string
	run     func(ctx context.Context, a *app, args []string) error
}

var commands = []command{
	{"snapshot", "print the analytics snapshot of an area and period", runSnapshot},
	{"paysync", "re-derive payment statuses once or on a cron schedule", runPaysync},
	{"complete", "complete a payment task and advance the subscription", runComplete},
	{"import", "merge clients from a CSV file", runImport},
	{"dupes", "find clients that look like duplicates", runDupes},
}

func lookup(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: clubctl <command> [flags]")
	fmt.Fprintln(w)
	for _, c := range commands {
		fmt.Fprintf(w, "  %-10s %s\n", c.name, c.summary)
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "clubctl:", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		usage(out)
		return nil
	}
	cmd, ok := lookup(args[0])
	if !ok {
		usage(os.Stderr)
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}

	cfg, err := config.Load[Config]()
	if err != nil {
		return err
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env, "clubctl"),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithAttr(logger.Command(cmd.name)),
		logger.WithContextExtractors(logger.RunIDExtractor()),
	)
	logger.SetAsDefault(log)

	st, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(context.WithoutCancel(ctx)); err != nil {
			log.ErrorContext(ctx, "failed to close store", logger.Error(err))
		}
	}()

	a := &app{cfg: cfg, log: log, store: st, out: out, now: time.Now}
	return cmd.run(ctx, a, args[1:])
}
