// Package logger builds the *slog.Logger used by clubledger commands and
// stores, and provides attribute helpers that keep key names consistent.
//
// New applies functional options and wraps the chosen slog handler with a
// LogHandlerDecorator that injects attributes from the logging context:
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "clubctl"),
//		logger.WithLevelName(cfg.LogLevel),
//		logger.WithContextExtractors(logger.RunIDExtractor()),
//	)
//	log.InfoContext(ctx, "payment statuses reconciled",
//		logger.Component("paysync"),
//		logger.Count(len(changed)),
//	)
//
// Error, ClientID, Area, TrainingGroup and Period return an empty Attr for
// empty input, which slog omits, so call sites need no nil checks.
//
// The domain packages (club, billing, paystatus, analytics and friends) do
// not log; only stores and commands receive a logger.
package logger
