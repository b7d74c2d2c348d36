package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/clubledger/pkg/analytics"
	"github.com/dmitrymomot/clubledger/pkg/club"
	"github.com/dmitrymomot/clubledger/pkg/logger"
	"github.com/dmitrymomot/clubledger/pkg/store"
)

type favoriteValue struct {
	Favorite string   `json:"favorite"`
	Value    *float64 `json:"value"`
}

type snapshotReport struct {
	Snapshot  analytics.Snapshot `json:"snapshot"`
	Favorites []favoriteValue    `json:"favorites,omitempty"`
}

func runSnapshot(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("snapshot", flag.ContinueOnError)
	area := fs.String("area", analytics.AllAreas, `area name or "all"`)
	month := fs.String("month", "", "calendar month, YYYY-MM (default current month)")
	from := fs.String("from", "", "first day of a custom range, YYYY-MM-DD")
	to := fs.String("to", "", "last day of a custom range, YYYY-MM-DD")
	allTime := fs.Bool("all-time", false, "ignore dates and aggregate every record")
	var favorites stringList
	fs.Var(&favorites, "favorite", "encoded favorite to evaluate; repeatable (default: saved favorites)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	now := a.now()
	period, err := resolvePeriod(*month, *from, *to, *allTime, now)
	if err != nil {
		return err
	}

	db, err := store.LoadDatabase(ctx, a.store)
	if err != nil {
		return err
	}

	snap := analytics.ComputeSnapshot(db, *area, period, now)
	report := snapshotReport{Snapshot: snap}

	encoded := []string(favorites)
	if len(encoded) == 0 {
		encoded = db.Settings.AnalyticsFavorites
	}
	favs, err := analytics.DecodeFavorites(encoded)
	if err != nil {
		a.log.WarnContext(ctx, "skipping invalid favorites", logger.Error(err))
	}
	for _, f := range favs {
		fv := favoriteValue{Favorite: f.Encode()}
		if v, ok := f.Value(snap); ok {
			fv.Value = &v
		}
		report.Favorites = append(report.Favorites, fv)
	}

	attrs := []any{
		logger.Area(*area),
		logger.Count(len(snap.Areas)),
		logger.Group("totals",
			slog.Float64("revenue", snap.Revenue.Actual),
			slog.Float64("profit", snap.Profit.Actual),
			slog.Float64("athletes", snap.Athletes.Actual),
		),
	}
	if period != nil {
		attrs = append(attrs, logger.Period(period))
	}
	a.log.DebugContext(ctx, "snapshot computed", attrs...)
	return writeJSON(a.out, report)
}

// resolvePeriod picks the reporting period from the flags. A range wins over
// a month; no flags means the current month.
func resolvePeriod(month, from, to string, allTime bool, now time.Time) (*analytics.Period, error) {
	switch {
	case allTime:
		return nil, nil
	case from != "" || to != "":
		start, ok := club.ParseDay(from)
		if !ok {
			return nil, fmt.Errorf("%w: -from %q", analytics.ErrInvalidPeriod, from)
		}
		end, ok := club.ParseDay(to)
		if !ok {
			return nil, fmt.Errorf("%w: -to %q", analytics.ErrInvalidPeriod, to)
		}
		p, err := analytics.Range(start, end)
		if err != nil {
			return nil, err
		}
		return &p, nil
	case month != "":
		t, err := time.Parse("2006-01", month)
		if err != nil {
			return nil, fmt.Errorf("%w: -month %q", analytics.ErrInvalidPeriod, month)
		}
		p := analytics.Month(t.Year(), t.Month())
		return &p, nil
	}
	p := analytics.MonthOf(now)
	return &p, nil
}
