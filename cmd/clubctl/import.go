package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dmitrymomot/clubledger/pkg/importer"
	"github.com/dmitrymomot/clubledger/pkg/logger"
)

type importSummary struct {
	Created int      `json:"created"`
	Updated int      `json:"updated"`
	Errors  []string `json:"errors,omitempty"`
	DryRun  bool     `json:"dryRun,omitempty"`
}

func runImport(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	path := fs.String("file", "", "CSV file with a header row")
	delimiter := fs.String("delimiter", ",", `field delimiter: ",", ";" or "tab"`)
	dryRun := fs.Bool("dry-run", false, "report the outcome without saving")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *path == "" {
		return fmt.Errorf("%w: -file", ErrMissingFlag)
	}
	comma, err := parseComma(*delimiter)
	if err != nil {
		return err
	}

	f, err := os.Open(*path)
	if err != nil {
		return err
	}
	defer f.Close()

	rows, err := readRows(f, comma)
	if err != nil {
		return fmt.Errorf("read %s: %w", *path, err)
	}

	summary, err := importRows(ctx, a, rows, *dryRun)
	if err != nil {
		return err
	}
	return writeJSON(a.out, summary)
}

// importRows merges rows into the stored clients and saves the result.
func importRows(ctx context.Context, a *app, rows []importer.Row, dryRun bool) (importSummary, error) {
	clients, err := a.store.Clients.List(ctx)
	if err != nil {
		return importSummary{}, err
	}

	im := importer.New(
		importer.WithRegion(a.cfg.ImportPhoneRegion),
		importer.WithClock(a.now),
	)
	res := im.Merge(clients, rows)

	summary := importSummary{
		Created: len(res.Created),
		Updated: len(res.Updated),
		DryRun:  dryRun,
	}
	for _, rerr := range res.Errors {
		summary.Errors = append(summary.Errors, rerr.Error())
	}
	if len(res.Errors) > 0 {
		a.log.WarnContext(ctx, "rows rejected",
			logger.Count(len(res.Errors)),
			logger.Errors(rowErrors(res.Errors)...),
		)
	}
	if dryRun {
		return summary, nil
	}

	for _, c := range append(res.Created, res.Updated...) {
		if _, err := a.store.Clients.Put(ctx, c); err != nil {
			return summary, fmt.Errorf("save client %s: %w", c.ID, err)
		}
	}
	a.log.InfoContext(ctx, "clients imported",
		logger.Collection("clients"),
		logger.Count(summary.Created+summary.Updated),
	)
	return summary, nil
}

func rowErrors(errs []importer.RowError) []error {
	out := make([]error, len(errs))
	for i, e := range errs {
		out[i] = e
	}
	return out
}
