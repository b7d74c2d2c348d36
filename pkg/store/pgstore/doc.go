// Package pgstore is the PostgreSQL store backend.
//
// All document types share one table keyed by (collection, id). Documents are
// stored as jsonb next to their revision, and an identity column keeps the
// insertion order for List. The schema is managed by goose migrations
// embedded in the binary and applied by Open.
//
//	cfg, err := config.Load[pgstore.Config]()
//	if err != nil {
//		return err
//	}
//	s, err := pgstore.Open(ctx, cfg, log)
package pgstore
