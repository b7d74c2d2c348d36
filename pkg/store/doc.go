// Package store defines the document collections the club data lives in.
//
// Every backend stores documents in their JSON shape and guards updates with
// a revision token: Put succeeds only when the document carries the revision
// currently stored (zero for a new document) and returns the document with
// the next revision. A stale write fails with ErrRevisionConflict and the
// caller is expected to reload and retry.
//
// Backends live in subpackages:
//
//   - memory: process-local maps, optionally seeded from a YAML or JSON fixture
//   - mongostore: one MongoDB collection per document type
//   - pgstore: a single jsonb documents table in PostgreSQL
//
// LoadDatabase reads every collection into a club.Database snapshot for the
// analytics and billing packages.
package store
