// Package memory is a process-local store backend.
//
// Documents are kept as JSON so callers never share memory with the store,
// the same way a database round trip would behave. The backend is safe for
// concurrent use and is meant for tests, demos and fixture-driven runs of
// the CLI.
//
//	db, err := memory.LoadFixture("testdata/club.yaml")
//	if err != nil {
//		return err
//	}
//	s, err := memory.Open(ctx, db)
package memory
