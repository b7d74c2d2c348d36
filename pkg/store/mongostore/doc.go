// Package mongostore is the MongoDB store backend.
//
// Each document type lives in its own collection as
//
//	{_id: <id>, revision: <n>, doc: <document>}
//
// where doc is the document's JSON shape converted to BSON. Going through JSON
// keeps the legacy payment history entries, which mix bare strings and
// records, exactly as the club types encode them.
//
// Connection settings come from MONGODB_* environment variables and the
// connection is retried on startup:
//
//	cfg, err := config.Load[mongostore.Config]()
//	if err != nil {
//		return err
//	}
//	s, err := mongostore.Open(ctx, cfg, log)
//	if err != nil {
//		return err
//	}
//	defer s.Close(ctx)
package mongostore
