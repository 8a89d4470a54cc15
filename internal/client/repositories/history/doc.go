// Package history persists the jokes shown by the CLI in a local SQLite
// database (table jokes_seen, created by internal/client/migrations).
//
// The history is optional: the CLI only opens it when a path is configured.
// It is used to skip jokes the user has already seen.
//
// Typical Usage
//
//	repo := history.NewSQLiteRepository(db)
//	_ = repo.Add(ctx, rec)
//	seen, _ := repo.Seen(ctx, rec.APIID)
package history
