// Package store persists extraction runs so past decks can be
// reported on without re-parsing their markup.
//
// SQLite with WAL mode backs the archive. The schema is three tables:
// runs (one per extraction), slides (per-slide summary and failure
// reason), and events (the flattened animation events). Writes are
// idempotent on run id - re-archiving the same run is a no-op.
package store
