// Package history persists per-file operation records in SQLite.
//
// Every session run appends one row per processed file (outcome, paths,
// category, error text) tagged with the session ID, giving the operator a
// durable audit trail to reconstruct or manually undo a run. Schema changes
// bump the version in schema.go; users clear the database to adopt the new
// schema.
package history
