// Package history records completed split runs in a local SQLite database.
//
// Recording is strictly best-effort: a history failure never fails the split
// that produced the data. The schema is versioned and stale databases are
// rejected with instructions rather than migrated in place.
package history
