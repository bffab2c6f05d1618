// Package store archives Open Graph snapshots in PostgreSQL.
//
// Each snapshot is keyed by the page URL and the normalized checksum of the
// fetched HTML, so re-fetching an unchanged page does not add a row. The
// schema is created on demand by EnsureSchema.
package store
