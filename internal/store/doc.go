// Package store provides SQLite-backed storage for recorded probe runs.
//
// The store is an append-only log:
//   - Runs: one row per probe demo execution, keyed by content-addressed ID
//
// Ordering uses the seq column (a logical clock), never timestamps. Every
// listing query ends in ORDER BY seq ASC, id COLLATE BINARY ASC so results
// are identical across reopenings.
//
// Snapshots are stored as RFC 8785 canonical JSON (see internal/ir), with
// floats carried as hex bit patterns.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
package store
