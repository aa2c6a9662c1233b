// Package store provides the SQLite-backed run ledger for comparison
// scenarios.
//
// The ledger is append-only:
//   - runs: one row per scenario run, keyed by its UUIDv7 run ID
//   - case_results: one row per evaluated case, keyed by a UUIDv5 derived
//     from the run ID and the case's position
//
// # Critical Patterns
//
// Idempotent Writes:
//   - Every INSERT uses ON CONFLICT DO NOTHING
//   - Recording the same run twice leaves one copy
//
// Logical Ordering:
//   - Runs are ordered by a store-assigned seq, never by timestamps
//   - Cases are ordered by their position in the scenario
//   - All queries break ties with id COLLATE BINARY
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
//
// # Schema Version
//
// schema.sql is stamped into user_version when a ledger is created. Opening
// a ledger stamped by a newer build fails with *SchemaVersionError rather
// than writing rows the newer schema may not accept.
package store
