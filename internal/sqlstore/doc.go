// Package sqlstore provides the SQLite-backed implementation of
// source.Source.
//
// The store owns everything the query engine treats as external: the
// relational schema (embedded schema.sql, mirroring the webstore column
// layout), connection configuration, and dataset population via Seed. The
// engine only ever reads through the source.Source surface.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON: enforce referential integrity at load time
//
// All readers order by primary key so that repeated calls over the same
// database return identical row order.
//
// Monetary columns are stored as TEXT and scanned through
// shopspring/decimal; REAL columns would reintroduce the binary floating
// point drift the model deliberately avoids.
package sqlstore
