// Package persist handles saving canvas snapshots and restoring them when a
// project is opened.
//
// The SnapshotStore interface is the persistence collaborator: it accepts a
// project ID and an opaque JSON-serializable snapshot and makes no
// assumption about the storage medium. Implementations ship in the
// subpackages:
//   - persist/memory: in-process map, for tests and ephemeral sessions
//   - persist/file: one JSON file per project on local disk
//   - persist/sqlite: lightweight serverless storage via mattn/go-sqlite3
//   - persist/postgres: pgx/v5 with JSONB snapshots
//   - persist/redis: go-redis/v9 with optional TTL
//
// The Coordinator sits between the graph store and a SnapshotStore. It
// debounces the save stream so a burst of mutations within the quiescence
// window produces exactly one save, keeps at most one save in flight, and
// always serializes the snapshot current at fire time. Persistence is
// optimistic and eventually consistent: a failed save never rolls back the
// in-memory graph, it only surfaces a notification, and the next save
// overwrites the store with the then-current state.
package persist
