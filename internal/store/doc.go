// Package store provides the string-keyed stores the draft snapshot is
// persisted in.
//
// Three backends are available:
//
//   - [Memory]: process-local map, used by tests and ephemeral runs
//   - [File]: a single JSON object on disk, rewritten atomically
//   - [SQLite]: a kv table in a local SQLite database
//
// [Open] selects a backend from a [Config]. Every backend is safe for
// concurrent use, and removing an absent key is never an error.
package store
