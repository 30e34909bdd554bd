// Package pgstatus is a read-only status and diagnostics facade over an
// established Postgres client connection.
//
// Invariants:
//
//   - I1: every accessor performs exactly one query against the underlying
//     driver and copies any returned buffer before returning; no
//     driver-owned reference survives the call.
//   - I2: absent and empty text are distinct. Optional accessors return a
//     comma-ok bool, and ("", false) never collapses into ("", true).
//   - I3: status codes are translated through closed enumerations; an
//     unrecognized code is a ProtocolMismatchError, never a plausible
//     default.
//   - I4: the facade never mutates connection state, never logs, and never
//     retries.
//   - I5: a single RawConn is not safe for concurrent use; callers serialize
//     access, the facade adds no locking of its own.
//
// The package does not open, close, or reconnect anything. It consumes an
// already-established connection through the RawConn boundary; FromPgx adapts
// a live pgx v5 connection to that boundary.
package pgstatus
