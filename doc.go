// Package optionbook tracks which participants hold quantities of which
// option contracts, and projects that ledger into a dense user-by-option
// matrix.
//
// The core functionalities include:
//   - User Registry: the set of participants, identified by ids that are
//     never reused within a process lifetime.
//   - Option Registry: the set of contract definitions (symbol, call/put,
//     strike, expiration). Definitions are immutable once created.
//   - Ownership Ledger: the sparse mapping from (user, option) to a held
//     quantity, kept referentially consistent with both registries. Deleting
//     a user or an option cascades into the ledger.
//   - Matrix Projection: a stateless view recomputed on demand, with one row
//     per option and one aligned column per user.
//   - Data Persistence: encoding and decoding the book to and from a
//     human-readable, version-controllable JSONL file.
//
// This package serves as the foundational logic for the `obk` command-line
// tool and the polling HTTP API, ensuring that all operations are consistent
// and based on a single source of truth.
package optionbook
