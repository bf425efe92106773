// Package board implements the question/thread persistence core of the
// askme system: the user directory and the threaded question store, both
// held in memory as id-keyed maps and persisted as delimited text files.
//
// # Critical behaviors
//
// Tolerant load: malformed lines (too few fields, unparsable numbers) are
// skipped with a logged warning. The stores never fail to start because
// some lines are unparsable.
//
// Mutation-then-persist: every successful create/update/delete fully
// rewrites the backing file, so the last successful mutation always
// determines the on-disk content. A failed persist leaves memory ahead of
// disk until the next successful one; callers see only the boolean result.
//
// ID reuse: NextID is max existing id + 1 (1 when empty), not a monotonic
// counter. Deleting the highest id makes that id available again.
//
// Authorization: anonymous questions require the recipient's permission at
// creation; deletion is restricted to the asker or an admin, applied
// per-record during thread cascades. Answer authorization (only the
// recipient may answer) is the caller's responsibility, by contract.
//
// Passwords are compared in plaintext. Hashing is intentionally out of
// scope for this core because it would change what the persisted user
// lines mean.
package board
