// Package fdlock provides advisory, process-level locking on open file
// descriptors. A Lock is a thin handle over a caller-owned descriptor: it
// asserts and releases an OS-level lock through it (flock on unix, LockFileEx
// on Windows) and never opens, reads, or closes the file itself.
//
// Locks are acquired with a Kind (Blocking or NonBlocking) and a Mode (Read
// or Write). Contention under NonBlocking acquisition is reported as
// ErrWouldBlock; every other OS failure propagates as the raw error code so
// callers can diagnose it. Release is idempotent — unlocking a descriptor
// that holds no lock succeeds — and a held lock ends at the latest when the
// descriptor is closed.
//
// The bound layer (Acquire, FileLock, WithPath) adds open-and-lock on paths,
// holder metadata for diagnosing contention, and derived lock-file names for
// coordinating on targets that are not themselves lockable files.
package fdlock

import "errors"

// Sentinel errors for programmatic handling. Callers can use errors.Is to
// separate expected contention (ErrWouldBlock) from real faults, which carry
// the raw OS error code instead.
var (
	ErrWouldBlock  = errors.New("lock is already taken by another holder")
	ErrUnknownKind = errors.New("unknown lock kind")
	ErrUnknownMode = errors.New("unknown lock mode")
	ErrNoInfo      = errors.New("no holder info recorded")
)
