// Bound locks: open a path and lock it in one step.
//
// FileLock owns its *os.File, unlike Lock, which borrows a descriptor. On a
// Write acquisition the holder's metadata is written into the file so that
// blocked contenders can name the process in the way. Release unlocks and
// closes exactly once; the lock file itself stays on disk, because removing
// it would let a third process create a fresh file and hold a "lock" nobody
// else contends on.
//
// A FileLock is meant for one goroutine at a time. Cross-process exclusion
// is the OS primitive's job; in-process sharing of a single FileLock is not.
package fdlock

import "os"

// FileLock is a lock bound to a file it opened itself.
type FileLock struct {
	path string
	f    *os.File
	lk   *Lock
}

// Acquire opens the file at path, creating it if needed, and locks it with
// the given kind and mode. On failure — contention included — the file is
// closed before the error returns, so a failed Acquire leaves nothing for
// the caller to clean up. A Write acquisition records holder metadata in the
// file on a best-effort basis.
func Acquire(path string, kind Kind, mode Mode) (*FileLock, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, err
	}
	lk := New(f.Fd())
	if err := lk.Lock(kind, mode); err != nil {
		f.Close()
		return nil, err
	}
	fl := &FileLock{path: path, f: f, lk: lk}
	if mode == Write {
		// The OS lock is already held; stale or unwritable metadata must
		// not fail the acquisition.
		_ = writeInfo(f)
	}
	return fl, nil
}

// Release unlocks and closes the file. Only the first call does any work;
// later calls return nil. The lock file itself stays on disk.
func (fl *FileLock) Release() error {
	if fl.f == nil {
		return nil
	}
	err := fl.lk.Unlock()
	if cerr := fl.f.Close(); err == nil {
		err = cerr
	}
	fl.f = nil
	return err
}

// Path returns the lock file's path.
func (fl *FileLock) Path() string { return fl.path }

// File exposes the underlying handle, for callers that need the descriptor
// while the lock is held. The handle belongs to the FileLock: closing it is
// Release's job. After Release, File returns nil.
func (fl *FileLock) File() *os.File { return fl.f }

// WithPath acquires a lock on path, runs fn, and releases on every exit
// path, including a panic unwinding out of fn. The automatic release's
// error is discarded, matching Lock.With.
func WithPath(path string, kind Kind, mode Mode, fn func() error) error {
	fl, err := Acquire(path, kind, mode)
	if err != nil {
		return err
	}
	defer func() { _ = fl.Release() }()
	return fn()
}
