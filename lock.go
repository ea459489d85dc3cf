// Lock handle over a caller-owned descriptor.
//
// A Lock never opens, reads, or closes the file behind the descriptor; its
// whole job is to assert and release an advisory lock through it. The handle
// carries no state beyond the descriptor value — whether a lock is currently
// held lives with the OS — so re-locking and double-unlocking fall through to
// the primitive's own idempotent behavior. Callers pair every successful
// Lock with a deferred Unlock, or use With, which does that for them on
// every exit path.
package fdlock

// Lock represents an advisory lock on the file behind an open descriptor.
//
// The descriptor is borrowed, not owned: the caller keeps the file open for
// as long as the Lock is in use, since the OS ties lock validity to the
// descriptor remaining open. Two Locks over the same descriptor interact
// exactly as two raw uses of the OS primitive would; nothing is serialized
// here.
type Lock struct {
	fd uintptr
}

// New creates a lock handle for fd, as returned by (*os.File).Fd. No syscall
// is performed and the descriptor is not validated — an unusable descriptor
// surfaces later, as a raw OS error from Lock or Unlock.
func New(fd uintptr) *Lock {
	return &Lock{fd: fd}
}

// Fd returns the descriptor this handle governs.
func (l *Lock) Fd() uintptr { return l.fd }

// Lock asserts an advisory lock on the descriptor.
//
// Under NonBlocking, contention returns ErrWouldBlock immediately. Under
// Blocking, the call parks the calling thread until the OS grants the lock
// or interrupts the wait; there is no timeout, and a Blocking caller never
// sees ErrWouldBlock. Any other failure returns the raw OS error. A failed
// call leaves the lock state unchanged.
func (l *Lock) Lock(kind Kind, mode Mode) error {
	return acquire(l.fd, kind, mode)
}

// Unlock releases the advisory lock on the descriptor. It may be called any
// number of times: releasing a descriptor that holds no lock succeeds. On
// failure the raw OS error is returned uninterpreted.
func (l *Lock) Unlock() error {
	return release(l.fd)
}

// With runs fn while holding the lock and releases on every exit path,
// including a panic unwinding out of fn. The automatic release's error is
// discarded — that path has no caller context to report to — so callers who
// need release errors use explicit Unlock instead.
func (l *Lock) With(kind Kind, mode Mode, fn func() error) error {
	if err := l.Lock(kind, mode); err != nil {
		return err
	}
	defer func() { _ = l.Unlock() }()
	return fn()
}
