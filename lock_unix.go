//go:build unix || linux || darwin

package fdlock

import (
	"errors"

	"golang.org/x/sys/unix"
)

// acquire asserts an advisory lock on fd with one synchronous flock call.
// Contention under NonBlocking maps to ErrWouldBlock; any other errno
// propagates untouched, including EINTR from an interrupted Blocking wait.
// Nothing is retried here.
func acquire(fd uintptr, kind Kind, mode Mode) error {
	how := unix.LOCK_SH
	if mode == Write {
		how = unix.LOCK_EX
	}
	if kind == NonBlocking {
		how |= unix.LOCK_NB
	}
	err := unix.Flock(int(fd), how)
	// EWOULDBLOCK and EAGAIN share a value on every unix Go supports, but
	// were historically distinct codes; check both.
	if errors.Is(err, unix.EWOULDBLOCK) || errors.Is(err, unix.EAGAIN) {
		return ErrWouldBlock
	}
	return err
}

// release drops any advisory lock held on fd. LOCK_UN on a descriptor that
// holds no lock succeeds, which is where the idempotent-release contract
// comes from.
func release(fd uintptr) error {
	return unix.Flock(int(fd), unix.LOCK_UN)
}
