//go:build windows

package fdlock

import (
	"errors"

	"golang.org/x/sys/windows"
)

// Windows has no descriptor-wide advisory lock; locking the maximum byte
// range approximates flock semantics for whole-file callers.
const allBytes = ^uint32(0)

// acquire asserts a lock on the handle behind fd with one synchronous
// LockFileEx call. ERROR_LOCK_VIOLATION, the LOCKFILE_FAIL_IMMEDIATELY
// outcome for a contended lock, maps to ErrWouldBlock; any other failure
// propagates untouched.
func acquire(fd uintptr, kind Kind, mode Mode) error {
	var flags uint32
	if mode == Write {
		flags |= windows.LOCKFILE_EXCLUSIVE_LOCK
	}
	if kind == NonBlocking {
		flags |= windows.LOCKFILE_FAIL_IMMEDIATELY
	}
	ol := new(windows.Overlapped)
	err := windows.LockFileEx(windows.Handle(fd), flags, 0, allBytes, allBytes, ol)
	if errors.Is(err, windows.ERROR_LOCK_VIOLATION) {
		return ErrWouldBlock
	}
	return err
}

// release drops the whole-range lock on fd. Unlocking an unlocked range is
// ERROR_NOT_LOCKED here, unlike flock's LOCK_UN; it maps to success so
// release stays idempotent on both platforms.
func release(fd uintptr) error {
	ol := new(windows.Overlapped)
	err := windows.UnlockFileEx(windows.Handle(fd), 0, allBytes, allBytes, ol)
	if errors.Is(err, windows.ERROR_NOT_LOCKED) {
		return nil
	}
	return err
}
