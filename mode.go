// Lock kinds and modes.
//
// Kind selects the acquisition discipline: NonBlocking surfaces contention
// immediately as ErrWouldBlock, Blocking parks the calling thread until the
// current holder relinquishes the lock. Mode selects read (shared) or write
// (exclusive) intent. Both parse from text so surrounding tools can accept
// them as configuration values.
package fdlock

import (
	"fmt"
	"strings"
)

// Kind selects whether acquisition waits for a contended lock or fails
// immediately.
type Kind int

const (
	// NonBlocking returns ErrWouldBlock at once when the lock is held
	// elsewhere. The zero value: a Kind left unset never hangs.
	NonBlocking Kind = iota
	// Blocking waits for the current holder to release. The wait has no
	// timeout; only the OS itself can interrupt it.
	Blocking
)

// Mode is the lock intent passed through to the OS primitive.
type Mode int

const (
	// Read requests a shared lock: readers coexist, writers are excluded.
	Read Mode = iota
	// Write requests an exclusive lock.
	Write
)

// String returns the canonical literal accepted by ParseKind.
func (k Kind) String() string {
	switch k {
	case NonBlocking:
		return "nonblocking"
	case Blocking:
		return "blocking"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// String returns the canonical literal accepted by ParseMode.
func (m Mode) String() string {
	switch m {
	case Read:
		return "read"
	case Write:
		return "write"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseKind maps a configuration literal to a Kind. Accepted, case
// insensitively: "nonblocking", "non-blocking", "nb", "blocking", "block".
// Anything else returns ErrUnknownKind with the offending text.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "nonblocking", "non-blocking", "nb":
		return NonBlocking, nil
	case "blocking", "block":
		return Blocking, nil
	default:
		return NonBlocking, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// ParseMode maps a configuration literal to a Mode. Accepted, case
// insensitively: "read", "shared", "sh", "write", "exclusive", "ex".
// Anything else returns ErrUnknownMode with the offending text.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "read", "shared", "sh":
		return Read, nil
	case "write", "exclusive", "ex":
		return Write, nil
	default:
		return Read, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}
