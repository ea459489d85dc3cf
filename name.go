// Lock-file name derivation for arbitrary targets.
//
// Callers coordinating on something that is not itself a lockable file — a
// repository path, a device node, a logical job name — lock a file named
// after it in a shared directory instead. The name is a 16 hex character
// hash of the target, so every process that derives it the same way contends
// on the same file. Three algorithms are supported, selectable per call.
package fdlock

import (
	"fmt"
	"hash/fnv"
	"path/filepath"

	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/blake2b"
)

// Hash algorithm constants.
const (
	AlgXXHash3 = 1 // Default, fastest
	AlgFNV1a   = 2 // No external dependencies
	AlgBlake2b = 3 // Best distribution
)

// LockName derives the lock-file name for a target: 16 hex characters plus
// a ".lock" suffix. alg 0 selects AlgXXHash3; an unknown algorithm returns
// the empty string.
func LockName(target string, alg int) string {
	if alg == 0 {
		alg = AlgXXHash3
	}
	switch alg {
	case AlgXXHash3:
		h := xxh3.HashString(target)
		return fmt.Sprintf("%016x.lock", h)
	case AlgFNV1a:
		h := fnv.New64a()
		h.Write([]byte(target))
		return fmt.Sprintf("%016x.lock", h.Sum64())
	case AlgBlake2b:
		h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
		h.Write([]byte(target))
		return fmt.Sprintf("%016x.lock", h.Sum(nil))
	default:
		return ""
	}
}

// LockPath joins dir with the derived lock-file name for target.
func LockPath(dir, target string, alg int) string {
	return filepath.Join(dir, LockName(target, alg))
}
