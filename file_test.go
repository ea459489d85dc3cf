// FileLock tests. The path-level layer owns its descriptor, so these
// exercise the open/lock/info/close lifecycle rather than the lock
// protocol itself, which lock_test.go covers on raw descriptors.
package fdlock

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestAcquireRelease(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.lock")

	fl, err := Acquire(path, NonBlocking, Write)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	if fl.Path() != path {
		t.Fatalf("path = %q, want %q", fl.Path(), path)
	}
	if err := fl.Release(); err != nil {
		t.Fatalf("release: %v", err)
	}

	// Acquire creates the file when missing.
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("lock file missing after acquire: %v", err)
	}
}

func TestAcquireContention(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.lock")

	fl, err := Acquire(path, NonBlocking, Write)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	defer fl.Release()

	if _, err := Acquire(path, NonBlocking, Write); !errors.Is(err, ErrWouldBlock) {
		t.Fatalf("second acquire = %v, want ErrWouldBlock", err)
	}

	// A write acquire records who holds the lock.
	info, err := ReadInfo(path)
	if err != nil {
		t.Fatalf("read info: %v", err)
	}
	if info.PID != os.Getpid() {
		t.Fatalf("info pid = %d, want %d", info.PID, os.Getpid())
	}
}

func TestReleaseIdempotent(t *testing.T) {
	fl, err := Acquire(filepath.Join(t.TempDir(), "app.lock"), NonBlocking, Write)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}

	if err := fl.Release(); err != nil {
		t.Fatalf("first release: %v", err)
	}
	if err := fl.Release(); err != nil {
		t.Fatalf("second release: %v", err)
	}
}

func TestReleaseFreesForOthers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.lock")

	fl, err := Acquire(path, NonBlocking, Write)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	if err := fl.Release(); err != nil {
		t.Fatalf("release: %v", err)
	}

	next, err := Acquire(path, NonBlocking, Write)
	if err != nil {
		t.Fatalf("acquire after release: %v", err)
	}
	if err := next.Release(); err != nil {
		t.Fatalf("release: %v", err)
	}
}

func TestWithPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.lock")

	err := WithPath(path, NonBlocking, Write, func() error {
		if _, err := Acquire(path, NonBlocking, Write); !errors.Is(err, ErrWouldBlock) {
			return errors.New("lock not held inside WithPath")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithPath: %v", err)
	}

	fl, err := Acquire(path, NonBlocking, Write)
	if err != nil {
		t.Fatalf("acquire after WithPath: %v", err)
	}
	fl.Release()
}

func TestReadAcquireWritesNoInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.lock")

	fl, err := Acquire(path, NonBlocking, Read)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	defer fl.Release()

	if _, err := ReadInfo(path); !errors.Is(err, ErrNoInfo) {
		t.Fatalf("read info after read acquire = %v, want ErrNoInfo", err)
	}
}

func TestAcquireBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "app.lock")

	_, err := Acquire(path, NonBlocking, Write)
	if err == nil {
		t.Fatal("acquire under missing directory succeeded")
	}
	if errors.Is(err, ErrWouldBlock) {
		t.Fatal("open failure reported as contention")
	}
}
