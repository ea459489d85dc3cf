// Command golock runs a command while holding an advisory lock on a file,
// in the manner of flock(1). The lock file is created if missing and is
// held for exactly as long as the child runs; release happens on every
// exit path, including panics and child failures.
//
// Exit codes: the child's own code when it ran, 1 when the lock is held
// elsewhere, 2 for usage and system errors.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"

	"github.com/jpl-au/fdlock"
	"github.com/spf13/cobra"
)

var (
	flagKind    string
	flagMode    string
	flagLockDir string
	flagVerbose bool
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "golock [flags] <lockfile> <command> [args...]",
		Short: "Run a command under an advisory file lock",
		Long: `Golock serialises commands across processes using an advisory
lock on a file. The first argument names the lock file; the rest is the
command to run while holding it.

Examples:
  # Wait for the lock, then run a backup
  golock /var/run/backup.lock ./backup.sh

  # Fail immediately (exit 1) if another holder exists
  golock --kind nonblocking /var/run/backup.lock ./backup.sh

  # Readers may overlap; writers exclude everyone
  golock --mode read /var/run/db.lock ./report.sh

  # Derive the lock file from a resource name instead
  golock --lockdir /run/locks /var/db/users.db ./migrate.sh`,
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runGolock,
	}

	cmd.Flags().StringVar(&flagKind, "kind", "blocking", "lock kind: blocking or nonblocking")
	cmd.Flags().StringVar(&flagMode, "mode", "write", "lock mode: read or write")
	cmd.Flags().StringVar(&flagLockDir, "lockdir", "", "derive the lock file under this directory from the resource name")
	cmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "log lock activity to stderr")

	// Flag parsing stops at the lock file argument so the child command's
	// own flags pass through untouched.
	cmd.Flags().SetInterspersed(false)

	return cmd
}

// exitError carries a child's exit code through cobra to main.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func runGolock(cmd *cobra.Command, args []string) error {
	kind, err := fdlock.ParseKind(flagKind)
	if err != nil {
		return err
	}
	mode, err := fdlock.ParseMode(flagMode)
	if err != nil {
		return err
	}

	out := io.Discard
	if flagVerbose {
		out = cmd.ErrOrStderr()
	}
	logger := slog.New(slog.NewTextHandler(out, nil))

	path := args[0]
	if flagLockDir != "" {
		path = fdlock.LockPath(flagLockDir, args[0], fdlock.AlgXXHash3)
	}

	logger.Info("acquiring lock", "path", path, "kind", kind.String(), "mode", mode.String())

	fl, err := fdlock.Acquire(path, kind, mode)
	if errors.Is(err, fdlock.ErrWouldBlock) {
		if info, ierr := fdlock.ReadInfo(path); ierr == nil {
			return fmt.Errorf("%w: pid %d on %s", fdlock.ErrWouldBlock, info.PID, info.Host)
		}
		return err
	}
	if err != nil {
		return fmt.Errorf("failed to acquire %s: %w", path, err)
	}
	defer fl.Release()

	logger.Info("lock acquired", "path", path)

	child := exec.Command(args[1], args[2:]...)
	child.Stdin = cmd.InOrStdin()
	child.Stdout = cmd.OutOrStdout()
	child.Stderr = cmd.ErrOrStderr()
	if err := child.Run(); err != nil {
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			code := ee.ExitCode()
			if code < 0 {
				// Killed by a signal; there is no code to pass through.
				code = 1
			}
			logger.Info("command failed", "path", path, "code", code)
			return &exitError{code: code}
		}
		return fmt.Errorf("failed to run %s: %w", args[1], err)
	}

	logger.Info("command finished", "path", path)
	return nil
}

func main() {
	err := newRootCmd().Execute()
	if err == nil {
		return
	}

	var ee *exitError
	if errors.As(err, &ee) {
		// The child already reported itself on stderr.
		os.Exit(ee.code)
	}

	fmt.Fprintln(os.Stderr, "golock:", err)
	if errors.Is(err, fdlock.ErrWouldBlock) {
		os.Exit(1)
	}
	os.Exit(2)
}
