// Holder metadata for bound lock files.
//
// A write-locked lock file records who holds it: pid, host, and acquisition
// time as a single JSON document. Contenders that fail with ErrWouldBlock
// read it back to name the process in the way. The record is advisory and
// best-effort — the OS lock, never the metadata, is the source of truth.
package fdlock

import (
	"os"
	"time"

	json "github.com/goccy/go-json"
)

// Info identifies the current holder of a bound lock file.
type Info struct {
	PID      int    `json:"pid"`
	Host     string `json:"host"`
	Acquired int64  `json:"acquired"` // Unix milliseconds
}

// writeInfo replaces f's contents with the calling process's Info. Called
// with the write lock already held, so a reader holding a Read lock can
// never observe a torn record.
func writeInfo(f *os.File) error {
	host, _ := os.Hostname()
	buf, err := json.Marshal(Info{
		PID:      os.Getpid(),
		Host:     host,
		Acquired: time.Now().UnixMilli(),
	})
	if err != nil {
		return err
	}
	if err := f.Truncate(0); err != nil {
		return err
	}
	_, err = f.WriteAt(buf, 0)
	return err
}

// ReadInfo reads holder metadata from a lock file. ErrNoInfo is returned
// when the file is empty or does not contain a metadata record; a missing
// file propagates its os error untouched.
func ReadInfo(path string) (*Info, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrNoInfo
	}
	var info Info
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, ErrNoInfo
	}
	return &info, nil
}
