package snapshot

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Source is anything that can serialize itself through Write; in practice
// the matching engine.
type Source interface {
	WriteSnapshot(w io.Writer, messageCount uint64) error
}

// Writer persists snapshots under a directory, one file per sequence point.
type Writer struct {
	Dir string
}

// Write stores a snapshot as snapshot-<seq>.bin. The file is written to a
// temp name and renamed so a crash never leaves a truncated snapshot behind.
func (w *Writer) Write(seq uint64, messageCount uint64, src Source) error {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return err
	}

	final := filepath.Join(w.Dir, fmt.Sprintf("snapshot-%020d.bin", seq))
	tmp := final + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if err := src.WriteSnapshot(f, messageCount); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, final)
}

// LatestPath returns the newest snapshot file under dir and its sequence,
// or ok=false when none exist.
func LatestPath(dir string) (path string, seq uint64, ok bool, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", 0, false, nil
		}
		return "", 0, false, err
	}
	for _, e := range entries {
		var s uint64
		if n, _ := fmt.Sscanf(e.Name(), "snapshot-%d.bin", &s); n == 1 && (!ok || s >= seq) {
			seq = s
			path = filepath.Join(dir, e.Name())
			ok = true
		}
	}
	return path, seq, ok, nil
}
