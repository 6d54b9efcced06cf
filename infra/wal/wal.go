package wal

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// Config sizes the log's segments.
type Config struct {
	Dir             string
	SegmentSize     int64
	SegmentDuration time.Duration
}

// WAL is a segmented append-only command log. Append is called from the
// single admission goroutine; Replay and TruncateBefore run during startup
// and snapshotting.
type WAL struct {
	dir             string
	segmentSize     int64
	segmentDuration time.Duration

	current      *segment
	nextIndex    int
	lastRotation time.Time
}

type segment struct {
	file   *os.File
	path   string
	offset int64
}

func openSegment(dir string, index int) (*segment, error) {
	path := filepath.Join(dir, fmt.Sprintf("segment-%06d.wal", index))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	return &segment{file: f, path: path, offset: info.Size()}, nil
}

func (s *segment) append(b []byte) error {
	n, err := s.file.Write(b)
	if err != nil {
		return err
	}
	s.offset += int64(n)
	return nil
}

func (s *segment) close() error { return s.file.Close() }

// Open creates the directory if needed and resumes appending to the highest
// existing segment.
func Open(cfg Config) (*WAL, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, err
	}

	next := 0
	existing, err := segmentPaths(cfg.Dir)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		var idx int
		fmt.Sscanf(filepath.Base(existing[len(existing)-1]), "segment-%d.wal", &idx)
		next = idx
	}

	seg, err := openSegment(cfg.Dir, next)
	if err != nil {
		return nil, err
	}

	return &WAL{
		dir:             cfg.Dir,
		segmentSize:     cfg.SegmentSize,
		segmentDuration: cfg.SegmentDuration,
		current:         seg,
		nextIndex:       next,
		lastRotation:    time.Now(),
	}, nil
}

// Append frames one record at the log tail. It does not fsync; the segment
// is synced on rotation or by an explicit Sync.
func (w *WAL) Append(rec *Record) error {
	if err := w.current.append(EncodeRecord(rec)); err != nil {
		return err
	}
	if w.shouldRotate() {
		return w.rotate()
	}
	return nil
}

// Sync flushes the current segment to stable storage.
func (w *WAL) Sync() error { return w.current.file.Sync() }

// Close closes the active segment.
func (w *WAL) Close() error { return w.current.close() }

func (w *WAL) shouldRotate() bool {
	return w.current.offset >= w.segmentSize ||
		time.Since(w.lastRotation) >= w.segmentDuration
}

func (w *WAL) rotate() error {
	if err := w.current.file.Sync(); err != nil {
		return err
	}
	if err := w.current.close(); err != nil {
		return err
	}
	w.nextIndex++

	seg, err := openSegment(w.dir, w.nextIndex)
	if err != nil {
		return err
	}
	w.current = seg
	w.lastRotation = time.Now()
	return nil
}

// Replay streams every record under dir in log order. Returns the last
// sequence seen so the sequencer can resume from it.
func Replay(dir string, fn func(*Record) error) (lastSeq uint64, err error) {
	paths, err := segmentPaths(dir)
	if err != nil {
		return 0, err
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return lastSeq, err
		}
		r := bytes.NewReader(data)
		for {
			rec, err := DecodeRecord(r)
			if err == io.EOF {
				break
			}
			if err != nil {
				return lastSeq, fmt.Errorf("%w in %s", err, filepath.Base(path))
			}
			if err := fn(rec); err != nil {
				return lastSeq, err
			}
			lastSeq = rec.Seq
		}
	}
	return lastSeq, nil
}

// TruncateBefore removes closed segments whose records all precede seq.
// The active segment is never removed.
func (w *WAL) TruncateBefore(seq uint64) error {
	paths, err := segmentPaths(w.dir)
	if err != nil {
		return err
	}
	for _, path := range paths {
		if path == w.current.path {
			continue
		}
		last, err := lastSeqIn(path)
		if err != nil {
			return err
		}
		if last < seq {
			if err := os.Remove(path); err != nil {
				return err
			}
		}
	}
	return nil
}

func lastSeqIn(path string) (uint64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	r := bytes.NewReader(data)
	var last uint64
	for {
		rec, err := DecodeRecord(r)
		if err == io.EOF {
			return last, nil
		}
		if err != nil {
			return last, err
		}
		last = rec.Seq
	}
}

func segmentPaths(dir string) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "segment-*.wal"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}
