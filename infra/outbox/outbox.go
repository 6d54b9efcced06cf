// Package outbox stores emitted execution reports until the broadcaster has
// published them. Keys are big-endian execution ids so scans walk reports in
// emission order; values carry delivery state plus the wire-format report.
package outbox

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"
)

// -------------------- State --------------------

// State tracks a report's delivery progress.
type State uint8

const (
	StateNew State = iota
	StateSent
	StateAcked
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateNew:
		return "NEW"
	case StateSent:
		return "SENT"
	case StateAcked:
		return "ACKED"
	case StateFailed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// -------------------- Record --------------------

// Record is one outbox entry.
type Record struct {
	ExecID      uint64
	State       State
	Retries     uint32
	LastAttempt int64
	Payload     []byte // header + ExecutionReport wire bytes
}

// value encoding: [state:1][retries:4][lastAttempt:8][payload...]
const valueHeaderSize = 13

func encodeValue(r *Record) []byte {
	buf := make([]byte, valueHeaderSize+len(r.Payload))
	buf[0] = byte(r.State)
	binary.BigEndian.PutUint32(buf[1:5], r.Retries)
	binary.BigEndian.PutUint64(buf[5:13], uint64(r.LastAttempt))
	copy(buf[valueHeaderSize:], r.Payload)
	return buf
}

func decodeValue(execID uint64, b []byte) (*Record, error) {
	if len(b) < valueHeaderSize {
		return nil, errors.New("outbox: short record")
	}
	payload := make([]byte, len(b)-valueHeaderSize)
	copy(payload, b[valueHeaderSize:])
	return &Record{
		ExecID:      execID,
		State:       State(b[0]),
		Retries:     binary.BigEndian.Uint32(b[1:5]),
		LastAttempt: int64(binary.BigEndian.Uint64(b[5:13])),
		Payload:     payload,
	}, nil
}

func keyFor(execID uint64) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, execID)
	return k
}

// -------------------- Outbox --------------------

// Outbox is a pebble-backed report store.
type Outbox struct {
	db *pebble.DB
}

// Open opens (or creates) the outbox under dir.
func Open(dir string) (*Outbox, error) {
	db, err := pebble.Open(dir, &pebble.Options{
		DisableWAL: false, // reports must survive a crash
	})
	if err != nil {
		return nil, err
	}
	return &Outbox{db: db}, nil
}

// Close closes the store.
func (o *Outbox) Close() error { return o.db.Close() }

// -------------------- API --------------------

// PutNew inserts a freshly emitted report.
func (o *Outbox) PutNew(execID uint64, payload []byte) error {
	rec := Record{ExecID: execID, State: StateNew, Payload: payload}
	return o.db.Set(keyFor(execID), encodeValue(&rec), pebble.Sync)
}

// MarkSent flips a report to SENT and bumps its retry counter.
func (o *Outbox) MarkSent(execID uint64, attemptNs int64) error {
	return o.updateState(execID, StateSent, attemptNs)
}

// MarkAcked flips a report to ACKED.
func (o *Outbox) MarkAcked(execID uint64, attemptNs int64) error {
	return o.updateState(execID, StateAcked, attemptNs)
}

// MarkFailed flips a report to FAILED.
func (o *Outbox) MarkFailed(execID uint64, attemptNs int64) error {
	return o.updateState(execID, StateFailed, attemptNs)
}

func (o *Outbox) updateState(execID uint64, s State, attemptNs int64) error {
	key := keyFor(execID)
	val, closer, err := o.db.Get(key)
	if err != nil {
		return fmt.Errorf("outbox: exec %d: %w", execID, err)
	}
	rec, err := decodeValue(execID, val)
	closer.Close()
	if err != nil {
		return err
	}
	rec.State = s
	rec.Retries++
	rec.LastAttempt = attemptNs
	return o.db.Set(key, encodeValue(rec), pebble.NoSync)
}

// ScanPending visits every NEW, SENT or FAILED report in execution-id order.
// The visit callback returning an error stops the scan.
func (o *Outbox) ScanPending(visit func(*Record) error) error {
	iter, err := o.db.NewIter(nil)
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		execID := binary.BigEndian.Uint64(iter.Key())
		rec, err := decodeValue(execID, iter.Value())
		if err != nil {
			return err
		}
		if rec.State == StateAcked {
			continue
		}
		if err := visit(rec); err != nil {
			return err
		}
	}
	return iter.Error()
}

// TruncateAckedUpTo deletes ACKED reports with execID <= upTo.
func (o *Outbox) TruncateAckedUpTo(upTo uint64) error {
	iter, err := o.db.NewIter(&pebble.IterOptions{
		UpperBound: keyFor(upTo + 1),
	})
	if err != nil {
		return err
	}
	defer iter.Close()

	batch := o.db.NewBatch()
	for iter.First(); iter.Valid(); iter.Next() {
		if len(iter.Value()) >= 1 && State(iter.Value()[0]) == StateAcked {
			if err := batch.Delete(iter.Key(), nil); err != nil {
				batch.Close()
				return err
			}
		}
	}
	if err := iter.Error(); err != nil {
		batch.Close()
		return err
	}
	return batch.Commit(pebble.NoSync)
}
