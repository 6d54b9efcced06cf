package outbox

import (
	"bytes"
	"testing"
)

func openTestOutbox(t *testing.T) *Outbox {
	t.Helper()
	o, err := Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { o.Close() })
	return o
}

func TestPutScanLifecycle(t *testing.T) {
	o := openTestOutbox(t)

	payloads := map[uint64][]byte{
		1: []byte("report-one"),
		2: []byte("report-two"),
		3: []byte("report-three"),
	}
	for id, p := range payloads {
		if err := o.PutNew(id, p); err != nil {
			t.Fatal(err)
		}
	}

	var seen []uint64
	err := o.ScanPending(func(rec *Record) error {
		seen = append(seen, rec.ExecID)
		if !bytes.Equal(rec.Payload, payloads[rec.ExecID]) {
			t.Errorf("exec %d payload = %q", rec.ExecID, rec.Payload)
		}
		if rec.State != StateNew {
			t.Errorf("exec %d state = %v, want NEW", rec.ExecID, rec.State)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	// Big-endian keys keep the scan in emission order.
	if len(seen) != 3 || seen[0] != 1 || seen[1] != 2 || seen[2] != 3 {
		t.Errorf("scan order = %v, want [1 2 3]", seen)
	}
}

func TestAckedReportsLeaveThePendingSet(t *testing.T) {
	o := openTestOutbox(t)

	o.PutNew(1, []byte("a"))
	o.PutNew(2, []byte("b"))
	if err := o.MarkSent(1, 100); err != nil {
		t.Fatal(err)
	}
	if err := o.MarkAcked(1, 200); err != nil {
		t.Fatal(err)
	}

	var pending []uint64
	if err := o.ScanPending(func(rec *Record) error {
		pending = append(pending, rec.ExecID)
		return nil
	}); err != nil {
		t.Fatal(err)
	}
	if len(pending) != 1 || pending[0] != 2 {
		t.Errorf("pending = %v, want [2]", pending)
	}
}

func TestFailedReportsStayPending(t *testing.T) {
	o := openTestOutbox(t)

	o.PutNew(5, []byte("x"))
	o.MarkSent(5, 1)
	o.MarkFailed(5, 2)

	found := false
	o.ScanPending(func(rec *Record) error {
		if rec.ExecID == 5 {
			found = true
			if rec.State != StateFailed || rec.Retries != 2 {
				t.Errorf("record = %+v", rec)
			}
		}
		return nil
	})
	if !found {
		t.Error("failed report must remain pending")
	}
}

func TestTruncateAckedUpTo(t *testing.T) {
	o := openTestOutbox(t)

	for id := uint64(1); id <= 4; id++ {
		o.PutNew(id, []byte("p"))
	}
	o.MarkAcked(1, 1)
	o.MarkAcked(2, 1)
	o.MarkAcked(4, 1)

	if err := o.TruncateAckedUpTo(3); err != nil {
		t.Fatal(err)
	}

	// 1 and 2 are gone; 3 is still pending; 4 is acked but beyond the bound.
	var remaining []uint64
	iterAll := func(rec *Record) error {
		remaining = append(remaining, rec.ExecID)
		return nil
	}
	if err := o.ScanPending(iterAll); err != nil {
		t.Fatal(err)
	}
	if len(remaining) != 1 || remaining[0] != 3 {
		t.Errorf("pending after truncate = %v, want [3]", remaining)
	}
}
