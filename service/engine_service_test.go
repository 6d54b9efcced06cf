package service

import (
	"bytes"
	"errors"
	"os"
	"testing"
	"time"

	"chronos/domain/lob"
	"chronos/domain/scan"
	"chronos/engine"
	"chronos/infra/sequence"
	"chronos/infra/wal"
	"chronos/sbe"
	"chronos/snapshot"
)

const px = int64(100_000_000)

func newTestService(t *testing.T, walDir string) (*EngineService, *engine.Engine) {
	t.Helper()
	eng := engine.New([]uint32{1}, scan.NewScalar(), nil)
	commandLog, err := wal.Open(wal.Config{
		Dir:             walDir,
		SegmentSize:     1 << 20,
		SegmentDuration: time.Hour,
	})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { commandLog.Close() })
	return New(eng, sequence.New(0), commandLog, nil, nil, nil), eng
}

func orderCmd(orderID uint64, side, orderType byte, price int64, qty uint32) []byte {
	cmd := make([]byte, sbe.HeaderLength+sbe.NewOrderSingleBlockLength)
	var hdr sbe.MessageHeaderEncoder
	hdr.Wrap(cmd, 0).
		BlockLength(sbe.NewOrderSingleBlockLength).
		TemplateID(sbe.NewOrderSingleTemplateID).
		SchemaID(sbe.SchemaID).
		Version(sbe.SchemaVersion)
	var enc sbe.NewOrderSingleEncoder
	enc.Wrap(cmd, sbe.HeaderLength).
		OrderID(orderID).
		Price(price).
		ClientID(orderID).
		TimestampNs(0).
		InstrumentID(1).
		Quantity(qty).
		Side(side).
		OrderType(orderType)
	return cmd
}

func TestSubmitAssignsSequenceAndReturnsReports(t *testing.T) {
	svc, _ := newTestService(t, t.TempDir())

	seq, reports, err := svc.Submit(orderCmd(1, lob.SideBuy, lob.OrderTypeLimit, 100*px, 10))
	if err != nil {
		t.Fatal(err)
	}
	if seq != 1 {
		t.Errorf("seq = %d, want 1", seq)
	}
	if len(reports) != sbe.ReportMessageLength {
		t.Fatalf("reports length = %d, want one report", len(reports))
	}

	var dec sbe.ExecutionReportDecoder
	dec.Wrap(reports, sbe.HeaderLength)
	if dec.ExecType() != lob.ExecTypeNew || dec.OrderID() != 1 {
		t.Errorf("unexpected report: type=%d order=%d", dec.ExecType(), dec.OrderID())
	}

	depth, ok := svc.Depth(1, 10)
	if !ok || len(depth.Bids) != 1 || depth.Bids[0].Quantity != 10 {
		t.Errorf("depth after submit = %+v", depth)
	}
	if svc.MessageCount() != 1 {
		t.Errorf("message count = %d, want 1", svc.MessageCount())
	}
}

func TestSubmitRejectsShortCommand(t *testing.T) {
	svc, _ := newTestService(t, t.TempDir())
	if _, _, err := svc.Submit([]byte{1, 2, 3}); !errors.Is(err, ErrShortCommand) {
		t.Errorf("err = %v, want ErrShortCommand", err)
	}
}

func TestSubmitIgnoresUnknownTemplate(t *testing.T) {
	svc, _ := newTestService(t, t.TempDir())

	cmd := make([]byte, sbe.HeaderLength)
	var hdr sbe.MessageHeaderEncoder
	hdr.Wrap(cmd, 0).BlockLength(0).TemplateID(200).SchemaID(sbe.SchemaID).Version(sbe.SchemaVersion)

	_, reports, err := svc.Submit(cmd)
	if err != nil {
		t.Fatal(err)
	}
	if len(reports) != 0 {
		t.Errorf("unknown template produced %d report bytes", len(reports))
	}
}

// Recovery replays the command log and rebuilds the exact engine state: the
// recovered engine must answer the next command byte-identically to the
// original.
func TestRecoverRebuildsIdenticalState(t *testing.T) {
	walDir := t.TempDir()
	svc, liveEng := newTestService(t, walDir)

	cmds := [][]byte{
		orderCmd(1, lob.SideBuy, lob.OrderTypeLimit, 100*px, 10),
		orderCmd(2, lob.SideSell, lob.OrderTypeLimit, 101*px, 4),
		orderCmd(3, lob.SideSell, lob.OrderTypeLimit, 100*px, 6),
		orderCmd(4, lob.SideBuy, lob.OrderTypeLimit, 101*px, 7),
	}
	for _, cmd := range cmds {
		if _, _, err := svc.Submit(cmd); err != nil {
			t.Fatal(err)
		}
	}

	recoveredEng := engine.New([]uint32{1}, scan.NewScalar(), nil)
	seqGen := sequence.New(0)
	applied, err := Recover(recoveredEng, seqGen, walDir, 0)
	if err != nil {
		t.Fatal(err)
	}
	if applied != uint64(len(cmds)) {
		t.Errorf("applied = %d, want %d", applied, len(cmds))
	}
	if seqGen.Current() != uint64(len(cmds)) {
		t.Errorf("sequencer resumed at %d, want %d", seqGen.Current(), len(cmds))
	}

	// Same probe command, same timestamp: outputs must be byte-identical.
	probe := orderCmd(9, lob.SideSell, lob.OrderTypeLimit, 100*px, 3)
	var dec1, dec2 sbe.NewOrderSingleDecoder
	dec1.Wrap(probe, sbe.HeaderLength)
	dec2.Wrap(probe, sbe.HeaderLength)

	out1 := make([]byte, 4096)
	out2 := make([]byte, 4096)
	n1 := liveEng.MatchOrder(&dec1, 777, out1, 0)
	n2 := recoveredEng.MatchOrder(&dec2, 777, out2, 0)

	if n1 != n2 || !bytes.Equal(out1[:n1], out2[:n2]) {
		t.Error("recovered engine diverged from the live engine")
	}
}

func TestSnapshotThenRecover(t *testing.T) {
	walDir := t.TempDir()
	snapDir := t.TempDir()
	svc, liveEng := newTestService(t, walDir)

	for i := uint64(1); i <= 5; i++ {
		if _, _, err := svc.Submit(orderCmd(i, lob.SideBuy, lob.OrderTypeLimit,
			px*int64(95+i), 2)); err != nil {
			t.Fatal(err)
		}
	}

	svc.snapshotOnce(&snapshot.Writer{Dir: snapDir})

	// More traffic after the snapshot point.
	if _, _, err := svc.Submit(orderCmd(6, lob.SideSell, lob.OrderTypeLimit, 99*px, 3)); err != nil {
		t.Fatal(err)
	}

	// Cold start: snapshot restore, then WAL replay of the tail.
	recoveredEng := engine.New([]uint32{1}, scan.NewScalar(), nil)
	path, restoredSeq, ok, err := snapshot.LatestPath(snapDir)
	if err != nil || !ok {
		t.Fatalf("LatestPath = (%v, %v)", ok, err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := recoveredEng.RestoreSnapshot(f); err != nil {
		f.Close()
		t.Fatal(err)
	}
	f.Close()

	seqGen := sequence.New(0)
	if _, err := Recover(recoveredEng, seqGen, walDir, restoredSeq); err != nil {
		t.Fatal(err)
	}

	liveBook := liveEng.Book(1)
	recBook := recoveredEng.Book(1)
	if liveBook.LiveOrderCount() != recBook.LiveOrderCount() ||
		liveBook.BidLevelCount() != recBook.BidLevelCount() ||
		liveBook.BestBid() != recBook.BestBid() {
		t.Error("snapshot+replay state differs from live state")
	}
	if err := recBook.CheckInvariants(); err != nil {
		t.Errorf("invariants: %v", err)
	}
}
