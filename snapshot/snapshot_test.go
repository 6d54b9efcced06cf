package snapshot

import (
	"bytes"
	"errors"
	"io"
	"os"
	"testing"

	"chronos/domain/lob"
	"chronos/domain/scan"
)

const px = int64(100_000_000)

func buildBook(t *testing.T, instrumentID uint32) *lob.OrderBook {
	t.Helper()
	b := lob.NewOrderBook(instrumentID, scan.NewScalar())

	add := func(orderID uint64, price int64, qty int32, side byte) int32 {
		slot := b.AddOrder(orderID, price, orderID*10, int64(orderID*100), qty,
			instrumentID, side, lob.OrderTypeLimit)
		if slot == lob.NullSlot {
			t.Fatalf("AddOrder(%d) refused", orderID)
		}
		return slot
	}

	add(1, 100*px, 10, lob.SideBuy)
	add(2, 100*px, 5, lob.SideBuy)
	add(3, 99*px, 7, lob.SideBuy)
	add(4, 101*px, 3, lob.SideSell)
	slot := add(5, 102*px, 20, lob.SideSell)
	b.ReduceQuantity(slot, 6) // a partially filled resting order
	return b
}

func booksEqual(t *testing.T, a, c *lob.OrderBook) {
	t.Helper()
	if a.LiveOrderCount() != c.LiveOrderCount() {
		t.Fatalf("live orders: %d vs %d", a.LiveOrderCount(), c.LiveOrderCount())
	}
	if a.BidLevelCount() != c.BidLevelCount() || a.AskLevelCount() != c.AskLevelCount() {
		t.Fatal("level counts differ")
	}
	for _, side := range []byte{lob.SideBuy, lob.SideSell} {
		count := a.BidLevelCount()
		if side == lob.SideSell {
			count = a.AskLevelCount()
		}
		for i := 0; i < count; i++ {
			sa, sc := a.HeadOrderSlot(side, i), c.HeadOrderSlot(side, i)
			for sa != lob.NullSlot || sc != lob.NullSlot {
				if sa == lob.NullSlot || sc == lob.NullSlot {
					t.Fatalf("%s level %d queues have different lengths", lob.SideName(side), i)
				}
				if a.SlotOrderID(sa) != c.SlotOrderID(sc) ||
					a.SlotPrice(sa) != c.SlotPrice(sc) ||
					a.SlotClientID(sa) != c.SlotClientID(sc) ||
					a.SlotTimestamp(sa) != c.SlotTimestamp(sc) ||
					a.SlotQuantity(sa) != c.SlotQuantity(sc) ||
					a.SlotRemaining(sa) != c.SlotRemaining(sc) ||
					a.SlotOrderType(sa) != c.SlotOrderType(sc) {
					t.Fatalf("order %d restored differently", a.SlotOrderID(sa))
				}
				sa, sc = a.SlotNext(sa), c.SlotNext(sc)
			}
		}
	}
}

func TestWriteRestoreRoundTrip(t *testing.T) {
	src := buildBook(t, 1)

	var buf bytes.Buffer
	if err := Write(&buf, 1234, 55, []*lob.OrderBook{src}); err != nil {
		t.Fatal(err)
	}

	dst := lob.NewOrderBook(1, scan.NewScalar())
	messageCount, nextExecID, err := Restore(&buf, func(id uint32) *lob.OrderBook {
		if id == 1 {
			return dst
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if messageCount != 1234 {
		t.Errorf("messageCount = %d, want 1234", messageCount)
	}
	if nextExecID != 55 {
		t.Errorf("nextExecID = %d, want 55", nextExecID)
	}

	booksEqual(t, src, dst)
	if err := dst.CheckInvariants(); err != nil {
		t.Errorf("restored book invariants: %v", err)
	}
}

func TestRestoreRejectsBadMagic(t *testing.T) {
	_, _, err := Restore(bytes.NewReader([]byte("NOPE....")), func(uint32) *lob.OrderBook { return nil })
	if !errors.Is(err, ErrBadMagic) {
		t.Errorf("err = %v, want ErrBadMagic", err)
	}
}

func TestRestoreRejectsCorruption(t *testing.T) {
	src := buildBook(t, 1)
	var buf bytes.Buffer
	if err := Write(&buf, 7, 1, []*lob.OrderBook{src}); err != nil {
		t.Fatal(err)
	}

	data := buf.Bytes()
	data[20] ^= 0x01 // flip a bit inside the checksummed region

	dst := lob.NewOrderBook(1, scan.NewScalar())
	_, _, err := Restore(bytes.NewReader(data), func(uint32) *lob.OrderBook { return dst })
	if err == nil {
		t.Fatal("corrupt snapshot restored without error")
	}
}

func TestRestoreUnknownInstrumentFails(t *testing.T) {
	src := buildBook(t, 5)
	var buf bytes.Buffer
	if err := Write(&buf, 1, 1, []*lob.OrderBook{src}); err != nil {
		t.Fatal(err)
	}
	_, _, err := Restore(&buf, func(uint32) *lob.OrderBook { return nil })
	if err == nil {
		t.Fatal("restore into a missing book must fail")
	}
}

// bookSource adapts a set of books to the Source interface for file tests.
type bookSource []*lob.OrderBook

func (s bookSource) WriteSnapshot(w io.Writer, messageCount uint64) error {
	return Write(w, messageCount, 1, s)
}

func TestWriterFilesRoundTrip(t *testing.T) {
	dir := t.TempDir()
	w := &Writer{Dir: dir}
	src := buildBook(t, 1)

	if _, _, ok, err := LatestPath(dir); err != nil || ok {
		t.Fatalf("LatestPath on empty dir = (%v, %v)", ok, err)
	}

	if err := w.Write(42, 9, bookSource{src}); err != nil {
		t.Fatal(err)
	}
	if err := w.Write(43, 10, bookSource{src}); err != nil {
		t.Fatal(err)
	}

	path, seq, ok, err := LatestPath(dir)
	if err != nil || !ok {
		t.Fatalf("LatestPath = (%v, %v)", ok, err)
	}
	if seq != 43 {
		t.Errorf("latest seq = %d, want 43", seq)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	dst := lob.NewOrderBook(1, scan.NewScalar())
	messageCount, _, err := Restore(f, func(uint32) *lob.OrderBook { return dst })
	if err != nil {
		t.Fatal(err)
	}
	if messageCount != 10 {
		t.Errorf("messageCount = %d, want 10", messageCount)
	}
	booksEqual(t, src, dst)
}
