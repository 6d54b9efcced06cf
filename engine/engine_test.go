package engine

import (
	"bytes"
	"testing"

	"chronos/domain/lob"
	"chronos/domain/scan"
	"chronos/sbe"
)

const px = int64(100_000_000) // $1.00 fixed-point

type report struct {
	orderID   uint64
	execID    uint64
	price     int64
	clientID  uint64
	matchTs   int64
	instr     uint32
	filled    uint32
	remaining uint32
	side      byte
	execType  byte
}

func newTestEngine() *Engine {
	return New([]uint32{1}, scan.NewScalar(), nil)
}

func newOrderCmd(orderID uint64, side, orderType byte, price int64, qty uint32, instr uint32) []byte {
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
		ClientID(orderID * 10).
		TimestampNs(0).
		InstrumentID(instr).
		Quantity(qty).
		Side(side).
		OrderType(orderType)
	return cmd
}

func cancelCmd(orderID uint64, instr uint32) []byte {
	cmd := make([]byte, sbe.HeaderLength+sbe.CancelOrderBlockLength)
	var hdr sbe.MessageHeaderEncoder
	hdr.Wrap(cmd, 0).
		BlockLength(sbe.CancelOrderBlockLength).
		TemplateID(sbe.CancelOrderTemplateID).
		SchemaID(sbe.SchemaID).
		Version(sbe.SchemaVersion)
	var enc sbe.CancelOrderEncoder
	enc.Wrap(cmd, sbe.HeaderLength).
		OrderID(orderID).
		ClientID(orderID * 10).
		InstrumentID(instr)
	return cmd
}

func match(t *testing.T, e *Engine, cmd []byte, ts int64, out []byte) int {
	t.Helper()
	var dec sbe.NewOrderSingleDecoder
	dec.Wrap(cmd, sbe.HeaderLength)
	return e.MatchOrder(&dec, ts, out, 0)
}

func cancel(t *testing.T, e *Engine, cmd []byte, ts int64, out []byte) int {
	t.Helper()
	var dec sbe.CancelOrderDecoder
	dec.Wrap(cmd, sbe.HeaderLength)
	return e.CancelOrder(&dec, ts, out, 0)
}

func parseReports(t *testing.T, out []byte, n int) []report {
	t.Helper()
	if n%sbe.ReportMessageLength != 0 {
		t.Fatalf("output length %d is not a whole number of reports", n)
	}
	var reports []report
	var hdr sbe.MessageHeaderDecoder
	var dec sbe.ExecutionReportDecoder
	for off := 0; off < n; off += sbe.ReportMessageLength {
		hdr.Wrap(out, off)
		if hdr.TemplateID() != sbe.ExecutionReportTemplateID {
			t.Fatalf("template id = %d, want %d", hdr.TemplateID(), sbe.ExecutionReportTemplateID)
		}
		if hdr.BlockLength() != sbe.ExecutionReportBlockLength {
			t.Fatalf("block length = %d, want %d", hdr.BlockLength(), sbe.ExecutionReportBlockLength)
		}
		dec.Wrap(out, off+sbe.HeaderLength)
		reports = append(reports, report{
			orderID:   dec.OrderID(),
			execID:    dec.ExecID(),
			price:     dec.Price(),
			clientID:  dec.ClientID(),
			matchTs:   dec.MatchTimestampNs(),
			instr:     dec.InstrumentID(),
			filled:    dec.FilledQuantity(),
			remaining: dec.RemainingQuantity(),
			side:      dec.Side(),
			execType:  dec.ExecType(),
		})
	}
	return reports
}

// A limit order with no cross rests and reports NEW.
func TestLimitOrderRests(t *testing.T) {
	e := newTestEngine()
	out := make([]byte, 4096)

	n := match(t, e, newOrderCmd(1, lob.SideBuy, lob.OrderTypeLimit, 100*px, 10, 1), 1000, out)
	rs := parseReports(t, out, n)

	if len(rs) != 1 {
		t.Fatalf("reports = %d, want 1", len(rs))
	}
	r := rs[0]
	if r.execType != lob.ExecTypeNew || r.orderID != 1 || r.filled != 0 ||
		r.remaining != 10 || r.price != 100*px || r.side != lob.SideBuy ||
		r.matchTs != 1000 || r.execID != 1 {
		t.Errorf("unexpected NEW report: %+v", r)
	}

	book := e.Book(1)
	if book.BestBid() != 100*px || book.BidAggQty()[0] != 10 || book.AskLevelCount() != 0 {
		t.Error("book state after rest is wrong")
	}
}

// An exact cross fills both sides, resting report first.
func TestExactCross(t *testing.T) {
	e := newTestEngine()
	out := make([]byte, 4096)

	match(t, e, newOrderCmd(1, lob.SideBuy, lob.OrderTypeLimit, 100*px, 10, 1), 1000, out)
	n := match(t, e, newOrderCmd(2, lob.SideSell, lob.OrderTypeLimit, 100*px, 10, 1), 2000, out)
	rs := parseReports(t, out, n)

	if len(rs) != 2 {
		t.Fatalf("reports = %d, want 2", len(rs))
	}
	resting, aggressor := rs[0], rs[1]
	if resting.execType != lob.ExecTypeFill || resting.orderID != 1 ||
		resting.filled != 10 || resting.remaining != 0 || resting.side != lob.SideBuy ||
		resting.execID != 2 {
		t.Errorf("unexpected resting report: %+v", resting)
	}
	if aggressor.execType != lob.ExecTypeFill || aggressor.orderID != 2 ||
		aggressor.filled != 10 || aggressor.remaining != 0 || aggressor.side != lob.SideSell ||
		aggressor.execID != 3 {
		t.Errorf("unexpected aggressor report: %+v", aggressor)
	}

	book := e.Book(1)
	if book.LiveOrderCount() != 0 {
		t.Error("book must be empty after an exact cross")
	}
	if err := book.CheckInvariants(); err != nil {
		t.Errorf("invariants: %v", err)
	}
}

// A partial fill sweeping two ask levels leaves the residual on the
// second level.
func TestSweepAcrossTwoLevels(t *testing.T) {
	e := newTestEngine()
	out := make([]byte, 4096)

	match(t, e, newOrderCmd(10, lob.SideSell, lob.OrderTypeLimit, 100*px, 3, 1), 1000, out)
	match(t, e, newOrderCmd(11, lob.SideSell, lob.OrderTypeLimit, 101*px, 5, 1), 2000, out)

	n := match(t, e, newOrderCmd(20, lob.SideBuy, lob.OrderTypeLimit, 101*px, 6, 1), 3000, out)
	rs := parseReports(t, out, n)

	if len(rs) != 3 {
		t.Fatalf("reports = %d, want 3", len(rs))
	}
	if rs[0].orderID != 10 || rs[0].execType != lob.ExecTypeFill || rs[0].filled != 3 ||
		rs[0].remaining != 0 || rs[0].price != 100*px {
		t.Errorf("unexpected first resting report: %+v", rs[0])
	}
	if rs[1].orderID != 11 || rs[1].execType != lob.ExecTypePartialFill || rs[1].filled != 3 ||
		rs[1].remaining != 2 || rs[1].price != 101*px {
		t.Errorf("unexpected second resting report: %+v", rs[1])
	}
	if rs[2].orderID != 20 || rs[2].execType != lob.ExecTypeFill || rs[2].filled != 6 ||
		rs[2].remaining != 0 {
		t.Errorf("unexpected aggressor report: %+v", rs[2])
	}

	book := e.Book(1)
	if book.BidLevelCount() != 0 || book.AskLevelCount() != 1 ||
		book.BestAsk() != 101*px || book.AskAggQty()[0] != 2 {
		t.Error("book state after the sweep is wrong")
	}
}

// A market order against an empty book is rejected.
func TestMarketOrderNoLiquidity(t *testing.T) {
	e := newTestEngine()
	out := make([]byte, 4096)

	n := match(t, e, newOrderCmd(7, lob.SideBuy, lob.OrderTypeMarket, 0, 1, 1), 1000, out)
	rs := parseReports(t, out, n)

	if len(rs) != 1 {
		t.Fatalf("reports = %d, want 1", len(rs))
	}
	if rs[0].execType != lob.ExecTypeRejected || rs[0].orderID != 7 ||
		rs[0].filled != 0 || rs[0].remaining != 1 {
		t.Errorf("unexpected reject report: %+v", rs[0])
	}
	if e.Book(1).LiveOrderCount() != 0 {
		t.Error("rejected market order must not change the book")
	}
}

// Time priority within a price level: the earlier order fills first.
func TestTimePriorityWithinLevel(t *testing.T) {
	e := newTestEngine()
	out := make([]byte, 4096)

	match(t, e, newOrderCmd(1, lob.SideBuy, lob.OrderTypeLimit, 100*px, 5, 1), 1000, out)
	match(t, e, newOrderCmd(2, lob.SideBuy, lob.OrderTypeLimit, 100*px, 5, 1), 2000, out)

	n := match(t, e, newOrderCmd(3, lob.SideSell, lob.OrderTypeLimit, 100*px, 7, 1), 3000, out)
	rs := parseReports(t, out, n)

	if len(rs) != 3 {
		t.Fatalf("reports = %d, want 3", len(rs))
	}
	if rs[0].orderID != 1 || rs[0].execType != lob.ExecTypeFill || rs[0].filled != 5 {
		t.Errorf("order 1 must fill first: %+v", rs[0])
	}
	if rs[1].orderID != 2 || rs[1].execType != lob.ExecTypePartialFill ||
		rs[1].filled != 2 || rs[1].remaining != 3 {
		t.Errorf("order 2 must partial-fill second: %+v", rs[1])
	}
	if rs[2].orderID != 3 || rs[2].execType != lob.ExecTypeFill || rs[2].filled != 7 {
		t.Errorf("unexpected aggressor report: %+v", rs[2])
	}

	book := e.Book(1)
	if book.BidAggQty()[0] != 3 {
		t.Errorf("residual bid quantity = %d, want 3", book.BidAggQty()[0])
	}
	head := book.HeadOrderSlot(lob.SideBuy, 0)
	if book.SlotOrderID(head) != 2 {
		t.Errorf("remaining order = %d, want 2", book.SlotOrderID(head))
	}
}

// Cancel removes the order and reports the open quantity.
func TestCancelRestingOrder(t *testing.T) {
	e := newTestEngine()
	out := make([]byte, 4096)

	match(t, e, newOrderCmd(9, lob.SideBuy, lob.OrderTypeLimit, 100*px, 4, 1), 1000, out)
	n := cancel(t, e, cancelCmd(9, 1), 2000, out)
	rs := parseReports(t, out, n)

	if len(rs) != 1 {
		t.Fatalf("reports = %d, want 1", len(rs))
	}
	if rs[0].execType != lob.ExecTypeCanceled || rs[0].orderID != 9 ||
		rs[0].remaining != 4 || rs[0].side != lob.SideBuy || rs[0].price != 100*px {
		t.Errorf("unexpected cancel report: %+v", rs[0])
	}
	if e.Book(1).LiveOrderCount() != 0 {
		t.Error("book must be empty after cancel")
	}
}

func TestCancelUnknownOrderRejected(t *testing.T) {
	e := newTestEngine()
	out := make([]byte, 4096)

	n := cancel(t, e, cancelCmd(404, 1), 1000, out)
	rs := parseReports(t, out, n)

	if len(rs) != 1 || rs[0].execType != lob.ExecTypeRejected || rs[0].orderID != 404 {
		t.Errorf("unknown cancel must reject: %+v", rs)
	}
}

func TestUnknownInstrumentRejected(t *testing.T) {
	e := newTestEngine()
	out := make([]byte, 4096)

	n := match(t, e, newOrderCmd(1, lob.SideBuy, lob.OrderTypeLimit, 100*px, 5, 99), 1000, out)
	rs := parseReports(t, out, n)

	if len(rs) != 1 || rs[0].execType != lob.ExecTypeRejected || rs[0].remaining != 5 {
		t.Errorf("unknown instrument must reject: %+v", rs)
	}
}

func TestPartialMarketFillRejectsNothing(t *testing.T) {
	e := newTestEngine()
	out := make([]byte, 4096)

	match(t, e, newOrderCmd(1, lob.SideSell, lob.OrderTypeLimit, 100*px, 3, 1), 1000, out)
	n := match(t, e, newOrderCmd(2, lob.SideBuy, lob.OrderTypeMarket, 0, 5, 1), 2000, out)
	rs := parseReports(t, out, n)

	// Resting fill then aggressor PARTIAL_FILL; market residual is dropped,
	// not rested and not rejected.
	if len(rs) != 2 {
		t.Fatalf("reports = %d, want 2", len(rs))
	}
	if rs[1].execType != lob.ExecTypePartialFill || rs[1].filled != 3 || rs[1].remaining != 2 {
		t.Errorf("unexpected aggressor report: %+v", rs[1])
	}
	if e.Book(1).LiveOrderCount() != 0 {
		t.Error("market residual must not rest")
	}
}

func TestBetterPriceFillsFirst(t *testing.T) {
	e := newTestEngine()
	out := make([]byte, 4096)

	match(t, e, newOrderCmd(1, lob.SideSell, lob.OrderTypeLimit, 101*px, 5, 1), 1000, out)
	match(t, e, newOrderCmd(2, lob.SideSell, lob.OrderTypeLimit, 100*px, 5, 1), 2000, out)

	n := match(t, e, newOrderCmd(3, lob.SideBuy, lob.OrderTypeLimit, 101*px, 8, 1), 3000, out)
	rs := parseReports(t, out, n)

	if rs[0].orderID != 2 || rs[0].price != 100*px {
		t.Errorf("the cheaper ask must fill first: %+v", rs[0])
	}
	if rs[1].orderID != 1 || rs[1].filled != 3 || rs[1].remaining != 2 {
		t.Errorf("unexpected second fill: %+v", rs[1])
	}
}

func TestBookFullRejectsIncomingOrder(t *testing.T) {
	e := newTestEngine()
	out := make([]byte, 4096)

	for i := 0; i < lob.MaxLevels; i++ {
		match(t, e, newOrderCmd(uint64(i+1), lob.SideSell, lob.OrderTypeLimit,
			px*int64(1000+i), 1, 1), int64(i), out)
	}

	// A non-crossing price that would need a 1025th level is rejected.
	n := match(t, e, newOrderCmd(5000, lob.SideSell, lob.OrderTypeLimit,
		px*9000, 1, 1), 9999, out)
	rs := parseReports(t, out, n)

	if len(rs) != 1 || rs[0].execType != lob.ExecTypeRejected || rs[0].orderID != 5000 {
		t.Errorf("full book must reject: %+v", rs)
	}
	if err := e.Book(1).CheckInvariants(); err != nil {
		t.Errorf("invariants: %v", err)
	}
}

// Replaying an identical command stream on a fresh engine must produce a
// byte-identical output stream, execution ids included.
func TestDeterministicReplay(t *testing.T) {
	cmds := [][]byte{
		newOrderCmd(1, lob.SideBuy, lob.OrderTypeLimit, 100*px, 10, 1),
		newOrderCmd(2, lob.SideSell, lob.OrderTypeLimit, 99*px, 4, 1),
		newOrderCmd(3, lob.SideSell, lob.OrderTypeLimit, 100*px, 8, 1),
		newOrderCmd(4, lob.SideBuy, lob.OrderTypeMarket, 0, 5, 1),
		cancelCmd(3, 1),
		newOrderCmd(5, lob.SideBuy, lob.OrderTypeLimit, 101*px, 2, 1),
	}

	run := func() []byte {
		e := newTestEngine()
		out := make([]byte, 8192)
		var stream []byte
		for i, cmd := range cmds {
			ts := int64((i + 1) * 1000)
			var hdr sbe.MessageHeaderDecoder
			hdr.Wrap(cmd, 0)
			var n int
			if hdr.TemplateID() == sbe.CancelOrderTemplateID {
				n = cancel(t, e, cmd, ts, out)
			} else {
				n = match(t, e, cmd, ts, out)
			}
			stream = append(stream, out[:n]...)
		}
		return stream
	}

	first := run()
	second := run()
	if !bytes.Equal(first, second) {
		t.Error("identical input streams produced different output streams")
	}
	if len(first) == 0 {
		t.Fatal("scenario produced no reports")
	}
}

// The variant scanners must not change engine output.
func TestScannerVariantsAgreeOnEngineOutput(t *testing.T) {
	run := func(s scan.Scanner) []byte {
		e := New([]uint32{1}, s, nil)
		out := make([]byte, 8192)
		var stream []byte
		for i := 0; i < 64; i++ {
			side := byte(i % 2)
			price := px * int64(95+(i*7)%10)
			n := match(t, e, newOrderCmd(uint64(i+1), side, lob.OrderTypeLimit,
				price, uint32(1+i%5), 1), int64(i), out)
			stream = append(stream, out[:n]...)
		}
		return stream
	}

	if !bytes.Equal(run(scan.NewScalar()), run(scan.NewBlock())) {
		t.Error("scalar and block scanners diverged on engine output")
	}
}

func TestResetRestoresExecIDs(t *testing.T) {
	e := newTestEngine()
	out := make([]byte, 4096)

	match(t, e, newOrderCmd(1, lob.SideBuy, lob.OrderTypeLimit, 100*px, 1, 1), 1000, out)
	e.Reset()

	n := match(t, e, newOrderCmd(2, lob.SideBuy, lob.OrderTypeLimit, 100*px, 1, 1), 2000, out)
	rs := parseReports(t, out, n)
	if rs[0].execID != 1 {
		t.Errorf("execID after reset = %d, want 1", rs[0].execID)
	}
	if e.Book(1).LiveOrderCount() != 1 {
		t.Error("book must accept orders after reset")
	}
}

func TestInsufficientOutputBufferPanics(t *testing.T) {
	e := newTestEngine()
	small := make([]byte, sbe.ReportMessageLength-1)

	defer func() {
		if r := recover(); r != ErrOutputBufferFull {
			t.Errorf("panic = %v, want ErrOutputBufferFull", r)
		}
	}()
	match(t, e, newOrderCmd(1, lob.SideBuy, lob.OrderTypeLimit, 100*px, 1, 1), 1000, small)
}

// The hot path must not allocate: place-and-cross cycles run under
// AllocsPerRun with reused buffers and decoders.
func TestMatchOrderDoesNotAllocate(t *testing.T) {
	e := newTestEngine()
	out := make([]byte, 4096)

	restCmd := newOrderCmd(1, lob.SideSell, lob.OrderTypeLimit, 100*px, 1, 1)
	takeCmd := newOrderCmd(2, lob.SideBuy, lob.OrderTypeLimit, 100*px, 1, 1)
	var restDec, takeDec sbe.NewOrderSingleDecoder
	restDec.Wrap(restCmd, sbe.HeaderLength)
	takeDec.Wrap(takeCmd, sbe.HeaderLength)

	allocs := testing.AllocsPerRun(1000, func() {
		e.MatchOrder(&restDec, 1, out, 0)
		e.MatchOrder(&takeDec, 2, out, 0)
	})
	if allocs != 0 {
		t.Errorf("MatchOrder allocated %.1f times per cycle, want 0", allocs)
	}
}

func TestQuantityConservationAcrossFills(t *testing.T) {
	e := newTestEngine()
	out := make([]byte, 8192)

	match(t, e, newOrderCmd(1, lob.SideSell, lob.OrderTypeLimit, 100*px, 4, 1), 1000, out)
	match(t, e, newOrderCmd(2, lob.SideSell, lob.OrderTypeLimit, 100*px, 6, 1), 2000, out)
	n := match(t, e, newOrderCmd(3, lob.SideBuy, lob.OrderTypeLimit, 100*px, 10, 1), 3000, out)
	rs := parseReports(t, out, n)

	var restingFilled, aggressorFilled uint32
	for _, r := range rs {
		if r.orderID == 3 {
			aggressorFilled += r.filled
		} else {
			restingFilled += r.filled
		}
	}
	if restingFilled != aggressorFilled || aggressorFilled != 10 {
		t.Errorf("filled quantities diverge: resting %d, aggressor %d", restingFilled, aggressorFilled)
	}
}
