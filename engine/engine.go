// Package engine implements the deterministic matching core. One engine owns
// the order books of its instrument shard and consumes decoded commands at
// cluster-assigned timestamps, writing execution reports into a caller
// supplied buffer.
//
// Determinism contract: the engine never reads a clock, never allocates after
// construction, and its only time input is the clusterTimestamp argument.
// Replaying the same command stream on a fresh engine yields byte-identical
// output, execution ids included.
package engine

import (
	"errors"
	"io"
	"math"

	"chronos/domain/lob"
	"chronos/domain/scan"
	"chronos/sbe"
	"chronos/snapshot"
)

// ErrOutputBufferFull is the panic value raised when the caller-provided
// output buffer cannot hold the next execution report. A single MatchOrder
// call writes at most one report per swept resting order plus two for the
// aggressor, sbe.ReportMessageLength bytes each; callers bounding sweeps by
// level count size for (lob.MaxLevels+2)*sbe.ReportMessageLength.
var ErrOutputBufferFull = errors.New("engine: output buffer too small for execution report")

// Engine is single-threaded by design: one instance per pinned core, fed by
// a totally-ordered command log. Books are held in a dense slice indexed by
// instrument id: ids are small positive integers, so no hash map is needed
// on the hot path.
type Engine struct {
	books   []*lob.OrderBook
	scanner scan.Scanner
	metrics Metrics

	header sbe.MessageHeaderEncoder
	report sbe.ExecutionReportEncoder

	nextExecID uint64
}

// New builds an engine with one pre-allocated book per instrument id.
// A nil metrics sink defaults to NopMetrics.
func New(instruments []uint32, scanner scan.Scanner, metrics Metrics) *Engine {
	if metrics == nil {
		metrics = NopMetrics{}
	}
	maxID := uint32(0)
	for _, id := range instruments {
		if id > maxID {
			maxID = id
		}
	}
	books := make([]*lob.OrderBook, maxID+1)
	for _, id := range instruments {
		books[id] = lob.NewOrderBook(id, scanner)
	}
	return &Engine{
		books:      books,
		scanner:    scanner,
		metrics:    metrics,
		nextExecID: 1,
	}
}

// Book returns the order book for an instrument, nil when unknown.
func (e *Engine) Book(instrumentID uint32) *lob.OrderBook {
	if int(instrumentID) >= len(e.books) {
		return nil
	}
	return e.books[instrumentID]
}

// EachBook visits every book in ascending instrument-id order.
func (e *Engine) EachBook(visit func(*lob.OrderBook)) {
	for _, b := range e.books {
		if b != nil {
			visit(b)
		}
	}
}

// MatchOrder processes one decoded NewOrderSingle: sweeps matchable opposite
// levels in price-time priority, rests any LIMIT residual, and writes the
// resulting execution reports at out[offset:]. Returns bytes written.
//
// Report ordering: one report per resting order as it fills, then exactly one
// report for the aggressor (FILL, PARTIAL_FILL, NEW or REJECTED), plus a
// secondary REJECTED when a residual could not be rested.
func (e *Engine) MatchOrder(dec *sbe.NewOrderSingleDecoder, clusterTimestamp int64, out []byte, offset int) int {
	orderID := dec.OrderID()
	price := dec.Price()
	clientID := dec.ClientID()
	instrumentID := dec.InstrumentID()
	originalQty := int32(dec.Quantity())
	side := dec.Side()
	orderType := dec.OrderType()

	e.metrics.OnOrderProcessed()
	cur := offset

	book := e.Book(instrumentID)
	if book == nil {
		cur += e.writeReport(out, cur, orderID, price, clientID, clusterTimestamp,
			instrumentID, 0, originalQty, side, lob.ExecTypeRejected)
		return cur - offset
	}

	quantity := originalQty

	// ── Aggressive phase: a BUY sweeps asks, a SELL sweeps bids ──
	isBuySide := side == lob.SideBuy
	var oppositePrices []int64
	var oppositeCount int
	var oppositeSide byte
	if isBuySide {
		oppositePrices = book.AskPrices()
		oppositeCount = book.AskLevelCount()
		oppositeSide = lob.SideSell
	} else {
		oppositePrices = book.BidPrices()
		oppositeCount = book.BidLevelCount()
		oppositeSide = lob.SideBuy
	}

	if oppositeCount > 0 && quantity > 0 {
		topPrice := oppositePrices[0]
		canTrade := orderType == lob.OrderTypeMarket ||
			(isBuySide && topPrice <= price) || (!isBuySide && topPrice >= price)

		if canTrade {
			effectiveLimit := price
			if orderType == lob.OrderTypeMarket {
				if isBuySide {
					effectiveLimit = math.MaxInt64
				} else {
					effectiveLimit = math.MinInt64
				}
			}

			matchableLevels := e.scanner.CountMatchableLevels(
				oppositePrices, oppositeCount, effectiveLimit, isBuySide)

			for lvl := 0; lvl < matchableLevels && quantity > 0; lvl++ {
				// Always read level 0: a fully-consumed level collapses,
				// promoting the next best level to the top.
				slot := book.HeadOrderSlot(oppositeSide, 0)

				for slot != lob.NullSlot && quantity > 0 {
					restingRemaining := book.SlotRemaining(slot)
					fillQty := min(quantity, restingRemaining)
					fillPrice := book.SlotPrice(slot)
					nextSlot := book.SlotNext(slot)

					newRemaining := book.ReduceQuantity(slot, fillQty)
					restingExecType := lob.ExecTypePartialFill
					if newRemaining == 0 {
						restingExecType = lob.ExecTypeFill
					}

					cur += e.writeReport(out, cur,
						book.SlotOrderID(slot), fillPrice,
						book.SlotClientID(slot), clusterTimestamp,
						instrumentID, fillQty, newRemaining,
						oppositeSide, restingExecType)

					if newRemaining == 0 {
						book.RemoveOrder(slot)
					}

					quantity -= fillQty
					slot = nextSlot
				}
			}
		}
	}

	// ── Terminal report for the incoming order ──
	switch {
	case quantity == 0:
		cur += e.writeReport(out, cur, orderID, price, clientID, clusterTimestamp,
			instrumentID, originalQty, 0, side, lob.ExecTypeFill)

	case quantity < originalQty:
		cur += e.writeReport(out, cur, orderID, price, clientID, clusterTimestamp,
			instrumentID, originalQty-quantity, quantity, side, lob.ExecTypePartialFill)

		if orderType == lob.OrderTypeLimit {
			slot := book.AddOrder(orderID, price, clientID, clusterTimestamp,
				quantity, instrumentID, side, orderType)
			if slot == lob.NullSlot {
				// Residual could not rest (pool exhausted or side full).
				cur += e.writeReport(out, cur, orderID, price, clientID, clusterTimestamp,
					instrumentID, 0, quantity, side, lob.ExecTypeRejected)
			}
		}

	default: // no fill
		if orderType == lob.OrderTypeLimit {
			slot := book.AddOrder(orderID, price, clientID, clusterTimestamp,
				quantity, instrumentID, side, orderType)
			if slot != lob.NullSlot {
				cur += e.writeReport(out, cur, orderID, price, clientID, clusterTimestamp,
					instrumentID, 0, quantity, side, lob.ExecTypeNew)
			} else {
				cur += e.writeReport(out, cur, orderID, price, clientID, clusterTimestamp,
					instrumentID, 0, quantity, side, lob.ExecTypeRejected)
			}
		} else {
			// Market order against an empty side.
			cur += e.writeReport(out, cur, orderID, price, clientID, clusterTimestamp,
				instrumentID, 0, quantity, side, lob.ExecTypeRejected)
		}
	}

	return cur - offset
}

// CancelOrder removes a resting order by id and writes a CANCELED report
// carrying the quantity that was still open. Unknown instrument or order id
// yields REJECTED.
func (e *Engine) CancelOrder(dec *sbe.CancelOrderDecoder, clusterTimestamp int64, out []byte, offset int) int {
	orderID := dec.OrderID()
	clientID := dec.ClientID()
	instrumentID := dec.InstrumentID()

	e.metrics.OnOrderProcessed()
	cur := offset

	book := e.Book(instrumentID)
	if book == nil {
		cur += e.writeReport(out, cur, orderID, 0, clientID, clusterTimestamp,
			instrumentID, 0, 0, lob.SideBuy, lob.ExecTypeRejected)
		return cur - offset
	}

	slot := book.LookupOrder(orderID)
	if slot == lob.NullSlot {
		cur += e.writeReport(out, cur, orderID, 0, clientID, clusterTimestamp,
			instrumentID, 0, 0, lob.SideBuy, lob.ExecTypeRejected)
		return cur - offset
	}

	price := book.SlotPrice(slot)
	side := book.SlotSide(slot)
	owner := book.SlotClientID(slot)
	remaining := book.RemoveOrder(slot)

	cur += e.writeReport(out, cur, orderID, price, owner, clusterTimestamp,
		instrumentID, 0, remaining, side, lob.ExecTypeCanceled)
	return cur - offset
}

// writeReport encodes one header+ExecutionReport at out[offset:] and returns
// the bytes written. Panics with ErrOutputBufferFull on a caller sizing bug:
// a deterministic state machine must not silently truncate its output.
func (e *Engine) writeReport(out []byte, offset int,
	orderID uint64, price int64, clientID uint64, matchTimestamp int64,
	instrumentID uint32, filledQty, remainingQty int32, side, execType byte) int {

	if len(out)-offset < sbe.ReportMessageLength {
		panic(ErrOutputBufferFull)
	}

	e.header.Wrap(out, offset).
		BlockLength(sbe.ExecutionReportBlockLength).
		TemplateID(sbe.ExecutionReportTemplateID).
		SchemaID(sbe.SchemaID).
		Version(sbe.SchemaVersion)

	e.report.Wrap(out, offset+sbe.HeaderLength).
		OrderID(orderID).
		ExecID(e.nextExecID).
		Price(price).
		ClientID(clientID).
		MatchTimestampNs(matchTimestamp).
		InstrumentID(instrumentID).
		FilledQuantity(uint32(filledQty)).
		RemainingQuantity(uint32(remainingQty)).
		Side(side).
		ExecType(execType)
	e.nextExecID++

	switch execType {
	case lob.ExecTypeFill, lob.ExecTypePartialFill:
		e.metrics.OnMatchFound()
	case lob.ExecTypeRejected:
		e.metrics.OnOrderRejected()
	}

	return sbe.ReportMessageLength
}

// Reset restores every book and the execution-id counter to their
// post-construction state. Used before a snapshot restore.
func (e *Engine) Reset() {
	for _, b := range e.books {
		if b != nil {
			b.Reset()
		}
	}
	e.nextExecID = 1
}

// WriteSnapshot serializes the full engine state (message count, the
// execution-id watermark and every book's live orders in price-time order)
// to w.
func (e *Engine) WriteSnapshot(w io.Writer, messageCount uint64) error {
	var books []*lob.OrderBook
	e.EachBook(func(b *lob.OrderBook) { books = append(books, b) })
	return snapshot.Write(w, messageCount, e.nextExecID, books)
}

// RestoreSnapshot resets the engine and replays a snapshot produced by
// WriteSnapshot, returning the recorded message count. Restoration rebuilds
// identical state: orders re-enter each book through AddOrder in the exact
// price-time order they were serialized in, and execution-id assignment
// resumes at the snapshotted watermark.
func (e *Engine) RestoreSnapshot(r io.Reader) (uint64, error) {
	e.Reset()
	messageCount, nextExecID, err := snapshot.Restore(r, e.Book)
	if err != nil {
		return 0, err
	}
	if nextExecID > 0 {
		e.nextExecID = nextExecID
	}
	return messageCount, nil
}
