// Package service is the ONLY write entry point into the system.
//
// All coordination between the domain (engine, books), infra (wal, outbox,
// kafka) and snapshotting happens here. The core is strictly single-threaded;
// the service serializes concurrent callers in front of it and keeps every
// wall-clock read on this side of the boundary.
package service

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"chronos/domain/lob"
	"chronos/engine"
	"chronos/infra/kafka"
	"chronos/infra/outbox"
	"chronos/infra/sequence"
	"chronos/infra/wal"
	"chronos/sbe"
)

// outputBufferSize holds the worst case of one level-bounded sweep plus the
// aggressor's terminal and secondary reports.
const outputBufferSize = (lob.MaxLevels + 2) * sbe.ReportMessageLength

// ErrShortCommand rejects frames smaller than a message header.
var ErrShortCommand = errors.New("service: command shorter than message header")

// EngineService owns the admission path: sequence, persist, apply, fan out.
type EngineService struct {
	mu sync.Mutex

	eng    *engine.Engine
	seqGen *sequence.Sequencer
	log    *wal.WAL
	box    *outbox.Outbox  // optional
	depth  *kafka.Producer // optional
	sink   engine.Metrics

	headerDec sbe.MessageHeaderDecoder
	orderDec  sbe.NewOrderSingleDecoder
	cancelDec sbe.CancelOrderDecoder
	reportDec sbe.ExecutionReportDecoder

	out          []byte
	messageCount uint64
	lastExecID   uint64
}

// New wires all dependencies. outbox and depth may be nil when egress is not
// configured (tests, replay tooling).
func New(eng *engine.Engine, seqGen *sequence.Sequencer, commandLog *wal.WAL,
	box *outbox.Outbox, depth *kafka.Producer, sink engine.Metrics) *EngineService {
	if sink == nil {
		sink = engine.NopMetrics{}
	}
	return &EngineService{
		eng:    eng,
		seqGen: seqGen,
		log:    commandLog,
		box:    box,
		depth:  depth,
		sink:   sink,
		out:    make([]byte, outputBufferSize),
	}
}

//
// ──────────────────────────────────────────────────────────
// Commands
// ──────────────────────────────────────────────────────────
//

// Submit admits one wire-format command (header + body): assigns its
// sequence number and timestamp, appends it to the command log, applies it
// to the engine and fans the resulting reports out. Returns the assigned
// sequence and a copy of the report stream.
func (s *EngineService) Submit(cmd []byte) (uint64, []byte, error) {
	if len(cmd) < sbe.HeaderLength {
		return 0, nil, ErrShortCommand
	}

	start := time.Now()
	timestampNs := start.UnixNano()

	s.mu.Lock()
	defer s.mu.Unlock()

	seq := s.seqGen.Next()
	if err := s.log.Append(&wal.Record{Seq: seq, TimestampNs: timestampNs, Payload: cmd}); err != nil {
		return 0, nil, err
	}

	n, instrumentID := s.apply(cmd, timestampNs)
	reports := make([]byte, n)
	copy(reports, s.out[:n])

	s.fanOut(reports, instrumentID)
	s.sink.OnLatency(time.Since(start).Nanoseconds())

	return seq, reports, nil
}

// apply dispatches a decoded command into the engine. Must hold mu.
func (s *EngineService) apply(cmd []byte, timestampNs int64) (int, uint32) {
	s.messageCount++

	s.headerDec.Wrap(cmd, 0)
	templateID := s.headerDec.TemplateID()
	body := sbe.HeaderLength

	switch templateID {
	case sbe.NewOrderSingleTemplateID:
		s.orderDec.Wrap(cmd, body)
		n := s.eng.MatchOrder(&s.orderDec, timestampNs, s.out, 0)
		return n, s.orderDec.InstrumentID()

	case sbe.CancelOrderTemplateID:
		s.cancelDec.Wrap(cmd, body)
		n := s.eng.CancelOrder(&s.cancelDec, timestampNs, s.out, 0)
		return n, s.cancelDec.InstrumentID()

	default:
		log.Printf("[service] unknown template id %d, ignoring", templateID)
		return 0, 0
	}
}

// fanOut stores each report in the outbox and publishes a depth update.
// Must hold mu.
func (s *EngineService) fanOut(reports []byte, instrumentID uint32) {
	for off := 0; off+sbe.ReportMessageLength <= len(reports); off += sbe.ReportMessageLength {
		s.reportDec.Wrap(reports, off+sbe.HeaderLength)
		execID := s.reportDec.ExecID()
		if execID > s.lastExecID {
			s.lastExecID = execID
		}
		if s.box != nil {
			if err := s.box.PutNew(execID, reports[off:off+sbe.ReportMessageLength]); err != nil {
				log.Printf("[service] outbox write failed for exec %d: %v", execID, err)
			}
		}
	}
	if s.depth != nil && instrumentID != 0 {
		s.publishDepth(instrumentID)
	}
}

//
// ──────────────────────────────────────────────────────────
// Queries
// ──────────────────────────────────────────────────────────
//

// Level is one priced depth entry.
type Level struct {
	Price      int64 `json:"price"`
	Quantity   int64 `json:"quantity"`
	OrderCount int32 `json:"order_count"`
}

// DepthSnapshot is the externally visible top of one book.
type DepthSnapshot struct {
	InstrumentID uint32  `json:"instrument_id"`
	Bids         []Level `json:"bids"`
	Asks         []Level `json:"asks"`
	TimestampNs  int64   `json:"timestamp_ns"`
}

// Depth returns up to maxLevels of each side for an instrument, or false
// when the instrument is unknown.
func (s *EngineService) Depth(instrumentID uint32, maxLevels int) (DepthSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.depthLocked(instrumentID, maxLevels)
}

func (s *EngineService) depthLocked(instrumentID uint32, maxLevels int) (DepthSnapshot, bool) {
	book := s.eng.Book(instrumentID)
	if book == nil {
		return DepthSnapshot{}, false
	}

	snap := DepthSnapshot{
		InstrumentID: instrumentID,
		TimestampNs:  time.Now().UnixNano(),
	}

	bidCount := min(book.BidLevelCount(), maxLevels)
	for i := 0; i < bidCount; i++ {
		snap.Bids = append(snap.Bids, Level{
			Price:      book.BidPrices()[i],
			Quantity:   book.BidAggQty()[i],
			OrderCount: book.BidOrderCounts()[i],
		})
	}
	askCount := min(book.AskLevelCount(), maxLevels)
	for i := 0; i < askCount; i++ {
		snap.Asks = append(snap.Asks, Level{
			Price:      book.AskPrices()[i],
			Quantity:   book.AskAggQty()[i],
			OrderCount: book.AskOrderCounts()[i],
		})
	}
	return snap, true
}

// MessageCount returns the number of commands applied over the stream's
// lifetime, including commands covered by recovery.
func (s *EngineService) MessageCount() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.messageCount
}

// SetMessageCount seeds the applied-command counter after recovery so
// snapshots keep counting across restarts.
func (s *EngineService) SetMessageCount(n uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messageCount = n
}

const depthPublishLevels = 10

// publishDepth pushes a best-effort depth update to Kafka. Must hold mu.
func (s *EngineService) publishDepth(instrumentID uint32) {
	snap, ok := s.depthLocked(instrumentID, depthPublishLevels)
	if !ok {
		return
	}
	payload, err := json.Marshal(snap)
	if err != nil {
		return
	}
	var key [4]byte
	binary.BigEndian.PutUint32(key[:], instrumentID)
	if err := s.depth.Send(context.Background(), key[:], payload); err != nil {
		log.Printf("[service] depth publish failed for instrument %d: %v", instrumentID, err)
	}
}
