package sbe

import "encoding/binary"

// ExecutionReport wire layout (54 bytes, template 3):
//
//	orderId           : uint64 @ 0
//	execId            : uint64 @ 8
//	price             : int64  @ 16
//	clientId          : uint64 @ 24
//	matchTimestampNs  : int64  @ 32
//	instrumentId      : uint32 @ 40
//	filledQuantity    : uint32 @ 44
//	remainingQuantity : uint32 @ 48
//	side              : uint8  @ 52
//	execType          : uint8  @ 53
const (
	ExecutionReportTemplateID  = 3
	ExecutionReportBlockLength = 54
)

// ReportMessageLength is the full on-wire size of one execution report:
// message header plus body.
const ReportMessageLength = HeaderLength + ExecutionReportBlockLength

const (
	execOrderID           = 0
	execExecID            = 8
	execPrice             = 16
	execClientID          = 24
	execMatchTimestampNs  = 32
	execInstrumentID      = 40
	execFilledQuantity    = 44
	execRemainingQuantity = 48
	execSide              = 52
	execExecType          = 53
)

// ExecutionReportEncoder is a flyweight encoder for ExecutionReport bodies.
type ExecutionReportEncoder struct {
	buf []byte
	off int
}

func (e *ExecutionReportEncoder) Wrap(buf []byte, off int) *ExecutionReportEncoder {
	e.buf = buf
	e.off = off
	return e
}

func (e *ExecutionReportEncoder) EncodedLength() int { return ExecutionReportBlockLength }

func (e *ExecutionReportEncoder) OrderID(v uint64) *ExecutionReportEncoder {
	binary.LittleEndian.PutUint64(e.buf[e.off+execOrderID:], v)
	return e
}

func (e *ExecutionReportEncoder) ExecID(v uint64) *ExecutionReportEncoder {
	binary.LittleEndian.PutUint64(e.buf[e.off+execExecID:], v)
	return e
}

func (e *ExecutionReportEncoder) Price(v int64) *ExecutionReportEncoder {
	binary.LittleEndian.PutUint64(e.buf[e.off+execPrice:], uint64(v))
	return e
}

func (e *ExecutionReportEncoder) ClientID(v uint64) *ExecutionReportEncoder {
	binary.LittleEndian.PutUint64(e.buf[e.off+execClientID:], v)
	return e
}

func (e *ExecutionReportEncoder) MatchTimestampNs(v int64) *ExecutionReportEncoder {
	binary.LittleEndian.PutUint64(e.buf[e.off+execMatchTimestampNs:], uint64(v))
	return e
}

func (e *ExecutionReportEncoder) InstrumentID(v uint32) *ExecutionReportEncoder {
	binary.LittleEndian.PutUint32(e.buf[e.off+execInstrumentID:], v)
	return e
}

func (e *ExecutionReportEncoder) FilledQuantity(v uint32) *ExecutionReportEncoder {
	binary.LittleEndian.PutUint32(e.buf[e.off+execFilledQuantity:], v)
	return e
}

func (e *ExecutionReportEncoder) RemainingQuantity(v uint32) *ExecutionReportEncoder {
	binary.LittleEndian.PutUint32(e.buf[e.off+execRemainingQuantity:], v)
	return e
}

func (e *ExecutionReportEncoder) Side(v byte) *ExecutionReportEncoder {
	e.buf[e.off+execSide] = v
	return e
}

func (e *ExecutionReportEncoder) ExecType(v byte) *ExecutionReportEncoder {
	e.buf[e.off+execExecType] = v
	return e
}

// ExecutionReportDecoder is a flyweight decoder for ExecutionReport bodies.
type ExecutionReportDecoder struct {
	buf []byte
	off int
}

func (d *ExecutionReportDecoder) Wrap(buf []byte, off int) *ExecutionReportDecoder {
	d.buf = buf
	d.off = off
	return d
}

func (d *ExecutionReportDecoder) EncodedLength() int { return ExecutionReportBlockLength }

func (d *ExecutionReportDecoder) OrderID() uint64 {
	return binary.LittleEndian.Uint64(d.buf[d.off+execOrderID:])
}

func (d *ExecutionReportDecoder) ExecID() uint64 {
	return binary.LittleEndian.Uint64(d.buf[d.off+execExecID:])
}

func (d *ExecutionReportDecoder) Price() int64 {
	return int64(binary.LittleEndian.Uint64(d.buf[d.off+execPrice:]))
}

func (d *ExecutionReportDecoder) ClientID() uint64 {
	return binary.LittleEndian.Uint64(d.buf[d.off+execClientID:])
}

func (d *ExecutionReportDecoder) MatchTimestampNs() int64 {
	return int64(binary.LittleEndian.Uint64(d.buf[d.off+execMatchTimestampNs:]))
}

func (d *ExecutionReportDecoder) InstrumentID() uint32 {
	return binary.LittleEndian.Uint32(d.buf[d.off+execInstrumentID:])
}

func (d *ExecutionReportDecoder) FilledQuantity() uint32 {
	return binary.LittleEndian.Uint32(d.buf[d.off+execFilledQuantity:])
}

func (d *ExecutionReportDecoder) RemainingQuantity() uint32 {
	return binary.LittleEndian.Uint32(d.buf[d.off+execRemainingQuantity:])
}

func (d *ExecutionReportDecoder) Side() byte { return d.buf[d.off+execSide] }

func (d *ExecutionReportDecoder) ExecType() byte { return d.buf[d.off+execExecType] }
