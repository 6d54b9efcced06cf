package sbe

import "encoding/binary"

// NewOrderSingle wire layout (42 bytes, template 1):
//
//	orderId      : uint64 @ 0
//	price        : int64  @ 8   (fixed-point, scale 1e8)
//	clientId     : uint64 @ 16
//	timestampNs  : int64  @ 24  (cluster-assigned nanosecond timestamp)
//	instrumentId : uint32 @ 32
//	quantity     : uint32 @ 36
//	side         : uint8  @ 40  (0=BUY, 1=SELL)
//	orderType    : uint8  @ 41  (0=LIMIT, 1=MARKET)
const (
	NewOrderSingleTemplateID  = 1
	NewOrderSingleBlockLength = 42
)

const (
	nosOrderID      = 0
	nosPrice        = 8
	nosClientID     = 16
	nosTimestampNs  = 24
	nosInstrumentID = 32
	nosQuantity     = 36
	nosSide         = 40
	nosOrderType    = 41
)

// NewOrderSingleEncoder is a flyweight encoder for NewOrderSingle bodies.
type NewOrderSingleEncoder struct {
	buf []byte
	off int
}

func (e *NewOrderSingleEncoder) Wrap(buf []byte, off int) *NewOrderSingleEncoder {
	e.buf = buf
	e.off = off
	return e
}

func (e *NewOrderSingleEncoder) EncodedLength() int { return NewOrderSingleBlockLength }

func (e *NewOrderSingleEncoder) OrderID(v uint64) *NewOrderSingleEncoder {
	binary.LittleEndian.PutUint64(e.buf[e.off+nosOrderID:], v)
	return e
}

func (e *NewOrderSingleEncoder) Price(v int64) *NewOrderSingleEncoder {
	binary.LittleEndian.PutUint64(e.buf[e.off+nosPrice:], uint64(v))
	return e
}

func (e *NewOrderSingleEncoder) ClientID(v uint64) *NewOrderSingleEncoder {
	binary.LittleEndian.PutUint64(e.buf[e.off+nosClientID:], v)
	return e
}

func (e *NewOrderSingleEncoder) TimestampNs(v int64) *NewOrderSingleEncoder {
	binary.LittleEndian.PutUint64(e.buf[e.off+nosTimestampNs:], uint64(v))
	return e
}

func (e *NewOrderSingleEncoder) InstrumentID(v uint32) *NewOrderSingleEncoder {
	binary.LittleEndian.PutUint32(e.buf[e.off+nosInstrumentID:], v)
	return e
}

func (e *NewOrderSingleEncoder) Quantity(v uint32) *NewOrderSingleEncoder {
	binary.LittleEndian.PutUint32(e.buf[e.off+nosQuantity:], v)
	return e
}

func (e *NewOrderSingleEncoder) Side(v byte) *NewOrderSingleEncoder {
	e.buf[e.off+nosSide] = v
	return e
}

func (e *NewOrderSingleEncoder) OrderType(v byte) *NewOrderSingleEncoder {
	e.buf[e.off+nosOrderType] = v
	return e
}

// NewOrderSingleDecoder is a flyweight decoder for NewOrderSingle bodies.
type NewOrderSingleDecoder struct {
	buf []byte
	off int
}

func (d *NewOrderSingleDecoder) Wrap(buf []byte, off int) *NewOrderSingleDecoder {
	d.buf = buf
	d.off = off
	return d
}

func (d *NewOrderSingleDecoder) EncodedLength() int { return NewOrderSingleBlockLength }

func (d *NewOrderSingleDecoder) OrderID() uint64 {
	return binary.LittleEndian.Uint64(d.buf[d.off+nosOrderID:])
}

func (d *NewOrderSingleDecoder) Price() int64 {
	return int64(binary.LittleEndian.Uint64(d.buf[d.off+nosPrice:]))
}

func (d *NewOrderSingleDecoder) ClientID() uint64 {
	return binary.LittleEndian.Uint64(d.buf[d.off+nosClientID:])
}

func (d *NewOrderSingleDecoder) TimestampNs() int64 {
	return int64(binary.LittleEndian.Uint64(d.buf[d.off+nosTimestampNs:]))
}

func (d *NewOrderSingleDecoder) InstrumentID() uint32 {
	return binary.LittleEndian.Uint32(d.buf[d.off+nosInstrumentID:])
}

func (d *NewOrderSingleDecoder) Quantity() uint32 {
	return binary.LittleEndian.Uint32(d.buf[d.off+nosQuantity:])
}

func (d *NewOrderSingleDecoder) Side() byte { return d.buf[d.off+nosSide] }

func (d *NewOrderSingleDecoder) OrderType() byte { return d.buf[d.off+nosOrderType] }
