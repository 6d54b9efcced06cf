package sbe

import "encoding/binary"

// QuoteRequest (40 bytes, template 4) and Quote (72 bytes, template 5) are
// part of the schema for gateway-side quoting flows. The matching core never
// consumes them; the encoders exist so every producer in the system shares
// one codec package.

const (
	QuoteRequestTemplateID  = 4
	QuoteRequestBlockLength = 40

	QuoteTemplateID  = 5
	QuoteBlockLength = 72
)

const (
	qrQuoteReqID   = 0
	qrClientID     = 8
	qrInstrumentID = 16
	qrQuantity     = 20
	qrSide         = 24
	qrTimestampNs  = 32
)

// QuoteRequestEncoder is a flyweight encoder for QuoteRequest bodies.
type QuoteRequestEncoder struct {
	buf []byte
	off int
}

func (e *QuoteRequestEncoder) Wrap(buf []byte, off int) *QuoteRequestEncoder {
	e.buf = buf
	e.off = off
	return e
}

func (e *QuoteRequestEncoder) EncodedLength() int { return QuoteRequestBlockLength }

func (e *QuoteRequestEncoder) QuoteReqID(v uint64) *QuoteRequestEncoder {
	binary.LittleEndian.PutUint64(e.buf[e.off+qrQuoteReqID:], v)
	return e
}

func (e *QuoteRequestEncoder) ClientID(v uint64) *QuoteRequestEncoder {
	binary.LittleEndian.PutUint64(e.buf[e.off+qrClientID:], v)
	return e
}

func (e *QuoteRequestEncoder) InstrumentID(v uint32) *QuoteRequestEncoder {
	binary.LittleEndian.PutUint32(e.buf[e.off+qrInstrumentID:], v)
	return e
}

func (e *QuoteRequestEncoder) Quantity(v uint32) *QuoteRequestEncoder {
	binary.LittleEndian.PutUint32(e.buf[e.off+qrQuantity:], v)
	return e
}

func (e *QuoteRequestEncoder) Side(v byte) *QuoteRequestEncoder {
	e.buf[e.off+qrSide] = v
	return e
}

func (e *QuoteRequestEncoder) TimestampNs(v int64) *QuoteRequestEncoder {
	binary.LittleEndian.PutUint64(e.buf[e.off+qrTimestampNs:], uint64(v))
	return e
}

const (
	quoteQuoteID      = 0
	quoteQuoteReqID   = 8
	quoteClientID     = 16
	quoteInstrumentID = 24
	quoteBidPrice     = 32
	quoteBidSize      = 40
	quoteAskPrice     = 48
	quoteAskSize      = 56
	quoteTimestampNs  = 64
)

// QuoteEncoder is a flyweight encoder for Quote bodies.
type QuoteEncoder struct {
	buf []byte
	off int
}

func (e *QuoteEncoder) Wrap(buf []byte, off int) *QuoteEncoder {
	e.buf = buf
	e.off = off
	return e
}

func (e *QuoteEncoder) EncodedLength() int { return QuoteBlockLength }

func (e *QuoteEncoder) QuoteID(v uint64) *QuoteEncoder {
	binary.LittleEndian.PutUint64(e.buf[e.off+quoteQuoteID:], v)
	return e
}

func (e *QuoteEncoder) QuoteReqID(v uint64) *QuoteEncoder {
	binary.LittleEndian.PutUint64(e.buf[e.off+quoteQuoteReqID:], v)
	return e
}

func (e *QuoteEncoder) ClientID(v uint64) *QuoteEncoder {
	binary.LittleEndian.PutUint64(e.buf[e.off+quoteClientID:], v)
	return e
}

func (e *QuoteEncoder) InstrumentID(v uint32) *QuoteEncoder {
	binary.LittleEndian.PutUint32(e.buf[e.off+quoteInstrumentID:], v)
	return e
}

func (e *QuoteEncoder) BidPrice(v int64) *QuoteEncoder {
	binary.LittleEndian.PutUint64(e.buf[e.off+quoteBidPrice:], uint64(v))
	return e
}

func (e *QuoteEncoder) BidSize(v uint32) *QuoteEncoder {
	binary.LittleEndian.PutUint32(e.buf[e.off+quoteBidSize:], v)
	return e
}

func (e *QuoteEncoder) AskPrice(v int64) *QuoteEncoder {
	binary.LittleEndian.PutUint64(e.buf[e.off+quoteAskPrice:], uint64(v))
	return e
}

func (e *QuoteEncoder) AskSize(v uint32) *QuoteEncoder {
	binary.LittleEndian.PutUint32(e.buf[e.off+quoteAskSize:], v)
	return e
}

func (e *QuoteEncoder) TimestampNs(v int64) *QuoteEncoder {
	binary.LittleEndian.PutUint64(e.buf[e.off+quoteTimestampNs:], uint64(v))
	return e
}
