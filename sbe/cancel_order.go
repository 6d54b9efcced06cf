package sbe

import "encoding/binary"

// CancelOrder wire layout (20 bytes, template 2):
//
//	orderId      : uint64 @ 0
//	clientId     : uint64 @ 8
//	instrumentId : uint32 @ 16
const (
	CancelOrderTemplateID  = 2
	CancelOrderBlockLength = 20
)

const (
	cancelOrderID      = 0
	cancelClientID     = 8
	cancelInstrumentID = 16
)

// CancelOrderEncoder is a flyweight encoder for CancelOrder bodies.
type CancelOrderEncoder struct {
	buf []byte
	off int
}

func (e *CancelOrderEncoder) Wrap(buf []byte, off int) *CancelOrderEncoder {
	e.buf = buf
	e.off = off
	return e
}

func (e *CancelOrderEncoder) EncodedLength() int { return CancelOrderBlockLength }

func (e *CancelOrderEncoder) OrderID(v uint64) *CancelOrderEncoder {
	binary.LittleEndian.PutUint64(e.buf[e.off+cancelOrderID:], v)
	return e
}

func (e *CancelOrderEncoder) ClientID(v uint64) *CancelOrderEncoder {
	binary.LittleEndian.PutUint64(e.buf[e.off+cancelClientID:], v)
	return e
}

func (e *CancelOrderEncoder) InstrumentID(v uint32) *CancelOrderEncoder {
	binary.LittleEndian.PutUint32(e.buf[e.off+cancelInstrumentID:], v)
	return e
}

// CancelOrderDecoder is a flyweight decoder for CancelOrder bodies.
type CancelOrderDecoder struct {
	buf []byte
	off int
}

func (d *CancelOrderDecoder) Wrap(buf []byte, off int) *CancelOrderDecoder {
	d.buf = buf
	d.off = off
	return d
}

func (d *CancelOrderDecoder) EncodedLength() int { return CancelOrderBlockLength }

func (d *CancelOrderDecoder) OrderID() uint64 {
	return binary.LittleEndian.Uint64(d.buf[d.off+cancelOrderID:])
}

func (d *CancelOrderDecoder) ClientID() uint64 {
	return binary.LittleEndian.Uint64(d.buf[d.off+cancelClientID:])
}

func (d *CancelOrderDecoder) InstrumentID() uint32 {
	return binary.LittleEndian.Uint32(d.buf[d.off+cancelInstrumentID:])
}
