// Package sbe implements the fixed-layout binary codecs for the CHRONOS
// wire protocol. Every codec is a flyweight: it holds a buffer reference and
// an offset, reads and writes fields at fixed positions, and is reusable
// across calls. All multi-byte fields are little-endian.
package sbe

import "encoding/binary"

// SchemaID identifies the CHRONOS message schema.
const SchemaID = 1

// SchemaVersion is the current schema version.
const SchemaVersion = 1

// HeaderLength is the encoded size of the message header in bytes.
const HeaderLength = 8

const (
	headerBlockLength = 0
	headerTemplateID  = 2
	headerSchemaID    = 4
	headerVersion     = 6
)

// MessageHeaderEncoder writes the 8-byte header prepended to every message.
//
// Wire format:
//
//	blockLength : uint16 @ 0  (length of the message body)
//	templateId  : uint16 @ 2  (message type identifier)
//	schemaId    : uint16 @ 4
//	version     : uint16 @ 6
type MessageHeaderEncoder struct {
	buf []byte
	off int
}

// Wrap points the encoder at buf starting at off.
func (e *MessageHeaderEncoder) Wrap(buf []byte, off int) *MessageHeaderEncoder {
	e.buf = buf
	e.off = off
	return e
}

func (e *MessageHeaderEncoder) BlockLength(v uint16) *MessageHeaderEncoder {
	binary.LittleEndian.PutUint16(e.buf[e.off+headerBlockLength:], v)
	return e
}

func (e *MessageHeaderEncoder) TemplateID(v uint16) *MessageHeaderEncoder {
	binary.LittleEndian.PutUint16(e.buf[e.off+headerTemplateID:], v)
	return e
}

func (e *MessageHeaderEncoder) SchemaID(v uint16) *MessageHeaderEncoder {
	binary.LittleEndian.PutUint16(e.buf[e.off+headerSchemaID:], v)
	return e
}

func (e *MessageHeaderEncoder) Version(v uint16) *MessageHeaderEncoder {
	binary.LittleEndian.PutUint16(e.buf[e.off+headerVersion:], v)
	return e
}

// EncodedLength returns the header size in bytes.
func (e *MessageHeaderEncoder) EncodedLength() int { return HeaderLength }

// MessageHeaderDecoder reads the 8-byte message header.
type MessageHeaderDecoder struct {
	buf []byte
	off int
}

// Wrap points the decoder at buf starting at off.
func (d *MessageHeaderDecoder) Wrap(buf []byte, off int) *MessageHeaderDecoder {
	d.buf = buf
	d.off = off
	return d
}

func (d *MessageHeaderDecoder) BlockLength() uint16 {
	return binary.LittleEndian.Uint16(d.buf[d.off+headerBlockLength:])
}

func (d *MessageHeaderDecoder) TemplateID() uint16 {
	return binary.LittleEndian.Uint16(d.buf[d.off+headerTemplateID:])
}

func (d *MessageHeaderDecoder) SchemaID() uint16 {
	return binary.LittleEndian.Uint16(d.buf[d.off+headerSchemaID:])
}

func (d *MessageHeaderDecoder) Version() uint16 {
	return binary.LittleEndian.Uint16(d.buf[d.off+headerVersion:])
}

// EncodedLength returns the header size in bytes.
func (d *MessageHeaderDecoder) EncodedLength() int { return HeaderLength }
