// Package snapshot serializes and restores order-book state.
//
// Format (little-endian, CRC32-IEEE over everything between the magic and
// the trailing checksum):
//
//	magic        : "CHRS" (4 bytes)
//	version      : u16
//	messageCount : u64
//	nextExecId   : u64
//	bookCount    : u32
//	per book:
//	  instrumentId   : u32
//	  liveOrderCount : u32
//	  per live order, in price-time order (bids best to worst, then asks):
//	    orderId u64, price i64, clientId u64, timestampNs i64,
//	    quantity i32, remaining i32, side u8, orderType u8  (42 bytes)
//	crc32 : u32
//
// Restoration replays AddOrder (and ReduceQuantity for partially filled
// orders) in serialization order, reconstructing identical book state
// deterministically.
package snapshot

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"

	"chronos/domain/lob"
)

// Version is the current snapshot format version.
const Version = 1

var magic = [4]byte{'C', 'H', 'R', 'S'}

var (
	// ErrBadMagic means the stream is not a CHRONOS snapshot.
	ErrBadMagic = errors.New("snapshot: bad magic")
	// ErrUnknownVersion means the snapshot was written by an incompatible
	// format version.
	ErrUnknownVersion = errors.New("snapshot: unknown version")
	// ErrChecksum means the snapshot is corrupt.
	ErrChecksum = errors.New("snapshot: checksum mismatch")
)

const orderRecordSize = 42

// Write serializes the engine counters and every book's live orders to w.
// nextExecID travels with the snapshot so a replica recovering from it
// resumes execution-id assignment exactly where the stream left off.
func Write(w io.Writer, messageCount, nextExecID uint64, books []*lob.OrderBook) error {
	if _, err := w.Write(magic[:]); err != nil {
		return err
	}

	h := crc32.NewIEEE()
	tw := io.MultiWriter(w, h)

	var scratch [8]byte
	binary.LittleEndian.PutUint16(scratch[:2], Version)
	if _, err := tw.Write(scratch[:2]); err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(scratch[:8], messageCount)
	if _, err := tw.Write(scratch[:8]); err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(scratch[:8], nextExecID)
	if _, err := tw.Write(scratch[:8]); err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(scratch[:4], uint32(len(books)))
	if _, err := tw.Write(scratch[:4]); err != nil {
		return err
	}

	for _, b := range books {
		if err := writeBook(tw, b); err != nil {
			return err
		}
	}

	binary.LittleEndian.PutUint32(scratch[:4], h.Sum32())
	_, err := w.Write(scratch[:4])
	return err
}

func writeBook(w io.Writer, b *lob.OrderBook) error {
	var hdr [8]byte
	binary.LittleEndian.PutUint32(hdr[:4], b.InstrumentID())
	binary.LittleEndian.PutUint32(hdr[4:], uint32(b.LiveOrderCount()))
	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}

	var rec [orderRecordSize]byte
	writeSide := func(side byte, levelCount int) error {
		for i := 0; i < levelCount; i++ {
			for s := b.HeadOrderSlot(side, i); s != lob.NullSlot; s = b.SlotNext(s) {
				binary.LittleEndian.PutUint64(rec[0:], b.SlotOrderID(s))
				binary.LittleEndian.PutUint64(rec[8:], uint64(b.SlotPrice(s)))
				binary.LittleEndian.PutUint64(rec[16:], b.SlotClientID(s))
				binary.LittleEndian.PutUint64(rec[24:], uint64(b.SlotTimestamp(s)))
				binary.LittleEndian.PutUint32(rec[32:], uint32(b.SlotQuantity(s)))
				binary.LittleEndian.PutUint32(rec[36:], uint32(b.SlotRemaining(s)))
				rec[40] = b.SlotSide(s)
				rec[41] = b.SlotOrderType(s)
				if _, err := w.Write(rec[:]); err != nil {
					return err
				}
			}
		}
		return nil
	}

	if err := writeSide(lob.SideBuy, b.BidLevelCount()); err != nil {
		return err
	}
	return writeSide(lob.SideSell, b.AskLevelCount())
}

// Restore replays a snapshot into the books resolved by lookup, returning
// the recorded message count and execution-id watermark. Books must be empty
// (freshly reset).
func Restore(r io.Reader, lookup func(uint32) *lob.OrderBook) (messageCount, nextExecID uint64, err error) {
	var m [4]byte
	if _, err := io.ReadFull(r, m[:]); err != nil {
		return 0, 0, err
	}
	if m != magic {
		return 0, 0, ErrBadMagic
	}

	h := crc32.NewIEEE()
	tr := io.TeeReader(r, h)

	var scratch [8]byte
	if _, err := io.ReadFull(tr, scratch[:2]); err != nil {
		return 0, 0, err
	}
	if v := binary.LittleEndian.Uint16(scratch[:2]); v != Version {
		return 0, 0, fmt.Errorf("%w: %d", ErrUnknownVersion, v)
	}
	if _, err := io.ReadFull(tr, scratch[:8]); err != nil {
		return 0, 0, err
	}
	messageCount = binary.LittleEndian.Uint64(scratch[:8])
	if _, err := io.ReadFull(tr, scratch[:8]); err != nil {
		return 0, 0, err
	}
	nextExecID = binary.LittleEndian.Uint64(scratch[:8])
	if _, err := io.ReadFull(tr, scratch[:4]); err != nil {
		return 0, 0, err
	}
	bookCount := binary.LittleEndian.Uint32(scratch[:4])

	for i := uint32(0); i < bookCount; i++ {
		if err := restoreBook(tr, lookup); err != nil {
			return 0, 0, err
		}
	}

	sum := h.Sum32()
	if _, err := io.ReadFull(r, scratch[:4]); err != nil {
		return 0, 0, err
	}
	if binary.LittleEndian.Uint32(scratch[:4]) != sum {
		return 0, 0, ErrChecksum
	}
	return messageCount, nextExecID, nil
}

func restoreBook(r io.Reader, lookup func(uint32) *lob.OrderBook) error {
	var hdr [8]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return err
	}
	instrumentID := binary.LittleEndian.Uint32(hdr[:4])
	orderCount := binary.LittleEndian.Uint32(hdr[4:])

	book := lookup(instrumentID)
	if book == nil {
		return fmt.Errorf("snapshot: no book for instrument %d", instrumentID)
	}

	var rec [orderRecordSize]byte
	for n := uint32(0); n < orderCount; n++ {
		if _, err := io.ReadFull(r, rec[:]); err != nil {
			return err
		}
		orderID := binary.LittleEndian.Uint64(rec[0:])
		price := int64(binary.LittleEndian.Uint64(rec[8:]))
		clientID := binary.LittleEndian.Uint64(rec[16:])
		timestampNs := int64(binary.LittleEndian.Uint64(rec[24:]))
		quantity := int32(binary.LittleEndian.Uint32(rec[32:]))
		remaining := int32(binary.LittleEndian.Uint32(rec[36:]))
		side := rec[40]
		orderType := rec[41]

		slot := book.AddOrder(orderID, price, clientID, timestampNs,
			quantity, instrumentID, side, orderType)
		if slot == lob.NullSlot {
			return fmt.Errorf("snapshot: book %d refused order %d during restore", instrumentID, orderID)
		}
		if remaining < quantity {
			book.ReduceQuantity(slot, quantity-remaining)
		}
	}
	return nil
}
