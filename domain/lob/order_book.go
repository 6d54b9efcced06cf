package lob

import (
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"

	"chronos/domain/scan"
)

// Book geometry. Fixed at construction: the slot pool and level arrays are
// sized once and never grow.
const (
	// MaxLevels is the maximum number of price levels per side. 8 KB of
	// prices per side stays L1-resident.
	MaxLevels = 1024

	// MaxOrders is the maximum number of live orders in one book.
	MaxOrders = 1 << 20

	// OrderSlotSize is the bytes per order slot, one cache line.
	OrderSlotSize = 64

	// NullSlot marks the absence of a slot index.
	NullSlot = int32(-1)
)

// Order slot field offsets within a 64-byte slot.
//
//	orderId    : u64 @ 0
//	price      : i64 @ 8
//	clientId   : u64 @ 16
//	timestampNs: i64 @ 24
//	quantity   : i32 @ 32
//	remaining  : i32 @ 36
//	instrId    : i32 @ 40
//	side       : u8  @ 44
//	orderType  : u8  @ 45
//	nextSlot   : i32 @ 48
//	prevSlot   : i32 @ 52
//	levelIndex : i32 @ 56
//	pad        :     @ 60
const (
	slotOrderID      = 0
	slotPrice        = 8
	slotClientID     = 16
	slotTimestamp    = 24
	slotQuantity     = 32
	slotRemaining    = 36
	slotInstrumentID = 40
	slotSide         = 44
	slotOrderType    = 45
	slotNext         = 48
	slotPrev         = 52
	slotLevelIndex   = 56
)

// sideLevels holds one side's Structure-of-Arrays price-level index.
// prices[0:count] is sorted toward the aggressor: bids descending, asks
// ascending. The parallel arrays share the index.
type sideLevels struct {
	prices     []int64
	aggQty     []int64
	orderCount []int32
	headSlot   []int32
	tailSlot   []int32
	count      int
}

func newSideLevels() sideLevels {
	s := sideLevels{
		prices:     make([]int64, MaxLevels),
		aggQty:     make([]int64, MaxLevels),
		orderCount: make([]int32, MaxLevels),
		headSlot:   make([]int32, MaxLevels),
		tailSlot:   make([]int32, MaxLevels),
	}
	for i := range s.headSlot {
		s.headSlot[i] = NullSlot
		s.tailSlot[i] = NullSlot
	}
	return s
}

func (s *sideLevels) reset() {
	s.count = 0
	for i := range s.headSlot {
		s.headSlot[i] = NullSlot
		s.tailSlot[i] = NullSlot
	}
}

// OrderBook is a single-instrument limit order book over a pre-allocated,
// cache-line-aligned slot region. Slot indexes are the only external handles;
// they stay stable until RemoveOrder frees them. The book is single-threaded
// by design: no locks, no atomics.
type OrderBook struct {
	instrumentID uint32

	bids sideLevels
	asks sideLevels

	slots []byte // MaxOrders * OrderSlotSize, 64-byte aligned

	freeListHead   int32
	liveOrderCount int

	index   *orderIndex
	scanner scan.Scanner
}

// NewOrderBook allocates a book for one instrument. All memory is committed
// here; no operation allocates afterwards.
func NewOrderBook(instrumentID uint32, scanner scan.Scanner) *OrderBook {
	raw := make([]byte, MaxOrders*OrderSlotSize+OrderSlotSize-1)
	shift := (OrderSlotSize - int(uintptr(unsafe.Pointer(&raw[0]))&(OrderSlotSize-1))) & (OrderSlotSize - 1)

	b := &OrderBook{
		instrumentID: instrumentID,
		bids:         newSideLevels(),
		asks:         newSideLevels(),
		slots:        raw[shift : shift+MaxOrders*OrderSlotSize],
		index:        newOrderIndex(),
		scanner:      scanner,
	}
	b.chainFreeList()
	return b
}

// chainFreeList links every slot 0 -> 1 -> ... -> NullSlot and marks all
// slots free via a NullSlot levelIndex.
func (b *OrderBook) chainFreeList() {
	for i := int32(0); i < MaxOrders-1; i++ {
		b.putI32(i, slotNext, i+1)
		b.putI32(i, slotLevelIndex, NullSlot)
	}
	b.putI32(MaxOrders-1, slotNext, NullSlot)
	b.putI32(MaxOrders-1, slotLevelIndex, NullSlot)
	b.freeListHead = 0
}

// ── Slot field access ──

func slotBase(slot int32) int { return int(slot) * OrderSlotSize }

func (b *OrderBook) putU64(slot int32, off int, v uint64) {
	binary.LittleEndian.PutUint64(b.slots[slotBase(slot)+off:], v)
}

func (b *OrderBook) getU64(slot int32, off int) uint64 {
	return binary.LittleEndian.Uint64(b.slots[slotBase(slot)+off:])
}

func (b *OrderBook) putI32(slot int32, off int, v int32) {
	binary.LittleEndian.PutUint32(b.slots[slotBase(slot)+off:], uint32(v))
}

func (b *OrderBook) getI32(slot int32, off int) int32 {
	return int32(binary.LittleEndian.Uint32(b.slots[slotBase(slot)+off:]))
}

// SlotOrderID reads the order id of a slot.
func (b *OrderBook) SlotOrderID(slot int32) uint64 { return b.getU64(slot, slotOrderID) }

// SlotPrice reads the fixed-point price of a slot.
func (b *OrderBook) SlotPrice(slot int32) int64 { return int64(b.getU64(slot, slotPrice)) }

// SlotClientID reads the client id of a slot.
func (b *OrderBook) SlotClientID(slot int32) uint64 { return b.getU64(slot, slotClientID) }

// SlotTimestamp reads the cluster timestamp the order was accepted at.
func (b *OrderBook) SlotTimestamp(slot int32) int64 { return int64(b.getU64(slot, slotTimestamp)) }

// SlotQuantity reads the original quantity of a slot.
func (b *OrderBook) SlotQuantity(slot int32) int32 { return b.getI32(slot, slotQuantity) }

// SlotRemaining reads the unfilled quantity of a slot.
func (b *OrderBook) SlotRemaining(slot int32) int32 { return b.getI32(slot, slotRemaining) }

// SlotInstrumentID reads the instrument id of a slot.
func (b *OrderBook) SlotInstrumentID(slot int32) int32 { return b.getI32(slot, slotInstrumentID) }

// SlotSide reads the side byte of a slot.
func (b *OrderBook) SlotSide(slot int32) byte { return b.slots[slotBase(slot)+slotSide] }

// SlotOrderType reads the order type byte of a slot.
func (b *OrderBook) SlotOrderType(slot int32) byte { return b.slots[slotBase(slot)+slotOrderType] }

// SlotNext reads the next slot in the level FIFO, NullSlot at the tail.
func (b *OrderBook) SlotNext(slot int32) int32 { return b.getI32(slot, slotNext) }

// SlotPrev reads the previous slot in the level FIFO, NullSlot at the head.
func (b *OrderBook) SlotPrev(slot int32) int32 { return b.getI32(slot, slotPrev) }

// SlotLevelIndex reads the slot's price-level index, NullSlot when free.
func (b *OrderBook) SlotLevelIndex(slot int32) int32 { return b.getI32(slot, slotLevelIndex) }

// ── Accessors ──

// InstrumentID returns the instrument this book serves.
func (b *OrderBook) InstrumentID() uint32 { return b.instrumentID }

// BidPrices returns the raw bid price array for scanning.
func (b *OrderBook) BidPrices() []int64 { return b.bids.prices }

// AskPrices returns the raw ask price array for scanning.
func (b *OrderBook) AskPrices() []int64 { return b.asks.prices }

// BidAggQty returns the raw bid aggregate-quantity array.
func (b *OrderBook) BidAggQty() []int64 { return b.bids.aggQty }

// AskAggQty returns the raw ask aggregate-quantity array.
func (b *OrderBook) AskAggQty() []int64 { return b.asks.aggQty }

// BidOrderCounts returns the raw bid per-level order counts.
func (b *OrderBook) BidOrderCounts() []int32 { return b.bids.orderCount }

// AskOrderCounts returns the raw ask per-level order counts.
func (b *OrderBook) AskOrderCounts() []int32 { return b.asks.orderCount }

// BidLevelCount returns the number of active bid levels.
func (b *OrderBook) BidLevelCount() int { return b.bids.count }

// AskLevelCount returns the number of active ask levels.
func (b *OrderBook) AskLevelCount() int { return b.asks.count }

// LiveOrderCount returns the number of resting orders across both sides.
func (b *OrderBook) LiveOrderCount() int { return b.liveOrderCount }

// BestBid returns the highest bid, or math.MinInt64 when the side is empty.
func (b *OrderBook) BestBid() int64 {
	if b.bids.count > 0 {
		return b.bids.prices[0]
	}
	return math.MinInt64
}

// BestAsk returns the lowest ask, or math.MaxInt64 when the side is empty.
func (b *OrderBook) BestAsk() int64 {
	if b.asks.count > 0 {
		return b.asks.prices[0]
	}
	return math.MaxInt64
}

// HeadOrderSlot returns the first order of a level's FIFO queue.
func (b *OrderBook) HeadOrderSlot(side byte, levelIndex int) int32 {
	if side == SideBuy {
		return b.bids.headSlot[levelIndex]
	}
	return b.asks.headSlot[levelIndex]
}

// LookupOrder returns the slot currently holding orderID, or NullSlot.
func (b *OrderBook) LookupOrder(orderID uint64) int32 { return b.index.get(orderID) }

func (b *OrderBook) levels(side byte) *sideLevels {
	if side == SideBuy {
		return &b.bids
	}
	return &b.asks
}

// ── Operations ──

// AddOrder takes a slot from the free list, writes the order record and links
// it into its side's price level, creating the level if needed. Returns the
// slot index, or NullSlot when the pool is exhausted or the side already has
// MaxLevels levels and the price would need a new one (the add is refused and
// the slot returned to the free list; callers reject the order).
func (b *OrderBook) AddOrder(orderID uint64, price int64, clientID uint64,
	timestampNs int64, quantity int32, instrumentID uint32, side, orderType byte) int32 {

	if b.freeListHead == NullSlot {
		return NullSlot // pool exhausted
	}

	slot := b.freeListHead
	b.freeListHead = b.getI32(slot, slotNext)

	b.putU64(slot, slotOrderID, orderID)
	b.putU64(slot, slotPrice, uint64(price))
	b.putU64(slot, slotClientID, clientID)
	b.putU64(slot, slotTimestamp, uint64(timestampNs))
	b.putI32(slot, slotQuantity, quantity)
	b.putI32(slot, slotRemaining, quantity)
	b.putI32(slot, slotInstrumentID, int32(instrumentID))
	b.slots[slotBase(slot)+slotSide] = side
	b.slots[slotBase(slot)+slotOrderType] = orderType
	b.putI32(slot, slotNext, NullSlot)
	b.putI32(slot, slotPrev, NullSlot)
	b.putI32(slot, slotLevelIndex, NullSlot)

	if !b.insertIntoLevel(slot, price, side) {
		// Book full on this side: unwind the allocation.
		b.putI32(slot, slotNext, b.freeListHead)
		b.putI32(slot, slotLevelIndex, NullSlot)
		b.freeListHead = slot
		return NullSlot
	}

	b.index.put(orderID, slot)
	b.liveOrderCount++
	return slot
}

// RemoveOrder unlinks the slot from its level, collapses the level if it
// became empty, and returns the slot to the free list. Returns the remaining
// quantity at the moment of removal; removing a slot that is already free
// returns 0 and changes nothing.
func (b *OrderBook) RemoveOrder(slot int32) int32 {
	if slot < 0 || slot >= MaxOrders {
		return 0
	}
	levelIdx := b.getI32(slot, slotLevelIndex)
	if levelIdx == NullSlot {
		return 0 // already free
	}

	remaining := b.getI32(slot, slotRemaining)
	side := b.slots[slotBase(slot)+slotSide]

	b.unlinkFromLevel(slot, side, levelIdx)
	b.index.delete(b.getU64(slot, slotOrderID))

	b.putI32(slot, slotNext, b.freeListHead)
	b.putI32(slot, slotLevelIndex, NullSlot)
	b.freeListHead = slot
	b.liveOrderCount--

	return remaining
}

// ReduceQuantity decrements a resting order's remaining quantity and its
// level aggregate by fillQty. The slot is not removed when remaining reaches
// zero; the engine removes it after emitting the fill report.
func (b *OrderBook) ReduceQuantity(slot int32, fillQty int32) int32 {
	current := b.getI32(slot, slotRemaining)
	newRemaining := current - fillQty
	if fillQty <= 0 || newRemaining < 0 {
		panic(fmt.Sprintf("lob: reduce %d beyond remaining %d on slot %d", fillQty, current, slot))
	}
	b.putI32(slot, slotRemaining, newRemaining)

	side := b.slots[slotBase(slot)+slotSide]
	levelIdx := b.getI32(slot, slotLevelIndex)
	lv := b.levels(side)
	lv.aggQty[levelIdx] -= int64(fillQty)
	if lv.aggQty[levelIdx] < 0 {
		panic(fmt.Sprintf("lob: negative aggregate at level %d side %s", levelIdx, SideName(side)))
	}
	return newRemaining
}

// Reset restores the empty post-construction state without reallocating.
func (b *OrderBook) Reset() {
	b.bids.reset()
	b.asks.reset()
	b.liveOrderCount = 0
	b.chainFreeList()
	b.index.reset()
}

// ── Price level management ──

// insertIntoLevel finds or creates the price level for (price, side) and
// appends the slot at the tail of its FIFO queue. Returns false when a new
// level would be needed but the side is at MaxLevels.
func (b *OrderBook) insertIntoLevel(slot int32, price int64, side byte) bool {
	lv := b.levels(side)
	descending := side == SideBuy

	// The insertion point is the first strictly-less-aggressive level, so
	// an existing equal-priced level always sits immediately before it.
	idx := b.scanner.FindInsertionPoint(lv.prices, lv.count, price, descending)
	if idx > 0 && lv.prices[idx-1] == price {
		idx--
	} else {
		if lv.count == MaxLevels {
			return false
		}
		// Shift [idx, count) right by one across every parallel array and
		// relabel the shifted queues.
		copy(lv.prices[idx+1:lv.count+1], lv.prices[idx:lv.count])
		copy(lv.aggQty[idx+1:lv.count+1], lv.aggQty[idx:lv.count])
		copy(lv.orderCount[idx+1:lv.count+1], lv.orderCount[idx:lv.count])
		copy(lv.headSlot[idx+1:lv.count+1], lv.headSlot[idx:lv.count])
		copy(lv.tailSlot[idx+1:lv.count+1], lv.tailSlot[idx:lv.count])
		for j := idx + 1; j <= lv.count; j++ {
			b.relabelQueue(lv.headSlot[j], int32(j))
		}
		lv.prices[idx] = price
		lv.aggQty[idx] = 0
		lv.orderCount[idx] = 0
		lv.headSlot[idx] = NullSlot
		lv.tailSlot[idx] = NullSlot
		lv.count++
	}

	b.putI32(slot, slotLevelIndex, int32(idx))
	remaining := b.getI32(slot, slotRemaining)
	lv.aggQty[idx] += int64(remaining)
	lv.orderCount[idx]++

	// FIFO append at the tail.
	if tail := lv.tailSlot[idx]; tail == NullSlot {
		lv.headSlot[idx] = slot
		lv.tailSlot[idx] = slot
	} else {
		b.putI32(tail, slotNext, slot)
		b.putI32(slot, slotPrev, tail)
		lv.tailSlot[idx] = slot
	}
	return true
}

// unlinkFromLevel removes the slot from its level's doubly-linked queue and
// collapses the level when it empties.
func (b *OrderBook) unlinkFromLevel(slot int32, side byte, levelIdx int32) {
	lv := b.levels(side)
	next := b.getI32(slot, slotNext)
	prev := b.getI32(slot, slotPrev)

	remaining := b.getI32(slot, slotRemaining)
	lv.aggQty[levelIdx] -= int64(remaining)
	lv.orderCount[levelIdx]--
	if lv.aggQty[levelIdx] < 0 || lv.orderCount[levelIdx] < 0 {
		panic(fmt.Sprintf("lob: inconsistent level %d side %s during unlink", levelIdx, SideName(side)))
	}

	if prev != NullSlot {
		b.putI32(prev, slotNext, next)
	} else {
		lv.headSlot[levelIdx] = next
	}
	if next != NullSlot {
		b.putI32(next, slotPrev, prev)
	} else {
		lv.tailSlot[levelIdx] = prev
	}

	if lv.orderCount[levelIdx] == 0 {
		b.removeLevel(side, int(levelIdx))
	}
}

// removeLevel shifts [idx+1, count) left by one and relabels shifted queues.
func (b *OrderBook) removeLevel(side byte, idx int) {
	lv := b.levels(side)
	tail := lv.count - idx - 1
	if tail > 0 {
		copy(lv.prices[idx:lv.count-1], lv.prices[idx+1:lv.count])
		copy(lv.aggQty[idx:lv.count-1], lv.aggQty[idx+1:lv.count])
		copy(lv.orderCount[idx:lv.count-1], lv.orderCount[idx+1:lv.count])
		copy(lv.headSlot[idx:lv.count-1], lv.headSlot[idx+1:lv.count])
		copy(lv.tailSlot[idx:lv.count-1], lv.tailSlot[idx+1:lv.count])
		for i := idx; i < idx+tail; i++ {
			b.relabelQueue(lv.headSlot[i], int32(i))
		}
	}
	lv.count--
	lv.headSlot[lv.count] = NullSlot
	lv.tailSlot[lv.count] = NullSlot
	lv.orderCount[lv.count] = 0
	lv.aggQty[lv.count] = 0
}

// relabelQueue rewrites levelIndex for every slot in a level queue.
func (b *OrderBook) relabelQueue(head int32, newLevelIndex int32) {
	for s := head; s != NullSlot; s = b.getI32(s, slotNext) {
		b.putI32(s, slotLevelIndex, newLevelIndex)
	}
}
