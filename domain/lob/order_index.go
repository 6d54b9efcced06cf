package lob

// orderIndex maps orderId -> slot index for cancel lookups. It is a
// fixed-capacity open-addressed table with linear probing and backward-shift
// deletion, pre-allocated at book construction so lookups, inserts and
// deletes never allocate. Capacity is 2x MaxOrders, keeping the load factor
// at or below one half.
//
// Hashing is a fixed multiplicative mix with no per-process seed: replicas
// must probe identically for the book state to stay byte-comparable.
type orderIndex struct {
	keys  []uint64
	slots []int32
	mask  int
}

const orderIndexCapacity = MaxOrders * 2

func newOrderIndex() *orderIndex {
	t := &orderIndex{
		keys:  make([]uint64, orderIndexCapacity),
		slots: make([]int32, orderIndexCapacity),
		mask:  orderIndexCapacity - 1,
	}
	for i := range t.slots {
		t.slots[i] = NullSlot
	}
	return t
}

func mixOrderID(key uint64) uint64 {
	return key * 0x9e3779b97f4a7c15
}

// put records key -> slot, overwriting any previous entry for key.
func (t *orderIndex) put(key uint64, slot int32) {
	i := int(mixOrderID(key)) & t.mask
	for {
		if t.slots[i] == NullSlot {
			t.keys[i] = key
			t.slots[i] = slot
			return
		}
		if t.keys[i] == key {
			t.slots[i] = slot
			return
		}
		i = (i + 1) & t.mask
	}
}

// get returns the slot for key, or NullSlot if absent.
func (t *orderIndex) get(key uint64) int32 {
	i := int(mixOrderID(key)) & t.mask
	for {
		if t.slots[i] == NullSlot {
			return NullSlot
		}
		if t.keys[i] == key {
			return t.slots[i]
		}
		i = (i + 1) & t.mask
	}
}

// delete removes key from the table. Backward-shift deletion keeps probe
// chains intact without tombstones, so the table never degrades.
func (t *orderIndex) delete(key uint64) bool {
	i := int(mixOrderID(key)) & t.mask
	for {
		if t.slots[i] == NullSlot {
			return false
		}
		if t.keys[i] == key {
			break
		}
		i = (i + 1) & t.mask
	}

	for {
		t.slots[i] = NullSlot
		j := i
		for {
			j = (j + 1) & t.mask
			if t.slots[j] == NullSlot {
				return true
			}
			h := int(mixOrderID(t.keys[j])) & t.mask
			// Move j back into the hole unless its home position lies
			// cyclically inside (i, j].
			if (j > i && (h <= i || h > j)) || (j < i && h <= i && h > j) {
				t.keys[i] = t.keys[j]
				t.slots[i] = t.slots[j]
				i = j
				break
			}
		}
	}
}

// reset clears every entry.
func (t *orderIndex) reset() {
	for i := range t.slots {
		t.slots[i] = NullSlot
	}
}

// size counts live entries; used by invariant checks, not the hot path.
func (t *orderIndex) size() int {
	n := 0
	for _, s := range t.slots {
		if s != NullSlot {
			n++
		}
	}
	return n
}
