// Package scan provides the price-level scanning strategies used by the
// matching engine. A scanner is pure computation over a sorted prices[0:count]
// array: no mutation, no state, no allocation.
package scan

import (
	"log"
	"os"

	"golang.org/x/sys/cpu"
)

// DisableSIMDEnv forces the scalar scanner when set to "true", regardless of
// hardware capability.
const DisableSIMDEnv = "CHRONOS_DISABLE_SIMD"

// Scanner answers the three price-array queries the engine needs.
// Implementations must produce byte-identical results for identical inputs;
// variant selection may differ across replicas without breaking determinism.
type Scanner interface {
	// FindInsertionPoint returns the first index i where, for descending
	// (bid) arrays, prices[i] < newPrice, and for ascending (ask) arrays,
	// prices[i] > newPrice; count if no such index exists. An equal price
	// never satisfies the strict comparison; the caller reuses the
	// existing level in that case.
	FindInsertionPoint(prices []int64, count int, newPrice int64, descending bool) int

	// CountMatchableLevels returns the length of the longest prefix a
	// sweeping aggressor can trade against: for a BUY sweeping asks,
	// levels with prices[i] <= limitPrice; for a SELL sweeping bids,
	// levels with prices[i] >= limitPrice.
	CountMatchableLevels(prices []int64, count int, limitPrice int64, isBuySide bool) int

	// FindFirstMatchableLevel returns the index of the first level
	// tradeable against limitPrice, or -1 if none.
	FindFirstMatchableLevel(prices []int64, count int, limitPrice int64, isBuySide bool) int
}

// New selects a scanner at construction time: the blocked wide-compare
// implementation when the CPU advertises vector support, the scalar baseline
// otherwise. CHRONOS_DISABLE_SIMD=true forces scalar.
func New() Scanner {
	if os.Getenv(DisableSIMDEnv) == "true" {
		log.Printf("[scan] wide scanner disabled via %s", DisableSIMDEnv)
		return NewScalar()
	}
	if wideSupported() {
		return NewBlock()
	}
	log.Printf("[scan] no vector support detected, using scalar scanner")
	return NewScalar()
}

func wideSupported() bool {
	return cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD
}
