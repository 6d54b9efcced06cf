package scan

import (
	"math"
	"math/rand"
	"sort"
	"testing"
)

func TestFindInsertionPointDescending(t *testing.T) {
	s := NewScalar()
	prices := []int64{105, 100, 95}

	cases := []struct {
		price int64
		want  int
	}{
		{110, 0}, // better than everything
		{105, 1}, // ties do not satisfy the strict compare
		{101, 1},
		{100, 2},
		{90, 3}, // append at end
	}
	for _, c := range cases {
		if got := s.FindInsertionPoint(prices, len(prices), c.price, true); got != c.want {
			t.Errorf("FindInsertionPoint(%d, desc) = %d, want %d", c.price, got, c.want)
		}
	}
}

func TestFindInsertionPointAscending(t *testing.T) {
	s := NewScalar()
	prices := []int64{95, 100, 105}

	cases := []struct {
		price int64
		want  int
	}{
		{90, 0},
		{95, 1},
		{99, 1},
		{100, 2},
		{110, 3},
	}
	for _, c := range cases {
		if got := s.FindInsertionPoint(prices, len(prices), c.price, false); got != c.want {
			t.Errorf("FindInsertionPoint(%d, asc) = %d, want %d", c.price, got, c.want)
		}
	}
}

func TestCountMatchableLevels(t *testing.T) {
	s := NewScalar()

	asks := []int64{100, 101, 102}
	if got := s.CountMatchableLevels(asks, 3, 101, true); got != 2 {
		t.Errorf("buy sweep = %d, want 2", got)
	}
	if got := s.CountMatchableLevels(asks, 3, 99, true); got != 0 {
		t.Errorf("buy below book = %d, want 0", got)
	}
	if got := s.CountMatchableLevels(asks, 3, math.MaxInt64, true); got != 3 {
		t.Errorf("market buy = %d, want 3", got)
	}

	bids := []int64{102, 101, 100}
	if got := s.CountMatchableLevels(bids, 3, 101, false); got != 2 {
		t.Errorf("sell sweep = %d, want 2", got)
	}
	if got := s.CountMatchableLevels(bids, 3, math.MinInt64, false); got != 3 {
		t.Errorf("market sell = %d, want 3", got)
	}
}

func TestFindFirstMatchableLevel(t *testing.T) {
	s := NewScalar()
	asks := []int64{100, 101}

	if got := s.FindFirstMatchableLevel(asks, 2, 100, true); got != 0 {
		t.Errorf("tradeable top = %d, want 0", got)
	}
	if got := s.FindFirstMatchableLevel(asks, 2, 99, true); got != -1 {
		t.Errorf("untradeable book = %d, want -1", got)
	}
	if got := s.FindFirstMatchableLevel(nil, 0, 100, true); got != -1 {
		t.Errorf("empty book = %d, want -1", got)
	}
}

// Scalar and block scanners must agree bit-for-bit on every input, sorted or
// not, since replicas may run different variants.
func TestScannerEquivalence(t *testing.T) {
	scalar := NewScalar()
	block := NewBlock()
	rng := rand.New(rand.NewSource(3))

	probes := []int64{math.MinInt64, -1, 0, 1, 50, 500, math.MaxInt64}

	for trial := 0; trial < 2000; trial++ {
		count := rng.Intn(70) // covers empty, sub-lane and multi-lane sizes
		prices := make([]int64, count)
		for i := range prices {
			prices[i] = int64(rng.Intn(1000) - 200)
		}
		switch trial % 3 {
		case 0:
			sort.Slice(prices, func(i, j int) bool { return prices[i] > prices[j] })
		case 1:
			sort.Slice(prices, func(i, j int) bool { return prices[i] < prices[j] })
			// case 2: leave unsorted
		}

		for _, probe := range probes {
			for _, flag := range []bool{true, false} {
				if a, b := scalar.FindInsertionPoint(prices, count, probe, flag),
					block.FindInsertionPoint(prices, count, probe, flag); a != b {
					t.Fatalf("FindInsertionPoint(%v, %d, %v): scalar %d, block %d", prices, probe, flag, a, b)
				}
				if a, b := scalar.CountMatchableLevels(prices, count, probe, flag),
					block.CountMatchableLevels(prices, count, probe, flag); a != b {
					t.Fatalf("CountMatchableLevels(%v, %d, %v): scalar %d, block %d", prices, probe, flag, a, b)
				}
				if a, b := scalar.FindFirstMatchableLevel(prices, count, probe, flag),
					block.FindFirstMatchableLevel(prices, count, probe, flag); a != b {
					t.Fatalf("FindFirstMatchableLevel(%v, %d, %v): scalar %d, block %d", prices, probe, flag, a, b)
				}
			}
		}
	}
}

func TestFactoryHonorsDisableOverride(t *testing.T) {
	t.Setenv(DisableSIMDEnv, "true")
	if _, ok := New().(scalarScanner); !ok {
		t.Errorf("%s=true must force the scalar scanner", DisableSIMDEnv)
	}
}

func TestScannersIgnoreBeyondCount(t *testing.T) {
	s := NewBlock()
	prices := make([]int64, 16)
	for i := range prices {
		prices[i] = int64(100 + i)
	}
	// Only the first 3 entries are live; garbage beyond count must not leak in.
	prices[3] = math.MinInt64
	if got := s.CountMatchableLevels(prices, 3, 200, true); got != 3 {
		t.Errorf("CountMatchableLevels = %d, want 3", got)
	}
	if got := s.FindInsertionPoint(prices, 3, 99, false); got != 0 {
		t.Errorf("FindInsertionPoint = %d, want 0", got)
	}
}
