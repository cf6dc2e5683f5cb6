package engine

import "allocator/internal/common"

// FillMode decides how the position cap bounds an admitted BUY.
type FillMode int

const (
	// Capped trims an admitted BUY to the headroom left under the maximum
	// position, so no BUY fill can carry the position past it.
	Capped FillMode = iota
	// Uncapped admits a BUY below the maximum at its full size; its fills
	// may carry the position past the maximum.
	Uncapped
)

var fillModeNames = map[FillMode]string{
	Capped:   "capped",
	Uncapped: "uncapped",
}

func (m FillMode) String() string { return fillModeNames[m] }

// ParseFillMode returns false for an unrecognised name.
func ParseFillMode(name string) (FillMode, bool) {
	for mode, n := range fillModeNames {
		if n == name {
			return mode, true
		}
	}
	return Capped, false
}

// CrossingMode selects which resting orders an aggressor may allocate against.
type CrossingMode int

const (
	// SameSide allocates a BUY against resting buys limited at or above its
	// price and a SELL against resting sells limited at or below its price.
	SameSide CrossingMode = iota
	// OppositeSide allocates a BUY against resting sells limited at or below
	// its price and a SELL against resting buys limited at or above it.
	OppositeSide
)

var crossingModeNames = map[CrossingMode]string{
	SameSide:     "same-side",
	OppositeSide: "opposite-side",
}

func (m CrossingMode) String() string { return crossingModeNames[m] }

// ParseCrossingMode returns false for an unrecognised name.
func ParseCrossingMode(name string) (CrossingMode, bool) {
	for mode, n := range crossingModeNames {
		if n == name {
			return mode, true
		}
	}
	return SameSide, false
}

// Execution summarises what a single venue order did.
type Execution struct {
	Side      common.Side
	Admitted  bool  // False when the position gate rejected the order outright
	Requested int64 // Size as received
	Working   int64 // Size after the gate, the most that could fill
	Filled    int64
	Trades    int
}

// Unfilled is the part of the working size that found no liquidity and was
// dropped.
func (e Execution) Unfilled() int64 { return e.Working - e.Filled }
