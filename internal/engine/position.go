package engine

import "allocator/internal/common"

// Position tracks the running net position against a fixed ceiling. The
// ceiling only bounds buying: sells may take the position arbitrarily
// negative.
type Position struct {
	current int64
	max     int64
}

func NewPosition(max int64) *Position {
	return &Position{max: max}
}

func (p *Position) Current() int64 { return p.current }
func (p *Position) Max() int64     { return p.max }

// Headroom is how much more can be bought before reaching the ceiling.
func (p *Position) Headroom() int64 {
	if p.current >= p.max {
		return 0
	}
	return p.max - p.current
}

// Admits is the once-per-order gate: a BUY is refused outright when the
// position is already at or above the ceiling.
func (p *Position) Admits(side common.Side) bool {
	return side != common.Buy || p.current < p.max
}

// ApplyFill updates the position for a fill on the aggressor's side and
// returns the new position.
func (p *Position) ApplyFill(side common.Side, qty int64) int64 {
	switch side {
	case common.Buy:
		p.current += qty
	case common.Sell:
		p.current -= qty
	}
	return p.current
}
