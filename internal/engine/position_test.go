package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"allocator/internal/common"
)

func TestPosition_Gate(t *testing.T) {
	p := NewPosition(3)

	assert.True(t, p.Admits(common.Buy))
	assert.Equal(t, int64(3), p.Headroom())

	assert.Equal(t, int64(3), p.ApplyFill(common.Buy, 3))
	assert.False(t, p.Admits(common.Buy))
	assert.True(t, p.Admits(common.Sell))
	assert.True(t, p.Admits(common.UnknownSide))
	assert.Zero(t, p.Headroom())

	assert.Equal(t, int64(1), p.ApplyFill(common.Sell, 2))
	assert.True(t, p.Admits(common.Buy))
	assert.Equal(t, int64(2), p.Headroom())
}

func TestPosition_NoFloor(t *testing.T) {
	p := NewPosition(0)

	assert.False(t, p.Admits(common.Buy))
	for i := 0; i < 10; i++ {
		p.ApplyFill(common.Sell, 1_000_000)
	}
	assert.Equal(t, int64(-10_000_000), p.Current())
	assert.True(t, p.Admits(common.Buy))
}

func TestPosition_NegativeMaximum(t *testing.T) {
	p := NewPosition(-5)

	assert.False(t, p.Admits(common.Buy))
	assert.Zero(t, p.Headroom())
	assert.Equal(t, int64(0), p.ApplyFill(common.UnknownSide, 7))
}
