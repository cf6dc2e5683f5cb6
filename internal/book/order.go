package book

import (
	"github.com/shopspring/decimal"

	"allocator/internal/common"
)

// Order is one resting declaration. The sign of the remaining size encodes
// the declared side: negative for a sell, positive for a buy.
type Order struct {
	MessageID string
	Product   string
	Price     decimal.Decimal

	declared  int64 // Signed size at declaration time
	remaining int64 // Signed remaining size, same sign as declared or zero
}

func newOrder(messageID string, side common.Side, size int64, price decimal.Decimal, product string) *Order {
	signed := size
	if side == common.Sell {
		signed = -size
	}
	return &Order{
		MessageID: messageID,
		Product:   product,
		Price:     price,
		declared:  signed,
		remaining: signed,
	}
}

// Remaining returns the signed remaining size.
func (o *Order) Remaining() int64 { return o.remaining }

// Declared returns the signed size the order was declared with.
func (o *Order) Declared() int64 { return o.declared }

// Magnitude returns |remaining|.
func (o *Order) Magnitude() int64 { return abs(o.remaining) }

// Filled returns how much has been allocated against the order so far.
func (o *Order) Filled() int64 { return abs(o.declared) - abs(o.remaining) }

// Side reports the side the remaining size encodes. A zero-sized order
// reports Buy, matching how the flush labels a non-negative size.
func (o *Order) Side() common.Side {
	if o.remaining < 0 {
		return common.Sell
	}
	return common.Buy
}

// IsBuy and IsSell are strict: a zero-sized order is neither.
func (o *Order) IsBuy() bool  { return o.remaining > 0 }
func (o *Order) IsSell() bool { return o.remaining < 0 }

// Fill moves the remaining size toward zero by at most qty and returns the
// quantity actually taken. It never flips the sign.
func (o *Order) Fill(qty int64) int64 {
	if qty <= 0 || o.remaining == 0 {
		return 0
	}
	qty = min(qty, abs(o.remaining))
	if o.remaining < 0 {
		o.remaining += qty
	} else {
		o.remaining -= qty
	}
	return qty
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
