package engine

import (
	"github.com/rs/zerolog/log"

	"allocator/internal/book"
	"allocator/internal/common"
)

// Execute allocates a venue order against the product's resting orders.
//
// The position gate is evaluated once, before anything else: a BUY arriving
// while the position is at or above the maximum is rejected whole and the
// book is left untouched. Otherwise resting orders are scanned in declaration
// order and every crossing order is filled with min(|remaining|, aggressor
// remaining) until the aggressor is exhausted. Each fill is reported as it
// happens, on the side opposite the aggressor and at the aggressor's price.
// Whatever is left when the sequence runs out is dropped.
//
// An error is only ever the reporter's; fills reported before it stand.
func (engine *Engine) Execute(order common.Order) (Execution, error) {
	exec := Execution{
		Side:      order.Side,
		Requested: order.Size,
	}

	if !engine.position.Admits(order.Side) {
		log.Debug().
			Str("message_id", order.MessageID).
			Int64("position", engine.position.Current()).
			Int64("max_position", engine.position.Max()).
			Msg("venue order rejected at position limit")
		return exec, nil
	}
	exec.Admitted = true

	remaining := order.Size
	if order.Side == common.Buy && engine.fillMode == Capped {
		remaining = min(remaining, engine.position.Headroom())
	}
	if remaining <= 0 {
		return exec, nil
	}
	exec.Working = remaining

	for _, resting := range engine.book.Orders(order.Product) {
		if !engine.crosses(order, resting) {
			continue
		}

		matchQty := resting.Fill(min(resting.Magnitude(), remaining))
		remaining -= matchQty
		exec.Filled += matchQty
		exec.Trades++
		engine.position.ApplyFill(order.Side, matchQty)

		err := engine.report(common.Trade{
			Kind:      common.TradeFill,
			Side:      order.Side.Opposite(),
			Quantity:  matchQty,
			Price:     order.Price,
			Product:   order.Product,
			MessageID: order.MessageID,
		})
		if err != nil {
			return exec, err
		}

		// Break out if the aggressor has been filled.
		if remaining == 0 {
			break
		}
	}

	if remaining > 0 {
		log.Debug().
			Str("message_id", order.MessageID).
			Int64("unfilled", remaining).
			Msg("venue order remainder dropped")
	}
	return exec, nil
}

// crosses reports whether a resting order may take part in the aggressor's
// allocation. Zero-sized orders never cross.
//
// In SameSide mode the aggressor allocates against orders declared on its
// own side. OppositeSide is the conventional book.
func (engine *Engine) crosses(aggressor common.Order, resting *book.Order) bool {
	switch engine.crossing {
	case OppositeSide:
		switch aggressor.Side {
		case common.Buy:
			return resting.IsSell() && resting.Price.LessThanOrEqual(aggressor.Price)
		case common.Sell:
			return resting.IsBuy() && resting.Price.GreaterThanOrEqual(aggressor.Price)
		}
	default:
		switch aggressor.Side {
		case common.Sell:
			return resting.IsSell() && resting.Price.LessThanOrEqual(aggressor.Price)
		case common.Buy:
			return resting.IsBuy() && resting.Price.GreaterThanOrEqual(aggressor.Price)
		}
	}
	return false
}
