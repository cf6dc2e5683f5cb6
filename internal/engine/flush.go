package engine

import (
	"github.com/rs/zerolog/log"

	"allocator/internal/book"
	"allocator/internal/common"
)

// Flush reports one implied trade per resting order with a nonzero
// remaining size: BUY for a positive remainder, SELL for a negative one, at
// the order's own limit price. Products are visited in ascending identifier
// order, orders in declaration order. The book is not modified, so the
// session is responsible for flushing only once.
func (engine *Engine) Flush() (int, error) {
	var (
		flushed int
		err     error
	)
	engine.book.Scan(func(order *book.Order) bool {
		if order.Remaining() == 0 {
			return true
		}
		err = engine.report(common.Trade{
			Kind:      common.TradeFlush,
			Side:      order.Side(),
			Quantity:  order.Magnitude(),
			Price:     order.Price,
			Product:   order.Product,
			MessageID: order.MessageID,
		})
		if err != nil {
			return false
		}
		flushed++
		return true
	})

	log.Debug().Int("flushed", flushed).Int("declared", engine.book.Len()).Msg("book flushed")
	return flushed, err
}
