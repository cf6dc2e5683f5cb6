package engine

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"allocator/internal/book"
	"allocator/internal/common"
)

// This is the allocation engine: one book, one position, one reporter.
// It is not safe for concurrent use; a session drives it from a single loop.

// Reporter receives trades in the order they are produced. An error stops
// the operation that produced the trade.
type Reporter interface {
	ReportTrade(trade common.Trade) error
}

type discardReporter struct{}

func (discardReporter) ReportTrade(common.Trade) error { return nil }

type Option func(*Engine)

func WithFillMode(mode FillMode) Option {
	return func(engine *Engine) {
		engine.fillMode = mode
	}
}

func WithCrossingMode(mode CrossingMode) Option {
	return func(engine *Engine) {
		engine.crossing = mode
	}
}

// WithTradeIDs replaces the default random trade identifiers.
func WithTradeIDs(next func() string) Option {
	return func(engine *Engine) {
		engine.nextTradeID = next
	}
}

type Engine struct {
	book     *book.Book
	position *Position
	reporter Reporter

	fillMode    FillMode
	crossing    CrossingMode
	nextTradeID func() string
}

func New(maxPosition int64, opts ...Option) *Engine {
	engine := &Engine{
		book:        book.New(),
		position:    NewPosition(maxPosition),
		reporter:    discardReporter{},
		nextTradeID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(engine)
	}
	return engine
}

func (engine *Engine) SetReporter(reporter Reporter) {
	if reporter == nil {
		reporter = discardReporter{}
	}
	engine.reporter = reporter
}

func (engine *Engine) Book() *book.Book       { return engine.book }
func (engine *Engine) Position() *Position    { return engine.position }
func (engine *Engine) FillMode() FillMode     { return engine.fillMode }
func (engine *Engine) Crossing() CrossingMode { return engine.crossing }

// Declare rests a DF order in the book. It never trades.
func (engine *Engine) Declare(order common.Order) *book.Order {
	resting := engine.book.Declare(order.MessageID, order.Side, order.Size, order.Price, order.Product)
	log.Debug().
		Str("message_id", order.MessageID).
		Str("product", order.Product).
		Int64("remaining", resting.Remaining()).
		Str("price", order.Price.String()).
		Msg("order declared")
	return resting
}

// report stamps the trade with an identifier and hands it to the reporter.
func (engine *Engine) report(trade common.Trade) error {
	trade.ID = engine.nextTradeID()
	log.Debug().
		Str("trade_id", trade.ID).
		Stringer("kind", trade.Kind).
		Stringer("side", trade.Side).
		Int64("quantity", trade.Quantity).
		Str("price", trade.Price.String()).
		Str("product", trade.Product).
		Int64("position", engine.position.Current()).
		Msg("trade")
	return engine.reporter.ReportTrade(trade)
}
