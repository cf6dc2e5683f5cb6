package engine_test

import (
	"errors"
	"strconv"

	"github.com/shopspring/decimal"

	"allocator/internal/book"
	"allocator/internal/common"
	"allocator/internal/engine"
	"allocator/internal/wire"
)

// --- Setup & Helpers --------------------------------------------------------

var errReportFailed = errors.New("report failed")

// CollectReporter records every trade and can be told to fail.
type CollectReporter struct {
	Trades    []common.Trade
	FailAfter int // Fail on the report after this many succeeded; 0 never fails
}

func (r *CollectReporter) ReportTrade(trade common.Trade) error {
	if r.FailAfter > 0 && len(r.Trades) >= r.FailAfter {
		return errReportFailed
	}
	r.Trades = append(r.Trades, trade)
	return nil
}

// Lines renders the collected trades as report lines.
func (r *CollectReporter) Lines() []string {
	lines := make([]string, 0, len(r.Trades))
	for _, trade := range r.Trades {
		lines = append(lines, wire.FormatTrade(trade))
	}
	return lines
}

func (r *CollectReporter) Reset() { r.Trades = nil }

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return "t" + strconv.Itoa(n)
	}
}

func createTestEngine(maxPosition int64, opts ...engine.Option) (*engine.Engine, *CollectReporter) {
	opts = append([]engine.Option{engine.WithTradeIDs(sequentialIDs())}, opts...)
	eng := engine.New(maxPosition, opts...)
	reporter := &CollectReporter{}
	eng.SetReporter(reporter)
	return eng, reporter
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func order(id string, side common.Side, size int64, p string, product string) common.Order {
	return common.Order{
		MessageID: id,
		Side:      side,
		Size:      size,
		Price:     price(p),
		Product:   product,
	}
}

// declareTestOrders rests one DF order per size, all at the same price.
func declareTestOrders(eng *engine.Engine, side common.Side, p string, product string, sizes ...int64) {
	for i, size := range sizes {
		eng.Declare(order("df"+strconv.Itoa(i+1), side, size, p, product))
	}
}

// remaining lists the signed remaining sizes of a product's orders.
func remaining(eng *engine.Engine, product string) []int64 {
	orders := eng.Book().Orders(product)
	out := make([]int64, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.Remaining())
	}
	return out
}

type bookOrder = book.Order

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
