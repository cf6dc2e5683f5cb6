package wire

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"allocator/internal/common"
)

// AppendTrade appends the report line for a trade, newline included:
// side, quantity, price and product separated by tabs. Fill and flush trades
// share the format.
func AppendTrade(buf []byte, trade common.Trade) []byte {
	buf = append(buf, trade.Side.String()...)
	buf = append(buf, fieldSep...)
	buf = strconv.AppendInt(buf, trade.Quantity, 10)
	buf = append(buf, fieldSep...)
	buf = append(buf, FormatPrice(trade.Price)...)
	buf = append(buf, fieldSep...)
	buf = append(buf, trade.Product...)
	return append(buf, '\n')
}

// FormatTrade is AppendTrade into a fresh string, without the newline.
func FormatTrade(trade common.Trade) string {
	line := AppendTrade(nil, trade)
	return string(line[:len(line)-1])
}

// FormatPrice prints the shortest exact form of a price with at least one
// fractional digit: 100 prints as 100.0, 10.50 as 10.5.
func FormatPrice(price decimal.Decimal) string {
	s := price.String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
