package common

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Trade is a single reported execution. Fill trades carry the aggressor's
// price; flush trades carry the resting order's own limit price.
type Trade struct {
	ID        string
	Kind      TradeKind
	Side      Side
	Quantity  int64
	Price     decimal.Decimal
	Product   string
	MessageID string // Aggressor message for fills, resting message for flushes
}

func (t Trade) String() string {
	return fmt.Sprintf(
		`ID:        %s
Kind:      %v
Side:      %v
Quantity:  %d
Price:     %s
Product:   %s
MessageID: %s`,
		t.ID,
		t.Kind,
		t.Side,
		t.Quantity,
		t.Price.String(),
		t.Product,
		t.MessageID,
	)
}
