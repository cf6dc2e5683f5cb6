package common

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Order is an order request as it arrives on the input stream, before it is
// declared into the book or executed against it.
type Order struct {
	MessageID string          // Carried through, never used as a key
	Side      Side            // Declared side
	Size      int64           // Magnitude as supplied
	Price     decimal.Decimal // Limit price
	Product   string          // Product identifier
}

func (order Order) String() string {
	return fmt.Sprintf(
		`MessageID: %s
Side:      %v
Size:      %d
Price:     %s
Product:   %s`,
		order.MessageID,
		order.Side,
		order.Size,
		order.Price.String(),
		order.Product,
	)
}
