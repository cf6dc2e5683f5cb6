package book

import (
	"github.com/shopspring/decimal"
	"github.com/tidwall/btree"

	"allocator/internal/common"
)

// ProductOrders is the resting sequence for one product. Orders are kept in
// declaration order, which is their allocation priority.
type ProductOrders struct {
	product string
	orders  []*Order
}

type Products = btree.BTreeG[*ProductOrders]

// Book owns every resting order of a session, indexed by product.
type Book struct {
	products *Products

	// Some book keeping
	nOrders int // Track the number of declarations, including exhausted ones.
}

func New() *Book {
	// Sorted by product identifier so that a full scan is deterministic.
	products := btree.NewBTreeG(func(a, b *ProductOrders) bool {
		return a.product < b.product
	})
	return &Book{products: products}
}

// Declare appends a resting order to the product's sequence, creating the
// sequence on first use. size is a magnitude: it is stored negated for a SELL
// and as-is for any other side tag. The message ID is kept on the order only.
func (b *Book) Declare(messageID string, side common.Side, size int64, price decimal.Decimal, product string) *Order {
	order := newOrder(messageID, side, size, price, product)

	// The comparator only looks at the product, so a dummy entry is enough
	// for the search.
	entry, ok := b.products.GetMut(&ProductOrders{product: product})
	if ok {
		entry.orders = append(entry.orders, order)
	} else {
		b.products.Set(&ProductOrders{
			product: product,
			orders:  []*Order{order},
		})
	}

	b.nOrders++
	return order
}

// Orders returns the product's resting orders in allocation priority. The
// slice aliases the book; callers may mutate orders through it but must not
// reorder it.
func (b *Book) Orders(product string) []*Order {
	entry, ok := b.products.Get(&ProductOrders{product: product})
	if !ok {
		return nil
	}
	return entry.orders
}

// Scan visits every order, products in ascending identifier order and
// orders within a product in declaration order. Returning false stops the scan.
func (b *Book) Scan(iter func(order *Order) bool) {
	b.products.Scan(func(entry *ProductOrders) bool {
		for _, order := range entry.orders {
			if !iter(order) {
				return false
			}
		}
		return true
	})
}

// Len returns the number of orders ever declared.
func (b *Book) Len() int { return b.nOrders }

// Products returns the number of products with at least one declaration.
func (b *Book) Products() int { return b.products.Len() }
