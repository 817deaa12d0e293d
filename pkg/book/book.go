// Package book maintains a two-sided, price-ordered collection of resting
// orders for a single instrument. It keeps three structures mutually
// consistent: an identity index (order ID to order), a price ladder per side
// (price to FIFO queue), and a best-price frontier per side (a price heap
// that tolerates stale entries and purges them lazily on best-price queries).
//
// The package does no matching, persistence, or locking: a Book instance
// assumes single-threaded access, and callers that share one across
// goroutines must serialize externally or shard one Book per instrument.
package book

import (
	"fmt"
	"strings"

	"github.com/nikolaydubina/fpdecimal"
)

// Book is the order book engine for one instrument.
type Book struct {
	orders map[int64]*Order
	bids   *ladder
	asks   *ladder
}

// NewBook creates an empty Book.
func NewBook() *Book {
	return &Book{
		orders: make(map[int64]*Order),
		bids:   newLadder(Bid),
		asks:   newLadder(Ask),
	}
}

// Add inserts a resting order. It fails with ErrDuplicateOrder when the
// identifier is already present and ErrInvalidSide when the side is not Bid
// or Ask; either failure leaves the book untouched. Cost is O(log n) when
// the order opens a new price level, O(1) otherwise.
func (b *Book) Add(o *Order) error {
	if o == nil {
		return ErrInvalidArgument
	}

	switch o.side {
	case Bid, Ask:
	default:
		return ErrInvalidSide
	}

	if _, exists := b.orders[o.id]; exists {
		return ErrDuplicateOrder
	}

	b.orders[o.id] = o
	b.sideLadder(o.side).append(o)
	return nil
}

// Amend changes an order's quantity in place through the identity index.
// It reports whether the order was found; a negative quantity amends
// nothing and reports false. Price never changes, so neither ladder nor
// frontier is touched. O(1).
func (b *Book) Amend(id int64, quantity fpdecimal.Decimal) bool {
	if quantity.LessThan(fpdecimal.Zero) {
		return false
	}

	o, ok := b.orders[id]
	if !ok {
		return false
	}

	o.quantity = quantity
	return true
}

// Cancel removes an order from the identity index and its price level,
// reporting whether it was found. The frontier keeps the vacated price as a
// stale entry; a future best-price query pays for the cleanup.
func (b *Book) Cancel(id int64) bool {
	o, ok := b.orders[id]
	if !ok {
		return false
	}

	delete(b.orders, id)
	b.sideLadder(o.side).remove(o)
	return true
}

// GetOrder returns the order with the given identifier, or nil. O(1).
func (b *Book) GetOrder(id int64) *Order {
	return b.orders[id]
}

// OrdersAt returns the live orders resting at a price, in arrival order,
// filtered by side. With FilterBoth, bids precede asks. The result is empty,
// never an error, when nothing rests at the price.
func (b *Book) OrdersAt(price fpdecimal.Decimal, filter SideFilter) []*Order {
	var out []*Order

	if filter == FilterBid || filter == FilterBoth {
		out = append(out, b.bids.ordersAt(price)...)
	}
	if filter == FilterAsk || filter == FilterBoth {
		out = append(out, b.asks.ordersAt(price)...)
	}

	return out
}

// Best returns the oldest order at the side's best live price, or nil when
// the side is empty. Stale frontier entries found on the way are discarded,
// which is what makes Cancel's lazy-deletion policy amortized O(log n).
func (b *Book) Best(side Side) *Order {
	switch side {
	case Bid, Ask:
		return b.sideLadder(side).best()
	default:
		return nil
	}
}

// BestBid returns the highest-priced live bid, or nil.
func (b *Book) BestBid() *Order {
	return b.bids.best()
}

// BestAsk returns the lowest-priced live ask, or nil.
func (b *Book) BestAsk() *Order {
	return b.asks.best()
}

// BestBidAsk returns both sides' best orders, each evaluated independently.
func (b *Book) BestBidAsk() (*Order, *Order) {
	return b.bids.best(), b.asks.best()
}

// Len returns the number of live orders in the book.
func (b *Book) Len() int {
	return len(b.orders)
}

// SideLen returns the number of live orders on one side.
func (b *Book) SideLen(side Side) int {
	switch side {
	case Bid, Ask:
		return b.sideLadder(side).orders
	default:
		return 0
	}
}

// Prices returns the side's live prices best-first.
func (b *Book) Prices(side Side) []fpdecimal.Decimal {
	switch side {
	case Bid, Ask:
		return b.sideLadder(side).prices()
	default:
		return nil
	}
}

// LevelSnapshot describes one live price level.
type LevelSnapshot struct {
	Price    fpdecimal.Decimal
	Orders   int
	Quantity fpdecimal.Decimal
}

// Levels returns a best-first depth snapshot of one side.
func (b *Book) Levels(side Side) []LevelSnapshot {
	switch side {
	case Bid, Ask:
	default:
		return nil
	}

	l := b.sideLadder(side)
	prices := l.prices()
	out := make([]LevelSnapshot, 0, len(prices))
	for _, price := range prices {
		lv := l.levels[price]
		out = append(out, LevelSnapshot{
			Price:    price,
			Orders:   lv.count,
			Quantity: lv.totalQuantity(),
		})
	}
	return out
}

// Compact rebuilds both frontiers from live prices, dropping the stale
// backlog accumulated by cancels. Not needed for correctness; useful for a
// long-running book whose price levels churn.
func (b *Book) Compact() {
	b.bids.compact()
	b.asks.compact()
}

// String implements fmt.Stringer interface
func (b *Book) String() string {
	builder := strings.Builder{}

	builder.WriteString("Ask:")
	writeSide(&builder, b, Ask)
	builder.WriteString("\n")

	builder.WriteString("Bid:")
	writeSide(&builder, b, Bid)
	builder.WriteString("\n")

	return builder.String()
}

func writeSide(builder *strings.Builder, b *Book, side Side) {
	for _, lv := range b.Levels(side) {
		builder.WriteString(fmt.Sprintf("\n%s -> orders: %d, quantity: %s",
			lv.Price.String(), lv.Orders, lv.Quantity.String()))
	}
}

func (b *Book) sideLadder(side Side) *ladder {
	if side == Bid {
		return b.bids
	}
	return b.asks
}
