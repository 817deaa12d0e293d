package book

import (
	"sort"

	"github.com/nikolaydubina/fpdecimal"
)

// NaiveBook is the reference baseline: two flat slices re-sorted after every
// mutation, O(n log n) per operation and O(n) lookups. It exists as a
// comparison target for cmd/loadtest and as the oracle for randomized tests;
// it is not the structure to use. The sorts are stable so orders at equal
// prices keep arrival order, the same time-priority contract Book honors.
type NaiveBook struct {
	bids []*Order
	asks []*Order
}

// NewNaiveBook creates an empty NaiveBook.
func NewNaiveBook() *NaiveBook {
	return &NaiveBook{}
}

// Add inserts a resting order and re-sorts its side.
func (b *NaiveBook) Add(o *Order) error {
	if o == nil {
		return ErrInvalidArgument
	}

	switch o.side {
	case Bid, Ask:
	default:
		return ErrInvalidSide
	}

	if b.GetOrder(o.id) != nil {
		return ErrDuplicateOrder
	}

	if o.side == Bid {
		b.bids = append(b.bids, o)
		sortSide(b.bids, Bid)
	} else {
		b.asks = append(b.asks, o)
		sortSide(b.asks, Ask)
	}
	return nil
}

// Amend scans both sides for the order and updates its quantity.
func (b *NaiveBook) Amend(id int64, quantity fpdecimal.Decimal) bool {
	if quantity.LessThan(fpdecimal.Zero) {
		return false
	}

	o := b.GetOrder(id)
	if o == nil {
		return false
	}

	o.quantity = quantity
	return true
}

// Cancel scans both sides for the order and removes it.
func (b *NaiveBook) Cancel(id int64) bool {
	for i, o := range b.bids {
		if o.id == id {
			b.bids = append(b.bids[:i], b.bids[i+1:]...)
			return true
		}
	}
	for i, o := range b.asks {
		if o.id == id {
			b.asks = append(b.asks[:i], b.asks[i+1:]...)
			return true
		}
	}
	return false
}

// GetOrder returns the order with the given identifier, or nil. O(n).
func (b *NaiveBook) GetOrder(id int64) *Order {
	for _, o := range b.bids {
		if o.id == id {
			return o
		}
	}
	for _, o := range b.asks {
		if o.id == id {
			return o
		}
	}
	return nil
}

// OrdersAt returns the orders resting at a price, bids before asks.
func (b *NaiveBook) OrdersAt(price fpdecimal.Decimal, filter SideFilter) []*Order {
	var out []*Order

	if filter == FilterBid || filter == FilterBoth {
		for _, o := range b.bids {
			if o.price.Equal(price) {
				out = append(out, o)
			}
		}
	}
	if filter == FilterAsk || filter == FilterBoth {
		for _, o := range b.asks {
			if o.price.Equal(price) {
				out = append(out, o)
			}
		}
	}

	return out
}

// BestBid returns the first bid after the descending sort, or nil.
func (b *NaiveBook) BestBid() *Order {
	if len(b.bids) == 0 {
		return nil
	}
	return b.bids[0]
}

// BestAsk returns the first ask after the ascending sort, or nil.
func (b *NaiveBook) BestAsk() *Order {
	if len(b.asks) == 0 {
		return nil
	}
	return b.asks[0]
}

// Best returns the side's best order, or nil.
func (b *NaiveBook) Best(side Side) *Order {
	switch side {
	case Bid:
		return b.BestBid()
	case Ask:
		return b.BestAsk()
	default:
		return nil
	}
}

// BestBidAsk returns both sides' best orders.
func (b *NaiveBook) BestBidAsk() (*Order, *Order) {
	return b.BestBid(), b.BestAsk()
}

// Len returns the number of live orders in the book.
func (b *NaiveBook) Len() int {
	return len(b.bids) + len(b.asks)
}

func sortSide(orders []*Order, side Side) {
	sort.SliceStable(orders, func(i, j int) bool {
		if side == Bid {
			return orders[i].price.GreaterThan(orders[j].price)
		}
		return orders[i].price.LessThan(orders[j].price)
	})
}
