package book

import "github.com/nikolaydubina/fpdecimal"

// Keeper is the bookkeeping call surface shared by the efficient Book and
// the baseline NaiveBook, so harnesses and tests can drive either.
type Keeper interface {
	Add(o *Order) error
	Amend(id int64, quantity fpdecimal.Decimal) bool
	Cancel(id int64) bool
	GetOrder(id int64) *Order
	OrdersAt(price fpdecimal.Decimal, filter SideFilter) []*Order
	Best(side Side) *Order
	BestBid() *Order
	BestAsk() *Order
	BestBidAsk() (*Order, *Order)
	Len() int
}

var (
	_ Keeper = (*Book)(nil)
	_ Keeper = (*NaiveBook)(nil)
)
