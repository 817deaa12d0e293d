package book

import (
	"container/heap"

	"github.com/nikolaydubina/fpdecimal"
)

// frontier is the best-price priority structure for one side. It holds bare
// price values and is deliberately not kept in sync with the ladder on
// removal: a price whose level has been vacated lingers as a stale entry
// until a best-price query pops it. The bid frontier orders by descending
// price, the ask frontier by ascending price.
type frontier struct {
	prices []fpdecimal.Decimal
	desc   bool
}

func newFrontier(side Side) *frontier {
	return &frontier{desc: side == Bid}
}

func (f *frontier) Len() int { return len(f.prices) }

func (f *frontier) Less(i, j int) bool {
	if f.desc {
		return f.prices[i].GreaterThan(f.prices[j])
	}
	return f.prices[i].LessThan(f.prices[j])
}

func (f *frontier) Swap(i, j int) {
	f.prices[i], f.prices[j] = f.prices[j], f.prices[i]
}

func (f *frontier) Push(x interface{}) {
	f.prices = append(f.prices, x.(fpdecimal.Decimal))
}

func (f *frontier) Pop() interface{} {
	old := f.prices
	n := len(old)
	price := old[n-1]
	f.prices = old[:n-1]
	return price
}

// push inserts a price, O(log n).
func (f *frontier) push(price fpdecimal.Decimal) {
	heap.Push(f, price)
}

// peek returns the current top price without removing it.
func (f *frontier) peek() (fpdecimal.Decimal, bool) {
	if len(f.prices) == 0 {
		return fpdecimal.Zero, false
	}
	return f.prices[0], true
}

// drop discards the top price, O(log n).
func (f *frontier) drop() {
	heap.Pop(f)
}

// reset replaces the frontier contents with the given prices.
func (f *frontier) reset(prices []fpdecimal.Decimal) {
	f.prices = prices
	heap.Init(f)
}
