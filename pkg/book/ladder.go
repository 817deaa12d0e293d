package book

import (
	"sort"

	"github.com/nikolaydubina/fpdecimal"
)

// ladder is one side of the book: live price levels keyed by price, plus the
// side's frontier. Invariant: a price key exists iff at least one order rests
// at that price.
type ladder struct {
	side     Side
	levels   map[fpdecimal.Decimal]*level
	frontier *frontier
	orders   int
}

func newLadder(side Side) *ladder {
	return &ladder{
		side:     side,
		levels:   make(map[fpdecimal.Decimal]*level),
		frontier: newFrontier(side),
	}
}

// append adds an order at the tail of its price level. The price enters the
// frontier only when the level is created, so duplicates accumulate only
// through vacate/refill cycles.
func (l *ladder) append(o *Order) {
	lv, ok := l.levels[o.price]
	if !ok {
		lv = newLevel(o.price)
		l.levels[o.price] = lv
		l.frontier.push(o.price)
	}
	lv.enqueue(o)
	l.orders++
}

// remove unlinks an order and drops its level once empty. The frontier is
// left alone: the vacated price becomes a stale entry purged by a future
// best-price query.
func (l *ladder) remove(o *Order) {
	lv, ok := l.levels[o.price]
	if !ok {
		return
	}
	lv.unlink(o)
	l.orders--
	if lv.count == 0 {
		delete(l.levels, o.price)
	}
}

// best returns the oldest order at the side's best live price, draining
// stale frontier entries on the way. Each stale price is popped exactly
// once, so the total purge work over the ladder's lifetime is bounded by
// the number of level-vacating events.
func (l *ladder) best() *Order {
	for {
		price, ok := l.frontier.peek()
		if !ok {
			return nil
		}
		if lv, live := l.levels[price]; live {
			return lv.head
		}
		l.frontier.drop()
	}
}

// ordersAt returns the live queue at a price in arrival order.
func (l *ladder) ordersAt(price fpdecimal.Decimal) []*Order {
	lv, ok := l.levels[price]
	if !ok {
		return nil
	}
	return lv.orders()
}

// prices returns the live prices best-first.
func (l *ladder) prices() []fpdecimal.Decimal {
	out := make([]fpdecimal.Decimal, 0, len(l.levels))
	for price := range l.levels {
		out = append(out, price)
	}
	sort.Slice(out, func(i, j int) bool {
		if l.side == Bid {
			return out[i].GreaterThan(out[j])
		}
		return out[i].LessThan(out[j])
	})
	return out
}

// compact rebuilds the frontier from the live levels, discarding the
// stale backlog. Purely a footprint concern.
func (l *ladder) compact() {
	live := make([]fpdecimal.Decimal, 0, len(l.levels))
	for price := range l.levels {
		live = append(live, price)
	}
	l.frontier.reset(live)
}
