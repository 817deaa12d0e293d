package book

import (
	"github.com/nikolaydubina/fpdecimal"
)

// level is one price level: a FIFO queue of orders resting at the same
// price, linked through the orders themselves. The ladder removes a level
// as soon as its last order is unlinked, so a reachable level is never empty.
type level struct {
	price fpdecimal.Decimal
	head  *Order
	tail  *Order
	count int
}

func newLevel(price fpdecimal.Decimal) *level {
	return &level{price: price}
}

// enqueue appends at the tail, preserving time priority.
func (l *level) enqueue(o *Order) {
	if l.head == nil {
		l.head = o
		l.tail = o
	} else {
		l.tail.next = o
		o.prev = l.tail
		l.tail = o
	}
	l.count++
}

// unlink removes one order, keeping the relative order of the rest.
func (l *level) unlink(o *Order) {
	if o.prev != nil {
		o.prev.next = o.next
	} else {
		l.head = o.next
	}
	if o.next != nil {
		o.next.prev = o.prev
	} else {
		l.tail = o.prev
	}
	o.next = nil
	o.prev = nil
	l.count--
}

// orders materializes the queue in arrival order.
func (l *level) orders() []*Order {
	out := make([]*Order, 0, l.count)
	for o := l.head; o != nil; o = o.next {
		out = append(out, o)
	}
	return out
}

// totalQuantity sums resting quantity. Not cached: amends go through the
// identity index only and must not have to touch the ladder.
func (l *level) totalQuantity() fpdecimal.Decimal {
	total := fpdecimal.Zero
	for o := l.head; o != nil; o = o.next {
		total = total.Add(o.quantity)
	}
	return total
}
