package book

import (
	"testing"

	"github.com/nikolaydubina/fpdecimal"
)

func levelOrder(id int64, qty int) *Order {
	return &Order{id: id, side: Bid, price: fpdecimal.FromFloat(100.0), quantity: fpdecimal.FromInt(qty)}
}

func TestLevelFIFO(t *testing.T) {
	lv := newLevel(fpdecimal.FromFloat(100.0))
	for i := int64(1); i <= 4; i++ {
		lv.enqueue(levelOrder(i, 1))
	}

	got := lv.orders()
	if len(got) != 4 {
		t.Fatalf("Expected 4 orders, got %d", len(got))
	}
	for i, o := range got {
		if o.ID() != int64(i+1) {
			t.Errorf("Position %d: expected ID %d, got %d", i, i+1, o.ID())
		}
	}
}

func TestLevelUnlink(t *testing.T) {
	lv := newLevel(fpdecimal.FromFloat(100.0))
	orders := make([]*Order, 0, 3)
	for i := int64(1); i <= 3; i++ {
		o := levelOrder(i, 1)
		orders = append(orders, o)
		lv.enqueue(o)
	}

	// Middle removal
	lv.unlink(orders[1])
	got := lv.orders()
	if len(got) != 2 || got[0].ID() != 1 || got[1].ID() != 3 {
		t.Fatalf("Expected [1 3], got %v", got)
	}
	if orders[1].next != nil || orders[1].prev != nil {
		t.Error("Expected unlinked order's links to be cleared")
	}

	// Head removal
	lv.unlink(orders[0])
	got = lv.orders()
	if len(got) != 1 || got[0].ID() != 3 {
		t.Fatalf("Expected [3], got %v", got)
	}

	// Tail removal empties the level
	lv.unlink(orders[2])
	if lv.count != 0 || lv.head != nil || lv.tail != nil {
		t.Error("Expected empty level after removing all orders")
	}
}

func TestLevelTotalQuantity(t *testing.T) {
	lv := newLevel(fpdecimal.FromFloat(100.0))
	lv.enqueue(levelOrder(1, 10))
	lv.enqueue(levelOrder(2, 5))

	if !lv.totalQuantity().Equal(fpdecimal.FromInt(15)) {
		t.Errorf("Expected total 15, got %v", lv.totalQuantity())
	}
}
