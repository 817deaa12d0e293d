package book

import (
	"encoding/json"
	"fmt"

	"github.com/nikolaydubina/fpdecimal"
)

// Side represents the bid or ask side of the book
type Side int

// Book sides
const (
	Bid Side = iota
	Ask
)

// String returns side as string
func (s Side) String() string {
	switch s {
	case Bid:
		return "BID"
	case Ask:
		return "ASK"
	default:
		return "UNKNOWN"
	}
}

// ParseSide converts a side token ("bid"/"ask", case-insensitive) to a Side
func ParseSide(token string) (Side, error) {
	switch token {
	case "bid", "BID", "Bid", "buy", "BUY":
		return Bid, nil
	case "ask", "ASK", "Ask", "sell", "SELL":
		return Ask, nil
	default:
		return Side(-1), fmt.Errorf("%w: %q", ErrInvalidSide, token)
	}
}

// SideFilter selects which sides OrdersAt reads from
type SideFilter int

// Side filters
const (
	FilterBid SideFilter = iota
	FilterAsk
	FilterBoth
)

// Order is a resting order. The identity index owns the canonical value;
// price levels hold the same pointer, so an amend is visible from both paths.
// Identifier, price and side are immutable after creation.
type Order struct {
	id       int64
	side     Side
	price    fpdecimal.Decimal
	quantity fpdecimal.Decimal

	// intrusive FIFO links, managed by the order's price level
	next *Order
	prev *Order
}

// NewOrder creates a resting order. The side must be Bid or Ask and the
// quantity must be non-negative; the price may be any value, including
// zero or negative.
func NewOrder(id int64, side Side, quantity, price fpdecimal.Decimal) (*Order, error) {
	if side != Bid && side != Ask {
		return nil, ErrInvalidSide
	}

	if quantity.LessThan(fpdecimal.Zero) {
		return nil, ErrInvalidQuantity
	}

	return &Order{
		id:       id,
		side:     side,
		price:    price,
		quantity: quantity,
	}, nil
}

// ID returns the order identifier
func (o *Order) ID() int64 {
	return o.id
}

// Side returns the side of the order
func (o *Order) Side() Side {
	return o.side
}

// Price returns the Price field copy
func (o *Order) Price() fpdecimal.Decimal {
	return o.price
}

// Quantity returns the Quantity field copy
func (o *Order) Quantity() fpdecimal.Decimal {
	return o.quantity
}

// SetQuantity sets the Quantity field. Callers outside the book should go
// through Book.Amend so the non-negativity contract is enforced.
func (o *Order) SetQuantity(quantity fpdecimal.Decimal) {
	o.quantity = quantity
}

// MarshalJSON implements custom JSON marshaling for Order
func (o *Order) MarshalJSON() ([]byte, error) {
	return json.Marshal(orderJSON{
		ID:       o.id,
		Side:     o.side.String(),
		Price:    o.price.String(),
		Quantity: o.quantity.String(),
	})
}

// UnmarshalJSON implements custom JSON unmarshaling for Order
func (o *Order) UnmarshalJSON(data []byte) error {
	var aux orderJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	side, err := ParseSide(aux.Side)
	if err != nil {
		return err
	}

	price, err := fpdecimal.FromString(aux.Price)
	if err != nil {
		return err
	}

	quantity, err := fpdecimal.FromString(aux.Quantity)
	if err != nil {
		return err
	}

	o.id = aux.ID
	o.side = side
	o.price = price
	o.quantity = quantity
	o.next = nil
	o.prev = nil

	return nil
}

type orderJSON struct {
	ID       int64  `json:"id"`
	Side     string `json:"side"`
	Price    string `json:"price"`
	Quantity string `json:"quantity"`
}

// String implements fmt.Stringer interface
func (o *Order) String() string {
	j, _ := o.MarshalJSON()
	return string(j)
}
