package book

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/nikolaydubina/fpdecimal"
)

func TestSideString(t *testing.T) {
	tests := []struct {
		name string
		side Side
		want string
	}{
		{"Bid", Bid, "BID"},
		{"Ask", Ask, "ASK"},
		{"Invalid", Side(999), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.side.String(); got != tt.want {
				t.Errorf("Side.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseSide(t *testing.T) {
	tests := []struct {
		token   string
		want    Side
		wantErr bool
	}{
		{"bid", Bid, false},
		{"BID", Bid, false},
		{"buy", Bid, false},
		{"ask", Ask, false},
		{"ASK", Ask, false},
		{"sell", Ask, false},
		{"mid", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseSide(tt.token)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseSide(%q) expected error", tt.token)
				}
				if !errors.Is(err, ErrInvalidSide) {
					t.Errorf("ParseSide(%q) error = %v, want ErrInvalidSide", tt.token, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSide(%q) unexpected error: %v", tt.token, err)
			}
			if got != tt.want {
				t.Errorf("ParseSide(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestNewOrder(t *testing.T) {
	quantity := fpdecimal.FromInt(10)
	price := fpdecimal.FromFloat(100.5)

	order, err := NewOrder(42, Bid, quantity, price)
	if err != nil {
		t.Fatalf("NewOrder returned an error: %v", err)
	}

	if order.ID() != 42 {
		t.Errorf("Expected ID 42, got %d", order.ID())
	}

	if order.Side() != Bid {
		t.Errorf("Expected Side Bid, got %v", order.Side())
	}

	if !order.Quantity().Equal(quantity) {
		t.Errorf("Expected Quantity %v, got %v", quantity, order.Quantity())
	}

	if !order.Price().Equal(price) {
		t.Errorf("Expected Price %v, got %v", price, order.Price())
	}
}

func TestNewOrderInvalidSide(t *testing.T) {
	_, err := NewOrder(1, Side(7), fpdecimal.FromInt(1), fpdecimal.FromInt(100))
	if !errors.Is(err, ErrInvalidSide) {
		t.Errorf("Expected ErrInvalidSide, got %v", err)
	}
}

func TestNewOrderNegativeQuantity(t *testing.T) {
	_, err := NewOrder(1, Ask, fpdecimal.FromInt(-1), fpdecimal.FromInt(100))
	if !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("Expected ErrInvalidQuantity, got %v", err)
	}
}

func TestNewOrderZeroQuantity(t *testing.T) {
	// Zero quantity is allowed; only negatives are rejected.
	if _, err := NewOrder(1, Ask, fpdecimal.Zero, fpdecimal.FromInt(100)); err != nil {
		t.Errorf("NewOrder with zero quantity returned an error: %v", err)
	}
}

func TestNewOrderNegativePrice(t *testing.T) {
	// Prices are any finite numeric value, including negative.
	order, err := NewOrder(1, Bid, fpdecimal.FromInt(5), fpdecimal.FromFloat(-2.5))
	if err != nil {
		t.Fatalf("NewOrder with negative price returned an error: %v", err)
	}
	if !order.Price().Equal(fpdecimal.FromFloat(-2.5)) {
		t.Errorf("Expected Price -2.5, got %v", order.Price())
	}
}

func TestOrderJSONRoundTrip(t *testing.T) {
	order, err := NewOrder(7, Ask, fpdecimal.FromFloat(2.5), fpdecimal.FromFloat(101.25))
	if err != nil {
		t.Fatalf("NewOrder returned an error: %v", err)
	}

	data, err := json.Marshal(order)
	if err != nil {
		t.Fatalf("Marshal returned an error: %v", err)
	}

	var decoded Order
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal returned an error: %v", err)
	}

	if decoded.ID() != order.ID() {
		t.Errorf("Expected ID %d, got %d", order.ID(), decoded.ID())
	}
	if decoded.Side() != order.Side() {
		t.Errorf("Expected Side %v, got %v", order.Side(), decoded.Side())
	}
	if !decoded.Price().Equal(order.Price()) {
		t.Errorf("Expected Price %v, got %v", order.Price(), decoded.Price())
	}
	if !decoded.Quantity().Equal(order.Quantity()) {
		t.Errorf("Expected Quantity %v, got %v", order.Quantity(), decoded.Quantity())
	}
}
