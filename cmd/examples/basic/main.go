package main

import (
	"fmt"

	"github.com/nikolaydubina/fpdecimal"

	"github.com/tidefall/ladderbook/pkg/book"
)

func main() {
	b := book.NewBook()

	// Seed both sides
	orders := []struct {
		id    int64
		side  book.Side
		price float64
		qty   int
	}{
		{1, book.Bid, 100.0, 10},
		{2, book.Bid, 101.0, 5},
		{3, book.Bid, 99.0, 8},
		{4, book.Ask, 102.0, 15},
		{5, book.Ask, 103.0, 12},
		{6, book.Ask, 101.0, 7},
	}

	for _, row := range orders {
		o, err := book.NewOrder(row.id, row.side, fpdecimal.FromInt(row.qty), fpdecimal.FromFloat(row.price))
		if err != nil {
			panic(err)
		}
		if err := b.Add(o); err != nil {
			panic(err)
		}
	}

	fmt.Printf("Best bid: %s\n", b.BestBid())
	fmt.Printf("Best ask: %s\n", b.BestAsk())
	fmt.Println()

	fmt.Printf("Lookup order 2: %s\n", b.GetOrder(2))
	fmt.Println()

	at101 := b.OrdersAt(fpdecimal.FromFloat(101.0), book.FilterBoth)
	fmt.Printf("Orders at price 101.0: %v\n", at101)
	fmt.Println()

	b.Amend(1, fpdecimal.FromInt(20))
	fmt.Printf("After amending order 1 quantity to 20: %s\n", b.GetOrder(1))
	fmt.Println()

	b.Cancel(3)
	fmt.Printf("After canceling order 3, lookup returns: %v\n", b.GetOrder(3))
	fmt.Println()

	fmt.Printf("Final best bid: %s\n", b.BestBid())
	fmt.Printf("Final best ask: %s\n", b.BestAsk())
	fmt.Println()

	fmt.Println("Book state:")
	fmt.Print(b.String())
}
