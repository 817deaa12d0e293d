package book

import (
	"testing"

	"github.com/nikolaydubina/fpdecimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNaiveBookBasics(t *testing.T) {
	b := NewNaiveBook()
	require.NoError(t, b.Add(mustOrder(t, 1, Bid, 10, 100.0)))
	require.NoError(t, b.Add(mustOrder(t, 2, Bid, 5, 101.0)))
	require.NoError(t, b.Add(mustOrder(t, 4, Ask, 15, 102.0)))

	bid, ask := b.BestBidAsk()
	require.NotNil(t, bid)
	require.NotNil(t, ask)
	assert.Equal(t, int64(2), bid.ID())
	assert.Equal(t, int64(4), ask.ID())

	assert.True(t, b.Cancel(2))
	bid = b.BestBid()
	require.NotNil(t, bid)
	assert.Equal(t, int64(1), bid.ID())

	assert.Equal(t, 2, b.Len())
}

func TestNaiveBookDuplicateRejected(t *testing.T) {
	b := NewNaiveBook()
	require.NoError(t, b.Add(mustOrder(t, 1, Bid, 10, 100.0)))
	assert.ErrorIs(t, b.Add(mustOrder(t, 1, Ask, 1, 200.0)), ErrDuplicateOrder)
	assert.Equal(t, 1, b.Len())
}

func TestNaiveBookInvalidSide(t *testing.T) {
	b := NewNaiveBook()
	o := mustOrder(t, 1, Bid, 10, 100.0)
	o.side = Side(8)
	assert.ErrorIs(t, b.Add(o), ErrInvalidSide)
	assert.ErrorIs(t, b.Add(nil), ErrInvalidArgument)
}

func TestNaiveBookStableTies(t *testing.T) {
	// Equal-price orders keep arrival order: time priority is the
	// contract, not a sorting accident.
	b := NewNaiveBook()
	for id := int64(1); id <= 4; id++ {
		require.NoError(t, b.Add(mustOrder(t, id, Ask, 1, 100.0)))
	}
	require.NoError(t, b.Add(mustOrder(t, 9, Ask, 1, 99.0)))

	best := b.BestAsk()
	require.NotNil(t, best)
	assert.Equal(t, int64(9), best.ID())

	require.True(t, b.Cancel(9))
	got := b.OrdersAt(fpdecimal.FromFloat(100.0), FilterAsk)
	require.Len(t, got, 4)
	for i, o := range got {
		assert.Equal(t, int64(i+1), o.ID())
	}
	assert.Equal(t, int64(1), b.BestAsk().ID())
}

func TestNaiveBookAmend(t *testing.T) {
	b := NewNaiveBook()
	require.NoError(t, b.Add(mustOrder(t, 1, Bid, 10, 100.0)))

	assert.True(t, b.Amend(1, fpdecimal.FromInt(3)))
	assert.True(t, b.GetOrder(1).Quantity().Equal(fpdecimal.FromInt(3)))

	assert.False(t, b.Amend(1, fpdecimal.FromInt(-3)))
	assert.False(t, b.Amend(77, fpdecimal.FromInt(3)))
}

func TestNaiveBookEmpty(t *testing.T) {
	b := NewNaiveBook()
	assert.Nil(t, b.BestBid())
	assert.Nil(t, b.BestAsk())
	assert.Nil(t, b.Best(Side(5)))
	assert.Nil(t, b.GetOrder(1))
	assert.False(t, b.Cancel(1))
}
