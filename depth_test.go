package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderBook_Depth(t *testing.T) {
	book := newTestBook()

	book.Add(GoodTillCancel, 1, Buy, 100, 5)
	book.Add(GoodTillCancel, 2, Buy, 100, 3)
	book.Add(GoodTillCancel, 3, Buy, 99, 10)
	book.Add(GoodTillCancel, 4, Sell, 105, 4)

	bidDepth := book.Depth(Buy)
	assert.Equal(t, 2, bidDepth.Len())
	qty, ok := bidDepth.Get(100)
	require.True(t, ok)
	assert.Equal(t, Quantity(8), qty)
	qty, ok = bidDepth.Get(99)
	require.True(t, ok)
	assert.Equal(t, Quantity(10), qty)

	it := bidDepth.Iterator()
	require.True(t, it.Valid())
	assert.Equal(t, Price(100), it.Key(), "best bid (highest price) iterates first")

	askDepth := book.Depth(Sell)
	assert.Equal(t, 1, askDepth.Len())
}
