package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceLevel_PushPopFront(t *testing.T) {
	lvl := newPriceLevel(100)
	assert.True(t, lvl.empty())

	a := &Order{ID: 1}
	b := &Order{ID: 2}
	c := &Order{ID: 3}
	lvl.pushBack(a)
	lvl.pushBack(b)
	lvl.pushBack(c)

	assert.Equal(t, 3, lvl.size())
	assert.Equal(t, a, lvl.front())

	require.Equal(t, a, lvl.popFront())
	require.Equal(t, b, lvl.popFront())
	assert.Equal(t, 1, lvl.size())
	assert.Equal(t, c, lvl.front())

	require.Equal(t, c, lvl.popFront())
	assert.True(t, lvl.empty())
	assert.Nil(t, lvl.popFront())
}

func TestPriceLevel_RemoveMiddle(t *testing.T) {
	lvl := newPriceLevel(100)
	a := &Order{ID: 1}
	b := &Order{ID: 2}
	c := &Order{ID: 3}
	lvl.pushBack(a)
	lvl.pushBack(b)
	lvl.pushBack(c)

	lvl.remove(b)
	assert.Equal(t, 2, lvl.size())
	assert.Nil(t, b.prev)
	assert.Nil(t, b.next)

	var order []OrderID
	lvl.forEach(func(o *Order) bool {
		order = append(order, o.ID)
		return true
	})
	assert.Equal(t, []OrderID{1, 3}, order)
}

func TestPriceLevel_RemoveHeadAndTail(t *testing.T) {
	lvl := newPriceLevel(100)
	a := &Order{ID: 1}
	b := &Order{ID: 2}
	lvl.pushBack(a)
	lvl.pushBack(b)

	lvl.remove(a)
	assert.Equal(t, b, lvl.front())

	lvl.remove(b)
	assert.True(t, lvl.empty())
	assert.Nil(t, lvl.head)
	assert.Nil(t, lvl.tail)
}

func TestPriceLevel_TotalRemaining(t *testing.T) {
	lvl := newPriceLevel(100)
	lvl.pushBack(&Order{ID: 1, remainingQty: 5})
	lvl.pushBack(&Order{ID: 2, remainingQty: 3})

	assert.Equal(t, Quantity(8), lvl.totalRemaining())
}

func TestPriceLevel_ForEachStopsEarly(t *testing.T) {
	lvl := newPriceLevel(100)
	lvl.pushBack(&Order{ID: 1})
	lvl.pushBack(&Order{ID: 2})
	lvl.pushBack(&Order{ID: 3})

	var seen []OrderID
	lvl.forEach(func(o *Order) bool {
		seen = append(seen, o.ID)
		return o.ID != 2
	})
	assert.Equal(t, []OrderID{1, 2}, seen)
}
