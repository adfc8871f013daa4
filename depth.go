package match

import "github.com/igrmk/treemap/v2"

// AggregatedDepth is a read-mostly price -> total remaining quantity
// view of one book side, distinct from Snapshot()'s []Level copy. It
// is rebuilt on demand from the live book rather than maintained
// incrementally, since the core has no replay/message-bus concept to
// drive an incrementally-updated view.
type AggregatedDepth = treemap.TreeMap[Price, Quantity]

// Depth returns an AggregatedDepth for one side of the book, ordered
// the same way that side's own index is ordered (best price first).
func (b *OrderBook) Depth(side Side) *AggregatedDepth {
	var less func(a, b Price) bool
	if side == Buy {
		less = func(a, b Price) bool { return a > b }
	} else {
		less = func(a, b Price) bool { return a < b }
	}
	d := treemap.NewWithKeyCompare[Price, Quantity](less)
	b.sideOf(side).ascend(func(lvl *priceLevel) bool {
		d.Set(lvl.price, lvl.totalRemaining())
		return true
	})
	return d
}
