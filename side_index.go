package match

import "github.com/WataHata/OrderTradeBook/structure"

// bookSide is one side of the book: an arena-backed LLRB index from
// Price to *priceLevel, ordered so that Min() always yields the best
// price for that side (descending for bids, ascending for asks). A
// level is present in the index for exactly as long as it is
// non-empty.
type bookSide struct {
	levels *structure.Tree[Price, *priceLevel]
}

func newBookSide(capacity int32, less func(a, b Price) bool) *bookSide {
	return &bookSide{levels: structure.NewTree[Price, *priceLevel](capacity, less)}
}

// levelAt returns the level at price, creating and inserting an empty
// one if absent.
func (s *bookSide) levelAt(price Price) *priceLevel {
	if lvl, ok := s.levels.Get(price); ok {
		return lvl
	}
	lvl := newPriceLevel(price)
	s.levels.Upsert(price, lvl)
	return lvl
}

// dropIfEmpty removes the level at price from the index if it has no
// resting orders left.
func (s *bookSide) dropIfEmpty(price Price) {
	if lvl, ok := s.levels.Get(price); ok && lvl.empty() {
		s.levels.Delete(price)
	}
}

// best returns the best level for this side, or nil if the side is
// empty.
func (s *bookSide) best() *priceLevel {
	_, lvl, ok := s.levels.Min()
	if !ok {
		return nil
	}
	return lvl
}

// ascend visits every level in this side's priority order (best
// first), stopping early if fn returns false.
func (s *bookSide) ascend(fn func(*priceLevel) bool) {
	s.levels.Ascend(func(_ Price, lvl *priceLevel) bool {
		return fn(lvl)
	})
}
