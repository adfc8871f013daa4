package match

// Level is one row of a Snapshot: a price and the sum of remaining
// quantity resting at that price.
type Level struct {
	Price Price
	Qty   Quantity
}

// OrderBook is a single-symbol, single-threaded limit order book. All
// public methods are synchronous; the caller is responsible for
// serializing calls itself; the book performs no locking of its own.
type OrderBook struct {
	pool *Pool[Order]
	bids *bookSide // ordered descending: Min() is the highest price
	asks *bookSide // ordered ascending: Min() is the lowest price
	byID map[OrderID]*Order
}

// NewOrderBook constructs a book whose order pool holds at most
// poolCapacity resting orders at once.
func NewOrderBook(poolCapacity int) *OrderBook {
	return &OrderBook{
		pool: NewPool[Order](poolCapacity),
		bids: newBookSide(int32(poolCapacity), func(a, b Price) bool { return a > b }),
		asks: newBookSide(int32(poolCapacity), func(a, b Price) bool { return a < b }),
		byID: make(map[OrderID]*Order, poolCapacity),
	}
}

func (b *OrderBook) sideOf(side Side) *bookSide {
	if side == Buy {
		return b.bids
	}
	return b.asks
}

// Size returns the number of currently resting orders.
func (b *OrderBook) Size() int {
	return len(b.byID)
}

// Add inserts a new order and runs the matching loop. A
// duplicate id, or an FAK that cannot immediately cross, is a silent
// no-op returning an empty (nil) trade list.
func (b *OrderBook) Add(typ OrderType, id OrderID, side Side, price Price, qty Quantity) []Trade {
	if _, exists := b.byID[id]; exists {
		return nil
	}
	if typ == FillAndKill && !b.canMatch(side, price) {
		return nil
	}

	o, h, err := b.pool.Acquire()
	if err != nil {
		return nil
	}
	newOrder(o, id, side, price, typ, qty)
	o.handle = h

	lvl := b.sideOf(side).levelAt(price)
	lvl.pushBack(o)
	b.byID[id] = o

	return b.matchOrders()
}

// Cancel removes a resting order. Unknown id is a silent no-op.
func (b *OrderBook) Cancel(id OrderID) {
	o, ok := b.byID[id]
	if !ok {
		return
	}
	b.detach(o)
}

// detach removes o from its FIFO, the ID index, and returns its slot
// to the pool. These three operations are always co-located.
func (b *OrderBook) detach(o *Order) {
	side := b.sideOf(o.Side)
	lvl := side.levelAt(o.Price)
	lvl.remove(o)
	side.dropIfEmpty(o.Price)
	delete(b.byID, o.ID)
	_ = b.pool.Release(o.handle)
}

// Modify cancels the existing order and re-submits it with the new
// side/price/qty, preserving its original type but forfeiting time
// priority. Unknown id returns an empty trade list.
func (b *OrderBook) Modify(id OrderID, side Side, price Price, qty Quantity) []Trade {
	o, ok := b.byID[id]
	if !ok {
		return nil
	}
	typ := o.Type
	b.detach(o)
	return b.Add(typ, id, side, price, qty)
}

// Snapshot aggregates remaining quantity by price on each side. Bids
// are returned best-first (descending); asks best-first (ascending).
func (b *OrderBook) Snapshot() (bids []Level, asks []Level) {
	b.bids.ascend(func(lvl *priceLevel) bool {
		bids = append(bids, Level{Price: lvl.price, Qty: lvl.totalRemaining()})
		return true
	})
	b.asks.ascend(func(lvl *priceLevel) bool {
		asks = append(asks, Level{Price: lvl.price, Qty: lvl.totalRemaining()})
		return true
	})
	return bids, asks
}

// canMatch reports whether an order of the given side and price would
// execute immediately against the current book.
func (b *OrderBook) canMatch(side Side, price Price) bool {
	if side == Buy {
		best := b.asks.best()
		if best == nil {
			return false
		}
		return price >= best.price
	}
	best := b.bids.best()
	if best == nil {
		return false
	}
	return price <= best.price
}

// matchOrders is the core matching loop: cross the best bid
// level against the best ask level while they cross, emitting Trades,
// then sweep any FAK order left resting at either side's new head.
func (b *OrderBook) matchOrders() []Trade {
	var trades []Trade

	for {
		bidLvl := b.bids.best()
		askLvl := b.asks.best()
		if bidLvl == nil || askLvl == nil {
			break
		}
		if bidLvl.price < askLvl.price {
			break
		}

		for !bidLvl.empty() && !askLvl.empty() {
			bid := bidLvl.front()
			ask := askLvl.front()

			q := bid.remainingQty
			if ask.remainingQty < q {
				q = ask.remainingQty
			}
			bid.fill(q)
			ask.fill(q)

			trades = append(trades, Trade{
				Bid: TradeLeg{OrderID: bid.ID, Price: bid.Price, Qty: q},
				Ask: TradeLeg{OrderID: ask.ID, Price: ask.Price, Qty: q},
			})

			bidEmptied := false
			askEmptied := false
			if bid.isFilled() {
				bidLvl.popFront()
				delete(b.byID, bid.ID)
				_ = b.pool.Release(bid.handle)
				bidEmptied = bidLvl.empty()
			}
			if ask.isFilled() {
				askLvl.popFront()
				delete(b.byID, ask.ID)
				_ = b.pool.Release(ask.handle)
				askEmptied = askLvl.empty()
			}
			if bidEmptied {
				b.bids.levels.Delete(bidLvl.price)
			}
			if askEmptied {
				b.asks.levels.Delete(askLvl.price)
			}
			if bidEmptied || askEmptied {
				break
			}
		}
	}

	b.sweepFAK(b.bids)
	b.sweepFAK(b.asks)

	return trades
}

// sweepFAK cancels the best level's head if it is a FAK order that
// could not fully execute. Only the head is ever inspected: an FAK
// buried behind other orders is impossible since FAK either matches
// immediately or never enters the book.
func (b *OrderBook) sweepFAK(side *bookSide) {
	lvl := side.best()
	if lvl == nil {
		return
	}
	head := lvl.front()
	if head == nil || head.Type != FillAndKill {
		return
	}
	b.detach(head)
}
