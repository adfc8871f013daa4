package match

// Side identifies which book side an order rests on.
type Side uint8

const (
	Buy Side = iota
	Sell
)

func (s Side) String() string {
	if s == Buy {
		return "buy"
	}
	return "sell"
}

// OrderType is one of the two order types this core supports.
type OrderType uint8

const (
	// GoodTillCancel rests in the book until fully matched or
	// explicitly cancelled.
	GoodTillCancel OrderType = iota
	// FillAndKill executes whatever can execute immediately and
	// discards the remainder without resting.
	FillAndKill
)

func (t OrderType) String() string {
	if t == GoodTillCancel {
		return "GTC"
	}
	return "FAK"
}

// Price is a venue-defined tick, not a currency amount.
type Price int32

// Quantity is a unit count, never negative.
type Quantity uint32

// OrderID is externally supplied and must be unique across the book's
// lifetime.
type OrderID uint64

// Order is both a value carrier and, via prev/next, a node of whichever
// intrusive priceLevel FIFO currently holds it. A slot is re-initialized
// in place by newOrder each time the pool hands it out, so no field
// holds a stale value from a previous tenant.
type Order struct {
	ID           OrderID
	Side         Side
	Price        Price
	Type         OrderType
	initialQty   Quantity
	remainingQty Quantity

	prev, next *Order
	handle     Handle // slot index in the owning Pool[Order]
}

// newOrder (re)initializes o in place with the given identity, leaving
// prev/next cleared — the order is not yet a member of any FIFO.
func newOrder(o *Order, id OrderID, side Side, price Price, typ OrderType, qty Quantity) {
	o.ID = id
	o.Side = side
	o.Price = price
	o.Type = typ
	o.initialQty = qty
	o.remainingQty = qty
	o.prev = nil
	o.next = nil
}

// Remaining reports the quantity not yet matched.
func (o *Order) Remaining() Quantity {
	return o.remainingQty
}

// Initial reports the quantity the order was created with.
func (o *Order) Initial() Quantity {
	return o.initialQty
}

// fill decrements remainingQty by q. q > remainingQty is a programming
// error: the caller (matchOrders) never computes a fill quantity larger
// than either side's remainder, so this can only fire on a bug.
func (o *Order) fill(q Quantity) {
	if q > o.remainingQty {
		errFatal(errFillExceedsRemaining, "order_id", o.ID, "remaining", o.remainingQty, "fill", q)
		return
	}
	o.remainingQty -= q
}

// isFilled reports whether the order has no remaining quantity.
func (o *Order) isFilled() bool {
	return o.remainingQty == 0
}
