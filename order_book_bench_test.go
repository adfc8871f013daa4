package match

import (
	"math/rand"
	"testing"

	"github.com/rs/xid"
)

// syntheticOrderID derives a deterministic-enough uint64 order id from
// an xid.ID, matching the synthetic-id generation in the engine's
// benchmark suite.
func syntheticOrderID(id xid.ID) OrderID {
	b := id.Bytes()
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return OrderID(v)
}

func BenchmarkOrderBook_AddNoCross(b *testing.B) {
	book := NewOrderBook(b.N + 1)
	rng := rand.New(rand.NewSource(1))

	ids := make([]OrderID, b.N)
	for i := range ids {
		ids[i] = syntheticOrderID(xid.New())
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		price := Price(1000 + rng.Intn(50))
		book.Add(GoodTillCancel, ids[i], Buy, price, Quantity(1+rng.Intn(100)))
	}
}

func BenchmarkOrderBook_AddWithCross(b *testing.B) {
	book := NewOrderBook(4 * b.N + 4)
	rng := rand.New(rand.NewSource(2))

	b.ResetTimer()
	b.ReportAllocs()

	var nextID uint64
	for i := 0; i < b.N; i++ {
		nextID++
		book.Add(GoodTillCancel, OrderID(nextID), Buy, Price(100), Quantity(1+rng.Intn(10)))
		nextID++
		book.Add(GoodTillCancel, OrderID(nextID), Sell, Price(100), Quantity(1+rng.Intn(10)))
	}
}

func BenchmarkOrderBook_CancelRoundTrip(b *testing.B) {
	book := NewOrderBook(2)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		id := OrderID(i + 1)
		book.Add(GoodTillCancel, id, Buy, 100, 10)
		book.Cancel(id)
	}
}
