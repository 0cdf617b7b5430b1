package orderbook

import (
	"container/list"
	"sync"

	"github.com/Pakkuu/Order-Book/domain"
)

// PriceLevel is the FIFO queue of resting orders at one exact price on one
// side of the book. Append and unlink of a known order are both O(1); the
// aggregate volume and order count are maintained incrementally rather than
// recomputed.
type PriceLevel struct {
	Price       int64
	orders      *list.List
	totalVolume uint64
}

var priceLevelPool = sync.Pool{
	New: func() any { return &PriceLevel{orders: list.New()} },
}

func newPriceLevel(price int64) *PriceLevel {
	pl := priceLevelPool.Get().(*PriceLevel)
	pl.Price = price
	pl.totalVolume = 0
	return pl
}

// release returns the level to its pool. Callers must only call this once the
// level is empty and unreachable from any ladder.
func (pl *PriceLevel) release() {
	pl.orders.Init()
	pl.totalVolume = 0
	pl.Price = 0
	priceLevelPool.Put(pl)
}

// Append adds an order to the tail of the queue and stashes the resulting
// list.Element on the order for later O(1) unlink.
func (pl *PriceLevel) Append(o *domain.Order) {
	o.Elem = pl.orders.PushBack(o)
	pl.totalVolume += o.Remaining()
}

// Unlink removes a known order from the queue, decrementing the cached
// volume by whatever quantity it still carried. Calling this on an order that
// was already reduced to zero remaining (e.g. by Fill during matching) is a
// safe no-op on the volume counter, since there is nothing left to subtract.
func (pl *PriceLevel) Unlink(o *domain.Order) {
	if o.Elem == nil {
		return
	}
	pl.totalVolume -= o.Remaining()
	pl.orders.Remove(o.Elem)
	o.Elem = nil
}

// Fill reduces both the order and the level's cached volume by qty, without
// unlinking. Used mid-match when a maker is only partially consumed.
func (pl *PriceLevel) Fill(o *domain.Order, qty uint64) {
	o.Reduce(qty)
	pl.totalVolume -= qty
}

// Front returns the oldest resting order, or nil if the level is empty.
func (pl *PriceLevel) Front() *domain.Order {
	e := pl.orders.Front()
	if e == nil {
		return nil
	}
	return e.Value.(*domain.Order)
}

// Empty reports whether the level has no resting orders.
func (pl *PriceLevel) Empty() bool {
	return pl.orders.Len() == 0
}

// TotalVolume is the sum of remaining quantity across every order resting here.
func (pl *PriceLevel) TotalVolume() uint64 {
	return pl.totalVolume
}

// OrderCount is the number of orders resting here.
func (pl *PriceLevel) OrderCount() int {
	return pl.orders.Len()
}

// Orders returns the resting orders from oldest to newest, for read-only
// inspection. Callers must not mutate the returned orders' linkage.
func (pl *PriceLevel) Orders() []*domain.Order {
	out := make([]*domain.Order, 0, pl.orders.Len())
	for e := pl.orders.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value.(*domain.Order))
	}
	return out
}
