package domain

import (
	"container/list"
	"sync"
	"time"
)

// Side is which side of the book an order belongs to.
type Side int

const (
	SideBuy Side = iota
	SideSell
)

func (s Side) String() string {
	if s == SideBuy {
		return "BUY"
	}
	return "SELL"
}

// OrderType distinguishes resting limit orders from immediate-or-discard market orders.
type OrderType int

const (
	OrderTypeLimit OrderType = iota
	OrderTypeMarket
)

func (t OrderType) String() string {
	if t == OrderTypeLimit {
		return "LIMIT"
	}
	return "MARKET"
}

// Order is a single instruction to buy or sell, tracked from submission until
// it is fully filled, cancelled, or (for market orders) the submitting call returns.
//
// The order index is the sole owner of an Order. A PriceLevel holds only a
// *list.Element reference back into the index's storage, stashed on Elem so
// that removing an order from its queue is O(1) without a linear scan.
type Order struct {
	ID        uint64
	Side      Side
	Type      OrderType
	Price     int64
	Qty       uint64
	remaining uint64
	Timestamp time.Time

	Elem *list.Element
}

var orderPool = sync.Pool{
	New: func() any { return &Order{} },
}

func newOrder(id uint64, side Side, typ OrderType, price int64, qty uint64) *Order {
	o := orderPool.Get().(*Order)
	o.ID = id
	o.Side = side
	o.Type = typ
	o.Price = price
	o.Qty = qty
	o.remaining = qty
	o.Timestamp = time.Now()
	o.Elem = nil
	return o
}

// NewLimitOrder constructs a resting-capable order at a fixed price.
func NewLimitOrder(id uint64, side Side, price int64, qty uint64) *Order {
	return newOrder(id, side, OrderTypeLimit, price, qty)
}

// NewMarketOrder constructs an order that crosses at any price and never rests.
func NewMarketOrder(id uint64, side Side, qty uint64) *Order {
	return newOrder(id, side, OrderTypeMarket, 0, qty)
}

// Remaining is the quantity not yet matched.
func (o *Order) Remaining() uint64 {
	return o.remaining
}

// Reduce decrements the remaining quantity by qty. qty must not exceed Remaining().
func (o *Order) Reduce(qty uint64) {
	o.remaining -= qty
}

// Destroy releases the order back to its pool. Callers must not touch o afterwards.
func (o *Order) Destroy() {
	o.Elem = nil
	orderPool.Put(o)
}
