package domain

import "time"

// Trade is an executed match between a resting maker order and an incoming
// taker order. It is a plain value: the engine builds one on the stack per
// fill and hands it to the trade callback without retaining or pooling it.
type Trade struct {
	BuyOrderID  uint64
	SellOrderID uint64
	Price       int64
	Quantity    uint64
	Timestamp   time.Time
}
