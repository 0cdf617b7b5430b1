package orderbook

import "github.com/Pakkuu/Order-Book/domain"

// OrderBook holds the two price ladders and the order index for one symbol.
// It is accessed by a single writer at a time (see the matching engine's
// concurrency model); every method here assumes exclusive access.
type OrderBook struct {
	bids  *Ladder
	asks  *Ladder
	index *OrderIndex
}

func NewOrderBook() *OrderBook {
	return &OrderBook{
		bids:  NewLadder(true),
		asks:  NewLadder(false),
		index: NewOrderIndex(),
	}
}

// Register installs a newly submitted order in the index. It does not place
// the order on a ladder; callers rest it explicitly via RestLimit once they
// know it was not fully matched.
func (ob *OrderBook) Register(o *domain.Order) {
	ob.index.Insert(o)
}

// Discard removes an order from the index without touching any ladder. Used
// for a taker that never rests: fully-filled limit orders and every market
// order, filled or not.
func (ob *OrderBook) Discard(o *domain.Order) {
	ob.index.Delete(o.ID)
	o.Destroy()
}

// RestLimit appends an order's remainder onto its side's ladder, creating the
// price level if this is the first order at that price.
func (ob *OrderBook) RestLimit(o *domain.Order) {
	ob.ladderFor(o.Side).GetOrCreate(o.Price).Append(o)
}

// Release unlinks a resting order from its level (erasing the level if it is
// now empty), removes it from the index, and returns it to the pool.
func (ob *OrderBook) Release(o *domain.Order) {
	ladder := ob.ladderFor(o.Side)
	level, found := ladder.Get(o.Price)
	if found {
		level.Unlink(o)
		if level.Empty() {
			ladder.Remove(level)
		}
	}
	ob.index.Delete(o.ID)
	o.Destroy()
}

// ReleaseMaker unlinks a maker that was just fully consumed from level,
// removes it from the index, and returns it to the pool. Unlike Release, it
// never erases level from its ladder even if level is now empty — the
// matching loop that called this already holds level and performs that
// cleanup itself exactly once, after the loop over level's queue ends.
func (ob *OrderBook) ReleaseMaker(o *domain.Order, level *PriceLevel) {
	level.Unlink(o)
	ob.index.Delete(o.ID)
	o.Destroy()
}

// Cancel removes a live order by id, wherever it rests. Reports whether an
// order with that id was found.
func (ob *OrderBook) Cancel(id uint64) bool {
	o, found := ob.index.Get(id)
	if !found {
		return false
	}
	ob.Release(o)
	return true
}

// Lookup finds a live order by id without removing it.
func (ob *OrderBook) Lookup(id uint64) (*domain.Order, bool) {
	return ob.index.Get(id)
}

// OppositeLadder returns the ladder a taker of the given side matches against.
func (ob *OrderBook) OppositeLadder(side domain.Side) *Ladder {
	if side == domain.SideBuy {
		return ob.asks
	}
	return ob.bids
}

func (ob *OrderBook) ladderFor(side domain.Side) *Ladder {
	if side == domain.SideBuy {
		return ob.bids
	}
	return ob.asks
}

// BestBid returns the highest live bid price, if any.
func (ob *OrderBook) BestBid() (int64, bool) {
	if f := ob.bids.Front(); f != nil {
		return f.Price, true
	}
	return 0, false
}

// BestAsk returns the lowest live ask price, if any.
func (ob *OrderBook) BestAsk() (int64, bool) {
	if f := ob.asks.Front(); f != nil {
		return f.Price, true
	}
	return 0, false
}

// Spread returns BestAsk - BestBid, if both sides are live.
func (ob *OrderBook) Spread() (int64, bool) {
	bid, okBid := ob.BestBid()
	ask, okAsk := ob.BestAsk()
	if !okBid || !okAsk {
		return 0, false
	}
	return ask - bid, true
}

// BidVolume returns the resting volume at a bid price, or 0 if no such level.
func (ob *OrderBook) BidVolume(price int64) uint64 {
	if level, found := ob.bids.Get(price); found {
		return level.TotalVolume()
	}
	return 0
}

// AskVolume returns the resting volume at an ask price, or 0 if no such level.
func (ob *OrderBook) AskVolume(price int64) uint64 {
	if level, found := ob.asks.Get(price); found {
		return level.TotalVolume()
	}
	return 0
}

// BidDepth is the number of distinct live bid price levels.
func (ob *OrderBook) BidDepth() int {
	return ob.bids.Len()
}

// AskDepth is the number of distinct live ask price levels.
func (ob *OrderBook) AskDepth() int {
	return ob.asks.Len()
}

// TotalLiveOrders is the number of orders currently resting anywhere in the book.
func (ob *OrderBook) TotalLiveOrders() int {
	return ob.index.Len()
}

// BidLevels returns up to max bid levels, best first, for depth snapshots.
func (ob *OrderBook) BidLevels(max int) []*PriceLevel {
	return ob.bids.Levels(max)
}

// AskLevels returns up to max ask levels, best first, for depth snapshots.
func (ob *OrderBook) AskLevels(max int) []*PriceLevel {
	return ob.asks.Levels(max)
}
