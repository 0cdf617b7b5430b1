package matching

import (
	"fmt"
	"time"

	"github.com/Pakkuu/Order-Book/domain"
	"github.com/Pakkuu/Order-Book/orderbook"
)

// AddResult reports the outcome of a limit-order submission.
type AddResult struct {
	Resting bool
	Filled  uint64
}

// Engine is a single-symbol, single-writer matching engine. Every method
// assumes it is the only call in flight against this Engine at a time; there
// is no internal locking, goroutine, or queue — the caller's own thread does
// the matching, synchronously, start to finish.
type Engine struct {
	book    *orderbook.OrderBook
	onTrade func(domain.Trade)
	metrics MetricsSink
}

// NewEngine builds an empty engine with no trade callback and a no-op
// metrics sink.
func NewEngine() *Engine {
	return &Engine{
		book:    orderbook.NewOrderBook(),
		metrics: noopSink{},
	}
}

// SetTradeCallback installs the sink invoked once per executed trade, in
// execution order, on the calling goroutine. Passing nil disables emission;
// matching bookkeeping is unaffected either way.
func (e *Engine) SetTradeCallback(fn func(domain.Trade)) {
	e.onTrade = fn
}

// SetMetricsSink installs the sink the engine reports timing and volume
// samples to. Passing nil restores the no-op default.
func (e *Engine) SetMetricsSink(sink MetricsSink) {
	if sink == nil {
		sink = noopSink{}
	}
	e.metrics = sink
}

// AddLimit submits a limit order. Any crossing quantity is matched
// immediately; an unfilled remainder rests on the book at price.
func (e *Engine) AddLimit(id uint64, side domain.Side, price int64, qty uint64) (AddResult, error) {
	start := time.Now()
	defer func() { e.metrics.RecordAdd(time.Since(start)) }()

	if qty == 0 {
		return AddResult{}, fmt.Errorf("%w: id %d", ErrInvalidQuantity, id)
	}
	if price <= 0 {
		return AddResult{}, fmt.Errorf("%w: id %d", ErrInvalidPrice, id)
	}
	if _, live := e.book.Lookup(id); live {
		return AddResult{}, fmt.Errorf("%w: id %d", ErrDuplicateOrderID, id)
	}

	taker := domain.NewLimitOrder(id, side, price, qty)
	e.book.Register(taker)

	e.match(taker)

	filled := qty - taker.Remaining()
	if taker.Remaining() == 0 {
		e.book.Discard(taker)
		return AddResult{Resting: false, Filled: filled}, nil
	}
	e.book.RestLimit(taker)
	return AddResult{Resting: true, Filled: filled}, nil
}

// AddMarket submits a market order. It crosses at any price and never rests;
// any quantity the book cannot satisfy is discarded without error. Returns
// the quantity actually filled.
func (e *Engine) AddMarket(id uint64, side domain.Side, qty uint64) (uint64, error) {
	start := time.Now()
	defer func() { e.metrics.RecordAdd(time.Since(start)) }()

	if qty == 0 {
		return 0, fmt.Errorf("%w: id %d", ErrInvalidQuantity, id)
	}
	if _, live := e.book.Lookup(id); live {
		return 0, fmt.Errorf("%w: id %d", ErrDuplicateOrderID, id)
	}

	taker := domain.NewMarketOrder(id, side, qty)
	e.book.Register(taker)

	e.match(taker)

	filled := qty - taker.Remaining()
	e.book.Discard(taker)
	return filled, nil
}

// Cancel removes a live resting order. Reports whether an order with that id
// was found and removed. Only a successful cancel is timed — a lookup miss
// removed nothing, so there is nothing for the metrics sink to record.
func (e *Engine) Cancel(id uint64) bool {
	start := time.Now()
	found := e.book.Cancel(id)
	if found {
		e.metrics.RecordCancel(time.Since(start))
	}
	return found
}

// match runs the price-time priority crossing loop for taker against the
// opposite side of the book, emitting trades as it goes. taker's Remaining()
// reflects what is left once match returns; callers decide what to do with it
// (rest it, discard it). RecordMatch only fires when at least one trade
// executed, mirroring the original's metrics_.record_match call guarded by
// "quantity consumed" in match_order.
func (e *Engine) match(taker *domain.Order) {
	start := time.Now()
	var tradeCount int
	var tradedVolume uint64
	defer func() {
		if tradeCount > 0 {
			e.metrics.RecordMatch(time.Since(start), tradeCount, tradedVolume)
		}
	}()

	opp := e.book.OppositeLadder(taker.Side)

	for taker.Remaining() > 0 {
		level := opp.Front()
		if level == nil {
			return
		}
		if !crosses(taker, level.Price) {
			return
		}

		for taker.Remaining() > 0 && !level.Empty() {
			maker := level.Front()
			qty := min(taker.Remaining(), maker.Remaining())
			price := maker.Price

			trade := domain.Trade{
				Price:     price,
				Quantity:  qty,
				Timestamp: time.Now(),
			}
			if taker.Side == domain.SideBuy {
				trade.BuyOrderID, trade.SellOrderID = taker.ID, maker.ID
			} else {
				trade.BuyOrderID, trade.SellOrderID = maker.ID, taker.ID
			}

			if e.onTrade != nil {
				e.onTrade(trade)
			}

			taker.Reduce(qty)
			level.Fill(maker, qty)
			tradeCount++
			tradedVolume += qty

			if maker.Remaining() == 0 {
				e.book.ReleaseMaker(maker, level)
			}
		}

		if level.Empty() {
			opp.Remove(level)
		}
	}
}

// crosses reports whether taker would match against a resting level at price.
func crosses(taker *domain.Order, price int64) bool {
	if taker.Type == domain.OrderTypeMarket {
		return true
	}
	if taker.Side == domain.SideBuy {
		return taker.Price >= price
	}
	return taker.Price <= price
}

// BestBid, BestAsk, Spread, and the remaining read queries delegate directly
// to the underlying book; the engine adds no state of its own to them.

func (e *Engine) BestBid() (int64, bool) { return e.book.BestBid() }
func (e *Engine) BestAsk() (int64, bool) { return e.book.BestAsk() }
func (e *Engine) Spread() (int64, bool)  { return e.book.Spread() }

func (e *Engine) BidVolume(price int64) uint64 { return e.book.BidVolume(price) }
func (e *Engine) AskVolume(price int64) uint64 { return e.book.AskVolume(price) }

func (e *Engine) BidDepth() int { return e.book.BidDepth() }
func (e *Engine) AskDepth() int { return e.book.AskDepth() }

func (e *Engine) TotalLiveOrders() int { return e.book.TotalLiveOrders() }

// BidLevels and AskLevels return up to max resting price levels, best first,
// as read-only depth summaries.
func (e *Engine) BidLevels(max int) []*orderbook.PriceLevel { return e.book.BidLevels(max) }
func (e *Engine) AskLevels(max int) []*orderbook.PriceLevel { return e.book.AskLevels(max) }

func min(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}
