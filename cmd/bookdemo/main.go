// Command bookdemo runs a handful of orders through an in-process matching
// engine and logs what happened. It is a demonstration, not a server: it
// owns no matching logic of its own and exits once its orders are processed.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/Pakkuu/Order-Book/domain"
	"github.com/Pakkuu/Order-Book/matching"
)

func main() {
	orders := flag.Int("orders", 4, "number of sample orders to submit")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, nil))

	engine := matching.NewEngine()
	engine.SetTradeCallback(func(t domain.Trade) {
		log.Info("trade",
			"buy_order_id", t.BuyOrderID,
			"sell_order_id", t.SellOrderID,
			"price", t.Price,
			"quantity", t.Quantity,
		)
	})

	seed := []struct {
		id    uint64
		side  domain.Side
		price int64
		qty   uint64
	}{
		{1, domain.SideSell, 10_000, 50},
		{2, domain.SideSell, 10_100, 50},
		{3, domain.SideBuy, 10_100, 30},
		{4, domain.SideBuy, 10_000, 100},
	}

	for i, order := range seed {
		if i >= *orders {
			break
		}
		result, err := engine.AddLimit(order.id, order.side, order.price, order.qty)
		if err != nil {
			log.Error("rejected", "id", order.id, "err", err)
			continue
		}
		log.Info("accepted", "id", order.id, "side", order.side, "resting", result.Resting, "filled", result.Filled)
	}

	if bid, ok := engine.BestBid(); ok {
		log.Info("best bid", "price", bid)
	}
	if ask, ok := engine.BestAsk(); ok {
		log.Info("best ask", "price", ask)
	}
}
