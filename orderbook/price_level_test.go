package orderbook

import (
	"testing"

	"github.com/Pakkuu/Order-Book/domain"
)

func TestPriceLevelAppendAndUnlink(t *testing.T) {
	level := newPriceLevel(100)
	defer level.release()

	a := domain.NewLimitOrder(1, domain.SideBuy, 100, 10)
	b := domain.NewLimitOrder(2, domain.SideBuy, 100, 5)
	level.Append(a)
	level.Append(b)

	if level.TotalVolume() != 15 {
		t.Errorf("expected total volume 15, got %d", level.TotalVolume())
	}
	if level.OrderCount() != 2 {
		t.Errorf("expected order count 2, got %d", level.OrderCount())
	}
	if level.Front() != a {
		t.Error("expected front to be the first-appended order")
	}

	level.Unlink(a)
	if level.TotalVolume() != 5 {
		t.Errorf("expected total volume 5 after unlinking a, got %d", level.TotalVolume())
	}
	if level.Front() != b {
		t.Error("expected front to be b after unlinking a")
	}
}

func TestPriceLevelFillThenUnlinkIsNotDoubleCounted(t *testing.T) {
	level := newPriceLevel(100)
	defer level.release()

	o := domain.NewLimitOrder(1, domain.SideBuy, 100, 10)
	level.Append(o)

	level.Fill(o, 10) // fully consumed during matching
	if level.TotalVolume() != 0 {
		t.Fatalf("expected volume 0 after fully filling the only order, got %d", level.TotalVolume())
	}

	level.Unlink(o) // the generic cleanup path, called unconditionally by the book
	if level.TotalVolume() != 0 {
		t.Errorf("expected volume to stay 0, got %d (double-decremented)", level.TotalVolume())
	}
}

func TestPriceLevelEmpty(t *testing.T) {
	level := newPriceLevel(100)
	defer level.release()

	if !level.Empty() {
		t.Error("expected a fresh level to be empty")
	}
	o := domain.NewLimitOrder(1, domain.SideBuy, 100, 10)
	level.Append(o)
	if level.Empty() {
		t.Error("expected level with one order to not be empty")
	}
	level.Unlink(o)
	if !level.Empty() {
		t.Error("expected level to be empty again after unlinking its only order")
	}
}
