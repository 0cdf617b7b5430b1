package matching

import (
	"testing"
	"time"

	"github.com/Pakkuu/Order-Book/domain"
)

// recordingSink is a MetricsSink fake that just counts calls and remembers
// the arguments of the most recent RecordMatch, so tests can assert on what
// the engine actually reported without standing up a real aggregator.
type recordingSink struct {
	adds, cancels, matches int
	lastTrades             int
	lastVolume             uint64
}

func (s *recordingSink) RecordAdd(time.Duration)    { s.adds++ }
func (s *recordingSink) RecordCancel(time.Duration) { s.cancels++ }
func (s *recordingSink) RecordMatch(_ time.Duration, trades int, volume uint64) {
	s.matches++
	s.lastTrades = trades
	s.lastVolume = volume
}

func TestMetricsRecordAddFiresOnEveryAdd(t *testing.T) {
	e := NewEngine()
	sink := &recordingSink{}
	e.SetMetricsSink(sink)

	mustAddLimit(t, e, 1, domain.SideBuy, 100, 10)
	mustAddLimit(t, e, 2, domain.SideSell, 200, 10) // no cross, still an add

	if sink.adds != 2 {
		t.Errorf("expected 2 RecordAdd calls, got %d", sink.adds)
	}
}

func TestMetricsRecordMatchOnlyFiresWhenTradesExecute(t *testing.T) {
	e := NewEngine()
	sink := &recordingSink{}
	e.SetMetricsSink(sink)

	// Resting order with nothing to cross against: no match sample.
	mustAddLimit(t, e, 1, domain.SideSell, 10000, 50)
	if sink.matches != 0 {
		t.Fatalf("expected 0 RecordMatch calls for a non-crossing add, got %d", sink.matches)
	}

	// Crosses and trades: exactly one match sample, with the right totals.
	mustAddLimit(t, e, 2, domain.SideBuy, 10000, 30)
	if sink.matches != 1 {
		t.Fatalf("expected 1 RecordMatch call after a crossing add, got %d", sink.matches)
	}
	if sink.lastTrades != 1 || sink.lastVolume != 30 {
		t.Errorf("expected RecordMatch(trades=1, volume=30), got trades=%d volume=%d", sink.lastTrades, sink.lastVolume)
	}

	// A market order on an empty opposite side: no liquidity, no match sample.
	if _, err := e.AddMarket(3, domain.SideSell, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sink.matches != 1 {
		t.Errorf("expected RecordMatch count to stay at 1 after a market order with no liquidity, got %d", sink.matches)
	}
}

func TestMetricsRecordCancelOnlyFiresOnSuccess(t *testing.T) {
	e := NewEngine()
	sink := &recordingSink{}
	e.SetMetricsSink(sink)

	if e.Cancel(99) {
		t.Fatal("expected cancel of an unknown id to report false")
	}
	if sink.cancels != 0 {
		t.Errorf("expected 0 RecordCancel calls for a lookup miss, got %d", sink.cancels)
	}

	mustAddLimit(t, e, 1, domain.SideBuy, 100, 10)
	if !e.Cancel(1) {
		t.Fatal("expected cancel of a live order to succeed")
	}
	if sink.cancels != 1 {
		t.Errorf("expected 1 RecordCancel call after a successful cancel, got %d", sink.cancels)
	}
}

func TestMetricsDefaultSinkDoesNotPanic(t *testing.T) {
	e := NewEngine()
	mustAddLimit(t, e, 1, domain.SideBuy, 100, 10)
	mustAddLimit(t, e, 2, domain.SideSell, 100, 10)
	e.Cancel(1)
	e.SetMetricsSink(nil) // must restore the no-op default, not a nil interface
	mustAddLimit(t, e, 3, domain.SideBuy, 100, 10)
}
