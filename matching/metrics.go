package matching

import "time"

// MetricsSink is the narrow interface the engine reports raw samples to.
// Aggregation, percentiles, and presentation are the sink's problem, not the
// engine's; the engine only ever produces numbers.
type MetricsSink interface {
	RecordAdd(d time.Duration)
	RecordCancel(d time.Duration)
	RecordMatch(d time.Duration, trades int, volume uint64)
}

type noopSink struct{}

func (noopSink) RecordAdd(time.Duration)                {}
func (noopSink) RecordCancel(time.Duration)             {}
func (noopSink) RecordMatch(time.Duration, int, uint64) {}
