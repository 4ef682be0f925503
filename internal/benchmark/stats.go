// internal/benchmark/stats.go
package benchmark

import (
	"encoding/json"
	"time"
)

// Stats is the outcome of one measured operation. It is a value type: the
// only way to change it is WithOutputSize, which returns a copy.
type Stats struct {
	operation  string
	input      string
	total      time.Duration
	iterations int
	outputSize int
	hasOutput  bool
}

// NewStats records total elapsed time across iterations runs of operation on
// input.
func NewStats(operation, input string, total time.Duration, iterations int) Stats {
	return Stats{
		operation:  operation,
		input:      input,
		total:      total,
		iterations: iterations,
	}
}

// WithOutputSize returns a copy of s that also carries the number of items the
// operation produced.
func (s Stats) WithOutputSize(size int) Stats {
	s.outputSize = size
	s.hasOutput = true
	return s
}

// Operation is the label of the measured operation.
func (s Stats) Operation() string { return s.operation }

// Input is the representative input the operation ran against.
func (s Stats) Input() string { return s.input }

// Total is the wall-clock time of the timed loop.
func (s Stats) Total() time.Duration { return s.total }

// Iterations is the number of timed runs.
func (s Stats) Iterations() int { return s.iterations }

// Average is Total divided by Iterations. With no iterations it is Total.
func (s Stats) Average() time.Duration {
	if s.iterations <= 0 {
		return s.total
	}
	return s.total / time.Duration(s.iterations)
}

// Throughput returns whole runs per second. ok is false when Total is zero.
func (s Stats) Throughput() (opsPerSec int64, ok bool) {
	if s.total <= 0 {
		return 0, false
	}
	return int64(float64(s.iterations) / s.total.Seconds()), true
}

// OutputSize returns the recorded output size, if any.
func (s Stats) OutputSize() (size int, ok bool) {
	return s.outputSize, s.hasOutput
}

// statsRecord is the JSON shape of Stats.
type statsRecord struct {
	Operation  string `json:"operation"`
	Input      string `json:"input"`
	TotalNs    int64  `json:"totalNs"`
	Iterations int    `json:"iterations"`
	AverageNs  int64  `json:"averageNs"`
	Throughput *int64 `json:"throughput,omitempty"`
	OutputSize *int   `json:"outputSize,omitempty"`
}

// MarshalJSON encodes the recorded and derived fields. Durations are written
// in nanoseconds.
func (s Stats) MarshalJSON() ([]byte, error) {
	rec := statsRecord{
		Operation:  s.operation,
		Input:      s.input,
		TotalNs:    s.total.Nanoseconds(),
		Iterations: s.iterations,
		AverageNs:  s.Average().Nanoseconds(),
	}
	if ops, ok := s.Throughput(); ok {
		rec.Throughput = &ops
	}
	if size, ok := s.OutputSize(); ok {
		rec.OutputSize = &size
	}
	return json.Marshal(rec)
}
