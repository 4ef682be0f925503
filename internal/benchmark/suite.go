// internal/benchmark/suite.go
package benchmark

import "encoding/json"

// Suite collects Stats for side-by-side comparison. Entries keep the order in
// which they were added. The zero value is ready to use.
type Suite struct {
	results []Stats
}

// NewSuite returns an empty Suite.
func NewSuite() *Suite {
	return &Suite{}
}

// Add appends stats to the suite.
func (s *Suite) Add(stats Stats) {
	s.results = append(s.results, stats)
}

// Len reports how many entries the suite holds.
func (s *Suite) Len() int {
	return len(s.results)
}

// Results returns a copy of the entries in insertion order.
func (s *Suite) Results() []Stats {
	out := make([]Stats, len(s.results))
	copy(out, s.results)
	return out
}

// MarshalJSON encodes the suite as an array of stats.
func (s *Suite) MarshalJSON() ([]byte, error) {
	if s.results == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.results)
}
