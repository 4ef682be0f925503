// internal/benchmark/benchmark.go

// Package benchmark times repeated runs of an operation and reports the result.
//
// The number of timed runs is calibrated from the length of a representative
// input: operations that grow factorially with their input are repeated many
// times when the input is short and only once when it is long.
package benchmark

import (
	"log/slog"
	"time"
	"unicode/utf8"
)

// now is swapped in tests to make elapsed time deterministic.
var now = time.Now

// Measure runs op once untimed to warm up, then times IterationsFor(input)
// consecutive runs. Results are discarded.
func Measure[T any](operation, input string, op func() T) Stats {
	_ = op()

	iterations := IterationsFor(input)
	total := timeLoop(iterations, op)
	logMeasured(operation, input, iterations, total)
	return NewStats(operation, input, total, iterations)
}

// MeasureWithSize is Measure for operations that return a collection. The
// length of the warm-up result is captured before timing and recorded as the
// output size.
func MeasureWithSize[S ~[]E, E any](operation, input string, op func() S) Stats {
	size := len(op())

	iterations := IterationsFor(input)
	total := timeLoop(iterations, op)
	logMeasured(operation, input, iterations, total)
	return NewStats(operation, input, total, iterations).WithOutputSize(size)
}

func timeLoop[T any](iterations int, op func() T) time.Duration {
	start := now()
	for i := 0; i < iterations; i++ {
		_ = op()
	}
	return now().Sub(start)
}

func logMeasured(operation, input string, iterations int, total time.Duration) {
	slog.Debug("benchmark finished",
		"operation", operation,
		"input", input,
		"iterations", iterations,
		"total", total,
	)
}

// IterationsFor returns the calibrated run count for a representative input,
// based on its length in characters.
func IterationsFor(input string) int {
	return IterationsForLength(utf8.RuneCountInString(input))
}

// IterationsForLength maps an input length to a run count:
// up to 3 → 10000, up to 5 → 1000, up to 7 → 100, up to 9 → 10, otherwise 1.
func IterationsForLength(n int) int {
	switch {
	case n <= 3:
		return 10000
	case n <= 5:
		return 1000
	case n <= 7:
		return 100
	case n <= 9:
		return 10
	default:
		return 1
	}
}
