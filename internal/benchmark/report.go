// internal/benchmark/report.go
package benchmark

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

const reportWidth = 60

var bannerStyle = lipgloss.NewStyle().
	Border(lipgloss.DoubleBorder()).
	Width(reportWidth).
	Align(lipgloss.Center).
	Bold(true)

func banner(title string) string {
	return bannerStyle.Render(title)
}

func rule() string {
	return strings.Repeat("═", reportWidth+2)
}

// FormatDuration renders d as whole microseconds below 1ms, milliseconds with
// two decimals below 1s, and seconds with two decimals otherwise.
func FormatDuration(d time.Duration) string {
	micros := d.Microseconds()
	switch {
	case micros < 1000:
		return fmt.Sprintf("%dμs", micros)
	case micros < 1_000_000:
		return fmt.Sprintf("%.2fms", float64(micros)/1000)
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}

// Format renders the bordered results block.
func (s Stats) Format() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(banner("PERFORMANCE BENCHMARK RESULTS"))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Operation:        %s\n", s.operation)
	fmt.Fprintf(&b, "Input:            %q\n", s.input)
	fmt.Fprintf(&b, "Input length:     %d character(s)\n", utf8.RuneCountInString(s.input))
	if size, ok := s.OutputSize(); ok {
		fmt.Fprintf(&b, "Output size:      %d item(s)\n", size)
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "Total time:       %s\n", FormatDuration(s.total))
	fmt.Fprintf(&b, "Iterations:       %d\n", s.iterations)
	fmt.Fprintf(&b, "Avg per run:      %s\n", FormatDuration(s.Average()))
	if ops, ok := s.Throughput(); ok {
		fmt.Fprintf(&b, "Throughput:       %d ops/sec\n", ops)
	}

	b.WriteString("\n")
	b.WriteString(rule())
	b.WriteString("\n")
	return b.String()
}

// String implements fmt.Stringer.
func (s Stats) String() string {
	return s.Format()
}

// FormatComparison lists every entry, numbered in insertion order, with its
// total and average time and, when recorded, its output size.
func (s *Suite) FormatComparison() string {
	if len(s.results) == 0 {
		return "No benchmark results to compare.\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(banner("BENCHMARK COMPARISON"))
	b.WriteString("\n\n")

	for i, st := range s.results {
		fmt.Fprintf(&b, "%d. %s with input %q\n", i+1, st.operation, st.input)
		fmt.Fprintf(&b, "   Time: %s (avg: %s)\n", FormatDuration(st.total), FormatDuration(st.Average()))
		if size, ok := st.OutputSize(); ok {
			fmt.Fprintf(&b, "   Output: %d items\n", size)
		}
		b.WriteString("\n")
	}
	return b.String()
}
