// internal/tui/compare_test.go
package tui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lucasrafaldini/augusto/internal/benchmark"
)

func fakeMeasure(calls *[]string) MeasureFunc {
	return func(word string) benchmark.Stats {
		*calls = append(*calls, word)
		return benchmark.NewStats("Anagram Generation", word, time.Millisecond, 10)
	}
}

// TestUpdate walks the model through every measurement and checks that it
// quits once the last word is recorded.
func TestUpdate(t *testing.T) {
	var calls []string
	m := newCompareModel([]string{"cat", "test"}, fakeMeasure(&calls))

	if cmd := m.Init(); cmd == nil {
		t.Fatalf("expected Init to start work")
	}

	cmd := m.measureNext()
	if cmd == nil {
		t.Fatalf("expected a measurement command")
	}
	msg := cmd()
	if _, ok := msg.(measuredMsg); !ok {
		t.Fatalf("expected measuredMsg, got %T", msg)
	}

	_, next := m.Update(msg)
	if next == nil {
		t.Fatalf("expected a command for the second word")
	}
	if m.index != 1 || m.suite.Len() != 1 || m.done {
		t.Fatalf("unexpected state after first word: index=%d len=%d done=%v", m.index, m.suite.Len(), m.done)
	}

	_, quit := m.Update(next())
	if quit == nil {
		t.Fatalf("expected quit command after last word")
	}
	if _, ok := quit().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
	if !m.done || m.suite.Len() != 2 {
		t.Fatalf("expected done with 2 results, got done=%v len=%d", m.done, m.suite.Len())
	}

	results := m.suite.Results()
	if results[0].Input() != "cat" || results[1].Input() != "test" {
		t.Fatalf("results out of order: %q, %q", results[0].Input(), results[1].Input())
	}
	if strings.Join(calls, ",") != "cat,test" {
		t.Fatalf("unexpected measure calls: %v", calls)
	}
}

func TestUpdateIgnoresKeys(t *testing.T) {
	var calls []string
	m := newCompareModel([]string{"cat"}, fakeMeasure(&calls))

	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyEsc},
	} {
		if _, cmd := m.Update(key); cmd != nil {
			t.Fatalf("key %q should not produce a command", key.String())
		}
	}
	if m.done || m.index != 0 {
		t.Fatalf("keys should not change progress: done=%v index=%d", m.done, m.index)
	}
}

func TestView(t *testing.T) {
	var calls []string
	m := newCompareModel([]string{"cat", "supercalifragilisticexpialidocious"}, fakeMeasure(&calls))

	view := m.View()
	if !strings.Contains(view, "Measuring") || !strings.Contains(view, "cat") || !strings.Contains(view, "(1/2)") {
		t.Fatalf("unexpected view: %q", view)
	}

	m.Update(measuredMsg{stats: benchmark.NewStats("op", "cat", time.Millisecond, 1)})
	view = m.View()
	if !strings.Contains(view, "(2/2)") || !strings.Contains(view, "…") {
		t.Fatalf("expected truncated second word, got %q", view)
	}

	m.Update(measuredMsg{stats: benchmark.NewStats("op", "x", time.Millisecond, 1)})
	if m.View() != "" {
		t.Fatalf("expected empty view once done, got %q", m.View())
	}
}

func TestRunCompare(t *testing.T) {
	var calls []string
	var out bytes.Buffer

	suite, err := RunCompare([]string{"a", "ab", "abc"}, fakeMeasure(&calls), &out)
	if err != nil {
		t.Fatalf("RunCompare error: %v", err)
	}
	if suite.Len() != 3 {
		t.Fatalf("expected 3 results, got %d", suite.Len())
	}
	if !strings.Contains(suite.FormatComparison(), `3. Anagram Generation with input "abc"`) {
		t.Fatalf("unexpected comparison:\n%s", suite.FormatComparison())
	}

	suite, err = RunCompare(nil, fakeMeasure(&calls), &out)
	if err != nil || suite.Len() != 0 {
		t.Fatalf("expected empty suite without error, got %v, %v", suite.Len(), err)
	}
	if errors.Is(err, ErrInterrupted) {
		t.Fatalf("empty run should not be interrupted")
	}
}
