// internal/tui/compare.go

// Package tui holds the Bubble Tea views used by the augusto CLI.
package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasrafaldini/augusto/internal/benchmark"
	"github.com/lucasrafaldini/augusto/internal/util"
)

// ErrInterrupted is returned when the user quits before every word was measured.
var ErrInterrupted = errors.New("comparison interrupted")

// MeasureFunc benchmarks a single word.
type MeasureFunc func(word string) benchmark.Stats

const maxWordWidth = 24

var (
	wordStyle  = lipgloss.NewStyle().Bold(true)
	countStyle = lipgloss.NewStyle().Faint(true)
)

// measuredMsg carries the result for the word at the model's current index.
type measuredMsg struct {
	stats benchmark.Stats
}

type compareModel struct {
	words   []string
	measure MeasureFunc
	suite   *benchmark.Suite
	index   int
	spinner spinner.Model

	done bool
}

func newCompareModel(words []string, measure MeasureFunc) *compareModel {
	return &compareModel{
		words:   words,
		measure: measure,
		suite:   benchmark.NewSuite(),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

// Init starts the spinner and the first measurement.
func (m *compareModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.measureNext())
}

// measureNext runs the benchmark for the current word off the update loop.
func (m *compareModel) measureNext() tea.Cmd {
	if m.index >= len(m.words) {
		return nil
	}
	word, measure := m.words[m.index], m.measure
	return func() tea.Msg {
		return measuredMsg{stats: measure(word)}
	}
}

// Update records finished measurements and quits once every word is done.
func (m *compareModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case measuredMsg:
		m.suite.Add(msg.stats)
		m.index++
		if m.index >= len(m.words) {
			m.done = true
			return m, tea.Quit
		}
		return m, m.measureNext()

	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View shows the spinner next to the word being measured.
func (m *compareModel) View() string {
	if m.done || m.index >= len(m.words) {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.spinner.View())
	b.WriteString(" Measuring ")
	b.WriteString(wordStyle.Render(util.TruncateRunes(m.words[m.index], maxWordWidth)))
	b.WriteString(" ")
	b.WriteString(countStyle.Render(fmt.Sprintf("(%d/%d)", m.index+1, len(m.words))))
	b.WriteString("\n")
	return b.String()
}

// RunCompare measures each word in order while drawing a progress line on out,
// and returns the filled suite. Keyboard input is not read, so Ctrl+C arrives
// as SIGINT; the words measured so far are then returned with ErrInterrupted.
func RunCompare(words []string, measure MeasureFunc, out io.Writer) (*benchmark.Suite, error) {
	if len(words) == 0 {
		return benchmark.NewSuite(), nil
	}

	m := newCompareModel(words, measure)
	p := tea.NewProgram(m, tea.WithOutput(out), tea.WithInput(nil))
	final, err := p.Run()
	fm, ok := final.(*compareModel)
	if err != nil {
		if ok && errors.Is(err, tea.ErrInterrupted) {
			return fm.suite, ErrInterrupted
		}
		return nil, fmt.Errorf("run progress view: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("unexpected model type %T", final)
	}
	return fm.suite, nil
}
