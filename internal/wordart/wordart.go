// internal/wordart/wordart.go

// Package wordart draws a word as 5x5 block letters whose filled cells are
// taken, in order and cyclically, from a second "filler" word.
package wordart

import "strings"

// DefaultSpacing is the gap RenderDefault leaves between letters.
const DefaultSpacing = 1

// Render draws display in block letters, replacing every ink cell with the next
// character of filler and every other cell with a space. Letters are separated
// by spacing spaces; zero (or a negative value) leaves no gap. Each of the five
// output lines ends with "\n".
//
// The filler cursor runs across the whole drawing, row by row and letter by
// letter, and wraps to the start of filler once exhausted. Display letters are
// case-folded for glyph lookup only; filler characters are used as given.
//
// Render returns "" when either word is empty.
func Render(display, filler string, spacing int) string {
	if display == "" || filler == "" {
		return ""
	}

	letters := make([]Glyph, 0, len(display))
	for _, r := range display {
		letters = append(letters, Lookup(r))
	}
	return renderGlyphs(letters, []rune(filler), spacing)
}

// RenderDefault is Render with DefaultSpacing between letters.
func RenderDefault(display, filler string) string {
	return Render(display, filler, DefaultSpacing)
}

func renderGlyphs(letters []Glyph, filler []rune, spacing int) string {
	if len(letters) == 0 || len(filler) == 0 {
		return ""
	}
	if spacing < 0 {
		spacing = 0
	}
	gap := strings.Repeat(" ", spacing)

	var b strings.Builder
	cursor := 0
	for row := 0; row < Rows; row++ {
		for i, g := range letters {
			for _, cell := range g[row] {
				if cell == Ink {
					b.WriteRune(filler[cursor%len(filler)])
					cursor++
				} else {
					b.WriteByte(' ')
				}
			}
			if i < len(letters)-1 {
				b.WriteString(gap)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Columns prints words vertically side by side: line i holds the i-th
// character of every word, separated by single spaces. Shorter words are padded
// with blanks and trailing blanks are trimmed.
func Columns(words []string) string {
	if len(words) == 0 {
		return ""
	}

	cols := make([][]rune, len(words))
	height := 0
	for i, w := range words {
		cols[i] = []rune(w)
		height = max(height, len(cols[i]))
	}

	var b strings.Builder
	line := make([]string, len(cols))
	for row := 0; row < height; row++ {
		for i, col := range cols {
			if row < len(col) {
				line[i] = string(col[row])
			} else {
				line[i] = " "
			}
		}
		b.WriteString(strings.TrimRight(strings.Join(line, " "), " "))
		b.WriteByte('\n')
	}
	return b.String()
}
