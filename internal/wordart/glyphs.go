// internal/wordart/glyphs.go
package wordart

const (
	// Rows is the height of every glyph.
	Rows = 5
	// Cols is the width of every glyph row.
	Cols = 5
	// Ink marks a filled cell in a glyph row.
	Ink = '#'
)

// Glyph is the 5x5 pattern for one letter. Ink cells hold '#', everything else
// is blank.
type Glyph [Rows]string

// blank is returned for characters outside A-Z.
var blank = Glyph{"     ", "     ", "     ", "     ", "     "}

// glyphs is indexed by letter offset from 'A'.
var glyphs = [26]Glyph{
	{" ### ", "#   #", "#####", "#   #", "#   #"}, // A
	{"#### ", "#   #", "#### ", "#   #", "#### "}, // B
	{" ####", "#    ", "#    ", "#    ", " ####"}, // C
	{"#### ", "#   #", "#   #", "#   #", "#### "}, // D
	{"#####", "#    ", "#### ", "#    ", "#####"}, // E
	{"#####", "#    ", "#### ", "#    ", "#    "}, // F
	{" ####", "#    ", "#  ##", "#   #", " ####"}, // G
	{"#   #", "#   #", "#####", "#   #", "#   #"}, // H
	{"#####", "  #  ", "  #  ", "  #  ", "#####"}, // I
	{"#####", "   # ", "   # ", "#  # ", " ##  "}, // J
	{"#   #", "#  # ", "###  ", "#  # ", "#   #"}, // K
	{"#    ", "#    ", "#    ", "#    ", "#####"}, // L
	{"#   #", "## ##", "# # #", "#   #", "#   #"}, // M
	{"#   #", "##  #", "# # #", "#  ##", "#   #"}, // N
	{" ### ", "#   #", "#   #", "#   #", " ### "}, // O
	{"#### ", "#   #", "#### ", "#    ", "#    "}, // P
	{" ### ", "#   #", "#   #", "#  ##", " ####"}, // Q
	{"#### ", "#   #", "#### ", "#  # ", "#   #"}, // R
	{" ####", "#    ", " ### ", "    #", "#### "}, // S
	{"#####", "  #  ", "  #  ", "  #  ", "  #  "}, // T
	{"#   #", "#   #", "#   #", "#   #", " ### "}, // U
	{"#   #", "#   #", "#   #", " # # ", "  #  "}, // V
	{"#   #", "#   #", "# # #", "## ##", "#   #"}, // W
	{"#   #", " # # ", "  #  ", " # # ", "#   #"}, // X
	{"#   #", " # # ", "  #  ", "  #  ", "  #  "}, // Y
	{"#####", "   # ", "  #  ", " #   ", "#####"}, // Z
}

// Lookup returns the glyph for r. Lowercase ASCII letters share the uppercase
// glyph; any other character gets an all-blank glyph.
func Lookup(r rune) Glyph {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	if r < 'A' || r > 'Z' {
		return blank
	}
	return glyphs[r-'A']
}
