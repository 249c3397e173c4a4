package render

import "strings"

// Style holds the three glyph strings a tree rendering is built from.
// All three must have the same display width; the empty filler is
// derived from that width.
type Style struct {
	Vertical string // continuation of an ancestor level with siblings left
	Cont     string // branch to a child that has further siblings
	End      string // branch to the last child
}

// Empty returns the filler used for ancestor levels with no siblings
// left: spaces of the same width as the branch glyphs.
func (s Style) Empty() string {
	return strings.Repeat(" ", len([]rune(s.End)))
}

// valid reports whether all glyph strings have equal rune length.
func (s Style) valid() bool {
	n := len([]rune(s.Vertical))
	return len([]rune(s.Cont)) == n && len([]rune(s.End)) == n
}

// Built-in styles. The glyph sets are fixed; rendered output is meant to
// be byte-for-byte stable across versions.
var (
	// ASCIIStyle renders with plain ASCII characters:
	//
	//	root
	//	|-- sub0
	//	|   +-- sub0A
	//	+-- sub1
	ASCIIStyle = Style{Vertical: "|   ", Cont: "|-- ", End: "+-- "}

	// ContStyle renders with single-line box-drawing characters:
	//
	//	root
	//	├── sub0
	//	│   └── sub0A
	//	└── sub1
	ContStyle = Style{Vertical: "│   ", Cont: "├── ", End: "└── "}

	// ContRoundStyle is ContStyle with a rounded corner on the last
	// branch:
	//
	//	root
	//	├── sub0
	//	│   ╰── sub0A
	//	╰── sub1
	ContRoundStyle = Style{Vertical: "│   ", Cont: "├── ", End: "╰── "}

	// DoubleStyle renders with double-line box-drawing characters:
	//
	//	root
	//	╠══ sub0
	//	║   ╚══ sub0A
	//	╚══ sub1
	DoubleStyle = Style{Vertical: "║   ", Cont: "╠══ ", End: "╚══ "}
)
