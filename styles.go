package md2office

// Shared styling tables used by both renderers. These are process-wide
// constants initialized once; renderers only read them.

// Font names for body and code text.
const (
	bodyFontName = "Yu Gothic"
	codeFontName = "Consolas"
)

// Point sizes for body and code text.
const (
	bodyFontSize = 10
	codeFontSize = 9
)

// headingStyle describes how one heading level looks in either output.
type headingStyle struct {
	Size      float64 // font size in points
	Bold      bool
	Italic    bool
	FontColor string // RGB hex, empty = default
	Fill      string // RGB hex background, empty = none
}

// headingStyles maps heading level (1-6) to its style. Level 1 is the
// boldest and largest; levels 1-3 carry a background fill.
var headingStyles = map[int]headingStyle{
	1: {Size: 16, Bold: true, FontColor: "FFFFFF", Fill: "1F4E79"},
	2: {Size: 14, Bold: true, FontColor: "FFFFFF", Fill: "2E75B6"},
	3: {Size: 12, Bold: true, FontColor: "1F4E79", Fill: "9DC3E6"},
	4: {Size: 11, Bold: true},
	5: {Size: 10, Bold: true},
	6: {Size: 10, Bold: true, Italic: true},
}

// headingStyleFor returns the style for a heading level, falling back to
// the level 6 style for out-of-range input.
func headingStyleFor(level int) headingStyle {
	if s, ok := headingStyles[level]; ok {
		return s
	}
	return headingStyles[maxHeadingLevel]
}

// Fill and border colors shared by both renderers.
const (
	tableHeaderFill = "D6E4F0"
	codeBlockFill   = "F2F2F2"
	ruleColor       = "888888"
)

// bulletGlyph prefixes unordered list items in the Excel output and is the
// bullet character in the Word numbering definition.
const bulletGlyph = "•"
