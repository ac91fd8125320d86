package md2office

import (
	"regexp"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
)

// indentUnit is the number of leading spaces that make one list nesting
// level. Fixed at 2; a tab counts as one unit.
const indentUnit = 2

// maxHeadingLevel is the deepest ATX heading Markdown allows.
const maxHeadingLevel = 6

// Precompiled block-level patterns.
var (
	headingLine  = regexp.MustCompile(`^(#+)\s+(.+)$`)
	ruleLine     = regexp.MustCompile(`^(\*{3,}|-{3,}|_{3,})\s*$`)
	fenceLine    = regexp.MustCompile("^\\s*```\\s*(\\S*)\\s*$")
	tableLine    = regexp.MustCompile(`^\s*\|.*\|\s*$`)
	tableSepLine = regexp.MustCompile(`^\s*\|?[\s:|-]+\|?\s*$`)
	bulletItem   = regexp.MustCompile(`^([ \t]*)[-*+]\s+(.+)$`)
	numberedItem = regexp.MustCompile(`^([ \t]*)\d+\.\s+(.+)$`)
)

// blockParser tokenizes preprocessed Markdown into an ordered block
// sequence. It is total: any input produces a valid sequence, with
// unrecognized lines degrading to paragraphs.
type blockParser struct {
	stripper *inlineStripper
}

func newBlockParser() *blockParser {
	return &blockParser{stripper: newInlineStripper()}
}

// Parse splits content into lines and consumes them in a single pass.
// Blank lines are block separators only and never produce a block.
func (p *blockParser) Parse(content string) []Block {
	lines := strings.Split(content, "\n")
	var blocks []Block

	for i := 0; i < len(lines); {
		line := lines[i]

		switch {
		case strings.TrimSpace(line) == "":
			i++

		case headingLine.MatchString(line):
			m := headingLine.FindStringSubmatch(line)
			level := len(m[1])
			if level > maxHeadingLevel {
				level = maxHeadingLevel
			}
			blocks = append(blocks, Heading{Level: level, Text: p.stripper.Strip(strings.TrimSpace(m[2]))})
			i++

		case ruleLine.MatchString(line):
			blocks = append(blocks, Rule{})
			i++

		case isFenceLine(line):
			var code CodeBlock
			code, i = p.parseCodeBlock(lines, i)
			blocks = append(blocks, code)

		case tableLine.MatchString(line):
			var table Table
			table, i = p.parseTable(lines, i)
			blocks = append(blocks, table)

		case isListItem(line):
			var run []Block
			run, i = p.parseListRun(lines, i)
			blocks = append(blocks, run...)

		default:
			var para Paragraph
			var ok bool
			para, i, ok = p.parseParagraph(lines, i)
			if ok {
				blocks = append(blocks, para)
			}
		}
	}

	return blocks
}

// parseCodeBlock consumes a fenced code block starting at lines[i]. All
// lines are captured verbatim until a closing fence; an unterminated fence
// closes at end of input.
func (p *blockParser) parseCodeBlock(lines []string, i int) (CodeBlock, int) {
	tag := ""
	if m := fenceLine.FindStringSubmatch(lines[i]); m != nil {
		tag = m[1]
	} else {
		// Fence with trailing content beyond a single tag; take the first
		// field after the backticks.
		rest := strings.TrimPrefix(strings.TrimSpace(lines[i]), "```")
		if fields := strings.Fields(rest); len(fields) > 0 {
			tag = fields[0]
		}
	}
	i++

	var body []string
	for i < len(lines) && !strings.HasPrefix(strings.TrimSpace(lines[i]), "```") {
		body = append(body, lines[i])
		i++
	}
	if i < len(lines) {
		i++ // closing fence
	}

	return CodeBlock{Text: strings.Join(body, "\n"), Language: normalizeLanguage(tag)}, i
}

// parseTable consumes a pipe table starting at lines[i]. The first line is
// the header; a following separator row of dashes/colons is discarded; data
// rows continue until the first non-table line. Every row is normalized to
// the header's cell count: short rows padded with empty cells, long rows
// truncated.
func (p *blockParser) parseTable(lines []string, i int) (Table, int) {
	header := p.splitTableRow(lines[i])
	i++

	if i < len(lines) && isTableSeparator(lines[i]) {
		i++
	}

	var rows [][]string
	for i < len(lines) && tableLine.MatchString(lines[i]) {
		row := p.splitTableRow(lines[i])
		rows = append(rows, normalizeRow(row, len(header)))
		i++
	}

	return Table{Header: header, Rows: rows}, i
}

// splitTableRow parses one pipe-delimited row into stripped cells.
func (p *blockParser) splitTableRow(line string) []string {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "|")
	line = strings.TrimSuffix(line, "|")

	parts := strings.Split(line, "|")
	cells := make([]string, len(parts))
	for i, part := range parts {
		cells[i] = p.stripper.Strip(strings.TrimSpace(part))
	}
	return cells
}

// normalizeRow pads a short row with empty cells and truncates a long one
// so every row matches the header width.
func normalizeRow(row []string, want int) []string {
	if len(row) > want {
		return row[:want]
	}
	for len(row) < want {
		row = append(row, "")
	}
	return row
}

// isTableSeparator reports whether the line is a header separator row
// (dashes and optional colons between pipes).
func isTableSeparator(line string) bool {
	return tableSepLine.MatchString(line) && strings.Contains(line, "-")
}

// parseListRun consumes a contiguous run of list item lines. The run's
// ordered flag is fixed by the first item's marker; later items keep it
// even when marker styles mix. Items are grouped into List blocks by
// nesting depth, splitting whenever the depth changes.
func (p *blockParser) parseListRun(lines []string, i int) ([]Block, int) {
	type item struct {
		nesting int
		text    string
	}

	var items []item
	ordered := numberedItem.MatchString(lines[i])

	for i < len(lines) && isListItem(lines[i]) {
		m := bulletItem.FindStringSubmatch(lines[i])
		if m == nil {
			m = numberedItem.FindStringSubmatch(lines[i])
		}
		items = append(items, item{
			nesting: indentWidth(m[1]) / indentUnit,
			text:    p.stripper.Strip(strings.TrimSpace(m[2])),
		})
		i++
	}

	var blocks []Block
	for start := 0; start < len(items); {
		end := start
		for end < len(items) && items[end].nesting == items[start].nesting {
			end++
		}
		texts := make([]string, 0, end-start)
		for _, it := range items[start:end] {
			texts = append(texts, it.text)
		}
		blocks = append(blocks, List{Ordered: ordered, Items: texts, Nesting: items[start].nesting})
		start = end
	}

	return blocks, i
}

// parseParagraph accumulates consecutive plain lines into one paragraph,
// stopping at a blank line or the start of another block type. Lines are
// joined with single spaces.
func (p *blockParser) parseParagraph(lines []string, i int) (Paragraph, int, bool) {
	var parts []string
	for i < len(lines) && strings.TrimSpace(lines[i]) != "" && !isBlockStart(lines[i]) {
		parts = append(parts, strings.TrimSpace(lines[i]))
		i++
	}
	if len(parts) == 0 {
		// The line matched no block and no paragraph either (cannot happen
		// with the current grammar, but the parser must always advance).
		return Paragraph{}, i + 1, false
	}
	return Paragraph{Text: p.stripper.Strip(strings.Join(parts, " "))}, i, true
}

// isBlockStart reports whether the line opens a non-paragraph block.
func isBlockStart(line string) bool {
	return headingLine.MatchString(line) ||
		ruleLine.MatchString(line) ||
		isFenceLine(line) ||
		tableLine.MatchString(line) ||
		isListItem(line)
}

func isFenceLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "```")
}

func isListItem(line string) bool {
	return bulletItem.MatchString(line) || numberedItem.MatchString(line)
}

// indentWidth measures leading whitespace, counting a tab as one indent
// unit's worth of spaces.
func indentWidth(ws string) int {
	width := 0
	for _, r := range ws {
		if r == '\t' {
			width += indentUnit
		} else {
			width++
		}
	}
	return width
}

// normalizeLanguage resolves a fence info tag against chroma's lexer
// registry so aliases collapse to one canonical name ("golang" -> "go").
// Unrecognized tags pass through unchanged.
func normalizeLanguage(tag string) string {
	if tag == "" {
		return ""
	}
	if lexer := lexers.Get(tag); lexer != nil {
		return strings.ToLower(lexer.Config().Name)
	}
	return tag
}
