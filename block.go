package md2office

// Block is one semantic unit of parsed Markdown: a heading, paragraph,
// table, list, code block, or horizontal rule. The set of implementations
// is closed; renderers type-switch over it and treat an unknown variant as
// a programming error.
//
// Blocks are immutable once produced by the parser. Renderers must not
// modify them.
type Block interface {
	isBlock()
}

// Heading is an ATX heading. Level is clamped to the 1-6 range Markdown
// allows; Text has inline markers stripped.
type Heading struct {
	Level int
	Text  string
}

// Paragraph is a run of plain text lines joined with single spaces.
type Paragraph struct {
	Text string
}

// Table is a pipe-delimited table. Every row has exactly len(Header) cells:
// short rows are padded with empty cells and long rows truncated at parse
// time, so renderers never see a ragged table.
type Table struct {
	Header []string
	Rows   [][]string
}

// List is a contiguous run of list items at one nesting depth. A source
// list whose indentation changes is split into consecutive List blocks,
// one per depth segment. Ordered is decided by the first marker of the
// whole run and does not change even if later items mix marker styles.
type List struct {
	Ordered bool
	Items   []string
	Nesting int
}

// CodeBlock is a fenced code block. Text is the verbatim body without the
// fences; Language is the canonical lexer name for the fence's info tag,
// or the raw tag when no lexer matches, or empty.
type CodeBlock struct {
	Text     string
	Language string
}

// Rule is a horizontal rule. It carries no payload.
type Rule struct{}

func (Heading) isBlock()   {}
func (Paragraph) isBlock() {}
func (Table) isBlock()     {}
func (List) isBlock()      {}
func (CodeBlock) isBlock() {}
func (Rule) isBlock()      {}
