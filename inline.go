package md2office

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	gparser "github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Precompiled regex patterns for syntax goldmark's inline parsers do not
// cover: HTML line breaks and ==highlight== marks.
var (
	brTag          = regexp.MustCompile(`(?i)<br\s*/?>`)
	highlightMarks = regexp.MustCompile(`==(.*?)==`)
)

// inlineStripper reduces inline-formatted Markdown to its literal text:
// **bold** -> bold, [text](url) -> text, `code` -> code, and so on.
// <br> tags become newlines so renderers can split multi-line cells.
//
// Stripping runs on goldmark's inline parsers. The block grammar is
// restricted to paragraphs so a table cell starting with "-" or "#" is
// never reinterpreted as a list or heading.
type inlineStripper struct {
	parser gparser.Parser
}

// newInlineStripper builds a stripper with the default inline grammar plus
// GFM strikethrough.
func newInlineStripper() *inlineStripper {
	inline := append(
		gparser.DefaultInlineParsers(),
		util.Prioritized(extension.NewStrikethroughParser(), 550),
	)
	return &inlineStripper{
		parser: gparser.NewParser(
			gparser.WithBlockParsers(util.Prioritized(gparser.NewParagraphParser(), 100)),
			gparser.WithInlineParsers(inline...),
		),
	}
}

// Strip returns the plain text content of an inline Markdown fragment.
// Safe for concurrent use; each call parses with a fresh reader.
func (s *inlineStripper) Strip(fragment string) string {
	if fragment == "" {
		return ""
	}

	fragment = brTag.ReplaceAllString(fragment, "\n")
	fragment = highlightMarks.ReplaceAllString(fragment, "$1")

	src := []byte(fragment)
	root := s.parser.Parse(text.NewReader(src))

	var b strings.Builder
	b.Grow(len(src))

	// Walk never returns an error here: the visitor below cannot fail.
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			// Blank-line separated fragments parse as sibling paragraphs;
			// keep them on separate lines.
			if n.Kind() == ast.KindParagraph && n.NextSibling() != nil {
				b.WriteByte('\n')
			}
			return ast.WalkContinue, nil
		}
		switch t := n.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte('\n')
			}
		case *ast.String:
			b.Write(t.Value)
		case *ast.AutoLink:
			b.Write(t.Label(src))
		}
		return ast.WalkContinue, nil
	})

	return strings.TrimRight(b.String(), "\n")
}
