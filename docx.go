package md2office

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-md2office/internal/docxml"
)

// tableCellFontSize is the point size used for table cell text.
const tableCellFontSize = 9

// wordRenderer maps blocks onto WordprocessingML paragraphs and tables,
// mirroring the Excel renderer's layout in paragraph-sequential form.
type wordRenderer struct{}

func newWordRenderer() *wordRenderer {
	return &wordRenderer{}
}

// Render builds the document body block by block and serializes the
// package.
func (r *wordRenderer) Render(ctx context.Context, blocks []Block) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc := docxml.New(
		docxml.WithDefaultFont(bodyFontName, bodyFontSize),
		docxml.WithHeadingStyle(1, headingDocxStyle(1)),
		docxml.WithHeadingStyle(2, headingDocxStyle(2)),
		docxml.WithHeadingStyle(3, headingDocxStyle(3)),
		docxml.WithHeadingStyle(4, headingDocxStyle(4)),
	)

	// Consecutive ordered list blocks come from one source list split by
	// nesting; they share a numbering instance so the numbers continue.
	orderedNumID := 0
	for i, block := range blocks {
		switch b := block.(type) {
		case Heading:
			doc.AppendParagraph(docxml.StyledParagraph(docxml.HeadingStyleID(b.Level), textRuns(b.Text, nil)...))

		case Paragraph:
			doc.AppendParagraph(docxml.Paragraph{Runs: textRuns(b.Text, nil)})

		case Table:
			doc.AppendTable(buildTable(b))

		case List:
			style := docxml.StyleListBullet
			numID := docxml.BulletNumID
			if b.Ordered {
				style = docxml.StyleListNumber
				if orderedNumID == 0 || !continuesOrderedRun(blocks, i) {
					orderedNumID = doc.NewDecimalNumbering()
				}
				numID = orderedNumID
			}
			for _, item := range b.Items {
				doc.AppendParagraph(docxml.NumberedParagraph(style, numID, b.Nesting, textRuns(item, nil)...))
			}

		case CodeBlock:
			for _, line := range strings.Split(b.Text, "\n") {
				doc.AppendParagraph(codeParagraph(line))
			}

		case Rule:
			doc.AppendParagraph(ruleParagraph())

		default:
			return nil, fmt.Errorf("%w: unhandled block type %T", ErrRenderFailed, block)
		}
	}

	out, err := doc.Bytes()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	return out, nil
}

// headingDocxStyle adapts the shared heading table to a docxml style.
// Heading fills are an Excel concern; the Word side keeps size, weight,
// and font color.
func headingDocxStyle(level int) docxml.HeadingStyle {
	hs := headingStyleFor(level)
	return docxml.HeadingStyle{
		SizePts: hs.Size,
		Bold:    hs.Bold,
		Italic:  hs.Italic,
		Color:   hs.FontColor,
	}
}

// continuesOrderedRun reports whether blocks[i] extends an ordered list
// run started by the immediately preceding block.
func continuesOrderedRun(blocks []Block, i int) bool {
	if i == 0 {
		return false
	}
	prev, ok := blocks[i-1].(List)
	return ok && prev.Ordered
}

// textRuns converts stripped text into runs, turning embedded newlines
// (from <br> tags) into in-paragraph line breaks.
func textRuns(text string, props *docxml.RunProps) []docxml.Run {
	lines := strings.Split(text, "\n")
	runs := make([]docxml.Run, 0, 2*len(lines)-1)
	for i, line := range lines {
		if i > 0 {
			runs = append(runs, docxml.BreakRun())
		}
		runs = append(runs, docxml.TextRun(line, props))
	}
	return runs
}

// buildTable renders a parsed table as a grid-styled table: shaded bold
// header row, one column per header cell, full page width.
func buildTable(t Table) docxml.Table {
	cols := make([]docxml.GridCol, len(t.Header))

	rows := make([]docxml.TableRow, 0, len(t.Rows)+1)
	rows = append(rows, buildTableRow(t.Header, true))
	for _, row := range t.Rows {
		rows = append(rows, buildTableRow(row, false))
	}

	return docxml.Table{
		Props: docxml.TableProps{
			Style: &docxml.Val{Val: docxml.StyleTableGrid},
			// 5000 pct = 100% of the text width.
			Width: &docxml.TableWidth{W: "5000", Type: "pct"},
		},
		Grid: docxml.TableGrid{Cols: cols},
		Rows: rows,
	}
}

func buildTableRow(cells []string, header bool) docxml.TableRow {
	size := &docxml.Val{Val: docxml.HalfPoints(tableCellFontSize)}
	out := make([]docxml.TableCell, 0, len(cells))
	for _, cell := range cells {
		props := &docxml.RunProps{Size: size, SizeCs: size}
		var cellProps *docxml.CellProps
		if header {
			props.Bold = &docxml.Toggle{}
			cellProps = &docxml.CellProps{
				Shading: &docxml.Shading{Val: "clear", Color: "auto", Fill: tableHeaderFill},
			}
		}

		// Newlines inside a cell (from <br>) become separate paragraphs.
		var paragraphs []docxml.Paragraph
		for _, line := range strings.Split(cell, "\n") {
			paragraphs = append(paragraphs, docxml.Paragraph{Runs: []docxml.Run{docxml.TextRun(line, props)}})
		}
		out = append(out, docxml.TableCell{Props: cellProps, Paragraphs: paragraphs})
	}
	return docxml.TableRow{Cells: out}
}

// codeParagraph renders one code line: monospace, shaded, whitespace
// preserved so indentation survives.
func codeParagraph(line string) docxml.Paragraph {
	size := &docxml.Val{Val: docxml.HalfPoints(codeFontSize)}
	return docxml.Paragraph{
		Props: &docxml.ParaProps{
			Shading: &docxml.Shading{Val: "clear", Color: "auto", Fill: codeBlockFill},
		},
		Runs: []docxml.Run{docxml.PreservedRun(line, &docxml.RunProps{
			Fonts:  &docxml.Fonts{ASCII: codeFontName, HANSI: codeFontName},
			Size:   size,
			SizeCs: size,
		})},
	}
}

// ruleParagraph renders a horizontal rule as an empty paragraph with a
// bottom border.
func ruleParagraph() docxml.Paragraph {
	return docxml.Paragraph{
		Props: &docxml.ParaProps{
			Borders: &docxml.ParaBorders{
				Bottom: &docxml.BorderEdge{Val: "single", Size: "6", Space: "1", Color: ruleColor},
			},
		},
	}
}
