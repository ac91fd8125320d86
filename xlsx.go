package md2office

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// documentRenderer maps the block model to one output format.
type documentRenderer interface {
	Render(ctx context.Context, blocks []Block) ([]byte, error)
}

// fullRowSpan is the number of columns full-width elements cover: heading
// fills, code block rows, and rules.
const fullRowSpan = 7

// maxColumnWidth caps the auto-sized column width.
const maxColumnWidth = 60

// excelRenderer maps blocks onto a single worksheet, one block after
// another down a row cursor that never moves back up.
type excelRenderer struct {
	sheetName string
}

func newExcelRenderer(sheetName string) *excelRenderer {
	return &excelRenderer{sheetName: sheetName}
}

// xlsxStyles holds the style IDs registered on one workbook. Styles are
// per-file in xlsx, so the set is rebuilt for every render.
type xlsxStyles struct {
	heading     map[int]int
	body        int
	list        int
	tableHeader int
	tableBody   int
	code        int
	rule        int
}

func newXlsxStyles(f *excelize.File) (*xlsxStyles, error) {
	s := &xlsxStyles{heading: make(map[int]int, len(headingStyles))}

	for level := 1; level <= maxHeadingLevel; level++ {
		hs := headingStyleFor(level)
		style := &excelize.Style{
			Font: &excelize.Font{
				Family: bodyFontName,
				Size:   hs.Size,
				Bold:   hs.Bold,
				Italic: hs.Italic,
				Color:  hs.FontColor,
			},
			Alignment: &excelize.Alignment{Vertical: "center"},
		}
		if hs.Fill != "" {
			style.Fill = excelize.Fill{Type: "pattern", Color: []string{hs.Fill}, Pattern: 1}
		}
		id, err := f.NewStyle(style)
		if err != nil {
			return nil, fmt.Errorf("heading style %d: %w", level, err)
		}
		s.heading[level] = id
	}

	var err error
	register := func(style *excelize.Style) int {
		if err != nil {
			return 0
		}
		var id int
		id, err = f.NewStyle(style)
		return id
	}

	bodyFont := &excelize.Font{Family: bodyFontName, Size: bodyFontSize}
	thin := func(types ...string) []excelize.Border {
		borders := make([]excelize.Border, 0, len(types))
		for _, t := range types {
			borders = append(borders, excelize.Border{Type: t, Style: 1, Color: "000000"})
		}
		return borders
	}

	s.body = register(&excelize.Style{
		Font:      bodyFont,
		Alignment: &excelize.Alignment{Vertical: "center", WrapText: true},
	})
	s.list = register(&excelize.Style{
		Font:      bodyFont,
		Alignment: &excelize.Alignment{Vertical: "center"},
	})
	s.tableHeader = register(&excelize.Style{
		Font:      &excelize.Font{Family: bodyFontName, Size: bodyFontSize, Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{tableHeaderFill}, Pattern: 1},
		Border:    thin("left", "right", "top", "bottom"),
		Alignment: &excelize.Alignment{Vertical: "center", WrapText: true},
	})
	s.tableBody = register(&excelize.Style{
		Font:      bodyFont,
		Border:    thin("left", "right", "top", "bottom"),
		Alignment: &excelize.Alignment{Vertical: "center", WrapText: true},
	})
	s.code = register(&excelize.Style{
		Font: &excelize.Font{Family: codeFontName, Size: codeFontSize},
		Fill: excelize.Fill{Type: "pattern", Color: []string{codeBlockFill}, Pattern: 1},
	})
	s.rule = register(&excelize.Style{
		Border: []excelize.Border{{Type: "bottom", Style: 2, Color: ruleColor}},
	})
	if err != nil {
		return nil, fmt.Errorf("registering styles: %w", err)
	}

	return s, nil
}

// Render writes the block sequence into a fresh workbook and returns the
// serialized bytes.
func (r *excelRenderer) Render(ctx context.Context, blocks []Block) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", r.sheetName); err != nil {
		return nil, fmt.Errorf("%w: renaming sheet: %v", ErrRenderFailed, err)
	}

	styles, err := newXlsxStyles(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}

	w := &sheetWriter{f: f, sheet: r.sheetName, styles: styles, row: 1, widths: map[int]int{}}
	for _, block := range blocks {
		if err := w.writeBlock(block); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
		}
	}
	if err := w.sizeColumns(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	return buf.Bytes(), nil
}

// sheetWriter tracks the row cursor and per-column content widths while
// blocks are written.
type sheetWriter struct {
	f      *excelize.File
	sheet  string
	styles *xlsxStyles
	row    int
	widths map[int]int
}

func (w *sheetWriter) writeBlock(block Block) error {
	switch b := block.(type) {
	case Heading:
		return w.writeHeading(b)
	case Paragraph:
		return w.setCell(1, b.Text, w.styles.body, true)
	case Table:
		return w.writeTable(b)
	case List:
		return w.writeList(b)
	case CodeBlock:
		return w.writeCode(b)
	case Rule:
		return w.writeRule()
	default:
		return fmt.Errorf("unhandled block type %T", block)
	}
}

func (w *sheetWriter) writeHeading(h Heading) error {
	style := w.styles.heading[h.Level]
	cell, err := excelize.CoordinatesToCellName(1, w.row)
	if err != nil {
		return err
	}
	if err := w.f.SetCellValue(w.sheet, cell, h.Text); err != nil {
		return err
	}
	w.observe(1, h.Text)

	// Levels 1-3 carry a background fill across the full heading span.
	last := cell
	if headingStyleFor(h.Level).Fill != "" {
		if last, err = excelize.CoordinatesToCellName(fullRowSpan, w.row); err != nil {
			return err
		}
	}
	if err := w.f.SetCellStyle(w.sheet, cell, last, style); err != nil {
		return err
	}

	height := 22.0
	if h.Level <= 2 {
		height = 28.0
	}
	if err := w.f.SetRowHeight(w.sheet, w.row, height); err != nil {
		return err
	}
	w.row++
	return nil
}

func (w *sheetWriter) writeTable(t Table) error {
	rows := append([][]string{t.Header}, t.Rows...)
	for ri, cells := range rows {
		style := w.styles.tableBody
		if ri == 0 {
			style = w.styles.tableHeader
		}
		for ci, text := range cells {
			if err := w.setCellNoAdvance(ci+1, text, style); err != nil {
				return err
			}
		}
		w.row++
	}
	w.row++ // spacer after table
	return nil
}

func (w *sheetWriter) writeList(l List) error {
	indent := strings.Repeat("  ", l.Nesting)
	for i, item := range l.Items {
		prefix := bulletGlyph + " "
		if l.Ordered {
			prefix = fmt.Sprintf("%d. ", i+1)
		}
		if err := w.setCell(1, indent+prefix+item, w.styles.list, true); err != nil {
			return err
		}
	}
	w.row++ // spacer after list
	return nil
}

func (w *sheetWriter) writeCode(c CodeBlock) error {
	for _, line := range strings.Split(c.Text, "\n") {
		first, err := excelize.CoordinatesToCellName(1, w.row)
		if err != nil {
			return err
		}
		last, err := excelize.CoordinatesToCellName(fullRowSpan, w.row)
		if err != nil {
			return err
		}
		if err := w.f.MergeCell(w.sheet, first, last); err != nil {
			return err
		}
		if err := w.setCell(1, line, w.styles.code, true); err != nil {
			return err
		}
	}
	w.row++ // spacer after code
	return nil
}

func (w *sheetWriter) writeRule() error {
	first, err := excelize.CoordinatesToCellName(1, w.row)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(fullRowSpan, w.row)
	if err != nil {
		return err
	}
	if err := w.f.SetCellStyle(w.sheet, first, last, w.styles.rule); err != nil {
		return err
	}
	w.row++
	return nil
}

// setCell writes value and style at (col, row) and advances the cursor.
func (w *sheetWriter) setCell(col int, value string, style int, advance bool) error {
	if err := w.setCellNoAdvance(col, value, style); err != nil {
		return err
	}
	if advance {
		w.row++
	}
	return nil
}

func (w *sheetWriter) setCellNoAdvance(col int, value string, style int) error {
	cell, err := excelize.CoordinatesToCellName(col, w.row)
	if err != nil {
		return err
	}
	if err := w.f.SetCellValue(w.sheet, cell, value); err != nil {
		return err
	}
	if err := w.f.SetCellStyle(w.sheet, cell, cell, style); err != nil {
		return err
	}
	w.observe(col, value)
	return nil
}

// observe records the widest line written to a column.
func (w *sheetWriter) observe(col int, value string) {
	for _, line := range strings.Split(value, "\n") {
		if n := len([]rune(line)); n > w.widths[col] {
			w.widths[col] = n
		}
	}
}

// sizeColumns widens each used column to fit its longest content, capped
// so a single huge cell cannot blow up the layout.
func (w *sheetWriter) sizeColumns() error {
	for col, width := range w.widths {
		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return err
		}
		size := float64(width + 4)
		if size > maxColumnWidth {
			size = maxColumnWidth
		}
		if err := w.f.SetColWidth(w.sheet, name, name, size); err != nil {
			return err
		}
	}
	return nil
}
