// Package docxml builds minimal WordprocessingML (.docx) packages. It
// covers exactly what a block-sequential document needs: styled
// paragraphs, numbered/bulleted paragraphs, shaded code paragraphs, and
// grid tables, serialized into an OPC zip with the styles and numbering
// parts the document references.
package docxml

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
)

// maxIndentLevel is the deepest numbering level WordprocessingML defines.
const maxIndentLevel = 8

// BulletNumID is the numbering instance shared by all bulleted lists.
// Decimal instances are allocated per list via NewDecimalNumbering so each
// numbered list restarts at 1.
const BulletNumID = 1

// HeadingStyle describes one heading paragraph style.
type HeadingStyle struct {
	SizePts float64
	Bold    bool
	Italic  bool
	Color   string // RGB hex, empty = inherit
}

// blockElement is a top-level body element: Paragraph or Table.
type blockElement interface {
	isBlockElement()
}

func (Paragraph) isBlockElement() {}
func (Table) isBlockElement() {}

// Document accumulates body elements and numbering instances, then
// serializes the complete package with Bytes.
type Document struct {
	fontName    string
	fontSizePts float64
	headings    map[int]HeadingStyle
	elements    []blockElement
	decimalNums int
}

// Option configures a Document.
type Option func(*Document)

// WithDefaultFont sets the Normal style font.
func WithDefaultFont(name string, sizePts float64) Option {
	return func(d *Document) {
		d.fontName = name
		d.fontSizePts = sizePts
	}
}

// WithHeadingStyle overrides the style for one heading level (1-4).
func WithHeadingStyle(level int, hs HeadingStyle) Option {
	return func(d *Document) {
		if level >= 1 && level <= maxHeadingStyles {
			d.headings[level] = hs
		}
	}
}

// New creates an empty document with Calibri 11 defaults.
func New(opts ...Option) *Document {
	d := &Document{
		fontName:    "Calibri",
		fontSizePts: 11,
		headings:    defaultHeadingStyles(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// AppendParagraph adds a paragraph to the document body.
func (d *Document) AppendParagraph(p Paragraph) {
	d.elements = append(d.elements, p)
}

// AppendTable adds a table to the document body.
func (d *Document) AppendTable(t Table) {
	d.elements = append(d.elements, t)
}

// NewDecimalNumbering allocates a fresh decimal numbering instance and
// returns its numId. Each instance restarts counting at 1.
func (d *Document) NewDecimalNumbering() int {
	d.decimalNums++
	return BulletNumID + d.decimalNums
}

// NumberedParagraph builds a list paragraph bound to a numbering instance.
// The indent level is clamped to the format's maximum depth.
func NumberedParagraph(style string, numID, level int, runs ...Run) Paragraph {
	if level < 0 {
		level = 0
	}
	if level > maxIndentLevel {
		level = maxIndentLevel
	}
	return Paragraph{
		Props: &ParaProps{
			Style: &Val{Val: style},
			NumPr: &NumPr{
				ILvl:  Val{Val: strconv.Itoa(level)},
				NumID: Val{Val: strconv.Itoa(numID)},
			},
		},
		Runs: runs,
	}
}

// StyledParagraph builds a paragraph referencing a named style.
func StyledParagraph(style string, runs ...Run) Paragraph {
	return Paragraph{Props: &ParaProps{Style: &Val{Val: style}}, Runs: runs}
}

// TextRun builds a run, marking the text as whitespace-preserving when it
// has leading or trailing spaces.
func TextRun(text string, props *RunProps) Run {
	t := &Text{Value: text}
	if len(text) > 0 && (text[0] == ' ' || text[0] == '\t' || text[len(text)-1] == ' ' || text[len(text)-1] == '\t') {
		t.Space = "preserve"
	}
	return Run{Props: props, Text: t}
}

// PreservedRun builds a run whose whitespace is kept verbatim.
func PreservedRun(text string, props *RunProps) Run {
	return Run{Props: props, Text: &Text{Space: "preserve", Value: text}}
}

// BreakRun emits a line break within a paragraph.
func BreakRun() Run {
	return Run{Break: &Toggle{}}
}

// HalfPoints formats a point size as the half-point string w:sz expects.
func HalfPoints(pts float64) string {
	return strconv.Itoa(int(pts * 2))
}

// Bytes serializes the document into a complete .docx package.
func (d *Document) Bytes() ([]byte, error) {
	docPart, err := d.documentPart()
	if err != nil {
		return nil, fmt.Errorf("building document.xml: %w", err)
	}
	stylesPart, err := d.stylesPart()
	if err != nil {
		return nil, fmt.Errorf("building styles.xml: %w", err)
	}
	numberingPart, err := d.numberingPart()
	if err != nil {
		return nil, fmt.Errorf("building numbering.xml: %w", err)
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	parts := []struct {
		name string
		data []byte
	}{
		{"[Content_Types].xml", []byte(contentTypesXML)},
		{"_rels/.rels", []byte(packageRelsXML)},
		{"word/_rels/document.xml.rels", []byte(documentRelsXML)},
		{"word/document.xml", docPart},
		{"word/styles.xml", stylesPart},
		{"word/numbering.xml", numberingPart},
	}
	for _, part := range parts {
		f, err := zw.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("creating %s: %w", part.name, err)
		}
		if _, err := f.Write(part.data); err != nil {
			return nil, fmt.Errorf("writing %s: %w", part.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("closing package: %w", err)
	}
	return buf.Bytes(), nil
}

// documentPart marshals the body elements in document order.
func (d *Document) documentPart() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	root := xml.StartElement{
		Name: xml.Name{Local: "w:document"},
		Attr: []xml.Attr{{Name: xml.Name{Local: "xmlns:w"}, Value: nsW}},
	}
	body := xml.StartElement{Name: xml.Name{Local: "w:body"}}

	if err := enc.EncodeToken(root); err != nil {
		return nil, err
	}
	if err := enc.EncodeToken(body); err != nil {
		return nil, err
	}
	for _, el := range d.elements {
		if err := enc.Encode(el); err != nil {
			return nil, err
		}
	}
	if err := enc.Encode(defaultSectProps()); err != nil {
		return nil, err
	}
	if err := enc.EncodeToken(body.End()); err != nil {
		return nil, err
	}
	if err := enc.EncodeToken(root.End()); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
