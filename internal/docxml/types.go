package docxml

import "encoding/xml"

// XML namespaces used in DOCX packages.
const (
	nsW   = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsRel = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsCT  = "http://schemas.openxmlformats.org/package/2006/content-types"
)

// Val is a WordprocessingML value element (<w:x w:val="..."/>).
type Val struct {
	Val string `xml:"w:val,attr"`
}

// Toggle marks a boolean run property such as <w:b/> or <w:i/>.
// A nil pointer omits the property entirely.
type Toggle struct{}

// Paragraph is a <w:p> element.
type Paragraph struct {
	XMLName xml.Name   `xml:"w:p"`
	Props   *ParaProps `xml:"w:pPr"`
	Runs    []Run      `xml:"w:r"`
}

// ParaProps is <w:pPr>. Field order follows the CT_PPrBase schema sequence
// so strict consumers accept the output.
type ParaProps struct {
	Style   *Val         `xml:"w:pStyle"`
	NumPr   *NumPr       `xml:"w:numPr"`
	Borders *ParaBorders `xml:"w:pBdr"`
	Shading *Shading     `xml:"w:shd"`
	Indent  *Indent      `xml:"w:ind"`
	Outline *Val         `xml:"w:outlineLvl"`
}

// NumPr attaches a paragraph to a numbering definition.
type NumPr struct {
	ILvl  Val `xml:"w:ilvl"`
	NumID Val `xml:"w:numId"`
}

// ParaBorders is <w:pBdr>; only the bottom edge is used here.
type ParaBorders struct {
	Bottom *BorderEdge `xml:"w:bottom"`
}

// BorderEdge is one border side.
type BorderEdge struct {
	Val   string `xml:"w:val,attr"`
	Size  string `xml:"w:sz,attr"`
	Space string `xml:"w:space,attr"`
	Color string `xml:"w:color,attr"`
}

// Shading is <w:shd>, used for paragraph and cell backgrounds.
type Shading struct {
	Val   string `xml:"w:val,attr"`
	Color string `xml:"w:color,attr"`
	Fill  string `xml:"w:fill,attr"`
}

// Indent is <w:ind> with values in twips.
type Indent struct {
	Left    string `xml:"w:left,attr,omitempty"`
	Hanging string `xml:"w:hanging,attr,omitempty"`
}

// Run is a <w:r> text run. Break, when set, emits <w:br/> before the text,
// which is how newlines inside one paragraph are represented.
type Run struct {
	XMLName xml.Name  `xml:"w:r"`
	Props   *RunProps `xml:"w:rPr"`
	Break   *Toggle   `xml:"w:br"`
	Text    *Text     `xml:"w:t"`
}

// RunProps is <w:rPr>; field order follows the CT_RPr sequence.
type RunProps struct {
	Fonts  *Fonts  `xml:"w:rFonts"`
	Bold   *Toggle `xml:"w:b"`
	Italic *Toggle `xml:"w:i"`
	Color  *Val    `xml:"w:color"`
	Size   *Val    `xml:"w:sz"`   // half-points
	SizeCs *Val    `xml:"w:szCs"` // half-points, complex scripts
}

// Fonts is <w:rFonts>.
type Fonts struct {
	ASCII    string `xml:"w:ascii,attr"`
	HANSI    string `xml:"w:hAnsi,attr"`
	EastAsia string `xml:"w:eastAsia,attr,omitempty"`
}

// Text is <w:t>. Space must be "preserve" when leading, trailing, or
// consecutive whitespace matters (code lines).
type Text struct {
	Space string `xml:"xml:space,attr,omitempty"`
	Value string `xml:",chardata"`
}

// Table is a <w:tbl> element.
type Table struct {
	XMLName xml.Name   `xml:"w:tbl"`
	Props   TableProps `xml:"w:tblPr"`
	Grid    TableGrid  `xml:"w:tblGrid"`
	Rows    []TableRow `xml:"w:tr"`
}

// TableProps is <w:tblPr>.
type TableProps struct {
	Style *Val        `xml:"w:tblStyle"`
	Width *TableWidth `xml:"w:tblW"`
}

// TableWidth is <w:tblW>; Type "pct" measures W in fiftieths of a percent.
type TableWidth struct {
	W    string `xml:"w:w,attr"`
	Type string `xml:"w:type,attr"`
}

// TableGrid declares the column layout.
type TableGrid struct {
	Cols []GridCol `xml:"w:gridCol"`
}

// GridCol is one <w:gridCol>.
type GridCol struct {
	W string `xml:"w:w,attr,omitempty"`
}

// TableRow is <w:tr>.
type TableRow struct {
	XMLName xml.Name    `xml:"w:tr"`
	Cells   []TableCell `xml:"w:tc"`
}

// TableCell is <w:tc>. A cell must contain at least one paragraph.
type TableCell struct {
	XMLName    xml.Name    `xml:"w:tc"`
	Props      *CellProps  `xml:"w:tcPr"`
	Paragraphs []Paragraph `xml:"w:p"`
}

// CellProps is <w:tcPr>.
type CellProps struct {
	Shading *Shading `xml:"w:shd"`
}

// sectProps is the trailing <w:sectPr>: A4 portrait with one-inch margins.
type sectProps struct {
	XMLName xml.Name    `xml:"w:sectPr"`
	Size    pageSize    `xml:"w:pgSz"`
	Margins pageMargins `xml:"w:pgMar"`
}

type pageSize struct {
	W string `xml:"w:w,attr"`
	H string `xml:"w:h,attr"`
}

type pageMargins struct {
	Top    string `xml:"w:top,attr"`
	Right  string `xml:"w:right,attr"`
	Bottom string `xml:"w:bottom,attr"`
	Left   string `xml:"w:left,attr"`
	Header string `xml:"w:header,attr"`
	Footer string `xml:"w:footer,attr"`
}

func defaultSectProps() sectProps {
	return sectProps{
		Size:    pageSize{W: "11906", H: "16838"},
		Margins: pageMargins{Top: "1440", Right: "1440", Bottom: "1440", Left: "1440", Header: "720", Footer: "720"},
	}
}
