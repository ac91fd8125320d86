package docxml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
)

// maxHeadingStyles is the deepest built-in heading style emitted.
const maxHeadingStyles = 4

// Style IDs referenced by documents built with this package.
const (
	StyleNormal     = "Normal"
	StyleHeading    = "Heading" // Heading1..Heading4
	StyleListBullet = "ListBullet"
	StyleListNumber = "ListNumber"
	StyleTableGrid  = "TableGrid"
)

// HeadingStyleID returns the style ID for a heading level, clamped to the
// deepest emitted style.
func HeadingStyleID(level int) string {
	if level < 1 {
		level = 1
	}
	if level > maxHeadingStyles {
		level = maxHeadingStyles
	}
	return StyleHeading + strconv.Itoa(level)
}

func defaultHeadingStyles() map[int]HeadingStyle {
	return map[int]HeadingStyle{
		1: {SizePts: 16, Bold: true},
		2: {SizePts: 14, Bold: true},
		3: {SizePts: 12, Bold: true},
		4: {SizePts: 11, Bold: true},
	}
}

// stylesXML is the root of word/styles.xml.
type stylesXML struct {
	XMLName     xml.Name    `xml:"w:styles"`
	XMLNSW      string      `xml:"xmlns:w,attr"`
	DocDefaults docDefaults `xml:"w:docDefaults"`
	Styles      []styleDef  `xml:"w:style"`
}

type docDefaults struct {
	RPrDefault rPrDefault `xml:"w:rPrDefault"`
}

type rPrDefault struct {
	RPr *RunProps `xml:"w:rPr"`
}

// styleDef is one <w:style> definition.
type styleDef struct {
	Type    string      `xml:"w:type,attr"`
	ID      string      `xml:"w:styleId,attr"`
	Default string      `xml:"w:default,attr,omitempty"`
	Name    Val         `xml:"w:name"`
	BasedOn *Val        `xml:"w:basedOn"`
	PPr     *ParaProps  `xml:"w:pPr"`
	RPr     *RunProps   `xml:"w:rPr"`
	TblPr   *tblStylePr `xml:"w:tblPr"`
}

// tblStylePr carries the table borders for the grid table style.
type tblStylePr struct {
	Borders tblBorders `xml:"w:tblBorders"`
}

type tblBorders struct {
	Top     BorderEdge `xml:"w:top"`
	Left    BorderEdge `xml:"w:left"`
	Bottom  BorderEdge `xml:"w:bottom"`
	Right   BorderEdge `xml:"w:right"`
	InsideH BorderEdge `xml:"w:insideH"`
	InsideV BorderEdge `xml:"w:insideV"`
}

// stylesPart builds word/styles.xml from the document's font and heading
// configuration.
func (d *Document) stylesPart() ([]byte, error) {
	defFonts := &Fonts{ASCII: d.fontName, HANSI: d.fontName, EastAsia: d.fontName}
	defSize := &Val{Val: HalfPoints(d.fontSizePts)}

	styles := []styleDef{
		{
			Type:    "paragraph",
			ID:      StyleNormal,
			Default: "1",
			Name:    Val{Val: "Normal"},
			RPr:     &RunProps{Fonts: defFonts, Size: defSize, SizeCs: defSize},
		},
	}

	for level := 1; level <= maxHeadingStyles; level++ {
		hs := d.headings[level]
		rpr := &RunProps{Size: &Val{Val: HalfPoints(hs.SizePts)}, SizeCs: &Val{Val: HalfPoints(hs.SizePts)}}
		if hs.Bold {
			rpr.Bold = &Toggle{}
		}
		if hs.Italic {
			rpr.Italic = &Toggle{}
		}
		if hs.Color != "" {
			rpr.Color = &Val{Val: hs.Color}
		}
		styles = append(styles, styleDef{
			Type:    "paragraph",
			ID:      HeadingStyleID(level),
			Name:    Val{Val: fmt.Sprintf("heading %d", level)},
			BasedOn: &Val{Val: StyleNormal},
			PPr:     &ParaProps{Outline: &Val{Val: strconv.Itoa(level - 1)}},
			RPr:     rpr,
		})
	}

	styles = append(styles,
		styleDef{
			Type:    "paragraph",
			ID:      StyleListBullet,
			Name:    Val{Val: "List Bullet"},
			BasedOn: &Val{Val: StyleNormal},
		},
		styleDef{
			Type:    "paragraph",
			ID:      StyleListNumber,
			Name:    Val{Val: "List Number"},
			BasedOn: &Val{Val: StyleNormal},
		},
		styleDef{
			Type: "table",
			ID:   StyleTableGrid,
			Name: Val{Val: "Table Grid"},
			TblPr: &tblStylePr{Borders: tblBorders{
				Top:     gridBorder(),
				Left:    gridBorder(),
				Bottom:  gridBorder(),
				Right:   gridBorder(),
				InsideH: gridBorder(),
				InsideV: gridBorder(),
			}},
		},
	)

	root := stylesXML{
		XMLNSW:      nsW,
		DocDefaults: docDefaults{RPrDefault: rPrDefault{RPr: &RunProps{Fonts: defFonts, Size: defSize, SizeCs: defSize}}},
		Styles:      styles,
	}
	return marshalPart(root)
}

func gridBorder() BorderEdge {
	return BorderEdge{Val: "single", Size: "4", Space: "0", Color: "auto"}
}

// numberingXML is the root of word/numbering.xml.
type numberingXML struct {
	XMLName      xml.Name      `xml:"w:numbering"`
	XMLNSW       string        `xml:"xmlns:w,attr"`
	AbstractNums []abstractNum `xml:"w:abstractNum"`
	Nums         []num         `xml:"w:num"`
}

type abstractNum struct {
	ID     string     `xml:"w:abstractNumId,attr"`
	Levels []numLevel `xml:"w:lvl"`
}

type numLevel struct {
	ILvl   string     `xml:"w:ilvl,attr"`
	Start  Val        `xml:"w:start"`
	Format Val        `xml:"w:numFmt"`
	Text   Val        `xml:"w:lvlText"`
	Jc     Val        `xml:"w:lvlJc"`
	PPr    *ParaProps `xml:"w:pPr"`
}

type num struct {
	ID         string `xml:"w:numId,attr"`
	AbstractID Val    `xml:"w:abstractNumId"`
}

// Abstract numbering IDs: 0 bullet, 1 decimal.
const (
	abstractBullet  = "0"
	abstractDecimal = "1"
)

// numberingPart builds word/numbering.xml with a bullet definition, a
// decimal definition, the shared bullet instance, and one decimal instance
// per numbered list in the document.
func (d *Document) numberingPart() ([]byte, error) {
	bulletLevels := make([]numLevel, 0, maxIndentLevel+1)
	decimalLevels := make([]numLevel, 0, maxIndentLevel+1)
	for i := 0; i <= maxIndentLevel; i++ {
		indent := &ParaProps{Indent: &Indent{
			Left:    strconv.Itoa(720 * (i + 1)),
			Hanging: "360",
		}}
		bulletLevels = append(bulletLevels, numLevel{
			ILvl:   strconv.Itoa(i),
			Start:  Val{Val: "1"},
			Format: Val{Val: "bullet"},
			Text:   Val{Val: "•"},
			Jc:     Val{Val: "left"},
			PPr:    indent,
		})
		decimalLevels = append(decimalLevels, numLevel{
			ILvl:   strconv.Itoa(i),
			Start:  Val{Val: "1"},
			Format: Val{Val: "decimal"},
			Text:   Val{Val: fmt.Sprintf("%%%d.", i+1)},
			Jc:     Val{Val: "left"},
			PPr:    indent,
		})
	}

	nums := []num{{ID: strconv.Itoa(BulletNumID), AbstractID: Val{Val: abstractBullet}}}
	for i := 1; i <= d.decimalNums; i++ {
		nums = append(nums, num{
			ID:         strconv.Itoa(BulletNumID + i),
			AbstractID: Val{Val: abstractDecimal},
		})
	}

	root := numberingXML{
		XMLNSW: nsW,
		AbstractNums: []abstractNum{
			{ID: abstractBullet, Levels: bulletLevels},
			{ID: abstractDecimal, Levels: decimalLevels},
		},
		Nums: nums,
	}
	return marshalPart(root)
}

// marshalPart serializes one XML part with the standard header.
func marshalPart(v any) ([]byte, error) {
	body, err := xml.Marshal(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.Write(body)
	return buf.Bytes(), nil
}

// Static OPC parts: content type declarations and relationships.
const contentTypesXML = xml.Header + `<Types xmlns="` + nsCT + `">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>` +
	`<Override PartName="/word/numbering.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"/>` +
	`</Types>`

const packageRelsXML = xml.Header + `<Relationships xmlns="` + nsRel + `">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`</Relationships>`

const documentRelsXML = xml.Header + `<Relationships xmlns="` + nsRel + `">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>` +
	`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering" Target="numbering.xml"/>` +
	`</Relationships>`
