package md2office

import (
	"fmt"
	"strings"
)

// Format selects the output document type.
type Format string

// Supported output formats.
const (
	FormatExcel Format = "excel"
	FormatWord  Format = "word"
)

// ParseFormat resolves a user-supplied format name. It accepts the format
// names and their file extensions ("excel", "xlsx", "word", "docx"),
// case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "excel", "xlsx":
		return FormatExcel, nil
	case "word", "docx":
		return FormatWord, nil
	default:
		return "", fmt.Errorf("%w: %q (must be excel or word)", ErrUnsupportedFormat, s)
	}
}

// Ext returns the output file extension for the format, dot included.
func (f Format) Ext() string {
	switch f {
	case FormatExcel:
		return ".xlsx"
	case FormatWord:
		return ".docx"
	}
	return ""
}

// Validate checks that the format is one of the two supported values.
func (f Format) Validate() error {
	switch f {
	case FormatExcel, FormatWord:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(f))
	}
}

// Input contains conversion parameters.
type Input struct {
	Markdown string // Markdown content (required)
	Format   Format // Output format (required)
}

// ConvertResult holds the rendered document and the intermediate block
// sequence, which is useful for inspection and testing.
type ConvertResult struct {
	Output []byte  // Serialized .xlsx or .docx bytes
	Blocks []Block // Document model the output was rendered from
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	sheetName string
}

// defaultSheetName is the worksheet title used when none is configured.
const defaultSheetName = "Document"

// Excel forbids these characters in sheet names and caps the length at 31.
const (
	maxSheetNameLength = 31
	invalidSheetChars  = `:\/?*[]`
)

// WithSheetName sets the worksheet title used by the Excel renderer.
// Panics on names Excel would reject (programmer error, similar to
// time.NewTicker panicking on a non-positive duration).
func WithSheetName(name string) Option {
	if name == "" || len(name) > maxSheetNameLength || strings.ContainsAny(name, invalidSheetChars) {
		panic(fmt.Sprintf("md2office: WithSheetName: %v: %q", ErrInvalidSheetName, name))
	}
	return func(c *Converter) {
		c.cfg.sheetName = name
	}
}
