package md2office

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/alnah/go-md2office/internal/fileutil"
)

// Compile-time interface implementation checks.
var (
	_ markdownPreprocessor = (*linePreprocessor)(nil)
	_ documentRenderer     = (*excelRenderer)(nil)
	_ documentRenderer     = (*wordRenderer)(nil)
)

// outputFilePermissions is the mode for written documents.
const outputFilePermissions = 0o644

// Converter orchestrates the markdown-to-document pipeline: preprocess,
// parse into blocks, render with the format's renderer. A Converter holds
// no per-conversion state and is safe for concurrent use across files.
type Converter struct {
	cfg          converterConfig
	preprocessor markdownPreprocessor
	parser       *blockParser
	excel        documentRenderer
	word         documentRenderer
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithSheetName).
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		cfg:          converterConfig{sheetName: defaultSheetName},
		preprocessor: &linePreprocessor{},
		parser:       newBlockParser(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.excel = newExcelRenderer(c.cfg.sheetName)
	c.word = newWordRenderer()

	return c
}

// Convert runs the pipeline on in-memory markdown and returns the
// serialized document along with the parsed block sequence.
// The context is used for cancellation.
func (c *Converter) Convert(ctx context.Context, input Input) (*ConvertResult, error) {
	if input.Markdown == "" {
		return nil, ErrEmptyMarkdown
	}
	if err := input.Format.Validate(); err != nil {
		return nil, err
	}

	content := c.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	blocks := c.parser.Parse(content)

	renderer := c.excel
	if input.Format == FormatWord {
		renderer = c.word
	}
	output, err := renderer.Render(ctx, blocks)
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", input.Format, err)
	}

	return &ConvertResult{Output: output, Blocks: blocks}, nil
}

// ConvertFile reads the markdown file at path, converts it, and writes the
// result next to the input with the format's extension, overwriting any
// existing file. It returns the output path.
func (c *Converter) ConvertFile(ctx context.Context, path string, format Format) (string, error) {
	outPath := fileutil.ReplaceExt(path, format.Ext())
	return outPath, c.ConvertFileTo(ctx, path, outPath, format)
}

// ConvertFileTo is ConvertFile with an explicit destination path.
func (c *Converter) ConvertFileTo(ctx context.Context, path, outPath string, format Format) error {
	if err := format.Validate(); err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return fmt.Errorf("%w: %s", ErrInvalidEncoding, path)
	}

	result, err := c.Convert(ctx, Input{Markdown: string(data), Format: format})
	if err != nil {
		return fmt.Errorf("converting %s: %w", path, err)
	}

	if err := os.WriteFile(outPath, result.Output, outputFilePermissions); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteOutput, outPath, err)
	}
	return nil
}
