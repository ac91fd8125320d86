package md2office

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown     = errors.New("markdown content cannot be empty")
	ErrUnsupportedFormat = errors.New("unsupported output format")
	ErrInputNotFound     = errors.New("input file not found")
	ErrInvalidEncoding   = errors.New("input is not valid UTF-8")
	ErrWriteOutput       = errors.New("failed to write output file")
	ErrRenderFailed      = errors.New("document rendering failed")

	// Option validation errors.
	ErrInvalidSheetName = errors.New("invalid sheet name")
)
