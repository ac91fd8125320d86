package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	md2office "github.com/alnah/go-md2office"
	"github.com/alnah/go-md2office/internal/fileutil"
)

// Sentinel errors for file discovery.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// discoverFiles finds all markdown files to convert. A file input must
// have a markdown extension; a directory input is walked recursively.
func discoverFiles(inputPath, outputDir string, format md2office.Format) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if !fileutil.IsMarkdownFile(inputPath) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidExtension, inputPath)
		}
		return []FileToConvert{{
			InputPath:  inputPath,
			OutputPath: resolveOutputPath(inputPath, outputDir, format),
		}}, nil
	}

	var files []FileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !fileutil.IsMarkdownFile(path) {
			return nil
		}
		files = append(files, FileToConvert{
			InputPath:  path,
			OutputPath: resolveOutputPath(path, outputDir, format),
		})
		return nil
	})

	return files, err
}

// resolveOutputPath determines the destination for one markdown file:
// next to the input with the format's extension, or inside outputDir when
// one was requested.
func resolveOutputPath(inputPath, outputDir string, format md2office.Format) string {
	if outputDir == "" {
		return fileutil.ReplaceExt(inputPath, format.Ext())
	}
	base := fileutil.ReplaceExt(filepath.Base(inputPath), format.Ext())
	return filepath.Join(outputDir, base)
}
