// Package md2office converts Markdown documents to Excel (.xlsx) or Word
// (.docx) files.
//
// # Quick Start
//
// Create a converter and convert a file in place:
//
//	conv := md2office.NewConverter()
//	outPath, err := conv.ConvertFile(ctx, "notes.md", md2office.FormatExcel)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("wrote", outPath)
//
// Or convert in-memory markdown and handle the bytes yourself:
//
//	result, err := conv.Convert(ctx, md2office.Input{
//	    Markdown: "# Hello\n\nWorld",
//	    Format:   md2office.FormatWord,
//	})
//	os.WriteFile("hello.docx", result.Output, 0644)
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Markdown preprocessing (line ending normalization, blank line compression)
//  2. Block parsing into a typed sequence: headings, paragraphs, tables,
//     lists, code blocks, horizontal rules; inline formatting is stripped
//     to plain text
//  3. Rendering the block sequence with the format's renderer: a
//     row-sequential worksheet for Excel, styled paragraphs and grid
//     tables for Word
//
// The parser is total: it never fails on any input. Unrecognized lines
// degrade to plain paragraphs, so conversion always produces a document
// once the input file has been read.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv := md2office.NewConverter(
//	    md2office.WithSheetName("Notes"),
//	)
//
// # Parallel Processing
//
// A Converter holds no per-conversion state; one instance may convert
// different files from multiple goroutines without coordination.
package md2office
