package md2office

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConvert(t *testing.T) {
	t.Parallel()

	t.Run("excel output is a workbook", func(t *testing.T) {
		t.Parallel()

		c := NewConverter()
		result, err := c.Convert(context.Background(), Input{
			Markdown: "# Title\n\nSome text",
			Format:   FormatExcel,
		})
		if err != nil {
			t.Fatalf("Convert: %v", err)
		}
		if len(result.Output) == 0 {
			t.Fatal("empty output")
		}

		f := openWorkbook(t, result.Output)
		if got := cellValue(t, f, defaultSheetName, "A1"); got != "Title" {
			t.Errorf("A1 = %q, want Title", got)
		}
	})

	t.Run("word output is a docx package", func(t *testing.T) {
		t.Parallel()

		c := NewConverter()
		result, err := c.Convert(context.Background(), Input{
			Markdown: "# Title\n\nSome text",
			Format:   FormatWord,
		})
		if err != nil {
			t.Fatalf("Convert: %v", err)
		}

		doc := readDocxPart(t, result.Output, "word/document.xml")
		if !containsAll(doc, "Title", "Some text") {
			t.Errorf("document.xml missing content:\n%s", doc)
		}
	})

	t.Run("result carries the parsed blocks", func(t *testing.T) {
		t.Parallel()

		c := NewConverter()
		result, err := c.Convert(context.Background(), Input{
			Markdown: "# Title\n\nSome text",
			Format:   FormatExcel,
		})
		if err != nil {
			t.Fatalf("Convert: %v", err)
		}
		if len(result.Blocks) != 2 {
			t.Fatalf("blocks = %#v, want heading and paragraph", result.Blocks)
		}
		if h, ok := result.Blocks[0].(Heading); !ok || h.Level != 1 || h.Text != "Title" {
			t.Errorf("first block = %#v, want Heading level 1 Title", result.Blocks[0])
		}
	})

	t.Run("empty markdown rejected", func(t *testing.T) {
		t.Parallel()

		_, err := NewConverter().Convert(context.Background(), Input{Markdown: "", Format: FormatExcel})
		if !errors.Is(err, ErrEmptyMarkdown) {
			t.Errorf("error = %v, want ErrEmptyMarkdown", err)
		}
	})

	t.Run("unknown format rejected", func(t *testing.T) {
		t.Parallel()

		_, err := NewConverter().Convert(context.Background(), Input{Markdown: "# x", Format: Format("pdf")})
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("error = %v, want ErrUnsupportedFormat", err)
		}
	})

	t.Run("cancelled context aborts", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewConverter().Convert(ctx, Input{Markdown: "# x", Format: FormatExcel})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("error = %v, want context.Canceled", err)
		}
	})

	t.Run("custom sheet name", func(t *testing.T) {
		t.Parallel()

		c := NewConverter(WithSheetName("Report"))
		result, err := c.Convert(context.Background(), Input{Markdown: "# x", Format: FormatExcel})
		if err != nil {
			t.Fatalf("Convert: %v", err)
		}

		f := openWorkbook(t, result.Output)
		if sheets := f.GetSheetList(); len(sheets) != 1 || sheets[0] != "Report" {
			t.Errorf("sheets = %v, want [Report]", sheets)
		}
	})
}

func TestConvertFile(t *testing.T) {
	t.Parallel()

	t.Run("writes output next to the input", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		in := filepath.Join(dir, "doc.md")
		if err := os.WriteFile(in, []byte("# Title\n\nBody"), 0o644); err != nil {
			t.Fatal(err)
		}

		out, err := NewConverter().ConvertFile(context.Background(), in, FormatExcel)
		if err != nil {
			t.Fatalf("ConvertFile: %v", err)
		}
		if want := filepath.Join(dir, "doc.xlsx"); out != want {
			t.Errorf("output path = %q, want %q", out, want)
		}
		if _, err := os.Stat(out); err != nil {
			t.Errorf("output file not written: %v", err)
		}
	})

	t.Run("word extension", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		in := filepath.Join(dir, "doc.md")
		if err := os.WriteFile(in, []byte("# Title"), 0o644); err != nil {
			t.Fatal(err)
		}

		out, err := NewConverter().ConvertFile(context.Background(), in, FormatWord)
		if err != nil {
			t.Fatalf("ConvertFile: %v", err)
		}
		if filepath.Ext(out) != ".docx" {
			t.Errorf("output path = %q, want .docx extension", out)
		}
	})

	t.Run("missing input", func(t *testing.T) {
		t.Parallel()

		_, err := NewConverter().ConvertFile(context.Background(), filepath.Join(t.TempDir(), "absent.md"), FormatExcel)
		if !errors.Is(err, ErrInputNotFound) {
			t.Errorf("error = %v, want ErrInputNotFound", err)
		}
	})

	t.Run("invalid utf8 input", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		in := filepath.Join(dir, "bad.md")
		if err := os.WriteFile(in, []byte{0xff, 0xfe, 0x00, 0x01}, 0o644); err != nil {
			t.Fatal(err)
		}

		_, err := NewConverter().ConvertFile(context.Background(), in, FormatExcel)
		if !errors.Is(err, ErrInvalidEncoding) {
			t.Errorf("error = %v, want ErrInvalidEncoding", err)
		}
	})

	t.Run("invalid format", func(t *testing.T) {
		t.Parallel()

		_, err := NewConverter().ConvertFile(context.Background(), "whatever.md", Format("pdf"))
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("error = %v, want ErrUnsupportedFormat", err)
		}
	})

	t.Run("explicit destination", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		in := filepath.Join(dir, "doc.md")
		out := filepath.Join(dir, "elsewhere.xlsx")
		if err := os.WriteFile(in, []byte("# Title"), 0o644); err != nil {
			t.Fatal(err)
		}

		if err := NewConverter().ConvertFileTo(context.Background(), in, out, FormatExcel); err != nil {
			t.Fatalf("ConvertFileTo: %v", err)
		}
		if _, err := os.Stat(out); err != nil {
			t.Errorf("output file not written: %v", err)
		}
	})
}

func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		sub := sub
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}
