package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReplaceExt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		newExt   string
		expected string
	}{
		{name: "md to xlsx", path: "doc.md", newExt: ".xlsx", expected: "doc.xlsx"},
		{name: "md to docx", path: "doc.md", newExt: ".docx", expected: "doc.docx"},
		{name: "with directory", path: "a/b/doc.markdown", newExt: ".xlsx", expected: "a/b/doc.xlsx"},
		{name: "no extension", path: "README", newExt: ".docx", expected: "README.docx"},
		{name: "dotfile keeps name", path: "notes.v2.md", newExt: ".xlsx", expected: "notes.v2.xlsx"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ReplaceExt(tt.path, tt.newExt); got != tt.expected {
				t.Errorf("ReplaceExt(%q, %q) = %q, want %q", tt.path, tt.newExt, got, tt.expected)
			}
		})
	}
}

func TestIsMarkdownFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path     string
		expected bool
	}{
		{"doc.md", true},
		{"doc.markdown", true},
		{"DOC.MD", true},
		{"doc.txt", false},
		{"doc", false},
		{"doc.md.bak", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			if got := IsMarkdownFile(tt.path); got != tt.expected {
				t.Errorf("IsMarkdownFile(%q) = %v, want %v", tt.path, got, tt.expected)
			}
		})
	}
}

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "present.md")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !FileExists(file) {
		t.Error("FileExists(existing file) = false")
	}
	if FileExists(filepath.Join(dir, "absent.md")) {
		t.Error("FileExists(missing file) = true")
	}
	if FileExists(dir) {
		t.Error("FileExists(directory) = true")
	}
}

func TestTrimQuotes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "no quotes", input: "doc.md", expected: "doc.md"},
		{name: "double quotes", input: `"doc.md"`, expected: "doc.md"},
		{name: "single quotes", input: "'doc.md'", expected: "doc.md"},
		{name: "surrounding spaces", input: `  "doc.md"  `, expected: "doc.md"},
		{name: "windows path", input: `"C:\notes\doc.md"`, expected: `C:\notes\doc.md`},
		{name: "unmatched quote kept", input: `"doc.md`, expected: `"doc.md`},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := TrimQuotes(tt.input); got != tt.expected {
				t.Errorf("TrimQuotes(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
