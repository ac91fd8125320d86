package md2office

import "testing"

func TestInlineStripper_Strip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text unchanged",
			input:    "just some text",
			expected: "just some text",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "bold",
			input:    "**bold**",
			expected: "bold",
		},
		{
			name:     "italic",
			input:    "*italic*",
			expected: "italic",
		},
		{
			name:     "underscore emphasis",
			input:    "__strong__ and _soft_",
			expected: "strong and soft",
		},
		{
			name:     "bold italic nesting",
			input:    "***both***",
			expected: "both",
		},
		{
			name:     "inline code",
			input:    "run `go build` first",
			expected: "run go build first",
		},
		{
			name:     "link keeps the label",
			input:    "[docs](https://example.com/docs)",
			expected: "docs",
		},
		{
			name:     "image keeps the alt text",
			input:    "![diagram](img/arch.png)",
			expected: "diagram",
		},
		{
			name:     "autolink keeps the address",
			input:    "<https://example.com>",
			expected: "https://example.com",
		},
		{
			name:     "strikethrough",
			input:    "~~deleted~~",
			expected: "deleted",
		},
		{
			name:     "highlight marks",
			input:    "==noted==",
			expected: "noted",
		},
		{
			name:     "br tag becomes newline",
			input:    "first<br>second",
			expected: "first\nsecond",
		},
		{
			name:     "self closing br with space",
			input:    "first<br />second",
			expected: "first\nsecond",
		},
		{
			name:     "uppercase br",
			input:    "first<BR>second",
			expected: "first\nsecond",
		},
		{
			name:     "html tags dropped keeping content",
			input:    "<b>kept</b>",
			expected: "kept",
		},
		{
			name:     "everything at once",
			input:    "**bold** and *italic* and [link](url)",
			expected: "bold and italic and link",
		},
		{
			name:     "leading dash is not a list here",
			input:    "- not an item",
			expected: "- not an item",
		},
		{
			name:     "leading hash is not a heading here",
			input:    "# not a heading",
			expected: "# not a heading",
		},
	}

	s := newInlineStripper()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := s.Strip(tt.input); got != tt.expected {
				t.Errorf("Strip(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
