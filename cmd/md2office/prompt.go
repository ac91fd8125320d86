package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	md2office "github.com/alnah/go-md2office"
	"github.com/alnah/go-md2office/internal/fileutil"
)

// ErrPromptAborted is returned when stdin closes before a valid answer.
var ErrPromptAborted = errors.New("interactive prompt aborted")

// promptFormat asks for the output format until a valid choice arrives.
// Accepts the menu numbers or the format names.
func promptFormat(in *bufio.Reader, out io.Writer) (md2office.Format, error) {
	fmt.Fprintln(out, "Select output format:")
	fmt.Fprintln(out, "  [1] Excel (.xlsx)")
	fmt.Fprintln(out, "  [2] Word  (.docx)")

	for {
		fmt.Fprint(out, "Enter choice (1 or 2): ")
		line, err := in.ReadString('\n')
		if err != nil && line == "" {
			return "", ErrPromptAborted
		}

		switch strings.TrimSpace(line) {
		case "1":
			return md2office.FormatExcel, nil
		case "2":
			return md2office.FormatWord, nil
		default:
			if format, perr := md2office.ParseFormat(line); perr == nil {
				return format, nil
			}
			fmt.Fprintln(out, "Please enter 1 or 2.")
		}
		if err != nil {
			return "", ErrPromptAborted
		}
	}
}

// promptInputPath asks for the markdown file path until an existing file
// arrives. Surrounding quotes from pasted paths are stripped.
func promptInputPath(in *bufio.Reader, out io.Writer) (string, error) {
	for {
		fmt.Fprint(out, "Path to the Markdown file or directory: ")
		line, err := in.ReadString('\n')
		if err != nil && line == "" {
			return "", ErrPromptAborted
		}

		path := fileutil.TrimQuotes(line)
		if path != "" {
			return path, nil
		}
		fmt.Fprintln(out, "Please enter a path.")
		if err != nil {
			return "", ErrPromptAborted
		}
	}
}
