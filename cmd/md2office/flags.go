package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all command line options.
type cliFlags struct {
	format    string
	output    string
	config    string
	workers   int
	sheetName string
	quiet     bool
	verbose   bool
	version   bool
}

// parseFlags parses args (including the program name at args[0]) and
// returns the flags plus remaining positional arguments.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("md2office", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.format, "format", "f", "", "output format: excel or word")
	fs.StringVarP(&f.output, "output", "o", "", "output directory (default: next to each input)")
	fs.StringVarP(&f.config, "config", "c", "", "config file path or name")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel conversions (0 = auto)")
	fs.StringVar(&f.sheetName, "sheet-name", "", "worksheet title for Excel output")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "suppress per-file progress output")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "verbose output")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(os.Stderr, fs) }

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Usage: md2office [flags] [input.md | input-directory]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Converts Markdown files to Excel (.xlsx) or Word (.docx) documents.")
	fmt.Fprintln(w, "Run without arguments for interactive mode.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprint(w, fs.FlagUsages())
}
