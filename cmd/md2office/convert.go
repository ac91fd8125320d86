package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	md2office "github.com/alnah/go-md2office"
	"github.com/alnah/go-md2office/internal/config"
)

// dirPermissions is the mode for created output directories.
const dirPermissions = 0o750

// run orchestrates the conversion process: resolve configuration, find the
// input files, fan the work out, and report.
func run(ctx context.Context, flags *cliFlags, args []string) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	cfg := config.DefaultConfig()
	var err error
	if flags.config != "" {
		cfg, err = config.LoadConfig(flags.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}
	mergeFlags(flags, cfg)

	stdin := bufio.NewReader(os.Stdin)

	format, err := resolveFormat(cfg, stdin)
	if err != nil {
		return err
	}

	inputPath, err := resolveInputPath(args, cfg, stdin)
	if err != nil {
		return err
	}

	if cfg.Output.DefaultDir != "" {
		if err := os.MkdirAll(cfg.Output.DefaultDir, dirPermissions); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	files, err := discoverFiles(inputPath, cfg.Output.DefaultDir, format)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no markdown files under %s", ErrNoInput, inputPath)
	}

	var opts []md2office.Option
	if cfg.Excel.SheetName != "" {
		opts = append(opts, md2office.WithSheetName(cfg.Excel.SheetName))
	}
	conv := md2office.NewConverter(opts...)

	workers := resolveWorkers(flags.workers, cfg.Convert.Workers)
	if flags.verbose {
		fmt.Fprintf(os.Stderr, "Converting %d file(s) with %d worker(s)\n", len(files), workers)
	}

	results := convertBatch(ctx, conv, files, format, workers)
	return reportResults(results, flags.quiet)
}

// mergeFlags overlays CLI flags onto the config; flags win.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.output != "" {
		cfg.Output.DefaultDir = flags.output
	}
	if flags.format != "" {
		cfg.Output.Format = flags.format
	}
	if flags.sheetName != "" {
		cfg.Excel.SheetName = flags.sheetName
	}
}

// resolveFormat picks the output format from config/flags, falling back to
// the interactive menu.
func resolveFormat(cfg *config.Config, stdin *bufio.Reader) (md2office.Format, error) {
	if cfg.Output.Format != "" {
		return md2office.ParseFormat(cfg.Output.Format)
	}
	return promptFormat(stdin, os.Stdout)
}

// resolveInputPath picks the input from positional args or the config's
// default directory, falling back to the interactive prompt.
func resolveInputPath(args []string, cfg *config.Config, stdin *bufio.Reader) (string, error) {
	switch {
	case len(args) > 1:
		return "", fmt.Errorf("%w: expected one input path, got %d", ErrNoInput, len(args))
	case len(args) == 1:
		return args[0], nil
	case cfg.Input.DefaultDir != "":
		return cfg.Input.DefaultDir, nil
	default:
		return promptInputPath(stdin, os.Stdout)
	}
}

// reportResults prints per-file outcomes and a summary, and returns the
// first error so the process exit code reflects the failure.
func reportResults(results []ConversionResult, quiet bool) error {
	var firstErr error
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			if firstErr == nil {
				firstErr = r.Err
			}
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", r.InputPath, r.Err)
			continue
		}
		if !quiet {
			fmt.Printf("%s -> %s (%s)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		}
	}

	if !quiet {
		fmt.Printf("Converted %d/%d file(s)\n", len(results)-failed, len(results))
	}
	if firstErr != nil {
		return fmt.Errorf("%d of %d conversions failed: %w", failed, len(results), firstErr)
	}
	return nil
}
