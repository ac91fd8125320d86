package main

import (
	"context"
	"runtime"
	"sync"
	"time"

	md2office "github.com/alnah/go-md2office"
)

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// convertBatch processes files concurrently. The converter is stateless
// and shared by all workers; each file is an independent conversion.
func convertBatch(ctx context.Context, conv *md2office.Converter, files []FileToConvert, format md2office.Format, workers int) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	if workers > len(files) {
		workers = len(files)
	}

	results := make([]ConversionResult, len(files))
	jobs := make(chan int, len(files))
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				file := files[idx]
				start := time.Now()
				err := conv.ConvertFileTo(ctx, file.InputPath, file.OutputPath, format)
				results[idx] = ConversionResult{
					InputPath:  file.InputPath,
					OutputPath: file.OutputPath,
					Err:        err,
					Duration:   time.Since(start),
				}
			}
		}()
	}

	for idx := range files {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	return results
}

// resolveWorkers determines the worker count.
// Priority: explicit flag > config > GOMAXPROCS-based calculation.
func resolveWorkers(flagWorkers, configWorkers int) int {
	if flagWorkers > 0 {
		return flagWorkers
	}
	if configWorkers > 0 {
		return configWorkers
	}

	// Auto-calculate based on GOMAXPROCS (adjusted by automaxprocs for containers)
	n := runtime.GOMAXPROCS(0) / 2

	// Minimum 1, maximum 8
	if n < 1 {
		return 1
	}
	if n > 8 {
		return 8
	}
	return n
}

// validateWorkers rejects negative worker counts early.
func validateWorkers(n int) error {
	if n < 0 {
		return ErrInvalidWorkerCount
	}
	return nil
}
