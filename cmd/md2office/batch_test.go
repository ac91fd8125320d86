package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	md2office "github.com/alnah/go-md2office"
)

func TestConvertBatch(t *testing.T) {
	t.Parallel()

	t.Run("converts every file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		var files []FileToConvert
		for _, name := range []string{"a", "b", "c"} {
			in := filepath.Join(dir, name+".md")
			touch(t, in)
			files = append(files, FileToConvert{
				InputPath:  in,
				OutputPath: filepath.Join(dir, name+".xlsx"),
			})
		}

		conv := md2office.NewConverter()
		results := convertBatch(context.Background(), conv, files, md2office.FormatExcel, 2)

		if len(results) != len(files) {
			t.Fatalf("results = %d, want %d", len(results), len(files))
		}
		for _, r := range results {
			r := r
			if r.Err != nil {
				t.Errorf("%s failed: %v", r.InputPath, r.Err)
				continue
			}
			if _, err := os.Stat(r.OutputPath); err != nil {
				t.Errorf("%s not written: %v", r.OutputPath, err)
			}
			if r.Duration <= 0 {
				t.Errorf("%s has no duration", r.InputPath)
			}
		}
	})

	t.Run("results keep input order", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		var files []FileToConvert
		for _, name := range []string{"z", "m", "a"} {
			in := filepath.Join(dir, name+".md")
			touch(t, in)
			files = append(files, FileToConvert{
				InputPath:  in,
				OutputPath: filepath.Join(dir, name+".xlsx"),
			})
		}

		results := convertBatch(context.Background(), md2office.NewConverter(), files, md2office.FormatExcel, 3)
		for i, r := range results {
			if r.InputPath != files[i].InputPath {
				t.Errorf("result %d = %s, want %s", i, r.InputPath, files[i].InputPath)
			}
		}
	})

	t.Run("one failure does not stop the batch", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		good := filepath.Join(dir, "good.md")
		touch(t, good)

		files := []FileToConvert{
			{InputPath: filepath.Join(dir, "missing.md"), OutputPath: filepath.Join(dir, "missing.xlsx")},
			{InputPath: good, OutputPath: filepath.Join(dir, "good.xlsx")},
		}

		results := convertBatch(context.Background(), md2office.NewConverter(), files, md2office.FormatExcel, 1)
		if !errors.Is(results[0].Err, md2office.ErrInputNotFound) {
			t.Errorf("missing file error = %v, want ErrInputNotFound", results[0].Err)
		}
		if results[1].Err != nil {
			t.Errorf("good file failed: %v", results[1].Err)
		}
	})

	t.Run("empty batch", func(t *testing.T) {
		t.Parallel()

		results := convertBatch(context.Background(), md2office.NewConverter(), nil, md2office.FormatExcel, 4)
		if results != nil {
			t.Errorf("results = %v, want nil", results)
		}
	})
}

func TestResolveWorkers(t *testing.T) {
	t.Parallel()

	t.Run("flag wins", func(t *testing.T) {
		t.Parallel()

		if got := resolveWorkers(6, 2); got != 6 {
			t.Errorf("resolveWorkers(6, 2) = %d, want 6", got)
		}
	})

	t.Run("config when no flag", func(t *testing.T) {
		t.Parallel()

		if got := resolveWorkers(0, 3); got != 3 {
			t.Errorf("resolveWorkers(0, 3) = %d, want 3", got)
		}
	})

	t.Run("auto stays within bounds", func(t *testing.T) {
		t.Parallel()

		got := resolveWorkers(0, 0)
		if got < 1 || got > 8 {
			t.Errorf("resolveWorkers(0, 0) = %d, want 1..8 (GOMAXPROCS=%d)", got, runtime.GOMAXPROCS(0))
		}
	})
}

func TestValidateWorkers(t *testing.T) {
	t.Parallel()

	if err := validateWorkers(0); err != nil {
		t.Errorf("validateWorkers(0) = %v", err)
	}
	if err := validateWorkers(4); err != nil {
		t.Errorf("validateWorkers(4) = %v", err)
	}
	if err := validateWorkers(-1); !errors.Is(err, ErrInvalidWorkerCount) {
		t.Errorf("validateWorkers(-1) = %v, want ErrInvalidWorkerCount", err)
	}
}
