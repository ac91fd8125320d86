package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("full config", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `
input:
  defaultDir: ./docs
output:
  defaultDir: ./out
  format: excel
excel:
  sheetName: Report
convert:
  workers: 4
`)
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig: %v", err)
		}

		if cfg.Input.DefaultDir != "./docs" {
			t.Errorf("Input.DefaultDir = %q", cfg.Input.DefaultDir)
		}
		if cfg.Output.Format != "excel" {
			t.Errorf("Output.Format = %q", cfg.Output.Format)
		}
		if cfg.Excel.SheetName != "Report" {
			t.Errorf("Excel.SheetName = %q", cfg.Excel.SheetName)
		}
		if cfg.Convert.Workers != 4 {
			t.Errorf("Convert.Workers = %d", cfg.Convert.Workers)
		}
	})

	t.Run("partial config keeps zero values", func(t *testing.T) {
		t.Parallel()

		cfg, err := LoadConfig(writeConfig(t, "output:\n  format: word\n"))
		if err != nil {
			t.Fatalf("LoadConfig: %v", err)
		}
		if cfg.Output.Format != "word" {
			t.Errorf("Output.Format = %q", cfg.Output.Format)
		}
		if cfg.Convert.Workers != 0 || cfg.Input.DefaultDir != "" {
			t.Errorf("unset fields not zero: %+v", cfg)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()

		if _, err := LoadConfig(""); !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("unknown key rejected", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig(writeConfig(t, "outptu:\n  format: word\n"))
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid workers rejected", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig(writeConfig(t, "convert:\n  workers: 100\n"))
		if !errors.Is(err, ErrInvalidWorkers) {
			t.Errorf("error = %v, want ErrInvalidWorkers", err)
		}
	})

	t.Run("invalid format rejected", func(t *testing.T) {
		t.Parallel()

		if _, err := LoadConfig(writeConfig(t, "output:\n  format: pdf\n")); err == nil {
			t.Error("invalid format did not error")
		}
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "zero config valid", cfg: Config{}},
		{name: "workers in range", cfg: Config{Convert: ConvertConfig{Workers: 8}}},
		{name: "workers at cap", cfg: Config{Convert: ConvertConfig{Workers: 64}}},
		{name: "workers over cap", cfg: Config{Convert: ConvertConfig{Workers: 65}}, wantErr: true},
		{name: "negative workers", cfg: Config{Convert: ConvertConfig{Workers: -1}}, wantErr: true},
		{name: "format excel", cfg: Config{Output: OutputConfig{Format: "excel"}}},
		{name: "format extension alias", cfg: Config{Output: OutputConfig{Format: "docx"}}},
		{name: "format mixed case", cfg: Config{Output: OutputConfig{Format: "Word"}}},
		{name: "format unknown", cfg: Config{Output: OutputConfig{Format: "pdf"}}, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}
