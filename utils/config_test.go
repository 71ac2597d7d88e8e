package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `{"width": 20, "height": 10, "pattern_file": "glider.life", "use_bounded_grid": false}`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Width != 20 || cfg.Height != 10 {
		t.Errorf("size = %dx%d, want 20x10", cfg.Width, cfg.Height)
	}
	if cfg.PatternFile != "glider.life" {
		t.Errorf("PatternFile = %q", cfg.PatternFile)
	}
	if cfg.UseBoundedGrid {
		t.Error("UseBoundedGrid not overridden")
	}
	// untouched fields keep their defaults
	if def := DefaultConfig(); cfg.MaxGenerations != def.MaxGenerations || cfg.UseMemoryPool != def.UseMemoryPool {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		invalid bool
	}{
		{
			name: "missing file",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.json") },
		},
		{
			name: "bad json",
			path: func(t *testing.T) string { return writeConfig(t, `{"width": `) },
		},
		{
			name:    "zero width",
			path:    func(t *testing.T) string { return writeConfig(t, `{"width": 0}`) },
			invalid: true,
		},
		{
			name:    "negative generations",
			path:    func(t *testing.T) string { return writeConfig(t, `{"max_generations": -3}`) },
			invalid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(tt.path(t))
			if err == nil {
				t.Fatal("LoadConfig returned no error")
			}
			if got := errors.Is(err, ErrInvalidConfig); got != tt.invalid {
				t.Fatalf("errors.Is(err, ErrInvalidConfig) = %v, want %v (err: %v)", got, tt.invalid, err)
			}
		})
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig is invalid: %v", err)
	}
}
