package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `{"mode":"unbounded","max_generations":25,"seed":7,"pattern":"glider","frame_rate":1000000}`)
	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.Mode != ModeUnbounded || config.MaxGenerations != 25 || config.Seed != 7 || config.Pattern != "glider" {
		t.Fatalf("unexpected config %+v", config)
	}
	if config.FrameRate != time.Millisecond {
		t.Fatalf("FrameRate = %v, want 1ms", config.FrameRate)
	}
	if config.RandomDensity != DefaultConfig().RandomDensity {
		t.Fatalf("unset field lost its default: %+v", config)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(t.TempDir(), "nope.json")},
		{"bad json", writeConfig(t, `{"mode":`)},
		{"bad mode", writeConfig(t, `{"mode":"forever"}`)},
		{"bad density", writeConfig(t, `{"random_density":1.5}`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfig(tt.path); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}
