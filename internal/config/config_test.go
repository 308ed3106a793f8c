package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ironsheep/picture-tools-mcp/internal/imaging"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	want := imaging.TempleRegion{MirrorPoint: 276, RowStart: 27, RowEnd: 97, ColStart: 13}
	if cfg.Temple != want {
		t.Errorf("Temple: got %+v, want %+v", cfg.Temple, want)
	}
	if cfg.Edge.Distance != 10 {
		t.Errorf("Edge.Distance: got %v, want 10", cfg.Edge.Distance)
	}
	if cfg.Overlay.Fraction != 0.8 {
		t.Errorf("Overlay.Fraction: got %v, want 0.8", cfg.Overlay.Fraction)
	}
	if !reflect.DeepEqual(cfg.Collage.RowOffsets, []int{0, 100, 200, 300, 400, 500}) {
		t.Errorf("Collage.RowOffsets: got %v", cfg.Collage.RowOffsets)
	}
	if cfg.Collage.MaxSide != DefaultCollageMaxSide {
		t.Errorf("Collage.MaxSide: got %d, want %d", cfg.Collage.MaxSide, DefaultCollageMaxSide)
	}
	if cfg.Debug() {
		t.Error("default config should not enable debug logging")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestDefaultConfig_DoesNotAliasDefaults(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Collage.RowOffsets[0] = 42
	if imaging.DefaultCollageRows[0] != 0 {
		t.Error("editing config offsets changed imaging.DefaultCollageRows")
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Error("missing file should yield the default config")
	}
}

func TestLoadConfig_PartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
temple:
  mirrorPoint: 50
  rowStart: 1
  rowEnd: 9
  colStart: 2
edge:
  distance: 25.5
log:
  level: debug
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	want := imaging.TempleRegion{MirrorPoint: 50, RowStart: 1, RowEnd: 9, ColStart: 2}
	if cfg.Temple != want {
		t.Errorf("Temple: got %+v, want %+v", cfg.Temple, want)
	}
	if cfg.Edge.Distance != 25.5 {
		t.Errorf("Edge.Distance: got %v, want 25.5", cfg.Edge.Distance)
	}
	if !cfg.Debug() {
		t.Error("log.level debug should enable debug logging")
	}
	// Untouched keys keep defaults.
	if cfg.Overlay.Fraction != 0.8 {
		t.Errorf("Overlay.Fraction: got %v, want default 0.8", cfg.Overlay.Fraction)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not yaml", "edge: [unterminated"},
		{"negative distance", "edge:\n  distance: -1\n"},
		{"fraction too large", "overlay:\n  fraction: 1.5\n"},
		{"negative offset", "collage:\n  rowOffsets: [0, -5]\n"},
		{"empty offsets", "collage:\n  rowOffsets: []\n"},
		{"zero max side", "collage:\n  maxSide: 0\n"},
		{"inverted temple rows", "temple:\n  rowStart: 10\n  rowEnd: 5\n"},
		{"unknown log level", "log:\n  level: verbose\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.data), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadConfig(path); err == nil {
				t.Error("LoadConfig should fail")
			}
		})
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Edge.Distance = 33
	cfg.Collage.RowOffsets = []int{0, 50}

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if !reflect.DeepEqual(loaded, cfg) {
		t.Errorf("round trip: got %+v, want %+v", loaded, cfg)
	}
}

func TestCreateDefaultConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := CreateDefaultConfigFile(path); err != nil {
		t.Fatalf("CreateDefaultConfigFile failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file not written: %v", err)
	}
}
