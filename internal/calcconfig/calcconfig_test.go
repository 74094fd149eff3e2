package calcconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dbfour-decimal/bigdecimal/bigdecimal"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Precision() != 34 {
		t.Fatalf("default precision: got %d", cfg.Precision())
	}
	if cfg.RoundingMode() != bigdecimal.HalfEven {
		t.Fatalf("default rounding: got %v", cfg.RoundingMode())
	}
}

func TestLoadFromMissing(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Precision() != 34 {
		t.Fatalf("missing file should fall back to defaults, got precision %d", cfg.Precision())
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := "[calc]\nprecision = 50\nrounding = \"floor\"\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Precision() != 50 {
		t.Fatalf("precision: got %d", cfg.Precision())
	}
	if cfg.RoundingMode() != bigdecimal.Floor {
		t.Fatalf("rounding: got %v", cfg.RoundingMode())
	}
}
