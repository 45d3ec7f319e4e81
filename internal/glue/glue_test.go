package glue

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/flplv/picostdlib/internal/deps"
)

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), Artifact)
	set := deps.NewSet(deps.I2C, deps.Multicore)

	if err := Write(path, set); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	got := string(data)

	if !strings.Contains(got, "function(link_imported_libs name)") {
		t.Errorf("artifact missing function wrapper:\n%s", got)
	}
	if !strings.Contains(got, "target_link_libraries(${name} hardware_i2c pico_multicore)") {
		t.Errorf("artifact missing link directive:\n%s", got)
	}
	if count := strings.Count(got, "hardware_i2c"); count != 1 {
		t.Errorf("hardware_i2c appears %d times, want 1", count)
	}
}

// Regeneration is idempotent: the same set renders to byte-identical
// artifacts, and a prior artifact is discarded whole.
func TestWriteIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), Artifact)
	set := deps.NewSet(deps.ADC, deps.Stdlib, deps.PWM)

	if err := Write(path, set); err != nil {
		t.Fatalf("first Write failed: %v", err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := Write(path, set); err != nil {
		t.Fatalf("second Write failed: %v", err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(first) != string(second) {
		t.Errorf("regeneration not byte-identical:\n%s\nvs\n%s", first, second)
	}
}

func TestWriteReplacesStale(t *testing.T) {
	path := filepath.Join(t.TempDir(), Artifact)
	if err := os.WriteFile(path, []byte("stale content"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Write(path, deps.NewSet(deps.SPI)); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "stale") {
		t.Error("stale content survived regeneration")
	}
}

// An empty set is valid and renders a fragment linking zero libraries.
func TestWriteEmptySet(t *testing.T) {
	path := filepath.Join(t.TempDir(), Artifact)
	if err := Write(path, deps.NewSet()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "target_link_libraries(${name} )") {
		t.Errorf("empty set rendered unexpectedly:\n%s", data)
	}
}

func TestWriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	if err := Write(filepath.Join(dir, Artifact), deps.NewSet(deps.ADC)); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != Artifact {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("unexpected directory contents: %v", names)
	}
}
