package project

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	p := &Project{
		Name:       "blink",
		Board:      "pico_w",
		SDKVersion: "1.5.1",
		Translator: Translator{Command: "mylang", Args: []string{"compile", "src/blink"}},
	}
	if err := p.Save(dir); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Name != "blink" || got.Board != "pico_w" || got.SDKVersion != "1.5.1" {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.Translator.Command != "mylang" || len(got.Translator.Args) != 2 {
		t.Errorf("translator lost in round trip: %+v", got.Translator)
	}
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	data := []byte(`{"name": "blink", "sdk": "2.0.0"}`)
	if err := os.WriteFile(filepath.Join(dir, File), data, 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if p.Board != "pico" {
		t.Errorf("Board = %q, want default pico", p.Board)
	}
	if p.GenDir != "csource" {
		t.Errorf("GenDir = %q, want default csource", p.GenDir)
	}
}

func TestLoadValidation(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"missing name", `{"sdk": "1.5.1"}`},
		{"missing sdk", `{"name": "blink"}`},
		{"invalid json", `{`},
	}
	for _, c := range cases {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, File), []byte(c.data), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(dir); err == nil {
			t.Errorf("%s: expected error", c.name)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(t.TempDir()); !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}
