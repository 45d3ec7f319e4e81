// Package scaffold instantiates the skeleton of a new project: build
// configuration, SDK import shim and the directory layout the other
// commands expect.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/flplv/picostdlib/internal/project"
)

// Create lays out a new project in dir, which is created if missing. It
// refuses to scaffold over an existing project configuration; anything
// else in dir is left alone.
func Create(dir string, p *project.Project) error {
	if _, err := os.Stat(filepath.Join(dir, project.File)); err == nil {
		return fmt.Errorf("%s already exists in %s", project.File, dir)
	}

	for _, sub := range []string{"", "src", p.GenDir, "build"} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			return err
		}
	}

	files := map[string]string{
		"CMakeLists.txt":        cmakeListsFile,
		"pico_sdk_import.cmake": sdkImportFile,
		".gitignore":            gitignoreFile,
	}
	for name, text := range files {
		if err := render(filepath.Join(dir, name), text, p); err != nil {
			return fmt.Errorf("scaffold %s: %w", name, err)
		}
	}

	return p.Save(dir)
}

func render(path, text string, p *project.Project) error {
	tmpl, err := template.New(filepath.Base(path)).Parse(text)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return tmpl.Execute(f, p)
}
