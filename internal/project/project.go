// Package project reads and writes picostdlib.json, the per-project
// configuration file created by init and consumed by every other command.
package project

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// File is the configuration file name at the project root.
const File = "picostdlib.json"

// Translator describes the external source-to-C compiler invocation that
// fills the generated-sources directory before the native build.
type Translator struct {
	Command string   `json:"command"`
	Args    []string `json:"args,omitempty"`
}

// Project is the parsed picostdlib.json.
type Project struct {
	Name       string     `json:"name"`
	Board      string     `json:"board"`
	SDKVersion string     `json:"sdk"`
	GenDir     string     `json:"gen_dir,omitempty"`
	Translator Translator `json:"translator"`
}

// Parse decodes a project configuration. If data is nil the named file is
// read instead.
func Parse(file string, data []byte) (*Project, error) {
	var reader io.Reader

	if data != nil {
		reader = bytes.NewBuffer(data)
	} else {
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		reader = f
	}

	var p Project
	if err := json.NewDecoder(reader).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Load parses dir/picostdlib.json, validates it and applies defaults.
func Load(dir string) (*Project, error) {
	p, err := Parse(filepath.Join(dir, File), nil)
	if err != nil {
		return nil, err
	}
	if p.Name == "" {
		return nil, fmt.Errorf("%s: missing project name", File)
	}
	if p.SDKVersion == "" {
		return nil, fmt.Errorf("%s: missing sdk version", File)
	}
	if p.Board == "" {
		p.Board = "pico"
	}
	if p.GenDir == "" {
		p.GenDir = "csource"
	}
	return p, nil
}

// Save writes the configuration to dir/picostdlib.json.
func (p *Project) Save(dir string) error {
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, File), append(data, '\n'), 0o644)
}
