package internal

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/flplv/picostdlib/internal/project"
	"github.com/flplv/picostdlib/internal/sdk"
	"github.com/flplv/picostdlib/internal/vcs"
)

var (
	successf = color.New(color.FgGreen).PrintfFunc()
	infof    = color.New(color.FgCyan).PrintfFunc()
)

// loadProject reads the project configuration from the --dir directory.
func loadProject() (*project.Project, error) {
	p, err := project.Load(rootDir)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%s not found in %s, run 'picostdlib init' first", project.File, rootDir)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", project.File, err)
	}
	return p, nil
}

// ensureSDK returns the checkout directory of the project's pinned SDK
// version, fetching it into the shared cache when missing.
func ensureSDK(ctx context.Context, p *project.Project) (string, error) {
	dir, err := sdk.Dir(p.SDKVersion)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(filepath.Join(dir, "pico_sdk_init.cmake")); err == nil {
		return dir, nil
	}
	infof("fetching pico-sdk %s\n", p.SDKVersion)
	return sdk.Fetch(ctx, vcs.NewGitVCS(), p.SDKVersion)
}
