package internal

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flplv/picostdlib/internal/deps"
	"github.com/flplv/picostdlib/internal/glue"
	"github.com/flplv/picostdlib/internal/lockfile"
	"github.com/flplv/picostdlib/internal/translate"
	"github.com/flplv/picostdlib/x/cmake"
)

var (
	buildGenerator     string
	buildType          string
	buildSkipTranslate bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the current project",
	Long: `Build runs the source-to-C translator, scans the generated sources to
infer the required pico-sdk libraries, regenerates imports.cmake and
drives the native cmake build.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildGenerator, "generator", "G", "", "CMake generator (e.g. Ninja)")
	buildCmd.Flags().StringVar(&buildType, "build-type", "Release", "CMake build type")
	buildCmd.Flags().BoolVar(&buildSkipTranslate, "skip-translate", false, "Reuse existing generated sources")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	p, err := loadProject()
	if err != nil {
		return err
	}
	ctx := context.Background()

	buildDir := filepath.Join(rootDir, "build")
	if err := os.MkdirAll(buildDir, 0o755); err != nil {
		return err
	}
	unlock, err := lockfile.MutexAt(filepath.Join(buildDir, ".lock")).Lock()
	if err != nil {
		return fmt.Errorf("failed to lock build dir: %w", err)
	}
	defer unlock()

	if !buildSkipTranslate {
		runner := translate.NewRunner()
		if !rootVerbose {
			runner.SetStdout(io.Discard)
		}
		if err := runner.Run(ctx, rootDir, p.Translator); err != nil {
			return err
		}
	}

	set, err := deps.ScanDir(filepath.Join(rootDir, p.GenDir))
	if err != nil {
		return fmt.Errorf("failed to scan generated sources: %w", err)
	}
	if err := glue.Write(filepath.Join(rootDir, glue.Artifact), set); err != nil {
		return fmt.Errorf("failed to write %s: %w", glue.Artifact, err)
	}
	infof("linking: %s\n", strings.Join(set.Links(), " "))

	sdkDir, err := ensureSDK(ctx, p)
	if err != nil {
		return err
	}

	c := cmake.New(rootDir, buildDir)
	c.SDKPath(sdkDir)
	c.Board(p.Board)
	c.BuildType(buildType)
	if buildGenerator != "" {
		c.Generator(buildGenerator)
	}
	if !rootVerbose {
		c.SetStdout(io.Discard)
	}

	if !c.Configured() {
		if err := c.Configure(ctx); err != nil {
			return fmt.Errorf("cmake configure: %w", err)
		}
	}
	if err := c.Build(ctx); err != nil {
		return fmt.Errorf("cmake build: %w", err)
	}

	successf("Built %s for %s\n", p.Name, p.Board)
	return nil
}
