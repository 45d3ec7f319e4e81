package internal

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/flplv/picostdlib/internal/deps"
	"github.com/flplv/picostdlib/internal/glue"
	"github.com/flplv/picostdlib/internal/project"
	"github.com/flplv/picostdlib/internal/scaffold"
	"github.com/flplv/picostdlib/internal/sdk"
	"github.com/flplv/picostdlib/internal/vcs"
)

var (
	initBoard      string
	initSDK        string
	initTranslator string
	initNoFetch    bool
)

var initCmd = &cobra.Command{
	Use:   "init [project-name]",
	Short: "Create a new project skeleton",
	Long: `Init scaffolds a new project directory with build configuration, an
SDK import shim and an empty imports.cmake, then fetches the pinned
pico-sdk version into the shared cache.`,
	Args: cobra.ExactArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVar(&initBoard, "board", "pico", "Target board (pico, pico_w, pico2, ...)")
	initCmd.Flags().StringVar(&initSDK, "sdk", "", "pico-sdk version to pin (default: latest release)")
	initCmd.Flags().StringVar(&initTranslator, "translator", "", "Source-to-C translator command")
	initCmd.Flags().BoolVar(&initNoFetch, "no-fetch", false, "Skip fetching the pico-sdk checkout")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	name := args[0]
	dir := filepath.Join(rootDir, name)
	ctx := context.Background()

	version := initSDK
	if version == "" {
		latest, err := sdk.LatestVersion(ctx, vcs.NewGitVCS())
		if err != nil {
			return fmt.Errorf("failed to resolve latest pico-sdk release (pass --sdk to pin one): %w", err)
		}
		version = latest
	}

	p := &project.Project{
		Name:       name,
		Board:      initBoard,
		SDKVersion: version,
		GenDir:     "csource",
		Translator: project.Translator{Command: initTranslator},
	}
	if err := scaffold.Create(dir, p); err != nil {
		return fmt.Errorf("failed to scaffold project: %w", err)
	}

	// An empty fragment keeps the first cmake configure working before
	// any sources have been translated and scanned.
	if err := glue.Write(filepath.Join(dir, glue.Artifact), deps.NewSet()); err != nil {
		return fmt.Errorf("failed to write %s: %w", glue.Artifact, err)
	}

	if !initNoFetch {
		if _, err := ensureSDK(ctx, p); err != nil {
			return err
		}
	}

	successf("Initialized project %s (board %s, pico-sdk %s)\n", name, p.Board, version)
	return nil
}
