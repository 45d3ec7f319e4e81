package internal

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/flplv/picostdlib/x/cmake"
)

var configureGenerator string

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Run the cmake configure step",
	Long: `Configure runs cmake configuration against the pinned pico-sdk without
building, useful after editing CMakeLists.txt or switching boards.`,
	RunE: runConfigure,
}

func init() {
	configureCmd.Flags().StringVarP(&configureGenerator, "generator", "G", "", "CMake generator (e.g. Ninja)")
	rootCmd.AddCommand(configureCmd)
}

func runConfigure(cmd *cobra.Command, args []string) error {
	p, err := loadProject()
	if err != nil {
		return err
	}
	ctx := context.Background()

	sdkDir, err := ensureSDK(ctx, p)
	if err != nil {
		return err
	}

	c := cmake.New(rootDir, filepath.Join(rootDir, "build"))
	c.SDKPath(sdkDir)
	c.Board(p.Board)
	if configureGenerator != "" {
		c.Generator(configureGenerator)
	}
	if !rootVerbose {
		c.SetStdout(io.Discard)
	}
	if err := c.Configure(ctx); err != nil {
		return fmt.Errorf("cmake configure: %w", err)
	}

	successf("Configured %s for %s\n", p.Name, p.Board)
	return nil
}
