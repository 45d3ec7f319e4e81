package internal

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/flplv/picostdlib/internal/deps"
	"github.com/flplv/picostdlib/internal/glue"
)

var depsWrite bool

var depsCmd = &cobra.Command{
	Use:   "deps",
	Short: "Show the pico-sdk libraries the generated sources require",
	Long: `Deps scans the generated sources and prints the inferred library list
without building. With --write it also regenerates imports.cmake.`,
	RunE: runDeps,
}

func init() {
	depsCmd.Flags().BoolVar(&depsWrite, "write", false, "Regenerate imports.cmake")
	rootCmd.AddCommand(depsCmd)
}

func runDeps(cmd *cobra.Command, args []string) error {
	p, err := loadProject()
	if err != nil {
		return err
	}

	set, err := deps.ScanDir(filepath.Join(rootDir, p.GenDir))
	if err != nil {
		return fmt.Errorf("failed to scan generated sources: %w", err)
	}

	links := set.Links()
	if len(links) == 0 {
		fmt.Println("no known libraries referenced")
	}
	for _, link := range links {
		infof("%s\n", link)
	}

	if depsWrite {
		if err := glue.Write(filepath.Join(rootDir, glue.Artifact), set); err != nil {
			return fmt.Errorf("failed to write %s: %w", glue.Artifact, err)
		}
		successf("Wrote %s (%d libraries)\n", glue.Artifact, len(links))
	}
	return nil
}
