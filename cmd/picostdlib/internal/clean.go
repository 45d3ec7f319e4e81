package internal

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the cmake build directory",
	RunE:  runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	if _, err := loadProject(); err != nil {
		return err
	}
	if err := os.RemoveAll(filepath.Join(rootDir, "build")); err != nil {
		return err
	}
	successf("Cleaned build directory\n")
	return nil
}
