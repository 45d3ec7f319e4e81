package internal

import (
	"github.com/qiniu/x/log"
	"github.com/spf13/cobra"
)

var (
	rootDir     string
	rootVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "picostdlib",
	Short: "picostdlib manages Raspberry Pi Pico projects",
	Long: `picostdlib scaffolds Raspberry Pi Pico projects, runs the configured
source-to-C translator, infers which pico-sdk libraries the generated
sources need, and drives the native cmake build.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if rootVerbose {
			log.SetOutputLevel(log.Ldebug)
		} else {
			log.SetOutputLevel(log.Lwarn)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "C", ".", "Project directory")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Enable verbose output")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		log.Fatal(err)
	}
}
