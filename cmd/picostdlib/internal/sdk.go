package internal

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flplv/picostdlib/internal/sdk"
	"github.com/flplv/picostdlib/internal/vcs"
)

var sdkCmd = &cobra.Command{
	Use:   "sdk",
	Short: "Manage cached pico-sdk checkouts",
}

var sdkListCmd = &cobra.Command{
	Use:   "list",
	Short: "List released pico-sdk versions",
	RunE:  runSDKList,
}

var sdkFetchCmd = &cobra.Command{
	Use:   "fetch [version]",
	Short: "Fetch a pico-sdk version into the shared cache",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSDKFetch,
}

func init() {
	sdkCmd.AddCommand(sdkListCmd)
	sdkCmd.AddCommand(sdkFetchCmd)
	rootCmd.AddCommand(sdkCmd)
}

func runSDKList(cmd *cobra.Command, args []string) error {
	releases, err := sdk.Versions(context.Background(), vcs.NewGitVCS())
	if err != nil {
		return fmt.Errorf("failed to list pico-sdk releases: %w", err)
	}
	for i, version := range releases {
		if i == len(releases)-1 {
			successf("%s (latest)\n", version)
			continue
		}
		fmt.Println(version)
	}
	return nil
}

func runSDKFetch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	v := vcs.NewGitVCS()

	var version string
	if len(args) == 1 {
		version = args[0]
	} else {
		latest, err := sdk.LatestVersion(ctx, v)
		if err != nil {
			return fmt.Errorf("failed to resolve latest pico-sdk release: %w", err)
		}
		version = latest
	}

	dir, err := sdk.Fetch(ctx, v, version)
	if err != nil {
		return err
	}
	successf("pico-sdk %s at %s\n", version, dir)
	return nil
}
