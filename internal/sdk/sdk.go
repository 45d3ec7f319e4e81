// Package sdk manages shared checkouts of the pico-sdk, one per pinned
// release version, under the user cache directory.
package sdk

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/qiniu/x/log"
	"golang.org/x/mod/semver"

	"github.com/flplv/picostdlib/internal/vcs"
)

// Remote is the upstream SDK repository.
const Remote = "https://github.com/raspberrypi/pico-sdk"

// CacheDir returns the root cache directory of this tool, creating it if
// needed. Checkouts live at <UserCacheDir>/.picostdlib/sdk/<version>.
func CacheDir() (string, error) {
	userCacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(userCacheDir, ".picostdlib")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return dir, nil
}

// Dir returns the checkout directory for an SDK version. The directory
// is created but may be empty until Fetch populates it.
func Dir(version string) (string, error) {
	cacheDir, err := CacheDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(cacheDir, "sdk", version)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return dir, nil
}

// Fetch ensures the SDK checkout for version exists and is at that tag,
// returning its directory. An already-populated checkout is synced again;
// git makes that cheap.
func Fetch(ctx context.Context, v vcs.VCS, version string) (string, error) {
	dir, err := Dir(version)
	if err != nil {
		return "", err
	}
	log.Debugf("syncing pico-sdk %s into %s", version, dir)
	if err := v.Sync(ctx, Remote, version, dir); err != nil {
		return "", fmt.Errorf("sync pico-sdk %s: %w", version, err)
	}
	return dir, nil
}

// Versions lists the released SDK versions, oldest first. Tags that are
// not release versions are dropped.
func Versions(ctx context.Context, v vcs.VCS) ([]string, error) {
	tags, err := v.Tags(ctx, Remote)
	if err != nil {
		return nil, err
	}
	return sortReleases(tags), nil
}

// LatestVersion returns the newest released SDK version.
func LatestVersion(ctx context.Context, v vcs.VCS) (string, error) {
	releases, err := Versions(ctx, v)
	if err != nil {
		return "", err
	}
	if len(releases) == 0 {
		return "", fmt.Errorf("no release tags found in %s", Remote)
	}
	return releases[len(releases)-1], nil
}

// sortReleases filters tags down to valid release versions and sorts
// them ascending. SDK tags carry no "v" prefix; semver wants one.
func sortReleases(tags []string) []string {
	var releases []string
	for _, tag := range tags {
		if semver.IsValid(canonical(tag)) {
			releases = append(releases, tag)
		}
	}
	slices.SortFunc(releases, func(a, b string) int {
		return semver.Compare(canonical(a), canonical(b))
	})
	return releases
}

func canonical(tag string) string {
	if strings.HasPrefix(tag, "v") {
		return tag
	}
	return "v" + tag
}
