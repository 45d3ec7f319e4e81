// Package vcs wraps the git operations needed to mirror an SDK checkout:
// shallow-fetching a pinned ref and listing remote release tags.
package vcs

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// VCS defines the version control operations the SDK manager relies on.
type VCS interface {
	// Sync ensures the local checkout at dir exists and is at ref.
	// ref can be a branch, tag, or commit hash. A missing dir is
	// initialized; an existing one is fetched and checked out.
	Sync(ctx context.Context, remote, ref, dir string) error

	// Tags returns all tags of the remote repository.
	Tags(ctx context.Context, remote string) ([]string, error)

	// Latest returns the commit hash of the remote HEAD.
	Latest(ctx context.Context, remote string) (string, error)
}

// gitVCS implements VCS using the git executable.
type gitVCS struct {
	git string
}

// GitOption configures gitVCS.
type GitOption func(*gitVCS)

// WithGitPath sets a custom git executable path.
func WithGitPath(path string) GitOption {
	return func(g *gitVCS) {
		g.git = path
	}
}

// NewGitVCS creates a git-backed VCS.
func NewGitVCS(opts ...GitOption) VCS {
	g := &gitVCS{git: "git"}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *gitVCS) ensureInit(ctx context.Context, dir string) error {
	if _, err := os.Stat(filepath.Join(dir, ".git")); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
		return g.run(ctx, dir, "init")
	}
	return nil
}

func (g *gitVCS) Sync(ctx context.Context, remote, ref, dir string) error {
	if err := g.ensureInit(ctx, dir); err != nil {
		return err
	}
	// Shallow fetch: an SDK checkout only ever sits at one pinned ref,
	// history is dead weight.
	if err := g.run(ctx, dir, "fetch", "--depth", "1", remote, ref); err != nil {
		return fmt.Errorf("fetch %s: %w", ref, err)
	}
	if err := g.run(ctx, dir, "checkout", "--force", "FETCH_HEAD"); err != nil {
		return fmt.Errorf("checkout %s: %w", ref, err)
	}
	// The SDK vendors its own dependencies (tinyusb, lwip, ...) as
	// submodules; a checkout without them fails at cmake time.
	if err := g.run(ctx, dir, "submodule", "update", "--init", "--depth", "1"); err != nil {
		return fmt.Errorf("submodule update: %w", err)
	}
	return nil
}

func (g *gitVCS) Tags(ctx context.Context, remote string) ([]string, error) {
	output, err := g.output(ctx, "", "ls-remote", "--tags", "--refs", remote)
	if err != nil {
		return nil, fmt.Errorf("list remote tags: %w", err)
	}

	output = strings.TrimSpace(output)
	if output == "" {
		return nil, nil
	}

	var tags []string
	for _, line := range strings.Split(output, "\n") {
		// format: <hash>\trefs/tags/<tag>
		hash, ref, ok := strings.Cut(line, "\t")
		if !ok || hash == "" {
			continue
		}
		tags = append(tags, strings.TrimPrefix(ref, "refs/tags/"))
	}
	return tags, nil
}

func (g *gitVCS) Latest(ctx context.Context, remote string) (string, error) {
	output, err := g.output(ctx, "", "ls-remote", remote, "HEAD")
	if err != nil {
		return "", fmt.Errorf("get remote HEAD: %w", err)
	}

	output = strings.TrimSpace(output)
	if output == "" {
		return "", fmt.Errorf("no HEAD found in remote %s", remote)
	}

	hash, _, _ := strings.Cut(output, "\t")
	return hash, nil
}

func (g *gitVCS) run(ctx context.Context, dir string, args ...string) error {
	_, err := g.output(ctx, dir, args...)
	return err
}

func (g *gitVCS) output(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, g.git, args...)
	if dir != "" {
		cmd.Dir = dir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", fmt.Errorf("%s", msg)
		}
		return "", err
	}
	return stdout.String(), nil
}
