package vcs

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

func gitFixture(t *testing.T, tags ...string) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	dir := t.TempDir()
	run := func(args ...string) {
		t.Helper()
		cmd := exec.Command("git", append([]string{"-C", dir,
			"-c", "user.name=test", "-c", "user.email=test@example.com"}, args...)...)
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Fatalf("git %v: %v\n%s", args, err, out)
		}
	}
	run("init")
	if err := os.WriteFile(filepath.Join(dir, "README"), []byte("fixture\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	run("add", "README")
	run("commit", "-m", "initial")
	for _, tag := range tags {
		run("tag", tag)
	}
	return dir
}

func TestGitVCS_Tags(t *testing.T) {
	remote := gitFixture(t, "1.5.1", "2.0.0")

	tags, err := NewGitVCS().Tags(context.Background(), remote)
	if err != nil {
		t.Fatalf("Tags failed: %v", err)
	}
	if len(tags) != 2 {
		t.Fatalf("got %d tags, want 2: %v", len(tags), tags)
	}
	found := map[string]bool{}
	for _, tag := range tags {
		found[tag] = true
	}
	if !found["1.5.1"] || !found["2.0.0"] {
		t.Errorf("missing expected tags in %v", tags)
	}
}

func TestGitVCS_TagsNone(t *testing.T) {
	remote := gitFixture(t)

	tags, err := NewGitVCS().Tags(context.Background(), remote)
	if err != nil {
		t.Fatalf("Tags failed: %v", err)
	}
	if len(tags) != 0 {
		t.Errorf("got %d tags, want 0: %v", len(tags), tags)
	}
}

func TestGitVCS_Latest(t *testing.T) {
	remote := gitFixture(t)

	hash, err := NewGitVCS().Latest(context.Background(), remote)
	if err != nil {
		t.Fatalf("Latest failed: %v", err)
	}
	if len(hash) != 40 {
		t.Errorf("expected 40-char hash, got %d chars: %s", len(hash), hash)
	}
}

func TestGitVCS_Sync(t *testing.T) {
	remote := gitFixture(t, "1.5.1")
	dir := filepath.Join(t.TempDir(), "checkout")

	v := NewGitVCS()
	ctx := context.Background()
	if err := v.Sync(ctx, remote, "1.5.1", dir); err != nil {
		t.Fatalf("Sync failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "README")); err != nil {
		t.Errorf("checkout missing README: %v", err)
	}

	// Syncing again over an existing checkout must succeed.
	if err := v.Sync(ctx, remote, "1.5.1", dir); err != nil {
		t.Fatalf("second Sync failed: %v", err)
	}
}

func TestGitVCS_SyncBadRef(t *testing.T) {
	remote := gitFixture(t)
	dir := filepath.Join(t.TempDir(), "checkout")

	if err := NewGitVCS().Sync(context.Background(), remote, "no-such-ref", dir); err == nil {
		t.Error("expected error for unknown ref")
	}
}
