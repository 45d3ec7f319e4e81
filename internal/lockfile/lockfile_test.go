package lockfile

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLockUnlock(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".lock")

	m := MutexAt(path)
	unlock, err := m.Lock()
	if err != nil {
		t.Fatalf("Lock failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("lock file not created: %v", err)
	}
	unlock()

	// Reacquirable after release.
	unlock, err = m.Lock()
	if err != nil {
		t.Fatalf("second Lock failed: %v", err)
	}
	unlock()
}

func TestLockBlocksSecondHolder(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".lock")

	unlock, err := MutexAt(path).Lock()
	if err != nil {
		t.Fatalf("Lock failed: %v", err)
	}

	acquired := make(chan struct{})
	go func() {
		u, err := MutexAt(path).Lock()
		if err == nil {
			u()
		}
		close(acquired)
	}()

	select {
	case <-acquired:
		t.Fatal("second holder acquired the lock while held")
	case <-time.After(100 * time.Millisecond):
	}

	unlock()
	select {
	case <-acquired:
	case <-time.After(5 * time.Second):
		t.Fatal("second holder never acquired the lock after release")
	}
}

func TestLockBadPath(t *testing.T) {
	m := MutexAt(filepath.Join(t.TempDir(), "missing", ".lock"))
	if _, err := m.Lock(); err == nil {
		t.Error("expected error for unreachable lock path")
	}
}
