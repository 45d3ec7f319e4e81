//go:build windows

package lockfile

import (
	"os"

	"golang.org/x/sys/windows"
)

const allBytes = ^uint32(0)

func lock(f *os.File) error {
	return windows.LockFileEx(windows.Handle(f.Fd()),
		windows.LOCKFILE_EXCLUSIVE_LOCK, 0, allBytes, allBytes, new(windows.Overlapped))
}

func unlockFile(f *os.File) error {
	return windows.UnlockFileEx(windows.Handle(f.Fd()),
		0, allBytes, allBytes, new(windows.Overlapped))
}
