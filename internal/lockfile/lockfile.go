// Package lockfile provides an advisory file mutex. Build commands take
// one on the project's build directory so two invocations cannot race on
// the generated sources or the glue artifact.
package lockfile

import "os"

// Mutex is an advisory lock on a file path. The zero value is not
// usable; construct with MutexAt.
type Mutex struct {
	path string
}

// MutexAt returns a Mutex for the given lock file path. The file is
// created on first Lock and never removed.
func MutexAt(path string) *Mutex {
	return &Mutex{path: path}
}

// Lock acquires the mutex, blocking until it is free, and returns the
// function that releases it.
func (m *Mutex) Lock() (unlock func(), err error) {
	f, err := os.OpenFile(m.path, os.O_RDWR|os.O_CREATE, 0o666)
	if err != nil {
		return nil, err
	}
	if err := lock(f); err != nil {
		f.Close()
		return nil, err
	}
	return func() {
		unlockFile(f)
		f.Close()
	}, nil
}
