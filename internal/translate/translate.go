// Package translate runs the external source-to-C compiler configured in
// picostdlib.json. The tool never inspects the upstream language; it only
// cares that the command fills the generated-sources directory.
package translate

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/qiniu/x/log"

	"github.com/flplv/picostdlib/internal/project"
)

// Runner invokes the translator with configurable output streams.
type Runner struct {
	stdout io.Writer
	stderr io.Writer
}

// NewRunner returns a Runner writing subprocess output to this process's
// stdout and stderr.
func NewRunner() *Runner {
	return &Runner{stdout: os.Stdout, stderr: os.Stderr}
}

// SetStdout redirects the translator's stdout.
func (r *Runner) SetStdout(w io.Writer) { r.stdout = w }

// SetStderr redirects the translator's stderr.
func (r *Runner) SetStderr(w io.Writer) { r.stderr = w }

// Run executes the configured translator in the project directory. A
// non-zero exit is fatal for the build; the translator's own diagnostics
// go to the configured streams.
func (r *Runner) Run(ctx context.Context, dir string, t project.Translator) error {
	if t.Command == "" {
		return fmt.Errorf("no translator configured in %s", project.File)
	}

	log.Debugf("translate: %s %s", t.Command, strings.Join(t.Args, " "))
	cmd := exec.CommandContext(ctx, t.Command, t.Args...)
	cmd.Dir = dir
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("translator %s: %w", t.Command, err)
	}
	return nil
}
