// Package glue emits the generated imports.cmake fragment that the
// native build includes to link exactly the libraries a project uses.
package glue

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/flplv/picostdlib/internal/deps"
)

// Artifact is the well-known file name of the glue fragment inside a
// project directory. The scaffolded CMakeLists.txt includes it by this
// name; do not rename one without the other.
const Artifact = "imports.cmake"

// fragment is the fixed template of the emitted file. Downstream build
// configuration calls link_imported_libs with its target name, so the
// function name and shape must stay stable.
const fragment = `# This is a generated file do not modify it,
function(link_imported_libs name)
  target_link_libraries(${name} %s)
endFunction()
`

// Render produces the fragment text for set. Link targets are sorted so
// identical sets always render to identical bytes.
func Render(set deps.Set) string {
	return fmt.Sprintf(fragment, strings.Join(set.Links(), " "))
}

// Write replaces the artifact at path with the rendered fragment for set.
// Any prior artifact is discarded whole; there is no merging. The content
// lands via a temporary file and rename so a failed write never leaves a
// half-written fragment for the native build to consume. An empty set is
// valid and links zero libraries.
func Write(path string, set deps.Set) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove stale %s: %w", filepath.Base(path), err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".imports-*.cmake")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.WriteString(Render(set)); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
