package deps

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// sourceExt is the extension of translator-generated source files.
const sourceExt = ".c"

// includePattern matches quoted and angle-bracket include forms and
// captures the target path.
var includePattern = regexp.MustCompile(`^\s*#\s*include\s+(?:"([^"]+)"|<([^>]+)>)`)

// ScanFile reads one generated source file and returns the set of
// libraries its includes reference.
//
// The scan stops at the first line beginning with "typedef": in
// translator output all includes precede the type declarations, so
// nothing after that boundary is inspected. This is a precondition on the
// shape of generated files, not general C parsing. Lines that are not
// includes, and includes the catalog does not know, are skipped silently.
func ScanFile(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	set := NewSet()
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, "typedef") {
			break
		}
		m := includePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		target := m[1]
		if target == "" {
			target = m[2]
		}
		if lib, ok := Lookup(Normalize(target)); ok {
			set.Add(lib)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return set, nil
}

// ScanDir scans every generated source file directly inside dir (no
// recursion) and returns the union of the per-file results. Enumeration
// order does not affect the outcome; set union is commutative. Entries
// that are not regular files or do not carry the generated-source
// extension are skipped.
func ScanDir(dir string) (Set, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	set := NewSet()
	for _, e := range entries {
		if !e.Type().IsRegular() || !strings.HasSuffix(e.Name(), sourceExt) {
			continue
		}
		fileSet, err := ScanFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		set.Union(fileSet)
	}
	return set, nil
}
