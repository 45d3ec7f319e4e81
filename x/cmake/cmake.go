// Package cmake drives the native cmake configure/build workflow for a
// Pico SDK project.
package cmake

import (
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
)

type defineValue struct {
	value    string
	typeName string
}

// CMake drives CMake-based builds.
type CMake struct {
	sourceDir string
	buildDir  string
	generator string
	buildType string
	defines   map[string]defineValue
	stdout    io.Writer
	stderr    io.Writer
}

// New returns a ready-to-use CMake for a project rooted at sourceDir,
// building into buildDir.
func New(sourceDir, buildDir string) *CMake {
	return &CMake{
		sourceDir: sourceDir,
		buildDir:  buildDir,
		defines:   make(map[string]defineValue),
		stdout:    os.Stdout,
		stderr:    os.Stderr,
	}
}

// Generator sets the CMake generator (e.g. "Ninja", "Unix Makefiles").
func (c *CMake) Generator(name string) { c.generator = name }

// BuildType sets CMAKE_BUILD_TYPE (e.g. "Release", "Debug").
func (c *CMake) BuildType(name string) { c.buildType = name }

// SDKPath sets PICO_SDK_PATH so the scaffolded import shim finds the
// pinned SDK checkout.
func (c *CMake) SDKPath(dir string) { c.Define("PICO_SDK_PATH", dir) }

// Board sets PICO_BOARD (e.g. "pico", "pico_w", "pico2").
func (c *CMake) Board(name string) { c.Define("PICO_BOARD", name) }

// Define adds a -D<key>:STRING=<value> definition.
func (c *CMake) Define(key, value string) {
	c.defines[key] = defineValue{value: value, typeName: "STRING"}
}

// DefineBool adds a -D<key>:BOOL=ON/OFF definition.
func (c *CMake) DefineBool(key string, value bool) {
	v := "OFF"
	if value {
		v = "ON"
	}
	c.defines[key] = defineValue{value: v, typeName: "BOOL"}
}

// SetStdout redirects cmake's stdout.
func (c *CMake) SetStdout(w io.Writer) { c.stdout = w }

// SetStderr redirects cmake's stderr.
func (c *CMake) SetStderr(w io.Writer) { c.stderr = w }

// Configured reports whether the build directory already holds a cmake
// configuration.
func (c *CMake) Configured() bool {
	_, err := os.Stat(filepath.Join(c.buildDir, "CMakeCache.txt"))
	return err == nil
}

// Configure runs "cmake -S <source> -B <build>" with all configured
// options. Extra args are appended at the end.
func (c *CMake) Configure(ctx context.Context, args ...string) error {
	if err := os.MkdirAll(c.buildDir, 0o755); err != nil {
		return err
	}
	cmakeArgs := []string{"-S", c.sourceDir, "-B", c.buildDir}
	if c.generator != "" {
		cmakeArgs = append(cmakeArgs, "-G", c.generator)
	}
	if c.buildType != "" {
		c.Define("CMAKE_BUILD_TYPE", c.buildType)
	}
	cmakeArgs = append(cmakeArgs, c.definesArgs()...)
	cmakeArgs = append(cmakeArgs, args...)
	return c.run(ctx, cmakeArgs)
}

// Build runs "cmake --build <build>" with optional extra arguments.
func (c *CMake) Build(ctx context.Context, args ...string) error {
	cmakeArgs := []string{"--build", c.buildDir}
	if c.buildType != "" {
		cmakeArgs = append(cmakeArgs, "--config", c.buildType)
	}
	cmakeArgs = append(cmakeArgs, args...)
	return c.run(ctx, cmakeArgs)
}

func (c *CMake) run(ctx context.Context, args []string) error {
	cmd := exec.CommandContext(ctx, "cmake", args...)
	cmd.Stdout = c.stdout
	cmd.Stderr = c.stderr
	return cmd.Run()
}

func (c *CMake) definesArgs() []string {
	if len(c.defines) == 0 {
		return nil
	}
	keys := make([]string, 0, len(c.defines))
	for k := range c.defines {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	args := make([]string, 0, len(keys))
	for _, k := range keys {
		d := c.defines[k]
		args = append(args, "-D"+k+":"+d.typeName+"="+d.value)
	}
	return args
}
