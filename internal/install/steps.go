package install

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// aptPackages are the system packages the native build needs.
var aptPackages = []string{
	"git",
	"make",
	"gcc",
	"g++",
	"python3-dev",
	"python3-pillow",
	"cython3",
}

// Step is a single installation step: one external command, an optional
// probe that reports whether its work is already in place, and whether it
// must run with elevated privileges.
type Step struct {
	// Name is the short step identifier (e.g. "apt-install")
	Name string
	// Description is the human-readable step summary
	Description string
	// Command is the argv to execute
	Command []string
	// Dir is the working directory ("" inherits the process directory)
	Dir string
	// NeedsRoot marks steps that must run with elevated privileges
	NeedsRoot bool
	// Timeout is the per-step time budget
	Timeout time.Duration
	// AlreadyDone probes whether the step's work is already in place.
	// A nil probe means the step always runs.
	AlreadyDone func(ctx context.Context) (bool, string)
}

// PlanOptions configures the installation plan.
type PlanOptions struct {
	// MatrixSrcDir is the rgbmatrix source checkout (build/install steps
	// run inside it)
	MatrixSrcDir string

	// RequirementsFile is the pip requirements file for the display
	// modules; "" omits the bulk dependency install
	RequirementsFile string

	// PythonBin is the Python interpreter ("python3" when empty)
	PythonBin string

	// SkipAptUpdate omits the package index refresh
	SkipAptUpdate bool
}

// Python returns the configured interpreter, defaulting to python3.
func (o PlanOptions) Python() string {
	if o.PythonBin == "" {
		return "python3"
	}
	return o.PythonBin
}

// Plan returns the installation steps in execution order:
//
//  1. Refresh the apt package index (unless skipped)
//  2. Install the build dependencies
//  3. Build the rgbmatrix Python binding
//  4. Install the binding into the system site-packages (elevated)
//  5. Upgrade pip
//  6. Install the display module requirements (if a file is given)
func Plan(opts PlanOptions) []Step {
	python := opts.Python()
	var steps []Step

	if !opts.SkipAptUpdate {
		steps = append(steps, Step{
			Name:        "apt-update",
			Description: "Refresh the apt package index",
			Command:     []string{"apt-get", "update"},
			NeedsRoot:   true,
			Timeout:     10 * time.Minute,
		})
	}

	steps = append(steps, Step{
		Name:        "apt-install",
		Description: "Install build dependencies",
		Command:     append([]string{"apt-get", "install", "-y"}, aptPackages...),
		NeedsRoot:   true,
		Timeout:     20 * time.Minute,
		AlreadyDone: aptPackagesInstalled,
	})

	steps = append(steps, Step{
		Name:        "build-binding",
		Description: "Build the rgbmatrix Python binding",
		Command:     []string{"make", "build-python", "PYTHON=" + python},
		Dir:         opts.MatrixSrcDir,
		Timeout:     30 * time.Minute,
		AlreadyDone: bindingBuilt(opts.MatrixSrcDir),
	})

	steps = append(steps, Step{
		Name:        "install-binding",
		Description: "Install the rgbmatrix binding into system site-packages",
		Command:     []string{"make", "install-python", "PYTHON=" + python},
		Dir:         opts.MatrixSrcDir,
		NeedsRoot:   true,
		Timeout:     10 * time.Minute,
		AlreadyDone: bindingImportable(python),
	})

	steps = append(steps, Step{
		Name:        "pip-upgrade",
		Description: "Upgrade pip",
		Command:     []string{python, "-m", "pip", "install", "--upgrade", "pip"},
		Timeout:     10 * time.Minute,
	})

	if opts.RequirementsFile != "" {
		steps = append(steps, Step{
			Name:        "pip-requirements",
			Description: "Install display module requirements",
			Command:     []string{python, "-m", "pip", "install", "-r", opts.RequirementsFile},
			Timeout:     20 * time.Minute,
		})
	}

	return steps
}

// aptPackagesInstalled reports whether every build dependency is already
// installed, via dpkg-query.
func aptPackagesInstalled(ctx context.Context) (bool, string) {
	args := append([]string{"-W"}, aptPackages...)
	cmd := exec.CommandContext(ctx, "dpkg-query", args...)
	if err := cmd.Run(); err != nil {
		return false, ""
	}
	return true, "all build dependencies already installed"
}

// bindingBuilt returns a probe that checks for built binding artifacts in
// the source tree.
func bindingBuilt(srcDir string) func(ctx context.Context) (bool, string) {
	return func(ctx context.Context) (bool, string) {
		if srcDir == "" {
			return false, ""
		}
		pattern := filepath.Join(srcDir, "bindings", "python", "rgbmatrix", "*.so")
		matches, err := filepath.Glob(pattern)
		if err != nil || len(matches) == 0 {
			return false, ""
		}
		return true, fmt.Sprintf("binding already built (%s)", filepath.Base(matches[0]))
	}
}

// bindingImportable returns a probe that checks whether the rgbmatrix
// module already imports cleanly with the target interpreter.
func bindingImportable(python string) func(ctx context.Context) (bool, string) {
	return func(ctx context.Context) (bool, string) {
		probeCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
		defer cancel()

		cmd := exec.CommandContext(probeCtx, python, "-c", "import rgbmatrix")
		if err := cmd.Run(); err != nil {
			return false, ""
		}
		return true, "rgbmatrix module already importable"
	}
}

// CommandLine returns the step's command as a display string, including
// the sudo prefix it would run with.
func (s Step) CommandLine(sudo string) string {
	argv := s.Command
	if s.NeedsRoot && sudo != "" {
		argv = append([]string{sudo}, argv...)
	}
	return strings.Join(argv, " ")
}
