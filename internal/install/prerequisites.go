package install

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// PrerequisiteCheck represents the result of checking a single prerequisite.
type PrerequisiteCheck struct {
	// Name is the human-readable name of the prerequisite
	Name string
	// Available indicates whether the prerequisite is available
	Available bool
	// Path is the resolved path (for binary checks)
	Path string
	// Version is the detected version (if applicable)
	Version string
	// Message provides additional context (error message or success info)
	Message string
	// Error contains the underlying error if check failed
	Error error
}

// PrerequisiteResult contains the results of all prerequisite checks.
type PrerequisiteResult struct {
	// Checks contains individual check results
	Checks []PrerequisiteCheck
	// AllAvailable is true if all prerequisites are available
	AllAvailable bool
}

// ValidatePrerequisites checks everything the installation plan needs and
// returns a detailed report:
//   - apt-get, make and gcc binaries
//   - the Python interpreter and its pip module
//   - the rgbmatrix source tree
//   - root privileges or a usable sudo
func ValidatePrerequisites(ctx context.Context, opts PlanOptions) (*PrerequisiteResult, error) {
	result := &PrerequisiteResult{
		Checks:       make([]PrerequisiteCheck, 0),
		AllAvailable: true,
	}

	for _, bin := range []string{"apt-get", "make", "gcc"} {
		check := checkBinary(ctx, bin)
		result.Checks = append(result.Checks, check)
		if !check.Available {
			result.AllAvailable = false
		}
	}

	pythonCheck := checkPython(ctx, opts.Python())
	result.Checks = append(result.Checks, pythonCheck)
	if !pythonCheck.Available {
		result.AllAvailable = false
	}

	pipCheck := checkPip(ctx, opts.Python())
	result.Checks = append(result.Checks, pipCheck)
	if !pipCheck.Available {
		result.AllAvailable = false
	}

	srcCheck := checkMatrixSource(opts.MatrixSrcDir)
	result.Checks = append(result.Checks, srcCheck)
	if !srcCheck.Available {
		result.AllAvailable = false
	}

	privCheck := checkPrivileges()
	result.Checks = append(result.Checks, privCheck)
	if !privCheck.Available {
		result.AllAvailable = false
	}

	return result, nil
}

// checkBinary verifies that a binary is available in PATH.
func checkBinary(ctx context.Context, name string) PrerequisiteCheck {
	check := PrerequisiteCheck{Name: name}

	path, err := exec.LookPath(name)
	if err != nil {
		check.Available = false
		check.Error = err
		check.Message = fmt.Sprintf("%s not found in PATH\n"+
			"Install on Raspberry Pi OS / Debian: sudo apt-get install %s", name, aptPackageFor(name))
		return check
	}

	check.Path = path
	check.Available = true
	check.Message = fmt.Sprintf("Found at %s", path)
	return check
}

// aptPackageFor maps a binary name to the package providing it.
func aptPackageFor(bin string) string {
	switch bin {
	case "gcc":
		return "gcc g++"
	case "apt-get":
		return "apt"
	default:
		return bin
	}
}

// checkPython verifies the interpreter exists and reports its version.
func checkPython(ctx context.Context, python string) PrerequisiteCheck {
	check := PrerequisiteCheck{Name: python}

	path, err := exec.LookPath(python)
	if err != nil {
		check.Available = false
		check.Error = err
		check.Message = fmt.Sprintf("%s not found in PATH\n"+
			"Install on Raspberry Pi OS / Debian: sudo apt-get install python3", python)
		return check
	}
	check.Path = path

	versionCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	output, err := exec.CommandContext(versionCtx, python, "--version").Output()
	if err != nil {
		check.Available = false
		check.Error = err
		check.Message = fmt.Sprintf("%s found at %s but failed to execute: %v", python, path, err)
		return check
	}

	check.Version = strings.TrimSpace(string(output))
	check.Available = true
	check.Message = fmt.Sprintf("Found at %s", path)
	return check
}

// checkPip verifies the interpreter's pip module works.
func checkPip(ctx context.Context, python string) PrerequisiteCheck {
	check := PrerequisiteCheck{Name: "pip module"}

	versionCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	output, err := exec.CommandContext(versionCtx, python, "-m", "pip", "--version").Output()
	if err != nil {
		check.Available = false
		check.Error = err
		check.Message = fmt.Sprintf("%s -m pip failed\n"+
			"Install on Raspberry Pi OS / Debian: sudo apt-get install python3-pip", python)
		return check
	}

	lines := strings.Split(string(output), "\n")
	if len(lines) > 0 {
		check.Version = strings.TrimSpace(lines[0])
	}
	check.Available = true
	check.Message = "pip module works"
	return check
}

// checkMatrixSource verifies the rgbmatrix source tree looks usable: the
// top-level Makefile and the Python binding directory must exist.
func checkMatrixSource(srcDir string) PrerequisiteCheck {
	check := PrerequisiteCheck{Name: "rgbmatrix source tree"}

	if srcDir == "" {
		check.Available = false
		check.Message = "no source directory configured\n" +
			"Clone it: git clone https://github.com/hzeller/rpi-rgb-led-matrix.git\n" +
			"Then pass the checkout with --matrix-src"
		return check
	}

	if _, err := os.Stat(filepath.Join(srcDir, "Makefile")); err != nil {
		check.Available = false
		check.Error = err
		check.Message = fmt.Sprintf("no Makefile in %s - is this the rgbmatrix checkout?", srcDir)
		return check
	}
	if _, err := os.Stat(filepath.Join(srcDir, "bindings", "python")); err != nil {
		check.Available = false
		check.Error = err
		check.Message = fmt.Sprintf("%s has no bindings/python directory", srcDir)
		return check
	}

	check.Path = srcDir
	check.Available = true
	check.Message = fmt.Sprintf("Found at %s", srcDir)
	return check
}

// checkPrivileges verifies the process can perform the elevated steps:
// either it already runs as root or sudo is available.
func checkPrivileges() PrerequisiteCheck {
	check := PrerequisiteCheck{Name: "privileges"}

	if os.Geteuid() == 0 {
		check.Available = true
		check.Message = "running as root"
		return check
	}

	path, err := exec.LookPath("sudo")
	if err != nil {
		check.Available = false
		check.Error = err
		check.Message = "not running as root and sudo not found in PATH\n" +
			"The package and binding install steps write to system directories"
		return check
	}

	check.Path = path
	check.Available = true
	check.Message = "sudo available for elevated steps"
	return check
}

// FormatPrerequisiteReport formats a PrerequisiteResult into a
// human-readable string.
func FormatPrerequisiteReport(result *PrerequisiteResult) string {
	var sb strings.Builder

	sb.WriteString("Installation Prerequisites Check:\n")
	sb.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n\n")

	for _, check := range result.Checks {
		if check.Available {
			sb.WriteString(fmt.Sprintf("✓ %s\n", check.Name))
			if check.Version != "" {
				sb.WriteString(fmt.Sprintf("  Version: %s\n", check.Version))
			}
			if check.Path != "" {
				sb.WriteString(fmt.Sprintf("  Path: %s\n", check.Path))
			}
			if check.Message != "" {
				sb.WriteString(fmt.Sprintf("  %s\n", check.Message))
			}
		} else {
			sb.WriteString(fmt.Sprintf("✗ %s\n", check.Name))
			if check.Message != "" {
				sb.WriteString(fmt.Sprintf("  %s\n", check.Message))
			}
		}
		sb.WriteString("\n")
	}

	if result.AllAvailable {
		sb.WriteString("All required prerequisites are available.\n")
	} else {
		sb.WriteString("Some prerequisites are missing. Please install them before proceeding.\n")
	}

	return sb.String()
}
