// Matrix-setup installs the software an RGB LED matrix display needs.
//
// It drives the system package manager, the rgbmatrix Python binding build,
// and pip in a fixed sequence so a fresh Raspberry Pi goes from bare OS to
// a working display stack with one command:
//
//   - apt build dependencies (git, make, gcc, g++, python3-dev, pillow, cython)
//   - rgbmatrix Python binding (make build-python / make install-python)
//   - pip upgrade and the display module requirements
//
// Prerequisites:
//
//   - Debian-based OS with apt-get available
//   - rgbmatrix driver source checkout (hzeller/rpi-rgb-led-matrix)
//   - root, or sudo in PATH, for the system-level steps
//
// See 'matrix-setup --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jschuetter/rpidisplay/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "matrix-setup",
	Short: "RGB LED Matrix Install Utility",
	Long: `Installs the software stack for an RGB LED matrix display.

Runs the install sequence for the rgbmatrix driver's Python binding and
the display module dependencies: apt packages, the binding build and
system-wide install, then pip.

Steps whose work is already in place are skipped, so the command is safe
to re-run after a partial failure.

Use 'matrix-setup verify-setup' to check prerequisites first.`,
	Version: version.Version,
	Example: `  # Check prerequisites
  matrix-setup verify-setup

  # Preview the install sequence without running it
  matrix-setup install --dry-run

  # Run the full install
  matrix-setup install --matrix-src ~/rpi-rgb-led-matrix`,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("matrix-setup %s (commit: %s)\n", version.Version, version.Commit)
	},
}
