// Matrix-cfg is a configuration utility for RGB LED matrix panels.
//
// It reads and validates the flat KEY=VALUE settings file that the display
// programs and the rgbmatrix driver consume, renders the settings as driver
// command-line flags, and manages named panel profiles so multiple panels
// can share one machine.
//
// Usage:
//
//	matrix-cfg [command] [flags]
//
// See 'matrix-cfg --help' for available commands.
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
	Use:   "matrix-cfg",
	Short: "RGB LED Matrix Configuration Utility",
	Long: `A standalone utility for managing RGB LED matrix panel settings.

Reads the flat KEY=VALUE settings file shared by the display programs and
the rgbmatrix driver, validates every value against the driver's accepted
ranges, and renders the settings as --led-* command-line flags.

Named profiles let one machine hold settings for several panels; the
default profile is used when no file is given on the command line.`,
	Version: version.Version,
	Example: `  # Validate the default profile's settings file
  matrix-cfg validate

  # Show a specific settings file
  matrix-cfg show panel.env

  # Render driver flags for scripting
  matrix-cfg flags panel.env`,
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
		fmt.Printf("matrix-cfg %s (commit: %s)\n", version.Version, version.Commit)
	},
}
