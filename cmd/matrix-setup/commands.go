package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jschuetter/rpidisplay/internal/config"
	"github.com/jschuetter/rpidisplay/internal/install"
	"github.com/jschuetter/rpidisplay/internal/logging"
	"github.com/jschuetter/rpidisplay/internal/ui"
)

// Command flags
var (
	matrixSrcDir     string
	requirementsFile string
	pythonBin        string
	stepTimeout      string
	skipAptUpdate    bool
	dryRun           bool
	assumeYes        bool
	setupVerbose     bool
)

func init() {
	// Common flags for all commands (persistent on root)
	rootCmd.PersistentFlags().StringVar(&matrixSrcDir, "matrix-src", "", "rgbmatrix driver source checkout (default: registry preference, then ~/rpi-rgb-led-matrix)")
	rootCmd.PersistentFlags().StringVar(&pythonBin, "python", "python3", "Python interpreter to build and install against")
	rootCmd.PersistentFlags().BoolVarP(&setupVerbose, "verbose", "v", false, "Stream command output in real time")

	// Add subcommands
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(verifySetupCmd)
}

// resolveMatrixSrc picks the driver source directory: the flag wins, then
// the registry preference, then ~/rpi-rgb-led-matrix.
func resolveMatrixSrc() string {
	if matrixSrcDir != "" {
		return matrixSrcDir
	}

	if registry, err := config.LoadRegistry(); err == nil {
		if registry.Preferences != nil && registry.Preferences.MatrixSrcDir != "" {
			return registry.Preferences.MatrixSrcDir
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "rpi-rgb-led-matrix"
	}
	return filepath.Join(home, "rpi-rgb-led-matrix")
}

// installCmd implements the 'install' command
var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Run the driver install sequence",
	Long: `Run the full install sequence for the display software stack.

The sequence is:
  1. Refresh the apt package index
  2. Install build dependencies (git, make, gcc, g++, python3-dev,
     python3-pillow, cython3)
  3. Build the rgbmatrix Python binding (make build-python)
  4. Install the binding system-wide (make install-python, elevated)
  5. Upgrade pip
  6. Install the display module requirements (if --requirements is given)

Steps run in order and the sequence stops at the first failure; the
failing command's exit code becomes this command's exit code. Steps
whose work is already in place are skipped, so re-running after a
failure resumes where it left off.`,
	Example: `  # Preview without executing
  matrix-setup install --dry-run

  # Full install with a requirements file
  matrix-setup install --matrix-src ~/rpi-rgb-led-matrix --requirements requirements.txt

  # Skip the apt index refresh on a freshly updated system
  matrix-setup install --skip-update --yes`,
	RunE: runInstall,
}

func init() {
	installCmd.Flags().StringVar(&requirementsFile, "requirements", "", "pip requirements file for the display modules")
	installCmd.Flags().StringVar(&stepTimeout, "timeout", "10m", "Per-step timeout (e.g., 5m, 30m)")
	installCmd.Flags().BoolVar(&skipAptUpdate, "skip-update", false, "Skip the apt package index refresh")
	installCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the commands without executing them")
	installCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")
}

func runInstall(cmd *cobra.Command, args []string) error {
	// Suppress usage on execution errors (we're past argument parsing)
	cmd.SilenceUsage = true

	// Initialize logging from environment variable (silent by default)
	// Set RPIDISPLAY_LOG_LEVEL=debug to see detailed logs
	_ = logging.InitializeFromEnv()
	defer logging.Sync()

	timeout, err := time.ParseDuration(stepTimeout)
	if err != nil {
		return fmt.Errorf("invalid timeout value: %w", err)
	}

	srcDir := resolveMatrixSrc()
	planOpts := install.PlanOptions{
		MatrixSrcDir:     srcDir,
		RequirementsFile: requirementsFile,
		PythonBin:        pythonBin,
		SkipAptUpdate:    skipAptUpdate,
	}
	steps := install.Plan(planOpts)

	// Check prerequisites before touching the system
	ctx := context.Background()
	if !dryRun {
		prereqs, err := install.ValidatePrerequisites(ctx, planOpts)
		if err != nil {
			return fmt.Errorf("prerequisite check failed: %w", err)
		}
		if !prereqs.AllAvailable {
			fmt.Println(install.FormatPrerequisiteReport(prereqs))
			return fmt.Errorf("prerequisites not met; fix the items above and re-run")
		}
	}

	// Confirm before modifying the system with elevated privileges
	if !dryRun && !assumeYes {
		if !ui.SystemInstallConfirmation() {
			return nil // User cancelled
		}
	}

	// Build the step name list for the progress display
	names := make([]string, len(steps))
	for i, step := range steps {
		names[i] = step.Description
	}

	params := map[string]string{
		"Source": srcDir,
		"Python": planOpts.Python(),
	}
	if requirementsFile != "" {
		params["Requirements"] = requirementsFile
	}
	if dryRun {
		params["Mode"] = "dry-run"
	}

	taskRunner := ui.NewTaskRunner(ui.TaskRunnerConfig{
		Title:      "Driver Install",
		Command:    "matrix-setup install",
		Params:     params,
		TotalSteps: len(steps),
		StepNames:  names,
		Verbose:    setupVerbose,
	})

	runnerConfig := install.DefaultConfig()
	runnerConfig.DryRun = dryRun
	runnerConfig.Verbose = setupVerbose
	runnerConfig.DefaultTimeout = timeout
	runner := install.NewRunner(runnerConfig)

	var failedOutput string
	runErr := taskRunner.Run(ctx, func(onStep ui.StepCallback) (map[string]string, error) {
		hooks := install.Hooks{
			OnStart: func(index, total int, step install.Step) {
				onStep(index, step.Description, ui.StepRunning, "")
				if step.Name == "build-binding" && !dryRun {
					ui.PrintPleaseWait("Compiling the rgbmatrix binding", "several minutes on a Pi")
				}
			},
			OnDone: func(index, total int, step install.Step, result install.StepResult) {
				switch result.Status {
				case install.StatusSkipped:
					onStep(index, step.Description, ui.StepSkipped, result.Detail)
				case install.StatusDryRun:
					onStep(index, step.Description, ui.StepComplete, "dry-run")
				case install.StatusFailed:
					onStep(index, step.Description, ui.StepFailed, fmt.Sprintf("exit %d", result.ExitCode))
					failedOutput = strings.TrimSpace(result.Stdout + "\n" + result.Stderr)
					taskRunner.SetCommandOutput(failedOutput)
				default:
					onStep(index, step.Description, ui.StepComplete, result.Duration.Round(time.Second).String())
				}
			},
		}

		results, err := runner.Run(ctx, steps, hooks)
		if err != nil {
			return nil, err
		}

		executed, skipped := 0, 0
		for _, res := range results {
			if res.Status == install.StatusSkipped {
				skipped++
			} else {
				executed++
			}
		}
		return map[string]string{
			"Steps":  fmt.Sprintf("%d run, %d already done", executed, skipped),
			"Source": srcDir,
			"Next":   "matrix-cfg validate, then run a driver demo",
		}, nil
	})

	if runErr != nil {
		// In the default quiet mode the captured output was never shown;
		// surface the error lines from the failing step.
		if failedOutput != "" && !setupVerbose {
			excerpt := ui.NewCommandOutput(failedOutput).
				FilterLines("error", "Error", "E:", "fatal", "Traceback")
			if len(excerpt.Lines) > 0 {
				fmt.Println(excerpt.SetTitle("Failing step errors").SetMaxLines(15).Render())
			} else {
				ui.PrintCommandOutput(failedOutput)
			}
		}

		// Propagate the failing command's exit code
		var stepErr *install.StepError
		if errors.As(runErr, &stepErr) && stepErr.ExitCode > 0 {
			logging.Sync()
			os.Exit(stepErr.ExitCode)
		}
		return runErr
	}

	return nil
}

// verifySetupCmd implements the 'verify-setup' command
var verifySetupCmd = &cobra.Command{
	Use:   "verify-setup",
	Short: "Verify install prerequisites",
	Long: `Verify that everything the install sequence needs is in place.

This command checks:
  1. apt-get, make, and gcc are installed and in PATH
  2. The Python interpreter runs and pip is importable
  3. The rgbmatrix driver source checkout is present
  4. Root privileges or sudo are available for the system steps

Run this command first to troubleshoot install issues.`,
	Example: `  # Verify the default setup
  matrix-setup verify-setup

  # Verify with a custom source location
  matrix-setup verify-setup --matrix-src /opt/rpi-rgb-led-matrix`,
	RunE: runVerifySetup,
}

func runVerifySetup(cmd *cobra.Command, args []string) error {
	// Suppress usage on execution errors (we're past argument parsing)
	cmd.SilenceUsage = true

	_ = logging.InitializeFromEnv()
	defer logging.Sync()

	srcDir := resolveMatrixSrc()

	printer := ui.NewPrinter(nil)
	printer.PrintHeader(
		"Setup Verification",
		"matrix-setup verify-setup",
		map[string]string{
			"Source": srcDir,
			"Python": pythonBin,
		},
	)

	ctx := context.Background()
	result, err := install.ValidatePrerequisites(ctx, install.PlanOptions{
		MatrixSrcDir: srcDir,
		PythonBin:    pythonBin,
	})
	if err != nil {
		printer.PrintError("Setup verification failed", err, []string{
			"Could not run the prerequisite checks at all",
			"Verify the shell environment is sane (PATH, HOME)",
		})
		return fmt.Errorf("setup verification failed: %w", err)
	}

	printer.Println(install.FormatPrerequisiteReport(result))

	if !result.AllAvailable {
		printer.PrintError("Setup verification failed", fmt.Errorf("one or more prerequisites are missing"), []string{
			"Install missing tools with apt-get (the report names the packages)",
			"Clone the driver: git clone https://github.com/hzeller/rpi-rgb-led-matrix " + srcDir,
			"Ensure sudo is available, or run as root",
		})
		return fmt.Errorf("setup verification failed")
	}

	printer.PrintSuccess("Setup verification complete", map[string]string{
		"Source": srcDir + " (found)",
		"Python": pythonBin + " (working)",
		"Status": "Ready to run 'matrix-setup install'",
	})

	return nil
}
