package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// TaskRunnerConfig holds configuration for a multi-step command execution
type TaskRunnerConfig struct {
	Title      string            // Command title (e.g., "Driver Install")
	Command    string            // Full command (e.g., "matrix-setup install")
	Params     map[string]string // Parameters to display in header
	TotalSteps int               // Total number of steps (for progress)
	StepNames  []string          // Names for each step
	Verbose    bool              // Whether to show captured command output
	Output     io.Writer         // Output writer (default: os.Stdout)
}

// TaskRunner orchestrates the UI for a multi-step command execution.
// It manages the header → progress → result flow and provides
// callbacks for reporting progress.
type TaskRunner struct {
	config        TaskRunnerConfig
	header        *Header
	progress      *Progress
	output        io.Writer
	commandOutput string
	startTime     time.Time
	width         int
}

// NewTaskRunner creates a new runner for a multi-step command
func NewTaskRunner(config TaskRunnerConfig) *TaskRunner {
	// Set defaults
	if config.Output == nil {
		config.Output = os.Stdout
	}

	width := GetTerminalWidth()

	// Create header
	header := NewHeader(config.Title, config.Command, config.Params)
	header.SetWidth(width)

	// Create progress tracker
	var progress *Progress
	if config.TotalSteps > 0 {
		progress = NewProgress("", config.TotalSteps)
		progress.SetWidth(width)
		if len(config.StepNames) > 0 {
			progress.SetStepNames(config.StepNames)
		}
	}

	return &TaskRunner{
		config:   config,
		header:   header,
		progress: progress,
		output:   config.Output,
		width:    width,
	}
}

// TaskOperation is the function signature for the actual operation.
// The operation receives a StepCallback to report progress and may
// return detail lines for the success box (nil is fine).
type TaskOperation func(onStep StepCallback) (map[string]string, error)

// Run executes the operation with UI updates.
// It displays the header, tracks progress, and shows the result.
func (r *TaskRunner) Run(ctx context.Context, operation TaskOperation) error {
	r.startTime = time.Now()

	// Print header
	_, _ = fmt.Fprintln(r.output, r.header.Render())
	_, _ = fmt.Fprintln(r.output)

	// Create step callback
	stepCallback := r.createStepCallback()

	// Execute the operation
	details, err := operation(stepCallback)
	duration := time.Since(r.startTime)

	// Print final result
	if err != nil {
		r.printFailure(err, duration)
	} else {
		r.printSuccess(details, duration)
	}

	return err
}

// SetCommandOutput stores captured command output for verbose display
func (r *TaskRunner) SetCommandOutput(output string) {
	r.commandOutput = output
}

// createStepCallback creates the step callback function
func (r *TaskRunner) createStepCallback() StepCallback {
	return func(stepNumber int, name string, status StepStatus, message string) {
		if r.progress == nil {
			return
		}

		// Update step name if provided
		if name != "" && stepNumber > 0 && stepNumber <= len(r.progress.Steps) {
			r.progress.Steps[stepNumber-1].Name = name
		}

		// Update step status
		switch status {
		case StepRunning:
			r.progress.StartStep(stepNumber, message)
		case StepComplete:
			r.progress.CompleteStep(stepNumber, message)
		case StepFailed:
			r.progress.FailStep(stepNumber, message)
		case StepSkipped:
			r.progress.SkipStep(stepNumber, message)
		default:
			r.progress.UpdateStep(stepNumber, status, message)
		}

		// Print progress line
		if status == StepComplete || status == StepFailed || status == StepSkipped {
			// Print completed step
			step := r.progress.Steps[stepNumber-1]
			_, _ = fmt.Fprintln(r.output, r.progress.renderStepLine(step))
		} else if status == StepRunning {
			// Print running step (will be overwritten when complete)
			step := r.progress.Steps[stepNumber-1]
			_, _ = fmt.Fprint(r.output, r.progress.renderStepLine(step)+"\r")
		}
	}
}

// printSuccess prints a success result with optional custom details
func (r *TaskRunner) printSuccess(details map[string]string, duration time.Duration) {
	_, _ = fmt.Fprintln(r.output)

	// Add duration to details
	if details == nil {
		details = make(map[string]string)
	}
	details["Duration"] = duration.Round(time.Millisecond).String()

	result := NewSuccessResult(r.config.Title+" complete", details)
	result.SetWidth(r.width)
	_, _ = fmt.Fprintln(r.output, result.Render())

	// Show captured command output in verbose mode
	if r.config.Verbose && r.commandOutput != "" {
		_, _ = fmt.Fprintln(r.output)
		out := NewCommandOutput(r.commandOutput)
		out.SetWidth(r.width)
		_, _ = fmt.Fprintln(r.output, out.Render())
	}
}

// printFailure prints a failure result with troubleshooting
func (r *TaskRunner) printFailure(err error, duration time.Duration) {
	_, _ = fmt.Fprintln(r.output)

	// Default troubleshooting tips
	troubleshooting := []string{
		"Check your network connection (apt and pip need it)",
		"Verify the driver source tree path with: matrix-setup verify-setup",
		"Re-run the failed command by hand to see its full output",
		"Run with --verbose for full command output",
	}

	result := NewFailureResult(r.config.Title+" failed", err, troubleshooting)
	result.SetWidth(r.width)
	_, _ = fmt.Fprintln(r.output, result.Render())

	// Always show captured output on failure in verbose mode
	if r.config.Verbose && r.commandOutput != "" {
		_, _ = fmt.Fprintln(r.output)
		out := NewCommandOutput(r.commandOutput)
		out.SetWidth(r.width)
		_, _ = fmt.Fprintln(r.output, out.Render())
	}
}

// --- Simple helper functions for commands that don't need a full TaskRunner ---

// PrintSuccess prints a styled success result
func PrintSuccess(title string, details map[string]string) {
	width := GetTerminalWidth()
	result := NewSuccessResult(title, details)
	result.SetWidth(width)
	fmt.Println()
	fmt.Println(result.Render())
}

// PrintFailure prints a styled failure result
func PrintFailure(title string, err error, troubleshooting []string) {
	width := GetTerminalWidth()
	result := NewFailureResult(title, err, troubleshooting)
	result.SetWidth(width)
	fmt.Println()
	fmt.Println(result.Render())
}

// PrintWarning prints a styled warning result
func PrintWarning(title string, details map[string]string) {
	width := GetTerminalWidth()
	result := NewWarningResult(title, details)
	result.SetWidth(width)
	fmt.Println()
	fmt.Println(result.Render())
}

// PrintCommandOutput prints a styled command output box (for verbose mode)
func PrintCommandOutput(output string) {
	width := GetTerminalWidth()
	out := NewCommandOutput(output)
	out.SetWidth(width)
	fmt.Println()
	fmt.Println(out.Render())
}

// PrintPleaseWait prints a styled "please wait" message for long-running operations.
// The message parameter should describe what's happening, e.g., "Building Python binding".
// The duration hint helps set user expectations, e.g., "several minutes on a Pi Zero".
func PrintPleaseWait(message string, durationHint string) {
	// Use primary/purple color - stands out but doesn't cause alarm
	style := lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Bold(true).
		PaddingLeft(2)

	hintStyle := lipgloss.NewStyle().
		Foreground(MutedColor).
		Italic(true)

	line := style.Render("⏳ " + message)
	if durationHint != "" {
		line += " " + hintStyle.Render("("+durationHint+")")
	}
	line += style.Render("...")

	fmt.Println()
	fmt.Println(line)
	fmt.Println()
}
