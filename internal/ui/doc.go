// Package ui provides terminal UI components for the rpidisplay CLIs.
//
// This package uses Bubble Tea and Lipgloss to render polished terminal output
// for setup and configuration commands. These components follow a "run once
// and exit" pattern - they render output compellingly but don't require user
// interaction.
//
// # Architecture
//
// The UI package provides four main component types:
//
//   - Header: Command banner showing operation name and parameters
//   - Progress: Progress bar with step list showing real-time status
//   - Result: Success/failure boxes with styled information
//   - CommandOutput: Captured command output box for verbose mode
//
// These components are orchestrated by the TaskRunner, which manages the
// header → progress → result flow for multi-step operations like the
// driver install sequence.
//
// # Usage Pattern
//
// Commands use this package by:
//
//  1. Creating a TaskRunner with command metadata
//  2. Calling Run() with their operation function
//  3. The operation reports progress via a step callback
//  4. TaskRunner handles all UI rendering automatically
//
// Example:
//
//	runner := ui.NewTaskRunner(ui.TaskRunnerConfig{
//	    Title:      "Driver Install",
//	    Command:    "matrix-setup install",
//	    Params:     map[string]string{"Source": "~/rpi-rgb-led-matrix"},
//	    TotalSteps: 6,
//	    Verbose:    verbose,
//	})
//
//	err := runner.Run(ctx, func(onStep ui.StepCallback) (map[string]string, error) {
//	    onStep(1, "Updating package index", ui.StepRunning, "")
//	    // ... do work ...
//	    onStep(1, "Updating package index", ui.StepComplete, "")
//	    return map[string]string{"Packages": "up to date"}, nil
//	})
//
// # Logging Integration
//
// This package expects logging to be controlled via the RPIDISPLAY_LOG_LEVEL
// environment variable. When unset or empty, zap logging is silent, allowing
// the curated UI output to be displayed cleanly. Set RPIDISPLAY_LOG_LEVEL to
// "debug", "info", "warn", or "error" to enable logging output.
//
// # Verbose Mode
//
// When --verbose is passed to setup commands, the CommandOutput component
// displays captured command output in a styled box after the result. This is
// useful for debugging failed apt, make, or pip invocations.
package ui
