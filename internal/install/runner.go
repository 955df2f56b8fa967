package install

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/jschuetter/rpidisplay/internal/logging"
)

// Config holds the configuration for step execution.
type Config struct {
	// DryRun prints what would run without executing anything.
	DryRun bool

	// Verbose streams command output to the terminal in real time.
	// When false, output is captured in buffers and only surfaced on
	// failure.
	Verbose bool

	// SudoPath is the command used to elevate steps that need root when
	// the process itself is not running as root. "" disables elevation
	// and runs the command as-is.
	// Default: "sudo"
	SudoPath string

	// DefaultTimeout applies to steps that don't set their own.
	// Default: 10 minutes
	DefaultTimeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		SudoPath:       "sudo",
		DefaultTimeout: 10 * time.Minute,
	}
}

// StepStatus is the outcome of a single step.
type StepStatus int

const (
	// StatusCompleted means the step's command ran and exited zero
	StatusCompleted StepStatus = iota
	// StatusSkipped means the AlreadyDone probe reported the work in place
	StatusSkipped
	// StatusDryRun means the command was printed, not executed
	StatusDryRun
	// StatusFailed means the command exited non-zero or errored
	StatusFailed
)

// String returns a human-readable name for the status.
func (s StepStatus) String() string {
	switch s {
	case StatusCompleted:
		return "completed"
	case StatusSkipped:
		return "skipped"
	case StatusDryRun:
		return "dry-run"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("StepStatus(%d)", s)
	}
}

// StepResult records the outcome of one step.
type StepResult struct {
	Step     Step
	Status   StepStatus
	Detail   string // skip reason or dry-run command line
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
	Err      error
}

// Hooks are optional callbacks for observing the run, used by the CLI to
// drive its progress display.
type Hooks struct {
	// OnStart fires before a step begins (1-based index)
	OnStart func(index, total int, step Step)
	// OnDone fires after a step finishes, skips, or fails
	OnDone func(index, total int, step Step, result StepResult)
}

// Runner executes installation steps sequentially. Step and command
// events go to the package logger, silent unless RPIDISPLAY_LOG_LEVEL
// is set.
type Runner struct {
	config Config
}

// NewRunner creates a runner with the given configuration.
func NewRunner(config Config) *Runner {
	if config.DefaultTimeout <= 0 {
		config.DefaultTimeout = 10 * time.Minute
	}
	return &Runner{config: config}
}

// Run executes the steps in order and stops at the first failure. It
// returns the results of every step that started, plus the error of the
// failing step (a *StepError or *TimeoutError), if any.
func (r *Runner) Run(ctx context.Context, steps []Step, hooks Hooks) ([]StepResult, error) {
	results := make([]StepResult, 0, len(steps))
	total := len(steps)

	for i, step := range steps {
		if hooks.OnStart != nil {
			hooks.OnStart(i+1, total, step)
		}

		result := r.runStep(ctx, step)
		results = append(results, result)

		if hooks.OnDone != nil {
			hooks.OnDone(i+1, total, step, result)
		}

		if result.Status == StatusFailed {
			return results, result.Err
		}
	}

	return results, nil
}

// runStep executes a single step, honoring dry-run and the AlreadyDone
// probe.
func (r *Runner) runStep(ctx context.Context, step Step) StepResult {
	result := StepResult{Step: step}
	sudo := r.sudoFor(step)

	if !r.config.DryRun && step.AlreadyDone != nil {
		if done, detail := step.AlreadyDone(ctx); done {
			logging.LogStep(step.Name, "skipped", zap.String("reason", detail))
			result.Status = StatusSkipped
			result.Detail = detail
			return result
		}
	}

	if r.config.DryRun {
		result.Status = StatusDryRun
		result.Detail = step.CommandLine(sudo)
		return result
	}

	start := time.Now()
	stdout, stderr, exitCode, err := r.execute(ctx, step, sudo)
	result.Duration = time.Since(start)
	result.Stdout = stdout
	result.Stderr = stderr
	result.ExitCode = exitCode

	logging.LogCommand(step.Command, exitCode, result.Duration)

	if err != nil {
		if _, isTimeout := err.(*TimeoutError); isTimeout {
			result.Status = StatusFailed
			result.Err = err
			return result
		}
		result.Status = StatusFailed
		result.Err = &StepError{
			Step:     step.Name,
			ExitCode: exitCode,
			Stderr:   tail(stderr, 2048),
			Err:      err,
		}
		return result
	}
	if exitCode != 0 {
		result.Status = StatusFailed
		result.Err = &StepError{
			Step:     step.Name,
			ExitCode: exitCode,
			Stderr:   tail(stderr, 2048),
		}
		return result
	}

	result.Status = StatusCompleted
	return result
}

// sudoFor returns the elevation command for a step, or "" when none is
// needed (step doesn't require root, the process already is root, or
// elevation is disabled).
func (r *Runner) sudoFor(step Step) string {
	if !step.NeedsRoot || r.config.SudoPath == "" {
		return ""
	}
	if os.Geteuid() == 0 {
		return ""
	}
	return r.config.SudoPath
}

// execute runs the step command with its timeout. Output is streamed to
// the terminal in verbose mode, buffered otherwise.
func (r *Runner) execute(ctx context.Context, step Step, sudo string) (stdout, stderr string, exitCode int, err error) {
	timeout := step.Timeout
	if timeout <= 0 {
		timeout = r.config.DefaultTimeout
	}
	timeoutCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	argv := step.Command
	if sudo != "" {
		argv = append([]string{sudo}, argv...)
	}

	logging.LogStep(step.Name, "start",
		zap.Strings("command", argv),
		zap.String("dir", step.Dir),
		zap.Duration("timeout", timeout),
	)

	cmd := exec.CommandContext(timeoutCtx, argv[0], argv[1:]...)
	cmd.Dir = step.Dir

	var stdoutBuf, stderrBuf bytes.Buffer

	if r.config.Verbose {
		stdoutPipe, pipeErr := cmd.StdoutPipe()
		if pipeErr != nil {
			return "", "", -1, fmt.Errorf("failed to create stdout pipe: %w", pipeErr)
		}
		stderrPipe, pipeErr := cmd.StderrPipe()
		if pipeErr != nil {
			return "", "", -1, fmt.Errorf("failed to create stderr pipe: %w", pipeErr)
		}

		if err := cmd.Start(); err != nil {
			return "", "", -1, fmt.Errorf("failed to start %s: %w", argv[0], err)
		}

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			io.Copy(io.MultiWriter(&stdoutBuf, os.Stdout), stdoutPipe)
		}()
		go func() {
			defer wg.Done()
			io.Copy(io.MultiWriter(&stderrBuf, os.Stderr), stderrPipe)
		}()

		wg.Wait()
		err = cmd.Wait()
	} else {
		cmd.Stdout = &stdoutBuf
		cmd.Stderr = &stderrBuf
		err = cmd.Run()
	}

	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
			err = nil
		} else {
			exitCode = -1
		}
	}

	if timeoutCtx.Err() == context.DeadlineExceeded {
		err = &TimeoutError{
			Step:    step.Name,
			Timeout: timeout.String(),
		}
	}

	return stdout, stderr, exitCode, err
}

// tail returns at most the last n bytes of s.
func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return "..." + s[len(s)-n:]
}
