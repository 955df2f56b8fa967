package install

import "fmt"

// StepError represents a failed installation step. The exit code and
// stderr of the underlying command are preserved so the failure surfaces
// exactly as the tool itself reported it.
type StepError struct {
	// Step is the name of the step that failed
	Step string
	// ExitCode is the exit code of the failing command
	ExitCode int
	// Stderr is the (possibly truncated) stderr output
	Stderr string
	// Underlying error if any
	Err error
}

func (e *StepError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("install step %q failed (exit code %d): %v\nstderr: %s",
			e.Step, e.ExitCode, e.Err, e.Stderr)
	}
	return fmt.Sprintf("install step %q failed (exit code %d)\nstderr: %s",
		e.Step, e.ExitCode, e.Stderr)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// TimeoutError represents an installation step exceeding its time budget.
type TimeoutError struct {
	// Step is the name of the step that timed out
	Step string
	// Timeout is the duration that was exceeded
	Timeout string
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("install step %q timed out after %s\n"+
		"Hint: Increase the timeout with --timeout or check your network connection",
		e.Step, e.Timeout)
}

// PrerequisiteError represents a missing prerequisite (build tool,
// interpreter, source tree, privileges).
type PrerequisiteError struct {
	// Prerequisite is the name of the missing prerequisite
	Prerequisite string
	// Details provides additional context
	Details string
	// Underlying error
	Err error
}

func (e *PrerequisiteError) Error() string {
	msg := fmt.Sprintf("missing prerequisite: %s", e.Prerequisite)
	if e.Details != "" {
		msg += "\n" + e.Details
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\nError: %v", e.Err)
	}
	return msg
}

func (e *PrerequisiteError) Unwrap() error {
	return e.Err
}
