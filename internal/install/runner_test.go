package install

import (
	"context"
	"errors"
	"testing"
	"time"
)

func testRunner(config Config) *Runner {
	// Never try sudo in tests
	config.SudoPath = ""
	return NewRunner(config)
}

func shStep(name, script string) Step {
	return Step{
		Name:        name,
		Description: name,
		Command:     []string{"/bin/sh", "-c", script},
		Timeout:     30 * time.Second,
	}
}

func TestRunCompletesAllSteps(t *testing.T) {
	runner := testRunner(Config{})
	steps := []Step{
		shStep("one", "echo first"),
		shStep("two", "echo second"),
	}

	results, err := runner.Run(context.Background(), steps, Hooks{})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Run() returned %d results, want 2", len(results))
	}
	for _, res := range results {
		if res.Status != StatusCompleted {
			t.Errorf("step %s status = %v, want completed", res.Step.Name, res.Status)
		}
		if res.ExitCode != 0 {
			t.Errorf("step %s exit code = %d, want 0", res.Step.Name, res.ExitCode)
		}
	}
	if results[0].Stdout != "first\n" {
		t.Errorf("step one stdout = %q, want %q", results[0].Stdout, "first\n")
	}
}

func TestRunStopsAtFirstFailure(t *testing.T) {
	runner := testRunner(Config{})
	steps := []Step{
		shStep("ok", "true"),
		shStep("boom", "echo oops >&2; exit 3"),
		shStep("never", "true"),
	}

	results, err := runner.Run(context.Background(), steps, Hooks{})
	if err == nil {
		t.Fatal("Run() should fail")
	}
	if len(results) != 2 {
		t.Fatalf("Run() returned %d results, want 2 (third step must not run)", len(results))
	}

	var stepErr *StepError
	if !errors.As(err, &stepErr) {
		t.Fatalf("expected *StepError, got %T: %v", err, err)
	}
	if stepErr.Step != "boom" {
		t.Errorf("StepError.Step = %q, want boom", stepErr.Step)
	}
	if stepErr.ExitCode != 3 {
		t.Errorf("StepError.ExitCode = %d, want 3 (native exit status propagated)", stepErr.ExitCode)
	}
	if stepErr.Stderr != "oops\n" {
		t.Errorf("StepError.Stderr = %q, want %q", stepErr.Stderr, "oops\n")
	}
}

func TestRunDryRunExecutesNothing(t *testing.T) {
	runner := testRunner(Config{DryRun: true})
	steps := []Step{
		// Would fail if actually executed
		shStep("boom", "exit 1"),
	}

	results, err := runner.Run(context.Background(), steps, Hooks{})
	if err != nil {
		t.Fatalf("Run() error = %v, dry-run must not execute", err)
	}
	if results[0].Status != StatusDryRun {
		t.Errorf("status = %v, want dry-run", results[0].Status)
	}
	if results[0].Detail == "" {
		t.Error("dry-run result should carry the command line")
	}
}

func TestRunSkipsWhenAlreadyDone(t *testing.T) {
	runner := testRunner(Config{})
	probed := false
	step := shStep("boom", "exit 1")
	step.AlreadyDone = func(ctx context.Context) (bool, string) {
		probed = true
		return true, "already in place"
	}

	results, err := runner.Run(context.Background(), []Step{step}, Hooks{})
	if err != nil {
		t.Fatalf("Run() error = %v, probe should have skipped the step", err)
	}
	if !probed {
		t.Fatal("AlreadyDone probe was not called")
	}
	if results[0].Status != StatusSkipped {
		t.Errorf("status = %v, want skipped", results[0].Status)
	}
	if results[0].Detail != "already in place" {
		t.Errorf("detail = %q, want probe message", results[0].Detail)
	}
}

func TestRunTimeout(t *testing.T) {
	runner := testRunner(Config{})
	step := shStep("slow", "sleep 10")
	step.Timeout = 100 * time.Millisecond

	_, err := runner.Run(context.Background(), []Step{step}, Hooks{})
	if err == nil {
		t.Fatal("Run() should fail on timeout")
	}
	var timeoutErr *TimeoutError
	if !errors.As(err, &timeoutErr) {
		t.Fatalf("expected *TimeoutError, got %T: %v", err, err)
	}
	if timeoutErr.Step != "slow" {
		t.Errorf("TimeoutError.Step = %q, want slow", timeoutErr.Step)
	}
}

func TestRunHooks(t *testing.T) {
	runner := testRunner(Config{})
	steps := []Step{
		shStep("one", "true"),
		shStep("two", "exit 2"),
	}

	var started, done []string
	hooks := Hooks{
		OnStart: func(i, n int, step Step) {
			if n != 2 {
				t.Errorf("OnStart total = %d, want 2", n)
			}
			started = append(started, step.Name)
		},
		OnDone: func(i, n int, step Step, res StepResult) {
			done = append(done, step.Name+":"+res.Status.String())
		},
	}

	_, err := runner.Run(context.Background(), steps, hooks)
	if err == nil {
		t.Fatal("Run() should fail at step two")
	}
	if len(started) != 2 || started[0] != "one" || started[1] != "two" {
		t.Errorf("started = %v, want both steps in order", started)
	}
	if len(done) != 2 || done[0] != "one:completed" || done[1] != "two:failed" {
		t.Errorf("done = %v, want completion then failure", done)
	}
}

func TestRunCommandNotFound(t *testing.T) {
	runner := testRunner(Config{})
	step := Step{
		Name:    "missing",
		Command: []string{"/nonexistent/binary-for-test"},
		Timeout: 5 * time.Second,
	}

	_, err := runner.Run(context.Background(), []Step{step}, Hooks{})
	if err == nil {
		t.Fatal("Run() should fail for a missing binary")
	}
	var stepErr *StepError
	if !errors.As(err, &stepErr) {
		t.Fatalf("expected *StepError, got %T: %v", err, err)
	}
	if stepErr.ExitCode != -1 {
		t.Errorf("ExitCode = %d, want -1 for a command that never started", stepErr.ExitCode)
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	if config.SudoPath != "sudo" {
		t.Errorf("SudoPath = %q, want sudo", config.SudoPath)
	}
	if config.DefaultTimeout != 10*time.Minute {
		t.Errorf("DefaultTimeout = %v, want 10m", config.DefaultTimeout)
	}
	if config.DryRun || config.Verbose {
		t.Error("DryRun and Verbose should default to false")
	}
}
