package ui

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func testTaskRunner(buf *bytes.Buffer) *TaskRunner {
	return NewTaskRunner(TaskRunnerConfig{
		Title:      "Driver Install",
		Command:    "matrix-setup install",
		Params:     map[string]string{"Source": "/tmp/src"},
		TotalSteps: 2,
		StepNames:  []string{"Refresh index", "Install packages"},
		Output:     buf,
	})
}

func TestTaskRunnerSuccess(t *testing.T) {
	var buf bytes.Buffer
	runner := testTaskRunner(&buf)

	err := runner.Run(context.Background(), func(onStep StepCallback) (map[string]string, error) {
		onStep(1, "Refresh index", StepRunning, "")
		onStep(1, "Refresh index", StepComplete, "2s")
		onStep(2, "Install packages", StepSkipped, "already installed")
		return map[string]string{"Steps": "1 run, 1 already done"}, nil
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"DRIVER INSTALL",
		"matrix-setup install",
		"Refresh index",
		"already installed",
		"SUCCESS",
		"1 run, 1 already done",
		"Duration",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestTaskRunnerFailure(t *testing.T) {
	var buf bytes.Buffer
	runner := testTaskRunner(&buf)

	opErr := errors.New("apt-get exited with status 100")
	err := runner.Run(context.Background(), func(onStep StepCallback) (map[string]string, error) {
		onStep(1, "Refresh index", StepRunning, "")
		onStep(1, "Refresh index", StepFailed, "exit 100")
		return nil, opErr
	})
	if err != opErr {
		t.Fatalf("Run() error = %v, want the operation error back", err)
	}

	out := buf.String()
	for _, want := range []string{
		"FAILED",
		"apt-get exited with status 100",
		"Troubleshooting",
		"exit 100",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out, "SUCCESS") {
		t.Error("failure run must not print a success box")
	}
}

func TestTaskRunnerVerboseShowsCapturedOutput(t *testing.T) {
	var buf bytes.Buffer
	runner := NewTaskRunner(TaskRunnerConfig{
		Title:      "Driver Install",
		Command:    "matrix-setup install",
		TotalSteps: 1,
		Verbose:    true,
		Output:     &buf,
	})
	runner.SetCommandOutput("E: Unable to locate package cython3")

	_ = runner.Run(context.Background(), func(onStep StepCallback) (map[string]string, error) {
		return nil, errors.New("install failed")
	})

	if !strings.Contains(buf.String(), "Unable to locate package cython3") {
		t.Error("verbose failure should include the captured command output")
	}
}

func TestStepCallbackUpdatesProgress(t *testing.T) {
	var buf bytes.Buffer
	runner := testTaskRunner(&buf)
	onStep := runner.createStepCallback()

	onStep(1, "", StepRunning, "")
	if runner.progress.Current != 1 {
		t.Errorf("Current = %d, want 1", runner.progress.Current)
	}

	onStep(1, "", StepComplete, "done")
	onStep(2, "", StepSkipped, "already there")
	if runner.progress.Percent != 1.0 {
		t.Errorf("Percent = %v, want 1.0 after all steps complete or skip", runner.progress.Percent)
	}
	if runner.progress.Steps[0].Status != StepComplete {
		t.Errorf("step 1 status = %v, want complete", runner.progress.Steps[0].Status)
	}
	if runner.progress.Steps[1].Status != StepSkipped {
		t.Errorf("step 2 status = %v, want skipped", runner.progress.Steps[1].Status)
	}

	onStep(1, "", StepFailed, "exit 1")
	if runner.progress.Steps[0].Status != StepFailed {
		t.Errorf("step 1 status = %v, want failed", runner.progress.Steps[0].Status)
	}
}
