package install

import (
	"strings"
	"testing"
)

func TestPlanOrder(t *testing.T) {
	steps := Plan(PlanOptions{
		MatrixSrcDir:     "/home/pi/rpi-rgb-led-matrix",
		RequirementsFile: "requirements.txt",
	})

	want := []string{
		"apt-update",
		"apt-install",
		"build-binding",
		"install-binding",
		"pip-upgrade",
		"pip-requirements",
	}
	if len(steps) != len(want) {
		t.Fatalf("Plan() returned %d steps, want %d", len(steps), len(want))
	}
	for i, name := range want {
		if steps[i].Name != name {
			t.Errorf("step %d = %q, want %q", i, steps[i].Name, name)
		}
	}
}

func TestPlanSkipAptUpdate(t *testing.T) {
	steps := Plan(PlanOptions{SkipAptUpdate: true, MatrixSrcDir: "/src"})
	for _, s := range steps {
		if s.Name == "apt-update" {
			t.Error("Plan() should omit apt-update when SkipAptUpdate is set")
		}
	}
}

func TestPlanOmitsRequirementsWithoutFile(t *testing.T) {
	steps := Plan(PlanOptions{MatrixSrcDir: "/src"})
	for _, s := range steps {
		if s.Name == "pip-requirements" {
			t.Error("Plan() should omit pip-requirements when no file is given")
		}
	}
}

func TestPlanElevationAndDirs(t *testing.T) {
	steps := Plan(PlanOptions{MatrixSrcDir: "/src", RequirementsFile: "r.txt"})

	byName := map[string]Step{}
	for _, s := range steps {
		byName[s.Name] = s
	}

	for _, name := range []string{"apt-update", "apt-install", "install-binding"} {
		if !byName[name].NeedsRoot {
			t.Errorf("step %s should need root", name)
		}
	}
	for _, name := range []string{"build-binding", "pip-upgrade", "pip-requirements"} {
		if byName[name].NeedsRoot {
			t.Errorf("step %s should not need root", name)
		}
	}
	for _, name := range []string{"build-binding", "install-binding"} {
		if byName[name].Dir != "/src" {
			t.Errorf("step %s dir = %q, want /src", name, byName[name].Dir)
		}
	}
}

func TestPlanUsesConfiguredPython(t *testing.T) {
	steps := Plan(PlanOptions{MatrixSrcDir: "/src", PythonBin: "python3.11"})
	found := false
	for _, s := range steps {
		if s.Name == "pip-upgrade" {
			found = true
			if s.Command[0] != "python3.11" {
				t.Errorf("pip-upgrade command = %v, want python3.11 interpreter", s.Command)
			}
		}
	}
	if !found {
		t.Fatal("pip-upgrade step missing")
	}
}

func TestCommandLine(t *testing.T) {
	step := Step{
		Name:      "apt-update",
		Command:   []string{"apt-get", "update"},
		NeedsRoot: true,
	}

	if got := step.CommandLine("sudo"); got != "sudo apt-get update" {
		t.Errorf("CommandLine(sudo) = %q, want sudo prefix", got)
	}
	if got := step.CommandLine(""); got != "apt-get update" {
		t.Errorf("CommandLine(\"\") = %q, want no prefix", got)
	}

	plain := Step{Name: "pip-upgrade", Command: []string{"python3", "-m", "pip"}}
	if got := plain.CommandLine("sudo"); strings.HasPrefix(got, "sudo") {
		t.Errorf("CommandLine() = %q, non-root step should not get sudo", got)
	}
}
