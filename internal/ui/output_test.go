package ui

import (
	"strings"
	"testing"
)

func TestCommandOutputFilterLines(t *testing.T) {
	raw := strings.Join([]string{
		"Reading package lists...",
		"E: Unable to locate package cython3",
		"Building dependency tree...",
		"error: no such target",
	}, "\n")

	out := NewCommandOutput(raw).FilterLines("E:", "error")
	if len(out.Lines) != 2 {
		t.Fatalf("FilterLines kept %d lines, want 2: %v", len(out.Lines), out.Lines)
	}
	if out.Lines[0] != "E: Unable to locate package cython3" {
		t.Errorf("first kept line = %q", out.Lines[0])
	}
	if strings.Contains(out.Content, "Reading package lists") {
		t.Error("filtered content still contains unmatched lines")
	}
}

func TestCommandOutputFilterLinesNoMatch(t *testing.T) {
	out := NewCommandOutput("all good\nnothing to see").FilterLines("error")
	if len(out.Lines) != 0 {
		t.Errorf("FilterLines kept %d lines, want 0", len(out.Lines))
	}
}

func TestCommandOutputMaxLinesTruncates(t *testing.T) {
	raw := strings.Join([]string{"one", "two", "three", "four"}, "\n")

	rendered := NewCommandOutput(raw).SetWidth(80).SetMaxLines(2).Render()
	if !strings.Contains(rendered, "output truncated") {
		t.Error("truncated output should carry a truncation marker")
	}
	if strings.Contains(rendered, "three") {
		t.Error("lines past the limit should not render")
	}
}

func TestCommandOutputTitle(t *testing.T) {
	rendered := NewCommandOutput("hello").SetWidth(80).SetTitle("Failing step errors").Render()
	if !strings.Contains(rendered, "Failing step errors") {
		t.Error("custom title should render")
	}
}
