package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jensettl/folder-organizer/internal/category"
	"github.com/jensettl/folder-organizer/internal/organizer"
)

func promptEntry(name string) organizer.FileEntry {
	dir := filepath.Join("/tmp", "inbox")
	return organizer.FileEntry{
		Name: name,
		Ext:  strings.ToLower(filepath.Ext(name)),
		Path: filepath.Join(dir, name),
		Dir:  dir,
	}
}

func newTestPrompt(input string) (*promptProvider, *bytes.Buffer) {
	var out bytes.Buffer
	classifier := organizer.NewClassifier(category.BuiltIn(), filepath.Join("/tmp", "inbox"))
	return newPromptProvider(strings.NewReader(input), &out, classifier), &out
}

func TestPromptDefaultsToAuto(t *testing.T) {
	prompt, out := newTestPrompt("\n")

	decision, err := prompt.Decide(promptEntry("report.pdf"))
	if err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if decision.Action != organizer.ActionAuto {
		t.Fatalf("expected auto action, got %q", decision.Action)
	}
	if !strings.Contains(out.String(), "suggested category: Documents") {
		t.Fatalf("prompt output missing suggestion: %q", out.String())
	}
}

func TestPromptManualByNumber(t *testing.T) {
	classifier := organizer.NewClassifier(category.BuiltIn(), filepath.Join("/tmp", "inbox"))
	names := classifier.Categories()

	prompt, _ := newTestPrompt("m\n2\n")
	decision, err := prompt.Decide(promptEntry("report.pdf"))
	if err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if decision.Action != organizer.ActionManual {
		t.Fatalf("expected manual action, got %q", decision.Action)
	}
	if decision.Category != names[1] {
		t.Fatalf("expected category %q, got %q", names[1], decision.Category)
	}
}

func TestPromptManualByName(t *testing.T) {
	prompt, _ := newTestPrompt("m\nKeepers\n")
	decision, err := prompt.Decide(promptEntry("notes.txt"))
	if err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if decision.Action != organizer.ActionManual || decision.Category != "Keepers" {
		t.Fatalf("unexpected decision %+v", decision)
	}
}

func TestPromptDeleteNeedsConfirmation(t *testing.T) {
	prompt, _ := newTestPrompt("d\nn\n")
	decision, err := prompt.Decide(promptEntry("junk.tmp"))
	if err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if decision.Action != organizer.ActionSkip {
		t.Fatalf("declined delete should skip, got %q", decision.Action)
	}

	prompt, _ = newTestPrompt("d\ny\n")
	decision, err = prompt.Decide(promptEntry("junk.tmp"))
	if err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if decision.Action != organizer.ActionDelete {
		t.Fatalf("confirmed delete expected, got %q", decision.Action)
	}
}

func TestPromptRetriesOnUnknownInput(t *testing.T) {
	prompt, out := newTestPrompt("x\ns\n")
	decision, err := prompt.Decide(promptEntry("movie.mp4"))
	if err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if decision.Action != organizer.ActionSkip {
		t.Fatalf("expected skip after retry, got %q", decision.Action)
	}
	if !strings.Contains(out.String(), `Unrecognized choice "x"`) {
		t.Fatalf("missing retry message in output: %q", out.String())
	}
}

func TestPromptEOFReturnsError(t *testing.T) {
	prompt, _ := newTestPrompt("")
	if _, err := prompt.Decide(promptEntry("report.pdf")); err == nil {
		t.Fatal("expected error on exhausted input")
	}
}
