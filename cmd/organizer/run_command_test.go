package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/jensettl/folder-organizer/internal/category"
	"github.com/jensettl/folder-organizer/internal/config"
	"github.com/jensettl/folder-organizer/internal/organizer"
)

func TestResolveSourcePrefersArgument(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.SourceDir = filepath.Join("/srv", "downloads")

	source, err := resolveSource(&cfg, filepath.Join("/srv", "inbox"))
	if err != nil {
		t.Fatalf("resolveSource: %v", err)
	}
	if source != filepath.Join("/srv", "inbox") {
		t.Fatalf("unexpected source %q", source)
	}
}

func TestResolveSourceFallsBackToConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.SourceDir = filepath.Join("/srv", "downloads")

	source, err := resolveSource(&cfg, "  ")
	if err != nil {
		t.Fatalf("resolveSource: %v", err)
	}
	if source != cfg.Paths.SourceDir {
		t.Fatalf("expected config source, got %q", source)
	}
}

func TestResolveSourceRequiresSomething(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.SourceDir = ""

	if _, err := resolveSource(&cfg, ""); err == nil {
		t.Fatal("expected error when no source is available")
	}
}

func TestRenderCategoryPreviewCountsPerCategory(t *testing.T) {
	dir := filepath.Join("/tmp", "inbox")
	classifier := organizer.NewClassifier(category.BuiltIn(), dir)
	entries := []organizer.FileEntry{
		promptEntry("a.pdf"),
		promptEntry("b.pdf"),
		promptEntry("clip.mp4"),
		promptEntry("mystery"),
	}

	rendered := renderCategoryPreview(classifier, entries)
	for _, want := range []string{"Documents", "Videos", category.Other} {
		if !strings.Contains(rendered, want) {
			t.Fatalf("preview missing %q:\n%s", want, rendered)
		}
	}
}

func TestRenderSummaryMarksDryRun(t *testing.T) {
	summary := organizer.Summary{Total: 3, Moved: 2, Skipped: 1}

	plain := renderSummary(summary, false)
	if strings.Contains(plain, "dry run") {
		t.Fatalf("unexpected dry run marker:\n%s", plain)
	}

	dry := renderSummary(summary, true)
	if !strings.Contains(dry, "Result (dry run)") {
		t.Fatalf("missing dry run marker:\n%s", dry)
	}
}
