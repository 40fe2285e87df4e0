package organizer

import (
	"path/filepath"
	"testing"

	"github.com/jensettl/folder-organizer/internal/category"
)

func TestClassify(t *testing.T) {
	root := t.TempDir()
	classifier := NewClassifier(category.BuiltIn(), root)

	tests := []struct {
		name     string
		ext      string
		category string
	}{
		{"report.pdf", ".pdf", "Documents"},
		{"movie.mp4", ".mp4", "Videos"},
		{"notes", "", category.Other},
		{"blob.weird", ".weird", category.Other},
	}
	for _, tc := range tests {
		entry := FileEntry{Name: tc.name, Ext: tc.ext, Path: filepath.Join(root, tc.name), Dir: root}
		gotCategory, gotDir := classifier.Classify(entry)
		if gotCategory != tc.category {
			t.Errorf("Classify(%s) category = %q, want %q", tc.name, gotCategory, tc.category)
		}
		if want := filepath.Join(root, tc.category); gotDir != want {
			t.Errorf("Classify(%s) dir = %q, want %q", tc.name, gotDir, want)
		}
	}
}

func TestDirFor(t *testing.T) {
	root := t.TempDir()
	classifier := NewClassifier(category.BuiltIn(), root)
	if got, want := classifier.DirFor("Design"), filepath.Join(root, "Design"); got != want {
		t.Fatalf("DirFor = %q, want %q", got, want)
	}
}
