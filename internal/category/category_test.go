package category

import "testing"

func TestForExtensionCaseInsensitive(t *testing.T) {
	m := BuiltIn()
	if got, want := m.ForExtension(".PDF"), m.ForExtension(".pdf"); got != want {
		t.Fatalf("case-sensitive lookup: %q vs %q", got, want)
	}
	if got := m.ForExtension(".Mp4"); got != "Videos" {
		t.Fatalf("ForExtension(.Mp4) = %q, want Videos", got)
	}
}

func TestForExtensionFallback(t *testing.T) {
	m := BuiltIn()
	if got := m.ForExtension(".nosuchext"); got != Other {
		t.Fatalf("unmapped extension = %q, want %q", got, Other)
	}
	if got := m.ForExtension(""); got != Other {
		t.Fatalf("empty extension = %q, want %q", got, Other)
	}
}

func TestNames(t *testing.T) {
	m := Map{".a": "Beta", ".b": "Alpha", ".c": "Beta"}
	names := m.Names()
	want := []string{"Alpha", "Beta", Other}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Names()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestMerge(t *testing.T) {
	m := Map{".pdf": "Documents"}
	merged := m.Merge(map[string]string{
		"pdf":  "Paperwork",
		".log": "Logs",
		"":     "Ignored",
		".bad": "",
	})

	if got := merged.ForExtension(".pdf"); got != "Paperwork" {
		t.Fatalf("override not applied: %q", got)
	}
	if got := merged.ForExtension(".log"); got != "Logs" {
		t.Fatalf("dotless override key not normalized: %q", got)
	}
	if got := merged.ForExtension(".bad"); got != Other {
		t.Fatalf("empty category should be dropped, got %q", got)
	}
	// Original map untouched.
	if got := m.ForExtension(".pdf"); got != "Documents" {
		t.Fatalf("Merge mutated receiver: %q", got)
	}
}
