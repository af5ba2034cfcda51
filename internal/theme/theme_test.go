package theme

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewStoreMissingFile(t *testing.T) {
	s, err := NewStore(filepath.Join(t.TempDir(), "theme"))
	if err != nil {
		t.Fatalf("NewStore returned error: %v", err)
	}
	if s.Enabled() {
		t.Error("Enabled = true, want false for a missing preference file")
	}
}

func TestNewStoreReadsPersistedValue(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{name: "enabled", content: "enabled", want: true},
		{name: "disabled", content: "disabled", want: false},
		{name: "enabled with trailing newline", content: "enabled\n", want: true},
		{name: "garbage treated as disabled", content: "maybe", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "theme")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}

			s, err := NewStore(path)
			if err != nil {
				t.Fatalf("NewStore returned error: %v", err)
			}
			if s.Enabled() != tt.want {
				t.Errorf("Enabled = %v, want %v", s.Enabled(), tt.want)
			}
		})
	}
}

func TestToggleRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme")
	s, err := NewStore(path)
	if err != nil {
		t.Fatalf("NewStore returned error: %v", err)
	}

	enabled, err := s.Toggle()
	if err != nil {
		t.Fatalf("Toggle returned error: %v", err)
	}
	if !enabled {
		t.Error("first toggle: enabled = false, want true")
	}
	assertPersisted(t, path, ValueEnabled)

	enabled, err = s.Toggle()
	if err != nil {
		t.Fatalf("Toggle returned error: %v", err)
	}
	if enabled {
		t.Error("second toggle: enabled = true, want false")
	}
	assertPersisted(t, path, ValueDisabled)

	// Toggling twice returned to the original state; a fresh store must
	// agree with the final visual state.
	reopened, err := NewStore(path)
	if err != nil {
		t.Fatalf("NewStore returned error: %v", err)
	}
	if reopened.Enabled() {
		t.Error("reopened store: Enabled = true, want false")
	}
}

func assertPersisted(t *testing.T, path, want string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	if string(data) != want {
		t.Errorf("persisted value = %q, want %q", string(data), want)
	}
}
