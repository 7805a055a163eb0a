package prefs

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	p := Load(afero.NewMemMapFs(), "")
	if p != Default() {
		t.Fatalf("Load = %+v, want %+v", p, Default())
	}
}

func TestLoad_ReadsDefaultLocation(t *testing.T) {
	home := "/home/tester"
	t.Setenv("HOME", home)

	fs := afero.NewMemMapFs()
	prefsFile := filepath.Join(home, ".config", "daywall", "prefs.toml")
	if err := afero.WriteFile(fs, prefsFile, []byte("theme = \"Slate\"\nshow_logs = false\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p := Load(fs, "")
	if p.Theme != "Slate" {
		t.Fatalf("Theme = %q, want %q", p.Theme, "Slate")
	}
	if p.ShowLogs {
		t.Fatal("ShowLogs = true, want false")
	}
}

func TestSave_RoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	prefsFile := "/tmp/subdir/prefs.toml"

	if err := Save(fs, prefsFile, Prefs{Theme: "Kanagawa", ShowLogs: true}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	loaded := Load(fs, prefsFile)
	if loaded.Theme != "Kanagawa" || !loaded.ShowLogs {
		t.Fatalf("Load = %+v", loaded)
	}
}

func TestSave_ReadOnlyFs(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	if err := Save(fs, "/prefs/prefs.toml", Default()); err == nil {
		t.Fatal("Save on read-only fs returned nil error")
	}
}

func TestLoad_FallsBackToDefault(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "empty theme", content: "theme = \"\"\nshow_logs = true\n"},
		{name: "invalid toml", content: "not valid toml {{{\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			prefsFile := "/prefs.toml"
			if err := afero.WriteFile(fs, prefsFile, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			if p := Load(fs, prefsFile); p.Theme != defaultTheme {
				t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
			}
		})
	}
}
