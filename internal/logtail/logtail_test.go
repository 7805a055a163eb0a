package logtail

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func TestRead(t *testing.T) {
	fs := afero.NewMemMapFs()
	logPath := "/state/daywall.log"

	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}
	if err := afero.WriteFile(fs, logPath, []byte(content.String()), 0o644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{name: "read all (0)", maxLines: 0, expected: expectedAll},
		{name: "read all (negative)", maxLines: -1, expected: expectedAll},
		{name: "read partial (5)", maxLines: 5, expected: expectedAll[5:]},
		{name: "read exactly all (10)", maxLines: 10, expected: expectedAll},
		{name: "read more than exists (20)", maxLines: 20, expected: expectedAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(fs, logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(afero.NewMemMapFs(), "/nope.log", 10)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got != nil {
		t.Fatalf("Read() = %v, want nil", got)
	}
}

func TestLevelOf(t *testing.T) {
	tests := []struct {
		line string
		want Level
	}{
		{"2024-03-10 10:00:00 INF wallpaper applied image=/a.jpg", LevelInfo},
		{"2024-03-10 10:00:00 WRN anchors out of cyclic order", LevelWarn},
		{"2024-03-10 10:00:00 ERR scheduler failed error=\"fetch anchors\"", LevelError},
		{"2024-03-10 10:00:00 DBG scheduler phase phase=running", LevelDebug},
		{"plain text without a level mentioning ERR later on", LevelUnknown},
		{"", LevelUnknown},
	}
	for _, tt := range tests {
		if got := LevelOf(tt.line); got != tt.want {
			t.Errorf("LevelOf(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}
