package version

import (
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
}

func TestInfo(t *testing.T) {
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	defer func() {
		Version, GitCommit, BuildDate = origVersion, origCommit, origDate
	}()

	tests := []struct {
		commit, date string
		want         string
	}{
		{"", "", "vhdlast 1.2.3"},
		{"abc123", "", "vhdlast 1.2.3 (abc123)"},
		{"abc123", "2024-01-15", "vhdlast 1.2.3 (abc123, 2024-01-15)"},
		{"", "2024-01-15", "vhdlast 1.2.3 (2024-01-15)"},
	}
	Version = "1.2.3"
	for _, tt := range tests {
		GitCommit, BuildDate = tt.commit, tt.date
		if got := Info(false); got != tt.want {
			t.Errorf("Info() = %q, want %q", got, tt.want)
		}
	}
}

func TestColored(t *testing.T) {
	origVersion, origNoColor := Version, color.NoColor
	defer func() { Version, color.NoColor = origVersion, origNoColor }()

	color.NoColor = false
	Version = "0.1.0-dev"
	got := Colored()
	if !strings.HasSuffix(got, "-dev") || !strings.Contains(got, "\x1b[") {
		t.Errorf("Colored() = %q", got)
	}

	Version = "nightly"
	if got := Colored(); got != "nightly" {
		t.Errorf("Colored() = %q", got)
	}
}
