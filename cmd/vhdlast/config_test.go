package main

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, configFileName)
	writeFile(t, path, `[index]
exclude_libraries = ["std", "ieee", "unisim"]

[cache]
enabled = true
dir = ".cache"

[dump]
path = "/tmp/arena.txt"
`)
	cfg, err := loadConfigFile(path)
	if err != nil {
		t.Fatalf("loadConfigFile: %v", err)
	}
	if !slices.Equal(cfg.Index.ExcludeLibraries, []string{"std", "ieee", "unisim"}) {
		t.Errorf("exclude = %v", cfg.Index.ExcludeLibraries)
	}
	if !cfg.Cache.Enabled || cfg.resolve(cfg.Cache.Dir) != filepath.Join(dir, ".cache") {
		t.Errorf("cache = %+v", cfg.Cache)
	}
	if cfg.resolve(cfg.Dump.Path) != "/tmp/arena.txt" {
		t.Errorf("dump = %q", cfg.resolve(cfg.Dump.Path))
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	writeFile(t, path, "[cache]\nenabled = false\n")
	cfg, err := loadConfigFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(cfg.Index.ExcludeLibraries, []string{"std", "ieee"}) {
		t.Errorf("default exclude = %v", cfg.Index.ExcludeLibraries)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := map[string]string{
		"unknown key":  "[index]\nexclude = []\n",
		"empty dir":    "[cache]\ndir = \"\"\n",
		"empty name":   "[index]\nexclude_libraries = [\"\"]\n",
		"invalid toml": "[index\n",
	}
	for name, content := range tests {
		path := filepath.Join(t.TempDir(), configFileName)
		writeFile(t, path, content)
		_, err := loadConfigFile(path)
		if err == nil || !strings.Contains(err.Error(), path) {
			t.Errorf("%s: err = %v", name, err)
		}
	}
}

func TestFindConfigWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(root, configFileName), "")

	path, ok, err := findConfig(nested)
	if err != nil || !ok {
		t.Fatalf("findConfig = %v, %v", ok, err)
	}
	if path != filepath.Join(root, configFileName) {
		t.Errorf("path = %q", path)
	}
}

func TestReadUIMode(t *testing.T) {
	for in, want := range map[string]uiMode{"": uiModeAuto, "ON": uiModeOn, " off ": uiModeOff} {
		got, err := readUIMode(in)
		if err != nil || got != want {
			t.Errorf("readUIMode(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := readUIMode("maybe"); err == nil {
		t.Error("invalid mode accepted")
	}
	if !shouldUseTUI(uiModeOn) || shouldUseTUI(uiModeOff) {
		t.Error("explicit modes ignored")
	}
}
