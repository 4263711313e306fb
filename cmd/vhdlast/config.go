package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"vhdlast/internal/ast"
)

const configFileName = "vhdlast.toml"

// projectConfig is the content of vhdlast.toml. Every section is optional.
type projectConfig struct {
	Index indexConfig `toml:"index"`
	Cache cacheConfig `toml:"cache"`
	Dump  dumpConfig  `toml:"dump"`

	// Root is the directory holding the file; relative paths resolve
	// against it.
	Root string `toml:"-"`
}

type indexConfig struct {
	ExcludeLibraries []string `toml:"exclude_libraries"`
}

type cacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

type dumpConfig struct {
	Path string `toml:"path"`
}

func defaultConfig() projectConfig {
	return projectConfig{
		Index: indexConfig{ExcludeLibraries: append([]string(nil), ast.DefaultExcludedLibraries...)},
	}
}

func findConfig(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadConfigFile(path string) (projectConfig, error) {
	cfg := defaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return projectConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return projectConfig{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if meta.IsDefined("cache", "dir") && strings.TrimSpace(cfg.Cache.Dir) == "" {
		return projectConfig{}, fmt.Errorf("%s: [cache].dir must not be empty", path)
	}
	for _, name := range cfg.Index.ExcludeLibraries {
		if strings.TrimSpace(name) == "" {
			return projectConfig{}, fmt.Errorf("%s: [index].exclude_libraries contains an empty name", path)
		}
	}
	cfg.Root = filepath.Dir(path)
	return cfg, nil
}

// loadConfig reads --config when given, otherwise the nearest
// vhdlast.toml. Without a file the defaults apply.
func loadConfig(cmd *cobra.Command) (projectConfig, error) {
	explicit, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return projectConfig{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	if explicit != "" {
		return loadConfigFile(explicit)
	}
	path, ok, err := findConfig(".")
	if err != nil {
		return projectConfig{}, err
	}
	if !ok {
		return defaultConfig(), nil
	}
	return loadConfigFile(path)
}

func (c projectConfig) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || c.Root == "" {
		return path
	}
	return filepath.Join(c.Root, path)
}
