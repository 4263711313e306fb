package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vhdlast/internal/ast"
	"vhdlast/internal/astcache"
	"vhdlast/internal/ident"
	"vhdlast/internal/loader"
)

type loadSettings struct {
	cfg   projectConfig
	cache *astcache.Cache
	opts  []ast.Option
	quiet bool
}

func addLoadFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("no-cache", false, "bypass the snapshot cache even when vhdlast.toml enables it")
	cmd.Flags().String("dump", "", "write the arena dump to this file")
}

func loadSettingsFor(cmd *cobra.Command) (*loadSettings, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return nil, fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	dumpPath, err := cmd.Flags().GetString("dump")
	if err != nil {
		return nil, fmt.Errorf("failed to get dump flag: %w", err)
	}

	s := &loadSettings{cfg: cfg, quiet: quiet}
	if cfg.Cache.Enabled && !noCache {
		dir := cfg.resolve(cfg.Cache.Dir)
		if dir == "" {
			if dir, err = astcache.DefaultDir("vhdlast"); err != nil {
				return nil, fmt.Errorf("cache directory: %w", err)
			}
		}
		if s.cache, err = astcache.Open(dir); err != nil {
			return nil, fmt.Errorf("open cache: %w", err)
		}
	}
	switch {
	case dumpPath != "":
		s.opts = append(s.opts, ast.WithDumpPath(dumpPath))
	case cfg.Dump.Path != "":
		s.opts = append(s.opts, ast.WithDumpPath(cfg.resolve(cfg.Dump.Path)))
	}
	return s, nil
}

func loadAST(cmd *cobra.Command, path string) (*ast.Ast, *loadSettings, error) {
	s, err := loadSettingsFor(cmd)
	if err != nil {
		return nil, nil, err
	}
	a, err := loader.Load(cmd.Context(), path, s.cache, s.opts...)
	if err != nil {
		return nil, nil, err
	}
	return a, s, nil
}

// resolveLibrary maps "-" to the only non-excluded library.
func resolveLibrary(a *ast.Ast, s *loadSettings, name string) (ast.NodeID[ast.Library], error) {
	if name == "-" {
		_, id, err := a.SingleLibraryExcluding(s.cfg.Index.ExcludeLibraries...)
		return id, err
	}
	id, ok := a.LookupLibrary(ident.NewNormalized(name))
	if !ok {
		return 0, fmt.Errorf("library %q: %w", name, ast.ErrNoLibrary)
	}
	return id, nil
}
