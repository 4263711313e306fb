package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"vhdlast/internal/loader"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [flags] <stream>...",
		Short: "Load AST streams and report which ones are well formed",
		Long:  `Load every stream concurrently, build its indexes and report the result per stream. The command fails when any stream fails to load`,
		Args:  cobra.MinimumNArgs(1),
		RunE:  runCheck,
	}
	cmd.Flags().Int("jobs", 0, "max parallel loads (0=one per stream)")
	cmd.Flags().String("ui", "auto", "progress view (auto|on|off)")
	addLoadFlags(cmd)
	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiValue)
	if err != nil {
		return err
	}
	s, err := loadSettingsFor(cmd)
	if err != nil {
		return err
	}
	baseDir, err := os.Getwd()
	if err != nil {
		baseDir = ""
	}

	req := &loader.Request{
		Files:   args,
		BaseDir: baseDir,
		Jobs:    jobs,
		Cache:   s.cache,
		Options: s.opts,
		Stdin:   cmd.InOrStdin(),
	}

	start := time.Now()
	var results []loader.Result
	if !s.quiet && shouldUseTUI(mode) {
		names := loader.DisplayNames(args, baseDir)
		results, err = runLoadWithUI(cmd.Context(), "checking AST streams", names, req)
	} else {
		results, err = loader.LoadAll(cmd.Context(), req)
	}
	if err != nil {
		return err
	}

	failed := reportResults(cmd.OutOrStdout(), results, s.quiet)
	if !s.quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "%d streams, %d failed (%s)\n", len(results), failed, time.Since(start).Round(time.Millisecond))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d streams failed to load", failed, len(results))
	}
	return nil
}

func reportResults(w io.Writer, results []loader.Result, quiet bool) int {
	okLabel := color.New(color.FgGreen).Sprint("ok")
	failLabel := color.New(color.FgRed, color.Bold).Sprint("FAIL")
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(w, "%-4s %s: %v\n", failLabel, r.Name, r.Err)
			continue
		}
		if quiet {
			continue
		}
		libraries := 0
		for range r.Ast.Libraries() {
			libraries++
		}
		source := "decoded"
		if r.Cached {
			source = "cached"
		}
		size := humanize.Bytes(uint64(r.Size)) // #nosec G115 -- len is non-negative
		fmt.Fprintf(w, "%-4s %s: %d slots, %d libraries, %s, %s in %s\n",
			okLabel, r.Name, r.Ast.Len(), libraries, size, source, r.Timings.Total().Round(time.Microsecond))
	}
	return failed
}
