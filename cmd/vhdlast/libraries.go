package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"vhdlast/internal/ast"
)

func newLibrariesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "libraries [flags] <stream>",
		Short: "List the root libraries of an AST stream",
		Args:  cobra.ExactArgs(1),
		RunE:  runLibraries,
	}
	cmd.Flags().Bool("single", false, "print only the single library outside [index].exclude_libraries")
	addLoadFlags(cmd)
	return cmd
}

func runLibraries(cmd *cobra.Command, args []string) error {
	single, err := cmd.Flags().GetBool("single")
	if err != nil {
		return fmt.Errorf("failed to get single flag: %w", err)
	}
	a, s, err := loadAST(cmd, args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if single {
		name, _, err := a.SingleLibraryExcluding(s.cfg.Index.ExcludeLibraries...)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, name)
		return nil
	}

	entities := make(map[ast.NodeID[ast.Library]]int)
	for key := range a.EntityDeclarations() {
		entities[key.Library]++
	}
	packages := make(map[ast.NodeID[ast.Library]]int)
	for key := range a.PackageDeclarations() {
		packages[key.Library]++
	}

	bold := color.New(color.Bold)
	dim := color.New(color.Faint)
	tbl := newTable(out)
	tbl.AppendHeader(table.Row{"Library", "ID", "Entities", "Packages"})
	for name, id := range a.Libraries() {
		excluded := slices.Contains(s.cfg.Index.ExcludeLibraries, string(name))
		label := bold.Sprint(name)
		if excluded {
			label = dim.Sprint(name)
		}
		tbl.AppendRow(table.Row{label, "#" + id.String(), entities[id], packages[id]})
	}
	tbl.Render()
	return nil
}

// newTable returns a borderless table writer for command listings.
func newTable(out io.Writer) table.Writer {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(out)
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.SeparateColumns = false
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Options.SeparateHeader = false
	return tbl
}
