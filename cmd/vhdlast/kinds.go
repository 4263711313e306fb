package main

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"vhdlast/internal/ast"
)

func newKindsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kinds",
		Short: "List the node kinds and the tags they are decoded from",
		Args:  cobra.NoArgs,
		RunE:  runKinds,
	}
	cmd.Flags().Bool("groups", false, "list the subset groups instead of the kinds")
	return cmd
}

func runKinds(cmd *cobra.Command, args []string) error {
	groups, err := cmd.Flags().GetBool("groups")
	if err != nil {
		return fmt.Errorf("failed to get groups flag: %w", err)
	}
	tbl := newTable(cmd.OutOrStdout())
	if groups {
		tbl.AppendHeader(table.Row{"Group", "Kinds"})
		for name, kinds := range ast.Groups() {
			members := make([]string, len(kinds))
			for i, k := range kinds {
				members[i] = k.String()
			}
			tbl.AppendRow(table.Row{name, strings.Join(members, ", ")})
		}
		tbl.Render()
		return nil
	}
	tbl.AppendHeader(table.Row{"Kind", "Tag"})
	for k := range ast.Kinds() {
		tags := k.Tag()
		if aliases := k.Aliases(); len(aliases) > 0 {
			tags += " (" + strings.Join(aliases, ", ") + ")"
		}
		tbl.AppendRow(table.Row{k.String(), tags})
	}
	tbl.Render()
	return nil
}
