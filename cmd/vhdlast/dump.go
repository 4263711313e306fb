package main

import (
	"github.com/spf13/cobra"
)

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump [flags] <stream>",
		Short: "Print every arena slot of an AST stream",
		Long:  `Print one line per arena slot: the slot number and the node in debug form. Use "-" to read the stream from standard input`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := loadAST(cmd, args[0])
			if err != nil {
				return err
			}
			return a.Dump(cmd.OutOrStdout())
		},
	}
	addLoadFlags(cmd)
	return cmd
}
