package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"vhdlast/internal/ast"
	"vhdlast/internal/ident"
)

func newLookupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup",
		Short: "Find a design unit by library and name",
	}
	entityCmd := &cobra.Command{
		Use:   "entity [flags] <stream> <library|-> [name]",
		Short: "Find an entity and its architectures; without a name the library must hold exactly one entity",
		Args:  cobra.RangeArgs(2, 3),
		RunE:  runLookupEntity,
	}
	packageCmd := &cobra.Command{
		Use:   "package [flags] <stream> <library|-> <name>",
		Short: "Find a package declaration",
		Args:  cobra.ExactArgs(3),
		RunE:  runLookupPackage,
	}
	addLoadFlags(entityCmd)
	addLoadFlags(packageCmd)
	cmd.AddCommand(entityCmd, packageCmd)
	return cmd
}

func runLookupEntity(cmd *cobra.Command, args []string) error {
	a, s, err := loadAST(cmd, args[0])
	if err != nil {
		return err
	}
	lib, err := resolveLibrary(a, s, args[1])
	if err != nil {
		return err
	}

	var (
		name ident.Identifier
		id   ast.NodeID[ast.EntityDeclaration]
	)
	if len(args) == 3 {
		var ok bool
		id, ok = a.LookupEntityDeclaration(lib, ident.NewNormalized(args[2]))
		if !ok {
			return fmt.Errorf("entity %q not found in library %s", args[2], args[1])
		}
		entity, err := id.TryGet(a)
		if err != nil {
			return err
		}
		name = entity.Identifier
	} else {
		name, id, err = a.SingleEntityDeclaration(lib)
		if err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	printUnit(out, "entity", name, id.Generic())
	for _, archID := range a.LookupArchitectureBodies(id) {
		arch, err := archID.TryGet(a)
		if err != nil {
			return err
		}
		fmt.Fprint(out, "  ")
		printUnit(out, "architecture", arch.Identifier, archID.Generic())
	}
	return nil
}

func runLookupPackage(cmd *cobra.Command, args []string) error {
	a, s, err := loadAST(cmd, args[0])
	if err != nil {
		return err
	}
	lib, err := resolveLibrary(a, s, args[1])
	if err != nil {
		return err
	}
	id, ok := a.LookupPackageDeclaration(lib, ident.NewNormalized(args[2]))
	if !ok {
		return fmt.Errorf("package %q not found in library %s", args[2], args[1])
	}
	pkg, err := id.TryGet(a)
	if err != nil {
		return err
	}
	printUnit(cmd.OutOrStdout(), "package", pkg.Identifier, id.Generic())
	return nil
}

func printUnit(w io.Writer, kind string, name ident.Identifier, id ast.GenericNodeID) {
	fmt.Fprintf(w, "%s %s #%d", color.New(color.FgCyan).Sprint(kind), color.New(color.Bold).Sprint(name), id)
	if loc, ok := name.Location(); ok {
		fmt.Fprintf(w, " at %s", loc)
	}
	fmt.Fprintln(w)
}
