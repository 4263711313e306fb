package ast

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"vhdlast/internal/ident"
)

// DebugString renders a node as `Kind { field: value, ... }`. Empty slots
// render as `Empty`.
func DebugString(n Node) string {
	if n == nil {
		return "Empty"
	}
	v := reflect.ValueOf(n).Elem()
	t := v.Type()
	if t.NumField() == 0 {
		return t.Name()
	}

	var sb strings.Builder
	sb.WriteString(t.Name())
	sb.WriteString(" { ")
	for i := range t.NumField() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(t.Field(i).Name)
		sb.WriteString(": ")
		sb.WriteString(debugValue(v.Field(i)))
	}
	sb.WriteString(" }")
	return sb.String()
}

func debugValue(v reflect.Value) string {
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return "nil"
		}
		v = v.Elem()
	}
	switch x := v.Interface().(type) {
	case ident.Identifier:
		return fmt.Sprintf("%q", x.Original())
	case ident.Latin1String:
		return fmt.Sprintf("%q", x.String())
	case IndexList:
		if x.Others {
			return "others"
		}
		return fmt.Sprint(x.List)
	}
	return fmt.Sprint(v.Interface())
}

// Dump writes every arena slot, one per line, as `%6d: <debug form>`.
func (a *Ast) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i, n := range a.arena.Slice() {
		if _, err := fmt.Fprintf(bw, "%6d: %s\n", i, DebugString(n)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func (a *Ast) dumpToFile(path string) error {
	// #nosec G304 -- path is chosen by the user
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create AST dump file at %s: %w", path, err)
	}
	if err := a.Dump(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("write AST dump: %w", err)
	}
	return f.Close()
}
