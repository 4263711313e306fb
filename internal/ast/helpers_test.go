package ast

import (
	"context"
	"strings"
	"testing"
)

// designStream is a small design: library work with entity top, its
// architecture rtl and package pkg, plus an empty std library.
var designStream = []string{
	`{"files": [], "libraries": [3, 12]}`,
	`{"error": {}}`,
	`{"library_declaration": {"identifier": "work", "design_files": [4]}}`,
	`{"design_file": {"design_units": [5, 7, 10]}}`,
	`{"design_unit": {"library_unit": 6, "design_file": 4, "context_items": []}}`,
	`{"entity_declaration": {"id": 6, "identifier": ["top", "Top"], "parent": 5, "ports": [13]}}`,
	`{"design_unit": {"library_unit": 8, "design_file": 4}}`,
	`{"architecture_body": {"identifier": "rtl", "entity_name": 9, "parent": 7}}`,
	`{"simple_name": {"identifier": "top", "named_entity": 6}}`,
	`{"design_unit": {"library_unit": 11, "design_file": 4}}`,
	`{"package_declaration": {"id": 11, "identifier": "pkg", "parent": 10, "elab_flag": true}}`,
	`{"library_declaration": {"identifier": "std"}}`,
	`{"interface_signal_declaration": {"identifier": "clk", "type": 14, "mode": "in"}}`,
	`{"integer_subtype_definition": {"range_constraint": 15}}`,
	`{"range_expression": {"direction": "downto", "left_limit": 16, "right_limit": 17}}`,
	`{"integer_literal": {"value": 7}}`,
	`{"integer_literal": {"value": 0}}`,
}

func joinLines(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func mustLoad(t *testing.T, lines []string, opts ...Option) *Ast {
	t.Helper()
	opts = append([]Option{WithDumpPath("")}, opts...)
	a, err := FromJSON(context.Background(), strings.NewReader(joinLines(lines...)), opts...)
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	return a
}
