package ast

import (
	"errors"
	"strings"
	"testing"

	"vhdlast/internal/source"
)

func TestDecodeNodeEmpty(t *testing.T) {
	for _, line := range []string{"null", `"empty"`, "  null  "} {
		n, err := DecodeNode([]byte(line), nil)
		if err != nil || n != nil {
			t.Errorf("DecodeNode(%q) = %v, %v; want empty", line, n, err)
		}
	}
}

func TestDecodeNodeAliases(t *testing.T) {
	tests := []struct {
		line string
		want Kind
	}{
		{`{"procedure_declaration": {"identifier": "p"}}`, KindSubprogramDeclaration},
		{`{"function_declaration": {"identifier": "f"}}`, KindSubprogramDeclaration},
		{`{"function_body": {"subprogram_specification": 3}}`, KindSubprogramBody},
		{`{"function_call": {"prefix": 3, "implementation": 4}}`, KindSubprogramCall},
		{`{"interface_variable_declaration": {"identifier": "v", "type": 3}}`, KindVariableDeclaration},
		{`{"string_literal8": {"string8_id": "abc"}}`, KindStringLiteral},
		{`{"library_declaration": {"identifier": "work"}}`, KindLibrary},
		{`{"null_statement": {"label": "x", "chain": 9}}`, KindNullStatement},
	}
	for _, tt := range tests {
		n, err := DecodeNode([]byte(tt.line), nil)
		if err != nil {
			t.Errorf("DecodeNode(%s): %v", tt.line, err)
			continue
		}
		if n.Kind() != tt.want {
			t.Errorf("DecodeNode(%s) kind = %s, want %s", tt.line, n.Kind(), tt.want)
		}
	}
}

func TestDecodeNodeErrors(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{`{"no_such_node": {}}`, `unknown node tag "no_such_node"`},
		{`{"simple_name": {}, "error": {}}`, "expected exactly one node tag, got 2"},
		{`{}`, "expected exactly one node tag, got 0"},
		{`[1, 2]`, "cannot unmarshal"},
		{`{"range_expression": {"direction": "up"}}`, `unknown direction "up"`},
		{`{"interface_signal_declaration": {"mode": "inout2"}}`, `unknown mode "inout2"`},
		{`{"binary_operator": {"kind": "xx"}}`, `unknown binary operator "xx"`},
		{`{"attribute": {"kind": "length"}}`, `unknown attribute kind "length"`},
		{`{"simple_name": {"named_entity": 0}}`, "non-zero"},
		{`{"subprogram_declaration": {"implicit_definition": "IIR_PREDEFINED_NOPE"}}`, "unknown node tag"},
		{`{"procedure_declaration": {"implicit_definition": "IIR_PREDEFINED_NOPE"}}`, "unknown implicit definition"},
		{`{"signal_declaration": {}}`, `signal_declaration: missing field "identifier"`},
		{`{"signal_declaration": {"identifier": "s"}}`, `missing field "type"`},
		{`{"range_expression": {"left_limit": 3, "right_limit": 4}}`, `missing field "direction"`},
		{`{"binary_operator": {"kind": "+", "left": 3, "right": 4}}`, `missing field "implementation"`},
		{`{"entity_declaration": {"id": 6, "identifier": "top"}}`, `missing field "parent"`},
	}
	for _, tt := range tests {
		_, err := DecodeNode([]byte(tt.line), nil)
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("DecodeNode(%s) error = %v, want containing %q", tt.line, err, tt.want)
		}
	}
}

func TestDecodeSimpleNameDefaultsToErrorNode(t *testing.T) {
	n, err := DecodeNode([]byte(`{"simple_name": {"identifier": "x"}}`), nil)
	if err != nil {
		t.Fatal(err)
	}
	name := n.(*SimpleName)
	if name.NamedEntity.Generic() != ErrorGlobalID.Generic() {
		t.Errorf("named entity = %d, want %d", name.NamedEntity, ErrorGlobalID)
	}
}

func TestDecodeFields(t *testing.T) {
	n, err := DecodeNode([]byte(`{"function_declaration": {"identifier": "\"and\"", "implicit_definition": "IIR_PREDEFINED_BOOLEAN_AND", "interface_declarations": [5, 6], "return_type": 7, "overload_number": 3}}`), nil)
	if err != nil {
		t.Fatal(err)
	}
	decl := n.(*SubprogramDeclaration)
	if decl.ImplicitDefinition == nil || decl.ImplicitDefinition.Tag() != "IIR_PREDEFINED_BOOLEAN_AND" {
		t.Errorf("implicit definition = %v", decl.ImplicitDefinition)
	}
	if len(decl.InterfaceDeclarations) != 2 || decl.InterfaceDeclarations[1] != 6 {
		t.Errorf("interface declarations = %v", decl.InterfaceDeclarations)
	}
	if decl.ReturnType == nil || *decl.ReturnType != 7 {
		t.Errorf("return type = %v", decl.ReturnType)
	}
	if decl.SubprogramBody != nil {
		t.Errorf("body = %v, want nil", *decl.SubprogramBody)
	}

	n, err = DecodeNode([]byte(`{"indexed_name": {"prefix": 3, "index_list": "others", "type": 4}}`), nil)
	if err != nil {
		t.Fatal(err)
	}
	if !n.(*IndexedName).IndexList.Others {
		t.Error("index list is not others")
	}

	n, err = DecodeNode([]byte(`{"binary_operator": {"kind": "?<=", "left": 3, "right": 4, "implementation": 5}}`), nil)
	if err != nil {
		t.Fatal(err)
	}
	if op := n.(*BinaryOperator).Op; op != BinaryMatchLessThanOrEqual {
		t.Errorf("op = %s", op)
	}

	n, err = DecodeNode([]byte(`{"string_literal8": {"string8_id": "café"}}`), nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := n.(*StringLiteral).Value; len(got) != 4 || got[3] != 0xe9 {
		t.Errorf("string literal bytes = %v", []byte(got))
	}
}

func TestDecodeRestoresIdentifiers(t *testing.T) {
	files := source.NewFileSet()
	files.Add(source.OriginFile, "top.vhd", []byte("entity TOP is\n  port (Clk : in bit);\n"))

	n, err := DecodeNode([]byte(`{"entity_declaration": {"id": 6, "identifier": ["top", null, [0, 1, 8]], "parent": 5}}`), files)
	if err != nil {
		t.Fatal(err)
	}
	if got := n.(*EntityDeclaration).Identifier.Original(); got != "TOP" {
		t.Errorf("entity original = %q, want TOP", got)
	}

	n, err = DecodeNode([]byte(`{"interface_constant_declaration": {"identifier": ["clk", null, [0, 2, 9]], "type": 3}}`), files)
	if err != nil {
		t.Fatal(err)
	}
	if got := n.(*InterfaceConstantDeclaration).Identifier.Original(); got != "Clk" {
		t.Errorf("pointer identifier original = %q, want Clk", got)
	}

	n, err = DecodeNode([]byte(`{"interface_constant_declaration": {"type": 3}}`), files)
	if err != nil {
		t.Fatal(err)
	}
	if n.(*InterfaceConstantDeclaration).Identifier != nil {
		t.Error("anonymous interface constant got an identifier")
	}
}

func TestTryFromNodeError(t *testing.T) {
	_, err := ToExpression(new(Library))
	var terr *TryFromNodeError
	if !errors.As(err, &terr) {
		t.Fatalf("err = %v", err)
	}
	if got, want := err.Error(), "node is of type Library; expected Expression"; got != want {
		t.Errorf("message = %q, want %q", got, want)
	}
	if _, err := ToName(nil); err == nil || !strings.Contains(err.Error(), "<empty>") {
		t.Errorf("ToName(nil) = %v", err)
	}
}
