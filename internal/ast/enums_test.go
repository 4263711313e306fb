package ast

import (
	"encoding/json"
	"slices"
	"strings"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
)

func TestDirection(t *testing.T) {
	var d Direction
	if err := json.Unmarshal([]byte(`"to"`), &d); err != nil || !d.IsAscending() {
		t.Errorf("to = %v, %v", d, err)
	}
	if err := json.Unmarshal([]byte(`"downto"`), &d); err != nil || d.IsAscending() {
		t.Errorf("downto = %v, %v", d, err)
	}
	if d.String() != "downto" {
		t.Errorf("String = %q", d.String())
	}
	if Direction(0).String() != "Direction(0)" {
		t.Errorf("zero String = %q", Direction(0).String())
	}
	if _, err := json.Marshal(Direction(9)); err == nil {
		t.Error("invalid direction marshalled")
	}
}

func TestModeTags(t *testing.T) {
	for _, tag := range []string{"in", "out", "inout", "buffer", "linkage"} {
		var m Mode
		if err := m.UnmarshalText([]byte(tag)); err != nil {
			t.Errorf("%s: %v", tag, err)
			continue
		}
		out, err := m.MarshalText()
		if err != nil || string(out) != tag {
			t.Errorf("%s: marshal = %q, %v", tag, out, err)
		}
	}
	var m Mode
	if err := m.UnmarshalText([]byte("InOut")); err == nil {
		t.Error("tags are case-sensitive")
	}
}

func TestOperatorTags(t *testing.T) {
	var u UnaryOperatorKind
	if err := u.UnmarshalText([]byte("??")); err != nil || u != UnaryCondition {
		t.Errorf("?? = %v, %v", u, err)
	}
	if err := u.UnmarshalText([]byte("xnor")); err != nil || u != UnaryReductionXnor {
		t.Errorf("xnor = %v, %v", u, err)
	}
	var b BinaryOperatorKind
	if err := b.UnmarshalText([]byte("**")); err != nil || b != BinaryExponentiation {
		t.Errorf("** = %v, %v", b, err)
	}
	if err := b.UnmarshalText([]byte("-")); err != nil || b != BinarySubtraction {
		t.Errorf("- = %v, %v", b, err)
	}
}

func TestAttributeKindTags(t *testing.T) {
	tests := map[string]AttributeKind{
		"base":                AttrBase,
		"leftof":              AttrLeftof,
		"last_event":          AttrLastEvent,
		"simple_name":         AttrSimpleName,
		"reverse_range_array": AttrReverseRangeArray,
	}
	for tag, want := range tests {
		var k AttributeKind
		if err := k.UnmarshalText([]byte(tag)); err != nil || k != want {
			t.Errorf("%s = %v, %v", tag, k, err)
		}
	}
}

func TestImplicitDefinition(t *testing.T) {
	var d ImplicitDefinition
	if err := d.UnmarshalText([]byte("IIR_PREDEFINED_ACCESS_EQUALITY")); err != nil {
		t.Fatal(err)
	}
	if d != PredefinedAccessEquality || d.String() != "AccessEquality" {
		t.Errorf("got %v", d)
	}
	if len(implicitDefinitionTable)-1 != 758 {
		t.Errorf("%d implicit definitions", len(implicitDefinitionTable)-1)
	}
	if len(implicitDefinitionIndex) != len(implicitDefinitionTable)-1 {
		t.Error("duplicate implicit definition tags")
	}
	out, err := json.Marshal(PredefinedWrite)
	if err != nil || string(out) != `"IIR_PREDEFINED_WRITE"` {
		t.Errorf("marshal = %s, %v", out, err)
	}
}

func TestEmptyTagRejected(t *testing.T) {
	targets := map[string]interface{ UnmarshalText([]byte) error }{
		"direction":           new(Direction),
		"mode":                new(Mode),
		"unary operator":      new(UnaryOperatorKind),
		"binary operator":     new(BinaryOperatorKind),
		"attribute kind":      new(AttributeKind),
		"implicit definition": new(ImplicitDefinition),
	}
	for name, v := range targets {
		if err := v.UnmarshalText([]byte{}); err == nil {
			t.Errorf("%s: empty tag accepted", name)
		}
	}
	if _, err := Mode(0).MarshalText(); err == nil {
		t.Error("zero mode marshalled")
	}
	if _, err := ImplicitDefinition(0).MarshalText(); err == nil {
		t.Error("zero implicit definition marshalled")
	}

	lines := []string{
		`{"interface_signal_declaration": {"identifier": "clk", "type": 14, "mode": ""}}`,
		`{"range_expression": {"direction": "", "left_limit": 16, "right_limit": 17}}`,
	}
	for _, line := range lines {
		if _, err := DecodeNode([]byte(line), nil); err == nil {
			t.Errorf("%s: decoded with an empty tag", line)
		}
	}
}

func TestEnumMsgpackOrdinal(t *testing.T) {
	type fields struct {
		Mode     Mode
		Dir      Direction
		Implicit *ImplicitDefinition
		Unset    ImplicitDefinition
	}
	implicit := PredefinedWrite
	in := fields{Mode: ModeBuffer, Dir: DirectionDownto, Implicit: &implicit}
	data, err := msgpack.Marshal(&in)
	if err != nil {
		t.Fatal(err)
	}
	var out fields
	if err := msgpack.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if out.Mode != ModeBuffer || out.Dir != DirectionDownto || out.Implicit == nil || *out.Implicit != PredefinedWrite || out.Unset != 0 {
		t.Errorf("round trip = %+v", out)
	}

	bad, err := msgpack.Marshal(uint64(len(modeTags)))
	if err != nil {
		t.Fatal(err)
	}
	var m Mode
	if err := msgpack.Unmarshal(bad, &m); err == nil {
		t.Errorf("out of range ordinal decoded as %v", m)
	}
}

func TestIndexList(t *testing.T) {
	var l IndexList
	if err := json.Unmarshal([]byte(`[3, 4]`), &l); err != nil {
		t.Fatal(err)
	}
	if items := l.Items(); len(items) != 2 || items[1] != 4 {
		t.Errorf("items = %v", items)
	}

	err := json.Unmarshal([]byte(`"all"`), &l)
	if err == nil || !strings.Contains(err.Error(), `expected "others", got 'all'`) {
		t.Errorf("err = %v", err)
	}

	if err := json.Unmarshal([]byte(`"others"`), &l); err != nil || !l.Others {
		t.Fatalf("others = %+v, %v", l, err)
	}
	out, _ := json.Marshal(l)
	if string(out) != `"others"` {
		t.Errorf("marshal = %s", out)
	}
	defer func() {
		if r := recover(); r == nil {
			t.Error("Items on others did not panic")
		}
	}()
	l.Items()
}

func TestKindCatalog(t *testing.T) {
	seen := make(map[string]Kind)
	count := 0
	for k := range Kinds() {
		count++
		if k.New().Kind() != k {
			t.Errorf("%s: New().Kind() = %s", k, k.New().Kind())
		}
		for _, tag := range append([]string{k.Tag()}, k.Aliases()...) {
			if prev, dup := seen[tag]; dup {
				t.Errorf("tag %q used by %s and %s", tag, prev, k)
			}
			seen[tag] = k
			if got, ok := KindByTag(tag); !ok || got != k {
				t.Errorf("KindByTag(%q) = %s, %v", tag, got, ok)
			}
		}
	}
	if count != 163 {
		t.Errorf("%d kinds, want 163", count)
	}
	if KindInvalid.String() != "Kind(0)" || KindInvalid.New() != nil {
		t.Error("KindInvalid is usable")
	}
	groups := KindSignalDeclaration.Groups()
	if !slices.Contains(groups, "Declaration") || !slices.Contains(groups, "NamedEntity") {
		t.Errorf("groups of SignalDeclaration = %v", groups)
	}
}
