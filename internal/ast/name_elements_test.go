package ast

import (
	"slices"
	"strings"
	"testing"
)

var nameStream = []string{
	`{"files": [], "libraries": []}`,
	`{"error": {}}`,
	`{"simple_name": {"identifier": "r", "named_entity": 10}}`,
	`{"selected_element": {"prefix": 3, "named_entity": 11}}`,
	`{"implicit_dereference": {"prefix": 4}}`,
	`{"indexed_name": {"prefix": 5, "index_list": [7], "type": 8}}`,
	`{"integer_literal": {"value": 3}}`,
	`null`,
	`{"selected_by_all_name": {"prefix": 6}}`,
	`{"signal_declaration": {"identifier": "r", "type": 8}}`,
	`{"element_declaration": {}}`,
	`{"selected_name": {"identifier": "x", "named_entity": 10, "prefix": 12}}`,
	`{"operator_symbol": {}}`,
	`{"selected_name": {"identifier": "\"+\"", "named_entity": 10, "prefix": 13}}`,
}

func TestElements(t *testing.T) {
	a := mustLoad(t, nameStream)

	name := NameID(9).Get(a)
	elems, err := Elements(a, name)
	if err != nil {
		t.Fatalf("Elements: %v", err)
	}
	var kinds []NameElementKind
	for el := range elems.All() {
		kinds = append(kinds, el.Kind)
	}
	want := []NameElementKind{ElementNamedEntity, ElementNamedEntity, ElementOther, ElementAll}
	if !slices.Equal(kinds, want) {
		t.Errorf("kinds = %v, want %v", kinds, want)
	}
	if elems.Len() != 4 {
		t.Errorf("Len = %d", elems.Len())
	}

	var entities []NamedEntityID
	for id := range elems.NamedEntities() {
		entities = append(entities, id)
	}
	if !slices.Equal(entities, []NamedEntityID{10, 11}) {
		t.Errorf("named entities = %v", entities)
	}
}

func TestElementsOperatorSymbol(t *testing.T) {
	a := mustLoad(t, nameStream)

	elems, err := Elements(a, NameID(14).Get(a))
	if err != nil {
		t.Fatalf("Elements: %v", err)
	}
	var kinds []NameElementKind
	for el := range elems.All() {
		kinds = append(kinds, el.Kind)
	}
	if !slices.Equal(kinds, []NameElementKind{ElementOther, ElementNamedEntity}) {
		t.Errorf("kinds = %v", kinds)
	}
}

func TestElementsCycle(t *testing.T) {
	a := mustLoad(t, nameStream)

	_, err := Elements(a, NameID(12).Get(a))
	if err == nil || !strings.Contains(err.Error(), "longer than the arena") {
		t.Errorf("err = %v", err)
	}
}

func TestElementsDanglingPrefix(t *testing.T) {
	a := mustLoad(t, nameStream)

	// prefix 8 is an empty slot
	name := &SelectedByAllName{Prefix: 8}
	if _, err := Elements(a, name); err == nil {
		t.Error("Elements followed an empty prefix")
	}
}

func TestNamedEntityOf(t *testing.T) {
	a := mustLoad(t, nameStream)

	if id, ok := NamedEntityOfName(NameID(3).Get(a)); !ok || id != 10 {
		t.Errorf("simple name = %d, %v", id, ok)
	}
	if _, ok := NamedEntityOfName(NameID(6).Get(a)); ok {
		t.Error("indexed name has a named entity")
	}
	if id, ok := NamedEntityOfPrefix(PrefixID(4).Get(a)); !ok || id != 11 {
		t.Errorf("selected element = %d, %v", id, ok)
	}
	if _, ok := NamedEntityOfPrefix(PrefixID(5).Get(a)); ok {
		t.Error("implicit dereference has a named entity")
	}
	if id, ok := NamedEntityOfPrefix(PrefixID(3).Get(a)); !ok || id != 10 {
		t.Errorf("simple name prefix = %d, %v", id, ok)
	}
}
