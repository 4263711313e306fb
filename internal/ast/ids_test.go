package ast

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestTryGetFound(t *testing.T) {
	a := mustLoad(t, designStream)

	lib, err := NodeID[Library](3).TryGet(a)
	if err != nil {
		t.Fatalf("TryGet: %v", err)
	}
	if !lib.Identifier.Is("work") {
		t.Errorf("library = %s, want work", lib.Identifier)
	}
	for i, n := range a.Arena().Slice() {
		if n == nil {
			continue
		}
		got, err := GenericNodeID(i).TryGet(a) // #nosec G115
		if err != nil {
			t.Fatalf("slot %d: %v", i, err)
		}
		if got.Kind() != n.Kind() {
			t.Errorf("slot %d: kind %s, want %s", i, got.Kind(), n.Kind())
		}
	}
}

func TestTryGetNotFound(t *testing.T) {
	a := mustLoad(t, designStream)

	for _, id := range []uint32{0, 1, 1000} {
		_, err := NodeID[Library](id).TryGet(a)
		var lerr *LookupError
		if !errors.As(err, &lerr) {
			t.Fatalf("id %d: err = %v, want *LookupError", id, err)
		}
		if lerr.Kind != NotFound || uint32(lerr.ID) != id {
			t.Errorf("id %d: got %+v", id, lerr)
		}
		if !errors.Is(err, ErrNotFound) || errors.Is(err, ErrWrongType) {
			t.Errorf("id %d: errors.Is mismatch for %v", id, err)
		}
	}

	_, err := Default[EntityDeclaration]().TryGet(a)
	if got, want := err.Error(), "node #1 not found in AST; expected EntityDeclaration"; got != want {
		t.Errorf("message = %q, want %q", got, want)
	}
}

func TestTryGetWrongType(t *testing.T) {
	a := mustLoad(t, designStream)

	_, err := NodeID[EntityDeclaration](3).TryGet(a)
	if !errors.Is(err, ErrWrongType) {
		t.Fatalf("err = %v, want wrong type", err)
	}
	if got, want := err.Error(), "node #3 is of type Library; expected EntityDeclaration"; got != want {
		t.Errorf("message = %q, want %q", got, want)
	}

	_, err = ExpressionID(3).TryGet(a)
	if got, want := err.Error(), "node #3 is of type Library; expected Expression"; got != want {
		t.Errorf("subset message = %q, want %q", got, want)
	}
}

func TestSubsetTryGet(t *testing.T) {
	a := mustLoad(t, designStream)

	expr, err := ExpressionID(16).TryGet(a)
	if err != nil {
		t.Fatalf("TryGet: %v", err)
	}
	lit, ok := expr.(*IntegerLiteral)
	if !ok || lit.Value != 7 {
		t.Fatalf("expression = %#v", expr)
	}

	entity, err := NamedEntityID(6).TryGet(a)
	if err != nil {
		t.Fatalf("NamedEntity TryGet: %v", err)
	}
	if _, ok := entity.(*EntityDeclaration); !ok {
		t.Errorf("named entity = %T", entity)
	}
	if _, err := LibraryUnitID(6).TryGet(a); err != nil {
		t.Errorf("LibraryUnit view of the same slot: %v", err)
	}
}

func TestGetPanics(t *testing.T) {
	a := mustLoad(t, designStream)
	defer func() {
		if recover() == nil {
			t.Fatal("Get on an empty slot did not panic")
		}
	}()
	_ = NodeID[Library](1).Get(a)
}

func TestDowncastKeepsValue(t *testing.T) {
	id := NodeID[EntityDeclaration](6)
	unit := LibraryUnitOf(id)
	if got := Downcast[EntityDeclaration](unit); got != id {
		t.Errorf("Downcast = %d, want %d", got, id)
	}
	if got := LibraryUnitAs[EntityDeclaration](unit); got != id {
		t.Errorf("LibraryUnitAs = %d, want %d", got, id)
	}
	if id.Generic() != unit.Generic() {
		t.Errorf("erased forms differ: %d vs %d", id.Generic(), unit.Generic())
	}
	if Default[Library]().Generic() != DefaultNodeID {
		t.Errorf("Default = %d, want %d", Default[Library](), DefaultNodeID)
	}
}

func TestNodeIDFormatting(t *testing.T) {
	id := NodeID[SimpleName](42)
	if got := id.String(); got != "42" {
		t.Errorf("String = %q", got)
	}
	if got := id.GoString(); got != "NodeID<SimpleName>(42)" {
		t.Errorf("GoString = %q", got)
	}
	if got := ExpressionID(5).GoString(); got != "ExpressionID(5)" {
		t.Errorf("subset GoString = %q", got)
	}
}

func TestNodeIDUnmarshal(t *testing.T) {
	var id NodeID[Library]
	if err := json.Unmarshal([]byte("17"), &id); err != nil || id != 17 {
		t.Fatalf("Unmarshal 17 = %d, %v", id, err)
	}
	if err := json.Unmarshal([]byte("0"), &id); err == nil {
		t.Error("Unmarshal 0 succeeded")
	}
	var sub NameID
	if err := json.Unmarshal([]byte("0"), &sub); err == nil {
		t.Error("subset Unmarshal 0 succeeded")
	}
	if err := json.Unmarshal([]byte(`"x"`), &sub); err == nil {
		t.Error("subset Unmarshal of a string succeeded")
	}
}
