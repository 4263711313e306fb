package ast

import (
	"errors"
	"slices"
	"testing"

	"vhdlast/internal/ident"
)

func TestIndexes(t *testing.T) {
	a := mustLoad(t, designStream)

	work, ok := a.LookupLibrary("work")
	if !ok || work != 3 {
		t.Fatalf("LookupLibrary(work) = %d, %v", work, ok)
	}
	if std, ok := a.LookupLibrary("std"); !ok || std != 12 {
		t.Errorf("LookupLibrary(std) = %d, %v", std, ok)
	}
	if _, ok := a.LookupLibrary("WORK"); ok {
		t.Error("lookup is not by normalized name")
	}

	entity, ok := a.LookupEntityDeclaration(work, ident.NewNormalized("TOP"))
	if !ok || entity != 6 {
		t.Fatalf("LookupEntityDeclaration = %d, %v", entity, ok)
	}
	if _, ok := a.LookupEntityDeclaration(12, "top"); ok {
		t.Error("entity found in std")
	}
	if pkg, ok := a.LookupPackageDeclaration(work, "pkg"); !ok || pkg != 11 {
		t.Errorf("LookupPackageDeclaration = %d, %v", pkg, ok)
	}

	archs := a.LookupArchitectureBodies(entity)
	if len(archs) != 1 || archs[0] != 8 {
		t.Errorf("architectures = %v", archs)
	}
	if got := a.LookupArchitectureBodies(99); len(got) != 0 {
		t.Errorf("architectures of unknown entity = %v", got)
	}

	count := 0
	for key, id := range a.PackageDeclarations() {
		count++
		if key.Library != work || key.Name != "pkg" || id != 11 {
			t.Errorf("package entry %+v -> %d", key, id)
		}
	}
	if count != 1 {
		t.Errorf("%d packages, want 1", count)
	}

	var names []ident.Normalized
	for name := range a.Libraries() {
		names = append(names, name)
	}
	if len(names) != 2 || names[0] != "work" || names[1] != "std" {
		t.Errorf("Libraries = %v", names)
	}
}

func TestSingleLibrary(t *testing.T) {
	a := mustLoad(t, designStream)

	name, id, err := a.SingleLibrary()
	if err != nil || name != "work" || id != 3 {
		t.Fatalf("SingleLibrary = %s, %d, %v", name, id, err)
	}

	if _, _, err := a.SingleLibraryExcluding("work", "std"); !errors.Is(err, ErrNoLibrary) {
		t.Errorf("all excluded: err = %v", err)
	}
	if _, _, err := a.SingleLibraryExcluding(); !errors.Is(err, ErrMultipleLibraries) {
		t.Errorf("nothing excluded: err = %v", err)
	}
	if name, _, err := a.SingleLibraryExcluding("WORK"); err != nil || name != "std" {
		t.Errorf("exclusion is not case-insensitive: %s, %v", name, err)
	}
}

func TestSingleEntityDeclaration(t *testing.T) {
	a := mustLoad(t, designStream)

	id, entity, err := a.SingleEntityDeclaration(3)
	if err != nil {
		t.Fatalf("SingleEntityDeclaration: %v", err)
	}
	if entity != 6 || id.Original() != "Top" || !id.Is("top") {
		t.Errorf("entity = %d %q", entity, id.Original())
	}

	if _, _, err := a.SingleEntityDeclaration(12); !errors.Is(err, ErrNoEntity) {
		t.Errorf("std: err = %v", err)
	}

	lines := append([]string{}, designStream...)
	lines[3] = `{"design_file": {"design_units": [5, 7, 10, 18]}}`
	lines = append(lines,
		`{"design_unit": {"library_unit": 19, "design_file": 4}}`,
		`{"entity_declaration": {"id": 19, "identifier": "other", "parent": 18}}`,
	)
	b := mustLoad(t, lines)
	if _, _, err := b.SingleEntityDeclaration(3); !errors.Is(err, ErrMultipleEntities) {
		t.Errorf("two entities: err = %v", err)
	}
	if got := err2msg(b.SingleEntityDeclaration(12)); got != "no entity found in this library" {
		t.Errorf("message = %q", got)
	}
}

func err2msg(_ ident.Identifier, _ NodeID[EntityDeclaration], err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func TestUnresolvedArchitectureIsSkipped(t *testing.T) {
	lines := append([]string{}, designStream...)
	lines[8] = `{"simple_name": {"identifier": "top"}}`
	a := mustLoad(t, lines)

	if got := a.LookupArchitectureBodies(6); len(got) != 0 {
		t.Errorf("architectures = %v", got)
	}
	if got := a.LookupArchitectureBodies(NamedEntityAs[EntityDeclaration](NamedEntityOf(ErrorGlobalID))); len(got) != 0 {
		t.Errorf("architecture filed under the error node: %v", got)
	}
}

func TestLibraryUnits(t *testing.T) {
	a := mustLoad(t, designStream)
	lib := NodeID[Library](3).Get(a)

	var kinds []Kind
	for id, unit := range lib.LibraryUnits(a) {
		if unit.Kind() != id.Get(a).Kind() {
			t.Errorf("unit %d kind mismatch", id)
		}
		kinds = append(kinds, unit.Kind())
	}
	want := []Kind{KindEntityDeclaration, KindArchitectureBody, KindPackageDeclaration}
	if len(kinds) != len(want) {
		t.Fatalf("units = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("unit %d = %s, want %s", i, kinds[i], want[i])
		}
	}

	for range lib.LibraryUnits(a) {
		break
	}
}

func TestDesignFileUnits(t *testing.T) {
	a := mustLoad(t, designStream)
	file := NodeID[DesignFile](4).Get(a)

	var ids []NodeID[DesignUnit]
	for id, unit := range file.Units(a) {
		if unit != id.Get(a) {
			t.Errorf("unit %d not resolved from the arena", id)
		}
		ids = append(ids, id)
	}
	want := []NodeID[DesignUnit]{5, 7, 10}
	if !slices.Equal(ids, want) {
		t.Errorf("units = %v, want %v", ids, want)
	}
	if !slices.Equal(file.DesignUnits, want) {
		t.Errorf("field = %v", file.DesignUnits)
	}

	n := 0
	for range file.Units(a) {
		n++
		break
	}
	if n != 1 {
		t.Errorf("early stop yielded %d", n)
	}
}
