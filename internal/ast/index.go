package ast

import (
	"context"
	"fmt"
	"iter"
	"maps"

	"vhdlast/internal/ident"
	"vhdlast/internal/trace"
)

// DefaultExcludedLibraries are skipped by SingleLibrary.
var DefaultExcludedLibraries = []string{"std", "ieee"}

// buildIndexes walks root libraries, their design files and design units.
// Packages and entities are filed by (library, name); architectures by the
// entity their entity name resolves to. Other library units are reachable
// through Library.LibraryUnits only.
func (a *Ast) buildIndexes(ctx context.Context) error {
	tracer := trace.FromContext(ctx)
	parent := trace.CurrentSpan(ctx)
	span := trace.Begin(tracer, trace.ScopePass, "index", parent)

	a.libraries = make(map[ident.Normalized]NodeID[Library], len(a.roots))
	a.packages = make(map[UnitKey]NodeID[PackageDeclaration])
	a.entities = make(map[UnitKey]NodeID[EntityDeclaration])
	a.architectures = make(map[NodeID[EntityDeclaration]][]NodeID[ArchitectureBody])

	for _, libraryID := range a.roots {
		library, err := libraryID.TryGet(a)
		if err != nil {
			span.End("error")
			return fmt.Errorf("root library: %w", err)
		}
		libSpan := trace.Begin(tracer, trace.ScopeLibrary, "library:"+library.Identifier.String(), span.ID())
		a.libraries[library.Identifier.Normalized()] = libraryID

		units, err := a.indexLibrary(tracer, libraryID, library)
		if err != nil {
			libSpan.End("error")
			span.End("error")
			return fmt.Errorf("library %s: %w", library.Identifier, err)
		}
		libSpan.WithExtra("units", fmt.Sprint(units)).End("")
	}

	span.WithExtra("libraries", fmt.Sprint(len(a.libraries))).
		WithExtra("packages", fmt.Sprint(len(a.packages))).
		WithExtra("entities", fmt.Sprint(len(a.entities))).
		End("")
	return nil
}

func (a *Ast) indexLibrary(tracer trace.Tracer, libraryID NodeID[Library], library *Library) (int, error) {
	units := 0
	for _, fileID := range library.DesignFiles {
		file, err := fileID.TryGet(a)
		if err != nil {
			return units, err
		}
		for _, unitID := range file.DesignUnits {
			unit, err := unitID.TryGet(a)
			if err != nil {
				return units, err
			}
			libraryUnit, err := unit.LibraryUnit.TryGet(a)
			if err != nil {
				return units, err
			}
			units++

			switch u := libraryUnit.(type) {
			case *PackageDeclaration:
				key := UnitKey{Library: libraryID, Name: u.Identifier.Normalized()}
				a.packages[key] = LibraryUnitAs[PackageDeclaration](unit.LibraryUnit)
			case *EntityDeclaration:
				key := UnitKey{Library: libraryID, Name: u.Identifier.Normalized()}
				a.entities[key] = LibraryUnitAs[EntityDeclaration](unit.LibraryUnit)
			case *ArchitectureBody:
				entityName, err := u.EntityName.TryGet(a)
				if err != nil {
					return units, fmt.Errorf("architecture %s: %w", u.Identifier, err)
				}
				entityID := NamedEntityAs[EntityDeclaration](entityName.NamedEntity)
				if _, err := entityID.TryGet(a); err != nil {
					// неразрешённая сущность: архитектура не попадает в индекс
					trace.Warn(tracer, "architecture", fmt.Sprintf("architecture %s of %s: %v", u.Identifier, entityName.Identifier, err))
					continue
				}
				a.architectures[entityID] = append(a.architectures[entityID], LibraryUnitAs[ArchitectureBody](unit.LibraryUnit))
			}
		}
	}
	return units, nil
}

// LookupLibrary finds a root library by normalized name.
func (a *Ast) LookupLibrary(name ident.Normalized) (NodeID[Library], bool) {
	id, ok := a.libraries[name]
	return id, ok
}

// Libraries yields root libraries in metadata order.
func (a *Ast) Libraries() iter.Seq2[ident.Normalized, NodeID[Library]] {
	return func(yield func(ident.Normalized, NodeID[Library]) bool) {
		for _, id := range a.roots {
			library, err := id.TryGet(a)
			if err != nil {
				continue
			}
			if !yield(library.Identifier.Normalized(), id) {
				return
			}
		}
	}
}

// SingleLibrary returns the only library besides std and ieee.
func (a *Ast) SingleLibrary() (ident.Normalized, NodeID[Library], error) {
	return a.SingleLibraryExcluding(DefaultExcludedLibraries...)
}

// SingleLibraryExcluding returns the only library whose name is not in
// excluded. It fails with ErrNoLibrary or ErrMultipleLibraries.
func (a *Ast) SingleLibraryExcluding(excluded ...string) (ident.Normalized, NodeID[Library], error) {
	skip := make(map[ident.Normalized]struct{}, len(excluded))
	for _, name := range excluded {
		skip[ident.NewNormalized(name)] = struct{}{}
	}

	var (
		found     bool
		foundName ident.Normalized
		foundID   NodeID[Library]
	)
	for name, id := range a.libraries {
		if _, ok := skip[name]; ok {
			continue
		}
		if found {
			return "", 0, ErrMultipleLibraries
		}
		found, foundName, foundID = true, name, id
	}
	if !found {
		return "", 0, ErrNoLibrary
	}
	return foundName, foundID, nil
}

func (a *Ast) LookupPackageDeclaration(library NodeID[Library], name ident.Normalized) (NodeID[PackageDeclaration], bool) {
	id, ok := a.packages[UnitKey{Library: library, Name: name}]
	return id, ok
}

// PackageDeclarations yields every indexed package, in no particular order.
func (a *Ast) PackageDeclarations() iter.Seq2[UnitKey, NodeID[PackageDeclaration]] {
	return maps.All(a.packages)
}

func (a *Ast) LookupEntityDeclaration(library NodeID[Library], name ident.Normalized) (NodeID[EntityDeclaration], bool) {
	id, ok := a.entities[UnitKey{Library: library, Name: name}]
	return id, ok
}

// EntityDeclarations yields every indexed entity, in no particular order.
func (a *Ast) EntityDeclarations() iter.Seq2[UnitKey, NodeID[EntityDeclaration]] {
	return maps.All(a.entities)
}

// SingleEntityDeclaration returns the only entity of library. It fails
// with ErrNoEntity or ErrMultipleEntities.
func (a *Ast) SingleEntityDeclaration(library NodeID[Library]) (ident.Identifier, NodeID[EntityDeclaration], error) {
	var (
		found    bool
		entityID NodeID[EntityDeclaration]
	)
	for key, id := range a.entities {
		if key.Library != library {
			continue
		}
		if found {
			return ident.Identifier{}, 0, ErrMultipleEntities
		}
		found, entityID = true, id
	}
	if !found {
		return ident.Identifier{}, 0, ErrNoEntity
	}
	entity, err := entityID.TryGet(a)
	if err != nil {
		return ident.Identifier{}, 0, err
	}
	return entity.Identifier, entityID, nil
}

// LookupArchitectureBodies lists the architectures of entity in stream
// order. READONLY
func (a *Ast) LookupArchitectureBodies(entity NodeID[EntityDeclaration]) []NodeID[ArchitectureBody] {
	return a.architectures[entity]
}
