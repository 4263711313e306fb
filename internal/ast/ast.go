package ast

import (
	"vhdlast/internal/ident"
	"vhdlast/internal/source"
)

// Ast is a loaded design: the arena, the files its identifiers point into
// and the lookup tables built from the root libraries. It is read-only once
// built and safe for concurrent readers.
type Ast struct {
	arena *Arena
	files *source.FileSet
	roots []NodeID[Library]

	libraries     map[ident.Normalized]NodeID[Library]
	packages      map[UnitKey]NodeID[PackageDeclaration]
	entities      map[UnitKey]NodeID[EntityDeclaration]
	architectures map[NodeID[EntityDeclaration]][]NodeID[ArchitectureBody]
}

// UnitKey addresses a library unit by library and normalized name.
type UnitKey struct {
	Library NodeID[Library]
	Name    ident.Normalized
}

func (a *Ast) lookup(id GenericNodeID, expected string) (Node, error) {
	if a == nil || a.arena == nil {
		return nil, &LookupError{Kind: NotFound, ID: id, Expected: expected}
	}
	n, ok := a.arena.Get(id)
	if !ok {
		return nil, &LookupError{Kind: NotFound, ID: id, Expected: expected}
	}
	return n, nil
}

// Arena exposes the node store. READONLY
func (a *Ast) Arena() *Arena { return a.arena }

// Files returns the source files listed in the stream metadata.
func (a *Ast) Files() *source.FileSet { return a.files }

// Len is the number of arena slots, the two reserved ones included.
func (a *Ast) Len() uint32 { return a.arena.Len() }

// Roots lists the root libraries in metadata order. READONLY
func (a *Ast) Roots() []NodeID[Library] { return a.roots }

// Metadata rebuilds the metadata line the Ast was loaded from.
func (a *Ast) Metadata() *Metadata {
	meta := &Metadata{Libraries: a.roots}
	for _, f := range a.files.Files() {
		meta.Files = append(meta.Files, FileMetadata{Source: f.Path, Start: f.Start, End: f.End})
	}
	return meta
}
