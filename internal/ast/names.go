package ast

import "vhdlast/internal/ident"

// AttributeName is `prefix'attr`.
//
// Unmodelled: type, identifier, base_name.
type AttributeName struct {
	Prefix      PrefixID      `json:"prefix"`
	NamedEntity NamedEntityID `json:"named_entity"`
}

// Dereference is an explicit `.all`.
//
// Unmodelled: type, base_name.
type Dereference struct {
	Prefix PrefixID `json:"prefix"`
}

// ImplicitDereference is inserted when an access value is indexed or
// selected without `.all`.
//
// Unmodelled: base_name, type.
type ImplicitDereference struct {
	Prefix PrefixID `json:"prefix"`
}

// Unmodelled: base_name.
type IndexedName struct {
	Prefix    PrefixID            `json:"prefix"`
	IndexList IndexList           `json:"index_list"`
	Type      SubtypeDefinitionID `json:"type"`
}

// Unmodelled: base_name, identifier, named_entity, type.
type OperatorSymbol struct{}

// Unmodelled: referenced_name, named_entity.
type ReferenceName struct{}

// SelectedElement is a record element selection.
//
// Unmodelled: base_name, type, identifier.
type SelectedElement struct {
	Prefix      PrefixID      `json:"prefix"`
	NamedEntity NamedEntityID `json:"named_entity"`
}

type SelectedByAllName struct {
	Prefix PrefixID `json:"prefix"`
}

// Unmodelled: type, base_name.
type SelectedName struct {
	Identifier  ident.Identifier `json:"identifier"`
	NamedEntity NamedEntityID    `json:"named_entity"`
	Prefix      PrefixID         `json:"prefix"`
}

// SimpleName is an identifier resolved to its named entity. The named
// entity is ErrorGlobalID when the stream leaves it out.
//
// Unmodelled: base_name, type.
type SimpleName struct {
	Identifier  ident.Identifier `json:"identifier"`
	NamedEntity NamedEntityID    `json:"named_entity"`
}

func (n *SimpleName) setDefaults() {
	n.NamedEntity = NamedEntityOf(ErrorGlobalID)
}

// Unmodelled: slice_subtype, type, base_name.
type SliceName struct {
	Prefix PrefixID          `json:"prefix"`
	Suffix RangeConstraintID `json:"suffix"`
}
