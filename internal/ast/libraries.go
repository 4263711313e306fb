package ast

import (
	"iter"

	"vhdlast/internal/ident"
)

// Library is a root of the design hierarchy.
//
// Unmodelled: vendor_library_flag, visible_flag, library_directory,
// elab_flag, chain.
type Library struct {
	Identifier  ident.Identifier     `json:"identifier"`
	DesignFiles []NodeID[DesignFile] `json:"design_files"`
}

// LibraryUnits walks every design file of the library and yields the
// library unit of each design unit. It panics on a dangling handle.
func (l *Library) LibraryUnits(a *Ast) iter.Seq2[LibraryUnitID, LibraryUnit] {
	return func(yield func(LibraryUnitID, LibraryUnit) bool) {
		for _, fileID := range l.DesignFiles {
			for _, unit := range fileID.Get(a).Units(a) {
				if !yield(unit.LibraryUnit, unit.LibraryUnit.Get(a)) {
					return
				}
			}
		}
	}
}

// DesignFile groups the design units analysed from one source file.
//
// Unmodelled: design_file_directory, design_file_filename, last_design_unit.
type DesignFile struct {
	DesignUnits []NodeID[DesignUnit] `json:"design_units"`
}

// Units yields the design units of the file in order.
func (f *DesignFile) Units(a *Ast) iter.Seq2[NodeID[DesignUnit], *DesignUnit] {
	return func(yield func(NodeID[DesignUnit], *DesignUnit) bool) {
		for _, id := range f.DesignUnits {
			if !yield(id, id.Get(a)) {
				return
			}
		}
	}
}

// DesignUnit wraps one library unit with its context clause.
//
// Unmodelled: source line/column, dependence_list, elaboration flags.
type DesignUnit struct {
	LibraryUnit  LibraryUnitID      `json:"library_unit"`
	DesignFile   NodeID[DesignFile] `json:"design_file"`
	ContextItems []ContextItemID    `json:"context_items"`
}

// Unmodelled: end_has_reserved_id, is_within_flag, entity_name,
// block_configuration, visible_flag.
type ConfigurationDeclaration struct {
	Identifier ident.Identifier   `json:"identifier"`
	DesignUnit NodeID[DesignUnit] `json:"parent"`
}

type ContextDeclaration struct {
	Identifier ident.Identifier   `json:"identifier"`
	DesignUnit NodeID[DesignUnit] `json:"parent"`
}

// EntityDeclaration carries its own handle so index tables can key on it.
//
// Unmodelled: visible_flag, is_within_flag, concurrent_statements,
// has_begin, macro_expand_flag, end_has_reserved_id, attribute_value_chain.
type EntityDeclaration struct {
	ID           NodeID[EntityDeclaration]              `json:"id"`
	Identifier   ident.Identifier                       `json:"identifier"`
	DesignUnit   NodeID[DesignUnit]                     `json:"parent"`
	Generics     []NodeID[InterfaceConstantDeclaration] `json:"generics"`
	Ports        []NodeID[InterfaceSignalDeclaration]   `json:"ports"`
	Declarations []DeclarationID                        `json:"declarations"`
}

// Unmodelled: macro_expand_flag, end_has_reserved_id, visible_flag,
// attribute_value_chain, need_instance_bodies, need_body, is_within_flag,
// package_body.
type PackageDeclaration struct {
	ID           NodeID[PackageDeclaration] `json:"id"`
	Identifier   ident.Identifier           `json:"identifier"`
	Declarations []DeclarationID            `json:"declarations"`
	DesignUnit   NodeID[DesignUnit]         `json:"parent"`
}

type PackageInstantiationDeclaration struct {
	Identifier ident.Identifier   `json:"identifier"`
	DesignUnit NodeID[DesignUnit] `json:"parent"`
}

// ArchitectureBody names its entity through a simple name; the entity is
// that name's named entity.
//
// Unmodelled: is_within_flag, foreign_flag, end_has_reserved_id,
// visible_flag, attribute_value_chain, macro_expand_flag.
type ArchitectureBody struct {
	Identifier           ident.Identifier        `json:"identifier"`
	EntityName           NodeID[SimpleName]      `json:"entity_name"`
	DesignUnit           NodeID[DesignUnit]      `json:"parent"`
	Declarations         []DeclarationID         `json:"declarations"`
	ConcurrentStatements []ConcurrentStatementID `json:"concurrent_statements"`
}

// Unmodelled: declarations, end_has_reserved_id, attribute_value_chain,
// package.
type PackageBody struct {
	Identifier ident.Identifier   `json:"identifier"`
	DesignUnit NodeID[DesignUnit] `json:"parent"`
}

// Unmodelled: chain, library_declaration, parent, has_identifier_list.
type LibraryClause struct {
	Identifier ident.Identifier `json:"identifier"`
}

// Unmodelled: parent, use_clause_chain, chain.
type UseClause struct {
	SelectedName AnySelectedNameID `json:"selected_name"`
}

// Unmodelled: all fields.
type PackageHeader struct{}

// Unmodelled: all fields.
type InterfacePackageDeclaration struct{}

// EntityAspectEntity is `entity lib.name(arch)` in a binding or an
// instantiation.
type EntityAspectEntity struct {
	EntityName   NodeID[SelectedName] `json:"entity_name"`
	Architecture *NodeID[SimpleName]  `json:"architecture"`
}

// Unmodelled: configuration_name.
type EntityAspectConfiguration struct{}

// Unmodelled: all fields.
type EntityAspectOpen struct{}

// Unmodelled: port_map_aspects, entity_aspect, generic_map_aspects.
type BindingIndication struct{}

// Unmodelled: configuration_items, block_specification, parent, chain,
// declarations, prev_block_configuration.
type BlockConfiguration struct{}

// Unmodelled: is_ref, chain, binding_indication, parent, has_end,
// block_configuration, instantiation_list, component_name.
type ComponentConfiguration struct{}

// Unmodelled: binding_indication, has_end, parent, is_ref, chain,
// instantiation_list, component_name.
type ConfigurationSpecification struct{}
