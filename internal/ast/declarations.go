package ast

import "vhdlast/internal/ident"

// UnitDeclaration is one unit of a physical type, valued in the primary unit.
//
// Unmodelled: identifier, visible_flag, chain, parent, type.
type UnitDeclaration struct {
	PhysicalLiteral PhysicalLiteralID `json:"physical_literal"`
}

// Unmodelled: subtype_indication, chain, deferred_declaration_flag,
// visible_flag, has_identifier_list, elaborated_flag, deferred_declaration,
// is_ref, parent, default_value.
type ConstantDeclaration struct {
	Identifier ident.Identifier    `json:"identifier"`
	Type       SubtypeDefinitionID `json:"type"`
}

// InterfaceConstantDeclaration is a generic or a constant parameter.
// Anonymous interface constants have no identifier.
//
// Unmodelled: parent, subtype_indication, is_ref, open_flag,
// has_identifier_list, chain, has_class, default_value, has_mode,
// after_drivers_flag, visible_flag, mode.
type InterfaceConstantDeclaration struct {
	Identifier *ident.Identifier   `json:"identifier"`
	Type       SubtypeDefinitionID `json:"type"`
}

// Unmodelled: parent, after_drivers_flag, chain, guarded_signal_flag,
// visible_flag, has_disconnect_flag, has_active_flag, has_identifier_list,
// default_value, subtype_indication, signal_kind, is_ref.
type SignalDeclaration struct {
	Identifier ident.Identifier    `json:"identifier"`
	Type       SubtypeDefinitionID `json:"type"`
}

// InterfaceSignalDeclaration is a port or a signal parameter.
//
// Unmodelled: after_drivers_flag, has_active_flag, chain, has_class,
// parent, subtype_indication, visible_flag, default_value, has_mode,
// has_disconnect_flag, has_identifier_list, is_ref, open_flag, signal_kind,
// guarded_signal_flag.
type InterfaceSignalDeclaration struct {
	Identifier ident.Identifier    `json:"identifier"`
	Type       SubtypeDefinitionID `json:"type"`
	Mode       Mode                `json:"mode"`
}

// VariableDeclaration also absorbs interface_variable_declaration.
//
// Unmodelled: interface_variable_declaration, has_mode, has_class,
// after_drivers_flag, has_identifier_list, parent, mode, is_ref, chain,
// visible_flag, subtype_indication, visible_flag, has_identifier_list,
// parent, subtype_indication, chain, shared_flag, is_ref.
type VariableDeclaration struct {
	Identifier   ident.Identifier    `json:"identifier"`
	Type         SubtypeDefinitionID `json:"type"`
	DefaultValue *ExpressionID       `json:"default_value"`
}

type NonObjectAliasDeclaration struct {
	Identifier ident.Identifier `json:"identifier"`
}

type Signature struct {
	TypeMarks []SubtypeDefinitionID `json:"type_marks_list"`
}

// SubprogramDeclaration is a procedure or function declaration, explicit or
// implicit. Predefined operators carry their ImplicitDefinition and no body.
//
// Unmodelled: overload_number, purity, hash, seen/visible flags.
type SubprogramDeclaration struct {
	Identifier            ident.Identifier        `json:"identifier"`
	ImplicitDefinition    *ImplicitDefinition     `json:"implicit_definition"`
	InterfaceDeclarations []DeclarationID         `json:"interface_declarations"`
	ReturnType            *SubtypeDefinitionID    `json:"return_type"`
	SubprogramBody        *NodeID[SubprogramBody] `json:"subprogram_body"`
}

// Unmodelled: procedure_body, chain, parent, impure_depth, callees_list,
// end_has_reserved_id, attribute_value_chain, suspend_flag, function_body,
// chain, impure_depth, parent, end_has_reserved_id.
type SubprogramBody struct {
	SubprogramSpecification NodeID[SubprogramDeclaration] `json:"subprogram_specification"`
	Declarations            []DeclarationID               `json:"declarations"`
	SequentialStatements    []SequentialStatementID       `json:"sequential_statements"`
}

// Unmodelled: chain, parent, visible_flag, incomplete_type_declaration.
type TypeDeclaration struct {
	Identifier     ident.Identifier `json:"identifier"`
	TypeDefinition TypeDefinitionID `json:"type_definition"`
}

// AnonymousTypeDeclaration declares the base type behind `type t is range
// ...` and similar; the named subtype is SubtypeDefinition.
//
// Unmodelled: chain, identifier, parent.
type AnonymousTypeDeclaration struct {
	TypeDefinition    AnonymousTypeDefinitionID `json:"type_definition"`
	SubtypeDefinition *SubtypeDefinitionID      `json:"subtype_definition"`
}

// Unmodelled: chain, visible_flag, type, is_ref, parent.
type SubtypeDeclaration struct {
	Identifier        ident.Identifier    `json:"identifier"`
	SubtypeIndication SubtypeDefinitionID `json:"subtype_indication"`
}

// Unmodelled: visible_flag, type_mark, type, parent, chain.
type AttributeDeclaration struct {
	Identifier ident.Identifier `json:"identifier"`
}

// Unmodelled: visible_flag, mode, has_class, is_ref, after_drivers_flag,
// subtype_indication, has_mode, has_identifier_list, chain, type, parent.
type InterfaceFileDeclaration struct {
	Identifier ident.Identifier `json:"identifier"`
}

// ComponentDeclaration is only modelled as far as its generics.
//
// Unmodelled: macro_expand_flag, ports, visible_flag, parent, identifier,
// has_is, end_has_reserved_id, chain.
type ComponentDeclaration struct {
	Generics []NodeID[ConstantDeclaration] `json:"generics"`
}

// Unmodelled: suspend_state_chain, chain, parent, suspend_state_last.
type SuspendStateDeclaration struct{}

// Unmodelled: identifier, parent, type, visible_flag, is_ref,
// has_identifier_list, subtype_indication.
type IteratorDeclaration struct{}

// Unmodelled: identifier, is_ref, element_position, subtype_indication,
// type, visible_flag, has_identifier_list, parent.
type ElementDeclaration struct{}

// Unmodelled: mode, file_logical_name, type, is_ref, has_identifier_list,
// has_mode, file_open_kind, parent, identifier, subtype_indication,
// visible_flag, chain.
type FileDeclaration struct{}

// Unmodelled: parent, identifier, after_drivers_flag, seen_flag, name,
// type, subtype_indication, is_ref, visible_flag, chain.
type ObjectAliasDeclaration struct{}

// Unmodelled: identifier, guard_sensitivity_list, guard_expression, is_ref,
// block_statement, guarded_signal_flag, signal_kind, has_active_flag,
// visible_flag, type.
type GuardSignalDeclaration struct{}

// Unmodelled: parent, attribute_implicit_chain.
type AttributeImplicitDeclaration struct{}

// Unmodelled: parent, entity_class, entity_name_list,
// static_attribute_flag, attribute_designator, expression,
// attribute_specification_chain, chain, attribute_value_spec_chain.
type AttributeSpecification struct{}

// AttributeValue is not modelled.
//
// Unmodelled: type, designated_entity, attribute_specification, spec_chain.
type AttributeValue struct{}

// Unmodelled: chain, type_mark, parent, signal_list, is_ref, expression.
type DisconnectionSpecification struct{}

// Unmodelled: all fields.
type OverloadList struct{}

// Error is the upstream's placeholder for anything that failed to analyse.
// A stream normally holds a single one at ErrorGlobalID.
//
// Unmodelled: resolved_flag, signal_type_flag, has_signal_flag,
// type_declarator.
type Error struct{}
