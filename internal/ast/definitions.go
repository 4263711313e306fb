package ast

// Unmodelled: resolved_flag, is_ref, type_declarator, has_signal_flag,
// signal_type_flag.
type IntegerTypeDefinition struct{}

// Unmodelled: is_ref, has_signal_flag, signal_type_flag, type_declarator,
// resolved_flag, subtype_type_mark, parent_type, resolution_indication.
type IntegerSubtypeDefinition struct {
	RangeConstraint NodeID[RangeExpression] `json:"range_constraint"`
}

// Unmodelled: resolved_flag, has_signal_flag, is_ref, signal_type_flag,
// type_declarator.
type FloatingTypeDefinition struct{}

// Unmodelled: type_declarator, subtype_type_mark, is_ref,
// resolution_indication, resolved_flag, parent_type, has_signal_flag,
// signal_type_flag.
type FloatingSubtypeDefinition struct {
	RangeConstraint NodeID[RangeExpression] `json:"range_constraint"`
}

// EnumerationTypeDefinition lists its literals in position order.
//
// Unmodelled: has_signal_flag, range_constraint, is_ref, resolved_flag,
// signal_type_flag, is_character_type, only_characters_flag,
// type_declarator.
type EnumerationTypeDefinition struct {
	EnumerationLiterals []NodeID[EnumerationLiteral] `json:"enumeration_literal_list"`
}

// Unmodelled: has_signal_flag, type_declarator, range_constraint,
// resolution_indication, signal_type_flag, subtype_type_mark,
// resolved_flag, parent_type, is_ref.
type EnumerationSubtypeDefinition struct{}

// Unmodelled: type_declarator, signal_type_flag, resolved_flag.
type WildcardTypeDefinition struct{}

// Unmodelled: has_signal_flag, type_declarator, signal_type_flag,
// resolved_flag, is_ref, end_has_reserved_id.
type PhysicalTypeDefinition struct {
	Units []NodeID[UnitDeclaration] `json:"units"`
}

// Unmodelled: signal_type_flag, type_declarator, has_signal_flag, is_ref,
// resolved_flag, subtype_type_mark.
type PhysicalSubtypeDefinition struct {
	ParentType      NodeID[PhysicalTypeDefinition] `json:"parent_type"`
	RangeConstraint NodeID[RangeExpression]        `json:"range_constraint"`
}

// ArrayTypeDefinition is an unbounded array type; each index is an integer
// type definition.
//
// Unmodelled: index_constraint_flag, has_signal_flag, resolved_flag,
// signal_type_flag, element_subtype_indication, index_subtype_list,
// index_subtype_definition_list, constraint_state, type_declarator.
type ArrayTypeDefinition struct {
	ElementSubtype      SubtypeDefinitionID             `json:"element_subtype"`
	IndexConstraintList []NodeID[IntegerTypeDefinition] `json:"index_constraint_list"`
}

// Unmodelled: resolution_indication, parent_type, type_declarator,
// index_subtype_list, constraint_state, signal_type_flag,
// has_element_constraint_flag, subtype_type_mark, has_signal_flag,
// resolved_flag, index_constraint_flag, has_array_constraint_flag.
type ArraySubtypeDefinition struct {
	ElementSubtype      SubtypeDefinitionID   `json:"element_subtype"`
	IndexConstraintList []SubtypeDefinitionID `json:"index_constraint_list"`
}

// Unmodelled: signal_type_flag, resolved_flag, designated_type,
// type_declarator, designated_subtype_indication.
type AccessTypeDefinition struct{}

// Unmodelled: resolved_flag, signal_type_flag, type_declarator,
// parent_type, designated_subtype_indication, subtype_type_mark,
// designated_type.
type AccessSubtypeDefinition struct{}

// Unmodelled: type_declarator, incomplete_type_ref_chain, resolved_flag,
// signal_type_flag, has_signal_flag, complete_type_definition.
type IncompleteTypeDefinition struct{}

// Unmodelled: file_type_mark, text_file_flag, type_declarator,
// signal_type_flag, resolved_flag.
type FileTypeDefinition struct{}

// Unmodelled: all fields.
type FileDefinition struct{}

// RecordTypeDefinition is not modelled.
//
// Unmodelled: elements_declaration_list, resolution_indication, constraint_state.
type RecordTypeDefinition struct{}

// Unmodelled: has_signal_flag, resolved_flag, is_ref,
// resolution_indication, constraint_state, parent_type, subtype_type_mark,
// elements_declaration_list, type_declarator, signal_type_flag.
type RecordSubtypeDefinition struct{}

// Unmodelled: all fields.
type ArrayElementResolution struct{}
