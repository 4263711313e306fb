package ast

import "vhdlast/internal/ident"

// ProcessStatement is a process with an explicit wait. Label is nil for
// unlabelled processes.
//
// Unmodelled: has_is, callees_list, end_has_postponed, visible_flag,
// parent, passive_flag, wait_state, end_has_reserved_id, is_within_flag,
// suspend_flag, chain, postponed_flag, stop_flag, process_origin,
// seen_flag.
type ProcessStatement struct {
	Label                *ident.Identifier       `json:"label"`
	Declarations         []DeclarationID         `json:"declarations"`
	SequentialStatements []SequentialStatementID `json:"sequential_statements"`
}

// SensitizedProcessStatement is only modelled as far as its declarations.
//
// Unmodelled: sensitivity_list, sequential_statements, label.
type SensitizedProcessStatement struct {
	Declarations []DeclarationID `json:"declarations"`
}

// ComponentInstantiationStatement instantiates an entity or a component.
//
// Unmodelled: parent, component_configuration, configuration_specification,
// chain, visible_flag, has_component.
type ComponentInstantiationStatement struct {
	Label             ident.Identifier       `json:"label"`
	InstantiatedUnit  InstantiatedUnitID     `json:"instantiated_unit"`
	GenericMapAspects []AssociationElementID `json:"generic_map_aspects"`
	PortMapAspects    []AssociationElementID `json:"port_map_aspects"`
}

// Unmodelled: suspend_flag, covered_flag, parent, label, visible_flag,
// chain.
type ProcedureCallStatement struct {
	ProcedureCall NodeID[SubprogramCall] `json:"procedure_call"`
}

// Unmodelled: visible_flag, label, chain, parent, covered_flag.
type ReportStatement struct {
	ReportExpression ExpressionID `json:"report_expression"`
}

// Unmodelled: label, parent, type, covered_flag, visible_flag, chain.
type ReturnStatement struct {
	Expression *ExpressionID `json:"expression"`
}

// Unmodelled: is_ref, covered_flag, guarded_target_state,
// has_delay_mechanism, chain, visible_flag, parent, delay_mechanism, label.
type SimpleSignalAssignmentStatement struct {
	Target    ExpressionID              `json:"target"`
	Waveforms []NodeID[WaveformElement] `json:"waveforms"`
}

// Unmodelled: is_ref, parent, chain, visible_flag, label, covered_flag.
type VariableAssignmentStatement struct {
	Target     ExpressionID `json:"target"`
	Expression ExpressionID `json:"expression"`
}

// WaitStatement is `wait on ... for ...`. Conditions are not modelled.
//
// Unmodelled: chain, covered_flag, parent, is_ref, visible_flag,
// condition_clause, label.
type WaitStatement struct {
	SensitivityList []ExpressionID `json:"sensitivity_list"`
	TimeoutClause   *ExpressionID  `json:"timeout_clause"`
}

// WaveformElement is `value after delay`; Delay is nil without `after`.
//
// Unmodelled: chain.
type WaveformElement struct {
	Value ExpressionID  `json:"we_value"`
	Delay *ExpressionID `json:"time"`
}

// AssociationElementByExpression associates an actual expression with an
// optional formal.
//
// Unmodelled: whole_association_flag, collapse_signal_flag, chain,
// in_formal_flag, formal_conversion, actual_conversion.
type AssociationElementByExpression struct {
	Formal   *NameID      `json:"formal"`
	Actual   ExpressionID `json:"actual"`
	Inertial bool         `json:"inertial_flag"`
}

// AssociationElementByName wraps the actual or the formal in a conversion
// function.
//
// Unmodelled: collapse_signal_flag, whole_association_flag, chain,
// in_formal_flag.
type AssociationElementByName struct {
	Formal           *NameID                 `json:"formal"`
	FormalConversion *NodeID[SubprogramCall] `json:"formal_conversion"`
	Actual           ExpressionID            `json:"actual"`
	ActualConversion *NodeID[SubprogramCall] `json:"actual_conversion"`
}

// Unmodelled: collapse_signal_flag, artificial_flag, chain, in_formal_flag,
// whole_association_flag.
type AssociationElementOpen struct {
	Formal *NameID `json:"formal"`
}

// AssociationElementByIndividual heads a group of associations to the
// subelements of one formal.
//
// Unmodelled: choice_staticness, in_formal_flag, whole_association_flag,
// collapse_signal_flag, chain.
type AssociationElementByIndividual struct {
	Formal     *NodeID[SimpleName] `json:"formal"`
	ActualType SubtypeDefinitionID `json:"actual_type"`
}

// Unmodelled: all fields.
type AssociationElementPackage struct{}

// Unmodelled: suspend_state_decl, covered_flag, suspend_state_index,
// parent, suspend_state_chain, chain.
type SuspendStateStatement struct{}

// IfStatement is not modelled.
//
// Unmodelled: condition, sequential_statements, else_clause.
type IfStatement struct{}

// Unmodelled: condition, sequential_statements, is_ref, else_clause,
// covered_flag.
type Elsif struct{}

// Unmodelled: covered_flag, case_statement_alternatives, expression, label,
// chain, matching_flag, visible_flag, parent, suspend_flag.
type CaseStatement struct{}

// Unmodelled: covered_flag, report_expression, label, parent, chain,
// assertion_condition, visible_flag, severity_expression.
type AssertionStatement struct{}

// Unmodelled: chain, parent, label, condition, loop_label, covered_flag,
// visible_flag, is_ref.
type ExitStatement struct{}

// Unmodelled: covered_flag, parent, visible_flag, condition, label, is_ref,
// loop_label, chain.
type NextStatement struct{}

// Unmodelled: covered_flag, visible_flag, parent, label, chain.
type NullStatement struct{}

// Unmodelled: sequential_statements, exit_flag, next_flag, label,
// is_within_flag, parameter_specification, parent, suspend_flag,
// covered_flag, visible_flag, chain.
type ForLoopStatement struct{}

// Unmodelled: sequential_statements, chain, label, suspend_flag,
// visible_flag, condition, parent, covered_flag, is_ref, exit_flag,
// next_flag.
type WhileLoopStatement struct{}

// Unmodelled: concurrent_statements, guard_decl, block_block_configuration,
// is_within_flag, declarations, parent, attribute_value_chain,
// visible_flag, has_is, label, end_has_reserved_id, chain, block_header.
type BlockStatement struct{}

// Unmodelled: port_map_aspects, ports, generic_map_aspects, generics.
type BlockHeader struct{}

// Unmodelled: has_end, concurrent_statements, is_within_flag, has_begin,
// alternative_label, parent.
type GenerateStatementBody struct{}

// Unmodelled: label, chain, parent, generate_statement_body,
// end_has_reserved_id, is_within_flag, parameter_specification,
// visible_flag.
type ForGenerateStatement struct{}

// Unmodelled: label, end_has_reserved_id, condition, visible_flag, chain,
// parent, generate_statement_body, is_ref, is_within_flag.
type IfGenerateStatement struct{}

// Unmodelled: postponed_flag, label, visible_flag, chain, parent.
type ConcurrentAssertionStatement struct{}

// Unmodelled: chain, label, covered_flag, suspend_flag, visible_flag,
// postponed_flag, parent.
type ConcurrentProcedureCallStatement struct{}

// Unmodelled: is_ref, delay_mechanism, visible_flag, chain, parent,
// guarded_target_state, guard, postponed_flag, label, has_delay_mechanism.
type ConcurrentSimpleSignalAssignment struct{}

// Unmodelled: chain, delay_mechanism, conditional_waveforms,
// guarded_target_state, target, parent, label, is_ref, postponed_flag,
// has_delay_mechanism, visible_flag.
type ConcurrentConditionalSignalAssignment struct{}

// Unmodelled: postponed_flag, matching_flag, label, is_ref,
// delay_mechanism, parent, chain, has_delay_mechanism,
// guarded_target_state, visible_flag.
type ConcurrentSelectedSignalAssignment struct{}

// Unmodelled: is_ref, chain.
type ConditionalWaveform struct{}
