package ast

import "vhdlast/internal/ident"

// UnaryOperator is a resolved unary operator application. Implementation
// is the predefined or user subprogram it calls.
type UnaryOperator struct {
	Op             UnaryOperatorKind             `json:"kind"`
	Operand        ExpressionID                  `json:"operand"`
	Implementation NodeID[SubprogramDeclaration] `json:"implementation"`
}

type BinaryOperator struct {
	Op             BinaryOperatorKind            `json:"kind"`
	Left           ExpressionID                  `json:"left"`
	Right          ExpressionID                  `json:"right"`
	Implementation NodeID[SubprogramDeclaration] `json:"implementation"`
}

// SubprogramCall is a procedure or function call; ReturnType is nil for
// procedures.
//
// Unmodelled: procedure_call, function_call, base_name.
type SubprogramCall struct {
	Prefix                PrefixID                      `json:"prefix"`
	Implementation        NodeID[SubprogramDeclaration] `json:"implementation"`
	ParameterAssociations []AssociationElementID        `json:"parameter_associations"`
	ReturnType            *SubtypeDefinitionID          `json:"type"`
}

// Unmodelled: type, literal_origin, literal_length.
type IntegerLiteral struct {
	Value int64 `json:"value"`
}

// Unmodelled: literal_origin, literal_length, type.
type FloatingPointLiteral struct {
	Value float64 `json:"fp_value"`
}

// Unmodelled: type, literal_length.
type PhysicalIntLiteral struct {
	Value    int64  `json:"value"`
	UnitName NameID `json:"unit_name"`
}

// OverflowLiteral replaces a static expression whose value does not fit.
type OverflowLiteral struct {
	LiteralOrigin ExpressionID `json:"literal_origin"`
}

// Unmodelled: left_limit_expr, right_limit_expr, range_origin, type.
type RangeExpression struct {
	Direction  Direction    `json:"direction"`
	LeftLimit  ExpressionID `json:"left_limit"`
	RightLimit ExpressionID `json:"right_limit"`
}

// Unmodelled: literal_subtype, aggregate_expand_flag, aggregate_info,
// determined_aggregate_flag.
type Aggregate struct {
	Associations []AssociationElementID `json:"association_choices"`
	Type         *SubtypeDefinitionID   `json:"type"`
}

// StringLiteral holds the Latin-1 bytes of the literal. LiteralOrigin is
// set when the literal was folded from another expression.
//
// Unmodelled: literal_subtype, bit_string_base, has_length, literal_length,
// has_sign, has_signed, string_length, type.
type StringLiteral struct {
	Value         ident.Latin1String `json:"string8_id"`
	LiteralOrigin *ExpressionID      `json:"literal_origin"`
}

// Unmodelled: type, literal_origin, is_within_flag, parent, seen_flag,
// subprogram_hash, visible_flag.
type EnumerationLiteral struct {
	Position   uint32           `json:"enum_pos"`
	Identifier ident.Identifier `json:"identifier"`
}

// Attribute is a predefined attribute, e.g. the `range` of a slice.
type Attribute struct {
	AttributeKind AttributeKind `json:"kind"`
}

// CharacterLiteral is not modelled.
//
// Unmodelled: type, named_entity, identifier, base_name.
type CharacterLiteral struct{}

// Unmodelled: type.
type NullLiteral struct{}

// Unmodelled: unit_name, type, fp_value, literal_length.
type PhysicalFpLiteral struct{}

// Unmodelled: expression, type, type_mark.
type QualifiedExpression struct{}

// Unmodelled: type, expression, type_mark.
type TypeConversion struct{}

// Unmodelled: type, expression.
type ParenthesisExpression struct{}

// Unmodelled: type, expression, is_ref, allocator_designated_type.
type AllocatorByExpression struct{}

// Unmodelled: subtype_indication, type, is_ref, allocator_designated_type,
// allocator_subtype.
type AllocatorBySubtype struct{}

// Unmodelled: aggr_low_limit, aggr_named_flag, aggr_min_length,
// aggr_dynamic_flag, aggr_high_limit, sub_aggregate_info, aggr_others_flag.
type AggregateInfo struct{}

// Unmodelled: literal_origin, simple_aggregate_list, type, literal_subtype.
type SimpleAggregate struct{}

// Unmodelled: choice_expression, choice_staticness, element_type_flag,
// associateds, chain, same_alternative_flag, associated_expr, parent.
type ChoiceByExpression struct{}

// ChoiceByNone is a positional association of an aggregate.
//
// Unmodelled: chain, element_type_flag, same_alternative_flag.
type ChoiceByNone struct {
	Expression ExpressionID `json:"associated_expr"`
}

// Unmodelled: parent, associated_expr, element_type_flag, associateds,
// same_alternative_flag.
type ChoiceByOthers struct{}

// Unmodelled: associateds, element_type_flag, choice_range, parent,
// associated_expr, choice_staticness, same_alternative_flag, chain.
type ChoiceByRange struct{}

// Unmodelled: same_alternative_flag, associated_expr, chain,
// element_type_flag, choice_name.
type ChoiceByName struct{}

// Operator kinds below are the unresolved forms; resolved applications
// decode into UnaryOperator and BinaryOperator.

// Unmodelled: implementation, operand, type.
type IdentityOperator struct{}

// Unmodelled: type, operand, implementation.
type NegationOperator struct{}

// Unmodelled: operand, implementation, type.
type AbsoluteOperator struct{}

// Unmodelled: operand, type, implementation.
type NotOperator struct{}

// Unmodelled: right, type, implementation, left.
type AndOperator struct{}

// Unmodelled: left, implementation, type, right.
type OrOperator struct{}

// Unmodelled: type, implementation, left, right.
type NandOperator struct{}

// Unmodelled: right, type, left, implementation.
type NorOperator struct{}

// Unmodelled: right, type, left, implementation.
type XorOperator struct{}

// EqualityOperator is not modelled.
//
// Unmodelled: left, right, type, implementation.
type EqualityOperator struct{}

// Unmodelled: left, right, type, implementation.
type InequalityOperator struct{}

// Unmodelled: type, implementation, right, left.
type LessThanOperator struct{}

// Unmodelled: type, implementation, left, right.
type LessThanOrEqualOperator struct{}

// Unmodelled: left, type, implementation, right.
type GreaterThanOperator struct{}

// Unmodelled: implementation, left, right, type.
type GreaterThanOrEqualOperator struct{}

// Unmodelled: implementation, left, right, type.
type ConcatenationOperator struct{}

// Unmodelled: right, left, type, implementation.
type MultiplicationOperator struct{}

// Unmodelled: left, implementation, right, type.
type DivisionOperator struct{}

// Unmodelled: type, left, right, implementation.
type ModulusOperator struct{}

// Unmodelled: implementation, left, right, type.
type RemainderOperator struct{}

// Unmodelled: right, type, left, implementation.
type ExponentiationOperator struct{}
