package ast

import (
	"encoding/json"
	"errors"
	"fmt"
)

// tags[0] is the zero value and never matches: an empty tag is an error
// like any other unknown one.
func parseTag[E ~uint8 | ~uint16](what string, tags []string, text []byte) (E, error) {
	for i := 1; i < len(tags); i++ {
		if tags[i] == string(text) {
			return E(i), nil // #nosec G115 -- tables are small
		}
	}
	return 0, fmt.Errorf("unknown %s %q", what, text)
}

func tagOf[E ~uint8 | ~uint16](what string, tags []string, v E) (string, error) {
	if v == 0 || int(v) >= len(tags) {
		return "", fmt.Errorf("invalid %s %d", what, v)
	}
	return tags[v], nil
}

func tagString[E ~uint8 | ~uint16](typ string, tags []string, v E) string {
	if v == 0 || int(v) >= len(tags) {
		return fmt.Sprintf("%s(%d)", typ, v)
	}
	return tags[v]
}

// Direction of a range.
type Direction uint8

const (
	DirectionTo Direction = iota + 1
	DirectionDownto
)

var directionTags = [...]string{"", "to", "downto"}

// IsAscending reports whether the range counts upwards.
func (d Direction) IsAscending() bool { return d == DirectionTo }

func (d Direction) String() string { return tagString("Direction", directionTags[:], d) }

func (d Direction) MarshalText() ([]byte, error) {
	s, err := tagOf("direction", directionTags[:], d)
	return []byte(s), err
}

func (d *Direction) UnmarshalText(text []byte) (err error) {
	*d, err = parseTag[Direction]("direction", directionTags[:], text)
	return err
}

// Mode of an interface signal.
type Mode uint8

const (
	ModeIn Mode = iota + 1
	ModeOut
	ModeInOut
	ModeBuffer
	ModeLinkage
)

var modeTags = [...]string{"", "in", "out", "inout", "buffer", "linkage"}

func (m Mode) String() string { return tagString("Mode", modeTags[:], m) }

func (m Mode) MarshalText() ([]byte, error) {
	s, err := tagOf("mode", modeTags[:], m)
	return []byte(s), err
}

func (m *Mode) UnmarshalText(text []byte) (err error) {
	*m, err = parseTag[Mode]("mode", modeTags[:], text)
	return err
}

// UnaryOperatorKind is the operator symbol of a UnaryOperator. The
// reduction operators share their symbol with the logical ones.
type UnaryOperatorKind uint8

const (
	UnaryIdentity UnaryOperatorKind = iota + 1
	UnaryNegation
	UnaryAbsolute
	UnaryNot
	UnaryCondition
	UnaryReductionAnd
	UnaryReductionOr
	UnaryReductionNand
	UnaryReductionNor
	UnaryReductionXor
	UnaryReductionXnor
)

var unaryOperatorTags = [...]string{"", "+", "-", "abs", "not", "??", "and", "or", "nand", "nor", "xor", "xnor"}

func (k UnaryOperatorKind) String() string {
	return tagString("UnaryOperatorKind", unaryOperatorTags[:], k)
}

func (k UnaryOperatorKind) MarshalText() ([]byte, error) {
	s, err := tagOf("unary operator", unaryOperatorTags[:], k)
	return []byte(s), err
}

func (k *UnaryOperatorKind) UnmarshalText(text []byte) (err error) {
	*k, err = parseTag[UnaryOperatorKind]("unary operator", unaryOperatorTags[:], text)
	return err
}

type BinaryOperatorKind uint8

const (
	BinaryAnd BinaryOperatorKind = iota + 1
	BinaryOr
	BinaryNand
	BinaryNor
	BinaryXor
	BinaryXnor
	BinaryEquality
	BinaryInequality
	BinaryLessThan
	BinaryLessThanOrEqual
	BinaryGreaterThan
	BinaryGreaterThanOrEqual
	BinaryMatchEquality
	BinaryMatchInequality
	BinaryMatchLessThan
	BinaryMatchLessThanOrEqual
	BinaryMatchGreaterThan
	BinaryMatchGreaterThanOrEqual
	BinarySll
	BinarySla
	BinarySrl
	BinarySra
	BinaryRol
	BinaryRor
	BinaryAddition
	BinarySubtraction
	BinaryConcatenation
	BinaryMultiplication
	BinaryDivision
	BinaryModulus
	BinaryRemainder
	BinaryExponentiation
)

var binaryOperatorTags = [...]string{
	"",
	"and",
	"or",
	"nand",
	"nor",
	"xor",
	"xnor",
	"=",
	"/=",
	"<",
	"<=",
	">",
	">=",
	"?=",
	"?/=",
	"?<",
	"?<=",
	"?>",
	"?>=",
	"sll",
	"sla",
	"srl",
	"sra",
	"rol",
	"ror",
	"+",
	"-",
	"&",
	"*",
	"/",
	"mod",
	"rem",
	"**",
}

func (k BinaryOperatorKind) String() string {
	return tagString("BinaryOperatorKind", binaryOperatorTags[:], k)
}

func (k BinaryOperatorKind) MarshalText() ([]byte, error) {
	s, err := tagOf("binary operator", binaryOperatorTags[:], k)
	return []byte(s), err
}

func (k *BinaryOperatorKind) UnmarshalText(text []byte) (err error) {
	*k, err = parseTag[BinaryOperatorKind]("binary operator", binaryOperatorTags[:], text)
	return err
}

// AttributeKind names a predefined attribute.
type AttributeKind uint8

const (
	AttrBase AttributeKind = iota + 1
	AttrSubtype
	AttrElement
	AttrAcross
	AttrThrough
	AttrNatureReference
	AttrLeftType
	AttrRightType
	AttrHighType
	AttrLowType
	AttrAscendingType
	AttrImage
	AttrValue
	AttrPos
	AttrVal
	AttrSucc
	AttrPred
	AttrLeftof
	AttrRightof
	AttrSignalSlew
	AttrQuantitySlew
	AttrRamp
	AttrZoh
	AttrLtf
	AttrZtf
	AttrDot
	AttrInteg
	AttrQuantityDelayed
	AttrAbove
	AttrDelayed
	AttrStable
	AttrQuiet
	AttrTransaction
	AttrEvent
	AttrActive
	AttrLastEvent
	AttrLastActive
	AttrLastValue
	AttrDriving
	AttrDrivingValue
	AttrBehavior
	AttrStructure
	AttrSimpleName
	AttrInstanceName
	AttrPathName
	AttrConverse
	AttrLeftArray
	AttrRightArray
	AttrHighArray
	AttrLowArray
	AttrLengthArray
	AttrAscendingArray
	AttrRangeArray
	AttrReverseRangeArray
)

var attributeKindTags = [...]string{
	"",
	"base",
	"subtype",
	"element",
	"across",
	"through",
	"nature_reference",
	"left_type",
	"right_type",
	"high_type",
	"low_type",
	"ascending_type",
	"image",
	"value",
	"pos",
	"val",
	"succ",
	"pred",
	"leftof",
	"rightof",
	"signal_slew",
	"quantity_slew",
	"ramp",
	"zoh",
	"ltf",
	"ztf",
	"dot",
	"integ",
	"quantity_delayed",
	"above",
	"delayed",
	"stable",
	"quiet",
	"transaction",
	"event",
	"active",
	"last_event",
	"last_active",
	"last_value",
	"driving",
	"driving_value",
	"behavior",
	"structure",
	"simple_name",
	"instance_name",
	"path_name",
	"converse",
	"left_array",
	"right_array",
	"high_array",
	"low_array",
	"length_array",
	"ascending_array",
	"range_array",
	"reverse_range_array",
}

func (k AttributeKind) String() string {
	return tagString("AttributeKind", attributeKindTags[:], k)
}

func (k AttributeKind) MarshalText() ([]byte, error) {
	s, err := tagOf("attribute kind", attributeKindTags[:], k)
	return []byte(s), err
}

func (k *AttributeKind) UnmarshalText(text []byte) (err error) {
	*k, err = parseTag[AttributeKind]("attribute kind", attributeKindTags[:], text)
	return err
}

// ImplicitDefinition identifies a predefined operation. The tags are the
// upstream IIR_PREDEFINED_* names.
type ImplicitDefinition uint16

var implicitDefinitionIndex = func() map[string]ImplicitDefinition {
	m := make(map[string]ImplicitDefinition, len(implicitDefinitionTable))
	for i := 1; i < len(implicitDefinitionTable); i++ {
		m[implicitDefinitionTable[i].tag] = ImplicitDefinition(i) // #nosec G115
	}
	return m
}()

func (d ImplicitDefinition) IsValid() bool {
	return d > 0 && int(d) < len(implicitDefinitionTable)
}

func (d ImplicitDefinition) String() string {
	if !d.IsValid() {
		return fmt.Sprintf("ImplicitDefinition(%d)", uint16(d))
	}
	return implicitDefinitionTable[d].name
}

// Tag is the upstream spelling.
func (d ImplicitDefinition) Tag() string {
	if !d.IsValid() {
		return ""
	}
	return implicitDefinitionTable[d].tag
}

func (d ImplicitDefinition) MarshalText() ([]byte, error) {
	if !d.IsValid() {
		return nil, fmt.Errorf("invalid implicit definition %d", uint16(d))
	}
	return []byte(implicitDefinitionTable[d].tag), nil
}

func (d *ImplicitDefinition) UnmarshalText(text []byte) error {
	v, ok := implicitDefinitionIndex[string(text)]
	if !ok {
		return fmt.Errorf("unknown implicit definition %q", text)
	}
	*d = v
	return nil
}

// IndexList is the index part of an indexed name: a list of expressions or
// the keyword `others`.
type IndexList struct {
	List   []ExpressionID
	Others bool
}

var errIndexListOthers = errors.New("expected list of indices, got 'others'")

// Items returns the index expressions. It panics for `others`.
func (l IndexList) Items() []ExpressionID {
	if l.Others {
		panic(errIndexListOthers)
	}
	return l.List
}

func (l *IndexList) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*l = IndexList{}
		return nil
	}
	var word string
	if err := json.Unmarshal(data, &word); err == nil {
		if word != "others" {
			return fmt.Errorf("expected \"others\", got '%s'", word)
		}
		*l = IndexList{Others: true}
		return nil
	}
	var list []ExpressionID
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("index list: %w", err)
	}
	*l = IndexList{List: list}
	return nil
}

func (l IndexList) MarshalJSON() ([]byte, error) {
	if l.Others {
		return json.Marshal("others")
	}
	if l.List == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.List)
}
