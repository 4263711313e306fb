package ast

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
)

// GenericNodeID is the erased form of every handle: the arena position.
type GenericNodeID uint32

// DefaultNodeID is the always-empty slot. Lookups through it report
// NotFound, so it is a well-formed placeholder for "no node yet".
const DefaultNodeID GenericNodeID = 1

// ErrorGlobalID is the upstream's shared error node. Names that failed to
// resolve point at it.
const ErrorGlobalID NodeID[Error] = 2

var errZeroID = errors.New("node id must be non-zero")

// TryGet returns the node at id. Empty and out of range slots are NotFound.
func (id GenericNodeID) TryGet(a *Ast) (Node, error) {
	return a.lookup(id, "Node")
}

// Get is TryGet for callers that know the slot is populated.
func (id GenericNodeID) Get(a *Ast) Node {
	n, err := id.TryGet(a)
	if err != nil {
		panic(err)
	}
	return n
}

func (id GenericNodeID) String() string { return fmt.Sprintf("%d", uint32(id)) }

func (id *GenericNodeID) UnmarshalJSON(data []byte) error {
	v, err := decodeID(data)
	*id = GenericNodeID(v)
	return err
}

// NodeID is a handle to a node of kind T. The type parameter is a static
// hint only: equality, hashing and ordering are those of the integer.
type NodeID[T any] uint32

// Default returns the handle of the empty slot.
func Default[T any]() NodeID[T] { return NodeID[T](DefaultNodeID) }

// Downcast relabels any handle without checking the referenced node.
// The caller must have established the kind some other way.
func Downcast[U any, ID ~uint32](id ID) NodeID[U] {
	return NodeID[U](id)
}

// Generic erases the static kind.
func (id NodeID[T]) Generic() GenericNodeID { return GenericNodeID(id) }

// TryGet looks the handle up and checks that the slot holds a T.
func (id NodeID[T]) TryGet(a *Ast) (*T, error) {
	expected := typeName[T]()
	n, err := a.lookup(GenericNodeID(id), expected)
	if err != nil {
		return nil, err
	}
	v, ok := any(n).(*T)
	if !ok {
		return nil, &LookupError{Kind: WrongType, ID: GenericNodeID(id), Expected: expected, Actual: nodeKindName(n)}
	}
	return v, nil
}

// Get panics where TryGet would fail.
func (id NodeID[T]) Get(a *Ast) *T {
	v, err := id.TryGet(a)
	if err != nil {
		panic(err)
	}
	return v
}

func (id NodeID[T]) String() string { return fmt.Sprintf("%d", uint32(id)) }

func (id NodeID[T]) GoString() string {
	return fmt.Sprintf("NodeID<%s>(%d)", typeName[T](), uint32(id))
}

func (id *NodeID[T]) UnmarshalJSON(data []byte) error {
	v, err := decodeID(data)
	*id = NodeID[T](v)
	return err
}

// SubsetID is a handle known to point at one of the kinds of the group S.
// Membership is checked on lookup, not on decode.
type SubsetID[S Node] uint32

// Generic erases the group.
func (id SubsetID[S]) Generic() GenericNodeID { return GenericNodeID(id) }

// TryGet looks the handle up and converts the node into the group view.
func (id SubsetID[S]) TryGet(a *Ast) (S, error) {
	var zero S
	expected := typeName[S]()
	n, err := a.lookup(GenericNodeID(id), expected)
	if err != nil {
		return zero, err
	}
	v, ok := any(n).(S)
	if !ok {
		return zero, &LookupError{Kind: WrongType, ID: GenericNodeID(id), Expected: expected, Actual: nodeKindName(n)}
	}
	return v, nil
}

// Get panics where TryGet would fail.
func (id SubsetID[S]) Get(a *Ast) S {
	v, err := id.TryGet(a)
	if err != nil {
		panic(err)
	}
	return v
}

func (id SubsetID[S]) String() string { return fmt.Sprintf("%d", uint32(id)) }

func (id SubsetID[S]) GoString() string {
	return fmt.Sprintf("%sID(%d)", typeName[S](), uint32(id))
}

func (id *SubsetID[S]) UnmarshalJSON(data []byte) error {
	v, err := decodeID(data)
	*id = SubsetID[S](v)
	return err
}

func decodeID(data []byte) (uint32, error) {
	var v uint32
	if err := json.Unmarshal(data, &v); err != nil {
		return 0, err
	}
	if v == 0 {
		return 0, errZeroID
	}
	return v, nil
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().Name()
}
