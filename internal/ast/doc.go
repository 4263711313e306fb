// Package ast holds a fully elaborated VHDL design as emitted by an
// external analyser: one flat arena of nodes addressed by typed handles.
//
// A NodeID[T] is a slot index with a static kind hint. Fields that may
// point at several kinds use subset handles (ExpressionID, NameID, ...),
// whose lookups return the group interface. Nothing is checked on decode;
// TryGet reports empty slots and kind mismatches as *LookupError.
//
// The kind catalog, the subset groups and the predefined operator table
// are generated from the tables in ./gen.
package ast

//go:generate go run ./gen -out .
