package ast

import (
	"fmt"
	"iter"
	"slices"
)

// NameElementKind classifies one step of a compound name.
type NameElementKind uint8

const (
	// ElementNamedEntity is a step that denotes a named entity.
	ElementNamedEntity NameElementKind = iota + 1
	// ElementAll is a `.all` selection.
	ElementAll
	// ElementOther is an index, a slice, a call or an operator symbol.
	ElementOther
)

// NameElement is one step of a name; NamedEntity is set for
// ElementNamedEntity only.
type NameElement struct {
	Kind        NameElementKind
	NamedEntity NamedEntityID
}

// NameElements is a name split into its steps.
type NameElements struct {
	// в обратном порядке: от суффикса к корню
	elements []NameElement
}

// Len is the number of steps.
func (e NameElements) Len() int { return len(e.elements) }

// All yields the steps from the root of the name to its suffix.
func (e NameElements) All() iter.Seq[NameElement] {
	return func(yield func(NameElement) bool) {
		for _, el := range slices.Backward(e.elements) {
			if !yield(el) {
				return
			}
		}
	}
}

// NamedEntities yields the named entities of the steps, root first.
func (e NameElements) NamedEntities() iter.Seq[NamedEntityID] {
	return func(yield func(NamedEntityID) bool) {
		for el := range e.All() {
			if el.Kind == ElementNamedEntity && !yield(el.NamedEntity) {
				return
			}
		}
	}
}

// Elements splits name into its steps, following prefixes down to a simple
// name or an operator symbol. Dereferences are not steps of their own.
func Elements(a *Ast, name Name) (NameElements, error) {
	var out NameElements
	var current Node = name
	limit := int(a.Len())
	for range limit {
		var (
			next PrefixID
			done bool
		)
		switch n := current.(type) {
		case *AttributeName:
			out.push(ElementNamedEntity, n.NamedEntity)
			next = n.Prefix
		case *IndexedName:
			out.push(ElementOther, 0)
			next = n.Prefix
		case *SelectedByAllName:
			out.push(ElementAll, 0)
			next = n.Prefix
		case *SelectedName:
			out.push(ElementNamedEntity, n.NamedEntity)
			next = n.Prefix
		case *SimpleName:
			out.push(ElementNamedEntity, n.NamedEntity)
			done = true
		case *SliceName:
			out.push(ElementOther, 0)
			next = n.Prefix
		case *SelectedElement:
			out.push(ElementNamedEntity, n.NamedEntity)
			next = n.Prefix
		case *SubprogramCall:
			out.push(ElementOther, 0)
			next = n.Prefix
		case *Dereference:
			next = n.Prefix
		case *ImplicitDereference:
			next = n.Prefix
		case *OperatorSymbol:
			out.push(ElementOther, 0)
			done = true
		default:
			return NameElements{}, newTryFromNodeError(current, "Prefix")
		}
		if done {
			return out, nil
		}
		prefix, err := next.TryGet(a)
		if err != nil {
			return NameElements{}, err
		}
		current = prefix
	}
	return NameElements{}, fmt.Errorf("name prefix chain longer than the arena (%d slots)", limit)
}

func (e *NameElements) push(kind NameElementKind, entity NamedEntityID) {
	e.elements = append(e.elements, NameElement{Kind: kind, NamedEntity: entity})
}

// NamedEntityOfName returns what name resolves to. Indexed, slice and
// `.all` names denote no named entity.
func NamedEntityOfName(name Name) (NamedEntityID, bool) {
	switch n := name.(type) {
	case *AttributeName:
		return n.NamedEntity, true
	case *SelectedName:
		return n.NamedEntity, true
	case *SimpleName:
		return n.NamedEntity, true
	}
	return 0, false
}

// NamedEntityOfPrefix is NamedEntityOfName for prefixes; record element
// selections denote their element.
func NamedEntityOfPrefix(prefix Prefix) (NamedEntityID, bool) {
	if n, ok := prefix.(*SelectedElement); ok {
		return n.NamedEntity, true
	}
	if name, ok := prefix.(Name); ok {
		return NamedEntityOfName(name)
	}
	return 0, false
}
