package ast

import (
	"fmt"
	"iter"
)

// Node is one populated arena slot. The set of implementations is closed:
// every kind is a pointer to one of the structs of this package. An empty
// slot is a nil Node.
type Node interface {
	Kind() Kind
	node()
}

// Kind enumerates the node kinds in the upstream schema order.
type Kind uint16

// KindInvalid is the zero Kind; no node reports it.
const KindInvalid Kind = 0

type kindInfo struct {
	name    string
	tag     string
	aliases []string
	new     func() Node
}

type subsetGroup struct {
	name  string
	kinds []Kind
}

var tagIndex = buildTagIndex()

func buildTagIndex() map[string]Kind {
	m := make(map[string]Kind, len(kindTable)+8)
	for k := Kind(1); k < kindCount; k++ {
		info := &kindTable[k]
		m[info.tag] = k
		for _, alias := range info.aliases {
			m[alias] = k
		}
	}
	return m
}

// KindByTag resolves a schema tag, aliases included.
func KindByTag(tag string) (Kind, bool) {
	k, ok := tagIndex[tag]
	return k, ok
}

// IsValid reports whether k names a node kind.
func (k Kind) IsValid() bool { return k > KindInvalid && k < kindCount }

func (k Kind) String() string {
	if !k.IsValid() {
		return fmt.Sprintf("Kind(%d)", uint16(k))
	}
	return kindTable[k].name
}

// Tag is the primary schema tag of k.
func (k Kind) Tag() string {
	if !k.IsValid() {
		return ""
	}
	return kindTable[k].tag
}

// Aliases lists the additional schema tags that decode into k. READONLY
func (k Kind) Aliases() []string {
	if !k.IsValid() {
		return nil
	}
	return kindTable[k].aliases
}

// Groups returns the names of the subset groups k belongs to.
func (k Kind) Groups() []string {
	var out []string
	for _, g := range subsetGroups {
		for _, member := range g.kinds {
			if member == k {
				out = append(out, g.name)
				break
			}
		}
	}
	return out
}

// New allocates a zero node of kind k.
func (k Kind) New() Node {
	if !k.IsValid() {
		return nil
	}
	return kindTable[k].new()
}

// Kinds yields every node kind in schema order.
func Kinds() iter.Seq[Kind] {
	return func(yield func(Kind) bool) {
		for k := Kind(1); k < kindCount; k++ {
			if !yield(k) {
				return
			}
		}
	}
}

// Groups yields every subset group name with its member kinds.
func Groups() iter.Seq2[string, []Kind] {
	return func(yield func(string, []Kind) bool) {
		for _, g := range subsetGroups {
			if !yield(g.name, g.kinds) {
				return
			}
		}
	}
}

func nodeKindName(n Node) string {
	if n == nil {
		return "<empty>"
	}
	return n.Kind().String()
}
