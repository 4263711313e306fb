package ast

import (
	"bytes"
	"encoding"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"vhdlast/internal/ident"
	"vhdlast/internal/source"
)

var (
	nullLiteral  = []byte("null")
	emptyLiteral = []byte(`"empty"`)
)

// DecodeNode decodes one node line. A null line is an empty slot and
// yields a nil Node. Otherwise the line is an object with exactly one key,
// the schema tag, mapping to the node's fields; fields this package does
// not model are ignored.
//
// files, when non-nil, is used to restore the original spelling of the
// node's identifiers.
func DecodeNode(line []byte, files *source.FileSet) (Node, error) {
	line = bytes.TrimSpace(line)
	if bytes.Equal(line, nullLiteral) || bytes.Equal(line, emptyLiteral) {
		return nil, nil
	}

	var tagged map[string]json.RawMessage
	if err := json.Unmarshal(line, &tagged); err != nil {
		return nil, err
	}
	if len(tagged) != 1 {
		return nil, fmt.Errorf("expected exactly one node tag, got %d", len(tagged))
	}

	for tag, body := range tagged {
		kind, ok := KindByTag(tag)
		if !ok {
			return nil, fmt.Errorf("unknown node tag %q", tag)
		}
		n := kind.New()
		if d, ok := n.(interface{ setDefaults() }); ok {
			d.setDefaults()
		}
		if len(body) != 0 && !bytes.Equal(body, nullLiteral) {
			if err := json.Unmarshal(body, n); err != nil {
				return nil, fmt.Errorf("%s: %w", tag, err)
			}
		}
		if err := checkRequired(n); err != nil {
			return nil, fmt.Errorf("%s: %w", tag, err)
		}
		if files.Len() > 0 {
			restoreIdentifiers(n, files)
		}
		return n, nil
	}
	panic("unreachable")
}

var (
	identifierType    = reflect.TypeFor[ident.Identifier]()
	identifierPtrType = reflect.TypeFor[*ident.Identifier]()
	handleType        = reflect.TypeFor[interface{ Generic() GenericNodeID }]()
	textUnmarshaler   = reflect.TypeFor[encoding.TextUnmarshaler]()

	// reflect.Type -> *fieldPlan
	fieldPlans sync.Map
)

type fieldPlan struct {
	identifiers []int // identifier fields, plain or pointer
	required    []int // handles, identifiers and enums the stream must set
	names       []string
}

func planFor(t reflect.Type) *fieldPlan {
	if cached, ok := fieldPlans.Load(t); ok {
		return cached.(*fieldPlan)
	}
	plan := &fieldPlan{}
	for i := range t.NumField() {
		f := t.Field(i)
		if f.Type == identifierType || f.Type == identifierPtrType {
			plan.identifiers = append(plan.identifiers, i)
		}
		if isRequired(f.Type) {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			plan.required = append(plan.required, i)
			plan.names = append(plan.names, name)
		}
	}
	fieldPlans.Store(t, plan)
	return plan
}

// isRequired reports whether a field of type t has no default. Optional
// fields are pointers and lists.
func isRequired(t reflect.Type) bool {
	switch {
	case t == identifierType:
		return true
	case t.Kind() == reflect.Uint32 && t.Implements(handleType):
		return true
	case t.Kind() == reflect.Uint8 || t.Kind() == reflect.Uint16:
		return reflect.PointerTo(t).Implements(textUnmarshaler)
	}
	return false
}

// checkRequired fails on the first required field left at its zero value.
// Zero is never a decodable value for these fields, so zero means absent.
func checkRequired(n Node) error {
	v := reflect.ValueOf(n).Elem()
	plan := planFor(v.Type())
	for j, i := range plan.required {
		if v.Field(i).IsZero() {
			return fmt.Errorf("missing field %q", plan.names[j])
		}
	}
	return nil
}

func restoreIdentifiers(n Node, files *source.FileSet) {
	v := reflect.ValueOf(n).Elem()
	for _, i := range planFor(v.Type()).identifiers {
		f := v.Field(i)
		if f.Kind() == reflect.Pointer {
			if f.IsNil() {
				continue
			}
			f.Interface().(*ident.Identifier).Restore(files)
			continue
		}
		f.Addr().Interface().(*ident.Identifier).Restore(files)
	}
}
