// Package ident holds the identifier and string utilities shared by the AST
// nodes: case folding of VHDL identifiers and ISO-8859-1 string literals.
package ident

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"vhdlast/internal/source"
)

// Normalized is an identifier in its folded form. It is the form used for
// comparisons and as map key.
type Normalized string

// NewNormalized folds a regular identifier to lower case. Only ASCII and
// Latin-1 upper case letters are folded. Character literals ('A') and
// extended identifiers (\Foo\) are kept as written.
func NewNormalized(s string) Normalized {
	if !isRegular(s) {
		return Normalized(s)
	}
	return Normalized(strings.Map(fold, s))
}

func (n Normalized) String() string { return string(n) }

// IsNormalized reports whether s is already in folded form.
func IsNormalized(s string) bool {
	if !isRegular(s) {
		return true
	}
	for _, r := range s {
		if fold(r) != r {
			return false
		}
	}
	return true
}

// Identifier carries a normalized form plus the original spelling when one
// is known. Equality is defined on the normalized form only.
type Identifier struct {
	normalized Normalized
	original   string
	loc        source.Location
	hasLoc     bool
}

// New builds an identifier from its source spelling.
func New(s string) Identifier {
	id := Identifier{normalized: NewNormalized(s)}
	if isRegular(s) {
		id.original = s
	}
	return id
}

// FromNormalized builds an identifier without an original spelling.
// It panics if s is not normalized.
func FromNormalized(s string) Identifier {
	if !IsNormalized(s) {
		panic(fmt.Sprintf("identifier %q is not normalized", s))
	}
	return Identifier{normalized: Normalized(s)}
}

// Normalized returns the folded form.
func (id Identifier) Normalized() Normalized { return id.normalized }

// Original returns the source spelling, falling back to the normalized form.
func (id Identifier) Original() string {
	if id.original != "" {
		return id.original
	}
	return string(id.normalized)
}

// HasOriginal reports whether a source spelling is known.
func (id Identifier) HasOriginal() bool { return id.original != "" }

// Location returns where the identifier was declared, if the stream said so.
func (id Identifier) Location() (source.Location, bool) { return id.loc, id.hasLoc }

// Equal compares the normalized forms.
func (id Identifier) Equal(other Identifier) bool { return id.normalized == other.normalized }

// Is compares against an already normalized string.
func (id Identifier) Is(s string) bool { return string(id.normalized) == s }

func (id Identifier) String() string { return id.Original() }

// GoString is used by the arena dump.
func (id Identifier) GoString() string { return fmt.Sprintf("%q", id.Original()) }

// UnmarshalJSON accepts the wire forms "foo", ["foo"], ["foo", "Foo"] and
// ["foo", null, [file, line, column]].
func (id *Identifier) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = fromWire(s)
		return nil
	}

	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("identifier: %w", err)
	}
	if len(parts) == 0 || len(parts) > 3 {
		return fmt.Errorf("identifier: expected 1 to 3 elements, got %d", len(parts))
	}

	var normalized string
	if err := json.Unmarshal(parts[0], &normalized); err != nil {
		return fmt.Errorf("identifier: normalized form: %w", err)
	}
	out := fromWire(normalized)

	if len(parts) > 1 {
		var original *string
		if err := json.Unmarshal(parts[1], &original); err != nil {
			return fmt.Errorf("identifier: original form: %w", err)
		}
		if original != nil {
			out.original = *original
		}
	}
	if len(parts) > 2 && !isNull(parts[2]) {
		if err := json.Unmarshal(parts[2], &out.loc); err != nil {
			return fmt.Errorf("identifier: %w", err)
		}
		out.hasLoc = true
	}
	*id = out
	return nil
}

// fromWire folds the first element of a wire identifier. An unfolded
// spelling is kept as the original.
func fromWire(s string) Identifier {
	id := Identifier{normalized: NewNormalized(s)}
	if string(id.normalized) != s {
		id.original = s
	}
	return id
}

// MarshalJSON writes the tuple form understood by UnmarshalJSON.
func (id Identifier) MarshalJSON() ([]byte, error) {
	var original any
	if id.original != "" {
		original = id.original
	}
	if id.hasLoc {
		return json.Marshal([]any{id.normalized, original, id.loc})
	}
	return json.Marshal([]any{id.normalized, original})
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}

func fold(r rune) rune {
	switch {
	case r >= 'A' && r <= 'Z', r >= 'À' && r <= 'Ö', r >= 'Ø' && r <= 'Þ':
		return r + 0x20
	default:
		return r
	}
}

func isRegular(s string) bool {
	return s == "" || (s[0] != '\\' && s[0] != '\'')
}
