package ident

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Latin1String is a VHDL string literal in its 8-bit ISO-8859-1 form.
type Latin1String []byte

// Latin1Error reports the first character that has no ISO-8859-1 encoding.
// Position counts the characters converted before it (0-based).
type Latin1Error struct {
	Position int
}

func (e *Latin1Error) Error() string {
	return fmt.Sprintf("character at position %d is not an ISO-8859-1 character", e.Position+1)
}

// NewLatin1String converts a UTF-8 string to ISO-8859-1.
func NewLatin1String(s string) (Latin1String, error) {
	out := make(Latin1String, 0, len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			return nil, &Latin1Error{Position: len(out)}
		}
		b, ok := charmap.ISO8859_1.EncodeRune(r)
		if !ok {
			return nil, &Latin1Error{Position: len(out)}
		}
		out = append(out, b)
		i += size
	}
	return out, nil
}

// MustLatin1String is NewLatin1String for literals known to be valid.
func MustLatin1String(s string) Latin1String {
	out, err := NewLatin1String(s)
	if err != nil {
		panic(err)
	}
	return out
}

// String decodes the literal back to UTF-8.
func (l Latin1String) String() string {
	buf := make([]byte, 0, len(l))
	for _, b := range l {
		buf = utf8.AppendRune(buf, charmap.ISO8859_1.DecodeByte(b))
	}
	return string(buf)
}

// Bytes returns the raw 8-bit form.
func (l Latin1String) Bytes() []byte { return l }

// GoString is used by the arena dump.
func (l Latin1String) GoString() string { return fmt.Sprintf("%q", l.String()) }

// UnmarshalJSON decodes a JSON string and converts it to ISO-8859-1.
func (l *Latin1String) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	out, err := NewLatin1String(s)
	if err != nil {
		return err
	}
	*l = out
	return nil
}

// MarshalJSON encodes the literal as a UTF-8 JSON string.
func (l Latin1String) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}
