package ident

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"vhdlast/internal/source"
)

// Restore fills in the original spelling from the file set when the
// identifier carries a location and no spelling. The text at the location is
// read as UTF-8 first and as ISO-8859-1 second; it is accepted only when it
// folds back to the normalized form. Restore reports whether a spelling was
// recovered.
func (id *Identifier) Restore(files *source.FileSet) bool {
	if id.original != "" || !id.hasLoc || !isRegular(string(id.normalized)) {
		return false
	}
	norm := string(id.normalized)

	if text, ok := files.Text(id.loc, len(norm)); ok && len(text) == len(norm) && utf8.Valid(text) {
		if NewNormalized(string(text)) == id.normalized {
			id.original = string(text)
			return true
		}
	}

	n := utf8.RuneCountInString(norm)
	text, ok := files.Text(id.loc, n)
	if !ok || len(text) != n {
		return false
	}
	decoded := make([]byte, 0, len(norm))
	for _, b := range text {
		decoded = utf8.AppendRune(decoded, charmap.ISO8859_1.DecodeByte(b))
	}
	if NewNormalized(string(decoded)) != id.normalized {
		return false
	}
	id.original = string(decoded)
	return true
}
