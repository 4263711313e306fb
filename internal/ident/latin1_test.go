package ident

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestLatin1StringOK(t *testing.T) {
	tests := []struct {
		in   string
		want []byte
	}{
		{"", []byte{}},
		{"\u0000", []byte{0x00}},
		{"\u007f", []byte{0x7f}},
		{"\u0080", []byte{0x80}},
		{"ÿ", []byte{0xff}},
		{"abcÿ", []byte{'a', 'b', 'c', 0xff}},
		{"a\u0080bäc", []byte{'a', 0x80, 'b', 0xe4, 'c'}},
	}
	for _, tt := range tests {
		got, err := NewLatin1String(tt.in)
		if err != nil {
			t.Errorf("NewLatin1String(%q) error: %v", tt.in, err)
			continue
		}
		if string(got) != string(tt.want) {
			t.Errorf("NewLatin1String(%q) = %v, want %v", tt.in, []byte(got), tt.want)
		}
		if got.String() != tt.in {
			t.Errorf("String() = %q, want %q", got.String(), tt.in)
		}
	}
}

func TestLatin1StringErr(t *testing.T) {
	tests := []struct {
		in  string
		pos int
	}{
		{"Ā", 0},
		{"߿", 0},
		{"ࠀ", 0},
		{"￿", 0},
		{"\U00010000", 0},
		{"abcĀ", 3},
		{"abc߿", 3},
		{"abcࠀ", 3},
		{"abc￿", 3},
		{"abc\U00010000", 3},
		{"ääĀ", 2},
	}
	for _, tt := range tests {
		_, err := NewLatin1String(tt.in)
		var lerr *Latin1Error
		if !errors.As(err, &lerr) {
			t.Errorf("NewLatin1String(%q) error = %v, want *Latin1Error", tt.in, err)
			continue
		}
		if lerr.Position != tt.pos {
			t.Errorf("NewLatin1String(%q) position = %d, want %d", tt.in, lerr.Position, tt.pos)
		}
	}

	_, err := NewLatin1String("abcĀ")
	if err.Error() != "character at position 4 is not an ISO-8859-1 character" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestLatin1StringJSON(t *testing.T) {
	var s Latin1String
	if err := json.Unmarshal([]byte(`"größe"`), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(s) != 5 || s[2] != 0xf6 {
		t.Errorf("unexpected bytes %v", s.Bytes())
	}
	out, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back string
	if err := json.Unmarshal(out, &back); err != nil || back != "größe" {
		t.Errorf("round trip = %q (%v)", back, err)
	}

	if err := json.Unmarshal([]byte(`"Ā"`), &s); err == nil {
		t.Error("expected error for non latin-1 literal")
	}
}
