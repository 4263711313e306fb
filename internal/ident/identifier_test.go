package ident

import (
	"encoding/json"
	"testing"

	"vhdlast/internal/source"
)

func TestNormalizedFoldsLatin1(t *testing.T) {
	// все символы latin-1 должны совпадать с unicode lower
	for r := rune(0); r <= 0xff; r++ {
		got := fold(r)
		want := r
		switch {
		case r >= 'A' && r <= 'Z', r >= 0xC0 && r <= 0xDE && r != 0xD7:
			want = r + 0x20
		}
		if got != want {
			t.Errorf("fold(%U) = %U, want %U", r, got, want)
		}
	}
}

func TestNewNormalized(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		// character literals
		{"'z'", "'z'"},
		{"'A'", "'A'"},
		{"'Ö'", "'Ö'"},
		// extended identifiers
		{`\ABCdefÄÖÜäöü\`, `\ABCdefÄÖÜäöü\`},
		// regular identifiers
		{"abc", "abc"},
		{"aBc", "abc"},
		{"abcÜ", "abcü"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NewNormalized(tt.in); string(got) != tt.want {
			t.Errorf("NewNormalized(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if NewNormalized("aBc") != NewNormalized("ABC") {
		t.Error("expected aBc and ABC to normalize equally")
	}
}

func TestIdentifierNew(t *testing.T) {
	id := New("aBc")
	if id.Original() != "aBc" {
		t.Errorf("Original() = %q", id.Original())
	}
	if id.Normalized() != "abc" {
		t.Errorf("Normalized() = %q", id.Normalized())
	}
	if !id.Equal(New("ABC")) {
		t.Error("expected identifiers to compare on normalized form")
	}

	lit := New("'A'")
	if lit.HasOriginal() {
		t.Error("character literal must not carry an original spelling")
	}
	if lit.Original() != "'A'" {
		t.Errorf("Original() fallback = %q", lit.Original())
	}
}

func TestFromNormalizedPanicsOnUpperCase(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	FromNormalized("Foo")
}

func TestIdentifierUnmarshalForms(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		norm     string
		original string
		hasLoc   bool
	}{
		{"bare", `"foo"`, "foo", "foo", false},
		{"single", `["foo"]`, "foo", "foo", false},
		{"pair", `["foo", "Foo"]`, "foo", "Foo", false},
		{"null original", `["foo", null]`, "foo", "foo", false},
		{"location", `["foo", null, [1, 2, 3]]`, "foo", "foo", true},
		{"bare unfolded", `"Foo"`, "foo", "Foo", false},
		{"single unfolded", `["FOO"]`, "foo", "FOO", false},
		{"unfolded with original", `["Foo", "fOO"]`, "foo", "fOO", false},
		{"extended", `"\\Foo\\"`, `\Foo\`, `\Foo\`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id Identifier
			if err := json.Unmarshal([]byte(tt.input), &id); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if string(id.Normalized()) != tt.norm || id.Original() != tt.original {
				t.Errorf("got (%q, %q), want (%q, %q)", id.Normalized(), id.Original(), tt.norm, tt.original)
			}
			if _, ok := id.Location(); ok != tt.hasLoc {
				t.Errorf("hasLoc = %v, want %v", ok, tt.hasLoc)
			}
		})
	}

	for _, bad := range []string{`[]`, `[1]`, `["a", 2]`, `["a", null, "x"]`, `{}`, `["a","b",null,4]`} {
		var id Identifier
		if err := json.Unmarshal([]byte(bad), &id); err == nil {
			t.Errorf("expected error for %s", bad)
		}
	}
}

func TestIdentifierUnmarshalFoldsEquality(t *testing.T) {
	var a, b Identifier
	if err := json.Unmarshal([]byte(`"Clk"`), &a); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal([]byte(`["clk", "CLK"]`), &b); err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) || !a.Is("clk") {
		t.Errorf("%#v and %#v should be equal", a, b)
	}
	if !IsNormalized(string(a.Normalized())) {
		t.Errorf("normalized form %q is not folded", a.Normalized())
	}
}

func TestIdentifierJSONRoundTrip(t *testing.T) {
	in := `["top", "Top", [0, 3, 8]]`
	var id Identifier
	if err := json.Unmarshal([]byte(in), &id); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	out, err := json.Marshal(id)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `["top","Top",[0,3,8]]` {
		t.Errorf("marshal = %s", out)
	}
}

func TestRestore(t *testing.T) {
	files := source.NewFileSet()
	files.Add(source.OriginStdStandard, "*std_standard*", nil)
	files.Add(source.OriginFile, "utf8.vhd", []byte("entity TopLevel is\nend;\n"))
	// "GRÖSSE" в latin-1
	files.Add(source.OriginFile, "latin1.vhd", []byte{'s', 'i', 'g', 'n', 'a', 'l', ' ', 'G', 'R', 0xD6, 'S', 'S', 'E', ';'})
	files.Add(source.OriginFile, "utf8ext.vhd", []byte("signal GRÖSSE;"))

	decode := func(s string) Identifier {
		t.Helper()
		var id Identifier
		if err := json.Unmarshal([]byte(s), &id); err != nil {
			t.Fatalf("unmarshal %s: %v", s, err)
		}
		return id
	}

	id := decode(`["toplevel", null, [1, 1, 8]]`)
	if !id.Restore(files) || id.Original() != "TopLevel" {
		t.Errorf("utf-8 restore: %q", id.Original())
	}

	id = decode(`["grösse", null, [2, 1, 8]]`)
	if !id.Restore(files) || id.Original() != "GRÖSSE" {
		t.Errorf("latin-1 restore: %q", id.Original())
	}

	id = decode(`["grösse", null, [3, 1, 8]]`)
	if !id.Restore(files) || id.Original() != "GRÖSSE" {
		t.Errorf("utf-8 non-ascii restore: %q", id.Original())
	}

	// текст не совпадает: оригинал не восстанавливается
	id = decode(`["other", null, [1, 1, 8]]`)
	if id.Restore(files) || id.Original() != "other" {
		t.Errorf("mismatch restore: %q", id.Original())
	}

	// пустой буфер
	id = decode(`["x", null, [0, 1, 1]]`)
	if id.Restore(files) {
		t.Error("expected restore from empty buffer to fail")
	}

	// уже есть оригинал
	id = decode(`["toplevel", "TOPLEVEL", [1, 1, 8]]`)
	if id.Restore(files) || id.Original() != "TOPLEVEL" {
		t.Errorf("restore must keep explicit original, got %q", id.Original())
	}
}
