package source

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetAddAssignsSequentialIDs(t *testing.T) {
	fs := NewFileSet()

	// ID совпадает с позицией в списке metadata.files
	id0 := fs.Add(OriginStdStandard, "*std_standard*", nil)
	id1 := fs.Add(OriginFile, "top.vhd", []byte("entity top is\nend;\n"))
	if id0 != 0 || id1 != 1 {
		t.Fatalf("expected ids 0 and 1, got %d and %d", id0, id1)
	}
	if fs.Len() != 2 {
		t.Fatalf("expected 2 files, got %d", fs.Len())
	}

	f, ok := fs.Get(id1)
	if !ok {
		t.Fatal("expected file 1 to exist")
	}
	if f.Path != "top.vhd" || f.Origin != OriginFile {
		t.Errorf("unexpected file metadata: %+v", f)
	}
	if len(f.LineIdx) != 2 || f.LineIdx[0] != 13 {
		t.Errorf("unexpected line index %v", f.LineIdx)
	}

	if _, ok := fs.Get(7); ok {
		t.Error("expected missing file to report !ok")
	}
}

func TestFileSetLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.vhd")
	if err := os.WriteFile(path, []byte("library ieee;\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	f, _ := fs.Get(id)
	if got := f.GetLine(1); got != "library ieee;" {
		t.Errorf("GetLine(1) = %q", got)
	}

	if _, err := fs.Load(filepath.Join(t.TempDir(), "missing.vhd")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFileOffset(t *testing.T) {
	fs := NewFileSet()
	id := fs.Add(OriginFile, "x.vhd", []byte("abc\nDEF\n\nxyz"))
	f, _ := fs.Get(id)

	tests := []struct {
		line, col uint32
		want      uint32
		ok        bool
	}{
		{1, 1, 0, true},
		{1, 3, 2, true},
		{2, 1, 4, true},
		{2, 3, 6, true},
		{4, 2, 10, true},
		{0, 1, 0, false},
		{1, 0, 0, false},
		{1, 6, 0, false}, // за концом строки
		{9, 1, 0, false},
	}
	for _, tt := range tests {
		got, ok := f.Offset(tt.line, tt.col)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("Offset(%d, %d) = (%d, %v), want (%d, %v)", tt.line, tt.col, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFilePositionRoundTrip(t *testing.T) {
	fs := NewFileSet()
	id := fs.Add(OriginFile, "x.vhd", []byte("abc\nDEF\n\nxyz"))
	f, _ := fs.Get(id)

	for off := uint32(0); off < uint32(len(f.Content)); off++ {
		lc := f.Position(off)
		back, ok := f.Offset(lc.Line, lc.Col)
		if !ok || back != off {
			t.Errorf("offset %d -> %+v -> (%d, %v)", off, lc, back, ok)
		}
	}
}

func TestFileSetText(t *testing.T) {
	fs := NewFileSet()
	fs.Add(OriginLibraries, "*libraries*", nil)
	fs.Add(OriginFile, "y.vhd", []byte("entity Top is\nend entity;"))

	got, ok := fs.Text(Location{File: 1, Line: 1, Col: 8}, 3)
	if !ok || string(got) != "Top" {
		t.Errorf("Text = (%q, %v), want (\"Top\", true)", got, ok)
	}

	// обрезаем по концу файла
	got, ok = fs.Text(Location{File: 1, Line: 2, Col: 5}, 100)
	if !ok || string(got) != "entity;" {
		t.Errorf("Text tail = (%q, %v)", got, ok)
	}

	if _, ok := fs.Text(Location{File: 0, Line: 1, Col: 1}, 1); ok {
		t.Error("expected empty buffer lookup to fail")
	}
	var nilSet *FileSet
	if _, ok := nilSet.Text(Location{}, 1); ok {
		t.Error("expected nil FileSet lookup to fail")
	}
}

func TestLocationJSON(t *testing.T) {
	var loc Location
	if err := json.Unmarshal([]byte("[2, 10, 4]"), &loc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if loc != (Location{File: 2, Line: 10, Col: 4}) {
		t.Errorf("unexpected location %+v", loc)
	}
	out, err := json.Marshal(loc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != "[2,10,4]" {
		t.Errorf("marshal = %s", out)
	}

	if err := json.Unmarshal([]byte(`"2:10:4"`), &loc); err == nil {
		t.Error("expected error for string location")
	}
}

func TestParseOrigin(t *testing.T) {
	cases := map[string]Origin{
		"*libraries*":    OriginLibraries,
		"*command line*": OriginCommandLine,
		"*std_standard*": OriginStdStandard,
		"/tmp/top.vhd":   OriginFile,
	}
	for in, want := range cases {
		if got := ParseOrigin(in); got != want {
			t.Errorf("ParseOrigin(%q) = %v, want %v", in, got, want)
		}
	}
}
