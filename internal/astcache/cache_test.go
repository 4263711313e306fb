package astcache

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pierrec/lz4/v4"
	"github.com/vmihailenco/msgpack/v5"

	"vhdlast/internal/ast"
)

func loadStream(t *testing.T, stream string) *ast.Ast {
	t.Helper()
	a, err := ast.FromJSON(context.Background(), strings.NewReader(stream), ast.WithDumpPath(""))
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	return a
}

func testStream(t *testing.T) string {
	t.Helper()
	src := filepath.Join(t.TempDir(), "top.vhd")
	if err := os.WriteFile(src, []byte("entity Top is\nend;\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	lines := []string{
		fmt.Sprintf(`{"files": [{"source": %q, "start": 0, "end": 19}, {"source": "*libraries*", "start": 19, "end": 19}], "libraries": [3]}`, src),
		`{"error": {}}`,
		`{"library_declaration": {"identifier": "work", "design_files": [4]}}`,
		`{"design_file": {"design_units": [5]}}`,
		`{"design_unit": {"library_unit": 6, "design_file": 4}}`,
		`{"entity_declaration": {"id": 6, "identifier": ["top", null, [0, 1, 8]], "parent": 5}}`,
		`null`,
		`{"string_literal8": {"string8_id": "caf\u00e9"}}`,
		`{"indexed_name": {"prefix": 10, "index_list": "others", "type": 12}}`,
		`{"simple_name": {"identifier": "v", "named_entity": 2}}`,
		`{"procedure_declaration": {"identifier": "\"=\"", "implicit_definition": "IIR_PREDEFINED_INTEGER_EQUALITY"}}`,
		`{"range_expression": {"direction": "to", "left_limit": 8, "right_limit": 8}}`,
	}
	return strings.Join(lines, "\n") + "\n"
}

func TestPutGet(t *testing.T) {
	stream := testStream(t)
	a := loadStream(t, stream)

	c, err := Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	key := Sum([]byte(stream))
	if err := c.Put(key, a); err != nil {
		t.Fatalf("Put: %v", err)
	}

	b, ok, err := c.Get(context.Background(), key, ast.WithDumpPath(""))
	if err != nil || !ok {
		t.Fatalf("Get = %v, %v", ok, err)
	}
	if a.Len() != b.Len() {
		t.Fatalf("Len = %d, want %d", b.Len(), a.Len())
	}
	want, got := a.Arena().Slice(), b.Arena().Slice()
	for i := range want {
		if w, g := ast.DebugString(want[i]), ast.DebugString(got[i]); w != g {
			t.Errorf("slot %d:\n got %s\nwant %s", i, g, w)
		}
	}

	lib, ok := b.LookupLibrary("work")
	if !ok {
		t.Fatal("work library not indexed after restore")
	}
	name, id, err := b.SingleEntityDeclaration(lib)
	if err != nil || id != 6 {
		t.Fatalf("SingleEntityDeclaration = %d, %v", id, err)
	}
	if name.Original() != "Top" {
		t.Errorf("original spelling = %q, want %q", name.Original(), "Top")
	}
	if b.Files().Len() != 2 {
		t.Errorf("files = %d", b.Files().Len())
	}
	if f, _ := b.Files().Get(0); f.End != 19 {
		t.Errorf("file end = %d", f.End)
	}
}

func TestGetMiss(t *testing.T) {
	c, err := Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	_, ok, err := c.Get(context.Background(), Sum([]byte("nothing")))
	if ok || err != nil {
		t.Errorf("Get = %v, %v", ok, err)
	}

	var nilCache *Cache
	if err := nilCache.Put(Digest{}, nil); err != nil {
		t.Errorf("nil Put: %v", err)
	}
}

func TestStaleSchemaIsMiss(t *testing.T) {
	c, err := Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	key := Sum([]byte("old"))
	data, err := msgpack.Marshal(&payload{Schema: schemaVersion + 1, Meta: &ast.Metadata{}})
	if err != nil {
		t.Fatal(err)
	}
	var framed bytes.Buffer
	zw := lz4.NewWriter(&framed)
	if _, err := zw.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	path := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, framed.Bytes(), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, ok, err := c.Get(context.Background(), key); ok || err != nil {
		t.Errorf("Get = %v, %v", ok, err)
	}
}

func TestCorruptSnapshot(t *testing.T) {
	c, err := Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	key := Sum([]byte("bad"))
	path := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte{0xc1}, 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := c.Get(context.Background(), key); err == nil {
		t.Error("corrupt snapshot decoded")
	}
}

func TestDropAll(t *testing.T) {
	stream := testStream(t)
	a := loadStream(t, stream)
	c, err := Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	key := Sum([]byte(stream))
	if err := c.Put(key, a); err != nil {
		t.Fatal(err)
	}
	if err := c.DropAll(); err != nil {
		t.Fatalf("DropAll: %v", err)
	}
	if _, ok, _ := c.Get(context.Background(), key); ok {
		t.Error("entry survived DropAll")
	}
	if err := c.DropAll(); err != nil {
		t.Errorf("DropAll on empty cache: %v", err)
	}
}

func TestDefaultDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg")
	dir, err := DefaultDir("vhdlast")
	if err != nil || dir != filepath.Join("/tmp/xdg", "vhdlast") {
		t.Errorf("DefaultDir = %q, %v", dir, err)
	}
}
