package ast

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"vhdlast/internal/ident"
	"vhdlast/internal/trace"
)

func TestFromJSONPackageSlot(t *testing.T) {
	// line k of the node stream lands in slot k+1
	lines := []string{
		`{"files": [], "libraries": [3]}`,
		`null`,
		`{"library_declaration": {"identifier": "work", "design_files": [4]}}`,
		`{"design_file": {"design_units": [5]}}`,
		`{"design_unit": {"library_unit": 6, "design_file": 4}}`,
		`{"package_declaration": {"id": 6, "identifier": "foo", "parent": 5}}`,
	}
	a := mustLoad(t, lines)

	lib, ok := a.LookupLibrary("work")
	if !ok {
		t.Fatal("library work not indexed")
	}
	pkg, ok := a.LookupPackageDeclaration(lib, ident.NewNormalized("foo"))
	if !ok {
		t.Fatal("package foo not indexed")
	}
	if k := len(lines) - 1; uint32(pkg) != uint32(k+1) {
		t.Errorf("package slot = %d, want %d", pkg, k+1)
	}
	if a.Len() != 7 {
		t.Errorf("Len = %d, want 7", a.Len())
	}
}

func TestFromJSONStopsAtBlankLine(t *testing.T) {
	input := joinLines(designStream...) + "\n" + `{"garbage"` + "\n"
	a, err := FromJSON(context.Background(), strings.NewReader(input), WithDumpPath(""))
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	if got, want := int(a.Len()), len(designStream)+1; got != want {
		t.Errorf("Len = %d, want %d", got, want)
	}
}

func TestFromJSONWithoutTrailingNewline(t *testing.T) {
	input := strings.Join(designStream, "\n")
	a, err := FromJSON(context.Background(), strings.NewReader(input), WithDumpPath(""))
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	if got, want := int(a.Len()), len(designStream)+1; got != want {
		t.Errorf("Len = %d, want %d", got, want)
	}
}

func TestFromJSONParseErrorLine(t *testing.T) {
	lines := []string{
		`{"files": [], "libraries": []}`,
		`{"error": {}}`,
		`{"simple_name": {"identifier": 12}}`,
	}
	_, err := FromJSON(context.Background(), strings.NewReader(joinLines(lines...)), WithDumpPath(""))
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want *ParseError", err)
	}
	if perr.Line != 3 || perr.Text != lines[2] {
		t.Errorf("ParseError line %d text %q", perr.Line, perr.Text)
	}
	if !strings.HasPrefix(err.Error(), "parse error in line 3: ") {
		t.Errorf("message = %q", err.Error())
	}
}

func TestFromJSONMissingFieldIsParseError(t *testing.T) {
	lines := []string{
		`{"files": [], "libraries": []}`,
		`{"error": {}}`,
		`{"integer_literal": {"value": 1}}`,
		`{"signal_declaration": {"identifier": "s"}}`,
	}
	_, err := FromJSON(context.Background(), strings.NewReader(joinLines(lines...)), WithDumpPath(""))
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want *ParseError", err)
	}
	if perr.Line != 4 || !strings.Contains(err.Error(), `missing field "type"`) {
		t.Errorf("err = %v in line %d", err, perr.Line)
	}
}

func TestFromJSONMetadataErrors(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"not json", `{files`, "could not parse AST metadata"},
		{"library zero", `{"files": [], "libraries": [0]}`, "libraries.0"},
		{"missing end", `{"files": [{"source": "a.vhd", "start": 0}], "libraries": []}`, "end"},
		{"wrong type", `{"files": "x"}`, "files"},
		{"empty", ``, "could not parse AST metadata"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromJSON(context.Background(), strings.NewReader(tt.line+"\n"), WithDumpPath(""))
			var perr *ParseError
			if !errors.As(err, &perr) || perr.Line != 1 {
				t.Fatalf("err = %v, want ParseError in line 1", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestFromJSONRootMustBeLibrary(t *testing.T) {
	lines := []string{`{"files": [], "libraries": [2]}`, `{"error": {}}`}
	_, err := FromJSON(context.Background(), strings.NewReader(joinLines(lines...)), WithDumpPath(""))
	if !errors.Is(err, ErrWrongType) {
		t.Fatalf("err = %v, want wrong type", err)
	}
}

func TestFromJSONCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := FromJSON(ctx, strings.NewReader(joinLines(designStream...)), WithDumpPath(""))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestFromJSONWarnsWithoutErrorNode(t *testing.T) {
	ring := trace.NewRingTracer(64, trace.LevelError)
	ctx := trace.WithTracer(context.Background(), ring)
	lines := []string{`{"files": [{"source": "/nonexistent/x.vhd", "start": 0, "end": 0}], "libraries": []}`, `null`}
	a, err := FromJSON(ctx, strings.NewReader(joinLines(lines...)), WithDumpPath(""))
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	if a.Files().Len() != 1 {
		t.Errorf("files = %d, want 1", a.Files().Len())
	}

	var names []string
	for _, ev := range ring.Snapshot() {
		if ev.Kind == trace.KindWarning {
			names = append(names, ev.Name)
		}
	}
	if strings.Join(names, ",") != "source_file,global_error_node" {
		t.Errorf("warnings = %v", names)
	}
}

func TestFromJSONReadsSourceFiles(t *testing.T) {
	lines := []string{
		`{"files": [{"source": "*std_standard*", "start": 0, "end": 0}, {"source": "top.vhd", "start": 0, "end": 20}], "libraries": [3]}`,
		`{"error": {}}`,
		`{"library_declaration": {"identifier": ["work", null, [1, 1, 9]]}}`,
	}
	readFile := func(path string) ([]byte, error) {
		if path != "top.vhd" {
			t.Errorf("read %q", path)
		}
		return []byte("library WORK;\n"), nil
	}
	a := mustLoad(t, lines, WithReadFile(readFile))
	lib := NodeID[Library](3).Get(a)
	if got := lib.Identifier.Original(); got != "WORK" {
		t.Errorf("original = %q, want WORK", got)
	}
	if f, ok := a.Files().Get(1); !ok || f.End != 20 {
		t.Errorf("file 1 = %+v", f)
	}
}

func TestFromJSONDump(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ast.dump")
	a := mustLoad(t, designStream, WithDumpPath(path))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read dump: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	if len(lines) != int(a.Len()) {
		t.Fatalf("dump has %d lines, want %d", len(lines), a.Len())
	}
	if lines[0] != "     0: Empty" {
		t.Errorf("line 0 = %q", lines[0])
	}
	if want := `     3: Library { Identifier: "work", DesignFiles: [4] }`; lines[3] != want {
		t.Errorf("line 3 = %q, want %q", lines[3], want)
	}
}

func TestFromJSONDumpEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.dump")
	t.Setenv(DumpEnv, path)
	if _, err := FromJSON(context.Background(), strings.NewReader(joinLines(designStream...))); err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("dump not written: %v", err)
	}
}

func TestFromNodes(t *testing.T) {
	a := mustLoad(t, designStream)
	meta := &Metadata{Libraries: a.Roots()}

	b, err := FromNodes(context.Background(), meta, a.Arena().Slice(), WithDumpPath(""))
	if err != nil {
		t.Fatalf("FromNodes: %v", err)
	}
	if _, ok := b.LookupLibrary("work"); !ok {
		t.Error("library work not indexed")
	}
	if _, err := FromNodes(context.Background(), meta, []Node{nil}); err == nil {
		t.Error("FromNodes accepted a slot list without reserved slots")
	}
}
