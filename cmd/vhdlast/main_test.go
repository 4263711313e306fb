package main

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

const designStream = `{"files": [], "libraries": [3, 12]}
{"error": {}}
{"library_declaration": {"identifier": "work", "design_files": [4]}}
{"design_file": {"design_units": [5, 7, 10]}}
{"design_unit": {"library_unit": 6, "design_file": 4}}
{"entity_declaration": {"id": 6, "identifier": ["top", "Top"], "parent": 5}}
{"design_unit": {"library_unit": 8, "design_file": 4}}
{"architecture_body": {"identifier": "rtl", "entity_name": 9, "parent": 7}}
{"simple_name": {"identifier": "top", "named_entity": 6}}
{"design_unit": {"library_unit": 11, "design_file": 4}}
{"package_declaration": {"id": 11, "identifier": "pkg", "parent": 10}}
{"library_declaration": {"identifier": "std"}}
`

// workspace creates a temp dir with the design stream and makes it the
// working directory, so no vhdlast.toml from outside is picked up.
func workspace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, filepath.Join(dir, "design.ast"), designStream)
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd, finish := newRootCmd()
	defer finish()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--color", "off"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

// hasRow reports whether some line of a rendered table holds exactly cells.
func hasRow(out string, cells ...string) bool {
	for line := range strings.Lines(out) {
		if slices.Equal(strings.Fields(line), cells) {
			return true
		}
	}
	return false
}

func TestLibrariesCommand(t *testing.T) {
	workspace(t)

	out, err := execute(t, "libraries", "design.ast")
	if err != nil {
		t.Fatalf("libraries: %v", err)
	}
	if !hasRow(out, "work", "#3", "1", "1") || !hasRow(out, "std", "#12", "0", "0") {
		t.Errorf("output:\n%s", out)
	}

	out, err = execute(t, "libraries", "--single", "design.ast")
	if err != nil || strings.TrimSpace(out) != "work" {
		t.Errorf("--single = %q, %v", out, err)
	}
}

func TestLibrariesSingleHonoursConfig(t *testing.T) {
	dir := workspace(t)
	writeFile(t, filepath.Join(dir, configFileName), "[index]\nexclude_libraries = []\n")

	if _, err := execute(t, "libraries", "--single", "design.ast"); err == nil {
		t.Error("two libraries should be ambiguous without exclusions")
	}
}

func TestLookupEntity(t *testing.T) {
	workspace(t)

	out, err := execute(t, "lookup", "entity", "design.ast", "work", "TOP")
	if err != nil {
		t.Fatalf("lookup entity: %v", err)
	}
	if !strings.Contains(out, "entity Top #6") || !strings.Contains(out, "  architecture rtl #8") {
		t.Errorf("output:\n%s", out)
	}

	out, err = execute(t, "lookup", "entity", "design.ast", "-")
	if err != nil || !strings.Contains(out, "entity Top #6") {
		t.Errorf("single entity = %q, %v", out, err)
	}

	if _, err := execute(t, "lookup", "entity", "design.ast", "work", "nope"); err == nil {
		t.Error("missing entity found")
	}
	if _, err := execute(t, "lookup", "entity", "design.ast", "lib2", "top"); err == nil {
		t.Error("missing library found")
	}
}

func TestLookupPackage(t *testing.T) {
	workspace(t)

	out, err := execute(t, "lookup", "package", "design.ast", "work", "pkg")
	if err != nil || !strings.Contains(out, "package pkg #11") {
		t.Errorf("lookup package = %q, %v", out, err)
	}
	if _, err := execute(t, "lookup", "package", "design.ast", "std", "pkg"); err == nil {
		t.Error("package found in the wrong library")
	}
}

func TestDumpCommand(t *testing.T) {
	dir := workspace(t)

	out, err := execute(t, "dump", "design.ast")
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	if !strings.Contains(out, "     0: Empty\n") || !strings.Contains(out, "     2: Error\n") {
		t.Errorf("output:\n%s", out)
	}

	dumpPath := filepath.Join(dir, "arena.txt")
	if _, err := execute(t, "dump", "--dump", dumpPath, "design.ast"); err != nil {
		t.Fatalf("dump --dump: %v", err)
	}
	data, err := os.ReadFile(dumpPath)
	if err != nil || !strings.Contains(string(data), "     2: Error") {
		t.Errorf("dump file = %q, %v", data, err)
	}
}

func TestCheckCommand(t *testing.T) {
	dir := workspace(t)
	writeFile(t, filepath.Join(dir, "bad.ast"), "{\"files\": []}\n{\"bogus\": {}}\n")

	out, err := execute(t, "check", "--ui", "off", "design.ast", "bad.ast")
	if err == nil || !strings.Contains(err.Error(), "1 of 2 streams failed") {
		t.Errorf("err = %v", err)
	}
	if !strings.Contains(out, "ok   design.ast: 13 slots, 2 libraries, ") || !strings.Contains(out, " B, decoded in ") {
		t.Errorf("output:\n%s", out)
	}
	if !strings.Contains(out, "FAIL bad.ast: ") {
		t.Errorf("output:\n%s", out)
	}

	out, err = execute(t, "--quiet", "check", "--ui", "off", "design.ast")
	if err != nil || out != "" {
		t.Errorf("quiet check = %q, %v", out, err)
	}
}

func TestCheckUsesCache(t *testing.T) {
	dir := workspace(t)
	writeFile(t, filepath.Join(dir, configFileName), "[cache]\nenabled = true\ndir = \"cache\"\n")

	if out, err := execute(t, "check", "--ui", "off", "design.ast"); err != nil || !strings.Contains(out, "decoded") {
		t.Fatalf("first check = %q, %v", out, err)
	}
	out, err := execute(t, "check", "--ui", "off", "design.ast")
	if err != nil || !strings.Contains(out, "cached") {
		t.Errorf("second check = %q, %v", out, err)
	}
	out, err = execute(t, "check", "--ui", "off", "--no-cache", "design.ast")
	if err != nil || !strings.Contains(out, "decoded") {
		t.Errorf("--no-cache check = %q, %v", out, err)
	}
}

func TestKindsCommand(t *testing.T) {
	out, err := execute(t, "kinds")
	if err != nil {
		t.Fatalf("kinds: %v", err)
	}
	if !strings.Contains(out, "SignalDeclaration") || !strings.Contains(out, "signal_declaration") {
		t.Errorf("output:\n%s", out)
	}
	out, err = execute(t, "kinds", "--groups")
	if err != nil || !strings.Contains(out, "NamedEntity") {
		t.Errorf("kinds --groups = %q, %v", out, err)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version", "--format", "json", "--full")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, `"tool": "vhdlast"`) || !strings.Contains(out, `"git_commit": "unknown"`) {
		t.Errorf("output:\n%s", out)
	}
	if _, err := execute(t, "version", "--format", "yaml"); err == nil {
		t.Error("unsupported format accepted")
	}
}

func TestProfileFlags(t *testing.T) {
	dir := workspace(t)
	cpu := filepath.Join(dir, "cpu.pprof")
	mem := filepath.Join(dir, "mem.pprof")
	if _, err := execute(t, "--cpu-profile", cpu, "--mem-profile", mem, "libraries", "design.ast"); err != nil {
		t.Fatalf("libraries: %v", err)
	}
	for _, path := range []string{cpu, mem} {
		if info, err := os.Stat(path); err != nil || info.Size() == 0 {
			t.Errorf("%s: %v", filepath.Base(path), err)
		}
	}
}

func TestTraceFlag(t *testing.T) {
	dir := workspace(t)
	tracePath := filepath.Join(dir, "trace.ndjson")
	if _, err := execute(t, "--trace", tracePath, "--trace-level", "detail", "libraries", "design.ast"); err != nil {
		t.Fatalf("libraries: %v", err)
	}
	data, err := os.ReadFile(tracePath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "library:work") {
		t.Errorf("trace does not mention the indexed library:\n%s", data)
	}
}

func TestInvalidColorFlag(t *testing.T) {
	cmd, finish := newRootCmd()
	defer finish()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--color", "sometimes", "kinds"})
	if err := cmd.Execute(); err == nil {
		t.Error("invalid --color accepted")
	}
}
