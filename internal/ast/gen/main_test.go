package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// The committed files must be byte for byte what go generate writes.
func TestGeneratedFilesUpToDate(t *testing.T) {
	for _, j := range jobs {
		t.Run(j.file, func(t *testing.T) {
			want, err := j.render()
			if err != nil {
				t.Fatal(err)
			}
			got, err := os.ReadFile(filepath.Join("..", j.file))
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(got, want) {
				t.Errorf("%s is stale; run go generate ./internal/ast", j.file)
			}
		})
	}
}

func TestSnake(t *testing.T) {
	tests := map[string]string{
		"Library":                  "library",
		"SimpleSignalAssignment":   "simple_signal_assignment",
		"PackageInstantiationDecl": "package_instantiation_decl",
		"ConcurrentStatement":      "concurrent_statement",
	}
	for in, want := range tests {
		if got := snake(in); got != want {
			t.Errorf("snake(%q) = %q, want %q", in, got, want)
		}
	}
	if lower1("Name") != "name" || lower1("") != "" {
		t.Error("lower1")
	}
}
