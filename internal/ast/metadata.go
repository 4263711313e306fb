package ast

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"vhdlast/internal/source"
	"vhdlast/internal/trace"
)

//go:embed metadata.schema.json
var metadataSchemaJSON []byte

var metadataSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewBytesLoader(metadataSchemaJSON))
})

// Metadata is the first line of a stream.
type Metadata struct {
	Files     []FileMetadata    `json:"files"`
	Libraries []NodeID[Library] `json:"libraries"`
}

// FileMetadata describes one source buffer. Source is a path or one of the
// synthetic buffer names, see source.ParseOrigin.
type FileMetadata struct {
	Source string `json:"source"`
	Start  uint64 `json:"start"`
	End    uint64 `json:"end"`
}

// ParseMetadata validates the metadata line against the embedded schema
// and decodes it.
func ParseMetadata(line []byte) (*Metadata, error) {
	schema, err := metadataSchema()
	if err != nil {
		return nil, fmt.Errorf("metadata schema: %w", err)
	}
	result, err := schema.Validate(gojsonschema.NewBytesLoader(line))
	if err != nil {
		return nil, fmt.Errorf("could not parse AST metadata: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, verr := range result.Errors() {
			msgs = append(msgs, fmt.Sprintf("%s: %s", verr.Field(), verr.Description()))
		}
		return nil, fmt.Errorf("could not parse AST metadata: %s", strings.Join(msgs, "; "))
	}

	var meta Metadata
	if err := json.Unmarshal(line, &meta); err != nil {
		return nil, fmt.Errorf("could not parse AST metadata: %w", err)
	}
	return &meta, nil
}

// FileSet reads the listed files into a fresh set. Synthetic buffers are
// empty. A file that cannot be read is traced and kept empty so that file
// indexes stay aligned with the metadata.
func (m *Metadata) FileSet(ctx context.Context, readFile func(string) ([]byte, error)) *source.FileSet {
	if readFile == nil {
		readFile = os.ReadFile
	}
	tracer := trace.FromContext(ctx)
	files := source.NewFileSet()
	for _, fm := range m.Files {
		origin := source.ParseOrigin(fm.Source)
		var content []byte
		if origin == source.OriginFile {
			data, err := readFile(fm.Source)
			if err != nil {
				trace.Warn(tracer, "source_file", fmt.Sprintf("failed to read source file %s: %v", fm.Source, err))
			} else {
				content = data
			}
		}
		id := files.Add(origin, fm.Source, content)
		if f, ok := files.Get(id); ok {
			f.Start, f.End = fm.Start, fm.End
		}
	}
	return files
}
