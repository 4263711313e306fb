package source

import (
	"crypto/sha256"
	"fmt"
	"os"

	"fortio.org/safecast"
)

// FileSet holds the source buffers listed in the metadata line of an AST
// stream. It is the construction context used to restore the original
// spelling of identifiers; one FileSet belongs to exactly one load.
type FileSet struct {
	files []File
}

// NewFileSet creates a new empty FileSet.
func NewFileSet() *FileSet {
	return &FileSet{
		files: make([]File, 0),
	}
}

// Add stores a buffer, computes LineIdx and Hash, and returns its FileID.
// IDs are assigned in insertion order, matching the metadata list.
func (fileSet *FileSet) Add(origin Origin, path string, content []byte) FileID {
	lenFiles, err := safecast.Conv[uint32](len(fileSet.files))
	if err != nil {
		panic(fmt.Errorf("len files overflow: %w", err))
	}
	id := FileID(lenFiles)
	fileSet.files = append(fileSet.files, File{
		ID:      id,
		Origin:  origin,
		Path:    path,
		Content: content,
		LineIdx: buildLineIndex(content),
		Hash:    sha256.Sum256(content),
	})
	return id
}

// Load reads a file from disk and adds it. The content is kept byte for
// byte: columns reported upstream count raw bytes.
func (fileSet *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path comes from the AST metadata
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return fileSet.Add(OriginFile, path, content), nil
}

// Get returns the file for the given ID.
func (fileSet *FileSet) Get(id FileID) (*File, bool) {
	if int(id) >= len(fileSet.files) {
		return nil, false
	}
	return &fileSet.files[id], true
}

// Len returns the number of files.
func (fileSet *FileSet) Len() int {
	if fileSet == nil {
		return 0
	}
	return len(fileSet.files)
}

// Files returns the stored files. READONLY
func (fileSet *FileSet) Files() []File {
	if fileSet == nil {
		return nil
	}
	return fileSet.files
}

// Text returns up to n bytes of content starting at loc.
// ok is false when the location does not exist in the set.
func (fileSet *FileSet) Text(loc Location, n int) ([]byte, bool) {
	if fileSet == nil || n < 0 {
		return nil, false
	}
	f, ok := fileSet.Get(loc.File)
	if !ok {
		return nil, false
	}
	off, ok := f.Offset(loc.Line, loc.Col)
	if !ok {
		return nil, false
	}
	end := int(off) + n
	if end > len(f.Content) {
		end = len(f.Content)
	}
	return f.Content[off:end], true
}

// Offset converts a 1-based line and column into a byte offset.
func (f *File) Offset(line, col uint32) (uint32, bool) {
	if line == 0 || col == 0 {
		return 0, false
	}
	lenContent, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		return 0, false
	}

	var start uint32
	switch {
	case line == 1:
		start = 0
	case int(line-2) < len(f.LineIdx):
		start = f.LineIdx[line-2] + 1
	default:
		return 0, false
	}

	off := start + col - 1
	if off >= lenContent {
		return 0, false
	}
	// колонка не должна вылезать за конец строки
	if int(line-1) < len(f.LineIdx) && off > f.LineIdx[line-1] {
		return 0, false
	}
	return off, true
}

// Position converts a byte offset into a line and column.
func (f *File) Position(off uint32) LineCol {
	return toLineCol(f.LineIdx, off)
}

// GetLine returns the line with the given 1-based number, without the
// trailing newline. Out of range lines yield "".
func (f *File) GetLine(lineNum uint32) string {
	if lineNum == 0 {
		return ""
	}
	lenContent, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("content length overflow: %w", err))
	}

	var start, end uint32
	switch {
	case lineNum == 1:
		start = 0
	case int(lineNum-2) < len(f.LineIdx):
		start = f.LineIdx[lineNum-2] + 1
	default:
		return ""
	}

	if int(lineNum-1) < len(f.LineIdx) {
		end = f.LineIdx[lineNum-1]
	} else {
		end = lenContent
	}
	if start >= lenContent {
		return ""
	}
	return string(f.Content[start:end])
}
