package source

import (
	"encoding/json"
	"fmt"
)

type (
	// FileID is the position of a file in the metadata file list (0-based).
	FileID uint32 // просто индекс в списке files
	// Origin tells where the upstream tool took a source buffer from.
	Origin uint8
)

const (
	// OriginFile is a regular file on disk.
	OriginFile Origin = iota
	// OriginLibraries is the upstream's synthetic "*libraries*" buffer.
	OriginLibraries
	// OriginCommandLine is the synthetic "*command line*" buffer.
	OriginCommandLine
	// OriginStdStandard is the built-in STD.STANDARD package buffer.
	OriginStdStandard
)

var originNames = map[string]Origin{
	"*libraries*":    OriginLibraries,
	"*command line*": OriginCommandLine,
	"*std_standard*": OriginStdStandard,
}

// ParseOrigin classifies a metadata "source" value. Anything that is not a
// synthetic buffer name is a file path.
func ParseOrigin(s string) Origin {
	if o, ok := originNames[s]; ok {
		return o
	}
	return OriginFile
}

// String returns the metadata spelling of the origin.
func (o Origin) String() string {
	switch o {
	case OriginFile:
		return "file"
	case OriginLibraries:
		return "*libraries*"
	case OriginCommandLine:
		return "*command line*"
	case OriginStdStandard:
		return "*std_standard*"
	default:
		return "unknown"
	}
}

// File captures metadata and content for a single source buffer.
type File struct {
	ID      FileID
	Origin  Origin
	Path    string
	Start   uint64 // upstream buffer offsets, informational
	End     uint64
	Content []byte
	LineIdx []uint32
	Hash    [32]byte
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}

// Location points at a position in one of the metadata files.
// On the wire it is the triple [file, line, column].
type Location struct {
	File FileID
	Line uint32 // 1-based
	Col  uint32 // 1-based, in bytes
}

// UnmarshalJSON decodes the [file, line, column] triple.
func (l *Location) UnmarshalJSON(data []byte) error {
	var triple [3]uint32
	if err := json.Unmarshal(data, &triple); err != nil {
		return fmt.Errorf("location: %w", err)
	}
	*l = Location{File: FileID(triple[0]), Line: triple[1], Col: triple[2]}
	return nil
}

// MarshalJSON encodes the location back into its triple form.
func (l Location) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]uint32{uint32(l.File), l.Line, l.Col})
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d:%d", l.File, l.Line, l.Col)
}
