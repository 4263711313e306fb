package ast

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"vhdlast/internal/source"
	"vhdlast/internal/trace"
)

// DumpEnv names the environment variable that enables the diagnostic dump
// when no dump path is passed explicitly.
const DumpEnv = "VHDLAST_DUMP_AST"

type loadOptions struct {
	dumpPath string
	readFile func(string) ([]byte, error)
	capHint  uint
}

// Option configures FromJSON and FromNodes.
type Option func(*loadOptions)

// WithDumpPath writes every arena slot to path after decoding. An empty
// path disables the dump, overriding DumpEnv.
func WithDumpPath(path string) Option {
	return func(o *loadOptions) { o.dumpPath = path }
}

// WithReadFile replaces os.ReadFile for the source files of the metadata.
func WithReadFile(readFile func(string) ([]byte, error)) Option {
	return func(o *loadOptions) { o.readFile = readFile }
}

// WithCapacityHint preallocates room for n nodes.
func WithCapacityHint(n uint) Option {
	return func(o *loadOptions) { o.capHint = n }
}

func newLoadOptions(opts []Option) loadOptions {
	o := loadOptions{
		dumpPath: os.Getenv(DumpEnv),
		readFile: os.ReadFile,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// FromJSON builds an Ast from a line-oriented stream: the metadata line,
// then one node per line. A blank line or the end of input ends the stream.
// Any malformed line aborts the load with a *ParseError.
//
// The tracer and parent span are taken from ctx. Cancellation is checked
// between lines.
func FromJSON(ctx context.Context, r io.Reader, opts ...Option) (*Ast, error) {
	o := newLoadOptions(opts)
	tracer := trace.FromContext(ctx)
	parent := trace.CurrentSpan(ctx)

	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReaderSize(r, 1<<16)
	}

	span := trace.Begin(tracer, trace.ScopePass, "metadata", parent)
	line, err := readLine(br)
	if err != nil {
		span.End("error")
		return nil, fmt.Errorf("read metadata: %w", err)
	}
	meta, err := ParseMetadata(line)
	if err != nil {
		span.End("error")
		return nil, &ParseError{Line: 1, Text: string(line), Err: err}
	}
	files := meta.FileSet(ctx, o.readFile)
	span.WithExtra("files", fmt.Sprint(files.Len())).
		WithExtra("libraries", fmt.Sprint(len(meta.Libraries))).
		End("")

	span = trace.Begin(tracer, trace.ScopePass, "decode", parent)
	arena := NewArena(o.capHint)
	debug := tracer.Level().ShouldEmit(trace.ScopeNode)
	for lineNo := 2; ; lineNo++ {
		if err := ctx.Err(); err != nil {
			span.End("canceled")
			return nil, err
		}
		line, err := readLine(br)
		if err != nil {
			span.End("error")
			return nil, fmt.Errorf("read line %d: %w", lineNo, err)
		}
		if len(line) == 0 {
			break
		}
		n, err := DecodeNode(line, files)
		if err != nil {
			span.End("error")
			return nil, &ParseError{Line: lineNo, Text: string(line), Err: err}
		}
		id := arena.Allocate(n)
		if debug {
			trace.Point(tracer, trace.ScopeNode, "node", fmt.Sprintf("#%d %s", id, nodeKindName(n)))
		}
	}
	span.WithExtra("slots", fmt.Sprint(arena.Len())).End("")

	return build(ctx, arena, meta.Libraries, files, o)
}

var errReservedSlots = errors.New("slots must start with the two reserved empty slots")

// FromNodes builds an Ast around already decoded slots, e.g. a cached
// snapshot. slots must include the two reserved empty slots.
func FromNodes(ctx context.Context, meta *Metadata, slots []Node, opts ...Option) (*Ast, error) {
	if len(slots) < 2 || slots[0] != nil || slots[1] != nil {
		return nil, errReservedSlots
	}
	o := newLoadOptions(opts)
	arena := &Arena{nodes: slots}
	files := meta.FileSet(ctx, o.readFile)
	return build(ctx, arena, meta.Libraries, files, o)
}

func build(ctx context.Context, arena *Arena, roots []NodeID[Library], files *source.FileSet, o loadOptions) (*Ast, error) {
	tracer := trace.FromContext(ctx)

	a := &Ast{
		arena: arena,
		files: files,
		roots: roots,
	}
	if o.dumpPath != "" {
		if err := a.dumpToFile(o.dumpPath); err != nil {
			return nil, err
		}
	}
	if err := a.buildIndexes(ctx); err != nil {
		return nil, err
	}
	if _, err := ErrorGlobalID.TryGet(a); err != nil {
		trace.Warn(tracer, "global_error_node", err.Error())
	}
	return a, nil
}

// readLine returns the next line without surrounding whitespace. At the end
// of input it returns an empty line.
func readLine(br *bufio.Reader) ([]byte, error) {
	line, err := br.ReadBytes('\n')
	if err != nil && err != io.EOF {
		return nil, err
	}
	return bytes.TrimSpace(line), nil
}
