// Package loader reads AST streams from disk, one or many at a time,
// going through the snapshot cache when one is configured.
package loader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"vhdlast/internal/ast"
	"vhdlast/internal/astcache"
	"vhdlast/internal/trace"
)

// Request configures LoadAll.
type Request struct {
	Files    []string // "-" reads standard input
	BaseDir  string   // display names are relative to it
	Jobs     int      // concurrent loads; <= 0 means one per file
	Cache    *astcache.Cache
	Progress ProgressSink
	Options  []ast.Option
	Stdin    io.Reader
}

// Result is the outcome for one stream.
type Result struct {
	Path    string
	Name    string
	Ast     *ast.Ast
	Digest  astcache.Digest
	Size    int // stream length in bytes
	Cached  bool
	Err     error
	Timings Timings
}

var errNoFiles = errors.New("no AST streams given")

// LoadAll loads every stream of req. A stream that fails to load does not
// stop the others; its error is reported in its Result. The returned error
// is only set when ctx is canceled or the request is empty.
func LoadAll(ctx context.Context, req *Request) ([]Result, error) {
	if req == nil || len(req.Files) == 0 {
		return nil, errNoFiles
	}
	names := DisplayNames(req.Files, req.BaseDir)
	emitQueued(req.Progress, names)

	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeDriver, "load_all", trace.CurrentSpan(ctx)).
		WithExtra("files", fmt.Sprint(len(req.Files)))
	ctx = trace.WithSpan(ctx, span)

	results := make([]Result, len(req.Files))
	g, gctx := errgroup.WithContext(ctx)
	if req.Jobs > 0 {
		g.SetLimit(req.Jobs)
	}
	for i, path := range req.Files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = loadOne(gctx, req, path, names[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.End("canceled")
		return results, err
	}
	if err := ctx.Err(); err != nil {
		span.End("canceled")
		return results, err
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	span.WithExtra("failed", fmt.Sprint(failed)).End("")
	return results, nil
}

// Load reads and decodes a single stream.
func Load(ctx context.Context, path string, cache *astcache.Cache, opts ...ast.Option) (*ast.Ast, error) {
	r := loadOne(ctx, &Request{Cache: cache, Options: opts}, path, path)
	return r.Ast, r.Err
}

func loadOne(ctx context.Context, req *Request, path, name string) (res Result) {
	res = Result{Path: path, Name: name}
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeDriver, "load", trace.CurrentSpan(ctx)).WithExtra("file", name)
	ctx = trace.WithSpan(ctx, span)
	defer func() {
		if res.Err != nil {
			emit(req.Progress, name, "", StatusError, res.Err)
			span.End("error")
			return
		}
		emit(req.Progress, name, "", StatusDone, nil)
		span.WithExtra("cached", fmt.Sprint(res.Cached)).End("")
	}()

	stage := func(s Stage, fn func() error) error {
		emit(req.Progress, name, s, StatusWorking, nil)
		start := time.Now()
		err := fn()
		res.Timings.Set(s, time.Since(start))
		return err
	}

	var data []byte
	if err := stage(StageRead, func() (err error) {
		data, err = readStream(path, req.Stdin)
		return err
	}); err != nil {
		res.Err = err
		return res
	}
	res.Digest = astcache.Sum(data)
	res.Size = len(data)

	if req.Cache != nil {
		err := stage(StageCache, func() error {
			a, ok, err := req.Cache.Get(ctx, res.Digest, req.Options...)
			if ok {
				res.Ast, res.Cached = a, true
			}
			return err
		})
		if err != nil {
			// испорченный снимок не мешает загрузке
			trace.Warn(tracer, "cache", fmt.Sprintf("%s: %v", name, err))
		}
		if res.Cached {
			return res
		}
	}

	if err := stage(StageDecode, func() (err error) {
		res.Ast, err = ast.FromJSON(ctx, bytes.NewReader(data), req.Options...)
		return err
	}); err != nil {
		res.Err = fmt.Errorf("%s: %w", name, err)
		return res
	}

	if req.Cache != nil {
		if err := stage(StageStore, func() error { return req.Cache.Put(res.Digest, res.Ast) }); err != nil {
			trace.Warn(tracer, "cache", fmt.Sprintf("%s: %v", name, err))
		}
	}
	return res
}

func readStream(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		if stdin == nil {
			stdin = os.Stdin
		}
		return io.ReadAll(stdin)
	}
	// #nosec G304 -- path is given by the user
	return os.ReadFile(path)
}
