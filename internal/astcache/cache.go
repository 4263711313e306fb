// Package astcache keeps decoded arenas on disk so that a stream seen
// before can be restored without parsing its JSON again.
package astcache

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pierrec/lz4/v4"
	"github.com/vmihailenco/msgpack/v5"

	"vhdlast/internal/ast"
	"vhdlast/internal/trace"
)

// Current schema version - increment when the payload format changes
const schemaVersion uint16 = 3

// Digest is the SHA-256 of a whole AST stream.
type Digest [32]byte

// Sum hashes a stream.
func Sum(stream []byte) Digest { return sha256.Sum256(stream) }

func (d Digest) String() string { return hex.EncodeToString(d[:]) }

// IsZero reports whether d was never set.
func (d Digest) IsZero() bool { return d == Digest{} }

// Cache stores arena snapshots by stream digest. Snapshots are msgpack
// compressed with an LZ4 frame.
// Thread-safe for concurrent access.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

// payload is the on-disk form of one arena.
type payload struct {
	Schema uint16
	Meta   *ast.Metadata
	Slots  []slot
}

// slot is one arena position; an empty Tag is the empty slot.
type slot struct {
	Tag  string
	Node msgpack.RawMessage
}

// DefaultDir returns $XDG_CACHE_HOME/<app>, falling back to ~/.cache/<app>.
func DefaultDir(app string) (string, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".cache")
	}
	return filepath.Join(base, app), nil
}

// Open creates dir if needed and returns a cache rooted there.
func Open(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

// Dir is the cache root.
func (c *Cache) Dir() string { return c.dir }

func (c *Cache) pathFor(key Digest) string {
	// подкаталог "arenas", чтобы DropAll не трогал чужое
	return filepath.Join(c.dir, "arenas", key.String()+".mp")
}

// Put snapshots a loaded Ast under key.
func (c *Cache) Put(key Digest, a *ast.Ast) error {
	if c == nil {
		return nil
	}
	p, err := snapshot(a)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	path := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(path), "tmp-*")
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	zw := lz4.NewWriter(f)
	enc := msgpack.NewEncoder(zw)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("compress snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	if err := os.Rename(f.Name(), path); err != nil {
		return err
	}
	committed = true
	return nil
}

// Get restores the Ast stored under key. A missing entry or one written
// by another schema version is a miss, not an error.
func (c *Cache) Get(ctx context.Context, key Digest, opts ...ast.Option) (*ast.Ast, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	tracer := trace.FromContext(ctx)

	c.mu.RLock()
	data, err := os.ReadFile(c.pathFor(key))
	c.mu.RUnlock()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var p payload
	dec := msgpack.NewDecoder(lz4.NewReader(bytes.NewReader(data)))
	dec.SetCustomStructTag("json")
	if err := dec.Decode(&p); err != nil {
		return nil, false, fmt.Errorf("decode snapshot %s: %w", key, err)
	}
	if p.Schema != schemaVersion || p.Meta == nil {
		trace.Warn(tracer, "cache", fmt.Sprintf("stale snapshot %s (schema %d)", key, p.Schema))
		return nil, false, nil
	}

	span := trace.Begin(tracer, trace.ScopePass, "restore", trace.CurrentSpan(ctx))
	slots, err := restore(p.Slots)
	if err != nil {
		span.End("error")
		return nil, false, fmt.Errorf("restore snapshot %s: %w", key, err)
	}
	span.WithExtra("slots", fmt.Sprint(len(slots))).End("")

	a, err := ast.FromNodes(ctx, p.Meta, slots, opts...)
	if err != nil {
		return nil, false, err
	}
	return a, true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *Cache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	dir := filepath.Join(c.dir, "arenas")
	old := dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}

func snapshot(a *ast.Ast) (*payload, error) {
	nodes := a.Arena().Slice()
	p := &payload{
		Schema: schemaVersion,
		Meta:   a.Metadata(),
		Slots:  make([]slot, len(nodes)),
	}
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	for i, n := range nodes {
		if n == nil {
			continue
		}
		buf.Reset()
		if err := enc.Encode(n); err != nil {
			return nil, fmt.Errorf("slot %d (%s): %w", i, n.Kind(), err)
		}
		p.Slots[i] = slot{Tag: n.Kind().Tag(), Node: bytes.Clone(buf.Bytes())}
	}
	return p, nil
}

func restore(slots []slot) ([]ast.Node, error) {
	nodes := make([]ast.Node, len(slots))
	for i, s := range slots {
		if s.Tag == "" {
			continue
		}
		kind, ok := ast.KindByTag(s.Tag)
		if !ok {
			return nil, fmt.Errorf("slot %d: unknown node tag %q", i, s.Tag)
		}
		n := kind.New()
		dec := msgpack.NewDecoder(bytes.NewReader(s.Node))
		dec.SetCustomStructTag("json")
		if err := dec.Decode(n); err != nil {
			return nil, fmt.Errorf("slot %d (%s): %w", i, kind, err)
		}
		nodes[i] = n
	}
	return nodes, nil
}
