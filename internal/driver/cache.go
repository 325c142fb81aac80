package driver

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"reflow/internal/format"
)

// Current schema version - increment when cachePayload format changes.
const cacheSchemaVersion uint16 = 1

// Digest is a SHA-256 cache key over source content and render options.
type Digest [32]byte

// Cache stores rendered output on disk keyed by content and options, so
// repeated runs over unchanged files skip the render entirely.
// Thread-safe for concurrent access.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

type cachePayload struct {
	Schema uint16

	// Render parameters, kept for validation on read.
	Mode        uint8
	IndentWidth int
	UseTabs     bool

	Output []byte
}

// OpenCache initializes and returns a disk cache at the standard location.
func OpenCache(app string) (*Cache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

// OpenCacheAt returns a disk cache rooted at an explicit directory.
func OpenCacheAt(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

// Key derives the cache key for content rendered in the given mode and options.
func Key(content []byte, mode Mode, opt format.Options) Digest {
	h := sha256.New()
	h.Write(content)

	var tail [8]byte
	tail[0] = uint8(mode)
	if opt.UseTabs {
		tail[1] = 1
	}
	binary.LittleEndian.PutUint32(tail[2:6], uint32(opt.IndentWidth)) // #nosec G115 -- indent widths are tiny
	h.Write(tail[:])

	var d Digest
	h.Sum(d[:0])
	return d
}

func (c *Cache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// Subdirectory keeps the cache root readable and easy to clear.
	return filepath.Join(c.dir, "res", hexKey+".mp")
}

// Put serializes and writes rendered output to the disk cache.
func (c *Cache) Put(key Digest, mode Mode, opt format.Options, output []byte) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(f.Name())
	}()

	payload := cachePayload{
		Schema:      cacheSchemaVersion,
		Mode:        uint8(mode),
		IndentWidth: opt.IndentWidth,
		UseTabs:     opt.UseTabs,
		Output:      output,
	}
	if err := msgpack.NewEncoder(f).Encode(&payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Atomic replace.
	return os.Rename(f.Name(), p)
}

// Get reads rendered output from the disk cache. A missing, corrupt, or
// schema-mismatched entry is a miss, never an error worth surfacing.
func (c *Cache) Get(key Digest, mode Mode, opt format.Options) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		return nil, false
	}
	defer func() {
		_ = f.Close()
	}()

	var payload cachePayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false
	}
	if payload.Schema != cacheSchemaVersion ||
		payload.Mode != uint8(mode) ||
		payload.IndentWidth != opt.IndentWidth ||
		payload.UseTabs != opt.UseTabs {
		return nil, false
	}
	return payload.Output, true
}

// DropAll invalidates the whole cache.
func (c *Cache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	err := os.RemoveAll(filepath.Join(c.dir, "res"))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
