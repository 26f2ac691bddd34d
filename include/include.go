// Package include implements OVER's file-inclusion engine (§4.5): loading
// referenced files, detecting cyclic includes, and caching parsed results
// keyed by canonical path so that the same file included from multiple
// places is only parsed once per Manager. It knows nothing about OVER
// syntax itself — the parser package supplies the computation that turns
// loaded bytes into a Value, via Slot.Do — so there is no import cycle
// between include and parser.
package include

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/klauspost/readahead"
	"github.com/zeebo/xxh3"

	"github.com/m-cat/over/errs"
	"github.com/m-cat/over/log"
	"github.com/m-cat/over/value"
)

// Loader resolves an include path (as written in source, possibly
// relative to the including file) to its canonical path and content.
type Loader interface {
	Load(ctx context.Context, fromFile, path string) (canonical string, data []byte, err error)
}

// OSLoader loads includes from the local filesystem, reading each file in
// full through a readahead reader before returning it.
type OSLoader struct{}

// Load resolves path relative to the directory containing fromFile (or as
// given, if fromFile is empty — the top-level parse).
func (OSLoader) Load(ctx context.Context, fromFile, path string) (string, []byte, error) {
	full := path
	if fromFile != "" && !filepath.IsAbs(path) {
		full = filepath.Join(filepath.Dir(fromFile), path)
	}

	canonical, err := filepath.Abs(full)
	if err != nil {
		return "", nil, errs.ErrIncludeIO.Wrap(err)
	}

	f, err := os.Open(canonical)
	if err != nil {
		return "", nil, errs.ErrIncludeNotFound.Wrap(err).
			With(slog.String("path", canonical))
	}
	defer f.Close()

	ra := readahead.NewReader(f)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return "", nil, errs.ErrIncludeIO.Wrap(err).
			With(slog.String("path", canonical))
	}

	_ = ctx

	return canonical, data, nil
}

// Slot is a Manager's memoized outcome for one canonical path. The caller
// supplies the computation (parsing the loaded bytes according to the
// include's kind) the first time the slot is touched; later Acquires of
// the same path reuse the cached result without recomputing.
type Slot struct {
	once sync.Once
	val  value.Value
	err  error
}

// Do runs f exactly once for this slot and returns its (cached) result.
func (s *Slot) Do(f func() (value.Value, error)) (value.Value, error) {
	s.once.Do(func() {
		s.val, s.err = f()
	})

	return s.val, s.err
}

// Manager tracks the active include stack for cycle detection and caches
// results per canonical path for the lifetime of a single top-level Parse
// call.
type Manager struct {
	Loader   Loader
	MaxDepth int
	Logger   log.Logger

	mu    sync.Mutex
	stack []string
	cache sync.Map // canonical path -> *Slot
}

// NewManager builds a Manager with the given loader. A zero-value Logger is
// a silent no-op, so callers that don't care about include diagnostics can
// pass one without further ceremony.
func NewManager(loader Loader, maxDepth int, logger log.Logger) *Manager {
	return &Manager{Loader: loader, MaxDepth: maxDepth, Logger: logger}
}

// Acquire resolves path (relative to fromFile), pushes it onto the active
// include stack for cycle detection, and returns its content plus the
// cache slot to compute (or reuse) its parsed Value in. The caller must
// call Release exactly once after it is done with this include, whether
// or not it succeeded.
func (m *Manager) Acquire(ctx context.Context, fromFile, path string) (canonical string, data []byte, slot *Slot, err error) {
	canonical, data, err = m.Loader.Load(ctx, fromFile, path)
	if err != nil {
		return "", nil, nil, err
	}

	m.mu.Lock()

	if len(m.stack) >= m.MaxDepth {
		m.mu.Unlock()

		return "", nil, nil, errs.ErrMaxDepthExceeded.With(slog.Int("depth", len(m.stack)))
	}

	for _, active := range m.stack {
		if active == canonical {
			m.mu.Unlock()

			return "", nil, nil, errs.ErrCyclicInclude.With(
				slog.String("path", canonical),
				slog.Any("stack", append(append([]string(nil), m.stack...), canonical)),
			)
		}
	}

	m.stack = append(m.stack, canonical)
	m.mu.Unlock()

	actual, _ := m.cache.LoadOrStore(canonical, new(Slot))

	slot, ok := actual.(*Slot)
	if !ok {
		m.Release()

		return "", nil, nil, errs.ErrIncludeIO.With(slog.String("path", canonical))
	}

	m.Logger.TraceContext(ctx, "including file",
		slog.String("path", canonical),
		slog.String("fingerprint", formatHex(xxh3.Hash(data))),
	)

	return canonical, data, slot, nil
}

// Release pops the most recently Acquired path off the active stack.
func (m *Manager) Release() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.stack) > 0 {
		m.stack = m.stack[:len(m.stack)-1]
	}
}

func formatHex(h uint64) string {
	const hexdigits = "0123456789abcdef"

	buf := make([]byte, 16)
	for i := 15; i >= 0; i-- {
		buf[i] = hexdigits[h&0xf]
		h >>= 4
	}

	return string(buf)
}
