package docres

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
)

// Entry is a single resource inside a ResourceSet: a slash-separated path
// relative to its resolved directory root, plus access to the file content.
type Entry struct {
	Path string // relative path, always slash-separated

	abs string
	set *ResourceSet
}

// Open returns the entry's content stream. Readers vended by Open are
// tracked by the owning set and force-closed by ResourceSet.Close if the
// caller has not already closed them.
func (e Entry) Open() (io.ReadCloser, error) {
	f, err := os.Open(e.abs) // #nosec G304 -- path comes from walking a resolved resource directory
	if err != nil {
		return nil, fmt.Errorf("opening resource %s: %w", e.Path, err)
	}
	tr := &trackedReader{f: f, set: e.set}
	if err := e.set.track(tr); err != nil {
		_ = f.Close()
		return nil, err
	}
	return tr, nil
}

// ResourceSet merges the file trees under an ordered list of resolved
// directories into one logical namespace. The same relative path may appear
// once per directory that contains it; no deduplication is performed, so
// file-level precedence is decided by whoever consumes the entries (the
// exporter's overwrite flag, see Exporter.Export).
//
// A set is live for one export or processing call: create it, drain it,
// then Close it. Close releases every reader still open, so partial
// failures during consumption never leak file handles. Entry reads may be
// parallelized by the consumer; tracking is safe for concurrent use.
type ResourceSet struct {
	dirs []ResolvedDir

	mu     sync.Mutex
	open   map[*trackedReader]struct{}
	closed bool
}

// NewResourceSet creates a ResourceSet over the given directories.
// Directory order is preserved and defines enumeration order.
func NewResourceSet(dirs []ResolvedDir) *ResourceSet {
	return &ResourceSet{
		dirs: dirs,
		open: make(map[*trackedReader]struct{}),
	}
}

// Dirs returns the resolved directories backing this set, in order.
func (s *ResourceSet) Dirs() []ResolvedDir {
	return s.dirs
}

// IsEmpty reports whether no resolved directory contains any file.
// It stops walking at the first file found. Walk errors are deferred to
// enumeration, where they surface as fatal; IsEmpty reports false so that
// consumers proceed and hit them.
func (s *ResourceSet) IsEmpty() bool {
	empty := true
	err := s.Walk("", func(Entry) error {
		empty = false
		return fs.SkipAll
	})
	if err != nil {
		return false
	}
	return empty
}

// Walk enumerates the set's entries in a single streaming pass: resolved
// directory order first, lexical order within each directory. Each file's
// path is computed relative to its directory root; when filter is non-empty
// only relative paths matching it are yielded (doublestar glob syntax, e.g.
// "**/*.css"). fn may return fs.SkipAll to stop early without error; any
// other error aborts the walk and is returned. Walking a closed set returns
// ErrSetClosed.
func (s *ResourceSet) Walk(filter string, fn func(Entry) error) error {
	if filter != "" && !doublestar.ValidatePattern(filter) {
		return fmt.Errorf("%w: %q", ErrInvalidFilter, filter)
	}

	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return ErrSetClosed
	}

	stop := false
	for _, dir := range s.dirs {
		root := dir.Path
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			rel = filepath.ToSlash(rel)
			if filter != "" {
				// Pattern validated above; Match only errors on bad patterns.
				if ok, _ := doublestar.Match(filter, rel); !ok {
					return nil
				}
			}
			if err := fn(Entry{Path: rel, abs: path, set: s}); err != nil {
				if errors.Is(err, fs.SkipAll) {
					stop = true
				}
				return err
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("walking %s: %w", root, err)
		}
		if stop {
			return nil
		}
	}
	return nil
}

// Close releases every reader still open on this set. It is idempotent and
// safe to call concurrently with readers closing themselves. After Close,
// Walk and Entry.Open fail with ErrSetClosed.
func (s *ResourceSet) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	remaining := make([]*trackedReader, 0, len(s.open))
	for tr := range s.open {
		remaining = append(remaining, tr)
	}
	s.open = nil
	s.mu.Unlock()

	var firstErr error
	for _, tr := range remaining {
		if err := tr.f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// track registers a reader for release on Close.
func (s *ResourceSet) track(tr *trackedReader) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSetClosed
	}
	s.open[tr] = struct{}{}
	return nil
}

// forget drops a reader that closed itself.
func (s *ResourceSet) forget(tr *trackedReader) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.open != nil {
		delete(s.open, tr)
	}
}

// trackedReader wraps an open file so the owning set can release it.
type trackedReader struct {
	f   *os.File
	set *ResourceSet
}

func (t *trackedReader) Read(p []byte) (int, error) {
	return t.f.Read(p)
}

func (t *trackedReader) Close() error {
	t.set.forget(t)
	return t.f.Close()
}
