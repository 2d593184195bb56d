package config

import (
	"fmt"
	"sync"

	suzuerrors "github.com/suzu-editor/suzu/internal/errors"
	"github.com/suzu-editor/suzu/internal/fileio"
)

// Store is a thread-safe, path-addressed JSON configuration document with an
// optional backing file.
//
// Readers share the lock and writers hold it exclusively. Callers only ever
// see copies of the document: GetValue copies out and SetValue copies in.
type Store struct {
	mu           sync.RWMutex
	doc          any
	path         string
	healthy      bool
	flushOnClose bool
	loadErr      error

	fio       fileio.FileIO
	closeOnce sync.Once
}

// Option configures a Store at construction.
type Option func(*Store)

// WithFlushOnClose makes Close write the document back to the backing path.
// It has no effect on stores without a backing path.
func WithFlushOnClose(enabled bool) Option {
	return func(s *Store) {
		s.flushOnClose = enabled
	}
}

// WithFileIO replaces the file collaborator. Default is fileio.OSFileIO.
func WithFileIO(fio fileio.FileIO) Option {
	return func(s *Store) {
		if fio != nil {
			s.fio = fio
		}
	}
}

// New creates an empty, healthy store without a backing path.
func New(opts ...Option) *Store {
	s := &Store{
		doc:     map[string]any{},
		healthy: true,
		fio:     fileio.NewOSFileIO(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open creates a store backed by the file at path. It never fails outright:
//   - an unreadable file leaves an empty, healthy document
//   - a malformed file is replaced by an empty, healthy document
//   - an unexpected fault marks the store unhealthy
//
// LoadError reports which of these happened. An empty path is the same as New.
func Open(path string, opts ...Option) *Store {
	s := New(opts...)
	if path == "" {
		return s
	}
	s.path = path
	s.load()
	return s
}

func (s *Store) load() {
	defer func() {
		if r := recover(); r != nil {
			s.doc = map[string]any{}
			s.healthy = false
			s.loadErr = suzuerrors.WrapPath(suzuerrors.ErrCodeInternal, s.path, "load failed", fmt.Errorf("%v", r))
		}
	}()

	data, err := s.fio.ReadAll(s.path)
	if err != nil {
		s.loadErr = err
		return
	}

	doc, err := parseDocument(data)
	if err != nil {
		s.doc = map[string]any{}
		s.loadErr = suzuerrors.WrapPath(suzuerrors.ErrCodeParse, s.path, "malformed document", err)
		return
	}
	s.doc = doc
}

// IsOK reports whether the document is usable.
func (s *Store) IsOK() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.healthy
}

// LoadError returns why the last load from the backing file did not produce
// the file's document, or nil.
func (s *Store) LoadError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr
}

// BackingPath returns the file the store was opened from, or "".
func (s *Store) BackingPath() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.path
}

// GetValue returns a copy of the node at ptr, or the discarded sentinel when
// the store is unhealthy, ptr is malformed, or nothing is stored there.
func (s *Store) GetValue(ptr string) (v Value) {
	defer func() {
		if r := recover(); r != nil {
			v = Discarded()
		}
	}()

	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.healthy {
		return Discarded()
	}
	p, err := parsePointer(ptr)
	if err != nil {
		return Discarded()
	}
	node, ok := lookup(s.doc, p)
	if !ok {
		return Discarded()
	}
	return wrap(deepCopy(node))
}

// Document returns a copy of the whole document.
func (s *Store) Document() Value {
	return s.GetValue("")
}

// SetValue stores a copy of v at ptr, creating intermediate objects and
// arrays as needed. On any error the document is left exactly as it was.
func (s *Store) SetValue(ptr string, v Value) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = suzuerrors.WrapPath(suzuerrors.ErrCodeInternal, ptr, "set failed", fmt.Errorf("%v", r))
		}
	}()

	p, err := parsePointer(ptr)
	if err != nil {
		return err
	}
	raw, err := normalize(v)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.healthy {
		return suzuerrors.WrapPath(suzuerrors.ErrCodeInvalidState, ptr, "store is not healthy", nil)
	}
	doc, err := setAt(s.doc, p, raw)
	if err != nil {
		return err
	}
	s.doc = doc
	return nil
}

// Serialize renders the document as JSON, indented when pretty is set. An
// unhealthy store, or one that cannot be rendered, yields "{}".
func (s *Store) Serialize(pretty bool) (text string) {
	defer func() {
		if r := recover(); r != nil {
			text = emptyDocument
		}
	}()

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.serializeLocked(pretty)
}

func (s *Store) serializeLocked(pretty bool) string {
	if !s.healthy {
		return emptyDocument
	}
	text, err := encode(s.doc, pretty)
	if err != nil {
		return emptyDocument
	}
	return text
}

// Flush writes the compact document to path, or to the backing path when
// path is empty. The file is truncated unless appendMode is set.
//
// Only the read lock is held during the write, so readers proceed while a
// flush is in progress and writers wait for it.
func (s *Store) Flush(path string, appendMode bool) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = suzuerrors.WrapPath(suzuerrors.ErrCodeInternal, path, "flush failed", fmt.Errorf("%v", r))
		}
	}()

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.flushLocked(path, appendMode)
}

func (s *Store) flushLocked(path string, appendMode bool) error {
	target := path
	if target == "" {
		target = s.path
	}
	if target == "" {
		return suzuerrors.InvalidParameter("no flush target: store has no backing path")
	}
	if !s.healthy {
		return suzuerrors.WrapPath(suzuerrors.ErrCodeInvalidState, target, "store is not healthy", nil)
	}

	text, err := encode(s.doc, false)
	if err != nil {
		return suzuerrors.WrapPath(suzuerrors.ErrCodeInternal, target, "cannot serialize document", err)
	}
	return s.fio.WriteAll(target, []byte(text), appendMode)
}

// SaveAs writes the document to path and, on success, makes path the new
// backing path.
func (s *Store) SaveAs(path string) error {
	if path == "" {
		return suzuerrors.InvalidParameter("save path cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.flushLocked(path, false); err != nil {
		return err
	}
	s.path = path
	return nil
}

// Reload re-reads the backing file. A successful reload replaces the document
// and marks the store healthy; a failed one keeps the current document.
//
// The exclusive lock is held for the whole read, so a concurrent SaveAs cannot
// rebind the path between reading and committing.
func (s *Store) Reload() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = suzuerrors.Wrap(suzuerrors.ErrCodeInternal, "reload failed", fmt.Errorf("%v", r))
		}
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return suzuerrors.InvalidParameter("store has no backing path")
	}

	data, err := s.fio.ReadAll(s.path)
	if err != nil {
		return err
	}
	doc, err := parseDocument(data)
	if err != nil {
		return suzuerrors.WrapPath(suzuerrors.ErrCodeParse, s.path, "malformed document", err)
	}

	s.doc = doc
	s.healthy = true
	s.loadErr = nil
	return nil
}

// Reset replaces the document with an empty object, marks the store healthy
// and clears LoadError. The backing file is not touched.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = map[string]any{}
	s.healthy = true
	s.loadErr = nil
}

// SetFlushOnClose changes the write-back policy chosen with WithFlushOnClose.
func (s *Store) SetFlushOnClose(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flushOnClose = enabled
}

// Close flushes to the backing path when the store was created with
// WithFlushOnClose. The flush is best effort and its result is discarded.
// Calling Close more than once does nothing.
func (s *Store) Close() {
	s.closeOnce.Do(func() {
		s.mu.RLock()
		flush := s.flushOnClose && s.path != ""
		s.mu.RUnlock()
		if flush {
			_ = s.Flush("", false)
		}
	})
}
