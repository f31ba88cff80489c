package text

import (
	"io"
	"sync"
	"sync/atomic"
)

// RevisionID uniquely identifies a text revision.
// Each modification to a Text creates a new revision.
type RevisionID uint64

// revisionCounter is used to generate unique revision IDs.
var revisionCounter uint64

// NewRevisionID generates a new unique revision ID.
// This is thread-safe using atomic operations.
func NewRevisionID() RevisionID {
	return RevisionID(atomic.AddUint64(&revisionCounter, 1))
}

// Text is an owned, growable text buffer. Content may only be changed by
// appending through the Text itself; views taken before a mutation become
// stale and report it via View.Valid.
// All methods are thread-safe.
type Text struct {
	mu       sync.RWMutex
	buf      []byte
	revision RevisionID
}

// New creates a new empty text.
func New(opts ...Option) *Text {
	t := &Text{
		revision: NewRevisionID(),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// FromString creates a text with initial content.
func FromString(s string, opts ...Option) *Text {
	t := New(opts...)
	t.buf = append(t.buf, s...)
	return t
}

// FromReader creates a text from an io.Reader.
func FromReader(r io.Reader, opts ...Option) (*Text, error) {
	t := New(opts...)

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	t.buf = append(t.buf, data...)
	return t, nil
}

// Append appends s to the end of the text and advances the revision.
// Views taken before the append become stale.
func (t *Text) Append(s string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.buf = append(t.buf, s...)
	t.revision = NewRevisionID()
}

// String returns the full text content as a string.
func (t *Text) String() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return string(t.buf)
}

// Len returns the total byte length of the text.
func (t *Text) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.buf)
}

// IsEmpty returns true if the text is empty.
func (t *Text) IsEmpty() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.buf) == 0
}

// Revision returns the current revision ID.
func (t *Text) Revision() RevisionID {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.revision
}

// View returns a read-only view of the entire text at the current revision.
func (t *Text) View() View {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return View{
		data:  t.buf,
		owner: t,
		rev:   t.revision,
	}
}

// Slice returns a read-only view of the byte range [start, end).
// Returns ErrRangeInvalid when start < 0, start > end, or end exceeds the
// text length. Byte indices that split a multi-byte rune are not rejected;
// as with direct byte indexing, that is the caller's error.
func (t *Text) Slice(start, end int) (View, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if start < 0 || start > end || end > len(t.buf) {
		return View{}, ErrRangeInvalid
	}

	return View{
		data:  t.buf[start:end],
		owner: t,
		rev:   t.revision,
	}, nil
}
