package text

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// View is an immutable, non-owning, read-only window into text data.
// A View borrowed from a Text remembers the revision it was taken at;
// once the owner mutates, the View is stale and Text reports ErrViewStale.
// Reading through a stale View is still memory-safe (the borrowed bytes
// never change), so Len, String, and Bytes keep working on the window as
// it was at borrow time.
//
// The zero View is an empty, always-valid view.
type View struct {
	data  []byte
	owner *Text
	rev   RevisionID
}

// ViewOf returns a view of a string literal or other free-standing string.
// Such views have no owner and never become stale.
func ViewOf(s string) View {
	return View{data: []byte(s)}
}

// Len returns the length of the view in bytes.
func (v View) Len() int {
	return len(v.data)
}

// Runes returns the number of Unicode code points in the view.
func (v View) Runes() int {
	return utf8.RuneCount(v.data)
}

// Elements returns the number of user-perceived characters (grapheme
// clusters) in the view. A flag emoji or a combining sequence counts as
// one element regardless of its byte length.
func (v View) Elements() int {
	return uniseg.GraphemeClusterCount(string(v.data))
}

// IsEmpty returns true if the view has length zero.
func (v View) IsEmpty() bool {
	return len(v.data) == 0
}

// Valid reports whether the view's owner is unmodified since the view was
// taken. Ownerless views are always valid.
func (v View) Valid() bool {
	if v.owner == nil {
		return true
	}
	return v.owner.Revision() == v.rev
}

// Text returns the viewed text, or ErrViewStale if the owning Text has
// been modified since the view was taken.
func (v View) Text() (string, error) {
	if !v.Valid() {
		return "", ErrViewStale
	}
	return string(v.data), nil
}

// String returns the viewed text as it was at borrow time, without
// checking staleness.
func (v View) String() string {
	return string(v.data)
}

// Bytes returns a copy of the viewed bytes. The copy keeps callers from
// writing through to the owner's buffer.
func (v View) Bytes() []byte {
	b := make([]byte, len(v.data))
	copy(b, v.data)
	return b
}

// Slice returns a sub-view of the byte range [start, end) within this view.
// The sub-view carries the same owner and revision, so it stales together
// with its parent. Returns ErrRangeInvalid for out-of-bounds ranges.
func (v View) Slice(start, end int) (View, error) {
	if start < 0 || start > end || end > len(v.data) {
		return View{}, ErrRangeInvalid
	}

	return View{
		data:  v.data[start:end],
		owner: v.owner,
		rev:   v.rev,
	}, nil
}
