// Package text provides an owned, append-only text buffer and non-owning,
// read-only views into it.
//
// The package provides:
//
//   - Text: a growable, revision-tracked buffer mutated only by appending
//   - View: a read-only window into a Text or a free-standing string
//   - SelectLonger: picks the longer of two views without copying
//
// Views and staleness:
//
// A View taken from a Text records the revision it was borrowed at. When
// the Text is appended to, existing views become stale: Valid returns
// false and Text returns ErrViewStale. The borrowed bytes themselves never
// change, so Len, String, and Bytes remain safe on a stale view — staleness
// signals that the view no longer reflects the owner, not that reading it
// is dangerous.
//
// Basic usage:
//
//	owned := text.FromString("Hello ")
//	owned.Append("world")
//	owned.Append("!")
//
//	v, _ := owned.Slice(2, 5) // "llo"
//
//	longer := text.SelectLonger(text.ViewOf("anil"), text.ViewOf("garima"))
//	fmt.Println(longer) // "garima"
//
// Length is measured three ways on a View: Len (bytes), Runes (code
// points), and Elements (grapheme clusters). SelectLonger compares by
// bytes; Elements is the right measure for "how many characters does the
// user see".
package text
