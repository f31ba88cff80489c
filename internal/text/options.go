package text

// Option is a functional option for configuring a Text.
type Option func(*Text)

// WithCapacity preallocates the backing buffer, avoiding reallocation for
// appends up to n bytes.
func WithCapacity(n int) Option {
	return func(t *Text) {
		if n > 0 && cap(t.buf) < n {
			buf := make([]byte, len(t.buf), n)
			copy(buf, t.buf)
			t.buf = buf
		}
	}
}
