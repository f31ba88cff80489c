package text

// SelectLonger returns whichever of the two views is longer by byte count.
// When first is strictly longer it is returned; otherwise second is, so
// equal-length inputs (including two empty views) resolve to second. The
// tie-break is part of the contract, not an accident.
//
// The comparison is by element count only, never by content ordering. The
// function is total: it never allocates, never fails, and accepts
// zero-length views.
//
// The result is one of the inputs, so it remains meaningful only as long
// as both inputs do; it carries the validity metadata of whichever view it
// returns, and stales with that view's owner.
func SelectLonger(first, second View) View {
	if first.Len() > second.Len() {
		return first
	}
	return second
}
