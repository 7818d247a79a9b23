package bitflag

// IterNames yields the named flags contained in a source value, in
// declaration order.
//
// A flag is yielded when the source contains all of its bits and at least
// one of them has not been covered by a previously yielded flag. Partially
// overlapping flags are both yielded; a flag fully covered by earlier ones
// (an alias, or a convenience flag after its parts) is not. Zero flags are
// never yielded. Bits left over are available from Remaining.
type IterNames[B Bits, K Kind[B]] struct {
	flags     []Flag[B]
	index     int
	source    Flags[B, K]
	remaining Flags[B, K]
}

func newIterNames[B Bits, K Kind[B]](f Flags[B, K]) *IterNames[B, K] {
	return &IterNames[B, K]{
		flags:     f.Descriptor().flags,
		source:    f,
		remaining: f,
	}
}

// Next returns the next contained named flag with its full bit pattern.
// ok is false once the iterator is exhausted, and stays false.
func (it *IterNames[B, K]) Next() (name string, flag Flags[B, K], ok bool) {
	for it.index < len(it.flags) {
		// nothing left to explain
		if it.remaining.IsEmpty() {
			return "", Flags[B, K]{}, false
		}

		def := it.flags[it.index]
		it.index++

		flag = FromBitsRetain[B, K](def.Bits)
		if it.source.Contains(flag) && it.remaining.Intersects(flag) {
			it.remaining.Unset(flag)
			return def.Name, flag, true
		}
	}
	return "", Flags[B, K]{}, false
}

// Remaining returns the bits not covered by any flag yielded so far.
func (it *IterNames[B, K]) Remaining() Flags[B, K] { return it.remaining }

// Iter yields the same flags as IterNames, followed by a single value
// holding the remaining bits if there are any. The union of everything
// yielded equals the source.
type Iter[B Bits, K Kind[B]] struct {
	inner *IterNames[B, K]
	done  bool
}

// Next returns the next value. ok is false once the iterator is exhausted, and stays false.
func (it *Iter[B, K]) Next() (Flags[B, K], bool) {
	if _, flag, ok := it.inner.Next(); ok {
		return flag, true
	}
	if it.done {
		return Flags[B, K]{}, false
	}
	it.done = true
	if rest := it.inner.Remaining(); !rest.IsEmpty() {
		return rest, true
	}
	return Flags[B, K]{}, false
}
