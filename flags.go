package bitflag

import "iter"

// Kind ties a flags type to its descriptor. Implementations are usually
// empty structs returning a package level descriptor:
//
//	var permissions = bitflag.NewDescriptor("Permissions", []bitflag.Flag[uint8]{...}, nil)
//
//	type PermissionsKind struct{}
//
//	func (PermissionsKind) Descriptor() *bitflag.Descriptor[uint8] { return permissions }
//
//	type Permissions = bitflag.Flags[uint8, PermissionsKind]
type Kind[B Bits] interface {
	Descriptor() *Descriptor[B]
}

// Flags is a bits value interpreted through the descriptor of K.
// The zero value is the empty set. Flags values are comparable with ==.
type Flags[B Bits, K Kind[B]] struct {
	bits B
}

// DescriptorOf returns the descriptor of kind K.
func DescriptorOf[B Bits, K Kind[B]]() *Descriptor[B] {
	var k K
	return k.Descriptor()
}

// Empty returns a value with all bits unset.
func Empty[B Bits, K Kind[B]]() Flags[B, K] { return Flags[B, K]{} }

// AllBits returns a value with every bit set, including bits with no meaning.
func AllBits[B Bits, K Kind[B]]() Flags[B, K] { return Flags[B, K]{AllOnes[B]()} }

// All returns a value with every known bit set: each flag and the extra valid bits.
func All[B Bits, K Kind[B]]() Flags[B, K] {
	return Flags[B, K]{DescriptorOf[B, K]().All()}
}

// AllNamed returns a value with the bits of every flag set, without extra valid bits.
func AllNamed[B Bits, K Kind[B]]() Flags[B, K] {
	return Flags[B, K]{DescriptorOf[B, K]().AllNamed()}
}

// FromBits converts bits, failing if any unknown bit is set.
func FromBits[B Bits, K Kind[B]](bits B) (Flags[B, K], bool) {
	f := FromBitsTruncate[B, K](bits)
	if f.bits != bits {
		return Flags[B, K]{}, false
	}
	return f, true
}

// FromBitsTruncate converts bits, unsetting any unknown bit.
func FromBitsTruncate[B Bits, K Kind[B]](bits B) Flags[B, K] {
	return Flags[B, K]{bits & DescriptorOf[B, K]().All()}
}

// FromBitsRetain converts bits exactly, unknown bits included.
func FromBitsRetain[B Bits, K Kind[B]](bits B) Flags[B, K] { return Flags[B, K]{bits} }

// FromFlagName returns the first flag named name.
func FromFlagName[B Bits, K Kind[B]](name string) (Flags[B, K], bool) {
	bits, ok := DescriptorOf[B, K]().Lookup(name)
	if !ok {
		return Flags[B, K]{}, false
	}
	return Flags[B, K]{bits}, true
}

// Collect returns the union of every value in seq.
func Collect[B Bits, K Kind[B]](seq iter.Seq[Flags[B, K]]) Flags[B, K] {
	var f Flags[B, K]
	f.Extend(seq)
	return f
}

// Bits returns the underlying bits, unmodified.
func (f Flags[B, K]) Bits() B { return f.bits }

func (f Flags[B, K]) Descriptor() *Descriptor[B] { return DescriptorOf[B, K]() }

func (f Flags[B, K]) IsEmpty() bool { return f.bits == 0 }

func (f Flags[B, K]) IsAllBits() bool { return f.bits == AllOnes[B]() }

// IsAll reports whether every known bit is set. The value may carry unknown bits as well.
func (f Flags[B, K]) IsAll() bool { return Contains(f.bits, f.Descriptor().All()) }

// IsAllNamed reports whether the bits of every flag are set.
func (f Flags[B, K]) IsAllNamed() bool { return Contains(f.bits, f.Descriptor().AllNamed()) }

func (f Flags[B, K]) ContainsUnknownBits() bool {
	return f.bits&f.Descriptor().All() != f.bits
}

// Truncated returns the value without unknown bits.
func (f Flags[B, K]) Truncated() Flags[B, K] { return FromBitsTruncate[B, K](f.bits) }

// Truncate removes unknown bits in place.
func (f *Flags[B, K]) Truncate() { *f = f.Truncated() }

// Intersects reports whether any bit of other is set. A zero flag never intersects.
func (f Flags[B, K]) Intersects(other Flags[B, K]) bool { return Has(f.bits, other.bits) }

// Contains reports whether every bit of other is set. A zero flag is always contained.
func (f Flags[B, K]) Contains(other Flags[B, K]) bool { return Contains(f.bits, other.bits) }

// Not returns the bitwise NOT. Unknown bits are not truncated, see Complement.
func (f Flags[B, K]) Not() Flags[B, K] { return Flags[B, K]{Not(f.bits)} }

func (f Flags[B, K]) And(other Flags[B, K]) Flags[B, K] { return Flags[B, K]{f.bits & other.bits} }
func (f Flags[B, K]) Or(other Flags[B, K]) Flags[B, K]  { return Flags[B, K]{Set(f.bits, other.bits)} }
func (f Flags[B, K]) Xor(other Flags[B, K]) Flags[B, K] { return Flags[B, K]{Toggle(f.bits, other.bits)} }

func (f Flags[B, K]) Intersection(other Flags[B, K]) Flags[B, K] { return f.And(other) }
func (f Flags[B, K]) Union(other Flags[B, K]) Flags[B, K]        { return f.Or(other) }

// Difference returns f AND NOT other. Unlike f.And(other.Complement()),
// unknown bits of other are not truncated first.
func (f Flags[B, K]) Difference(other Flags[B, K]) Flags[B, K] { return f.And(other.Not()) }

func (f Flags[B, K]) SymmetricDifference(other Flags[B, K]) Flags[B, K] { return f.Xor(other) }

// Complement returns the bitwise NOT limited to known bits.
func (f Flags[B, K]) Complement() Flags[B, K] { return f.Not().Truncated() }

// Set sets the bits of other.
func (f *Flags[B, K]) Set(other Flags[B, K]) { *f = f.Union(other) }

// Unset unsets the bits of other.
func (f *Flags[B, K]) Unset(other Flags[B, K]) { *f = f.Difference(other) }

// Toggle flips the bits of other.
func (f *Flags[B, K]) Toggle(other Flags[B, K]) { *f = f.SymmetricDifference(other) }

// Clear resets the value to empty.
func (f *Flags[B, K]) Clear() { *f = Flags[B, K]{} }

// Extend sets every value of seq.
func (f *Flags[B, K]) Extend(seq iter.Seq[Flags[B, K]]) {
	for other := range seq {
		f.Set(other)
	}
}

// IterNames decomposes f into its contained named flags.
func (f Flags[B, K]) IterNames() *IterNames[B, K] { return newIterNames(f) }

// Iter decomposes f into its contained named flags followed by any remaining bits.
func (f Flags[B, K]) Iter() *Iter[B, K] { return &Iter[B, K]{inner: newIterNames(f)} }

// Names ranges over the contained named flags of f.
func (f Flags[B, K]) Names() iter.Seq2[string, Flags[B, K]] {
	return func(yield func(string, Flags[B, K]) bool) {
		it := f.IterNames()
		for {
			name, flag, ok := it.Next()
			if !ok || !yield(name, flag) {
				return
			}
		}
	}
}

// Values ranges over the same values as Iter. Collecting them yields f.
func (f Flags[B, K]) Values() iter.Seq[Flags[B, K]] {
	return func(yield func(Flags[B, K]) bool) {
		it := f.Iter()
		for {
			flag, ok := it.Next()
			if !ok || !yield(flag) {
				return
			}
		}
	}
}
