// Package bitflag treats a fixed-width integer as a set of named flags.
//
// A flag set is declared once as a Descriptor, an ordered table of named bit
// patterns, and bound to a Kind type. Flags values of that kind support set
// algebra, decomposition into named flags, and a text form such as
// "Read | Write | 0x40".
package bitflag

import (
	"strconv"
	"strings"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Bits is the fixed-width integer backing a flags value.
type Bits interface {
	constraints.Integer
}

func Set[B Bits](b, flag B) B    { return b | flag }
func Clear[B Bits](b, flag B) B  { return b &^ flag }
func Toggle[B Bits](b, flag B) B { return b ^ flag }
func Has[B Bits](b, flag B) bool { return b&flag != 0 }

// Contains reports whether every bit of flag is set in b.
func Contains[B Bits](b, flag B) bool { return b&flag == flag }

func Not[B Bits](b B) B { return ^b }

// AllOnes returns a value with every bit set.
func AllOnes[B Bits]() B { return ^B(0) }

// Width returns the number of bits in B.
func Width[B Bits]() int {
	var b B
	return int(unsafe.Sizeof(b)) * 8
}

// Uint64 returns the bit pattern of b, limited to the width of B.
// Signed values are not sign extended.
func Uint64[B Bits](b B) uint64 {
	u := uint64(b)
	if w := Width[B](); w < 64 {
		u &= 1<<uint(w) - 1
	}
	return u
}

// FromUint64 reinterprets the low bits of u as a B.
func FromUint64[B Bits](u uint64) B { return B(u) }

// parseHex parses hex digits (no prefix) as a bit pattern of B.
func parseHex[B Bits](digits string) (B, error) {
	u, err := strconv.ParseUint(digits, 16, Width[B]())
	if err != nil {
		return 0, err
	}
	return FromUint64[B](u), nil
}

func upperHex[B Bits](b B) string {
	return strings.ToUpper(strconv.FormatUint(Uint64(b), 16))
}

// octalWidth is the number of octal digits needed for a value of width bits.
func octalWidth(width int) int {
	switch width {
	case 8:
		return 3
	case 16:
		return 6
	case 32:
		return 11
	case 64:
		return 22
	}
	return width/3 + width%3
}
