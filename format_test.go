package bitflag

import (
	"fmt"
	"strings"
	"testing"

	assertion "github.com/stretchr/testify/assert"
)

func write[K Kind[uint8]](f Flags[uint8, K], writer func(*strings.Builder, Flags[uint8, K]) error) string {
	var sb strings.Builder
	if err := writer(&sb, f); err != nil {
		panic(err)
	}
	return sb.String()
}

func retain[K Kind[uint8]](f Flags[uint8, K]) string {
	return write(f, func(sb *strings.Builder, f Flags[uint8, K]) error { return ToWriter(sb, f) })
}

func truncate[K Kind[uint8]](f Flags[uint8, K]) string {
	return write(f, func(sb *strings.Builder, f Flags[uint8, K]) error { return ToWriterTruncate(sb, f) })
}

func strict[K Kind[uint8]](f Flags[uint8, K]) string {
	return write(f, func(sb *strings.Builder, f Flags[uint8, K]) error { return ToWriterStrict(sb, f) })
}

func TestToWriter(t *testing.T) {
	assert := assertion.New(t)

	assert.Equal("", retain(Empty[uint8, testFlagsKind]()))
	assert.Equal("A", retain(named[uint8, testFlagsKind]("A")))
	assert.Equal("A | B | C", retain(All[uint8, testFlagsKind]()))
	assert.Equal("0x8", retain(tf(1<<3)))
	assert.Equal("A | 0x8", retain(tf(1|1<<3)))
	assert.Equal("", retain(Empty[uint8, testZeroKind]()))
	assert.Equal("ABC", retain(All[uint8, testFlagsInvertKind]()))
	assert.Equal("0x1", retain(FromBitsRetain[uint8, testOverlappingKind](1)))
	assert.Equal("A", retain(named[uint8, testOverlappingFullKind]("C")))
	assert.Equal("A | D", retain(FromBitsRetain[uint8, testOverlappingFullKind](0b11)))
	assert.Equal("A | B | C | 0xF8", retain(All[uint8, testExternalKind]()))
	assert.Equal("0xFF", retain(All[uint8, testExternalFullKind]()))
	assert.Equal("一 | 二", retain(FromBitsRetain[uint8, testUnicodeKind](0b11)))
}

func TestToWriterTruncate(t *testing.T) {
	assert := assertion.New(t)

	assert.Equal("", truncate(Empty[uint8, testFlagsKind]()))
	assert.Equal("A", truncate(named[uint8, testFlagsKind]("A")))
	assert.Equal("A | B | C", truncate(All[uint8, testFlagsKind]()))
	assert.Equal("", truncate(tf(1<<3)))
	assert.Equal("A", truncate(tf(1|1<<3)))
	assert.Equal("", truncate(Empty[uint8, testZeroKind]()))
	assert.Equal("ABC", truncate(All[uint8, testFlagsInvertKind]()))
	assert.Equal("0x1", truncate(FromBitsRetain[uint8, testOverlappingKind](1)))
	assert.Equal("A", truncate(named[uint8, testOverlappingFullKind]("C")))
	assert.Equal("A | D", truncate(FromBitsRetain[uint8, testOverlappingFullKind](0b11)))
	// extra valid bits are known, so they survive truncation
	assert.Equal("A | 0x80", truncate(FromBitsRetain[uint8, testExtraKind](0xC1)))
}

func TestToWriterStrict(t *testing.T) {
	assert := assertion.New(t)

	assert.Equal("", strict(Empty[uint8, testFlagsKind]()))
	assert.Equal("A", strict(named[uint8, testFlagsKind]("A")))
	assert.Equal("A | B | C", strict(All[uint8, testFlagsKind]()))
	assert.Equal("", strict(tf(1<<3)))
	assert.Equal("A", strict(tf(1|1<<3)))
	assert.Equal("", strict(Empty[uint8, testZeroKind]()))
	assert.Equal("ABC", strict(All[uint8, testFlagsInvertKind]()))
	assert.Equal("", strict(FromBitsRetain[uint8, testOverlappingKind](1)))
	assert.Equal("A", strict(named[uint8, testOverlappingFullKind]("C")))
	assert.Equal("A | D", strict(FromBitsRetain[uint8, testOverlappingFullKind](0b11)))
}

func TestFormatVerbs(t *testing.T) {
	cases := []struct {
		value                       fmt.Formatter
		debug, uhex, lhex, oct, bin string
	}{
		{Empty[uint8, testFlagsKind](), "TestFlags { flags: 0x0, bits: 0b00000000, octal: 0o000, hex: 0x00 }", "0", "0", "0", "0"},
		{named[uint8, testFlagsKind]("A"), "TestFlags { flags: A, bits: 0b00000001, octal: 0o001, hex: 0x01 }", "1", "1", "1", "1"},
		{All[uint8, testFlagsKind](), "TestFlags { flags: A | B | C, bits: 0b00000111, octal: 0o007, hex: 0x07 }", "7", "7", "7", "111"},
		{tf(1 << 3), "TestFlags { flags: 0x8, bits: 0b00001000, octal: 0o010, hex: 0x08 }", "8", "8", "10", "1000"},
		{tf(1 | 1<<3), "TestFlags { flags: A | 0x8, bits: 0b00001001, octal: 0o011, hex: 0x09 }", "9", "9", "11", "1001"},
		{Empty[uint8, testZeroKind](), "TestZero { flags: 0x0, bits: 0b00000000, octal: 0o000, hex: 0x00 }", "0", "0", "0", "0"},
		{FromBitsRetain[uint8, testZeroKind](1), "TestZero { flags: 0x1, bits: 0b00000001, octal: 0o001, hex: 0x01 }", "1", "1", "1", "1"},
		{named[uint8, testZeroOneKind]("ONE"), "TestZeroOne { flags: ONE, bits: 0b00000001, octal: 0o001, hex: 0x01 }", "1", "1", "1", "1"},
		{FromBitsRetain[uint8, testOverlappingKind](1 << 1), "TestOverlapping { flags: 0x2, bits: 0b00000010, octal: 0o002, hex: 0x02 }", "2", "2", "2", "10"},
		{FromBitsRetain[uint8, testExternalKind](1 | 1<<1 | 1<<3), "TestExternal { flags: A | B | 0x8, bits: 0b00001011, octal: 0o013, hex: 0x0B }", "B", "b", "13", "1011"},
		{All[uint8, testExternalKind](), "TestExternal { flags: A | B | C | 0xF8, bits: 0b11111111, octal: 0o377, hex: 0xFF }", "FF", "ff", "377", "11111111"},
		{All[uint8, testExternalFullKind](), "TestExternalFull { flags: 0xFF, bits: 0b11111111, octal: 0o377, hex: 0xFF }", "FF", "ff", "377", "11111111"},
		{AllBits[int8, testSignedKind](), "TestSigned { flags: LOW | SIGN | 0x7E, bits: 0b11111111, octal: 0o377, hex: 0xFF }", "FF", "ff", "377", "11111111"},
	}
	for _, c := range cases {
		assertion.Equal(t, c.debug, fmt.Sprintf("%+v", c.value))
		assertion.Equal(t, c.uhex, fmt.Sprintf("%X", c.value))
		assertion.Equal(t, c.lhex, fmt.Sprintf("%x", c.value))
		assertion.Equal(t, c.oct, fmt.Sprintf("%o", c.value))
		assertion.Equal(t, c.bin, fmt.Sprintf("%b", c.value))
	}
}

func TestFormatText(t *testing.T) {
	assert := assertion.New(t)
	f := tf(1 | 1<<3)

	assert.Equal("A | 0x8", f.String())
	assert.Equal("A | 0x8", fmt.Sprintf("%v", f))
	assert.Equal("A | 0x8", fmt.Sprintf("%s", f))
	assert.Equal(`"A | 0x8"`, fmt.Sprintf("%q", f))
	assert.Equal("9", fmt.Sprintf("%d", f))
	assert.Equal("0x9", fmt.Sprintf("%#x", f))
	assert.Equal("0009", fmt.Sprintf("%04X", f))
	assert.Equal("0b1001", fmt.Sprintf("%#b", f))
	assert.Equal("0o11", fmt.Sprintf("%O", f))
	assert.Equal("-1", fmt.Sprintf("%d", AllBits[int8, testSignedKind]()))
	assert.Equal("[A B]", fmt.Sprintf("%v", []TestFlags{tf(1), tf(2)}))
}
