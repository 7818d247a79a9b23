package bitflag

func def[B Bits](name string, bits B) Flag[B] { return Flag[B]{Name: name, Bits: bits} }

var (
	testFlags = NewDescriptor("TestFlags", []Flag[uint8]{
		def[uint8]("A", 1), def[uint8]("B", 1<<1), def[uint8]("C", 1<<2), def[uint8]("ABC", 1|1<<1|1<<2),
	}, nil)
	testFlagsInvert = NewDescriptor("TestFlagsInvert", []Flag[uint8]{
		def[uint8]("ABC", 1|1<<1|1<<2), def[uint8]("A", 1), def[uint8]("B", 1<<1), def[uint8]("C", 1<<2),
	}, nil)
	testZero        = NewDescriptor("TestZero", []Flag[uint8]{def[uint8]("ZERO", 0)}, nil)
	testZeroOne     = NewDescriptor("TestZeroOne", []Flag[uint8]{def[uint8]("ZERO", 0), def[uint8]("ONE", 1)}, nil)
	testUnicode     = NewDescriptor("TestUnicode", []Flag[uint8]{def[uint8]("一", 1), def[uint8]("二", 1<<1)}, nil)
	testEmpty       = NewDescriptor[uint8]("TestEmpty", nil, nil)
	testOverlapping = NewDescriptor("TestOverlapping", []Flag[uint8]{
		def[uint8]("AB", 1|1<<1), def[uint8]("BC", 1<<1|1<<2),
	}, nil)
	testOverlappingFull = NewDescriptor("TestOverlappingFull", []Flag[uint8]{
		def[uint8]("A", 1), def[uint8]("B", 1), def[uint8]("C", 1), def[uint8]("D", 1<<1),
	}, nil)
	testExternal = NewDescriptor("TestExternal", []Flag[uint8]{
		def[uint8]("A", 1), def[uint8]("B", 1<<1), def[uint8]("C", 1<<2), def[uint8]("ABC", 1|1<<1|1<<2),
	}, &Options[uint8]{External: true})
	testExternalFull = NewDescriptor[uint8]("TestExternalFull", nil, &Options[uint8]{External: true})
	testExtra        = NewDescriptor("TestExtra", []Flag[uint8]{def[uint8]("A", 1)}, &Options[uint8]{ExtraValidBits: 1 << 7})
	testSigned       = NewDescriptor("TestSigned", []Flag[int8]{def[int8]("LOW", 1), def[int8]("SIGN", -128)}, nil)
)

type testFlagsKind struct{}
type testFlagsInvertKind struct{}
type testZeroKind struct{}
type testZeroOneKind struct{}
type testUnicodeKind struct{}
type testEmptyKind struct{}
type testOverlappingKind struct{}
type testOverlappingFullKind struct{}
type testExternalKind struct{}
type testExternalFullKind struct{}
type testExtraKind struct{}
type testSignedKind struct{}

func (testFlagsKind) Descriptor() *Descriptor[uint8]           { return testFlags }
func (testFlagsInvertKind) Descriptor() *Descriptor[uint8]     { return testFlagsInvert }
func (testZeroKind) Descriptor() *Descriptor[uint8]            { return testZero }
func (testZeroOneKind) Descriptor() *Descriptor[uint8]         { return testZeroOne }
func (testUnicodeKind) Descriptor() *Descriptor[uint8]         { return testUnicode }
func (testEmptyKind) Descriptor() *Descriptor[uint8]           { return testEmpty }
func (testOverlappingKind) Descriptor() *Descriptor[uint8]     { return testOverlapping }
func (testOverlappingFullKind) Descriptor() *Descriptor[uint8] { return testOverlappingFull }
func (testExternalKind) Descriptor() *Descriptor[uint8]        { return testExternal }
func (testExternalFullKind) Descriptor() *Descriptor[uint8]    { return testExternalFull }
func (testExtraKind) Descriptor() *Descriptor[uint8]           { return testExtra }
func (testSignedKind) Descriptor() *Descriptor[int8]           { return testSigned }

type (
	TestFlags           = Flags[uint8, testFlagsKind]
	TestFlagsInvert     = Flags[uint8, testFlagsInvertKind]
	TestZero            = Flags[uint8, testZeroKind]
	TestZeroOne         = Flags[uint8, testZeroOneKind]
	TestUnicode         = Flags[uint8, testUnicodeKind]
	TestEmpty           = Flags[uint8, testEmptyKind]
	TestOverlapping     = Flags[uint8, testOverlappingKind]
	TestOverlappingFull = Flags[uint8, testOverlappingFullKind]
	TestExternal        = Flags[uint8, testExternalKind]
	TestExternalFull    = Flags[uint8, testExternalFullKind]
	TestExtra           = Flags[uint8, testExtraKind]
	TestSigned          = Flags[int8, testSignedKind]
)

func tf(bits uint8) TestFlags { return FromBitsRetain[uint8, testFlagsKind](bits) }

func named[B Bits, K Kind[B]](name string) Flags[B, K] {
	f, ok := FromFlagName[B, K](name)
	if !ok {
		panic("unknown flag " + name)
	}
	return f
}
