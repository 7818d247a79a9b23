// Package example declares the flag sets used by the command line tool and
// the documentation.
package example

import "bitflag"

var simple = bitflag.NewDescriptor("Simple", []bitflag.Flag[uint32]{
	{Name: "Flag1", Bits: 1 << 9},
	{Name: "Flag2", Bits: 1 << 12},
	{Name: "Flag3", Bits: 1},
	{Name: "Flag4", Bits: 1<<9 | 1<<12},
}, nil)

type SimpleKind struct{}

func (SimpleKind) Descriptor() *bitflag.Descriptor[uint32] { return simple }

type Simple = bitflag.Flags[uint32, SimpleKind]

var (
	Flag1 = bitflag.FromBitsRetain[uint32, SimpleKind](1 << 9)
	Flag2 = bitflag.FromBitsRetain[uint32, SimpleKind](1 << 12)
	Flag3 = bitflag.FromBitsRetain[uint32, SimpleKind](1)
	Flag4 = Flag1.Union(Flag2)
)

// file access bits
var permissions = bitflag.NewDescriptor("Permissions", []bitflag.Flag[uint8]{
	{Name: "Read", Bits: 1},
	{Name: "Write", Bits: 1 << 1},
	{Name: "Exec", Bits: 1 << 2},
	{Name: "RW", Bits: 1 | 1<<1},
	{Name: "All", Bits: 1 | 1<<1 | 1<<2},
}, nil)

type PermissionsKind struct{}

func (PermissionsKind) Descriptor() *bitflag.Descriptor[uint8] { return permissions }

type Permissions = bitflag.Flags[uint8, PermissionsKind]

var (
	Read  = bitflag.FromBitsRetain[uint8, PermissionsKind](1)
	Write = bitflag.FromBitsRetain[uint8, PermissionsKind](1 << 1)
	Exec  = bitflag.FromBitsRetain[uint8, PermissionsKind](1 << 2)
	RW    = Read.Union(Write)
)

// Device status register of an external controller. Bits beyond the
// named ones may be set by newer firmware and are kept.
var device = bitflag.NewDescriptor("Device", []bitflag.Flag[uint16]{
	{Name: "Ready", Bits: 1},
	{Name: "Busy", Bits: 1 << 1},
	{Name: "Error", Bits: 1 << 2},
	{Name: "Halted", Bits: 1 << 15},
}, &bitflag.Options[uint16]{External: true})

type DeviceKind struct{}

func (DeviceKind) Descriptor() *bitflag.Descriptor[uint16] { return device }

type Device = bitflag.Flags[uint16, DeviceKind]

var (
	Ready  = bitflag.FromBitsRetain[uint16, DeviceKind](1)
	Busy   = bitflag.FromBitsRetain[uint16, DeviceKind](1 << 1)
	Error  = bitflag.FromBitsRetain[uint16, DeviceKind](1 << 2)
	Halted = bitflag.FromBitsRetain[uint16, DeviceKind](1 << 15)
)
