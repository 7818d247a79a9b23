package bitflag

import (
	log "github.com/sirupsen/logrus"
)

// Flag is a named flag definition.
type Flag[B Bits] struct {
	Name string
	Bits B
}

// Options represents the options that can be set when building a descriptor.
type Options[B Bits] struct {
	// Bits that are considered known even though no flag names them.
	ExtraValidBits B

	// The flag set describes an externally controlled source: every bit
	// is considered known. Overrides ExtraValidBits.
	External bool
}

// Descriptor is the immutable definition of a flag set: its flags in
// declaration order and the mask of extra valid bits.
//
// A descriptor is built once and shared; it is safe for concurrent use.
type Descriptor[B Bits] struct {
	name  string
	flags []Flag[B]
	extra B

	// cached
	all      B
	allNamed B
}

// NewDescriptor builds a descriptor. The flags slice is copied.
// Duplicate and empty names are allowed but reported, since the first
// definition wins on name lookup and empty names can never be looked up.
func NewDescriptor[B Bits](name string, flags []Flag[B], options *Options[B]) *Descriptor[B] {
	if options == nil {
		options = &Options[B]{}
	}
	d := &Descriptor[B]{
		name:  name,
		flags: append([]Flag[B](nil), flags...),
		extra: options.ExtraValidBits,
	}
	if options.External {
		d.extra = AllOnes[B]()
	}

	seen := make(map[string]struct{}, len(flags))
	for _, f := range d.flags {
		d.allNamed |= f.Bits
		if f.Name == "" {
			log.WithField("descriptor", name).Warn("flag with empty name can't be parsed or looked up")
			continue
		}
		if _, ok := seen[f.Name]; ok {
			log.WithFields(log.Fields{"descriptor": name, "flag": f.Name}).Warn("duplicate flag name, first definition wins")
		}
		seen[f.Name] = struct{}{}
	}
	d.all = d.allNamed | d.extra
	return d
}

func (d *Descriptor[B]) Name() string { return d.name }

// Flags returns a copy of the flag table in declaration order.
func (d *Descriptor[B]) Flags() []Flag[B] {
	return append([]Flag[B](nil), d.flags...)
}

func (d *Descriptor[B]) Len() int { return len(d.flags) }

func (d *Descriptor[B]) ExtraValidBits() B { return d.extra }

// All returns the known bits: every flag plus the extra valid bits.
func (d *Descriptor[B]) All() B { return d.all }

// AllNamed returns the bits of every flag, without the extra valid bits.
func (d *Descriptor[B]) AllNamed() B { return d.allNamed }

// Lookup finds the first flag named name. The empty name never matches.
func (d *Descriptor[B]) Lookup(name string) (B, bool) {
	if name == "" {
		return 0, false
	}
	for _, f := range d.flags {
		if f.Name == name {
			return f.Bits, true
		}
	}
	return 0, false
}
