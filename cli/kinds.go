package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"bitflag"
	"bitflag/example"
	"bitflag/store"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

type mode string

const (
	modeRetain   mode = "retain"
	modeTruncate mode = "truncate"
	modeStrict   mode = "strict"
)

func parseMode(s string) (mode, error) {
	switch m := mode(s); m {
	case modeRetain, modeTruncate, modeStrict:
		return m, nil
	}
	return "", errors.Errorf("unknown mode %q, want retain, truncate or strict", s)
}

// kind runs the commands for one flag set.
type kind interface {
	name() string
	describe(w io.Writer)
	format(w io.Writer, bits string, m mode) error
	parse(w io.Writer, text string, m mode) error
	iter(w io.Writer, bits string) error

	put(path string, options *store.Options, key, text string) error
	get(w io.Writer, path, key string) error
	del(path, key string) error
	list(w io.Writer, path string, asJSON bool) error
}

type typedKind[B bitflag.Bits, K bitflag.Kind[B]] struct{}

var kinds = []kind{
	typedKind[uint32, example.SimpleKind]{},
	typedKind[uint8, example.PermissionsKind]{},
	typedKind[uint16, example.DeviceKind]{},
}

func lookupKind(name string) (kind, error) {
	for _, k := range kinds {
		if k.name() == name {
			return k, nil
		}
	}
	return nil, errors.Errorf("unknown kind %q", name)
}

func (typedKind[B, K]) name() string { return bitflag.DescriptorOf[B, K]().Name() }

func (typedKind[B, K]) describe(w io.Writer) {
	d := bitflag.DescriptorOf[B, K]()
	fmt.Fprintf(w, "%s (%d bits)\n", d.Name(), bitflag.Width[B]())
	for _, f := range d.Flags() {
		fmt.Fprintf(w, "  %-12s %#x\n", f.Name, bitflag.Uint64(f.Bits))
	}
	if extra := d.ExtraValidBits(); extra != 0 {
		fmt.Fprintf(w, "  %-12s %#x\n", "(extra)", bitflag.Uint64(extra))
	}
}

// parseBits accepts any Go integer literal that fits the width of B,
// either as a bit pattern or as a negative number.
func parseBits[B bitflag.Bits](s string) (B, error) {
	width := bitflag.Width[B]()
	if u, err := strconv.ParseUint(s, 0, width); err == nil {
		return bitflag.FromUint64[B](u), nil
	}
	i, err := strconv.ParseInt(s, 0, width)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %d bit value", width)
	}
	return B(i), nil
}

func (typedKind[B, K]) format(w io.Writer, bits string, m mode) error {
	b, err := parseBits[B](bits)
	if err != nil {
		return err
	}
	f := bitflag.FromBitsRetain[B, K](b)
	switch m {
	case modeTruncate:
		err = bitflag.ToWriterTruncate(w, f)
	case modeStrict:
		err = bitflag.ToWriterStrict(w, f)
	default:
		err = bitflag.ToWriter(w, f)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w)
	return err
}

func parseText[B bitflag.Bits, K bitflag.Kind[B]](text string, m mode) (bitflag.Flags[B, K], error) {
	switch m {
	case modeTruncate:
		return bitflag.FromTextTruncate[B, K](text)
	case modeStrict:
		return bitflag.FromTextStrict[B, K](text)
	}
	return bitflag.FromText[B, K](text)
}

func (typedKind[B, K]) parse(w io.Writer, text string, m mode) error {
	f, err := parseText[B, K](text, m)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%+v\n", f)
	return err
}

func (typedKind[B, K]) iter(w io.Writer, bits string) error {
	b, err := parseBits[B](bits)
	if err != nil {
		return err
	}
	it := bitflag.FromBitsRetain[B, K](b).IterNames()
	for {
		name, flag, ok := it.Next()
		if !ok {
			break
		}
		fmt.Fprintf(w, "%-12s %#x\n", name, flag)
	}
	if rest := it.Remaining(); !rest.IsEmpty() {
		fmt.Fprintf(w, "%-12s %#x\n", "(remaining)", rest)
	}
	return nil
}

func (typedKind[B, K]) open(path string, options *store.Options) (*store.Store[B, K], error) {
	return store.Open[B, K](path, 0600, options)
}

func (k typedKind[B, K]) put(path string, options *store.Options, key, text string) error {
	f, err := bitflag.FromText[B, K](text)
	if err != nil {
		return err
	}
	s, err := k.open(path, options)
	if err != nil {
		return err
	}
	defer s.Close()
	return s.Put(key, f)
}

func (k typedKind[B, K]) get(w io.Writer, path, key string) error {
	s, err := k.open(path, &store.Options{ReadOnly: true, Timeout: lockTimeout})
	if err != nil {
		return err
	}
	defer s.Close()
	f, ok, err := s.Get(key)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Errorf("%s: no such key %q", k.name(), key)
	}
	_, err = fmt.Fprintf(w, "%+v\n", f)
	return err
}

func (k typedKind[B, K]) del(path, key string) error {
	s, err := k.open(path, &store.Options{Timeout: lockTimeout})
	if err != nil {
		return err
	}
	defer s.Close()
	return s.Delete(key)
}

type entry[B bitflag.Bits, K bitflag.Kind[B]] struct {
	Key   string              `json:"key"`
	Flags bitflag.Flags[B, K] `json:"flags"`
	Bits  B                   `json:"bits"`
}

func (k typedKind[B, K]) list(w io.Writer, path string, asJSON bool) error {
	s, err := k.open(path, &store.Options{ReadOnly: true, Timeout: lockTimeout})
	if err != nil {
		return err
	}
	defer s.Close()

	enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
	return s.ForEach(func(key string, f bitflag.Flags[B, K]) error {
		if asJSON {
			return enc.Encode(entry[B, K]{Key: key, Flags: f, Bits: f.Bits()})
		}
		_, err := fmt.Fprintf(w, "%s\t%s\n", key, f)
		return err
	})
}

// requireStore keeps delete from creating an empty store file.
func requireStore(path string) error {
	if _, err := os.Stat(path); err != nil {
		return errors.Wrap(err, "no store")
	}
	return nil
}
