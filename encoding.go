package bitflag

import (
	"github.com/pkg/errors"
)

// MarshalText implements encoding.TextMarshaler with the ToWriter text form.
func (f Flags[B, K]) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using FromText.
func (f *Flags[B, K]) UnmarshalText(text []byte) error {
	parsed, err := FromText[B, K](string(text))
	if err != nil {
		return errors.Wrapf(err, "unmarshal %s", f.Descriptor().Name())
	}
	*f = parsed
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler. The bits are written
// big-endian in exactly Width/8 bytes.
func (f Flags[B, K]) MarshalBinary() ([]byte, error) {
	return AppendBinary(nil, f.bits), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The bits are
// retained as is, unknown ones included.
func (f *Flags[B, K]) UnmarshalBinary(data []byte) error {
	bits, err := DecodeBinary[B](data)
	if err != nil {
		return errors.Wrapf(err, "unmarshal %s", f.Descriptor().Name())
	}
	*f = FromBitsRetain[B, K](bits)
	return nil
}

// AppendBinary appends the big-endian bit pattern of b to buf.
func AppendBinary[B Bits](buf []byte, b B) []byte {
	u := Uint64(b)
	for i := Width[B]()/8 - 1; i >= 0; i-- {
		buf = append(buf, byte(u>>(uint(i)*8)))
	}
	return buf
}

// DecodeBinary reads a bit pattern written by AppendBinary.
func DecodeBinary[B Bits](data []byte) (B, error) {
	size := Width[B]() / 8
	if len(data) != size {
		return 0, errors.Errorf("expected %d bytes, got %d", size, len(data))
	}
	var u uint64
	for _, c := range data {
		u = u<<8 | uint64(c)
	}
	return FromUint64[B](u), nil
}
