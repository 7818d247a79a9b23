package store

import (
	"bitflag"

	"github.com/pkg/errors"
)

const (
	recordText uint8 = 1 << iota
	recordCompressed
	recordLz4
)

var recordFlags = bitflag.NewDescriptor("RecordFlag", []bitflag.Flag[uint8]{
	{Name: "Text", Bits: recordText},
	{Name: "Compressed", Bits: recordCompressed},
	{Name: "Lz4", Bits: recordLz4},
}, nil)

type recordKind struct{}

func (recordKind) Descriptor() *bitflag.Descriptor[uint8] { return recordFlags }

// RecordFlag is the first byte of every stored record.
type RecordFlag = bitflag.Flags[uint8, recordKind]

var (
	// payload is the text form, otherwise the binary form
	RecordText = bitflag.FromBitsRetain[uint8, recordKind](recordText)
	// payload is compressed, with snappy unless RecordLz4 is set
	RecordCompressed = bitflag.FromBitsRetain[uint8, recordKind](recordCompressed)
	RecordLz4        = bitflag.FromBitsRetain[uint8, recordKind](recordLz4)
)

// minRecordSize = flag + binary payload of at least one byte
const minRecordSize = 2

type Encoding uint8

const (
	EncodingBinary Encoding = iota // default
	EncodingText
)

func (e Encoding) String() string {
	if e == EncodingText {
		return "text"
	}
	return "binary"
}

// ParseEncoding is the inverse of Encoding.String.
func ParseEncoding(s string) (Encoding, error) {
	switch s {
	case "binary":
		return EncodingBinary, nil
	case "text":
		return EncodingText, nil
	}
	return 0, errors.Errorf("unknown encoding %q", s)
}

// marshalRecord encodes f. The payload is only kept compressed when that
// makes it shorter.
func marshalRecord[B bitflag.Bits, K bitflag.Kind[B]](f bitflag.Flags[B, K], enc Encoding, comp CompressAlgorithm) ([]byte, error) {
	var flag RecordFlag
	var payload []byte
	if enc == EncodingText {
		flag.Set(RecordText)
		payload = []byte(f.String())
	} else {
		payload = bitflag.AppendBinary(nil, f.Bits())
	}

	compressor, _, err := comp.codec()
	if err != nil {
		return nil, err
	}
	if compressor != nil && len(payload) > 0 {
		compressed, err := compressor(payload)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to compress with %s", comp)
		}
		if len(compressed) < len(payload) {
			payload = compressed
			flag.Set(RecordCompressed)
			if comp == CompLz4 {
				flag.Set(RecordLz4)
			}
		}
	}

	buf := make([]byte, 0, 1+len(payload))
	buf = append(buf, flag.Bits())
	return append(buf, payload...), nil
}

func unmarshalRecord[B bitflag.Bits, K bitflag.Kind[B]](data []byte) (bitflag.Flags[B, K], error) {
	var f bitflag.Flags[B, K]
	if len(data) == 0 {
		return f, errors.New("empty record")
	}
	flag, ok := bitflag.FromBits[uint8, recordKind](data[0])
	if !ok {
		return f, errors.Errorf("unknown record flags %#x", data[0])
	}
	if !flag.Contains(RecordText) && len(data) < minRecordSize {
		return f, errors.New("record less than min size 2, flag + bits")
	}

	payload := data[1:]
	if flag.Contains(RecordCompressed) {
		comp := CompSnappy
		if flag.Contains(RecordLz4) {
			comp = CompLz4
		}
		_, decompressor, err := comp.codec()
		if err != nil {
			return f, err
		}
		if payload, err = decompressor(payload); err != nil {
			return f, errors.Wrapf(err, "failed to decompress %s record", comp)
		}
	} else if flag.Contains(RecordLz4) {
		return f, errors.Errorf("invalid record flags %v", flag)
	}

	if flag.Contains(RecordText) {
		parsed, err := bitflag.FromText[B, K](string(payload))
		return parsed, errors.Wrap(err, "failed to parse text record")
	}
	bits, err := bitflag.DecodeBinary[B](payload)
	if err != nil {
		return f, errors.Wrap(err, "failed to decode binary record")
	}
	return bitflag.FromBitsRetain[B, K](bits), nil
}
