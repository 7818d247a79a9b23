package bitflag

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

type ParseErrorKind uint8

const (
	// a "|" separated segment is empty after trimming
	EmptyFlag ParseErrorKind = iota + 1
	// a segment is neither a known name nor a hex literal
	InvalidNamedFlag
	// a "0x" segment has bad digits, overflows, or appears in strict mode
	InvalidHexFlag
)

var (
	ErrEmptyFlag        = errors.New("encountered empty flag")
	ErrInvalidNamedFlag = errors.New("unrecognized named flag")
	ErrInvalidHexFlag   = errors.New("invalid hex flag")
)

func (k ParseErrorKind) err() error {
	switch k {
	case EmptyFlag:
		return ErrEmptyFlag
	case InvalidNamedFlag:
		return ErrInvalidNamedFlag
	case InvalidHexFlag:
		return ErrInvalidHexFlag
	}
	return nil
}

// ParseError is returned when text can't be parsed into a flags value.
// It matches ErrEmptyFlag, ErrInvalidNamedFlag or ErrInvalidHexFlag with errors.Is.
type ParseError struct {
	Kind ParseErrorKind
	// offending segment, empty for EmptyFlag
	Got string
}

func (e *ParseError) Error() string {
	if e.Kind == EmptyFlag {
		return ErrEmptyFlag.Error()
	}
	return fmt.Sprintf("%s `%s`", e.Kind.err(), e.Got)
}

func (e *ParseError) Unwrap() error { return e.Kind.err() }

const hexPrefix = "0x"

// FromText parses the text form written by ToWriter. Named flags and hex
// literals are combined without truncation, so unknown bits are retained.
func FromText[B Bits, K Kind[B]](input string) (Flags[B, K], error) {
	return parseText[B, K](input, false)
}

// FromTextTruncate is like FromText but drops unknown bits from the result.
func FromTextTruncate[B Bits, K Kind[B]](input string) (Flags[B, K], error) {
	f, err := FromText[B, K](input)
	if err != nil {
		return f, err
	}
	f.Truncate()
	return f, nil
}

// FromTextStrict parses named flags only; any hex literal is an error.
func FromTextStrict[B Bits, K Kind[B]](input string) (Flags[B, K], error) {
	return parseText[B, K](input, true)
}

func parseText[B Bits, K Kind[B]](input string, strict bool) (Flags[B, K], error) {
	var parsed Flags[B, K]

	if strings.TrimSpace(input) == "" {
		return parsed, nil
	}

	d := DescriptorOf[B, K]()
	for _, segment := range strings.Split(input, "|") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			return Flags[B, K]{}, &ParseError{Kind: EmptyFlag}
		}

		var bits B
		if digits, ok := strings.CutPrefix(segment, hexPrefix); ok {
			if strict {
				return Flags[B, K]{}, &ParseError{Kind: InvalidHexFlag, Got: segment}
			}
			var err error
			if bits, err = parseHex[B](digits); err != nil {
				return Flags[B, K]{}, &ParseError{Kind: InvalidHexFlag, Got: segment}
			}
		} else {
			var ok bool
			if bits, ok = d.Lookup(segment); !ok {
				return Flags[B, K]{}, &ParseError{Kind: InvalidNamedFlag, Got: segment}
			}
		}
		parsed.Set(FromBitsRetain[B, K](bits))
	}
	return parsed, nil
}
