package bitflag

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const separator = " | "

// ToWriter writes the text form of f: its named flags separated by " | ",
// followed by any remaining bits as a hex literal. The empty value writes
// nothing.
func ToWriter[B Bits, K Kind[B]](w io.Writer, f Flags[B, K]) error {
	return writeText(w, f, true)
}

// ToWriterTruncate is like ToWriter but drops unknown bits first.
func ToWriterTruncate[B Bits, K Kind[B]](w io.Writer, f Flags[B, K]) error {
	return writeText(w, f.Truncated(), true)
}

// ToWriterStrict writes the named flags of f only. Bits not covered by a
// contained named flag are not written.
func ToWriterStrict[B Bits, K Kind[B]](w io.Writer, f Flags[B, K]) error {
	return writeText(w, f, false)
}

func writeText[B Bits, K Kind[B]](w io.Writer, f Flags[B, K], hexRemaining bool) error {
	first := true
	sep := func() error {
		if first {
			first = false
			return nil
		}
		_, err := io.WriteString(w, separator)
		return err
	}

	it := f.IterNames()
	for {
		name, _, ok := it.Next()
		if !ok {
			break
		}
		if err := sep(); err != nil {
			return errors.Wrap(err, "failed to write separator")
		}
		if _, err := io.WriteString(w, name); err != nil {
			return errors.Wrapf(err, "failed to write flag %q", name)
		}
	}

	if rest := it.Remaining(); hexRemaining && !rest.IsEmpty() {
		if err := sep(); err != nil {
			return errors.Wrap(err, "failed to write separator")
		}
		if _, err := io.WriteString(w, "0x"+upperHex(rest.bits)); err != nil {
			return errors.Wrap(err, "failed to write remaining bits")
		}
	}
	return nil
}

func formatText[B Bits, K Kind[B]](f Flags[B, K], write func(io.Writer, Flags[B, K]) error) string {
	var sb strings.Builder
	// strings.Builder never fails
	_ = write(&sb, f)
	return sb.String()
}

// String returns the text form written by ToWriter.
func (f Flags[B, K]) String() string { return formatText(f, ToWriter[B, K]) }

// Format implements fmt.Formatter.
//
//	%v %s   text form
//	%q      quoted text form
//	%+v     debug form with name, text, binary, octal and hex
//	%d      integer value
//	%b %o %O %x %X  bit pattern in that base
func (f Flags[B, K]) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, f.debug())
			return
		}
		fallthrough
	case 's':
		fmt.Fprintf(s, fmt.FormatString(s, 's'), f.String())
	case 'q':
		fmt.Fprintf(s, fmt.FormatString(s, 'q'), f.String())
	case 'd':
		fmt.Fprintf(s, fmt.FormatString(s, verb), f.bits)
	case 'b', 'o', 'O', 'x', 'X':
		fmt.Fprintf(s, fmt.FormatString(s, verb), Uint64(f.bits))
	default:
		fmt.Fprintf(s, "%%!%c(%s=%s)", verb, f.Descriptor().Name(), f.String())
	}
}

func (f Flags[B, K]) debug() string {
	width := Width[B]()
	u := Uint64(f.bits)

	text := f.String()
	if f.IsEmpty() {
		text = "0x0"
	}

	pad := func(s string, n int) string {
		if len(s) < n {
			s = strings.Repeat("0", n-len(s)) + s
		}
		return s
	}

	return fmt.Sprintf("%s { flags: %s, bits: 0b%s, octal: 0o%s, hex: 0x%s }",
		f.Descriptor().Name(),
		text,
		pad(strconv.FormatUint(u, 2), width),
		pad(strconv.FormatUint(u, 8), octalWidth(width)),
		pad(upperHex(f.bits), width/4),
	)
}
