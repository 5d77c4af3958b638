package encoding

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/arloliu/puz/errs"
)

// Text converts between the bytes stored in a puzzle file and Go strings.
//
// Encode must fail rather than substitute when a string cannot be represented,
// and must reject strings containing NUL since NUL terminates every text field.
type Text interface {
	Name() string
	Decode(b []byte) (string, error)
	Encode(s string) ([]byte, error)
}

var (
	// Latin1 is the ISO-8859-1 encoding used by format versions before 2.0.
	Latin1 Text = latin1{}
	// UTF8 is the encoding used by format version 2.0 and later.
	UTF8 Text = utf8Text{}
)

type latin1 struct{}

func (latin1) Name() string { return "ISO-8859-1" }

func (latin1) Decode(b []byte) (string, error) {
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrInvalidText, err)
	}

	return string(out), nil
}

func (latin1) Encode(s string) ([]byte, error) {
	if err := checkNUL(s); err != nil {
		return nil, err
	}

	out, err := charmap.ISO8859_1.NewEncoder().String(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q as ISO-8859-1: %v", errs.ErrUnencodableText, s, err)
	}

	return []byte(out), nil
}

type utf8Text struct{}

func (utf8Text) Name() string { return "UTF-8" }

func (utf8Text) Decode(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: invalid UTF-8 sequence", errs.ErrInvalidText)
	}

	return string(b), nil
}

func (utf8Text) Encode(s string) ([]byte, error) {
	if err := checkNUL(s); err != nil {
		return nil, err
	}
	if !utf8.ValidString(s) {
		return nil, fmt.Errorf("%w: %q is not valid UTF-8", errs.ErrUnencodableText, s)
	}

	return []byte(s), nil
}

func checkNUL(s string) error {
	if strings.IndexByte(s, 0) >= 0 {
		return fmt.Errorf("%w: %q contains NUL", errs.ErrUnencodableText, s)
	}

	return nil
}
