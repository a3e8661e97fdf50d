// Package format enumerates the output formats of the encode package.
package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	TextFormat Format = iota
	LaTeXFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"t":     TextFormat,
		"text":  TextFormat,
		"l":     LaTeXFormat,
		"latex": LaTeXFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case TextFormat:
		return []byte("text"), nil
	case LaTeXFormat:
		return []byte("latex"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsText() bool  { return f == TextFormat }
func (f Format) IsLaTeX() bool { return f == LaTeXFormat }
