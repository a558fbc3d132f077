package encode

import (
	"errors"
	"fmt"
)

// Format is an output syntax.
type Format int

const (
	JSONFormat Format = iota
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

var formatNames = [...]string{JSONFormat: "json", YAMLFormat: "yaml"}

// ParseFormat accepts a format name or its first letter.
func ParseFormat(v string) (Format, error) {
	for f, name := range formatNames {
		if v == name || v == name[:1] {
			return Format(f), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) valid() bool { return f >= 0 && int(f) < len(formatNames) }

func (f Format) String() string {
	if !f.valid() {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

func (f Format) MarshalText() ([]byte, error) {
	if !f.valid() {
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, int(f))
	}
	return []byte(formatNames[f]), nil
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool { return f == JSONFormat }

// Suffix returns the file extension for f.
func (f Format) Suffix() string { return "." + f.String() }
