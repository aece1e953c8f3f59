package encode

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Format is an output format of a Document, named by its lower case name.
type Format string

const (
	Text Format = "text"
	YAML Format = "yaml"
	JSON Format = "json"
)

var ErrBadFormat = errors.New("bad format")

type encodeFunc func(*Document, io.Writer, *EncState) error

// encoders in listing order.
var encoders = []struct {
	format Format
	enc    encodeFunc
}{
	{Text, encodeText},
	{YAML, encodeYAML},
	{JSON, encodeJSON},
}

// Formats returns the formats Encode supports.
func Formats() []Format {
	res := make([]Format, len(encoders))
	for i := range encoders {
		res[i] = encoders[i].format
	}
	return res
}

// ParseFormat accepts a format name or its first letter, in any case.
func ParseFormat(v string) (Format, error) {
	v = strings.ToLower(v)
	for _, e := range encoders {
		name := string(e.format)
		if v == name || v == name[:1] {
			return e.format, nil
		}
	}
	return "", fmt.Errorf("%w: %q, want one of %v", ErrBadFormat, v, Formats())
}

func (f Format) encoder() (encodeFunc, error) {
	for _, e := range encoders {
		if e.format == f {
			return e.enc, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrBadFormat, string(f))
}

func (f Format) IsText() bool { return f == Text }
