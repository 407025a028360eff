package wirepack

import (
	"strings"

	"github.com/wippyai/wirepack/errors"
)

// Format selects the output encoding.
type Format uint8

const (
	FormatBinary Format = iota
	FormatCBOR
	FormatMsgpack
)

var formatNames = [...]string{
	FormatBinary:  "binary",
	FormatCBOR:    "cbor",
	FormatMsgpack: "msgpack",
}

func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "unknown"
}

// ParseFormat resolves a format by name, case-insensitively.
func ParseFormat(name string) (Format, error) {
	for i, n := range formatNames {
		if strings.EqualFold(n, name) {
			return Format(i), nil
		}
	}
	return 0, errors.InvalidInput(errors.PhaseConfig, "unknown format "+name)
}

// Opts configures a write. The zero value selects the binary format.
type Opts struct {
	Format Format
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Format) UnmarshalText(text []byte) error {
	parsed, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}
