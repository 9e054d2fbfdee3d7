package doubleset

import (
	"encoding"
)

var (
	_ encoding.TextMarshaler   = (*DoubleSet)(nil)
	_ encoding.TextUnmarshaler = (*DoubleSet)(nil)
)

func (ds *DoubleSet) MarshalText() ([]byte, error) {
	return []byte(ds.String()), nil
}

// UnmarshalText replaces the contents of ds, which is left untouched on error.
func (ds *DoubleSet) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}

	ds.members = parsed.members
	return nil
}
