package wordid

import (
	"fmt"

	"lukechampine.com/uint128"
)

// ID16 is a 16 bit identifier which marshals to an AdjectiveNoun phrase.
type ID16 uint16

// ID32 is a 32 bit identifier which marshals to a SimplePhrase phrase.
type ID32 uint32

// ID64 is a 64 bit identifier which marshals to a StandardPhrase phrase.
type ID64 uint64

// ID128 is a 128 bit identifier which marshals to a ComplexPhrase phrase.
type ID128 uint128.Uint128

func (id ID16) String() string  { return EncodeAdjectiveNoun(uint16(id)).String() }
func (id ID32) String() string  { return EncodeSimplePhrase(uint32(id)).String() }
func (id ID64) String() string  { return EncodePhrase(uint64(id)).String() }
func (id ID128) String() string { return EncodeComplexPhrase(uint128.Uint128(id)).String() }

// MarshalText implements encoding.TextMarshaler.
func (id ID16) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

// MarshalText implements encoding.TextMarshaler.
func (id ID32) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

// MarshalText implements encoding.TextMarshaler.
func (id ID64) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

// MarshalText implements encoding.TextMarshaler.
func (id ID128) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID16) UnmarshalText(text []byte) error {
	v, err := DecodeAdjectiveNoun(string(text))
	if err != nil {
		return unmarshalError(text, "ID16", err)
	}
	*id = ID16(v)
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID32) UnmarshalText(text []byte) error {
	v, err := DecodeSimplePhrase(string(text))
	if err != nil {
		return unmarshalError(text, "ID32", err)
	}
	*id = ID32(v)
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID64) UnmarshalText(text []byte) error {
	v, err := DecodePhrase(string(text))
	if err != nil {
		return unmarshalError(text, "ID64", err)
	}
	*id = ID64(v)
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID128) UnmarshalText(text []byte) error {
	v, err := DecodeComplexPhrase(string(text))
	if err != nil {
		return unmarshalError(text, "ID128", err)
	}
	*id = ID128(v)
	return nil
}

func unmarshalError(text []byte, target string, err error) error {
	return fmt.Errorf("wordid: cannot unmarshal %q into %s: %w", text, target, err)
}
