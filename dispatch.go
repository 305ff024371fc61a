package wordid

import (
	"errors"

	"lukechampine.com/uint128"
)

// Schemes returns all phrase schemes, narrowest first. Punk comes after
// StandardPhrase, which has the same width.
func Schemes() []*Scheme {
	return []*Scheme{AdjectiveNoun, SimplePhrase, StandardPhrase, Punk, ComplexPhrase}
}

// EncodeOption configures Encode.
type EncodeOption func(*encodeOptions)

type encodeOptions struct {
	punk bool
}

// WithPunk selects the Punk scheme instead of StandardPhrase for values
// wider than 32 bits which fit into 64 bits.
func WithPunk() EncodeOption {
	return func(opts *encodeOptions) {
		opts.punk = true
	}
}

// SchemeFor returns the narrowest scheme able to encode v.
func SchemeFor(v uint128.Uint128, opts ...EncodeOption) *Scheme {
	var o encodeOptions
	for _, opt := range opts {
		opt(&o)
	}
	switch {
	case AdjectiveNoun.Fits(v):
		return AdjectiveNoun
	case SimplePhrase.Fits(v):
		return SimplePhrase
	case StandardPhrase.Fits(v) && o.punk:
		return Punk
	case StandardPhrase.Fits(v):
		return StandardPhrase
	}
	return ComplexPhrase
}

// Encode returns the phrase for v, using the narrowest scheme able to
// encode v.
func Encode(v uint128.Uint128, opts ...EncodeOption) Phrase {
	return SchemeFor(v, opts...).encode(v)
}

// Decode tries the schemes narrowest first and returns the value of the
// first scheme which decodes text, together with this scheme.
//
// Only an error matching ErrTrailingWords moves on to the next scheme: the
// text may be a phrase of a wider scheme. Any other error is returned
// immediately. Note that a phrase of a wide scheme with omitted words may
// decode as a phrase of a narrower scheme.
func Decode(text string) (uint128.Uint128, *Scheme, error) {
	schemes := Schemes()
	var err error
	for _, s := range schemes {
		var v uint128.Uint128
		if v, err = s.Decode(text); err == nil {
			tracer().Debugf("decoded phrase as %s", s.name)
			return v, s, nil
		}
		if !errors.Is(err, ErrTrailingWords) {
			return uint128.Zero, nil, err
		}
		tracer().Debugf("%v, trying next scheme", err)
	}
	return uint128.Zero, nil, err
}
