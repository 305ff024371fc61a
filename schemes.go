package wordid

import (
	"github.com/npillmayer/wordid/dict"
	"lukechampine.com/uint128"
)

// The phrase schemes, narrowest first.
var (
	// AdjectiveNoun encodes 16 bit integers, e.g. "The brave fox".
	AdjectiveNoun = newScheme("adjective-noun", 16,
		"The {adjective} {noun}", false,
		Draw{dict.Adjective, 1, Repeatable},
		Draw{dict.Noun, 1, Repeatable},
	)

	// SimplePhrase encodes 32 bit integers, e.g. "The brave fox jumps swiftly".
	SimplePhrase = newScheme("simple-phrase", 32,
		"The {adjective} {noun} {verb} {adverb}", false,
		Draw{dict.Adjective, 1, Repeatable},
		Draw{dict.Noun, 1, Repeatable},
		Draw{dict.Verb, 1, Repeatable},
		Draw{dict.Adverb, 1, Repeatable},
	)

	// StandardPhrase encodes 64 bit integers as a sentence with two
	// prepositional clauses. Adjectives, nouns and prepositions do not
	// repeat within a phrase.
	StandardPhrase = newScheme("phrase", 64,
		"The {adjective} {adjective} {noun} {verb} {adverb} {preposition} the {adjective} {noun} {preposition} the {adjective} {noun}", false,
		Draw{dict.Adjective, 4, NoRepeat},
		Draw{dict.Noun, 3, NoRepeat},
		Draw{dict.Verb, 1, Repeatable},
		Draw{dict.Adverb, 1, Repeatable},
		Draw{dict.Preposition, 2, NoRepeat},
	)

	// Punk encodes 64 bit integers as five lines of shouted words.
	// Imperatives and adjectives do not repeat within a phrase.
	Punk = newScheme("punk", 64,
		"{imperative} {pronoun}, {imperative} {pronoun}\n{imperative} {pronoun}, {imperative} {pronoun}\n{adjective}, {adjective}\n{adjective}, {adjective}\n{adverb}!", true,
		Draw{dict.Imperative, 4, NoRepeat},
		Draw{dict.Pronoun, 4, Repeatable},
		Draw{dict.Adjective, 4, NoRepeat},
		Draw{dict.Adverb, 1, Repeatable},
	)

	// ComplexPhrase encodes 128 bit integers. Only pronouns may repeat
	// within a phrase.
	ComplexPhrase = newScheme("complex-phrase", 128,
		"The {adjective} {noun} {verb} {adverb} {preposition} the {adjective} {noun} {preposition} the {noun} and {verb} {pronoun} {adverb} that the {adjective} {adjective} {noun} {verb} {pronoun} {adverb} and {verb} {pronoun} and {pronoun} {adverb}, so {imperative}, {imperative} and {imperative}", false,
		Draw{dict.Adjective, 4, NoRepeat},
		Draw{dict.Noun, 4, NoRepeat},
		Draw{dict.Verb, 4, NoRepeat},
		Draw{dict.Adverb, 4, NoRepeat},
		Draw{dict.Preposition, 2, NoRepeat},
		Draw{dict.Pronoun, 4, Repeatable},
		Draw{dict.Imperative, 3, NoRepeat},
	)
)

// EncodeAdjectiveNoun returns the AdjectiveNoun phrase for v.
func EncodeAdjectiveNoun(v uint16) Phrase {
	return AdjectiveNoun.encode(uint128.From64(uint64(v)))
}

// DecodeAdjectiveNoun decodes an AdjectiveNoun phrase.
func DecodeAdjectiveNoun(text string) (uint16, error) {
	v, err := AdjectiveNoun.Decode(text)
	return uint16(v.Lo), err
}

// EncodeSimplePhrase returns the SimplePhrase phrase for v.
func EncodeSimplePhrase(v uint32) Phrase {
	return SimplePhrase.encode(uint128.From64(uint64(v)))
}

// DecodeSimplePhrase decodes a SimplePhrase phrase.
func DecodeSimplePhrase(text string) (uint32, error) {
	v, err := SimplePhrase.Decode(text)
	return uint32(v.Lo), err
}

// EncodePhrase returns the StandardPhrase phrase for v.
func EncodePhrase(v uint64) Phrase {
	return StandardPhrase.encode(uint128.From64(v))
}

// DecodePhrase decodes a StandardPhrase phrase.
func DecodePhrase(text string) (uint64, error) {
	v, err := StandardPhrase.Decode(text)
	return v.Lo, err
}

// EncodePunk returns the Punk phrase for v.
func EncodePunk(v uint64) Phrase {
	return Punk.encode(uint128.From64(v))
}

// DecodePunk decodes a Punk phrase.
func DecodePunk(text string) (uint64, error) {
	v, err := Punk.Decode(text)
	return v.Lo, err
}

// EncodeComplexPhrase returns the ComplexPhrase phrase for v.
func EncodeComplexPhrase(v uint128.Uint128) Phrase {
	return ComplexPhrase.encode(v)
}

// DecodeComplexPhrase decodes a ComplexPhrase phrase.
func DecodeComplexPhrase(text string) (uint128.Uint128, error) {
	return ComplexPhrase.Decode(text)
}
