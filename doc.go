/*
Package wordid turns integer identifiers into word phrases and back.

A phrase is built by drawing words from static dictionaries (see package
dict). Every dictionary has a power-of-two number of words, so each word
drawn carries a fixed number of bits of the identifier. Encoding slices the
identifier into these bit fields, lowest bits first; decoding looks up every
word and shifts the indices back into place, in reverse order.

There are five phrase schemes for different widths of identifiers:

	AdjectiveNoun    16 bit   "The brave fox"
	SimplePhrase     32 bit   "The brave fox jumps swiftly"
	StandardPhrase   64 bit   "The … fox jumps swiftly over the … dog near the … owl"
	Punk             64 bit   "Jump Me, Kiss You …"
	ComplexPhrase   128 bit   three clauses of 25 words

Decoding ignores case and accepts any non-letter characters between words.
Filler words ("the", "a", "and", "that", "so") may be left out. Every encoded
phrase decodes to the original identifier, for every identifier of the
scheme's width.

Further Reading

	https://algorithmica.org/en/eytzinger   (Eytzinger layout and search)

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package wordid

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'wordid'
func tracer() tracing.Trace {
	return tracing.Select("wordid")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
