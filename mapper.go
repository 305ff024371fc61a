package wordid

import (
	"math/bits"

	"github.com/npillmayer/wordid/dict"
	"lukechampine.com/uint128"
)

// Policy selects how a group of words is drawn from a dictionary.
type Policy uint8

const (
	// Repeatable draws every word from the complete dictionary. Words may
	// occur more than once in a group.
	Repeatable Policy = iota
	// NoRepeat splits the dictionary into equally sized blocks, one for each
	// word of the group, and draws every word from its own block. Words of a
	// group are therefore distinct, at the cost of fewer bits per word.
	NoRepeat
)

func (p Policy) String() string {
	if p == NoRepeat {
		return "no-repeat"
	}
	return "repeatable"
}

// Mapper maps bit fields to words of one dictionary and back.
// The bits of an identifier are threaded through a sequence of draws in an
// accumulator: drawing consumes the lowest bits, unwrapping shifts bits in
// from the right.
type Mapper struct {
	dict *dict.Dictionary
	bits uint
}

// NewMapper creates a mapper for dictionary d. It panics if the size of d
// is not a power of two.
func NewMapper(d *dict.Dictionary) Mapper {
	n := d.Len()
	assert(n > 0 && n&(n-1) == 0, "word mapper needs a dictionary with a power-of-two size")
	return Mapper{
		dict: d,
		bits: uint(bits.TrailingZeros(uint(n))),
	}
}

// Bits returns the number of bits a single word carries.
func (m Mapper) Bits() uint {
	return m.bits
}

// Dictionary returns the dictionary backing m.
func (m Mapper) Dictionary() *dict.Dictionary {
	return m.dict
}

// GroupBits returns the number of bits a group of count words consumes
// when drawn with policy p.
func (m Mapper) GroupBits(count int, p Policy) uint {
	if p == NoRepeat {
		return uint(count) * m.blockBits(count)
	}
	return uint(count) * m.bits
}

// blockBits returns the bits per word for a no-repeat group of count words.
// Of every word's index, log2(P) bits select the block, with P being count
// rounded up to the next power of two.
func (m Mapper) blockBits(count int) uint {
	extra := uint(bits.Len(uint(count - 1)))
	assert(extra < m.bits, "no-repeat group too large for dictionary")
	return m.bits - extra
}

// DrawOne returns the word selected by the lowest bits of acc, together
// with the remaining bits.
func (m Mapper) DrawOne(acc uint128.Uint128) (string, uint128.Uint128) {
	mask := uint64(m.dict.Len() - 1)
	word := m.dict.At(int(acc.Lo & mask))
	return word, acc.Rsh(m.bits)
}

// UnwrapOne shifts the index of word into acc. It returns false if word is
// not in the dictionary.
func (m Mapper) UnwrapOne(word string, acc uint128.Uint128) (uint128.Uint128, bool) {
	idx, ok := m.dict.Index(word)
	if !ok {
		return acc, false
	}
	return acc.Lsh(m.bits).Or64(uint64(idx)), true
}

// DrawMany fills dst with words drawn one after another, see DrawOne.
func (m Mapper) DrawMany(acc uint128.Uint128, dst []string) uint128.Uint128 {
	for i := range dst {
		dst[i], acc = m.DrawOne(acc)
	}
	return acc
}

// UnwrapMany shifts the indices of words into acc, in slice order. words
// has to be in reverse draw order, see Unwrap.
// It stops at the first unknown word and returns an *UnrecognizedWordError
// with the position of the word within words.
func (m Mapper) UnwrapMany(words []string, acc uint128.Uint128) (uint128.Uint128, error) {
	for i, word := range words {
		next, ok := m.UnwrapOne(word, acc)
		if !ok {
			return uint128.Zero, m.unrecognized(word, i)
		}
		acc = next
	}
	return acc, nil
}

// DrawManyNoRepeat fills dst with pairwise distinct words: word i is drawn
// from block i of the dictionary.
func (m Mapper) DrawManyNoRepeat(acc uint128.Uint128, dst []string) uint128.Uint128 {
	shift := m.blockBits(len(dst))
	mask := uint64(1)<<shift - 1
	for i := range dst {
		local := acc.Lo & mask
		dst[i] = m.dict.At(int(local + uint64(i)<<shift))
		acc = acc.Rsh(shift)
	}
	return acc
}

// UnwrapManyNoRepeat reverses DrawManyNoRepeat for words in reverse draw
// order. Only the offset of a word within its block is shifted into acc;
// the block is implied by the position of the word in the group.
func (m Mapper) UnwrapManyNoRepeat(words []string, acc uint128.Uint128) (uint128.Uint128, error) {
	shift := m.blockBits(len(words))
	mask := uint64(1)<<shift - 1
	for i, word := range words {
		idx, ok := m.dict.Index(word)
		if !ok {
			return uint128.Zero, m.unrecognized(word, i)
		}
		acc = acc.Lsh(shift).Or64(uint64(idx) & mask)
	}
	return acc, nil
}

// Draw fills dst using policy p.
func (m Mapper) Draw(acc uint128.Uint128, dst []string, p Policy) uint128.Uint128 {
	if p == NoRepeat {
		return m.DrawManyNoRepeat(acc, dst)
	}
	return m.DrawMany(acc, dst)
}

// Unwrap reverses Draw for words drawn with policy p. words has to be in
// reverse draw order: the word drawn last comes first. Passing the words in
// the order Draw filled them yields a different integer, not an error.
func (m Mapper) Unwrap(words []string, acc uint128.Uint128, p Policy) (uint128.Uint128, error) {
	if p == NoRepeat {
		return m.UnwrapManyNoRepeat(words, acc)
	}
	return m.UnwrapMany(words, acc)
}

func (m Mapper) unrecognized(word string, i int) *UnrecognizedWordError {
	return &UnrecognizedWordError{
		Word:     word,
		Class:    m.dict.Class(),
		Position: i,
	}
}

// --- Mappers for the static dictionaries -----------------------------------

var mappers = newMappers()

func newMappers() map[dict.Class]Mapper {
	mm := make(map[dict.Class]Mapper)
	for _, c := range dict.Classes() {
		mm[c] = NewMapper(dict.Get(c))
	}
	return mm
}

// MapperFor returns the mapper for the static dictionary of word class c.
func MapperFor(c dict.Class) Mapper {
	m, ok := mappers[c]
	assert(ok, "no mapper for word class")
	return m
}
