package wordid

import (
	"errors"
	"fmt"

	"github.com/npillmayer/wordid/dict"
)

// ErrTrailingWords is returned (wrapped) when text holds more words than a
// scheme can take. When trying several schemes, this signals that a wider
// scheme may fit the text.
var ErrTrailingWords = errors.New("words left after parsing")

// TrailingWordsError reports words left over after a scheme has read all
// of its words. It matches ErrTrailingWords with errors.Is.
type TrailingWordsError struct {
	Scheme string
	Extra  int // number of tokens not consumed
}

func (e *TrailingWordsError) Error() string {
	return fmt.Sprintf("%s: %d %s", e.Scheme, e.Extra, ErrTrailingWords)
}

func (e *TrailingWordsError) Unwrap() error {
	return ErrTrailingWords
}

// InsufficientWordsError is returned if text ends before all words of a
// scheme have been read.
type InsufficientWordsError struct {
	Scheme   string
	Expected int // number of words the scheme needs
	Actual   int // number of words found
}

func (e *InsufficientWordsError) Error() string {
	return fmt.Sprintf("%s: not enough words, expected %d, actual %d", e.Scheme, e.Expected, e.Actual)
}

// UnrecognizedWordError is returned if a word is not contained in the
// dictionary for its position.
type UnrecognizedWordError struct {
	Word     string
	Class    dict.Class
	Position int // position of the word in the phrase, counting content words only
}

func (e *UnrecognizedWordError) Error() string {
	return fmt.Sprintf("word %q unrecognized, expected %s", e.Word, e.Class)
}

// Suggest returns up to n known words similar to the unrecognized one.
func (e *UnrecognizedWordError) Suggest(n int) []string {
	return dict.Get(e.Class).Suggest(e.Word, n)
}

// RangeError is returned if a value is too wide for a scheme.
type RangeError struct {
	Scheme string
	Width  uint
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: value exceeds %d bits", e.Scheme, e.Width)
}
