package wordid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/wordid/dict"
	"github.com/npillmayer/wordid/eytzinger"
	"github.com/npillmayer/wordid/wordlist"
	"lukechampine.com/uint128"
)

// Draw is a group of words drawn from the dictionary of a word class.
type Draw struct {
	Class  dict.Class
	Count  int
	Policy Policy
}

func (d Draw) String() string {
	return fmt.Sprintf("%s×%d (%s)", d.Class, d.Count, d.Policy)
}

// Scheme is a phrase format for integers of a fixed width.
//
// A scheme draws its words group by group, in the order of its draws,
// consuming the bits of an integer from the least significant end. The
// words are then placed into a template. The template holds a placeholder
// like "{noun}" for every word; the k-th placeholder of a word class takes
// the k-th word of the draw for this class. Every other word in the template
// is a filler word. When decoding, filler words may be omitted, and a filler
// "the" or "a" may be given as either of the two.
//
// Schemes are immutable and may be shared between goroutines.
type Scheme struct {
	name      string
	width     uint
	template  string
	titled    bool
	draws     []Draw
	mappers   []Mapper // one per draw
	offsets   []int    // offset of every draw's words in draw order
	items     []item   // parsed template
	slotDrawn []int    // position in draw order, for every display slot
	drawnSlot []int    // display slot, for every position in draw order
	maxCount  int
}

type itemKind uint8

const (
	textItem   itemKind = iota // punctuation and spaces
	fillerItem                 // literal word of the template
	slotItem                   // placeholder
)

type item struct {
	kind  itemKind
	text  string
	class dict.Class // slotItem only
}

// newScheme creates a scheme and checks its consistency. It panics if the
// draws do not consume exactly width bits or if the template does not match
// the draws.
func newScheme(name string, width uint, template string, titled bool, draws ...Draw) *Scheme {
	assert(width > 0 && width <= 128, "scheme width must be in 1…128")
	s := &Scheme{
		name:     name,
		width:    width,
		template: template,
		titled:   titled,
		draws:    draws,
		items:    parseTemplate(template),
	}
	var sum uint
	total := 0
	seen := make(map[dict.Class]int) // class → draw index
	for i, d := range draws {
		assert(d.Count > 0, "draw of scheme "+name+" must take at least one word")
		if _, dup := seen[d.Class]; dup {
			panic(fmt.Sprintf("scheme %s draws from %s twice", name, d.Class))
		}
		seen[d.Class] = i
		m := MapperFor(d.Class)
		s.mappers = append(s.mappers, m)
		s.offsets = append(s.offsets, total)
		total += d.Count
		sum += m.GroupBits(d.Count, d.Policy)
		s.maxCount = max(s.maxCount, d.Count)
	}
	if sum != width {
		panic(fmt.Sprintf("draws of scheme %s consume %d bits, expected %d", name, sum, width))
	}
	// assign display slots to drawn words
	next := make([]int, len(draws)) // next word of every draw
	s.drawnSlot = make([]int, total)
	for _, it := range s.items {
		if it.kind != slotItem {
			continue
		}
		i, ok := seen[it.class]
		if !ok {
			panic(fmt.Sprintf("template of scheme %s uses {%s}, which is never drawn", name, it.class))
		}
		if next[i] == draws[i].Count {
			panic(fmt.Sprintf("template of scheme %s uses {%s} too often", name, it.class))
		}
		s.drawnSlot[s.offsets[i]+next[i]] = len(s.slotDrawn)
		s.slotDrawn = append(s.slotDrawn, s.offsets[i]+next[i])
		next[i]++
	}
	for i, d := range draws {
		if next[i] != d.Count {
			panic(fmt.Sprintf("template of scheme %s has %d × {%s}, expected %d", name, next[i], d.Class, d.Count))
		}
	}
	return s
}

// parseTemplate splits a template into text, filler words and placeholders.
func parseTemplate(template string) []item {
	var items []item
	for i := 0; i < len(template); {
		switch c := template[i]; {
		case c == '{':
			j := strings.IndexByte(template[i:], '}')
			assert(j > 0, "unterminated placeholder in template")
			name := template[i+1 : i+j]
			class, ok := dict.ParseClass(name)
			if !ok {
				panic(fmt.Sprintf("unknown placeholder {%s} in template", name))
			}
			items = append(items, item{kind: slotItem, class: class})
			i += j + 1
		case wordlist.IsLetter(rune(c)):
			j := i
			for j < len(template) && wordlist.IsLetter(rune(template[j])) {
				j++
			}
			items = append(items, item{kind: fillerItem, text: template[i:j]})
			i = j
		default:
			j := i
			for j < len(template) && template[j] != '{' && !wordlist.IsLetter(rune(template[j])) {
				j++
			}
			items = append(items, item{kind: textItem, text: template[i:j]})
			i = j
		}
	}
	return items
}

// Name returns the name of the scheme, e.g. "simple-phrase".
func (s *Scheme) Name() string { return s.name }

// Width returns the number of bits of integers the scheme encodes.
func (s *Scheme) Width() uint { return s.width }

// Template returns the template the phrases of the scheme follow.
func (s *Scheme) Template() string { return s.template }

// Len returns the number of content words of a phrase.
func (s *Scheme) Len() int { return len(s.slotDrawn) }

// Draws returns the draws of the scheme in encoding order.
func (s *Scheme) Draws() []Draw {
	return append([]Draw(nil), s.draws...)
}

func (s *Scheme) String() string {
	return fmt.Sprintf("%s (%d bit)", s.name, s.width)
}

// Fits returns true if v has no bits set beyond the width of the scheme.
func (s *Scheme) Fits(v uint128.Uint128) bool {
	return s.width >= 128 || v.Rsh(s.width).IsZero()
}

// Encode returns the phrase for v. If v is too wide for the scheme, a
// *RangeError is returned.
func (s *Scheme) Encode(v uint128.Uint128) (Phrase, error) {
	if !s.Fits(v) {
		return Phrase{}, &RangeError{Scheme: s.name, Width: s.width}
	}
	return s.encode(v), nil
}

func (s *Scheme) encode(v uint128.Uint128) Phrase {
	drawn := make([]string, len(s.drawnSlot))
	acc := v
	for i, d := range s.draws {
		acc = s.mappers[i].Draw(acc, drawn[s.offsets[i]:s.offsets[i]+d.Count], d.Policy)
	}
	assert(acc.IsZero(), "bits left after drawing all words of "+s.name)
	words := make([]string, len(s.slotDrawn))
	for slot, k := range s.slotDrawn {
		words[slot] = drawn[k]
	}
	return Phrase{scheme: s, words: words}
}

// Decode returns the integer encoded by text.
//
// text is split into words at every character other than an ASCII letter.
// Case does not matter. Decoding fails with *InsufficientWordsError if words
// are missing, with *TrailingWordsError if words are left over and with
// *UnrecognizedWordError if a word is unknown. Words are looked up only
// after the number of words has been checked.
func (s *Scheme) Decode(text string) (uint128.Uint128, error) {
	words, err := s.scan(tokenize(text))
	if err != nil {
		return uint128.Zero, err
	}
	return s.unwrap(words)
}

func tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !wordlist.IsLetter(r)
	})
}

// scan walks the template and collects the content words from tokens, in
// display order.
func (s *Scheme) scan(tokens []string) ([]string, error) {
	words := make([]string, 0, len(s.slotDrawn))
	for _, it := range s.items {
		switch it.kind {
		case fillerItem:
			if len(tokens) > 0 && acceptsFiller(it.text, tokens[0]) {
				tokens = tokens[1:]
			}
		case slotItem:
			if len(tokens) == 0 {
				return nil, &InsufficientWordsError{
					Scheme:   s.name,
					Expected: len(s.slotDrawn),
					Actual:   len(words),
				}
			}
			words = append(words, tokens[0])
			tokens = tokens[1:]
		}
	}
	if len(tokens) > 0 {
		return nil, &TrailingWordsError{Scheme: s.name, Extra: len(tokens)}
	}
	return words, nil
}

func acceptsFiller(filler, token string) bool {
	if isArticle(filler) {
		return isArticle(token)
	}
	return eytzinger.Equal(filler, token)
}

func isArticle(w string) bool {
	return eytzinger.Equal(w, "the") || eytzinger.Equal(w, "a")
}

// unwrap reverses the draws, last draw first. Within a draw, the last word
// drawn is unwrapped first.
func (s *Scheme) unwrap(words []string) (uint128.Uint128, error) {
	acc := uint128.Zero
	group := make([]string, s.maxCount)
	for i := len(s.draws) - 1; i >= 0; i-- {
		d := s.draws[i]
		g := group[:d.Count]
		for k := range g {
			g[k] = words[s.drawnSlot[s.offsets[i]+d.Count-1-k]]
		}
		var err error
		if acc, err = s.mappers[i].Unwrap(g, acc, d.Policy); err != nil {
			var werr *UnrecognizedWordError
			if errors.As(err, &werr) {
				werr.Position = s.drawnSlot[s.offsets[i]+d.Count-1-werr.Position]
			}
			tracer().Debugf("%s: %v", s.name, err)
			return uint128.Zero, err
		}
	}
	return acc, nil
}
