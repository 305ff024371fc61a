package wordid

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Phrase is the result of encoding an integer with a scheme.
// The zero value is an empty phrase.
type Phrase struct {
	scheme *Scheme
	words  []string // content words in display order
}

// Scheme returns the scheme the phrase has been built with.
func (p Phrase) Scheme() *Scheme {
	return p.scheme
}

// Words returns the content words of the phrase, in the order they are
// displayed.
func (p Phrase) Words() []string {
	return append([]string(nil), p.words...)
}

// String returns the natural rendering of the phrase: the template of the
// scheme with the words filled in.
func (p Phrase) String() string {
	if p.scheme == nil {
		return ""
	}
	var title cases.Caser
	if p.scheme.titled {
		title = cases.Title(language.English)
	}
	var b strings.Builder
	slot := 0
	for _, it := range p.scheme.items {
		if it.kind != slotItem {
			b.WriteString(it.text)
			continue
		}
		if p.scheme.titled {
			b.WriteString(title.String(p.words[slot]))
		} else {
			b.WriteString(p.words[slot])
		}
		slot++
	}
	return b.String()
}

// Hyphenated returns the compact rendering of the phrase: the content words
// only, joined by hyphens. It decodes to the same integer as the natural
// rendering.
func (p Phrase) Hyphenated() string {
	return strings.Join(p.words, "-")
}
