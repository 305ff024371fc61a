/*
Package dict holds the static dictionaries words are drawn from.

There is one dictionary per word class. The word lists are embedded into the
binary and loaded once at program start. After loading, a dictionary is
frozen: its words are kept in Eytzinger order and never change, so the
dictionaries may be shared freely between goroutines.

The position of a word in Eytzinger order is its index, i.e., the value a
word encodes. Changing a word list therefore changes every phrase built from
it; Fingerprint helps to detect such mismatches.
*/
package dict

import (
	"embed"
	"fmt"
	"io"
	"slices"
	"sync"

	"github.com/derekparker/trie"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/wordid/eytzinger"
	"github.com/npillmayer/wordid/wordlist"
	"github.com/zeebo/xxh3"
)

// tracer writes to trace with key 'wordid'
func tracer() tracing.Trace {
	return tracing.Select("wordid")
}

// WordReader yields words one-by-one.
// It should return io.EOF when the stream is exhausted.
type WordReader interface {
	Next() (string, error)
}

// Dictionary is an immutable list of distinct words.
type Dictionary struct {
	name        string
	class       Class
	tree        []string // words in Eytzinger order
	sorted      []string // words in ascending order
	fingerprint uint64
	once        sync.Once
	prefixes    *trie.Trie // built on first call to Suggest
}

// Load reads all words from reader and builds a frozen dictionary.
// Words are compared ignoring ASCII case; duplicates are an error.
// The size of the dictionary is not restricted here, but only dictionaries
// with a power-of-two size can back a word mapper.
func Load(name string, class Class, reader WordReader) (*Dictionary, error) {
	words := make([]string, 0, 256)
	for {
		word, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dictionary %s: %w", name, err)
		}
		if !wordlist.IsWord(word) {
			return nil, fmt.Errorf("dictionary %s: %q is not a plain ASCII word", name, word)
		}
		words = append(words, word)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("dictionary %s is empty", name)
	}
	slices.SortFunc(words, eytzinger.Compare)
	for i := 1; i < len(words); i++ {
		if eytzinger.Compare(words[i-1], words[i]) == 0 {
			return nil, fmt.Errorf("dictionary %s: duplicate word %q", name, words[i])
		}
	}
	dict := &Dictionary{
		name:        name,
		class:       class,
		tree:        eytzinger.Layout(words),
		sorted:      words,
		fingerprint: fingerprint(words),
	}
	tracer().Infof("dictionary %s (%s): %d words, fingerprint %016x",
		name, class, len(words), dict.fingerprint)
	return dict, nil
}

func fingerprint(sorted []string) uint64 {
	h := xxh3.New()
	for _, word := range sorted {
		h.WriteString(word)
		h.Write([]byte{'\n'})
	}
	return h.Sum64()
}

// Name returns the name the dictionary has been loaded with.
func (dict *Dictionary) Name() string { return dict.name }

// Class returns the word class of the dictionary.
func (dict *Dictionary) Class() Class { return dict.class }

// Len returns the number of words.
func (dict *Dictionary) Len() int { return len(dict.tree) }

// At returns the word at index i (Eytzinger order).
func (dict *Dictionary) At(i int) string { return dict.tree[i] }

// Index finds word, ignoring ASCII case, and returns its index.
// The second result is false if word is not in the dictionary.
func (dict *Dictionary) Index(word string) (int, bool) {
	return eytzinger.Search(dict.tree, word)
}

// Words returns a copy of all words in index order.
func (dict *Dictionary) Words() []string {
	return slices.Clone(dict.tree)
}

// Sorted returns a copy of all words in ascending order.
func (dict *Dictionary) Sorted() []string {
	return slices.Clone(dict.sorted)
}

// Fingerprint is a hash of the word list. Two dictionaries with the same
// fingerprint map words to the same indices.
func (dict *Dictionary) Fingerprint() uint64 { return dict.fingerprint }

func (dict *Dictionary) String() string {
	return fmt.Sprintf("Dictionary(%s,%s,words=%d)", dict.name, dict.class, len(dict.tree))
}

// --- Static dictionaries ---------------------------------------------------

//go:embed words/*.txt
var wordFiles embed.FS

var dictionaries = loadAll()

// Get returns the static dictionary for word class c.
func Get(c Class) *Dictionary {
	assert(c < numClasses, "unknown word class")
	return dictionaries[c]
}

func loadAll() [numClasses]*Dictionary {
	var all [numClasses]*Dictionary
	for _, c := range Classes() {
		all[c] = mustLoadEmbedded(c)
	}
	return all
}

func mustLoadEmbedded(c Class) *Dictionary {
	name := "words/" + c.String() + "s.txt"
	f, err := wordFiles.Open(name)
	if err != nil {
		panic(fmt.Sprintf("missing word list %s: %v", name, err))
	}
	defer f.Close()
	r := wordlist.NewReader(f)
	dict, err := Load(name, c, r)
	if err != nil {
		panic(err.Error())
	}
	tracer().Debugf("%s: %s", name, r.Description())
	return dict
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
