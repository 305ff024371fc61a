package dict

import (
	"slices"
	"strings"

	"github.com/derekparker/trie"
	"github.com/npillmayer/wordid/eytzinger"
)

// Suggest returns up to n words of the dictionary sharing the longest
// possible prefix with word. It is meant for error messages about
// misspelled words. The result is sorted and empty if not even the first
// letter matches.
func (dict *Dictionary) Suggest(word string, n int) []string {
	if n <= 0 {
		return nil
	}
	dict.once.Do(dict.buildPrefixTrie)
	key := strings.ToLower(word)
	for l := len(key); l > 0; l-- {
		if !dict.prefixes.HasKeysWithPrefix(key[:l]) {
			continue
		}
		found := dict.prefixes.PrefixSearch(key[:l])
		slices.SortFunc(found, eytzinger.Compare)
		if len(found) > n {
			found = found[:n]
		}
		tracer().Debugf("suggestions for %q from %s: %v", word, dict.name, found)
		return found
	}
	return nil
}

func (dict *Dictionary) buildPrefixTrie() {
	dict.prefixes = trie.New()
	for i, word := range dict.tree {
		dict.prefixes.Add(strings.ToLower(word), i)
	}
}
