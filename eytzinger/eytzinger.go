/*
Package eytzinger implements an implicit binary search tree over a sorted
list of words.

The words are stored breadth-first ("Eytzinger order"): the root is at
index 0 and the children of node k live at 2k+1 and 2k+2. Searching this
layout touches memory front to back and needs no branch on equality, yet
it finds exactly the words a binary search over the sorted list would find.

Words are compared ignoring ASCII case. If one word is a prefix of the
other, the shorter one sorts first.
*/
package eytzinger

import (
	"math/bits"
)

// Compare compares a and b ignoring ASCII case. The result is -1, 0 or +1.
func Compare(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		ca, cb := lower(a[i]), lower(b[i])
		if ca < cb {
			return -1
		} else if ca > cb {
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// Equal reports whether a and b are equal ignoring ASCII case.
// Unlike strings.EqualFold, no Unicode case folding is applied.
func Equal(a, b string) bool {
	return len(a) == len(b) && Compare(a, b) == 0
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

// Layout returns the words of sorted re-arranged in Eytzinger order.
// sorted must be in ascending order with respect to Compare.
//
// Example:
//
//	[a b c d e f g] => [d b f a c e g]
func Layout(sorted []string) []string {
	tree := make([]string, len(sorted))
	fill(sorted, tree, 0, 0)
	return tree
}

// fill does an in-order walk of the implicit tree rooted at k and assigns
// sorted[i], sorted[i+1], … to the nodes visited.
func fill(sorted, tree []string, i, k int) int {
	if k < len(tree) {
		i = fill(sorted, tree, i, 2*k+1)
		tree[k] = sorted[i]
		i++
		i = fill(sorted, tree, i, 2*k+2)
	}
	return i
}

// Search looks for word in tree, which has to be in Eytzinger order.
// It returns the index of the matching entry, or false if word is not
// contained in tree.
func Search(tree []string, word string) (int, bool) {
	k := 0
	for k < len(tree) {
		if Compare(tree[k], word) >= 0 {
			k = 2*k + 1
		} else {
			k = 2*k + 2
		}
	}
	// k+1 spells the path taken from the root, one bit per level (1 = right).
	// Stripping the trailing right turns plus the last left turn yields the
	// node where we last went left, i.e., the smallest entry >= word.
	p := uint(k + 1)
	j := p >> (1 + bits.TrailingZeros(^p))
	if j == 0 { // never turned left: word is greater than every entry
		return 0, false
	}
	if !Equal(tree[j-1], word) {
		return 0, false
	}
	return int(j - 1), true
}
