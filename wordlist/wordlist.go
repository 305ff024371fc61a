// Package wordlist reads plain word-list files.
//
// A word list holds one word per line. Lines starting with '%' are comments,
// empty lines are ignored. The first comment line, if any, is taken as a
// description of the list:
//
//	% adjectives
//	% One word per line.
//	able
//	absent
//	…
//
// Words must consist of ASCII letters only, as phrases are split into words
// at every other character.
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Reader streams words from a word-list source.
type Reader struct {
	scanner     *bufio.Scanner
	description string
	line        int
}

// NewReader creates a Reader for a word list.
func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// Description returns the first comment line read so far, without the
// leading '%'.
func (r *Reader) Description() string {
	return r.description
}

// Next returns the next word.
// It returns io.EOF when exhausted.
func (r *Reader) Next() (string, error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimSpace(r.scanner.Text())
		if strings.HasPrefix(line, "%") {
			if r.description == "" {
				r.description = strings.TrimSpace(line[1:])
			}
			continue
		}
		if line == "" {
			continue
		}
		if !IsWord(line) {
			return "", fmt.Errorf("word list line %d: %q is not a plain ASCII word", r.line, line)
		}
		return line, nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// IsWord reports whether s is non-empty and made of ASCII letters only.
func IsWord(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !IsLetter(rune(s[i])) {
			return false
		}
	}
	return true
}

// IsLetter reports whether r is an ASCII letter.
func IsLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}
