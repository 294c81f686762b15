// Package textutil provides the zero-copy tokenizer and word validator
// shared by document indexing and query parsing. Every returned token is a
// slice of the original string, never a copy, so downstream structures can
// hold term handles that borrow from a document's owned text or the
// stop-word set's owned strings without per-term allocation.
package textutil

import "strings"

// Split partitions text on runs of ASCII space (U+0020). Leading and
// trailing spaces are elided. Each returned token shares the backing array
// of text.
func Split(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool { return r == ' ' })
}

// IsValidWord reports whether token contains no control character in the
// range U+0000 through U+001F.
func IsValidWord(token string) bool {
	for i := 0; i < len(token); i++ {
		if token[i] < 0x20 {
			return false
		}
	}
	return true
}
