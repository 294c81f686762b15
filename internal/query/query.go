// Package query parses raw query strings into plus/minus term sets,
// grounded on the teacher's searcher/parser.Parse parse-loop shape
// (tokenize, classify each token, accumulate into a plan) but following
// spec.md's "-term" grammar rather than the teacher's AND/OR/NOT keywords.
package query

import (
	"strings"

	"github.com/radistMorze-constr/cpp-search-server/internal/searcherr"
	"github.com/radistMorze-constr/cpp-search-server/internal/textutil"
)

// StopWords is the byte-equality membership test used to drop stop-words
// from both documents and queries.
type StopWords interface {
	Contains(term string) bool
}

// Set is the deduplicated set form of a parsed query, used by the
// sequential retrieval path.
type Set struct {
	Plus  map[string]struct{}
	Minus map[string]struct{}
}

// Vector is the ordered, duplicate-preserving-on-minus form of a parsed
// query, used by the parallel retrieval path.
type Vector struct {
	Plus  []string
	Minus []string
}

// ParseSet parses raw into the set form.
func ParseSet(raw string, stop StopWords) (Set, error) {
	set := Set{Plus: make(map[string]struct{}), Minus: make(map[string]struct{})}
	for _, tok := range textutil.Split(raw) {
		term, isMinus, err := parseTerm(tok)
		if err != nil {
			return Set{}, err
		}
		if stop != nil && stop.Contains(term) {
			continue
		}
		if isMinus {
			set.Minus[term] = struct{}{}
		} else {
			set.Plus[term] = struct{}{}
		}
	}
	return set, nil
}

// ParseVector parses raw into the vector form.
func ParseVector(raw string, stop StopWords) (Vector, error) {
	vec := Vector{}
	plusSeen := make(map[string]struct{})
	for _, tok := range textutil.Split(raw) {
		term, isMinus, err := parseTerm(tok)
		if err != nil {
			return Vector{}, err
		}
		if stop != nil && stop.Contains(term) {
			continue
		}
		if isMinus {
			vec.Minus = append(vec.Minus, term)
			continue
		}
		if _, dup := plusSeen[term]; dup {
			continue
		}
		plusSeen[term] = struct{}{}
		vec.Plus = append(vec.Plus, term)
	}
	return vec, nil
}

// parseTerm applies spec.md §4.4's parse_query_term rules to a single
// whitespace-delimited token.
func parseTerm(tok string) (term string, isMinus bool, err error) {
	if tok == "" {
		return "", false, searcherr.InvalidArgument("empty query term")
	}
	if strings.HasPrefix(tok, "-") {
		isMinus = true
		tok = tok[1:]
		if tok == "" {
			return "", false, searcherr.InvalidArgument("isolated minus in query")
		}
		if strings.HasPrefix(tok, "-") {
			return "", false, searcherr.InvalidArgument("double minus in query term %q", tok)
		}
	}
	if !textutil.IsValidWord(tok) {
		return "", false, searcherr.InvalidArgument("query word %q contains a control character", tok)
	}
	return tok, isMinus, nil
}
