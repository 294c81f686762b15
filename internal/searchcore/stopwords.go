package searchcore

import (
	"github.com/radistMorze-constr/cpp-search-server/internal/searcherr"
	"github.com/radistMorze-constr/cpp-search-server/internal/textutil"
)

// stopWordSet is the fixed, immutable-after-construction stop-word
// membership test described in spec.md §3/§4.4. It implements
// query.StopWords.
type stopWordSet map[string]struct{}

func newStopWordSet(words []string) (stopWordSet, error) {
	set := make(stopWordSet, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		if !textutil.IsValidWord(w) {
			return nil, searcherr.InvalidArgument("stop-word %q contains a control character", w)
		}
		set[w] = struct{}{}
	}
	return set, nil
}

func newStopWordSetFromText(text string) (stopWordSet, error) {
	return newStopWordSet(textutil.Split(text))
}

func (s stopWordSet) Contains(term string) bool {
	_, ok := s[term]
	return ok
}
