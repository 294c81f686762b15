package searchcore

import (
	"sort"
	"strconv"
	"strings"
)

// RemoveDuplicates groups live documents by their term-set (the keys of
// GetWordFrequencies, not their rating/status/tf/token-order) and removes
// every document but the smallest id in each group. It is grounded on
// original_source/remove_duplicates.cpp: a single pass over ascending ids
// that tracks the smallest id seen for each term-set so far.
//
// notify receives one message per removed id, in the
// "Found duplicate document id <id>" form spec.md §6 calls for; pass nil
// to use the engine's logger instead.
func (e *Engine) RemoveDuplicates(notify func(string)) error {
	if notify == nil {
		notify = func(msg string) { e.logger.Info(msg) }
	}

	type groupKey string
	keepers := make(map[groupKey]int64)
	var toRemove []int64

	for _, id := range e.DocumentIDs() {
		key := groupKey(termSetKey(e.GetWordFrequencies(id)))
		keeper, exists := keepers[key]
		if !exists {
			keepers[key] = id
			continue
		}
		if id < keeper {
			keepers[key] = id
			toRemove = append(toRemove, keeper)
		} else {
			toRemove = append(toRemove, id)
		}
	}

	for _, id := range toRemove {
		notify(duplicateNotice(id))
		if err := e.RemoveDocument(id); err != nil {
			return err
		}
		if e.metrics != nil {
			e.metrics.DuplicatesRemoved.Inc()
		}
	}
	return nil
}

func duplicateNotice(id int64) string {
	return "Found duplicate document id " + strconv.FormatInt(id, 10)
}

// termSetKey builds a canonical, order-independent string key for a
// document's term-set so it can be used as a map key.
func termSetKey(freqs map[string]float64) string {
	terms := make([]string, 0, len(freqs))
	for term := range freqs {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	// \x00 cannot appear in a term (terms are produced by Split, which
	// never emits a space, and IsValidWord already rejects control bytes
	// below 0x20), so it is safe as a separator.
	return strings.Join(terms, "\x00")
}
