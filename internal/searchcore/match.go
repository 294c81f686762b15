package searchcore

import (
	"context"
	"errors"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/radistMorze-constr/cpp-search-server/internal/query"
)

// errMinusHit is returned by an anyMinusHits worker the instant it finds a
// hit; errgroup.WithContext then cancels the shared context so any worker
// still waiting on it skips its lookup instead of doing wasted work.
var errMinusHit = errors.New("minus term hit")

// MatchDocument parses raw and returns the plus-terms that hit id, in
// ascending term order, together with id's current status. If any of
// raw's minus-terms hits id, it returns an empty term list instead.
func (e *Engine) MatchDocument(raw string, id int64) ([]string, Status, error) {
	if err := e.requireKnown(id); err != nil {
		return nil, StatusRemoved, err
	}
	set, err := query.ParseSet(raw, e.stopWords)
	if err != nil {
		return nil, StatusRemoved, err
	}
	status, _ := e.status(id)

	for minus := range set.Minus {
		if _, hit := e.wordToDocFreqs[minus][id]; hit {
			return []string{}, status, nil
		}
	}
	matched := make([]string, 0, len(set.Plus))
	for plus := range set.Plus {
		if _, hit := e.wordToDocFreqs[plus][id]; hit {
			matched = append(matched, plus)
		}
	}
	sort.Strings(matched)
	return matched, status, nil
}

// MatchDocumentParallel is the parallel-execution-policy variant of
// MatchDocument: the minus-term test is a data-parallel any_of over the
// query's minus-terms, and the plus-term result is built in parallel then
// sorted and uniqued.
func (e *Engine) MatchDocumentParallel(raw string, id int64) ([]string, Status, error) {
	if err := e.requireKnown(id); err != nil {
		return nil, StatusRemoved, err
	}
	vec, err := query.ParseVector(raw, e.stopWords)
	if err != nil {
		return nil, StatusRemoved, err
	}
	status, _ := e.status(id)

	if e.anyMinusHits(vec.Minus, id) {
		return []string{}, status, nil
	}

	hits := make([]bool, len(vec.Plus))
	var g errgroup.Group
	for i, term := range vec.Plus {
		i, term := i, term
		g.Go(func() error {
			_, hits[i] = e.wordToDocFreqs[term][id]
			return nil
		})
	}
	_ = g.Wait()

	seen := make(map[string]struct{}, len(vec.Plus))
	matched := make([]string, 0, len(vec.Plus))
	for i, term := range vec.Plus {
		if !hits[i] {
			continue
		}
		if _, dup := seen[term]; dup {
			continue
		}
		seen[term] = struct{}{}
		matched = append(matched, term)
	}
	sort.Strings(matched)
	return matched, status, nil
}

// anyMinusHits reports whether any of minus's terms appear in id's posting
// list, fanning the check out across goroutines via errgroup.WithContext:
// the first worker to find a hit returns errMinusHit, which cancels the
// shared context, and every worker that hasn't started its lookup yet
// skips it instead of doing wasted work.
func (e *Engine) anyMinusHits(minus []string, id int64) bool {
	if len(minus) == 0 {
		return false
	}
	g, ctx := errgroup.WithContext(context.Background())
	for _, term := range minus {
		term := term
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			if _, hit := e.wordToDocFreqs[term][id]; hit {
				return errMinusHit
			}
			return nil
		})
	}
	return errors.Is(g.Wait(), errMinusHit)
}
