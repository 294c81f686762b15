package searchcore

import (
	"golang.org/x/sync/errgroup"

	"github.com/radistMorze-constr/cpp-search-server/internal/searcherr"
	"github.com/radistMorze-constr/cpp-search-server/internal/textutil"
)

// AddDocument adds a new document. It fails with ErrInvalidArgument if id
// is negative, id is already stored, or any token of text fails
// IsValidWord. Validation precedes any index mutation, so a failed call
// leaves the engine's state untouched (spec.md §7).
func (e *Engine) AddDocument(id int64, text string, status Status, ratings []int) error {
	if id < 0 {
		return searcherr.InvalidArgument("document id %d must be non-negative", id)
	}
	if _, exists := e.docIDs[id]; exists {
		return searcherr.InvalidArgument("document id %d already exists", id)
	}

	tokens := textutil.Split(text)
	nonStop := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if !textutil.IsValidWord(tok) {
			return searcherr.InvalidArgument("document word %q contains a control character", tok)
		}
		if e.stopWords.Contains(tok) {
			continue
		}
		nonStop = append(nonStop, tok)
	}

	termFreqs := make(map[string]float64)
	if len(nonStop) > 0 {
		inv := 1.0 / float64(len(nonStop))
		for _, term := range nonStop {
			termFreqs[term] += inv
		}
	}

	e.documents[id] = &storedDocument{
		text:   text,
		rating: computeAverageRating(ratings),
		status: status,
	}
	e.docIDs[id] = struct{}{}
	e.docToWordFreqs[id] = termFreqs
	for term, tf := range termFreqs {
		bucket, ok := e.wordToDocFreqs[term]
		if !ok {
			bucket = make(map[int64]float64)
			e.wordToDocFreqs[term] = bucket
		}
		bucket[id] = tf
	}

	if e.metrics != nil {
		e.metrics.DocsIndexedTotal.Inc()
		e.metrics.LiveDocuments.Set(float64(len(e.docIDs)))
	}
	e.logger.Debug("document added", "doc_id", id, "terms", len(termFreqs), "status", status.String())
	return nil
}

// computeAverageRating truncates sum(ratings)/len(ratings) toward zero,
// matching spec.md §4.3 and C++ integer division semantics; Go's integer
// division already truncates toward zero, so this is a direct port.
func computeAverageRating(ratings []int) int {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return sum / len(ratings)
}

// RemoveDocument removes id and every index entry referencing it.
func (e *Engine) RemoveDocument(id int64) error {
	if err := e.requireKnown(id); err != nil {
		return err
	}
	terms := e.docToWordFreqs[id]
	for term := range terms {
		delete(e.wordToDocFreqs[term], id)
		if len(e.wordToDocFreqs[term]) == 0 {
			delete(e.wordToDocFreqs, term)
		}
	}
	delete(e.docToWordFreqs, id)
	delete(e.documents, id)
	delete(e.docIDs, id)

	if e.metrics != nil {
		e.metrics.DocsRemovedTotal.Inc()
		e.metrics.LiveDocuments.Set(float64(len(e.docIDs)))
	}
	e.logger.Debug("document removed", "doc_id", id)
	return nil
}

// RemoveDocumentParallel has the same semantic effect as RemoveDocument.
// It resolves the hazard noted in spec.md §9 (a racy multi-writer variant
// in the distilled source) with a two-phase plan-then-apply discipline:
// the document's term list is scanned in parallel during the read-only
// plan phase, and every erasure is then applied on a single goroutine, so
// the shared index is never mutated from more than one goroutine at once.
func (e *Engine) RemoveDocumentParallel(id int64) error {
	if err := e.requireKnown(id); err != nil {
		return err
	}
	terms := e.docToWordFreqs[id]
	planned := make([]string, 0, len(terms))
	for term := range terms {
		planned = append(planned, term)
	}

	// Plan phase: read-only, fanned out over the document's term list.
	// becomesEmpty[i] records whether erasing id leaves that term's
	// posting list empty, so the apply phase below never has to touch
	// e.wordToDocFreqs from more than one goroutine.
	becomesEmpty := make([]bool, len(planned))
	var g errgroup.Group
	for i, term := range planned {
		i, term := i, term
		g.Go(func() error {
			becomesEmpty[i] = len(e.wordToDocFreqs[term]) == 1
			return nil
		})
	}
	_ = g.Wait() // the plan phase never returns an error

	// Apply phase: single-threaded, so the shared index is mutated from
	// exactly one goroutine.
	for i, term := range planned {
		delete(e.wordToDocFreqs[term], id)
		if becomesEmpty[i] {
			delete(e.wordToDocFreqs, term)
		}
	}
	delete(e.docToWordFreqs, id)
	delete(e.documents, id)
	delete(e.docIDs, id)

	if e.metrics != nil {
		e.metrics.DocsRemovedTotal.Inc()
		e.metrics.LiveDocuments.Set(float64(len(e.docIDs)))
	}
	e.logger.Debug("document removed (parallel)", "doc_id", id)
	return nil
}
