package searchcore

import (
	"math"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/radistMorze-constr/cpp-search-server/internal/accumulator"
	"github.com/radistMorze-constr/cpp-search-server/internal/query"
)

// DefaultTopK is the maximum number of documents FindTopDocuments* returns
// when the engine is not constructed with WithTopK (spec.md §4.5).
const DefaultTopK = 5

// relevanceEpsilon is the tolerance below which two relevance scores are
// considered tied, per spec.md's "relevance tie" definition.
const relevanceEpsilon = 1e-6

// FindTopDocuments ranks documents against raw using the default ACTUAL
// status filter, sequentially.
func (e *Engine) FindTopDocuments(raw string) ([]Document, error) {
	return e.FindTopDocumentsByStatus(raw, StatusActual)
}

// FindTopDocumentsByStatus ranks documents against raw, keeping only those
// with the given status, sequentially.
func (e *Engine) FindTopDocumentsByStatus(raw string, status Status) ([]Document, error) {
	return e.FindTopDocumentsWithFilter(raw, StatusFilter(status))
}

// FindTopDocumentsWithFilter ranks documents against raw, keeping only
// those for which filter(id, status, rating) holds, sequentially.
func (e *Engine) FindTopDocumentsWithFilter(raw string, filter Filter) ([]Document, error) {
	start := time.Now()
	set, err := query.ParseSet(raw, e.stopWords)
	if err != nil {
		e.recordQuery("error", start)
		return nil, err
	}
	docs := e.sortAndTruncate(e.scoreSequential(set, filter))
	e.recordQuery(resultType(docs), start)
	return docs, nil
}

// FindTopDocumentsParallel is the parallel-execution-policy variant of
// FindTopDocuments.
func (e *Engine) FindTopDocumentsParallel(raw string) ([]Document, error) {
	return e.FindTopDocumentsByStatusParallel(raw, StatusActual)
}

// FindTopDocumentsByStatusParallel is the parallel-execution-policy
// variant of FindTopDocumentsByStatus.
func (e *Engine) FindTopDocumentsByStatusParallel(raw string, status Status) ([]Document, error) {
	return e.FindTopDocumentsWithFilterParallel(raw, StatusFilter(status))
}

// FindTopDocumentsWithFilterParallel is the parallel-execution-policy
// variant of FindTopDocumentsWithFilter. Plus-terms are scored by a
// data-parallel executor (errgroup.Group) writing into a sharded
// concurrent accumulator; minus-terms are then eliminated the same way;
// the accumulator is drained into an ordered slice and sorted.
func (e *Engine) FindTopDocumentsWithFilterParallel(raw string, filter Filter) ([]Document, error) {
	start := time.Now()
	vec, err := query.ParseVector(raw, e.stopWords)
	if err != nil {
		e.recordQuery("error", start)
		return nil, err
	}
	docs := e.sortAndTruncate(e.scoreParallel(vec, filter))
	e.recordQuery(resultType(docs), start)
	return docs, nil
}

func (e *Engine) scoreSequential(set query.Set, filter Filter) []Document {
	totalDocs := float64(e.GetDocumentCount())
	relevance := make(map[int64]float64)
	for term := range set.Plus {
		postings, ok := e.wordToDocFreqs[term]
		if !ok {
			continue
		}
		idf := math.Log(totalDocs / float64(len(postings)))
		for id, tf := range postings {
			status, _ := e.status(id)
			rating := e.documents[id].rating
			if filter(id, status, rating) {
				relevance[id] += tf * idf
			}
		}
	}
	for term := range set.Minus {
		postings, ok := e.wordToDocFreqs[term]
		if !ok {
			continue
		}
		for id := range postings {
			delete(relevance, id)
		}
	}
	return e.materialize(relevance)
}

func (e *Engine) scoreParallel(vec query.Vector, filter Filter) []Document {
	totalDocs := float64(e.GetDocumentCount())
	acc := accumulator.New(e.shardCount)

	var plusGroup errgroup.Group
	for _, term := range vec.Plus {
		term := term
		plusGroup.Go(func() error {
			postings, ok := e.wordToDocFreqs[term]
			if !ok {
				return nil
			}
			idf := math.Log(totalDocs / float64(len(postings)))
			for id, tf := range postings {
				status, _ := e.status(id)
				rating := e.documents[id].rating
				if filter(id, status, rating) {
					acc.Add(id, tf*idf)
				}
			}
			return nil
		})
	}
	_ = plusGroup.Wait()

	var minusGroup errgroup.Group
	for _, term := range vec.Minus {
		term := term
		minusGroup.Go(func() error {
			postings, ok := e.wordToDocFreqs[term]
			if !ok {
				return nil
			}
			for id := range postings {
				acc.Erase(id)
			}
			return nil
		})
	}
	_ = minusGroup.Wait()

	entries := acc.DrainOrdered()
	relevance := make(map[int64]float64, len(entries))
	for _, entry := range entries {
		relevance[entry.Key] = entry.Value
	}
	return e.materialize(relevance)
}

func (e *Engine) materialize(relevance map[int64]float64) []Document {
	docs := make([]Document, 0, len(relevance))
	for id, rel := range relevance {
		docs = append(docs, Document{ID: id, Relevance: rel, Rating: e.documents[id].rating})
	}
	return docs
}

// sortAndTruncate orders docs by relevance descending, breaking ties
// within relevanceEpsilon by rating descending and then (beyond spec.md,
// for full determinism) by id ascending, and retains the first
// min(e.topK, len(docs)) entries.
func (e *Engine) sortAndTruncate(docs []Document) []Document {
	sort.Slice(docs, func(i, j int) bool {
		if math.Abs(docs[i].Relevance-docs[j].Relevance) >= relevanceEpsilon {
			return docs[i].Relevance > docs[j].Relevance
		}
		if docs[i].Rating != docs[j].Rating {
			return docs[i].Rating > docs[j].Rating
		}
		return docs[i].ID < docs[j].ID
	})
	if len(docs) > e.topK {
		docs = docs[:e.topK]
	}
	return docs
}

func resultType(docs []Document) string {
	if len(docs) == 0 {
		return "zero_result"
	}
	return "hit"
}

func (e *Engine) recordQuery(resultType string, start time.Time) {
	if e.metrics == nil {
		return
	}
	e.metrics.QueriesTotal.WithLabelValues(resultType).Inc()
	e.metrics.QueryLatency.Observe(time.Since(start).Seconds())
}
