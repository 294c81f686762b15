package searchcore

import (
	"golang.org/x/sync/errgroup"
)

// ProcessQueries runs each of queries through FindTopDocuments
// independently and in parallel (one data-parallel task per query,
// matching the teacher's fan-out-by-unit-of-work executor pattern), and
// returns the results positionally: result[i] corresponds to queries[i].
// It is grounded on original_source/process_queries.cpp's ProcessQueries.
func (e *Engine) ProcessQueries(queries []string) ([][]Document, error) {
	results := make([][]Document, len(queries))
	errs := make([]error, len(queries))

	var g errgroup.Group
	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			docs, err := e.FindTopDocuments(q)
			results[i] = docs
			errs[i] = err
			return nil
		})
	}
	_ = g.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

// ProcessQueriesJoined is ProcessQueries with every query's result
// documents flattened into a single slice, in query order (the documents
// of queries[0] first, then queries[1], and so on), matching
// original_source/process_queries.cpp's ProcessQueriesJoined.
func (e *Engine) ProcessQueriesJoined(queries []string) ([]Document, error) {
	perQuery, err := e.ProcessQueries(queries)
	if err != nil {
		return nil, err
	}
	total := 0
	for _, docs := range perQuery {
		total += len(docs)
	}
	joined := make([]Document, 0, total)
	for _, docs := range perQuery {
		joined = append(joined, docs...)
	}
	return joined, nil
}
