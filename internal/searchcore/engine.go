// Package searchcore implements the in-memory TF-IDF search engine: the
// dual inverted index, document store, ranked retrieval (sequential and
// sharded-concurrent parallel variants), match explanation, duplicate
// removal, and batched multi-query execution. It is grounded on
// original_source/search_server.h for sequential semantics and on the
// teacher's internal/searcher/executor (fan-out-with-waitgroup) and
// internal/indexer/shard.Router (fixed-shard structural pattern) for the
// parallel variants.
//
// Engine's core maps are not internally synchronized; per spec.md §5,
// callers must serialize writers (AddDocument, RemoveDocument,
// RemoveDuplicates) against any reader.
package searchcore

import (
	"log/slog"
	"sort"

	"github.com/radistMorze-constr/cpp-search-server/internal/accumulator"
	"github.com/radistMorze-constr/cpp-search-server/internal/metrics"
	"github.com/radistMorze-constr/cpp-search-server/internal/searcherr"
)

// Engine is a single-instance, single-writer in-memory search index.
type Engine struct {
	stopWords stopWordSet

	wordToDocFreqs map[string]map[int64]float64 // term -> docID -> tf
	docToWordFreqs map[int64]map[string]float64 // docID -> term -> tf
	documents      map[int64]*storedDocument
	docIDs         map[int64]struct{}

	logger     *slog.Logger
	metrics    *metrics.Collectors
	shardCount int
	topK       int
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithLogger overrides the component logger (defaults to slog.Default()
// tagged component=searchcore). A nil l is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithMetrics attaches a Prometheus collector set; when unset, retrieval
// and mutation operations run with no metrics side effects.
func WithMetrics(c *metrics.Collectors) Option {
	return func(e *Engine) { e.metrics = c }
}

// WithShardCount overrides the shard count of the accumulator used by the
// parallel retrieval path (spec.md §4.2 design default is 12).
func WithShardCount(n int) Option {
	return func(e *Engine) { e.shardCount = n }
}

// WithTopK overrides the maximum number of documents FindTopDocuments*
// returns (spec.md §4.5 design default is DefaultTopK). n <= 0 is ignored.
func WithTopK(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.topK = n
		}
	}
}

func newEngine(stop stopWordSet, opts []Option) *Engine {
	e := &Engine{
		stopWords:      stop,
		wordToDocFreqs: make(map[string]map[int64]float64),
		docToWordFreqs: make(map[int64]map[string]float64),
		documents:      make(map[int64]*storedDocument),
		docIDs:         make(map[int64]struct{}),
		logger:         slog.Default().With("component", "searchcore"),
		shardCount:     accumulator.DefaultShardCount,
		topK:           DefaultTopK,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// New constructs an Engine from a container of stop-word strings. It fails
// with ErrInvalidArgument if any stop-word contains a control character.
func New(stopWords []string, opts ...Option) (*Engine, error) {
	set, err := newStopWordSet(stopWords)
	if err != nil {
		return nil, err
	}
	return newEngine(set, opts), nil
}

// NewFromText constructs an Engine whose stop-words are the ASCII-space
// separated tokens of stopWordsText.
func NewFromText(stopWordsText string, opts ...Option) (*Engine, error) {
	set, err := newStopWordSetFromText(stopWordsText)
	if err != nil {
		return nil, err
	}
	return newEngine(set, opts), nil
}

// GetDocumentCount returns the number of live documents.
func (e *Engine) GetDocumentCount() int {
	return len(e.docIDs)
}

// DocumentIDs returns every live document id in ascending order.
func (e *Engine) DocumentIDs() []int64 {
	ids := make([]int64, 0, len(e.docIDs))
	for id := range e.docIDs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// GetWordFrequencies returns a view of the given document's per-term
// frequencies, or an empty map if the id is unknown.
func (e *Engine) GetWordFrequencies(id int64) map[string]float64 {
	freqs, ok := e.docToWordFreqs[id]
	if !ok {
		return map[string]float64{}
	}
	return freqs
}

// status returns the document's current status, or StatusRemoved with
// false if the id is unknown.
func (e *Engine) status(id int64) (Status, bool) {
	doc, ok := e.documents[id]
	if !ok {
		return StatusRemoved, false
	}
	return doc.status, true
}

func (e *Engine) requireKnown(id int64) error {
	if _, ok := e.docIDs[id]; !ok {
		return searcherr.OutOfRange("unknown document id %d", id)
	}
	return nil
}
