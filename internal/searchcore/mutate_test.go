package searchcore

import (
	"errors"
	"testing"

	"github.com/radistMorze-constr/cpp-search-server/internal/searcherr"
)

func TestAddDocumentRejectsNegativeID(t *testing.T) {
	e := newTestEngine(t, "")
	err := e.AddDocument(-1, "cat city", StatusActual, nil)
	if !errors.Is(err, searcherr.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestAddDocumentRejectsDuplicateID(t *testing.T) {
	e := newTestEngine(t, "")
	mustAdd(t, e, 1, "cat city", StatusActual, nil)
	err := e.AddDocument(1, "dog town", StatusActual, nil)
	if !errors.Is(err, searcherr.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for duplicate id, got %v", err)
	}
}

func TestAddDocumentRejectsControlCharacter(t *testing.T) {
	e := newTestEngine(t, "")
	err := e.AddDocument(1, "cat\x01city", StatusActual, nil)
	if !errors.Is(err, searcherr.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if e.GetDocumentCount() != 0 {
		t.Fatalf("failed AddDocument must not mutate state, count = %d", e.GetDocumentCount())
	}
}

func TestAddDocumentIncrementsCount(t *testing.T) {
	e := newTestEngine(t, "")
	mustAdd(t, e, 1, "cat city", StatusActual, nil)
	if e.GetDocumentCount() != 1 {
		t.Fatalf("count = %d, want 1", e.GetDocumentCount())
	}
	mustAdd(t, e, 2, "dog town", StatusActual, nil)
	if e.GetDocumentCount() != 2 {
		t.Fatalf("count = %d, want 2", e.GetDocumentCount())
	}
}

// S4 — rating truncation.
func TestAverageRatingTruncation(t *testing.T) {
	cases := []struct {
		ratings []int
		want    int
	}{
		{[]int{1, 2, 3}, 2},
		{[]int{2, 3}, 2}, // truncation of 2.5 toward zero
		{[]int{0}, 0},
		{nil, 0},
	}
	for i, tc := range cases {
		e := newTestEngine(t, "")
		mustAdd(t, e, int64(i), "cat", StatusActual, tc.ratings)
		got := e.documents[int64(i)].rating
		if got != tc.want {
			t.Errorf("ratings %v => rating %d, want %d", tc.ratings, got, tc.want)
		}
	}
}

func TestRemoveDocumentDecrementsCount(t *testing.T) {
	e := newTestEngine(t, "")
	mustAdd(t, e, 1, "cat city", StatusActual, nil)
	mustAdd(t, e, 2, "dog city", StatusActual, nil)
	if err := e.RemoveDocument(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.GetDocumentCount() != 1 {
		t.Fatalf("count = %d, want 1", e.GetDocumentCount())
	}
	assertIndexInvariant(t, e)
}

func TestRemoveDocumentUnknownID(t *testing.T) {
	e := newTestEngine(t, "")
	err := e.RemoveDocument(99)
	if !errors.Is(err, searcherr.ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
}

func TestRemoveDocumentParallelMatchesSequential(t *testing.T) {
	e1 := newTestEngine(t, "")
	e2 := newTestEngine(t, "")
	mustAdd(t, e1, 1, "cat city dog", StatusActual, nil)
	mustAdd(t, e1, 2, "cat town", StatusActual, nil)
	mustAdd(t, e2, 1, "cat city dog", StatusActual, nil)
	mustAdd(t, e2, 2, "cat town", StatusActual, nil)

	if err := e1.RemoveDocument(1); err != nil {
		t.Fatalf("sequential remove: %v", err)
	}
	if err := e2.RemoveDocumentParallel(1); err != nil {
		t.Fatalf("parallel remove: %v", err)
	}

	if e1.GetDocumentCount() != e2.GetDocumentCount() {
		t.Fatalf("document counts differ: %d vs %d", e1.GetDocumentCount(), e2.GetDocumentCount())
	}
	for _, term := range []string{"cat", "city", "dog", "town"} {
		f1 := e1.wordToDocFreqs[term]
		f2 := e2.wordToDocFreqs[term]
		if len(f1) != len(f2) {
			t.Fatalf("term %q postings differ: %v vs %v", term, f1, f2)
		}
	}
	assertIndexInvariant(t, e1)
	assertIndexInvariant(t, e2)
}

// invariant 1: for every (term, id, tf) in wordToDocFreqs, the same
// (id, term, tf) exists in docToWordFreqs, and vice versa.
func assertIndexInvariant(t *testing.T, e *Engine) {
	t.Helper()
	for term, postings := range e.wordToDocFreqs {
		for id, tf := range postings {
			if got, ok := e.docToWordFreqs[id][term]; !ok || got != tf {
				t.Fatalf("wordToDocFreqs[%q][%d]=%v has no matching docToWordFreqs entry (got %v, ok=%v)", term, id, tf, got, ok)
			}
		}
	}
	for id, terms := range e.docToWordFreqs {
		for term, tf := range terms {
			if got, ok := e.wordToDocFreqs[term][id]; !ok || got != tf {
				t.Fatalf("docToWordFreqs[%d][%q]=%v has no matching wordToDocFreqs entry (got %v, ok=%v)", id, term, tf, got, ok)
			}
		}
	}
}
