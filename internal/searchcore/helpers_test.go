package searchcore

import "testing"

func newTestEngine(t *testing.T, stopWordsText string) *Engine {
	t.Helper()
	e, err := NewFromText(stopWordsText)
	if err != nil {
		t.Fatalf("NewFromText(%q): %v", stopWordsText, err)
	}
	return e
}

func mustAdd(t *testing.T, e *Engine, id int64, text string, status Status, ratings []int) {
	t.Helper()
	if err := e.AddDocument(id, text, status, ratings); err != nil {
		t.Fatalf("AddDocument(%d, %q): %v", id, text, err)
	}
}
