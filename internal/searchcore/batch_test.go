package searchcore

import "testing"

func TestProcessQueriesPositional(t *testing.T) {
	e := newTestEngine(t, "")
	mustAdd(t, e, 1, "cat dog", StatusActual, nil)
	mustAdd(t, e, 2, "bird", StatusActual, nil)

	results, err := e.ProcessQueries([]string{"cat", "bird", "fish"})
	if err != nil {
		t.Fatalf("ProcessQueries: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("len(results) = %d, want 3", len(results))
	}
	if len(results[0]) != 1 || results[0][0].ID != 1 {
		t.Fatalf("results[0] = %v, want single doc id 1", results[0])
	}
	if len(results[1]) != 1 || results[1][0].ID != 2 {
		t.Fatalf("results[1] = %v, want single doc id 2", results[1])
	}
	if len(results[2]) != 0 {
		t.Fatalf("results[2] = %v, want empty (no document matches 'fish')", results[2])
	}
}

func TestProcessQueriesJoinedPreservesQueryOrder(t *testing.T) {
	e := newTestEngine(t, "")
	mustAdd(t, e, 1, "cat", StatusActual, nil)
	mustAdd(t, e, 2, "bird", StatusActual, nil)

	joined, err := e.ProcessQueriesJoined([]string{"bird", "cat"})
	if err != nil {
		t.Fatalf("ProcessQueriesJoined: %v", err)
	}
	if len(joined) != 2 {
		t.Fatalf("len(joined) = %d, want 2", len(joined))
	}
	if joined[0].ID != 2 || joined[1].ID != 1 {
		t.Fatalf("joined = %v, want [id=2, id=1] (query order)", joined)
	}
}

func TestProcessQueriesPropagatesError(t *testing.T) {
	e := newTestEngine(t, "")
	mustAdd(t, e, 1, "cat", StatusActual, nil)

	if _, err := e.ProcessQueries([]string{"cat", "cat --city"}); err == nil {
		t.Fatal("expected error from invalid query")
	}
	if _, err := e.ProcessQueriesJoined([]string{"cat --city"}); err == nil {
		t.Fatal("expected error from invalid query")
	}
}
