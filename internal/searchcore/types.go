package searchcore

import (
	"fmt"
)

// Status is a document's lifecycle state, grounded on
// original_source/document.h's DocumentStatus enum.
type Status int

const (
	StatusActual Status = iota
	StatusIrrelevant
	StatusBanned
	StatusRemoved
)

func (s Status) String() string {
	switch s {
	case StatusActual:
		return "ACTUAL"
	case StatusIrrelevant:
		return "IRRELEVANT"
	case StatusBanned:
		return "BANNED"
	case StatusRemoved:
		return "REMOVED"
	default:
		return "UNKNOWN"
	}
}

// Document is a ranked retrieval result. It is produced by the retrieval
// engine and never stored.
type Document struct {
	ID        int64
	Relevance float64
	Rating    int
}

// String renders a Document the way original_source/document.cpp's
// operator<< does, supplementing the demonstration driver this module
// does not itself ship.
func (d Document) String() string {
	return fmt.Sprintf("{ document_id = %d, relevance = %g, rating = %d }", d.ID, d.Relevance, d.Rating)
}

// storedDocument is one live document's owned text, rating, and status.
type storedDocument struct {
	text   string
	rating int
	status Status
}

// Filter is the opaque predicate capability retrieval accepts: it decides
// whether a document contributes to a result set, independent of how
// relevance is scored. See spec.md §4.5/§9.
type Filter func(id int64, status Status, rating int) bool

// StatusFilter builds a Filter that admits only documents with the given
// status, the convenience entry point spec.md §4.3/§6 calls for.
func StatusFilter(want Status) Filter {
	return func(_ int64, status Status, _ int) bool { return status == want }
}
