package app

import (
	"searchlens/analyzer/evaldata"
)

// State is the application's view state: the immutable dataset plus the
// mutable selection, sort, and filter fields driven by user interaction.
// It is only touched from the UI event loop, so no locking is needed, and
// the render functions take it explicitly so they can be tested against
// fabricated state.
type State struct {
	dataset   *evaldata.Dataset
	summaries []evaldata.QuerySummary

	filter       string
	sortOrder    evaldata.SortOrder
	currentQuery string
	detailSeq    uint64
}

// NewState derives the summary index from the dataset and starts with the
// worst queries first, matching the dashboard's triage purpose.
func NewState(ds *evaldata.Dataset) *State {
	return &State{
		dataset:   ds,
		summaries: evaldata.BuildSummaries(ds),
		sortOrder: evaldata.SortWorst,
	}
}

// Summaries returns the full unfiltered summary list in dataset order.
func (s *State) Summaries() []evaldata.QuerySummary { return s.summaries }

// SetFilter updates the search filter text.
func (s *State) SetFilter(text string) { s.filter = text }

// SortOrder returns the active ordering.
func (s *State) SortOrder() evaldata.SortOrder { return s.sortOrder }

// SetSortOrder switches the ordering, ignoring unknown values.
func (s *State) SetSortOrder(o evaldata.SortOrder) {
	if o.Valid() {
		s.sortOrder = o
	}
}

// Visible computes the filtered, sorted subset the query list shows. The
// underlying summary slice is never reordered.
func (s *State) Visible() []evaldata.QuerySummary {
	return evaldata.SortSummaries(evaldata.FilterSummaries(s.summaries, s.filter), s.sortOrder)
}

// Select marks query as the current selection and returns a generation
// token. A detail render that was scheduled for an earlier generation must
// not commit once a newer selection exists; callers check the token with
// IsCurrent before rendering, which makes the delayed render
// last-selection-wins.
func (s *State) Select(query string) uint64 {
	s.currentQuery = query
	s.detailSeq++
	return s.detailSeq
}

// CurrentQuery returns the selected query, or "" before any selection.
func (s *State) CurrentQuery() string { return s.currentQuery }

// IsCurrent reports whether the generation token still matches the latest
// selection.
func (s *State) IsCurrent(seq uint64) bool { return seq == s.detailSeq }

// Lookup fetches the full record for a query from the dataset.
func (s *State) Lookup(query string) (*evaldata.QueryData, error) {
	return s.dataset.Lookup(query)
}
