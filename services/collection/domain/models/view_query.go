package models

// ViewQuery holds the user's current view selection.
type ViewQuery struct {
	SeriesID string // empty selects every series
	Status   StatusFilter
	Search   string
	Sort     SortOption
}

// Unfiltered reports whether no status filter and no search term are active.
func (q ViewQuery) Unfiltered() bool {
	return q.Status.IsAll() && q.Search == ""
}
