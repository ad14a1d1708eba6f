package models

// Slots counts missing regular and secret positions of a series.
type Slots struct {
	Regular int
	Secret  int
}

// Total is Regular + Secret.
func (s Slots) Total() int {
	return s.Regular + s.Secret
}

// Stats is the collection-wide summary.
type Stats struct {
	OwnedCount    int
	NotOwnedCount int
	TotalCount    int
	TotalValue    float64
	Level         int
	Progress      int // percent toward the next level, multiple of 20
	NextLevelAt   int // owned count at which Level increments
}

// SeriesProgress is the owned count of one series against its declared capacity.
type SeriesProgress struct {
	Series     Series
	OwnedCount int
	Total      int
	Percent    float64
	Complete   bool
}
