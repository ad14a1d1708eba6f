package models

// Snapshot is the complete collection state: series in creation order, items newest first.
type Snapshot struct {
	Series []Series
	Items  []Item
}

// Clone returns a deep copy of s so callers may mutate it freely.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Series: make([]Series, len(s.Series)),
		Items:  make([]Item, len(s.Items)),
	}
	copy(out.Series, s.Series)
	for i, it := range s.Items {
		out.Items[i] = it.Clone()
	}
	return out
}

// FindSeries returns the series with the given id.
func (s Snapshot) FindSeries(id string) (Series, bool) {
	if i := s.seriesIndex(id); i >= 0 {
		return s.Series[i], true
	}
	return Series{}, false
}

// FindItem returns the item with the given id.
func (s Snapshot) FindItem(id string) (Item, bool) {
	if i := s.itemIndex(id); i >= 0 {
		return s.Items[i].Clone(), true
	}
	return Item{}, false
}

// HasSeries reports whether a series with the given id exists.
func (s Snapshot) HasSeries(id string) bool {
	return s.seriesIndex(id) >= 0
}

// AddSeries appends a series.
func (s *Snapshot) AddSeries(series Series) {
	s.Series = append(s.Series, series)
}

// ReplaceSeries overwrites the series with the same id. It reports false if none exists.
func (s *Snapshot) ReplaceSeries(series Series) bool {
	i := s.seriesIndex(series.ID)
	if i < 0 {
		return false
	}
	s.Series[i] = series
	return true
}

// RemoveSeries deletes the series and every item referencing it.
// It returns the number of cascaded items, or -1 when the series does not exist.
func (s *Snapshot) RemoveSeries(id string) int {
	i := s.seriesIndex(id)
	if i < 0 {
		return -1
	}
	s.Series = append(s.Series[:i:i], s.Series[i+1:]...)

	kept := make([]Item, 0, len(s.Items))
	for _, it := range s.Items {
		if it.SeriesID != id {
			kept = append(kept, it)
		}
	}
	removed := len(s.Items) - len(kept)
	s.Items = kept
	return removed
}

// PrependItem inserts item at the front of the list.
func (s *Snapshot) PrependItem(item Item) {
	s.Items = append([]Item{item}, s.Items...)
}

// ReplaceItem overwrites the item with the same id in place. It reports false if none exists.
func (s *Snapshot) ReplaceItem(item Item) bool {
	i := s.itemIndex(item.ID)
	if i < 0 {
		return false
	}
	s.Items[i] = item
	return true
}

// RemoveItem deletes the item with the given id. It reports false if none exists.
func (s *Snapshot) RemoveItem(id string) bool {
	i := s.itemIndex(id)
	if i < 0 {
		return false
	}
	s.Items = append(s.Items[:i:i], s.Items[i+1:]...)
	return true
}

func (s Snapshot) seriesIndex(id string) int {
	for i := range s.Series {
		if s.Series[i].ID == id {
			return i
		}
	}
	return -1
}

func (s Snapshot) itemIndex(id string) int {
	for i := range s.Items {
		if s.Items[i].ID == id {
			return i
		}
	}
	return -1
}
