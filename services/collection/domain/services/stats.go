package services

import "github.com/ghuser/boxjoy/services/collection/domain/models"

// ItemsPerLevel is the number of owned items needed to gain one level.
const ItemsPerLevel = 5

// ComputeStats aggregates the collection summary over items.
// Only owned items (displayed or stored) contribute to the count and value.
func ComputeStats(items []models.Item) models.Stats {
	var s models.Stats
	for _, it := range items {
		if it.Owned() {
			s.OwnedCount++
			s.TotalValue += it.Price
		} else {
			s.NotOwnedCount++
		}
	}
	s.TotalCount = len(items)
	s.Level = s.OwnedCount/ItemsPerLevel + 1
	s.Progress = (s.OwnedCount % ItemsPerLevel) * (100 / ItemsPerLevel)
	s.NextLevelAt = s.Level * ItemsPerLevel
	return s
}

// ComputeSeriesProgress counts owned items of series against its declared capacity.
func ComputeSeriesProgress(series models.Series, items []models.Item) models.SeriesProgress {
	p := models.SeriesProgress{Series: series, Total: series.Capacity()}
	for _, it := range items {
		if it.SeriesID == series.ID && it.Owned() {
			p.OwnedCount++
		}
	}
	if p.Total > 0 {
		p.Percent = min(float64(p.OwnedCount)/float64(p.Total)*100, 100)
		p.Complete = p.OwnedCount >= p.Total
	}
	return p
}

// ComputeAllSeriesProgress returns the progress of every series, in series order.
func ComputeAllSeriesProgress(snap models.Snapshot) []models.SeriesProgress {
	out := make([]models.SeriesProgress, len(snap.Series))
	for i, s := range snap.Series {
		out[i] = ComputeSeriesProgress(s, snap.Items)
	}
	return out
}
