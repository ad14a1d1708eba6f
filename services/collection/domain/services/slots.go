package services

import "github.com/ghuser/boxjoy/services/collection/domain/models"

// MissingSlots computes how many regular and secret positions of series are not yet
// represented by any item. Every item in the series counts, whatever its status.
// Zero capacities count as the defaults (12 regular, 1 secret).
func MissingSlots(series models.Series, items []models.Item) models.Slots {
	var filled, filledSecret int
	for _, it := range items {
		if it.SeriesID != series.ID {
			continue
		}
		filled++
		if it.IsSecret() {
			filledSecret++
		}
	}
	filledRegular := filled - filledSecret

	return models.Slots{
		Regular: max(0, series.SlotsRegular()-filledRegular),
		Secret:  max(0, series.SlotsSecret()-filledSecret),
	}
}

// GhostSlots returns the missing slots of series under view q. Placeholders only make
// sense in a view showing the whole series, so applicable is false (and the slots are
// zero) when no series is selected, a status filter is active or a search term is set.
func GhostSlots(series models.Series, items []models.Item, q models.ViewQuery) (slots models.Slots, applicable bool) {
	if q.SeriesID == "" || q.SeriesID != series.ID || !q.Unfiltered() {
		return models.Slots{}, false
	}
	return MissingSlots(series, items), true
}
