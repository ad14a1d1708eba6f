// Package services contains the pure engines of the collection bounded context:
// view filtering and sorting, slot reconciliation and stats aggregation.
// Every function here is total and leaves its inputs untouched.
package services

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/ghuser/boxjoy/services/collection/domain/models"
)

// VisibleItems applies the series, status and search filters of q to items in that order,
// then sorts the survivors. It always returns a fresh slice.
//
// Date orders place items with an unparseable DateAcquired after every parseable one,
// keeping their relative order. Unknown sort options fall back to date_desc.
func VisibleItems(items []models.Item, q models.ViewQuery) []models.Item {
	term := strings.ToLower(q.Search)

	out := make([]models.Item, 0, len(items))
	for _, it := range items {
		if q.SeriesID != "" && it.SeriesID != q.SeriesID {
			continue
		}
		if !q.Status.Matches(it.EffectiveStatus()) {
			continue
		}
		if term != "" && !matchesSearch(it, term) {
			continue
		}
		out = append(out, it.Clone())
	}

	sortItems(out, q.Sort)
	return out
}

func matchesSearch(it models.Item, term string) bool {
	if strings.Contains(strings.ToLower(it.Name), term) ||
		strings.Contains(strings.ToLower(it.Description), term) {
		return true
	}
	for _, tag := range it.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

func sortItems(items []models.Item, opt models.SortOption) {
	switch opt {
	case models.SortPriceAsc:
		slices.SortStableFunc(items, func(a, b models.Item) int {
			return cmp.Compare(a.Price, b.Price)
		})
	case models.SortPriceDesc:
		slices.SortStableFunc(items, func(a, b models.Item) int {
			return cmp.Compare(b.Price, a.Price)
		})
	case models.SortDateAsc:
		sortByDate(items, false)
	default:
		sortByDate(items, true)
	}
}

type datedItem struct {
	item models.Item
	at   time.Time
	ok   bool
}

func sortByDate(items []models.Item, desc bool) {
	dated := make([]datedItem, len(items))
	for i, it := range items {
		at, ok := it.AcquiredAt()
		dated[i] = datedItem{item: it, at: at, ok: ok}
	}

	slices.SortStableFunc(dated, func(a, b datedItem) int {
		switch {
		case !a.ok && !b.ok:
			return 0
		case !a.ok:
			return 1
		case !b.ok:
			return -1
		}
		if desc {
			return b.at.Compare(a.at)
		}
		return a.at.Compare(b.at)
	})

	for i := range dated {
		items[i] = dated[i].item
	}
}
