package models

import "fmt"

// SortOption is one of the four total orders over displayed items.
type SortOption string

const (
	SortDateDesc  SortOption = "date_desc"
	SortDateAsc   SortOption = "date_asc"
	SortPriceDesc SortOption = "price_desc"
	SortPriceAsc  SortOption = "price_asc"
)

// DefaultSort is used when no sort option is given.
const DefaultSort = SortDateDesc

// ParseSortOption converts s into a SortOption. The empty string yields DefaultSort.
func ParseSortOption(s string) (SortOption, error) {
	switch SortOption(s) {
	case "":
		return DefaultSort, nil
	case SortDateDesc, SortDateAsc, SortPriceDesc, SortPriceAsc:
		return SortOption(s), nil
	default:
		return "", fmt.Errorf("unknown sort option %q", s)
	}
}
