package services

import (
	"fmt"
	"math"
	"strings"

	"github.com/ghuser/boxjoy/services/collection/domain/models"
)

const maxNameLength = 255

// ValidateSeries enforces the business rules for a Series before it enters the store.
//
// Business rules:
//   - Name must not be blank and must not exceed 255 characters
//   - Slot capacities must be non-negative
func ValidateSeries(s models.Series) error {
	if err := validateName(s.Name); err != nil {
		return fmt.Errorf("series %w", err)
	}
	if s.TotalRegular < 0 {
		return fmt.Errorf("totalRegular must not be negative")
	}
	if s.TotalSecret < 0 {
		return fmt.Errorf("totalSecret must not be negative")
	}
	return nil
}

// ValidateItemFields enforces the business rules for user-editable item fields.
// Whether SeriesID refers to an existing series is checked by the store.
//
// Business rules:
//   - Name must not be blank and must not exceed 255 characters
//   - SeriesID must be set
//   - Price must be a finite, non-negative number
//   - Status, if set, must be a known status
func ValidateItemFields(f models.ItemFields) error {
	if err := validateName(f.Name); err != nil {
		return fmt.Errorf("item %w", err)
	}
	if strings.TrimSpace(f.SeriesID) == "" {
		return fmt.Errorf("seriesId must be set")
	}
	if math.IsNaN(f.Price) || math.IsInf(f.Price, 0) {
		return fmt.Errorf("price must be a finite number")
	}
	if f.Price < 0 {
		return fmt.Errorf("price must not be negative")
	}
	if f.Status != "" && !f.Status.Valid() {
		return fmt.Errorf("unknown status %q", f.Status)
	}
	return nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name must not be blank")
	}
	if len([]rune(name)) > maxNameLength {
		return fmt.Errorf("name must not exceed %d characters", maxNameLength)
	}
	return nil
}
