package models

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// secretMarker marks an item as secret when it appears in the name, description or a tag.
const secretMarker = "隱藏"

// secretTags are the literal tags that mark an item as secret.
var secretTags = map[string]struct{}{
	"隱藏":     {},
	"Secret": {},
	"secret": {},
	"hidden": {},
}

// Item is a single recorded collectible, owned or wished-for, belonging to exactly one Series.
type Item struct {
	ID           string
	Name         string
	SeriesID     string
	Description  string
	ImageURL     string
	DateAcquired string // ISO-8601; fixed at creation
	Price        float64
	Notes        string
	Status       Status
	Tags         []string
}

// ItemFields are the user-editable fields of an Item.
type ItemFields struct {
	Name        string
	SeriesID    string
	Description string
	ImageURL    string
	Price       float64
	Notes       string
	Status      Status
	Tags        []string
}

// NewItem constructs an Item with a generated ID, acquired at the given time.
func NewItem(f ItemFields, acquired time.Time) Item {
	it := Item{ID: uuid.NewString(), DateAcquired: FormatTimestamp(acquired)}
	return it.WithFields(f)
}

// WithFields returns a copy of i with its editable fields replaced.
// ID and DateAcquired are preserved.
func (i Item) WithFields(f ItemFields) Item {
	status := f.Status
	if status == "" {
		status = DefaultStatus
	}
	return Item{
		ID:           i.ID,
		Name:         f.Name,
		SeriesID:     f.SeriesID,
		Description:  f.Description,
		ImageURL:     f.ImageURL,
		DateAcquired: i.DateAcquired,
		Price:        f.Price,
		Notes:        f.Notes,
		Status:       status,
		Tags:         NormalizeTags(f.Tags),
	}
}

// EffectiveStatus returns the status with DefaultStatus substituted when absent.
func (i Item) EffectiveStatus() Status {
	if i.Status == "" {
		return DefaultStatus
	}
	return i.Status
}

// Owned reports whether the item's effective status counts as owned.
func (i Item) Owned() bool {
	return i.EffectiveStatus().Owned()
}

// IsSecret reports whether the item occupies a secret slot: it carries one of the
// secret tags, or its name, description or any tag contains the secret marker
// (so a "隱藏款" tag counts).
// Tags are matched by substring as well, not only against the four literal markers.
func (i Item) IsSecret() bool {
	for _, t := range i.Tags {
		if _, ok := secretTags[t]; ok {
			return true
		}
		if strings.Contains(t, secretMarker) {
			return true
		}
	}
	return strings.Contains(i.Name, secretMarker) || strings.Contains(i.Description, secretMarker)
}

// AcquiredAt parses DateAcquired. ok is false when the stored value is unparseable.
func (i Item) AcquiredAt() (time.Time, bool) {
	return ParseTimestamp(i.DateAcquired)
}

// Clone returns a deep copy of i.
func (i Item) Clone() Item {
	i.Tags = slices.Clone(i.Tags)
	return i
}

// NormalizeTags trims tags, drops empty ones, and removes duplicates keeping the first occurrence.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// Record returns the persisted shape of i.
func (i Item) Record() ItemRecord {
	price := i.Price
	status := i.EffectiveStatus()
	return ItemRecord{
		ID:           i.ID,
		Name:         i.Name,
		SeriesID:     i.SeriesID,
		Description:  i.Description,
		ImageURL:     i.ImageURL,
		DateAcquired: i.DateAcquired,
		Price:        &price,
		Notes:        i.Notes,
		Status:       status,
		Tags:         append([]string{}, i.Tags...),
	}
}

// ItemRecord is the persisted JSON shape of an Item. Price, notes, status and tags may be absent.
type ItemRecord struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	SeriesID     string   `json:"seriesId"`
	Description  string   `json:"description"`
	ImageURL     string   `json:"imageUrl"`
	DateAcquired string   `json:"dateAcquired"`
	Price        *float64 `json:"price,omitempty"`
	Notes        string   `json:"notes,omitempty"`
	Status       Status   `json:"status,omitempty"`
	Tags         []string `json:"tags,omitempty"`
}

// Normalize fills absent optional fields with their defaults.
func (r ItemRecord) Normalize() Item {
	it := Item{
		ID:           r.ID,
		Name:         r.Name,
		SeriesID:     r.SeriesID,
		Description:  r.Description,
		ImageURL:     r.ImageURL,
		DateAcquired: r.DateAcquired,
		Notes:        r.Notes,
		Status:       r.Status,
		Tags:         append([]string{}, r.Tags...),
	}
	if r.Price != nil {
		it.Price = *r.Price
	}
	if it.Status == "" {
		it.Status = DefaultStatus
	}
	return it
}
