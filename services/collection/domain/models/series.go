package models

import "github.com/google/uuid"

// Default slot capacities applied when a series does not declare them.
const (
	DefaultTotalRegular = 12
	DefaultTotalSecret  = 1
)

// Series is a named collection category with a declared capacity of regular and secret slots.
type Series struct {
	ID           string
	Name         string
	CoverImage   string
	TotalRegular int
	TotalSecret  int
}

// NewSeries constructs a Series with a generated ID. Nil capacities take the defaults.
func NewSeries(name, coverImage string, totalRegular, totalSecret *int) Series {
	return SeriesRecord{
		ID:           uuid.NewString(),
		Name:         name,
		CoverImage:   coverImage,
		TotalRegular: totalRegular,
		TotalSecret:  totalSecret,
	}.Normalize()
}

// SlotsRegular is the regular capacity used for slot and progress math.
// A zero or negative stored value counts as DefaultTotalRegular.
func (s Series) SlotsRegular() int {
	if s.TotalRegular <= 0 {
		return DefaultTotalRegular
	}
	return s.TotalRegular
}

// SlotsSecret is the secret capacity used for slot and progress math.
// A zero or negative stored value counts as DefaultTotalSecret.
func (s Series) SlotsSecret() int {
	if s.TotalSecret <= 0 {
		return DefaultTotalSecret
	}
	return s.TotalSecret
}

// Capacity is the total number of slots (regular + secret), after defaulting.
func (s Series) Capacity() int {
	return s.SlotsRegular() + s.SlotsSecret()
}

// Record returns the persisted shape of s.
func (s Series) Record() SeriesRecord {
	regular, secret := s.TotalRegular, s.TotalSecret
	return SeriesRecord{
		ID:           s.ID,
		Name:         s.Name,
		CoverImage:   s.CoverImage,
		TotalRegular: &regular,
		TotalSecret:  &secret,
	}
}

// SeriesRecord is the persisted JSON shape of a Series. Capacities may be absent.
type SeriesRecord struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	CoverImage   string `json:"coverImage"`
	TotalRegular *int   `json:"totalRegular,omitempty"`
	TotalSecret  *int   `json:"totalSecret,omitempty"`
}

// Normalize fills absent capacities with their defaults. An explicit 0 is kept
// as stored; SlotsRegular and SlotsSecret apply the default when counting.
func (r SeriesRecord) Normalize() Series {
	s := Series{
		ID:           r.ID,
		Name:         r.Name,
		CoverImage:   r.CoverImage,
		TotalRegular: DefaultTotalRegular,
		TotalSecret:  DefaultTotalSecret,
	}
	if r.TotalRegular != nil {
		s.TotalRegular = *r.TotalRegular
	}
	if r.TotalSecret != nil {
		s.TotalSecret = *r.TotalSecret
	}
	return s
}
