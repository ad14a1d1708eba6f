package models

import "fmt"

// Status is the ownership state of an Item.
type Status string

const (
	StatusDisplayed Status = "displayed"
	StatusStored    Status = "stored"
	StatusNotOwned  Status = "not_owned"
)

// DefaultStatus is substituted wherever an Item has no status.
const DefaultStatus = StatusDisplayed

var statusLabels = map[Status]string{
	StatusDisplayed: "展示中",
	StatusStored:    "收納中",
	StatusNotOwned:  "未擁有",
}

// Statuses lists every valid Status in display order.
func Statuses() []Status {
	return []Status{StatusDisplayed, StatusStored, StatusNotOwned}
}

// ParseStatus converts s into a Status. The empty string yields DefaultStatus.
func ParseStatus(s string) (Status, error) {
	if s == "" {
		return DefaultStatus, nil
	}
	st := Status(s)
	if !st.Valid() {
		return "", fmt.Errorf("unknown status %q", s)
	}
	return st, nil
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Owned reports whether the status counts as owned (displayed or stored).
func (s Status) Owned() bool {
	return s == StatusDisplayed || s == StatusStored
}

// Label returns the human-readable label shown in the collection UI.
func (s Status) Label() string {
	return statusLabels[s]
}

// String returns the underlying string value.
func (s Status) String() string {
	return string(s)
}

// StatusFilter selects items by effective status. StatusAll (or empty) disables filtering.
type StatusFilter string

// StatusAll matches every status.
const StatusAll StatusFilter = "all"

// ParseStatusFilter accepts "all", the empty string, or any valid Status.
func ParseStatusFilter(s string) (StatusFilter, error) {
	if s == "" || s == string(StatusAll) {
		return StatusAll, nil
	}
	if !Status(s).Valid() {
		return "", fmt.Errorf("unknown status filter %q", s)
	}
	return StatusFilter(s), nil
}

// IsAll reports whether the filter lets every status through.
func (f StatusFilter) IsAll() bool {
	return f == "" || f == StatusAll
}

// Matches reports whether an item with status s passes the filter.
func (f StatusFilter) Matches(s Status) bool {
	return f.IsAll() || Status(f) == s
}
