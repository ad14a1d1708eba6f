package domain

import "errors"

// Sentinel errors for the collection domain. Use errors.Is() to check these.
var (
	// ErrSeriesNotFound indicates the requested series does not exist.
	ErrSeriesNotFound = errors.New("series not found")

	// ErrItemNotFound indicates the requested item does not exist.
	ErrItemNotFound = errors.New("item not found")

	// ErrInvalidSeries indicates series input violates domain constraints.
	ErrInvalidSeries = errors.New("invalid series")

	// ErrInvalidItem indicates item input violates domain constraints.
	ErrInvalidItem = errors.New("invalid item")

	// ErrCorruptState indicates a persisted blob could not be decoded.
	ErrCorruptState = errors.New("corrupt persisted state")

	// ErrResetNotConfirmed indicates a destructive reset was requested without confirmation.
	ErrResetNotConfirmed = errors.New("reset not confirmed")

	// ErrInvalidImage indicates an image payload could not be decoded.
	ErrInvalidImage = errors.New("invalid image")

	// ErrClassificationFailed indicates the image classifier failed or returned an unusable payload.
	ErrClassificationFailed = errors.New("classification failed")

	// ErrClassifierUnavailable indicates no classifier is configured.
	ErrClassifierUnavailable = errors.New("classifier unavailable")
)
