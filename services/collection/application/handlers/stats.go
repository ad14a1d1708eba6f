package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/ghuser/boxjoy/pkg/cache"
	"github.com/ghuser/boxjoy/pkg/httpx"
	appsvcs "github.com/ghuser/boxjoy/services/collection/application/services"
)

// StatsSnapshotResponse is the stats read model last written by the worker.
type StatsSnapshotResponse struct {
	OwnedCount  int       `json:"ownedCount"  example:"8"`
	TotalValue  float64   `json:"totalValue"  example:"9610"`
	Level       int       `json:"level"       example:"2"`
	LastEventID string    `json:"lastEventId" example:"3f0f5a8e-1d2c-4b7a-9e61-2a7c1b9d0e55"`
	UpdatedAt   time.Time `json:"updatedAt"   example:"2024-05-01T12:00:00Z"`
} // @name StatsSnapshotResponse

// StatsHandler serves /stats.
type StatsHandler struct {
	base
}

// NewStatsHandler returns a StatsHandler backed by the given services.
func NewStatsHandler(svc *appsvcs.Services, production bool) *StatsHandler {
	return &StatsHandler{base{svc: svc, production: production}}
}

// Get returns the live collection summary.
//
//	@Summary		Collection stats
//	@Description	Owned count, total value of owned items, level and progress to the next level
//	@Tags			stats
//	@Produce		json
//	@Success		200	{object}	StatsResponse
//	@Router			/stats [get]
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	st := h.svc.Collection.Stats()
	httpx.JSON(w, http.StatusOK, StatsResponse{
		OwnedCount:    st.OwnedCount,
		NotOwnedCount: st.NotOwnedCount,
		TotalCount:    st.TotalCount,
		TotalValue:    st.TotalValue,
		Level:         st.Level,
		Progress:      st.Progress,
		NextLevelAt:   st.NextLevelAt,
	})
}

// Snapshot returns the Redis stats read model maintained from collection.changed events.
//
//	@Summary	Cached stats snapshot
//	@Tags		stats
//	@Produce	json
//	@Success	200	{object}	StatsSnapshotResponse
//	@Failure	404	{object}	ErrorResponse	"No snapshot written yet"
//	@Failure	503	{object}	ErrorResponse	"Redis not configured"
//	@Router		/stats/snapshot [get]
func (h *StatsHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	if h.svc.StatsCache == nil {
		httpx.JSONError(w, http.StatusServiceUnavailable, "stats snapshot unavailable")
		return
	}
	snap, err := h.svc.StatsCache.Get(r.Context())
	if errors.Is(err, cache.ErrSnapshotNotFound) {
		httpx.JSONError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		h.writeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, StatsSnapshotResponse{
		OwnedCount:  snap.OwnedCount,
		TotalValue:  snap.TotalValue,
		Level:       snap.Level,
		LastEventID: snap.LastEventID,
		UpdatedAt:   snap.UpdatedAt,
	})
}
