package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/boxjoy/pkg/httpx"
	pkgvalidator "github.com/ghuser/boxjoy/pkg/validator"
	appsvcs "github.com/ghuser/boxjoy/services/collection/application/services"
)

// SeriesHandler serves /series.
type SeriesHandler struct {
	base
}

// NewSeriesHandler returns a SeriesHandler backed by the given services.
func NewSeriesHandler(svc *appsvcs.Services, production bool) *SeriesHandler {
	return &SeriesHandler{base{svc: svc, production: production}}
}

// List returns every series with its owned-count progress.
//
//	@Summary		List series
//	@Description	Returns all series in creation order with owned-count progress
//	@Tags			series
//	@Produce		json
//	@Success		200	{array}	SeriesProgressResponse
//	@Router			/series [get]
func (h *SeriesHandler) List(w http.ResponseWriter, r *http.Request) {
	progress := h.svc.Collection.ListSeriesProgress()
	out := make([]SeriesProgressResponse, len(progress))
	for i, p := range progress {
		out[i] = SeriesProgressResponse{
			SeriesResponse: toSeriesResponse(p.Series),
			OwnedCount:     p.OwnedCount,
			Total:          p.Total,
			Percent:        p.Percent,
			Complete:       p.Complete,
		}
	}
	httpx.JSON(w, http.StatusOK, out)
}

// Get returns one series.
//
//	@Summary	Get series
//	@Tags		series
//	@Produce	json
//	@Param		id	path		string	true	"Series ID"
//	@Success	200	{object}	SeriesResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/series/{id} [get]
func (h *SeriesHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Collection.GetSeries(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toSeriesResponse(s))
}

// Create adds a series. Absent capacities default to 12 regular and 1 secret.
//
//	@Summary	Create series
//	@Tags		series
//	@Accept		json
//	@Produce	json
//	@Param		request	body		SeriesRequest	true	"Series"
//	@Success	201		{object}	SeriesResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/series [post]
func (h *SeriesHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[SeriesRequest](w, r)
	if !ok {
		return
	}
	s, err := h.svc.Collection.CreateSeries(r.Context(), seriesInput(req))
	if err != nil {
		h.writeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toSeriesResponse(s))
}

// Update replaces a series' editable fields. Absent capacities keep their value.
//
//	@Summary	Update series
//	@Tags		series
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string			true	"Series ID"
//	@Param		request	body		SeriesRequest	true	"Series"
//	@Success	200		{object}	SeriesResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/series/{id} [put]
func (h *SeriesHandler) Update(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[SeriesRequest](w, r)
	if !ok {
		return
	}
	s, err := h.svc.Collection.UpdateSeries(r.Context(), chi.URLParam(r, "id"), seriesInput(req))
	if err != nil {
		h.writeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toSeriesResponse(s))
}

// Delete removes a series together with all of its items.
//
//	@Summary		Delete series
//	@Description	Deletes the series and every item that belongs to it
//	@Tags			series
//	@Produce		json
//	@Param			id	path		string	true	"Series ID"
//	@Success		200	{object}	DeleteSeriesResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/series/{id} [delete]
func (h *SeriesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	n, err := h.svc.Collection.DeleteSeries(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, DeleteSeriesResponse{ID: id, DeletedItems: n})
}

// Slots returns the missing slots of a series under the given view filters.
//
//	@Summary		Missing slots
//	@Description	Ghost slots only apply when neither a status filter nor a search term is set
//	@Tags			series
//	@Produce		json
//	@Param			id		path		string	true	"Series ID"
//	@Param			status	query		string	false	"Status filter"	Enums(all, displayed, stored, not_owned)
//	@Param			q		query		string	false	"Search term"
//	@Success		200		{object}	SlotsResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/series/{id}/slots [get]
func (h *SeriesHandler) Slots(w http.ResponseWriter, r *http.Request) {
	q, err := parseViewQuery(r)
	if err != nil {
		writeBadQuery(w, err)
		return
	}
	id := chi.URLParam(r, "id")
	q.SeriesID = id

	slots, applicable, err := h.svc.Collection.GhostSlots(id, q)
	if err != nil {
		h.writeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toSlotsResponse(id, slots, applicable))
}

func seriesInput(req *SeriesRequest) appsvcs.SeriesInput {
	return appsvcs.SeriesInput{
		Name:         req.Name,
		CoverImage:   req.CoverImage,
		TotalRegular: req.TotalRegular,
		TotalSecret:  req.TotalSecret,
	}
}
