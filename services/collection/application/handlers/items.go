package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/boxjoy/pkg/httpx"
	pkgvalidator "github.com/ghuser/boxjoy/pkg/validator"
	appsvcs "github.com/ghuser/boxjoy/services/collection/application/services"
)

// ItemsHandler serves /items.
type ItemsHandler struct {
	base
}

// NewItemsHandler returns an ItemsHandler backed by the given services.
func NewItemsHandler(svc *appsvcs.Services, production bool) *ItemsHandler {
	return &ItemsHandler{base{svc: svc, production: production}}
}

// List returns the items visible under the view query. When a single series is
// selected with no status filter and no search, the missing slots are included.
//
//	@Summary	List items
//	@Tags		items
//	@Produce	json
//	@Param		series	query		string	false	"Series ID"
//	@Param		status	query		string	false	"Status filter"	Enums(all, displayed, stored, not_owned)
//	@Param		q		query		string	false	"Case-insensitive search over name, description and tags"
//	@Param		sort	query		string	false	"Sort order"	Enums(date_desc, date_asc, price_desc, price_asc)
//	@Success	200		{object}	ItemListResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/items [get]
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	q, err := parseViewQuery(r)
	if err != nil {
		writeBadQuery(w, err)
		return
	}

	items := h.svc.Collection.VisibleItems(q)
	resp := ItemListResponse{Items: make([]ItemResponse, len(items)), Count: len(items)}
	for i, it := range items {
		resp.Items[i] = toItemResponse(it)
	}

	if q.SeriesID != "" {
		slots, applicable, err := h.svc.Collection.GhostSlots(q.SeriesID, q)
		if err == nil && applicable {
			s := toSlotsResponse(q.SeriesID, slots, applicable)
			resp.GhostSlots = &s
		}
	}

	httpx.JSON(w, http.StatusOK, resp)
}

// Get returns one item.
//
//	@Summary	Get item
//	@Tags		items
//	@Produce	json
//	@Param		id	path		string	true	"Item ID"
//	@Success	200	{object}	ItemResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/items/{id} [get]
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	it, err := h.svc.Collection.GetItem(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toItemResponse(it))
}

// Create records a new item, acquired now.
//
//	@Summary	Create item
//	@Tags		items
//	@Accept		json
//	@Produce	json
//	@Param		request	body		ItemRequest	true	"Item"
//	@Success	201		{object}	ItemResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse	"Unknown series"
//	@Failure	422		{object}	ErrorResponse
//	@Router		/items [post]
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[ItemRequest](w, r)
	if !ok {
		return
	}
	it, err := h.svc.Collection.CreateItem(r.Context(), req.fields())
	if err != nil {
		h.writeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toItemResponse(it))
}

// Update replaces an item's editable fields. Its id and acquisition date are kept.
//
//	@Summary	Update item
//	@Tags		items
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string		true	"Item ID"
//	@Param		request	body		ItemRequest	true	"Item"
//	@Success	200		{object}	ItemResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/items/{id} [put]
func (h *ItemsHandler) Update(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[ItemRequest](w, r)
	if !ok {
		return
	}
	it, err := h.svc.Collection.UpdateItem(r.Context(), chi.URLParam(r, "id"), req.fields())
	if err != nil {
		h.writeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toItemResponse(it))
}

// Delete removes an item.
//
//	@Summary	Delete item
//	@Tags		items
//	@Param		id	path	string	true	"Item ID"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/items/{id} [delete]
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Collection.DeleteItem(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, err)
		return
	}
	httpx.NoContent(w)
}
