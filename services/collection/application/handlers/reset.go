package handlers

import (
	"net/http"

	"github.com/ghuser/boxjoy/pkg/httpx"
	pkgvalidator "github.com/ghuser/boxjoy/pkg/validator"
	appsvcs "github.com/ghuser/boxjoy/services/collection/application/services"
)

// ResetHandler handles POST /reset.
type ResetHandler struct {
	base
}

// NewResetHandler returns a ResetHandler backed by the given services.
func NewResetHandler(svc *appsvcs.Services, production bool) *ResetHandler {
	return &ResetHandler{base{svc: svc, production: production}}
}

// Execute discards the collection and restores the default dataset.
//
//	@Summary		Reset collection
//	@Description	Replaces every series and item with the default dataset. Requires {"confirm": true}.
//	@Tags			collection
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ResetRequest	true	"Confirmation"
//	@Success		200		{object}	ResetResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/reset [post]
func (h *ResetHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[ResetRequest](w, r)
	if !ok {
		return
	}
	snap, err := h.svc.Collection.Reset(r.Context(), req.Confirm)
	if err != nil {
		h.writeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, ResetResponse{Series: len(snap.Series), Items: len(snap.Items)})
}
