package handlers

import (
	"net/http"

	"github.com/ghuser/boxjoy/pkg/httpx"
	pkgvalidator "github.com/ghuser/boxjoy/pkg/validator"
	appsvcs "github.com/ghuser/boxjoy/services/collection/application/services"
)

// ClassifyHandler handles POST /classify.
type ClassifyHandler struct {
	base
}

// NewClassifyHandler returns a ClassifyHandler backed by the given services.
func NewClassifyHandler(svc *appsvcs.Services, production bool) *ClassifyHandler {
	return &ClassifyHandler{base{svc: svc, production: production}}
}

// Execute identifies the figure in a base64 photo. A data-URL header is accepted.
//
//	@Summary		Identify figure
//	@Description	Sends the photo to the image classifier and returns name, series, rarity and a description
//	@Tags			classify
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ClassifyRequest	true	"Base64 image"
//	@Success		200		{object}	ClassifyResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		413		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Failure		502		{object}	ErrorResponse
//	@Failure		503		{object}	ErrorResponse
//	@Router			/classify [post]
func (h *ClassifyHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[ClassifyRequest](w, r)
	if !ok {
		return
	}
	id, err := h.svc.Classify.IdentifyEncoded(r.Context(), req.Image)
	if err != nil {
		h.writeError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, ClassifyResponse{
		Name:        id.Name,
		Series:      id.Series,
		Rarity:      string(id.Rarity),
		Description: id.Description,
		Confidence:  id.Confidence,
	})
}
