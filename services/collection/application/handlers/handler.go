package handlers

import (
	"net/http"
	"strings"

	"github.com/ghuser/boxjoy/pkg/errhttp"
	"github.com/ghuser/boxjoy/pkg/httpx"
	appsvcs "github.com/ghuser/boxjoy/services/collection/application/services"
	"github.com/ghuser/boxjoy/services/collection/domain/models"
)

// base carries what every collection handler needs.
type base struct {
	svc        *appsvcs.Services
	production bool
}

func (b base) writeError(w http.ResponseWriter, err error) {
	errhttp.WriteSafeError(w, err, b.production)
}

// parseViewQuery reads ?series=&status=&q=&sort= into a ViewQuery.
// Unknown sort values fall back to the default order.
func parseViewQuery(r *http.Request) (models.ViewQuery, error) {
	q := r.URL.Query()
	status, err := models.ParseStatusFilter(strings.TrimSpace(q.Get("status")))
	if err != nil {
		return models.ViewQuery{}, err
	}
	sort, err := models.ParseSortOption(q.Get("sort"))
	if err != nil {
		sort = models.DefaultSort
	}
	return models.ViewQuery{
		SeriesID: strings.TrimSpace(q.Get("series")),
		Status:   status,
		Search:   q.Get("q"),
		Sort:     sort,
	}, nil
}

func writeBadQuery(w http.ResponseWriter, err error) {
	httpx.JSONError(w, http.StatusBadRequest, err.Error())
}
