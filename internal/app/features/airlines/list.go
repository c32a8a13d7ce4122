// internal/app/features/airlines/list.go
package airlines

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/dalemusser/groupflight/internal/app/system/timeouts"
	"github.com/dalemusser/groupflight/internal/app/system/viewdata"
	"github.com/dalemusser/groupflight/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
)

// loadList fetches the airlines matching search (all when blank).
func (h *Handler) loadList(ctx context.Context, r *http.Request, search string) (listData, error) {
	path := "AirlineData/ListAirlines"
	if search != "" {
		path += "/" + url.PathEscape(search)
	}

	var rows []models.AirlineDto
	if _, err := h.API.GetJSON(ctx, r, path, &rows); err != nil {
		return listData{}, err
	}
	return listData{
		BaseVM:   viewdata.NewBaseVM(r, "Airlines", "/"),
		Search:   search,
		Airlines: rows,
	}, nil
}

// ServeList renders the airline list, filtered by ?AirlineSearch=.
// GET /Airline/List
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Upstream())
	defer cancel()

	data, err := h.loadList(ctx, r, strings.TrimSpace(query.Get(r, "AirlineSearch")))
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list airlines via api failed", err, "Could not load airlines.", "/")
		return
	}
	templates.Render(w, r, "airline_list", data)
}
