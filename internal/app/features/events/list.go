// internal/app/features/events/list.go
package events

import (
	"context"
	"net/http"

	"github.com/dalemusser/groupflight/internal/app/system/timeouts"
	"github.com/dalemusser/groupflight/internal/app/system/viewdata"
	"github.com/dalemusser/groupflight/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
)

func (h *Handler) loadList(ctx context.Context, r *http.Request) (listData, error) {
	var rows []models.EventDto
	if _, err := h.API.GetJSON(ctx, r, "EventData/ListEvents", &rows); err != nil {
		return listData{}, err
	}
	return listData{
		BaseVM: viewdata.NewBaseVM(r, "Events", "/"),
		Events: rows,
	}, nil
}

// GET /Event/List
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Upstream())
	defer cancel()

	data, err := h.loadList(ctx, r)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list events via api failed", err, "Could not load events.", "/")
		return
	}
	templates.Render(w, r, "event_list", data)
}
