// internal/app/features/auditlog/list.go
package auditlog

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dalemusser/groupflight/internal/app/store/audit"
	"github.com/dalemusser/groupflight/internal/app/system/paging"
	"github.com/dalemusser/groupflight/internal/app/system/timeouts"
	"github.com/dalemusser/groupflight/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// filterFromRequest reads the list filters. Unparseable dates are dropped;
// end_date includes the whole named day.
func filterFromRequest(r *http.Request) (audit.QueryFilter, url.Values) {
	vals := url.Values{}
	var f audit.QueryFilter

	if c := strings.TrimSpace(query.Get(r, "category")); c != "" {
		f.Category = c
		vals.Set("category", c)
	}
	if et := strings.TrimSpace(query.Get(r, "event_type")); et != "" {
		f.EventType = et
		vals.Set("event_type", et)
	}
	if s := strings.TrimSpace(query.Get(r, "start_date")); s != "" {
		if t, err := time.Parse(dateLayout, s); err == nil {
			f.Since = &t
			vals.Set("start_date", s)
		}
	}
	if s := strings.TrimSpace(query.Get(r, "end_date")); s != "" {
		if t, err := time.Parse(dateLayout, s); err == nil {
			next := t.Add(24 * time.Hour)
			f.Until = &next
			vals.Set("end_date", s)
		}
	}
	return f, vals
}

func pageURL(vals url.Values, page int) string {
	v := url.Values{}
	for k, vs := range vals {
		v[k] = vs
	}
	v.Set("page", strconv.Itoa(page))
	return "/audit?" + v.Encode()
}

func (h *Handler) loadList(ctx context.Context, r *http.Request) (listData, error) {
	filter, vals := filterFromRequest(r)

	total, err := h.Audit.Count(ctx, filter)
	if err != nil {
		return listData{}, err
	}
	pager := paging.New(paging.ParsePage(r), paging.PageSize, total)
	filter.Limit = pager.PageSize
	filter.Offset = pager.Offset()

	events, err := h.Audit.Query(ctx, filter)
	if err != nil {
		return listData{}, err
	}

	seen := make(map[uint]struct{})
	ids := make([]uint, 0, len(events))
	for _, e := range events {
		if e.ActorID == nil {
			continue
		}
		if _, ok := seen[*e.ActorID]; !ok {
			seen[*e.ActorID] = struct{}{}
			ids = append(ids, *e.ActorID)
		}
	}
	names, err := h.Users.NamesByID(ctx, ids)
	if err != nil {
		// Rows still render with raw IDs.
		h.Log.Warn("failed to fetch user names for audit log", zap.Error(err))
		names = map[uint]string{}
	}

	items := make([]listItem, 0, len(events))
	for _, e := range events {
		item := listItem{
			ID:        e.ID,
			Timestamp: e.Timestamp,
			Category:  e.Category,
			EventType: e.EventType,
			Entity:    e.Entity,
			IP:        e.IP,
			Success:   e.Success,
			Reason:    e.FailureReason,
			Details:   e.Details,
		}
		if e.ActorID != nil {
			if name, ok := names[*e.ActorID]; ok && name != "" {
				item.ActorName = name
			} else {
				item.ActorName = "#" + strconv.FormatUint(uint64(*e.ActorID), 10)
			}
		}
		if e.EntityID != nil {
			item.EntityID = strconv.FormatUint(uint64(*e.EntityID), 10)
		}
		items = append(items, item)
	}

	return listData{
		BaseVM:     viewdata.NewBaseVM(r, "Audit Log", "/"),
		Items:      items,
		Category:   filter.Category,
		EventType:  filter.EventType,
		StartDate:  vals.Get("start_date"),
		EndDate:    vals.Get("end_date"),
		Categories: allCategories(),
		EventTypes: eventTypesForCategory(filter.Category),
		Pager:      pager,
		PrevURL:    pageURL(vals, pager.PrevPage),
		NextURL:    pageURL(vals, pager.NextPage),
	}, nil
}

// ServeList handles GET /audit.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "audit log list")
	defer cancel()

	data, err := h.loadList(ctx, r)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "audit log query failed", err, "A database error occurred.", "/")
		return
	}
	templates.Render(w, r, "audit_list", data)
}
