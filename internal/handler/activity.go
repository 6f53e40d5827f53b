package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ilmnur/admin-dashboard/internal/model"
	"github.com/ilmnur/admin-dashboard/internal/state"
	"github.com/ilmnur/admin-dashboard/internal/ui"
)

const activityLimit = 200

// handleActivity renders the local operator activity log. Unlike the
// resource screens this reads the gateway's own store, not the backend.
func (h *Handler) handleActivity(w http.ResponseWriter, r *http.Request) {
	p := h.printer(r)

	rows := []model.Record{}
	var entries []state.Activity
	if h.store != nil {
		var err error
		entries, err = h.store.RecentActivity(r.Context(), activityLimit)
		if err != nil {
			slog.Error("activity load failed", "error", err)
		}
	}
	for _, e := range entries {
		rows = append(rows, model.Record{
			"actor":      e.Actor,
			"action":     e.Action,
			"resource":   e.Resource,
			"record_id":  e.RecordID,
			"created_at": e.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	table := ui.Table{
		Columns: []ui.Column{
			{Key: "actor", Label: p.Sprintf("activity.actor")},
			{Key: "action", Label: p.Sprintf("activity.action")},
			{Key: "resource", Label: p.Sprintf("activity.resource")},
			{Key: "record_id", Label: "ID"},
			{Key: "created_at", Label: p.Sprintf("activity.time"), Render: ui.DateCell},
		},
		Rows:         rows,
		FilterKey:    "action",
		ItemsPerPage: 20,
		Filter:       r.URL.Query().Get("search"),
		Page:         pageParam(r),
		ReloadURL:    "/activity",
	}

	if ui.IsFragment(r) {
		ui.RenderPage(w, r, table.Component(p), nil)
		return
	}

	pg := ui.Page{
		Title:    p.Sprintf("nav.activity"),
		Nav:      h.nav(p, "activity"),
		Flash:    popFlash(w, r),
		Lang:     h.lang(r),
		Username: h.username(),
		Content:  table.Component(p),
	}
	ui.RenderPage(w, r, nil, pg.Component(p))
}

func pageParam(r *http.Request) int {
	if n, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && n > 0 {
		return n
	}
	return 1
}
