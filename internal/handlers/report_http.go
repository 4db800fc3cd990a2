package handlers

import (
	"net/http"

	"github.com/EYOB-A19/Astu-compliant-system/internal/middleware"
	"github.com/EYOB-A19/Astu-compliant-system/internal/service"
	"github.com/EYOB-A19/Astu-compliant-system/internal/store"
	"github.com/EYOB-A19/Astu-compliant-system/internal/utils"
)

// ReportsHTTP derives the dashboard summaries. All inputs are the caller's
// role-scoped ticket subset, so a student's counts cover only their own
// tickets and staff counts cover their department.
type ReportsHTTP struct {
	store *store.Store
}

func NewReportsHTTP(st *store.Store) *ReportsHTTP { return &ReportsHTTP{store: st} }

// GET /api/reports/summary
func (h *ReportsHTTP) Summary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := middleware.SessionFrom(r.Context())
		visible := service.VisibleTickets(h.store.Tickets(), session)
		utils.JSON(w, http.StatusOK, service.CountByStatus(visible))
	}
}

// GET /api/reports/categories
func (h *ReportsHTTP) Categories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := middleware.SessionFrom(r.Context())
		visible := service.VisibleTickets(h.store.Tickets(), session)
		entries, max := service.CategoryDistribution(visible)
		utils.JSON(w, http.StatusOK, map[string]any{"entries": entries, "max": max})
	}
}

// GET /api/reports/recent?limit=n
func (h *ReportsHTTP) Recent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := utils.QueryInt(r.URL.Query(), "limit", 5)
		if limit < 0 {
			limit = 5
		}
		session := middleware.SessionFrom(r.Context())
		visible := service.VisibleTickets(h.store.Tickets(), session)
		items := service.Recent(visible, limit)
		utils.JSON(w, http.StatusOK, map[string]any{"items": items, "total": len(items)})
	}
}
