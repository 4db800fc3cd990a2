package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/EYOB-A19/Astu-compliant-system/internal/middleware"
	"github.com/EYOB-A19/Astu-compliant-system/internal/models"
	"github.com/EYOB-A19/Astu-compliant-system/internal/service"
	"github.com/EYOB-A19/Astu-compliant-system/internal/store"
	"github.com/EYOB-A19/Astu-compliant-system/internal/utils"
)

// TicketHTTP wires the ticket endpoints to the store and lifecycle service.
type TicketHTTP struct {
	store *store.Store
	svc   *service.TicketService
}

func NewTicketHTTP(st *store.Store, svc *service.TicketService) *TicketHTTP {
	return &TicketHTTP{store: st, svc: svc}
}

// GET /api/tickets
// Returns the role-scoped subset, most recently updated first.
func (h *TicketHTTP) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := middleware.SessionFrom(r.Context())
		visible := service.VisibleTickets(h.store.Tickets(), session)
		items := service.Recent(visible, len(visible))
		w.Header().Set("X-Total-Count", strconv.Itoa(len(items)))
		utils.JSON(w, http.StatusOK, map[string]any{"items": items, "total": len(items)})
	}
}

// GET /api/tickets/{id}
func (h *TicketHTTP) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if id == "" {
			utils.Error(w, http.StatusBadRequest, "missing id")
			return
		}
		session := middleware.SessionFrom(r.Context())
		for _, t := range h.store.Tickets() {
			if t.ID != id {
				continue
			}
			if !service.CanView(t, session) {
				utils.Error(w, http.StatusForbidden, "forbidden")
				return
			}
			utils.JSON(w, http.StatusOK, t)
			return
		}
		utils.Error(w, http.StatusNotFound, "not found")
	}
}

// POST /api/tickets
func (h *TicketHTTP) Create() http.HandlerFunc {
	type inDTO struct {
		Title       string `json:"title"`
		Category    string `json:"category"`
		Location    string `json:"location"`
		Priority    string `json:"priority"`
		Description string `json:"description"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var in inDTO
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		session := middleware.SessionFrom(r.Context())
		ticket, err := h.svc.Create(service.ComplaintForm{
			Title:       in.Title,
			Category:    in.Category,
			Location:    in.Location,
			Priority:    in.Priority,
			Description: in.Description,
		}, session)
		if err != nil {
			utils.Error(w, errStatus(err), err.Error())
			return
		}
		utils.JSON(w, http.StatusCreated, ticket)
	}
}

// PATCH /api/tickets/{id}
// Applies a status draft and an optional remark.
func (h *TicketHTTP) Update() http.HandlerFunc {
	type inDTO struct {
		Status string `json:"status"`
		Remark string `json:"remark"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if id == "" {
			utils.Error(w, http.StatusBadRequest, "missing id")
			return
		}
		var in inDTO
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		session := middleware.SessionFrom(r.Context())
		ticket, err := h.svc.Update(id, in.Status, in.Remark, session)
		if err != nil {
			utils.Error(w, errStatus(err), err.Error())
			return
		}
		utils.JSON(w, http.StatusOK, ticket)
	}
}

// GET /api/categories
func (h *TicketHTTP) ListCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories := h.store.Categories()
		if categories == nil {
			categories = []models.Category{}
		}
		utils.JSON(w, http.StatusOK, map[string]any{"items": categories, "total": len(categories)})
	}
}

// POST /api/categories
func (h *TicketHTTP) CreateCategory() http.HandlerFunc {
	type inDTO struct {
		Name       string `json:"name"`
		Department string `json:"department"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var in inDTO
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		session := middleware.SessionFrom(r.Context())
		category, err := h.svc.AddCategory(in.Name, in.Department, session)
		if err != nil {
			utils.Error(w, errStatus(err), err.Error())
			return
		}
		utils.JSON(w, http.StatusCreated, category)
	}
}
