package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/EYOB-A19/Astu-compliant-system/internal/middleware"
	"github.com/EYOB-A19/Astu-compliant-system/internal/models"
	"github.com/EYOB-A19/Astu-compliant-system/internal/service"
	"github.com/EYOB-A19/Astu-compliant-system/internal/store"
	"github.com/EYOB-A19/Astu-compliant-system/internal/utils"
)

// UserHTTP serves the admin users panel.
type UserHTTP struct {
	store *store.Store
	svc   *service.AuthService
}

func NewUserHTTP(st *store.Store, svc *service.AuthService) *UserHTTP {
	return &UserHTTP{store: st, svc: svc}
}

// GET /api/users
// Password hashes never leave the store; the public profile is returned.
func (h *UserHTTP) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users := h.store.Users()
		items := make([]models.Profile, 0, len(users))
		for _, u := range users {
			items = append(items, u.Profile())
		}
		utils.JSON(w, http.StatusOK, map[string]any{"items": items, "total": len(items)})
	}
}

// POST /api/users
func (h *UserHTTP) Create() http.HandlerFunc {
	type inDTO struct {
		Name       string `json:"name"`
		Email      string `json:"email"`
		Role       string `json:"role"`
		Department string `json:"department"`
		Password   string `json:"password"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var in inDTO
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		session := middleware.SessionFrom(r.Context())
		user, err := h.svc.AddUser(in.Name, in.Email, models.Role(in.Role), in.Department, in.Password, session)
		if err != nil {
			utils.Error(w, errStatus(err), err.Error())
			return
		}
		utils.JSON(w, http.StatusCreated, user)
	}
}
