package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/EYOB-A19/Astu-compliant-system/internal/middleware"
	"github.com/EYOB-A19/Astu-compliant-system/internal/models"
	"github.com/EYOB-A19/Astu-compliant-system/internal/service"
	"github.com/EYOB-A19/Astu-compliant-system/internal/utils"
)

const sessionTTL = 24 * time.Hour

type AuthHTTP struct {
	svc *service.AuthService
}

func NewAuthHTTP(svc *service.AuthService) *AuthHTTP {
	return &AuthHTTP{svc: svc}
}

// setSessionCookie issues the httpOnly session cookie carrying the signed
// snapshot.
func setSessionCookie(w http.ResponseWriter, secret string, s models.Session) error {
	tok, err := utils.SignSession(secret, s, sessionTTL)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     "session",
		Value:    tok,
		Path:     "/",
		HttpOnly: true,
		// Lax works for same-origin; set Secure behind HTTPS in prod.
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(sessionTTL),
	})
	return nil
}

// POST /api/auth/register
func (h *AuthHTTP) Register(secret string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Name            string `json:"name"`
			Email           string `json:"email"`
			Role            string `json:"role"`
			Department      string `json:"department"`
			Password        string `json:"password"`
			ConfirmPassword string `json:"confirmPassword"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		session, err := h.svc.Register(service.RegisterInput{
			Name:            in.Name,
			Email:           in.Email,
			Role:            models.Role(in.Role),
			Department:      in.Department,
			Password:        in.Password,
			ConfirmPassword: in.ConfirmPassword,
		})
		if err != nil {
			utils.Error(w, errStatus(err), err.Error())
			return
		}
		if err := setSessionCookie(w, secret, *session); err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		utils.JSON(w, http.StatusCreated, session)
	}
}

// POST /api/auth/login
func (h *AuthHTTP) Login(secret string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Email    string `json:"email"`
			Password string `json:"password"`
			Role     string `json:"role"` // optional filter, empty means auto detect
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		session, err := h.svc.Authenticate(in.Email, in.Password, models.Role(in.Role))
		if err != nil {
			utils.Error(w, errStatus(err), err.Error())
			return
		}
		if err := setSessionCookie(w, secret, *session); err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		utils.JSON(w, http.StatusOK, session)
	}
}

// POST /api/auth/logout
func (h *AuthHTTP) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = h.svc.Logout()
		http.SetCookie(w, &http.Cookie{
			Name:     "session",
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
			MaxAge:   -1,              // expire immediately
			Expires:  time.Unix(0, 0), // for older browsers
		})
		w.WriteHeader(http.StatusNoContent)
	}
}

// GET /api/auth/me
func (h *AuthHTTP) Me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := middleware.SessionFrom(r.Context())
		if session == nil {
			utils.Error(w, http.StatusUnauthorized, "not authenticated")
			return
		}
		utils.JSON(w, http.StatusOK, session)
	}
}
