package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/EYOB-A19/Astu-compliant-system/internal/config"
	"github.com/EYOB-A19/Astu-compliant-system/internal/models"
	"github.com/EYOB-A19/Astu-compliant-system/internal/utils"
)

type ctxKey string

const ctxSession ctxKey = "session"

// WithAuth recovers the session snapshot from the "session" cookie or an
// Authorization: Bearer token and stores it in the request context.
// Requests without a valid token proceed unauthenticated; handlers and the
// Require* middleware decide what that means.
func WithAuth(log zerolog.Logger, cfg config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var tok string
			if c, err := r.Cookie("session"); err == nil {
				tok = c.Value
			} else if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
				tok = strings.TrimPrefix(h, "Bearer ")
			}

			if tok == "" {
				next.ServeHTTP(w, r)
				return
			}

			session, err := utils.ParseSession(cfg.SessionSecret, tok)
			if err != nil {
				// Clear the broken/expired cookie so it stops being sent.
				http.SetCookie(w, &http.Cookie{
					Name:     "session",
					Value:    "",
					Path:     "/",
					HttpOnly: true,
					MaxAge:   -1,
				})
				log.Debug().Err(err).Msg("session token rejected")
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(
				context.WithValue(r.Context(), ctxSession, session),
			))
		})
	}
}

// SessionFrom returns the authenticated session stored by WithAuth, or nil
// for unauthenticated requests.
func SessionFrom(ctx context.Context) *models.Session {
	s, _ := ctx.Value(ctxSession).(*models.Session)
	return s
}
