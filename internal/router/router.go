package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/rs/zerolog"

	"github.com/EYOB-A19/Astu-compliant-system/internal/config"
	"github.com/EYOB-A19/Astu-compliant-system/internal/handlers"
	"github.com/EYOB-A19/Astu-compliant-system/internal/middleware"
	"github.com/EYOB-A19/Astu-compliant-system/internal/models"
	"github.com/EYOB-A19/Astu-compliant-system/internal/service"
	"github.com/EYOB-A19/Astu-compliant-system/internal/store"
)

func New(log zerolog.Logger, st *store.Store, cfg config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recoverer(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.Origin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(httprate.LimitByIP(200, time.Minute))
	r.Use(middleware.WithAuth(log, cfg))

	// Health
	r.Get("/healthz", handlers.Health())

	// Services + handlers
	authSvc := service.NewAuthService(st)
	ticketSvc := service.NewTicketService(st)

	ah := handlers.NewAuthHTTP(authSvc)
	th := handlers.NewTicketHTTP(st, ticketSvc)
	rh := handlers.NewReportsHTTP(st)
	uh := handlers.NewUserHTTP(st, authSvc)

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", ah.Register(cfg.SessionSecret))
		r.Post("/login", ah.Login(cfg.SessionSecret))
		r.Post("/logout", ah.Logout())
		r.Get("/me", ah.Me())
	})

	r.Route("/api/tickets", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/", th.List())
		r.With(middleware.RequireRoles(models.RoleStudent)).Post("/", th.Create())
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", th.Get())
			r.With(middleware.RequireRoles(models.RoleStaff, models.RoleAdmin)).Patch("/", th.Update())
		})
	})

	r.Route("/api/reports", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/summary", rh.Summary())
		r.Get("/categories", rh.Categories())
		r.Get("/recent", rh.Recent())
	})

	r.Route("/api/categories", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/", th.ListCategories())
		r.With(middleware.RequireRoles(models.RoleAdmin)).Post("/", th.CreateCategory())
	})

	r.Route("/api/users", func(r chi.Router) {
		r.Use(middleware.RequireRoles(models.RoleAdmin))
		r.Get("/", uh.List())
		r.Post("/", uh.Create())
	})

	r.With(middleware.RequireRoles(models.RoleStudent)).Post("/api/assist", handlers.Assist())

	return r
}
