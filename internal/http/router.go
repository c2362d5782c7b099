package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"gorm.io/gorm"

	"enlace/internal/auth"
	"enlace/internal/config"
	"enlace/internal/feedback"
	"enlace/internal/http/handler"
	mw "enlace/internal/http/middleware"
	"enlace/internal/store"
)

func NewRouter(cfg config.Config, db *gorm.DB, jwtSvc *auth.JWT, stores *store.Manager, fb *feedback.Service) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(mw.CORS(cfg.CORSAllowedOrigins, cfg.CORSAllowCredentials))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	ah := &handler.AuthHandler{DB: db, JWT: jwtSvc, Stores: stores}
	r.Post("/auth/register", ah.Register)
	r.Post("/auth/login", ah.Login)
	r.With(auth.RequireAuth(jwtSvc)).Post("/auth/logout", ah.Logout)

	me := &handler.MeHandler{}
	r.With(auth.RequireAuth(jwtSvc)).Get("/me", me.Me)

	fh := &handler.FeedbackHandler{DB: db, Feedback: fb}
	r.With(auth.OptionalAuth(jwtSvc)).Post("/feedback", fh.Submit)
	r.With(auth.RequireAuth(jwtSvc)).Get("/feedback", fh.List)
	r.With(auth.RequireAuth(jwtSvc)).Delete("/feedback/{id}", fh.Remove)

	wh := &handler.WeddingHandler{Stores: stores}
	gh := &handler.GuestHandler{Stores: stores}
	ph := &handler.PlanningHandler{Stores: stores}

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(jwtSvc))

		r.Route("/wedding", func(r chi.Router) {
			r.Get("/", wh.Get)
			r.Post("/", wh.Create)
			r.Patch("/", wh.Update)
			r.Post("/refresh", wh.Refresh)
			r.Put("/couple-items", wh.UpdateCoupleItems)
			r.Put("/seating-tables", wh.ReplaceSeatingTables)
			r.Put("/vendors", wh.SetVendors)
			r.Post("/categories", wh.AddCategory)
			r.Delete("/categories", wh.RemoveCategory)
		})

		r.Route("/guests", func(r chi.Router) {
			r.Post("/", gh.Add)
			r.Post("/bulk", gh.AddBulk)
			r.Get("/stats", gh.Stats)
			r.Patch("/{id}", gh.Update)
			r.Delete("/{id}", gh.Remove)
			r.Delete("/", gh.RemoveBulk)
		})

		r.Route("/tasks", func(r chi.Router) {
			r.Post("/", ph.AddTask)
			r.Patch("/{id}", ph.UpdateTask)
			r.Delete("/{id}", ph.RemoveTask)
		})

		r.Route("/budget-items", func(r chi.Router) {
			r.Post("/", ph.AddBudgetItem)
			r.Patch("/{id}", ph.UpdateBudgetItem)
			r.Delete("/{id}", ph.RemoveBudgetItem)
		})

		r.Route("/songs", func(r chi.Router) {
			r.Post("/", ph.AddSong)
			r.Patch("/{id}", ph.UpdateSong)
			r.Delete("/{id}", ph.RemoveSong)
		})

		r.Route("/gifts", func(r chi.Router) {
			r.Post("/", ph.AddGift)
			r.Patch("/{id}", ph.UpdateGift)
			r.Delete("/{id}", ph.RemoveGift)
			r.Get("/{id}/link", ph.GiftLink)
		})
	})

	return r
}
