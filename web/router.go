package web

import (
	"log"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/unrolled/render"
)

type RouterOptions struct {
	AdminUser     string
	AdminPassword string
	CORSOrigins   []string
	Development   bool
}

func getRouter(app *App, render *render.Render, opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", healthHandler(app, render))

	r.Route("/api", func(r chi.Router) {
		r.Get("/teams", teamsHandler(app, render))
		r.Get("/weeks", weeksHandler(app, render))
		r.Get("/weeks/{weekID}/games", weekGamesHandler(app, render))
		r.Get("/weeks/{weekID}/standings", weekStandingsHandler(app, render))

		if opts.AdminPassword == "" {
			log.Println("admin routes not mounted")
			return
		}

		r.Group(func(r chi.Router) {
			r.Use(middleware.BasicAuth("pickem", map[string]string{opts.AdminUser: opts.AdminPassword}))

			r.Post("/refresh-fbs-teams", refreshTeamsHandler(app, render))

			r.Route("/admin", func(r chi.Router) {
				r.Get("/calendar/current", currentWeekHandler(app, render))
				r.Get("/games/list", listGamesHandler(app, render))
				r.Post("/games/add", addGameHandler(app, render))
				r.Post("/games/remove", removeGameHandler(app, render))
				r.Post("/weeks/{weekID}/announce", announceHandler(app, render))
			})
		})
	})

	return r
}
