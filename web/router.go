package web

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/tcherry92/gameday-channels/controller"
	"github.com/unrolled/render"
)

func getRouter(ctrl controller.C, render *render.Render) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/health", healthHandler(render))

	r.Route("/guilds/{guildID}", func(r chi.Router) {
		r.Get("/schedule", scheduleHandler(ctrl, render))
		r.Get("/schedule/{week:\\d+}", weekHandler(ctrl, render))
		r.Get("/fans", fansHandler(ctrl, render))
	})

	return r
}
