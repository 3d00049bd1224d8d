package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authentication
	router.Group(func(r chi.Router) {
		r.Get("/", h.root)
		r.Get("/login", h.loginForm)
		r.Post("/login", h.login)
		r.Get("/signup", h.signupForm)
		r.Post("/signup", h.signup)
		r.Get("/logout", h.logout)
	})

	// protected routes; anonymous requests are redirected to /login
	router.Group(func(r chi.Router) {
		r.Use(h.requireLogin)
		r.Get("/home", h.home)
		r.Get("/profile-image/{filename}", h.profileImage)
	})

	return router
}
