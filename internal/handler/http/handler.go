// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and embedded page templates for
// the profile website. Session lookup, logging, tracing, and panic
// recovery are all handled at this layer before requests are forwarded to
// the service layer.
package http

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/reut-b/profile-site/internal/logger"
	"github.com/reut-b/profile-site/internal/service"
	"github.com/reut-b/profile-site/internal/session"
	"github.com/reut-b/profile-site/internal/store"
	"github.com/reut-b/profile-site/models"
)

//go:embed templates/*.html
var templateFS embed.FS

type Handler struct {
	services *service.Services
	sessions session.Store
	pictures store.PicturesStorage

	cookieName string
	templates  *template.Template

	logger *logger.Logger
}

func NewHandler(services *service.Services, sessions session.Store, pictures store.PicturesStorage, cookieName string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		sessions:   sessions,
		pictures:   pictures,
		cookieName: cookieName,
		templates:  template.Must(template.ParseFS(templateFS, "templates/*.html")),
		logger:     logger,
	}
}

// render writes the named page template with data. A template failure at
// this point means the headers are already committed, so it is only logged.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		logger.FromRequest(r).Err(err).Str("template", name).Msg("error rendering template")
	}
}

// formPage is the data handed to the login and signup templates.
type formPage struct {
	Error string
}

// currentUser resolves the session cookie to its bound user, if any.
func (h *Handler) currentUser(r *http.Request) (string, models.UserView, bool) {
	cookie, err := r.Cookie(h.cookieName)
	if err != nil {
		return "", models.UserView{}, false
	}

	user, found := h.sessions.Get(cookie.Value)
	if !found {
		return "", models.UserView{}, false
	}

	return cookie.Value, user, true
}
